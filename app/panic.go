package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"conevision/vision"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	panicBG = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	panicFG = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

const panicLineHeight = 24

// guardedStep runs one frame. A panic is logged and painted on screen.
// On a shown window the panic screen is held, and the panic error is
// returned only once the user quits; otherwise it is returned at once.
func (s *scene) guardedStep() (err error) {
	if s.panicErr != nil {
		return s.holdPanic()
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		stack := debug.Stack()
		s.log.Error("scene panic", zap.Any("panic", r), zap.ByteString("stack", stack))
		s.drawPanic(r, stack)
		s.panicErr = errors.Errorf("scene panic: %v", r)
		err = nil
		if s.win == nil || !s.win.Shown() {
			err = s.panicErr
		}
	}()
	return s.step()
}

// holdPanic leaves the presented panic screen alone and waits for a quit.
func (s *scene) holdPanic() error {
	s.handleInput()
	if s.state.Mode != vision.Terminated {
		return nil
	}
	s.log.Info("panic screen closed", zap.String("by", s.quitBy))
	return s.panicErr
}

func (s *scene) drawPanic(v any, stack []byte) {
	if s.canvas == nil {
		return
	}
	s.canvas.Clear(panicBG)

	lines := []string{"Scene panic:", fmt.Sprintf("%v", v), "stack:"}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
	}

	y := 0
	for _, line := range lines {
		if y+panicLineHeight > s.fb.Height() {
			break
		}
		s.canvas.Text(0, y, line, panicFG)
		y += panicLineHeight
	}
	_ = s.canvas.Display()
}
