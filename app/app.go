// Package app runs the cone-of-vision scene on top of a hal.HAL.
package app

import (
	"conevision/hal"
	"conevision/render"
	"conevision/vec2"
	"conevision/vision"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrTerminated is returned by the step function once the scene has quit.
var ErrTerminated = errors.New("scene terminated")

var errNoDisplay = errors.New("no framebuffer")

type Config struct {
	Scene vision.Config
	Log   *zap.Logger
}

// DefaultConfig returns the compiled-in scene with a no-op logger.
func DefaultConfig() Config {
	return Config{Scene: vision.DefaultConfig(), Log: zap.NewNop()}
}

type scene struct {
	cfg vision.Config
	log *zap.Logger

	fb     hal.Framebuffer
	canvas *render.Canvas
	keys   <-chan hal.KeyEvent
	ticks  <-chan uint64
	ptr    hal.Pointer
	win    hal.Window

	state   vision.SceneState
	lastSeq uint64
	visible bool
	frames  uint64
	quitBy  string

	// panicErr is set once a frame panicked; the panic screen then stays
	// up until the user quits.
	panicErr error
}

// NewWithConfig builds the scene and returns its per-frame step. The step
// returns ErrTerminated after a quit request; a bad config or missing
// display makes the first call fail.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newScene(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return s.guardedStep
}

func newScene(h hal.HAL, cfg Config) (*scene, error) {
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	if err := cfg.Scene.Validate(); err != nil {
		return nil, errors.Wrap(err, "scene config")
	}

	s := &scene{
		cfg:   cfg.Scene,
		log:   cfg.Log.Named("scene"),
		state: vision.NewState(cfg.Scene),
	}
	if d := h.Display(); d != nil {
		s.fb = d.Framebuffer()
	}
	if s.fb == nil {
		return nil, errNoDisplay
	}
	s.canvas = render.NewCanvas(s.fb)

	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.keys = kbd.Events()
		}
		s.ptr = in.Pointer()
	}
	if t := h.Time(); t != nil {
		s.ticks = t.Ticks()
	}
	s.win = h.Window()

	s.log.Info("scene ready",
		zap.Int("width", s.fb.Width()),
		zap.Int("height", s.fb.Height()),
		zap.Float64("half_angle_rad", s.cfg.HalfAngle()),
		zap.Float64("max_distance", s.cfg.MaxDistance),
		zap.Float64("sweep_rate_rad_per_sec", s.cfg.SweepRate),
	)
	return s, nil
}

func (s *scene) step() error {
	elapsed := s.elapsed()
	s.handleInput()

	if s.state.Mode == vision.Terminated {
		s.log.Info("terminated", zap.String("by", s.quitBy), zap.Uint64("frames", s.frames))
		return ErrTerminated
	}

	var pointer vec2.Vec2
	if s.ptr != nil {
		x, y := s.ptr.Position()
		pointer = vec2.V(float64(x), float64(y))
	}

	next, frame := vision.Step(s.cfg, s.state, elapsed, pointer)
	s.state = next

	render.Draw(s.canvas, frame)
	if err := s.fb.Present(); err != nil {
		return errors.Wrap(err, "present")
	}
	s.frames++

	if frame.Visible != s.visible {
		s.visible = frame.Visible
		if s.visible {
			s.log.Info("target sighted", zap.Float64("x", pointer.X), zap.Float64("y", pointer.Y))
		} else {
			s.log.Info("target lost", zap.Float64("x", pointer.X), zap.Float64("y", pointer.Y))
		}
	}
	return nil
}

// elapsed drains the tick stream and returns the seconds since the last
// frame. Ticks are milliseconds.
func (s *scene) elapsed() float64 {
	latest := s.lastSeq
	for drained := false; !drained; {
		select {
		case seq := <-s.ticks:
			if seq > latest {
				latest = seq
			}
		default:
			drained = true
		}
	}
	d := latest - s.lastSeq
	s.lastSeq = latest
	return float64(d) / 1000
}

func (s *scene) handleInput() {
	if s.win != nil && s.win.CloseRequested() {
		s.apply(vision.EventQuit, "window")
	}
	for drained := false; !drained; {
		select {
		case ev := <-s.keys:
			if e, ok := keyEvent(ev); ok {
				s.apply(e, describeKey(ev))
			}
		default:
			drained = true
		}
	}
}

func (s *scene) apply(ev vision.Event, by string) {
	prev := s.state.Mode
	s.state = s.state.Apply(ev)
	if s.state.Mode == prev {
		return
	}
	switch s.state.Mode {
	case vision.Paused:
		s.log.Info("paused")
	case vision.Running:
		s.log.Info("resumed")
	case vision.Terminated:
		s.quitBy = by
	}
}

// keyEvent maps a key press to a scene event: p toggles pause, q or Esc quits.
func keyEvent(ev hal.KeyEvent) (vision.Event, bool) {
	if !ev.Press {
		return 0, false
	}
	if ev.Code == hal.KeyEscape {
		return vision.EventQuit, true
	}
	switch ev.Rune {
	case 'p', 'P':
		return vision.EventTogglePause, true
	case 'q', 'Q':
		return vision.EventQuit, true
	}
	return 0, false
}

func describeKey(ev hal.KeyEvent) string {
	if ev.Code == hal.KeyEscape {
		return "escape"
	}
	return "key " + string(ev.Rune)
}
