//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pollInput samples ebiten's input state once per Update.
func (h *hostHAL) pollInput() {
	x, y := ebiten.CursorPosition()
	h.ptr.set(x, y)

	for _, r := range ebiten.AppendInputChars(nil) {
		h.kbd.emit(KeyEvent{Press: true, Rune: r})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.kbd.emit(KeyEvent{Code: KeyEscape, Press: true})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		h.kbd.emit(KeyEvent{Code: KeyEscape, Press: false})
	}
}
