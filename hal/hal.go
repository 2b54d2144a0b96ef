// Package hal is the platform layer: a framebuffer to draw into, keyboard
// and pointer input, a millisecond tick clock and the window. Scene code
// only talks to these interfaces; the host runners in this package supply
// an ebiten window or a window-less ticker loop.
package hal

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode identifies non-text keys. Text keys arrive as runes.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events.
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Pointer reports the mouse position in framebuffer pixels.
type Pointer interface {
	Position() (x, y int)
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Time provides a tick stream. Each value is a monotonically increasing
// sequence number; one tick is one millisecond.
type Time interface {
	Ticks() <-chan uint64
}

// Window reports requests from the window manager.
type Window interface {
	CloseRequested() bool
	// Shown is false when presented frames never reach a screen.
	Shown() bool
}

// HAL provides the only contact point between the scene and the outside world.
type HAL interface {
	Display() Display
	Input() Input
	Time() Time
	Window() Window
}
