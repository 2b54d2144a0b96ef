package hal

import "sync/atomic"

type hostHAL struct {
	fb  *hostFramebuffer
	kbd *hostKeyboard
	ptr *hostPointer
	t   *hostTime
	win *hostWindow
}

func newHost(width, height int) *hostHAL {
	return &hostHAL{
		fb:  newHostFramebuffer(width, height),
		kbd: newHostKeyboard(),
		ptr: &hostPointer{},
		t:   newHostTime(),
		win: &hostWindow{},
	}
}

func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) Window() Window   { return h.win }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

type hostPointer struct {
	x, y atomic.Int64
}

func (p *hostPointer) Position() (x, y int) {
	return int(p.x.Load()), int(p.y.Load())
}

func (p *hostPointer) set(x, y int) {
	p.x.Store(int64(x))
	p.y.Store(int64(y))
}

type hostWindow struct {
	closing atomic.Bool
	shown   bool
}

func (w *hostWindow) CloseRequested() bool { return w.closing.Load() }
func (w *hostWindow) Shown() bool          { return w.shown }
