package hal

import "time"

const tickDur = time.Millisecond

// hostTime turns wall-clock progress into 1 ms tick sequence numbers.
// Sends never block; a consumer that falls behind still sees the latest
// sequence number and can derive the elapsed time from it.
type hostTime struct {
	ch  chan uint64
	seq uint64
	now func() time.Time

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return newHostTimeWithClock(time.Now)
}

func newHostTimeWithClock(now func() time.Time) *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), now: now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// advance emits ticks for the wall time since the previous call. The first
// call only records the starting point.
func (t *hostTime) advance() {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		return
	}
	t.acc += now.Sub(t.last)
	t.last = now

	n := uint64(t.acc / tickDur)
	t.acc %= tickDur
	t.emit(n)
}

func (t *hostTime) emit(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
