package vision

import "conevision/vec2"

// Mode is the loop state.
type Mode uint8

const (
	Running Mode = iota
	Paused
	// Terminated is absorbing.
	Terminated
)

func (m Mode) String() string {
	switch m {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Event is an input that drives the mode state machine.
type Event uint8

const (
	EventTogglePause Event = iota + 1
	EventQuit
)

// SceneState is everything carried from one frame to the next.
type SceneState struct {
	Facing vec2.Vec2
	Mode   Mode
}

func NewState(cfg Config) SceneState {
	return SceneState{Facing: vec2.Normalize(cfg.StartFacing), Mode: Running}
}

// Apply returns the state after ev.
func (s SceneState) Apply(ev Event) SceneState {
	if s.Mode == Terminated {
		return s
	}
	switch ev {
	case EventQuit:
		s.Mode = Terminated
	case EventTogglePause:
		if s.Mode == Paused {
			s.Mode = Running
		} else {
			s.Mode = Paused
		}
	}
	return s
}
