package vision

import (
	"image/color"

	"conevision/vec2"
)

// SightedText is shown while the target is inside the cone.
const SightedText = "Enemy sighted!"

const markerRadius = 16

var (
	ColorBackground = color.RGBA{R: 100, G: 100, B: 100, A: 0xff}
	ColorCone       = color.RGBA{R: 255, G: 255, B: 0, A: 0xff}
	ColorTarget     = color.RGBA{R: 0, G: 50, B: 200, A: 0xff}
	ColorObserver   = color.RGBA{R: 255, G: 0, B: 0, A: 0xff}
	ColorLabel      = color.RGBA{R: 255, G: 200, B: 0, A: 0xff}
)

type Line struct {
	From, To vec2.Vec2
	Color    color.RGBA
}

// Circle is a filled disc.
type Circle struct {
	Center vec2.Vec2
	Radius int
	Color  color.RGBA
}

// Label is text whose box has its top-left corner at At.
type Label struct {
	Text  string
	At    vec2.Vec2
	Color color.RGBA
}

// Frame is the set of primitives for one rendered frame.
type Frame struct {
	Background color.RGBA
	Lines      []Line
	Circles    []Circle
	Labels     []Label

	Visible bool
	Left    vec2.Vec2
	Right   vec2.Vec2
	Far     vec2.Vec2
}

// Step advances the scene by elapsed seconds and describes the frame to
// draw for the given pointer position. Only a Running scene rotates.
func Step(cfg Config, s SceneState, elapsed float64, pointer vec2.Vec2) (SceneState, Frame) {
	if s.Mode != Running || elapsed < 0 {
		elapsed = 0
	}
	if elapsed > 0 {
		s.Facing = Sweep(cfg, s.Facing, elapsed)
	}

	left, right, far := Cone(cfg, s.Facing)
	f := Frame{
		Background: ColorBackground,
		Lines: []Line{
			{From: cfg.Observer, To: left, Color: ColorCone},
			{From: cfg.Observer, To: right, Color: ColorCone},
			{From: left, To: far, Color: ColorCone},
			{From: right, To: far, Color: ColorCone},
		},
		Circles: []Circle{
			{Center: pointer, Radius: markerRadius, Color: ColorTarget},
			{Center: cfg.Observer, Radius: markerRadius, Color: ColorObserver},
			{Center: left, Radius: markerRadius, Color: ColorCone},
			{Center: right, Radius: markerRadius, Color: ColorCone},
			{Center: far, Radius: markerRadius, Color: ColorCone},
		},
		Left:  left,
		Right: right,
		Far:   far,
	}

	f.Visible = Visible(cfg, s.Facing, pointer)
	if f.Visible {
		f.Labels = append(f.Labels, Label{Text: SightedText, Color: ColorLabel})
	}
	return s, f
}
