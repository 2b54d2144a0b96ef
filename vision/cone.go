package vision

import (
	"math"

	"conevision/vec2"
)

// Sweep advances facing by cfg.SweepRate*elapsed radians about the observer.
func Sweep(cfg Config, facing vec2.Vec2, elapsed float64) vec2.Vec2 {
	probe := cfg.Observer.Add(facing.Scale(cfg.ProbeDistance))
	probe = vec2.Orbit(probe, cfg.Observer, cfg.SweepRate*elapsed)
	return vec2.Normalize(probe.Sub(cfg.Observer))
}

// Cone returns the two boundary points and the far point straight ahead.
func Cone(cfg Config, facing vec2.Vec2) (left, right, far vec2.Vec2) {
	far = cfg.Observer.Add(facing.Scale(cfg.MaxDistance))
	left = vec2.Orbit(far, cfg.Observer, cfg.HalfAngle())
	right = vec2.Orbit(far, cfg.Observer, -cfg.HalfAngle())
	return left, right, far
}

// edgeSlack absorbs rounding so the cone's own boundary points (see Cone)
// always test as inside.
const edgeSlack = 1e-9

// Visible reports whether target lies inside the cone. A target on top of
// the observer, or a zero facing, is never visible.
func Visible(cfg Config, facing, target vec2.Vec2) bool {
	toTarget := target.Sub(cfg.Observer)
	dist := vec2.Len(toTarget)
	fl := vec2.Len(facing)
	if dist == 0 || fl == 0 {
		return false
	}
	if dist > cfg.MaxDistance+edgeSlack {
		return false
	}
	cos := vec2.Dot(facing, toTarget) / (fl * dist)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) <= cfg.HalfAngle()+edgeSlack
}
