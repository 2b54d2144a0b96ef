// Package vision models an observer sweeping a cone of vision and the
// per-frame test of whether a target falls inside it.
package vision

import (
	"math"

	"conevision/vec2"

	"github.com/pkg/errors"
)

// Config holds the scene constants. It is fixed for the lifetime of a scene.
type Config struct {
	// FullAngle is the full width of the cone in radians.
	FullAngle float64 `yaml:"full_angle_rad"`
	// MaxDistance is the sight range measured from the observer.
	MaxDistance float64 `yaml:"max_distance"`

	Observer    vec2.Vec2 `yaml:"observer"`
	StartFacing vec2.Vec2 `yaml:"start_facing"`

	// ProbeDistance only sets the length of the probe that is orbited to
	// advance the facing direction; its direction is what matters.
	ProbeDistance float64 `yaml:"probe_distance"`

	// SweepRate is the facing rotation speed in radians per second.
	SweepRate float64 `yaml:"sweep_rate_rad_per_sec"`
}

const (
	defaultFullAngleDeg  = 45
	defaultMaxDistance   = 300
	defaultProbeDistance = 30
)

// DefaultConfig returns the compiled-in scene: a 45° cone reaching 300
// units from an observer at (400,300) that starts facing up and sweeps at
// half the cone angle per second.
func DefaultConfig() Config {
	full := defaultFullAngleDeg * math.Pi / 180
	return Config{
		FullAngle:     full,
		MaxDistance:   defaultMaxDistance,
		Observer:      vec2.V(400, 300),
		StartFacing:   vec2.V(0, -1),
		ProbeDistance: defaultProbeDistance,
		SweepRate:     full / 2,
	}
}

func (c Config) HalfAngle() float64 { return c.FullAngle / 2 }

var (
	ErrInvalidAngle    = errors.New("cone angle must be in (0, 2π]")
	ErrInvalidDistance = errors.New("distance must be positive")
	ErrZeroFacing      = errors.New("start facing must be non-zero")
	ErrNotFinite       = errors.New("config value is not finite")
)

// Validate reports whether c describes a usable scene.
func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"full_angle":     c.FullAngle,
		"max_distance":   c.MaxDistance,
		"probe_distance": c.ProbeDistance,
		"sweep_rate":     c.SweepRate,
		"observer.x":     c.Observer.X,
		"observer.y":     c.Observer.Y,
		"start_facing.x": c.StartFacing.X,
		"start_facing.y": c.StartFacing.Y,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrap(ErrNotFinite, name)
		}
	}
	if c.FullAngle <= 0 || c.FullAngle > 2*math.Pi {
		return errors.Wrapf(ErrInvalidAngle, "full_angle=%v", c.FullAngle)
	}
	if c.MaxDistance <= 0 {
		return errors.Wrap(ErrInvalidDistance, "max_distance")
	}
	if c.ProbeDistance <= 0 {
		return errors.Wrap(ErrInvalidDistance, "probe_distance")
	}
	if c.StartFacing.IsZero() {
		return ErrZeroFacing
	}
	return nil
}
