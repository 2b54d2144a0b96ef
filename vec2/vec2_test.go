package vec2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func requireNear(t *testing.T, want, got Vec2) {
	t.Helper()
	require.InDelta(t, want.X, got.X, eps, "x: want %v got %v", want, got)
	require.InDelta(t, want.Y, got.Y, eps, "y: want %v got %v", want, got)
}

func TestArithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(-3, 0.5)

	assert.Equal(t, V(-2, 2.5), Add(a, b))
	assert.Equal(t, V(4, 1.5), Sub(a, b))
	assert.Equal(t, V(2, 4), Scale(a, 2))
	assert.Equal(t, -2.0, Dot(a, b))
	assert.Equal(t, 5.0, Len(V(3, -4)))

	// Inputs are untouched.
	assert.Equal(t, V(1, 2), a)
}

func TestNormalize(t *testing.T) {
	for _, v := range []Vec2{V(3, 4), V(-0.001, 0), V(1e6, -1e6), V(0, -1)} {
		require.InDelta(t, 1.0, Len(Normalize(v)), eps, "v=%v", v)
	}
	assert.Equal(t, Vec2{}, Normalize(Vec2{}))
}

func TestOrbit(t *testing.T) {
	pivot := V(400, 300)

	t.Run("quarter turn", func(t *testing.T) {
		requireNear(t, V(400, 310), Orbit(V(410, 300), pivot, math.Pi/2))
	})

	t.Run("identity", func(t *testing.T) {
		for _, p := range []Vec2{V(0, 0), V(-5, 17.25), pivot} {
			requireNear(t, p, Orbit(p, pivot, 0))
		}
	})

	t.Run("inverse", func(t *testing.T) {
		for _, rad := range []float64{0.1, -1.3, math.Pi, 7.5} {
			p := V(123.5, -42)
			requireNear(t, p, Orbit(Orbit(p, pivot, rad), pivot, -rad))
		}
	})

	t.Run("preserves distance to pivot", func(t *testing.T) {
		p := V(10, 20)
		q := Orbit(p, pivot, 0.77)
		require.InDelta(t, Len(p.Sub(pivot)), Len(q.Sub(pivot)), eps)
	})
}

func TestTrunc(t *testing.T) {
	x, y := V(12.9, -3.7).Trunc()
	assert.Equal(t, 12, x)
	assert.Equal(t, -3, y)
}
