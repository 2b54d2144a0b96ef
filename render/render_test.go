package render

import (
	"image/color"
	"testing"

	"conevision/hal"
	"conevision/vec2"
	"conevision/vision"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tinygo.org/x/tinyfont"
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 0xff}
)

func px(c color.RGBA) uint16 { return hal.RGB565(c.R, c.G, c.B) }

func pixel(t *testing.T, fb hal.Framebuffer, x, y int) uint16 {
	t.Helper()
	p, ok := hal.PixelAt(fb, x, y)
	require.True(t, ok, "(%d,%d) out of bounds", x, y)
	return p
}

func count(fb hal.Framebuffer, x0, y0, x1, y1 int, want uint16) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if p, ok := hal.PixelAt(fb, x, y); ok && p == want {
				n++
			}
		}
	}
	return n
}

func TestLine(t *testing.T) {
	fb := hal.NewFramebuffer(20, 20)
	c := NewCanvas(fb)
	c.Clear(black)

	c.Line(2, 3, 12, 3, white)
	for x := 2; x <= 12; x++ {
		assert.Equal(t, px(white), pixel(t, fb, x, 3), "x=%d", x)
	}
	assert.Equal(t, px(black), pixel(t, fb, 13, 3))

	c.Line(0, 0, 19, 19, white)
	for i := 0; i < 20; i++ {
		assert.Equal(t, px(white), pixel(t, fb, i, i))
	}
}

func TestLineClipped(t *testing.T) {
	fb := hal.NewFramebuffer(10, 10)
	c := NewCanvas(fb)
	c.Clear(black)

	assert.NotPanics(t, func() { c.Line(-50, 5, 50, 5, white) })
	assert.Equal(t, 10, count(fb, 0, 0, 10, 10, px(white)))
}

func TestFillCircle(t *testing.T) {
	fb := hal.NewFramebuffer(40, 40)
	c := NewCanvas(fb)
	c.Clear(black)

	c.FillCircle(20, 20, 5, white)
	assert.Equal(t, px(white), pixel(t, fb, 20, 20))
	assert.Equal(t, px(white), pixel(t, fb, 25, 20))
	assert.Equal(t, px(white), pixel(t, fb, 20, 15))
	assert.Equal(t, px(black), pixel(t, fb, 26, 20))
	assert.Equal(t, px(black), pixel(t, fb, 24, 24), "corner is outside the disc")

	// Roughly πr².
	n := count(fb, 0, 0, 40, 40, px(white))
	assert.InDelta(t, 78, n, 12)
}

func TestFillCircleClipped(t *testing.T) {
	fb := hal.NewFramebuffer(10, 10)
	c := NewCanvas(fb)
	c.Clear(black)

	assert.NotPanics(t, func() {
		c.FillCircle(0, 0, 16, white)
		c.FillCircle(-100, -100, 16, white)
		c.FillCircle(500, 5, 16, white)
	})
	assert.Equal(t, px(white), pixel(t, fb, 9, 9))
}

func TestText(t *testing.T) {
	fb := hal.NewFramebuffer(200, 40)
	c := NewCanvas(fb)
	c.Clear(black)

	require.Greater(t, c.ascent, 0)
	c.Text(0, 0, vision.SightedText, white)

	assert.Greater(t, count(fb, 0, 0, 200, 40, px(white)), 50)
	_, adv := tinyfont.LineWidth(c.font, vision.SightedText)
	w := int(adv)
	assert.Greater(t, w, 0)
	assert.Zero(t, count(fb, w+2, 0, 200, 40, px(white)), "nothing past the text advance")
}

func TestDrawFrame(t *testing.T) {
	cfg := vision.DefaultConfig()
	fb := hal.NewFramebuffer(800, 600)
	c := NewCanvas(fb)

	t.Run("visible target", func(t *testing.T) {
		_, f := vision.Step(cfg, vision.NewState(cfg), 0, vec2.V(400, 150))
		Draw(c, f)

		assert.Equal(t, px(vision.ColorTarget), pixel(t, fb, 400, 150))
		assert.Equal(t, px(vision.ColorObserver), pixel(t, fb, 400, 300))
		fx, fy := f.Far.Trunc()
		assert.Equal(t, px(vision.ColorCone), pixel(t, fb, fx, fy))
		lx, ly := f.Left.Trunc()
		assert.Equal(t, px(vision.ColorCone), pixel(t, fb, lx, ly))

		// Midpoint of observer→left edge lies on the cone line.
		mid := cfg.Observer.Add(f.Left).Scale(0.5)
		mx, my := mid.Trunc()
		near := count(fb, mx-1, my-1, mx+2, my+2, px(vision.ColorCone))
		assert.Greater(t, near, 0)

		assert.Equal(t, px(vision.ColorBackground), pixel(t, fb, 790, 590))
		assert.Greater(t, count(fb, 0, 0, 250, 40, px(vision.ColorLabel)), 0)
	})

	t.Run("hidden target", func(t *testing.T) {
		_, f := vision.Step(cfg, vision.NewState(cfg), 0, vec2.V(400, 550))
		Draw(c, f)

		assert.Equal(t, px(vision.ColorTarget), pixel(t, fb, 400, 550))
		assert.Zero(t, count(fb, 0, 0, 250, 40, px(vision.ColorLabel)))
	})
}

func TestCanvasWithoutFramebuffer(t *testing.T) {
	c := NewCanvas(nil)
	assert.NotPanics(t, func() {
		c.Clear(white)
		c.Line(0, 0, 5, 5, white)
		c.FillCircle(1, 1, 3, white)
		c.Text(0, 0, "x", white)
	})
	w, h := c.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
	assert.NoError(t, c.Display())
}
