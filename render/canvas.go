// Package render rasterizes scene frames into an RGB565 framebuffer.
package render

import (
	"image/color"

	"conevision/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var _ drivers.Displayer = (*Canvas)(nil)

// Canvas draws into a hal.Framebuffer. Everything outside the buffer is
// clipped. It also satisfies drivers.Displayer so tinyfont can render text.
type Canvas struct {
	fb   hal.Framebuffer
	font tinyfont.Fonter

	// ascent is the distance from the top of a text box to the baseline.
	ascent int
}

func NewCanvas(fb hal.Framebuffer) *Canvas {
	c := &Canvas{fb: fb, font: &freemono.Bold12pt7b}
	c.ascent = fontAscent(c.font)
	return c
}

// fontAscent measures the tallest glyph above the baseline in the ASCII range.
func fontAscent(f tinyfont.Fonter) int {
	top := 0
	for r := rune(0x21); r < 0x7f; r++ {
		g := f.GetGlyph(r)
		if up := -int(g.Info().YOffset); up > top {
			top = up
		}
	}
	return top
}

func (c *Canvas) usable() bool {
	return c.fb != nil && c.fb.Format() == hal.PixelFormatRGB565 && c.fb.Buffer() != nil
}

func (c *Canvas) Size() (x, y int16) {
	if c.fb == nil {
		return 0, 0
	}
	return int16(c.fb.Width()), int16(c.fb.Height())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.set(int(x), int(y), hal.RGB565(col.R, col.G, col.B))
}

func (c *Canvas) Display() error {
	if c.fb == nil {
		return nil
	}
	return c.fb.Present()
}

func (c *Canvas) set(x, y int, pixel uint16) {
	if !c.usable() {
		return
	}
	if x < 0 || y < 0 || x >= c.fb.Width() || y >= c.fb.Height() {
		return
	}
	buf := c.fb.Buffer()
	off := y*c.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (c *Canvas) Clear(col color.RGBA) {
	if c.fb == nil {
		return
	}
	c.fb.ClearRGB(col.R, col.G, col.B)
}

// Line draws a one-pixel Bresenham line including both end points.
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA) {
	if !c.usable() {
		return
	}
	pixel := hal.RGB565(col.R, col.G, col.B)

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.set(x0, y0, pixel)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle fills every pixel whose center lies within r of (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r int, col color.RGBA) {
	if !c.usable() || r < 0 {
		return
	}
	pixel := hal.RGB565(col.R, col.G, col.B)
	w, h := c.fb.Width(), c.fb.Height()

	y0 := clampInt(cy-r, 0, h-1)
	y1 := clampInt(cy+r, 0, h-1)
	for y := y0; y <= y1; y++ {
		dy := y - cy
		span := isqrt(r*r - dy*dy)
		if span < 0 {
			continue
		}
		x0 := clampInt(cx-span, 0, w)
		x1 := clampInt(cx+span, -1, w-1)
		for x := x0; x <= x1; x++ {
			c.set(x, y, pixel)
		}
	}
}

// Text writes s with its top-left corner at (x, y).
func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	if !c.usable() || s == "" {
		return
	}
	tinyfont.WriteLine(c, c.font, int16(x), int16(y+c.ascent), s, col)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// isqrt returns floor(sqrt(v)), or -1 for negative v.
func isqrt(v int) int {
	if v < 0 {
		return -1
	}
	r := 0
	for (r+1)*(r+1) <= v {
		r++
	}
	return r
}
