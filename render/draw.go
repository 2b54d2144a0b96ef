package render

import "conevision/vision"

// Draw paints f onto c: background, lines, discs, then labels. Coordinates
// are truncated to whole pixels.
func Draw(c *Canvas, f vision.Frame) {
	c.Clear(f.Background)
	for _, l := range f.Lines {
		x0, y0 := l.From.Trunc()
		x1, y1 := l.To.Trunc()
		c.Line(x0, y0, x1, y1, l.Color)
	}
	for _, d := range f.Circles {
		x, y := d.Center.Trunc()
		c.FillCircle(x, y, d.Radius, d.Color)
	}
	for _, lb := range f.Labels {
		x, y := lb.At.Trunc()
		c.Text(x, y, lb.Text, lb.Color)
	}
}
