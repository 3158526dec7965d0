package thicket

// Surface is a drawing target that can fill a four-cornered polygon.
type Surface interface {
	Width() int
	Height() int

	// DrawQuad fills the quad (x1,y1)-(x2,y2)-(x3,y3)-(x4,y4), given in
	// winding order, interpolating the corner colors. z orders quads on
	// surfaces that support depth.
	DrawQuad(x1, y1 float64, c1 Color,
		x2, y2 float64, c2 Color,
		x3, y3 float64, c3 Color,
		x4, y4 float64, c4 Color,
		z float64, mode BlendMode)
}

// FadeOptions is accepted by Fade. It carries no settings yet.
type FadeOptions struct{}

// Fill fills the whole window surface with c.
func (w *Window) Fill(c Color) {
	s := w.surface
	if s == nil {
		return
	}
	sw, sh := float64(s.Width()), float64(s.Height())
	s.DrawQuad(0, 0, c, sw, 0, c, sw, sh, c, 0, sh, c, 0, BlendNormal)
}

// FillRect fills r with c.
func (w *Window) FillRect(r Rect, c Color) {
	s := w.surface
	if s == nil {
		return
	}
	s.DrawQuad(r.X, r.Y, c, r.Right, r.Y, c, r.Right, r.Bottom, c, r.X, r.Bottom, c, 0, BlendNormal)
}

// Fade is reserved for screen fades. It currently draws nothing.
func (w *Window) Fade(opts FadeOptions) {}
