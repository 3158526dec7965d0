package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/thicket"
)

// Surface draws thicket quads onto a tcell screen, one cell per unit. A quad
// fills every cell whose center lies inside its bounding box, using the first
// corner's color as the cell background. Depth and blend mode are ignored;
// fully transparent colors draw nothing.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Width returns the screen width in cells.
func (s *Surface) Width() int {
	w, _ := s.screen.Size()
	return w
}

// Height returns the screen height in cells.
func (s *Surface) Height() int {
	_, h := s.screen.Size()
	return h
}

// DrawQuad implements thicket.Surface.
func (s *Surface) DrawQuad(x1, y1 float64, c1 thicket.Color,
	x2, y2 float64, _ thicket.Color,
	x3, y3 float64, _ thicket.Color,
	x4, y4 float64, _ thicket.Color,
	_ float64, _ thicket.BlendMode) {
	if c1.A <= 0 {
		return
	}
	minX := math.Min(math.Min(x1, x2), math.Min(x3, x4))
	maxX := math.Max(math.Max(x1, x2), math.Max(x3, x4))
	minY := math.Min(math.Min(y1, y2), math.Min(y3, y4))
	maxY := math.Max(math.Max(y1, y2), math.Max(y3, y4))

	sw, sh := s.screen.Size()
	// Cells whose centers (cx+0.5) fall inside [min, max).
	x0 := max(int(math.Ceil(minX-0.5)), 0)
	xe := min(int(math.Ceil(maxX-0.5)), sw)
	y0 := max(int(math.Ceil(minY-0.5)), 0)
	ye := min(int(math.Ceil(maxY-0.5)), sh)

	style := tcell.StyleDefault.Background(Color(c1))
	for y := y0; y < ye; y++ {
		for x := x0; x < xe; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Color converts a thicket color to a tcell true color. Alpha is dropped.
func Color(c thicket.Color) tcell.Color {
	rgba := thicket.Color{R: c.R, G: c.G, B: c.B, A: 1}.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
