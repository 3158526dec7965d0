package thicket

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image used as the source for flat-colored quads.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.RGBA())
	}
	return whitePixel
}

// quadIndices splits a quad into two triangles: 0-1-2 and 0-2-3.
var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// ImageSurface draws onto an ebiten image. Quads are submitted immediately
// with DrawTriangles, so z is ignored and later quads cover earlier ones.
type ImageSurface struct {
	img   *ebiten.Image
	verts [4]ebiten.Vertex
}

// NewImageSurface wraps img.
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{img: img}
}

// Image returns the wrapped image.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

// Width returns the image width in pixels.
func (s *ImageSurface) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the image height in pixels.
func (s *ImageSurface) Height() int {
	return s.img.Bounds().Dy()
}

// DrawQuad implements Surface.
func (s *ImageSurface) DrawQuad(x1, y1 float64, c1 Color,
	x2, y2 float64, c2 Color,
	x3, y3 float64, c3 Color,
	x4, y4 float64, c4 Color,
	_ float64, mode BlendMode) {
	setVertex(&s.verts[0], x1, y1, c1)
	setVertex(&s.verts[1], x2, y2, c2)
	setVertex(&s.verts[2], x3, y3, c3)
	setVertex(&s.verts[3], x4, y4, c4)

	var op ebiten.DrawTrianglesOptions
	op.Blend = mode.EbitenBlend()
	s.img.DrawTriangles(s.verts[:], quadIndices, ensureWhitePixel(), &op)
}

func setVertex(v *ebiten.Vertex, x, y float64, c Color) {
	v.DstX = float32(x)
	v.DstY = float32(y)
	v.SrcX = 0.5
	v.SrcY = 0.5
	v.ColorR = float32(c.R)
	v.ColorG = float32(c.G)
	v.ColorB = float32(c.B)
	v.ColorA = float32(c.A)
}
