package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// ImageCanvas is a Canvas backed by an in-memory image.
type ImageCanvas struct {
	*image.RGBA64
}

var _ Canvas = (*ImageCanvas)(nil)

func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{RGBA64: image.NewRGBA64(image.Rect(0, 0, width, height))}
}

func (c *ImageCanvas) Size() (int, int) {
	b := c.Bounds()
	return b.Dx(), b.Dy()
}

func (c *ImageCanvas) SetPixel(x, y int, col color.Color) {
	c.Set(x, y, col)
}

func (c *ImageCanvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.RGBA64)
}
