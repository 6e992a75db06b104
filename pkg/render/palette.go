package render

import (
	"image/color"
	"math"

	"github.com/willbeason/newton-fractal/pkg/transforms"
)

// A Palette chooses the color of a pixel from how its Newton iteration ended.
type Palette func(transforms.Outcome) color.Color

// NoConvergence is the color of pixels whose iteration did not converge.
var NoConvergence color.Color = color.Black

// HuePalette colors converged pixels by iteration count, cycling through
// the hue wheel every 36 iterations. Everything else is NoConvergence.
func HuePalette(o transforms.Outcome) color.Color {
	if !o.Converged {
		return NoConvergence
	}

	return HSL{
		H: float64((o.Iterations * 10) % 360),
		S: 1.0,
		L: 0.5,
	}
}

// HSL is an opaque color given by hue in degrees [0, 360), and saturation and
// lightness in [0, 1].
type HSL struct {
	H, S, L float64
}

var _ color.Color = HSL{}

func (c HSL) RGBA() (r, g, b, a uint32) {
	r1, g1, b1 := c.rgb()

	return to16(r1), to16(g1), to16(b1), 0xffff
}

func (c HSL) rgb() (float64, float64, float64) {
	chroma := (1.0 - math.Abs(2.0*c.L-1.0)) * c.S

	h := math.Mod(c.H, 360.0)
	if h < 0 {
		h += 360.0
	}
	h /= 60.0

	x := chroma * (1.0 - math.Abs(math.Mod(h, 2.0)-1.0))
	m := c.L - chroma/2.0

	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = chroma, x, 0
	case h < 2:
		r, g, b = x, chroma, 0
	case h < 3:
		r, g, b = 0, chroma, x
	case h < 4:
		r, g, b = 0, x, chroma
	case h < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return r + m, g + m, b + m
}

func to16(v float64) uint32 {
	v = math.Max(0.0, math.Min(1.0, v))
	return uint32(math.Round(v * math.MaxUint16))
}
