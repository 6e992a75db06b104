package transforms

import "github.com/willbeason/newton-fractal/pkg/geometry"

// Linear maps canvas pixel coordinates onto a Span-wide region of the complex
// plane centered on Center. The real part of the input is the pixel column and
// the imaginary part is the pixel row.
type Linear struct {
	Width, Height float64
	Span          float64
	Center        geometry.Complex
}

// PixelToPlane returns the Linear map for a width by height canvas.
func PixelToPlane(width, height int, span float64) Linear {
	return Linear{
		Width:  float64(width),
		Height: float64(height),
		Span:   span,
	}
}

func (l Linear) Next(p geometry.Complex) geometry.Complex {
	return geometry.Complex{
		Re: (p.Re-l.Width/2)*l.Span/l.Width + l.Center.Re,
		Im: (p.Im-l.Height/2)*l.Span/l.Height + l.Center.Im,
	}
}

// At maps pixel (x, y).
func (l Linear) At(x, y int) geometry.Complex {
	return l.Next(geometry.Complex{Re: float64(x), Im: float64(y)})
}
