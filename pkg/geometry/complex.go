package geometry

import "math"

// Complex is a point in the complex plane.
//
// Values are immutable; every operation returns a new Complex. Division by
// zero is not trapped and produces NaN or Inf components.
type Complex struct {
	Re, Im float64
}

var (
	Zero = Complex{}
	One  = Complex{Re: 1.0}
)

// Real returns the complex number with real part re and no imaginary part.
func Real(re float64) Complex {
	return Complex{Re: re}
}

func (c Complex) Add(o Complex) Complex {
	return Complex{Re: c.Re + o.Re, Im: c.Im + o.Im}
}

func (c Complex) Sub(o Complex) Complex {
	return Complex{Re: c.Re - o.Re, Im: c.Im - o.Im}
}

func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

// Div divides by conjugate multiplication.
func (c Complex) Div(o Complex) Complex {
	denominator := o.Re*o.Re + o.Im*o.Im
	return Complex{
		Re: (c.Re*o.Re + c.Im*o.Im) / denominator,
		Im: (c.Im*o.Re - c.Re*o.Im) / denominator,
	}
}

func (c Complex) Magnitude() float64 {
	return math.Sqrt(c.Re*c.Re + c.Im*c.Im)
}

// IsBad is whether either component is NaN or infinite.
func (c Complex) IsBad() bool {
	return math.IsNaN(c.Re) || math.IsNaN(c.Im) ||
		math.IsInf(c.Re, 0) || math.IsInf(c.Im, 0)
}

func (c Complex) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

func FromComplex128(z complex128) Complex {
	return Complex{Re: real(z), Im: imag(z)}
}
