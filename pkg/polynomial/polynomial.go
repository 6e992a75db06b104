// Package polynomial parses, differentiates, and evaluates single-variable
// polynomials with real coefficients over the complex plane.
package polynomial

import (
	"strconv"
	"strings"

	"github.com/willbeason/newton-fractal/pkg/geometry"
)

// A Term is one coefficient*variable^power summand of a Polynomial.
type Term struct {
	Coefficient float64
	Power       int
}

// A Polynomial is the ordered sum of its Terms.
//
// Terms with equal powers are not merged. Order does not change the value of
// Evaluate but is kept in parse order so results are reproducible.
// A Polynomial is never modified once built.
type Polynomial []Term

// Derivative returns the term-wise derivative of p.
//
// Constant terms are dropped, and every other term has its coefficient scaled
// by its power and its power decremented.
func (p Polynomial) Derivative() Polynomial {
	result := make(Polynomial, 0, len(p))

	for _, term := range p {
		if term.Power == 0 {
			continue
		}

		result = append(result, Term{
			Coefficient: term.Coefficient * float64(term.Power),
			Power:       term.Power - 1,
		})
	}

	return result
}

// Evaluate computes p(z).
//
// Powers are built by repeated multiplication from one, so the empty
// Polynomial evaluates to zero everywhere.
func (p Polynomial) Evaluate(z geometry.Complex) geometry.Complex {
	sum := geometry.Zero

	for _, term := range p {
		zPower := geometry.One
		for i := 0; i < term.Power; i++ {
			zPower = zPower.Mul(z)
		}

		sum = sum.Add(zPower.Mul(geometry.Real(term.Coefficient)))
	}

	return sum
}

// Degree is the largest power in p, or -1 if p has no terms.
func (p Polynomial) Degree() int {
	degree := -1
	for _, term := range p {
		if term.Power > degree {
			degree = term.Power
		}
	}

	return degree
}

// String writes p in the juxtaposition notation Parse accepts, using variable
// as the free variable.
func (p Polynomial) String(variable string) string {
	if len(p) == 0 {
		return "0"
	}

	sb := strings.Builder{}
	for i, term := range p {
		c := term.Coefficient

		switch {
		case i == 0 && c < 0:
			sb.WriteString("-")
			c = -c
		case i > 0 && c < 0:
			sb.WriteString(" - ")
			c = -c
		case i > 0:
			sb.WriteString(" + ")
		}

		if term.Power == 0 || c != 1.0 {
			sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		}

		if term.Power > 0 {
			sb.WriteString(variable)
		}
		if term.Power > 1 {
			sb.WriteString("^")
			sb.WriteString(strconv.Itoa(term.Power))
		}
	}

	return sb.String()
}
