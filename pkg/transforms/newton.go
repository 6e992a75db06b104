package transforms

import (
	"github.com/willbeason/newton-fractal/pkg/geometry"
	"github.com/willbeason/newton-fractal/pkg/polynomial"
)

const (
	DefaultMaxIterations = 50
	DefaultTolerance     = 1e-6
)

// State is where a Newton iteration stopped.
type State int

const (
	Running State = iota
	// ConvergedEarly means the derivative was too small to take a step.
	ConvergedEarly
	// Converged means a step moved the point less than the tolerance.
	Converged
	// Exhausted means the iteration cap was reached.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case ConvergedEarly:
		return "converged-early"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Outcome is the result of iterating a single starting point.
type Outcome struct {
	// Iterations is the number of completed steps, at most MaxIterations.
	Iterations int

	// Converged is true only for State Converged.
	Converged bool
	State     State

	// Final is the last point reached before stopping.
	Final geometry.Complex
}

// Newton applies Newton's method for Polynomial, whose term-wise derivative
// must be Derivative.
type Newton struct {
	Polynomial polynomial.Polynomial
	Derivative polynomial.Polynomial

	MaxIterations int
	Tolerance     float64
}

// NewNewton returns a Newton for p with default limits.
func NewNewton(p polynomial.Polynomial) Newton {
	return Newton{
		Polynomial:    p,
		Derivative:    p.Derivative(),
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// Next takes one Newton step from z without checking the derivative.
func (n Newton) Next(z geometry.Complex) geometry.Complex {
	fz := n.Polynomial.Evaluate(z)
	dfz := n.Derivative.Evaluate(z)

	return z.Sub(fz.Div(dfz))
}

// Iterate runs Newton's method from z0 until it converges, the derivative
// vanishes, or MaxIterations steps have been taken.
func (n Newton) Iterate(z0 geometry.Complex) Outcome {
	z := z0
	iteration := 0

	for iteration < n.MaxIterations {
		fz := n.Polynomial.Evaluate(z)
		dfz := n.Derivative.Evaluate(z)

		// Avoid dividing by a very small number.
		if dfz.Magnitude() < n.Tolerance {
			return Outcome{Iterations: iteration, State: ConvergedEarly, Final: z}
		}

		zNew := z.Sub(fz.Div(dfz))

		if z.Sub(zNew).Magnitude() < n.Tolerance {
			return Outcome{Iterations: iteration, Converged: true, State: Converged, Final: z}
		}

		z = zNew
		iteration++
	}

	return Outcome{Iterations: iteration, State: Exhausted, Final: z}
}
