package transforms

import (
	"testing"

	"github.com/willbeason/newton-fractal/pkg/geometry"
	"github.com/willbeason/newton-fractal/pkg/polynomial"
)

func TestNewton_ConvergesToRoot(t *testing.T) {
	n := NewNewton(polynomial.Parse("z^2-1", "z"))

	tcs := []struct {
		z0   geometry.Complex
		root geometry.Complex
	}{
		{z0: geometry.Complex{Re: 1.5}, root: geometry.Complex{Re: 1}},
		{z0: geometry.Complex{Re: -3}, root: geometry.Complex{Re: -1}},
		{z0: geometry.Complex{Re: 0.5, Im: 0.5}, root: geometry.Complex{Re: 1}},
	}

	for _, tc := range tcs {
		got := n.Iterate(tc.z0)
		if !got.Converged || got.State != Converged {
			t.Fatalf("Iterate(%v)=%+v; want converged", tc.z0, got)
		}
		if got.Iterations > 10 {
			t.Fatalf("Iterate(%v) took %d iterations; want at most 10", tc.z0, got.Iterations)
		}
		if d := got.Final.Sub(tc.root).Magnitude(); d > 1e-5 {
			t.Fatalf("Iterate(%v) ended at %v; want near %v", tc.z0, got.Final, tc.root)
		}
	}
}

func TestNewton_StartingOnRoot(t *testing.T) {
	n := NewNewton(polynomial.Parse("z^2-1", "z"))

	got := n.Iterate(geometry.Complex{Re: 1})
	if !got.Converged || got.Iterations != 0 {
		t.Fatalf("Iterate(1)=%+v; want converged at iteration 0", got)
	}
}

func TestNewton_EmptyPolynomial(t *testing.T) {
	n := NewNewton(polynomial.Polynomial{})

	for _, z0 := range []geometry.Complex{{}, {Re: 1, Im: -1}, {Re: 100}} {
		got := n.Iterate(z0)
		if got.Converged || got.State != ConvergedEarly || got.Iterations != 0 {
			t.Fatalf("Iterate(%v)=%+v; want ConvergedEarly at iteration 0", z0, got)
		}
		if got.Final != z0 {
			t.Fatalf("Iterate(%v) moved to %v", z0, got.Final)
		}
	}
}

func TestNewton_ZeroDerivative(t *testing.T) {
	// z^2-1 has a critical point at the origin.
	n := NewNewton(polynomial.Parse("z^2-1", "z"))

	got := n.Iterate(geometry.Zero)
	if got.Converged || got.State != ConvergedEarly {
		t.Fatalf("Iterate(0)=%+v; want ConvergedEarly", got)
	}
}

func TestNewton_Exhausted(t *testing.T) {
	// Newton's method on z^2+1 never leaves the real line, so it never converges
	// from a real starting point.
	n := NewNewton(polynomial.Parse("z^2+1", "z"))
	n.MaxIterations = 20

	got := n.Iterate(geometry.Complex{Re: 0.3})
	if got.Converged || got.State != Exhausted || got.Iterations != 20 {
		t.Fatalf("Iterate(0.3)=%+v; want Exhausted after 20 iterations", got)
	}
}

func TestNewton_ZeroIterationCap(t *testing.T) {
	n := NewNewton(polynomial.Parse("z^2-1", "z"))
	n.MaxIterations = 0

	got := n.Iterate(geometry.Complex{Re: 1})
	if got.Converged || got.State != Exhausted || got.Iterations != 0 {
		t.Fatalf("Iterate(1)=%+v; want Exhausted at iteration 0", got)
	}
}

func TestNewton_Next(t *testing.T) {
	n := NewNewton(polynomial.Parse("z^2-1", "z"))

	// 2 - (4-1)/4 = 1.25
	got := n.Next(geometry.Complex{Re: 2})
	want := geometry.Complex{Re: 1.25}
	if got != want {
		t.Fatalf("Next(2)=%v; want %v", got, want)
	}
}

func TestNewton_Deterministic(t *testing.T) {
	n := NewNewton(polynomial.Parse("z^3-1", "z"))
	z0 := geometry.Complex{Re: -0.4, Im: 0.7}

	first := n.Iterate(z0)
	for i := 0; i < 5; i++ {
		if got := n.Iterate(z0); got != first {
			t.Fatalf("Iterate(%v)=%+v; first run gave %+v", z0, got, first)
		}
	}
}

func TestStateString(t *testing.T) {
	tcs := map[State]string{
		Running:        "running",
		ConvergedEarly: "converged-early",
		Converged:      "converged",
		Exhausted:      "exhausted",
		State(42):      "unknown",
	}

	for s, want := range tcs {
		if got := s.String(); got != want {
			t.Fatalf("State(%d).String()=%q; want %q", int(s), got, want)
		}
	}
}
