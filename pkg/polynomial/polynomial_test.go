package polynomial

import (
	"testing"

	"github.com/willbeason/newton-fractal/pkg/geometry"
)

func TestDerivative(t *testing.T) {
	tcs := []struct {
		p    Polynomial
		want Polynomial
	}{
		{p: Polynomial{{3, 2}, {-2, 1}, {1, 0}}, want: Polynomial{{6, 1}, {-2, 0}}},
		{p: Polynomial{{1, 3}, {-1, 0}}, want: Polynomial{{3, 2}}},
		{p: Polynomial{{5, 0}}, want: Polynomial{}},
		{p: Polynomial{}, want: Polynomial{}},
		{p: Polynomial{{1, 2}, {1, 2}}, want: Polynomial{{2, 1}, {2, 1}}},
	}

	for _, tc := range tcs {
		got := tc.p.Derivative()
		if !sameTerms(got, tc.want) {
			t.Fatalf("%v.Derivative()=%v; want %v", tc.p, got, tc.want)
		}
	}
}

func TestDerivative_DoesNotModify(t *testing.T) {
	p := Polynomial{{3, 2}, {1, 0}}
	_ = p.Derivative()

	if !sameTerms(p, Polynomial{{3, 2}, {1, 0}}) {
		t.Fatalf("Derivative modified its receiver: %v", p)
	}
}

func TestEvaluate(t *testing.T) {
	zSquaredMinusOne := Parse("z^2 - 1", "z")

	tcs := []struct {
		p    Polynomial
		z    geometry.Complex
		want geometry.Complex
	}{
		{p: zSquaredMinusOne, z: geometry.Complex{Re: 1}, want: geometry.Complex{}},
		{p: zSquaredMinusOne, z: geometry.Complex{Im: 1}, want: geometry.Complex{Re: -2}},
		{p: zSquaredMinusOne, z: geometry.Complex{Re: -1}, want: geometry.Complex{}},
		{p: Polynomial{}, z: geometry.Complex{Re: 3, Im: 4}, want: geometry.Complex{}},
		{p: Polynomial{{7, 0}}, z: geometry.Complex{Re: 3, Im: 4}, want: geometry.Complex{Re: 7}},
		// z^3 at i is -i.
		{p: Polynomial{{1, 3}}, z: geometry.Complex{Im: 1}, want: geometry.Complex{Im: -1}},
		// Repeated powers sum.
		{p: Polynomial{{1, 1}, {2, 1}}, z: geometry.Complex{Re: 2, Im: 1}, want: geometry.Complex{Re: 6, Im: 3}},
	}

	for _, tc := range tcs {
		got := tc.p.Evaluate(tc.z)
		if got != tc.want {
			t.Fatalf("%v.Evaluate(%v)=%v; want %v", tc.p, tc.z, got, tc.want)
		}
	}
}

func TestDegree(t *testing.T) {
	if got := (Polynomial{}).Degree(); got != -1 {
		t.Fatalf("empty Degree()=%d; want -1", got)
	}
	if got := Parse("z + 4z^3 - z^2", "z").Degree(); got != 3 {
		t.Fatalf("Degree()=%d; want 3", got)
	}
}

func TestString(t *testing.T) {
	tcs := []struct {
		p    Polynomial
		want string
	}{
		{p: Polynomial{}, want: "0"},
		{p: Polynomial{{3, 2}, {-2, 1}, {1, 0}}, want: "3z^2 - 2z + 1"},
		{p: Polynomial{{-1, 3}, {-1, 0}}, want: "-z^3 - 1"},
		{p: Polynomial{{0.5, 1}}, want: "0.5z"},
		{p: Polynomial{{1, 0}}, want: "1"},
	}

	for _, tc := range tcs {
		if got := tc.p.String("z"); got != tc.want {
			t.Fatalf("String()=%q; want %q", got, tc.want)
		}
	}
}

func TestString_RoundTrips(t *testing.T) {
	p := Polynomial{{3, 2}, {-2, 1}, {1, 0}, {-0.25, 5}}

	got := Parse(p.String("z"), "z")
	if !sameTerms(got, p) {
		t.Fatalf("Parse(%q)=%v; want %v", p.String("z"), got, p)
	}
}
