package transforms

import (
	"github.com/willbeason/newton-fractal/pkg/geometry"
)

// A Transform iterates a passed point.
type Transform interface {
	Next(geometry.Complex) geometry.Complex
}

var (
	_ Transform = Newton{}
	_ Transform = Linear{}
)
