package spline

import (
	"fmt"

	"github.com/npillmayer/cardinal"
	"github.com/npillmayer/cardinal/polyn"
)

// Interpolate calculates the points on a span from start to end, using the
// cubic Hermite basis functions. The result contains exactly 'segments'
// points, for parameter u = i/segments, i = 0…segments-1. The first point
// is start, the end point is not included: it is the first point of the
// following span.
//
// Interpolate panics if segments is not positive.
func Interpolate(start, end cardinal.Point2D, segments int, tangents TangentPair) []cardinal.Point2D {
	weights, err := polyn.Weights(segments)
	if err != nil {
		panic(fmt.Sprintf("cannot interpolate span: %v", err))
	}
	return interpolateWith(nil, start, end, tangents, weights)
}

// interpolateWith appends the span's points to buf, using a pre-calculated
// table of Hermite weights. Weights do not depend on the span, therefore
// a spline builder will calculate them once per spline.
func interpolateWith(buf []cardinal.Point2D, start, end cardinal.Point2D, tangents TangentPair,
	weights [][4]float64) []cardinal.Point2D {
	for _, h := range weights {
		x := h[0]*start.X + h[1]*end.X + h[2]*tangents.Start.X + h[3]*tangents.End.X
		y := h[0]*start.Y + h[1]*end.Y + h[2]*tangents.Start.Y + h[3]*tangents.End.Y
		buf = append(buf, cardinal.P(x, y))
	}
	return buf
}
