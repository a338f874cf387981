package spline

import (
	"fmt"

	"github.com/npillmayer/cardinal"
	"github.com/npillmayer/cardinal/polyn"
)

// Build calculates the vertices of a closed cardinal spline through
// controlPoints. For each span i → i+1 (mod n) it calculates the tangents
// from the knots i-1 and i+2 (mod n), and interpolates segmentsPerSpan
// points. The result is the concatenation of all spans, n ⋅ segmentsPerSpan
// points in total, starting with controlPoints[0]. Clients should draw it as
// a closed line strip.
//
// With fewer than 3 control points there is no meaningful spline; Build then
// returns a copy of controlPoints, regardless of the other arguments.
//
// Build returns ErrNonPositiveSegments for segmentsPerSpan ≤ 0 and
// ErrInvalidPoint for control points with NaN or infinite coordinates.
func Build(controlPoints []cardinal.Point2D, segmentsPerSpan int, tension float64) ([]cardinal.Point2D, error) {
	n := len(controlPoints)
	if n < 3 {
		tracer().Debugf("%d control points, no spline to interpolate", n)
		return append([]cardinal.Point2D(nil), controlPoints...), nil
	}
	weights, err := prepare(controlPoints, segmentsPerSpan)
	if err != nil {
		return nil, err
	}
	path := &Path{points: controlPoints}
	vertices := make([]cardinal.Point2D, 0, n*segmentsPerSpan)
	for i := 0; i < n; i++ {
		tangents := Tangents(path.Z(i-1), path.Z(i), path.Z(i+1), path.Z(i+2), tension)
		tracer().Debugf("span %d: %s → %s, tangents %s and %s", i,
			path.Z(i), path.Z(i+1), tangents.Start, tangents.End)
		vertices = interpolateWith(vertices, path.Z(i), path.Z(i+1), tangents, weights)
	}
	tracer().Infof("spline through %d knots has %d vertices", n, len(vertices))
	return vertices, nil
}

// MustBuild is a compatibility helper which panics on errors.
func MustBuild(controlPoints []cardinal.Point2D, segmentsPerSpan int, tension float64) []cardinal.Point2D {
	vertices, err := Build(controlPoints, segmentsPerSpan, tension)
	if err != nil {
		panic(err)
	}
	return vertices
}

// buildOpen calculates the vertices of an open spline. There is no span
// from the last knot back to the first one. The first and last knot serve
// as their own outer neighbours. The result has (n-1) ⋅ segmentsPerSpan + 1
// points and ends with the last knot.
func buildOpen(path *Path, segmentsPerSpan int, tension float64) ([]cardinal.Point2D, error) {
	n := path.N()
	if n < 3 {
		tracer().Debugf("%d control points, no spline to interpolate", n)
		return path.ControlPoints(), nil
	}
	weights, err := prepare(path.points, segmentsPerSpan)
	if err != nil {
		return nil, err
	}
	vertices := make([]cardinal.Point2D, 0, (n-1)*segmentsPerSpan+1)
	for i := 0; i < n-1; i++ {
		tangents := Tangents(path.clampedZ(i-1), path.Z(i), path.Z(i+1), path.clampedZ(i+2), tension)
		vertices = interpolateWith(vertices, path.Z(i), path.Z(i+1), tangents, weights)
	}
	vertices = append(vertices, path.Z(n-1))
	tracer().Infof("open spline through %d knots has %d vertices", n, len(vertices))
	return vertices, nil
}

// prepare validates the input for a spline and tabulates the Hermite weights.
func prepare(controlPoints []cardinal.Point2D, segmentsPerSpan int) ([][4]float64, error) {
	if segmentsPerSpan <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveSegments, segmentsPerSpan)
	}
	for i, p := range controlPoints {
		if !p.IsFinite() {
			return nil, fmt.Errorf("%w at knot %d", ErrInvalidPoint, i)
		}
	}
	weights, err := polyn.Weights(segmentsPerSpan)
	if err != nil { // cannot happen, segmentsPerSpan is positive
		return nil, err
	}
	return weights, nil
}
