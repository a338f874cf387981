package spline

import "github.com/npillmayer/cardinal"

// Tangents calculates the tangents at the end points of the span
// start → end. prev is the control point before start, next the one after end.
//
//	t.start = tension ⋅ (end - prev)
//	t.end   = tension ⋅ (next - start)
//
// With tension = 0 both tangents vanish.
func Tangents(prev, start, end, next cardinal.Point2D, tension float64) TangentPair {
	return TangentPair{
		Start: end.Sub(prev).Scaled(tension),
		End:   next.Sub(start).Scaled(tension),
	}
}
