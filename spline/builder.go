package spline

import "github.com/npillmayer/cardinal"

// Path is a sequence of control points (knots). Paths are cyclic by default,
// i.e. the knot following the last one is the first one. A path may be
// built incrementally, one knot per user interaction:
//
//	path := Nullpath().Knot(cardinal.P(0,0)).Knot(cardinal.P(10,0)).Knot(cardinal.P(10,10)).Cycle()
//
// Knots are never re-ordered or removed.
type Path struct {
	points []cardinal.Point2D // point i
	open   bool               // open curve, see End()
}

// Nullpath creates an empty path, to be extended by subsequent builder
// calls.
func Nullpath() *Path {
	return &Path{}
}

// PathOf creates a cyclic path from a slice of points. The slice is copied.
func PathOf(points []cardinal.Point2D) *Path {
	path := &Path{}
	path.points = make([]cardinal.Point2D, len(points), len(points)*2)
	copy(path.points, points)
	return path
}

// Knot appends a control point to a path. Part of builder functionality.
func (path *Path) Knot(p cardinal.Point2D) *Path {
	path.points = append(path.points, p)
	return path
}

// Cycle closes a path. Part of builder functionality.
func (path *Path) Cycle() *Path {
	path.open = false
	return path
}

// End makes a path open: the curve starts at the first knot and ends at
// the last one, with no span connecting the two. Part of builder functionality.
func (path *Path) End() *Path {
	path.open = true
	return path
}

// IsCycle is a predicate: is this path cyclic?
func (path *Path) IsCycle() bool {
	return !path.open
}

// N returns the length of this path (knot count).
func (path *Path) N() int {
	return len(path.points)
}

// Z returns the knot at position (i mod N). Negative positions wrap around
// as well, i.e. Z(-1) is the last knot. Z panics for an empty path.
func (path *Path) Z(i int) cardinal.Point2D {
	n := path.N()
	return path.points[((i%n)+n)%n]
}

// clampedZ returns the knot at position i, with i clamped to the knots
// available. Used as the neighbour function of open paths.
func (path *Path) clampedZ(i int) cardinal.Point2D {
	if i < 0 {
		i = 0
	} else if i >= path.N() {
		i = path.N() - 1
	}
	return path.points[i]
}

// ControlPoints returns a copy of the knots of this path.
func (path *Path) ControlPoints() []cardinal.Point2D {
	return append([]cardinal.Point2D(nil), path.points...)
}

// Spline builds the interpolated curve for this path.
// For cyclic paths this is equivalent to Build(path.ControlPoints(), …).
func (path *Path) Spline(opts Options) ([]cardinal.Point2D, error) {
	if path.IsCycle() {
		return Build(path.points, opts.SegmentsPerSpan, opts.Tension)
	}
	return buildOpen(path, opts.SegmentsPerSpan, opts.Tension)
}
