/*
Package cardinal implements 2D points, affine transformations and
cardinal spline interpolation through closed sets of control points.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package cardinal

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cardinal'
func tracer() tracing.Trace {
	return tracing.Select("cardinal")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// === Point Data Type =======================================================

// Point2D is a point in the plane. It is used for vectors (tangents, deltas)
// as well.
type Point2D struct {
	X float64
	Y float64
}

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a point from floats.
func P(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Pretty Stringer for points.
func (p Point2D) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// F is a quick notation for getting float values from a point.
func (p Point2D) F() (float64, float64) {
	return p.X, p.Y
}

// Add returns p + q, component-wise.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q, component-wise.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scaled returns a new point scaled by factor a.
// Contrary to Zap, the result is not rounded.
func (p Point2D) Scaled(a float64) Point2D {
	return Point2D{X: p.X * a, Y: p.Y * a}
}

// Lerp linearly interpolates between p (t=0) and q (t=1).
func (p Point2D) Lerp(q Point2D, t float64) Point2D {
	return Point2D{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Zap rounds x-part and y-part to Epsilon.
func (p Point2D) Zap() Point2D {
	return P(Zap(p.X), Zap(p.Y))
}

// IsOrigin is a predicate: is this point origin?
func (p Point2D) IsOrigin() bool {
	return p.Equal(Origin)
}

// IsFinite is false if any coordinate is NaN or ±Inf.
func (p Point2D) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Equal compares two points, with tolerance Epsilon.
func (p Point2D) Equal(q Point2D) bool {
	return Is0(p.X-q.X) && Is0(p.Y-q.Y)
}

// Shifted returns a new point translated by v.
func (p Point2D) Shifted(v Point2D) Point2D {
	T := Translation(v)
	return T.Transform(p).Zap()
}

// Rotated returns a new point rotated around origin by theta (counterclockwise).
func (p Point2D) Rotated(theta float64) Point2D {
	T := Rotation(theta)
	return T.Transform(p).Zap()
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	m := make([]float64, 9)
	return m
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	c := make([]float64, 3)
	c[0] = m[col]
	c[1] = m[3+col]
	c[2] = m[6+col]
	return c
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Point2D) AT {
	m := Identity()
	m.set(0, 2, p.X)
	m.set(1, 2, p.Y)
	return m
}

// Scaling transform. Scales x by sx and y by sy. A negative factor mirrors
// at the corresponding axis.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := newAT()
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// ScreenToWorld returns the transform from window coordinates (origin top
// left, y pointing down) to curve coordinates (origin bottom left, y pointing
// up), for a window of the given height.
func ScreenToWorld(height float64) AT {
	if height <= 0 {
		tracer().Errorf("screen height must be positive, is %g", height)
	}
	return Scaling(1, -1).Combine(Translation(P(0, height)))
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	s := fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	return s
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	p1 := vec1[0] * vec2[0]
	p2 := vec1[1] * vec2[1]
	p3 := vec1[2] * vec2[2]
	return p1 + p2 + p3
}

// Combine 2 affine transformation to a new one. Returns a new transformation
// without changing the argument(s). The result applies m first, then n.
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

func (m AT) multiplyVector(v []float64) []float64 {
	c := make([]float64, 3)
	c[0] = dotProd(m.row(0), v)
	c[1] = dotProd(m.row(1), v)
	c[2] = dotProd(m.row(2), v)
	return c
}

// Transform a 2D-point. The argument is unchanged and a new point is returned.
func (m AT) Transform(p Point2D) Point2D {
	c := []float64{p.X, p.Y, 1.0}
	c = m.multiplyVector(c)
	return P(c[0], c[1])
}

// TransformAll transforms a sequence of points, returning a new slice.
func (m AT) TransformAll(pts []Point2D) []Point2D {
	r := make([]Point2D, len(pts))
	for i, p := range pts {
		r[i] = m.Transform(p)
	}
	return r
}
