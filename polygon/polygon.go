/*
Package polygon handles polygons, most notably closed splines flattened
to their vertices. Boolean operations are delegated to polyclip-go.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/cardinal"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the 'graphics' tracer.
func L() tracing.Trace {
	return tracing.Select("graphics")
}

// Polygon is a set of closed contours. Polygons are usually built from a
// single contour; boolean operations may result in polygons with more than
// one contour, e.g. with holes. Insideness follows the even-odd rule.
type Polygon struct {
	contour polyclip.Contour // contour under construction
	poly    polyclip.Polygon // closed contours
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls:
//
//	pg := NullPolygon().Knot(cardinal.P(0,0)).Knot(cardinal.P(1,3)).Knot(cardinal.P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot adds a vertex to the contour under construction. Part of builder
// functionality.
func (pg *Polygon) Knot(p cardinal.Point2D) *Polygon {
	pg.contour.Add(polyclip.Point{X: p.X, Y: p.Y})
	return pg
}

// Cycle closes the contour under construction. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	if len(pg.contour) == 0 {
		return pg
	}
	if len(pg.contour) < 3 {
		L().Errorf("closing degenerate contour of %d vertices", len(pg.contour))
	}
	pg.poly.Add(pg.contour)
	pg.contour = nil
	return pg
}

// Box creates a rectangular polygon, given two opposite corners.
func Box(a, b cardinal.Point2D) *Polygon {
	minx, maxx := math.Min(a.X, b.X), math.Max(a.X, b.X)
	miny, maxy := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return NullPolygon().
		Knot(cardinal.P(minx, miny)).Knot(cardinal.P(maxx, miny)).
		Knot(cardinal.P(maxx, maxy)).Knot(cardinal.P(minx, maxy)).Cycle()
}

// FromVertices creates a polygon with a single contour. Clients use it to
// get the outline of a closed spline:
//
//	vertices, _ := spline.Build(knots, 100, 0.5)
//	outline := polygon.FromVertices(vertices)
func FromVertices(vertices []cardinal.Point2D) *Polygon {
	pg := NullPolygon()
	for _, v := range vertices {
		pg.Knot(v)
	}
	return pg.Cycle()
}

// N returns the total number of vertices of all closed contours.
func (pg *Polygon) N() int {
	return pg.poly.NumVertices()
}

// Contours returns the number of closed contours.
func (pg *Polygon) Contours() int {
	return len(pg.poly)
}

// Vertices returns the vertices of contour i.
func (pg *Polygon) Vertices(i int) []cardinal.Point2D {
	if i < 0 || i >= len(pg.poly) {
		return nil
	}
	vs := make([]cardinal.Point2D, len(pg.poly[i]))
	for j, p := range pg.poly[i] {
		vs[j] = cardinal.P(p.X, p.Y)
	}
	return vs
}

// BoundingBox returns the lower left and upper right corner of the
// smallest axis-aligned rectangle enclosing all contours.
func (pg *Polygon) BoundingBox() (cardinal.Point2D, cardinal.Point2D) {
	if len(pg.poly) == 0 {
		return cardinal.Origin, cardinal.Origin
	}
	bb := pg.poly.BoundingBox()
	return cardinal.P(bb.Min.X, bb.Min.Y), cardinal.P(bb.Max.X, bb.Max.Y)
}

// Contains is a predicate: is p inside the polygon (even-odd rule)?
func (pg *Polygon) Contains(p cardinal.Point2D) bool {
	pt := polyclip.Point{X: p.X, Y: p.Y}
	inside := false
	for _, c := range pg.poly {
		if c.Contains(pt) {
			inside = !inside
		}
	}
	return inside
}

// Area returns the area enclosed by the polygon. Contours nested within
// an odd number of other contours count as holes.
func (pg *Polygon) Area() float64 {
	area := 0.0
	for i, c := range pg.poly {
		a := math.Abs(signedArea(c))
		if len(c) > 0 && pg.depth(i)%2 == 1 {
			a = -a
		}
		area += a
	}
	return area
}

// depth counts the contours enclosing contour i.
func (pg *Polygon) depth(i int) int {
	d := 0
	for j, c := range pg.poly {
		if j != i && c.Contains(pg.poly[i][0]) {
			d++
		}
	}
	return d
}

// Shoelace formula. Positive for counter-clockwise contours.
func signedArea(c polyclip.Contour) float64 {
	a := 0.0
	n := len(c)
	for i := 0; i < n; i++ {
		p, q := c[i], c[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Union returns a new polygon covering pg and other.
func (pg *Polygon) Union(other *Polygon) *Polygon {
	return pg.construct(polyclip.UNION, other)
}

// Intersection returns a new polygon covering the area common to pg and other.
func (pg *Polygon) Intersection(other *Polygon) *Polygon {
	return pg.construct(polyclip.INTERSECTION, other)
}

// Difference returns a new polygon covering pg without other.
func (pg *Polygon) Difference(other *Polygon) *Polygon {
	return pg.construct(polyclip.DIFFERENCE, other)
}

func (pg *Polygon) construct(op polyclip.Op, other *Polygon) *Polygon {
	r := pg.poly.Construct(op, other.poly)
	L().Debugf("boolean op %d: %d and %d contours → %d contours", op,
		len(pg.poly), len(other.poly), len(r))
	return &Polygon{poly: r}
}

// AsString returns a polygon as a (debugging) string, one contour per line:
//
//	(0,1) -- (4,1) -- (4,5) -- (0,5) -- cycle
func AsString(pg *Polygon) string {
	var lines []string
	for _, c := range pg.poly {
		var s strings.Builder
		for _, p := range c {
			s.WriteString(fmt.Sprintf("(%.4g,%.4g) -- ", p.X, p.Y))
		}
		s.WriteString("cycle")
		lines = append(lines, s.String())
	}
	return strings.Join(lines, "\n")
}
