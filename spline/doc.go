// Package spline calculates cardinal splines through closed sets of
// control points.
/*

A cardinal spline passes through all of its control points. Between two
consecutive control points (a span) it is a cubic Hermite curve, with the
tangent at each control point parallel to the chord between its two
neighbours:

	t.i = tension ⋅ (z.[i+1] - z.[i-1])

Tension scales the tangents. A tension of 0 produces a polygon through the
control points; larger values make the curve rounder and let it overshoot.
Tension 0.5 yields the well-known Catmull-Rom spline.

Usage

Clients hold the control points and pass them in on every call; the package
keeps no state. An interactive harness will typically append one control
point per mouse click and rebuild the spline on every redraw:

	opts := spline.DefaultOptions()
	vertices, err := spline.Build(knots, opts.SegmentsPerSpan, opts.Tension)

The result is to be drawn as a closed line strip. The spline is always
closed: the last span connects the last control point with the first one.
With fewer than 3 control points, Build returns the control points
themselves.

Paths built with Nullpath() offer an open variant:

	vertices, err := spline.Nullpath().Knot(a).Knot(b).Knot(c).End().Spline(opts)

Repeated builds for unchanged input may be served from a Cache.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cardinal"
)

// AsString returns a path as a (debugging) string, including the knot
// coordinates in one line:
//
//	(0,0) .. (10,0) .. (10,10) .. cycle
func AsString(path *Path) string {
	var s strings.Builder
	for i := 0; i < path.N(); i++ {
		if i > 0 {
			s.WriteString(" .. ")
		}
		s.WriteString(ptstring(path.Z(i)))
	}
	if path.IsCycle() {
		s.WriteString(" .. cycle")
	}
	return s.String()
}

// VerticesString returns spline vertices as a (debugging) string, one
// vertex per line, with coordinates rounded to 4 decimals.
func VerticesString(vertices []cardinal.Point2D) string {
	var s strings.Builder
	for i, v := range vertices {
		s.WriteString(fmt.Sprintf("%4d %s\n", i, ptstring(v)))
	}
	return s.String()
}

func ptstring(p cardinal.Point2D) string {
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X), round(p.Y))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
