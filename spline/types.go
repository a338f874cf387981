package spline

import (
	"errors"

	"github.com/npillmayer/cardinal"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

var (
	// ErrNonPositiveSegments indicates a span should be divided into zero or a
	// negative number of segments.
	ErrNonPositiveSegments = errors.New("segments per span must be positive")
	// ErrInvalidPoint indicates a control point coordinate contains NaN/Inf.
	ErrInvalidPoint = errors.New("control point has invalid coordinate")
)

// Default values for Options, taken over from the interactive demo this
// package has been written for.
const (
	DefaultSegmentsPerSpan = 100
	DefaultTension         = 0.5
)

// TangentPair holds the tangent vectors at the start and at the end of a
// span. Tangents are derived from the neighbouring control points and are
// never stored with a path.
type TangentPair struct {
	Start cardinal.Point2D // tangent (dx,dy) at the start point
	End   cardinal.Point2D // tangent (dx,dy) at the end point
}

// Options configure spline construction. Clients (usually a drawing harness)
// own these values; there are no package level settings.
type Options struct {
	// SegmentsPerSpan is the number of samples between two consecutive
	// control points. Must be positive.
	SegmentsPerSpan int
	// Tension controls the magnitude of tangents, i.e. the curviness of
	// the spline. 0 results in a polygon, values are conventionally in
	// [0,1] but are not clamped.
	Tension float64
}

// DefaultOptions returns 100 segments per span with tension 0.5.
func DefaultOptions() Options {
	return Options{
		SegmentsPerSpan: DefaultSegmentsPerSpan,
		Tension:         DefaultTension,
	}
}
