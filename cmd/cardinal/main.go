/*
Command cardinal reads control points and prints the vertices of the
cardinal spline through them.

Control points are read from a file or stdin, one point per line, as
"x,y" or "x y". Empty lines and lines starting with '#' are ignored.
Vertices are written one per line as "x y", ready to be drawn as a line
strip.

	cardinal -segments 20 -tension 0.5 points.txt

With -height, input points are taken to be window coordinates (y pointing
down) and are flipped into curve coordinates first.
*/
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/cardinal"
	"github.com/npillmayer/cardinal/polygon"
	"github.com/npillmayer/cardinal/spline"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("cardinal")
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "cardinal: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	opts := spline.DefaultOptions()
	flags := flag.NewFlagSet("cardinal", flag.ContinueOnError)
	flags.IntVar(&opts.SegmentsPerSpan, "segments", opts.SegmentsPerSpan, "number of vertices per span")
	flags.Float64Var(&opts.Tension, "tension", opts.Tension, "curviness of the spline")
	open := flags.Bool("open", false, "do not connect the last control point to the first one")
	height := flags.Float64("height", 0, "window height; if set, flip y of window coordinates")
	area := flags.Bool("area", false, "print the area enclosed by the spline")
	if err := flags.Parse(args); err != nil {
		return err
	}
	in := stdin
	if flags.NArg() > 0 {
		f, err := os.Open(flags.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	knots, err := readPoints(in)
	if err != nil {
		return err
	}
	if *height > 0 {
		knots = cardinal.ScreenToWorld(*height).TransformAll(knots)
	}
	path := spline.PathOf(knots)
	if *open {
		path.End()
	}
	tracer().Infof("path = %s", spline.AsString(path))
	vertices, err := path.Spline(opts)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(stdout)
	for _, v := range vertices {
		fmt.Fprintf(w, "%g %g\n", v.X, v.Y)
	}
	if *area {
		fmt.Fprintf(w, "# area %g\n", polygon.FromVertices(vertices).Area())
	}
	return w.Flush()
}

var errSyntax = errors.New("syntax error")

func readPoints(r io.Reader) ([]cardinal.Point2D, error) {
	var pts []cardinal.Point2D
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w in line %d: expected 2 coordinates, got %d", errSyntax, lineno, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w in line %d: %v", errSyntax, lineno, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w in line %d: %v", errSyntax, lineno, err)
		}
		pts = append(pts, cardinal.P(x, y))
	}
	return pts, scanner.Err()
}
