package polyn

import (
	"errors"
	"fmt"
)

// ErrNonPositiveSteps is returned when a parameter range is to be divided
// into zero or a negative number of steps.
var ErrNonPositiveSteps = errors.New("number of steps must be positive")

// HermiteBasis returns the four cubic Hermite basis polynomials
//
//	h0(u) =  2u³ - 3u² + 1
//	h1(u) = -2u³ + 3u²
//	h2(u) =   u³ - 2u² + u
//	h3(u) =   u³ -  u²
//
// h0 and h1 weight the start and end point of a span, h2 and h3 weight the
// tangents at start and end.
func HermiteBasis() [4]Polynomial {
	h0, _ := New(1, X{2, -3}, X{3, 2})
	h1, _ := New(0, X{2, 3}, X{3, -2})
	h2, _ := New(0, X{1, 1}, X{2, -2}, X{3, 1})
	h3, _ := New(0, X{2, -1}, X{3, 1})
	return [4]Polynomial{h0, h1, h2, h3}
}

// Weights tabulates the Hermite basis for u = i/steps, i = 0…steps-1.
// u = 1 is never part of the table.
func Weights(steps int) ([][4]float64, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveSteps, steps)
	}
	basis := HermiteBasis()
	table := make([][4]float64, steps)
	for i := 0; i < steps; i++ {
		u := float64(i) / float64(steps)
		for j, h := range basis {
			table[i][j] = h.Eval(u)
		}
	}
	T().Debugf("tabulated Hermite weights for %d steps", steps)
	return table, nil
}
