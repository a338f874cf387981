package polyn

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolynomial(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, err := New(8, X{2, 5}, X{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Degree())
	assert.InDelta(t, 8.0, p.Coeff(0), 1e-9)
	assert.InDelta(t, 2.0, p.Coeff(1), 1e-9)
	assert.InDelta(t, 5.0, p.Coeff(2), 1e-9)
	assert.InDelta(t, 0.0, p.Coeff(7), 1e-9)
}

func TestNewRejectsConstantTerm(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, err := New(1, X{0, 5}, X{1, 1})
	assert.Error(t, err)
	assert.InDelta(t, 1.0, p.Coeff(0), 1e-9)
	assert.Equal(t, 1, p.Degree())
}

func TestZapKeepsConstant(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := NewConstantPolynomial(0)
	c, isconst := p.IsConstant()
	assert.True(t, isconst)
	assert.Equal(t, 0.0, c)
	p = p.SetTerm(3, 0.000000001).Zap()
	_, isconst = p.IsConstant()
	assert.True(t, isconst)
}

func TestAddSubtract(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, _ := New(1, X{1, 2}, X{3, 1})
	q, _ := New(-1, X{1, 1}, X{3, 1})
	sum := p.Add(q)
	assert.InDelta(t, 0.0, sum.Coeff(0), 1e-9)
	assert.InDelta(t, 3.0, sum.Coeff(1), 1e-9)
	assert.InDelta(t, 2.0, sum.Coeff(3), 1e-9)
	diff := p.Subtract(q)
	assert.Equal(t, 1, diff.Degree()) // u³ cancels out
	assert.InDelta(t, 2.0, diff.Coeff(0), 1e-9)
	// operands stay unchanged
	assert.InDelta(t, 1.0, p.Coeff(0), 1e-9)
}

func TestScaledAndDerivative(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, _ := New(4, X{1, -1}, X{2, 3})
	s := p.Scaled(2)
	assert.InDelta(t, 8.0, s.Coeff(0), 1e-9)
	assert.InDelta(t, 6.0, s.Coeff(2), 1e-9)
	d := p.Derivative()
	assert.Equal(t, 1, d.Degree())
	assert.InDelta(t, -1.0, d.Coeff(0), 1e-9)
	assert.InDelta(t, 6.0, d.Coeff(1), 1e-9)
}

func TestEval(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, _ := New(1, X{2, -3}, X{3, 2})
	assert.Equal(t, 1.0, p.Eval(0))
	assert.InDelta(t, 0.0, p.Eval(1), 1e-12)
	assert.InDelta(t, 0.5, p.Eval(0.5), 1e-12)
	t.Logf("p = %s", p)
}

func TestHermiteBasisEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := HermiteBasis()
	// at u=0 only h0 is active, at u=1 only h1
	assert.Equal(t, 1.0, h[0].Eval(0))
	assert.Equal(t, 0.0, h[1].Eval(0))
	assert.Equal(t, 0.0, h[2].Eval(0))
	assert.Equal(t, 0.0, h[3].Eval(0))
	assert.InDelta(t, 0.0, h[0].Eval(1), 1e-12)
	assert.InDelta(t, 1.0, h[1].Eval(1), 1e-12)
	assert.InDelta(t, 0.0, h[2].Eval(1), 1e-12)
	assert.InDelta(t, 0.0, h[3].Eval(1), 1e-12)
	// derivatives: h2'(0) = 1, h3'(1) = 1
	assert.InDelta(t, 1.0, h[2].Derivative().Eval(0), 1e-12)
	assert.InDelta(t, 1.0, h[3].Derivative().Eval(1), 1e-12)
}

func TestHermitePartitionOfUnity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := HermiteBasis()
	sum := h[0].Add(h[1])
	c, isconst := sum.IsConstant()
	assert.True(t, isconst, "h0+h1 = %s", sum)
	assert.InDelta(t, 1.0, c, 1e-12)
}

func TestWeights(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	w, err := Weights(4)
	require.NoError(t, err)
	require.Len(t, w, 4)
	assert.Equal(t, [4]float64{1, 0, 0, 0}, w[0])
	// u = 0.5
	assert.InDelta(t, 0.5, w[2][0], 1e-12)
	assert.InDelta(t, 0.5, w[2][1], 1e-12)
	assert.InDelta(t, 0.125, w[2][2], 1e-12)
	assert.InDelta(t, -0.125, w[2][3], 1e-12)
}

func TestWeightsRejectsNonPositiveSteps(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, n := range []int{0, -3} {
		_, err := Weights(n)
		if !errors.Is(err, ErrNonPositiveSteps) {
			t.Fatalf("expected ErrNonPositiveSteps for %d, got %v", n, err)
		}
	}
}
