package cardinal

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if !Is1(1 + a) {
		t.Errorf("Expected 1+a to be one, is not")
	}
}

func TestPointBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p.Add(q)
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.Equal(t, P(6, 4), p.Sub(q))
	assert.Equal(t, P(1.5, 1), p.Scaled(0.5))
	assert.Equal(t, "(3,2)", p.String())
}

func TestPointLerp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, q := P(0, 0), P(10, -4)
	assert.Equal(t, p, p.Lerp(q, 0))
	assert.Equal(t, q, p.Lerp(q, 1))
	assert.True(t, P(5, -2).Equal(p.Lerp(q, 0.5)))
}

func TestPointIsFinite(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, P(1, 2).IsFinite())
	assert.False(t, P(math.NaN(), 2).IsFinite())
	assert.False(t, P(1, math.Inf(-1)).IsFinite())
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180 * Deg2Rad).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestScreenToWorld(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	T := ScreenToWorld(800)
	if p := T.Transform(P(100, 0)); !p.Equal(P(100, 800)) {
		t.Errorf("Expected top of window to map to y=800, is %v", p)
	}
	if p := T.Transform(P(100, 800)); !p.Equal(P(100, 0)) {
		t.Errorf("Expected bottom of window to map to y=0, is %v", p)
	}
	pts := T.TransformAll([]Point2D{P(0, 200), P(50, 750)})
	assert.True(t, pts[0].Equal(P(0, 600)))
	assert.True(t, pts[1].Equal(P(50, 50)))
}

func TestCombineOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// scale first, then translate
	T := Scaling(2, 2).Combine(Translation(P(1, 0)))
	if p := T.Transform(P(1, 1)); !p.Equal(P(3, 2)) {
		t.Errorf("Expected (3,2), is %v (T = %s)", p, T)
	}
}
