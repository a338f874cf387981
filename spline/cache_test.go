package spline

import (
	"errors"
	"testing"

	"github.com/npillmayer/cardinal"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheServesRepeatedBuilds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewCache(4)
	a, err := c.Build(square(), 8, 0.5)
	require.NoError(t, err)
	b, err := c.Build(square(), 8, 0.5)
	require.NoError(t, err)
	diff(t, MustBuild(square(), 8, 0.5), a)
	diff(t, a, b)
	hits, misses := c.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
	assert.Equal(t, 1, c.Len())
}

func TestCacheKeyIncludesParameters(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewCache(10)
	c.Build(square(), 8, 0.5)
	c.Build(square(), 8, 0.6)
	c.Build(square(), 9, 0.5)
	pts := square()
	pts = append(pts, cardinal.P(-3, 5))
	c.Build(pts, 8, 0.5)
	assert.Equal(t, 4, c.Len())
	hits, _ := c.Stats()
	assert.Equal(t, 0, hits)
}

func TestCacheEvictsOldest(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewCache(2)
	c.Build(knots(3), 4, 0.5)
	c.Build(knots(4), 4, 0.5)
	c.Build(knots(5), 4, 0.5) // evicts knots(3)
	assert.Equal(t, 2, c.Len())
	c.Build(knots(4), 4, 0.5)
	hits, misses := c.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 3, misses)
	c.Build(knots(3), 4, 0.5)
	_, misses = c.Stats()
	assert.Equal(t, 4, misses)
}

func TestCacheResultIsOwnedByCaller(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewCache(1)
	a, _ := c.Build(square(), 4, 0.5)
	a[0] = cardinal.P(99, 99)
	b, _ := c.Build(square(), 4, 0.5)
	assert.Equal(t, cardinal.P(0, 0), b[0])
}

func TestCacheDoesNotStoreErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewCache(0)
	assert.Equal(t, 1, c.Capacity())
	_, err := c.Build(square(), 0, 0.5)
	assert.True(t, errors.Is(err, ErrNonPositiveSegments))
	assert.Equal(t, 0, c.Len())
	c.Build(square(), 1, 0.5)
	c.Clear()
	assert.Equal(t, 0, c.Len())
}
