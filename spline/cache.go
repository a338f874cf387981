package spline

import (
	"strconv"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/cardinal"
)

// Cache memoizes closed splines, keyed by control points, segments per span
// and tension. Drawing harnesses typically rebuild the spline on every
// redraw, even if no control point has been added in between.
//
// A Cache holds at most Capacity() splines and evicts the oldest entry
// first. It is safe for concurrent use.
type Cache struct {
	mx       sync.Mutex
	entries  *linkedhashmap.Map // key → []cardinal.Point2D, in insertion order
	capacity int
	hits     int
	misses   int
}

// NewCache creates a spline cache for up to capacity splines. A capacity
// < 1 is set to 1.
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache{
		entries:  linkedhashmap.New(),
		capacity: capacity,
	}
}

// Build returns the same result as the package level Build, possibly taken
// from the cache. The returned slice is owned by the caller.
func (c *Cache) Build(controlPoints []cardinal.Point2D, segmentsPerSpan int, tension float64) ([]cardinal.Point2D, error) {
	key := cacheKey(controlPoints, segmentsPerSpan, tension)
	c.mx.Lock()
	defer c.mx.Unlock()
	if v, found := c.entries.Get(key); found {
		c.hits++
		return append([]cardinal.Point2D(nil), v.([]cardinal.Point2D)...), nil
	}
	c.misses++
	vertices, err := Build(controlPoints, segmentsPerSpan, tension)
	if err != nil {
		return nil, err
	}
	if c.entries.Size() >= c.capacity {
		oldest := c.entries.Keys()[0]
		tracer().Debugf("spline cache full, evicting oldest entry")
		c.entries.Remove(oldest)
	}
	c.entries.Put(key, vertices)
	return append([]cardinal.Point2D(nil), vertices...), nil
}

// Capacity returns the maximum number of splines held.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Len returns the number of splines currently held.
func (c *Cache) Len() int {
	c.mx.Lock()
	defer c.mx.Unlock()
	return c.entries.Size()
}

// Stats returns the number of cache hits and misses so far.
func (c *Cache) Stats() (hits, misses int) {
	c.mx.Lock()
	defer c.mx.Unlock()
	return c.hits, c.misses
}

// Clear drops all cached splines.
func (c *Cache) Clear() {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.entries.Clear()
}

func cacheKey(controlPoints []cardinal.Point2D, segmentsPerSpan int, tension float64) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(segmentsPerSpan))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(tension, 'g', -1, 64))
	for _, p := range controlPoints {
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
	}
	return b.String()
}
