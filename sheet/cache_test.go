package sheet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitRateZeroBeforeAnyLookup(t *testing.T) {
	c := NewRuleCache(8)
	assert.Equal(t, float64(0), c.HitRate(), "hit rate must be 0, not NaN, before lookups")
}

func TestHitMissAccounting(t *testing.T) {
	c := NewRuleCache(8)

	const n = 5
	key := "sel|width=100px|minify=false,comments=false"
	for i := 0; i < n; i++ {
		blocks, ok := c.Get(key)
		if !ok {
			c.Set(key, []string{".x{width:100px}"})
		} else {
			require.Equal(t, []string{".x{width:100px}"}, blocks)
		}
	}

	assert.Equal(t, uint64(n-1), c.Hits(), "first access misses, the rest hit")
	assert.Equal(t, uint64(1), c.Misses())
	assert.InDelta(t, float64(n-1)/float64(n), c.HitRate(), 1e-9)
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewRuleCache(2)

	c.Set("a", []string{"a{}"})
	c.Set("b", []string{"b{}"})
	_, _ = c.Get("a") // refresh a
	c.Set("c", []string{"c{}"})

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	_, okC := c.Get("c")
	assert.True(t, okA, "recently used entry should survive")
	assert.False(t, okB, "least recently used entry should be evicted")
	assert.True(t, okC)
	assert.Equal(t, 2, c.Len())
}

func TestCacheReset(t *testing.T) {
	c := NewRuleCache(8)
	for i := 0; i < 4; i++ {
		c.Set(fmt.Sprintf("k%d", i), []string{"x{}"})
		c.Get(fmt.Sprintf("k%d", i))
	}

	c.Reset()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, uint64(0), c.Hits())
	assert.Equal(t, uint64(0), c.Misses())
	assert.Equal(t, float64(0), c.HitRate())
}
