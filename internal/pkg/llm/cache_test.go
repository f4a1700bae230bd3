package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintStable(t *testing.T) {
	assert.Equal(t, Fingerprint("sunset in bali"), Fingerprint("sunset in bali"))
	assert.NotEqual(t, Fingerprint("sunset in bali"), Fingerprint("sunrise in bali"))
}

func TestEmbeddingCacheEvictsOldest(t *testing.T) {
	cache := NewEmbeddingCache(2)
	cache.Put("a", []float32{1})
	cache.Put("b", []float32{2})
	cache.Put("c", []float32{3})

	assert.Equal(t, 2, cache.Len())
	_, ok := cache.Get("a")
	assert.False(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)
}

func TestNewEmbeddingCacheNonPositiveCapacity(t *testing.T) {
	cache := NewEmbeddingCache(0)
	cache.Put("a", []float32{1})

	vector, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []float32{1}, vector)
}
