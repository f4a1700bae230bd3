package llm

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheCapacity 向量缓存默认容量
const DefaultCacheCapacity = 4096

// Fingerprint 文本指纹，作为缓存键，同一进程内稳定
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// EmbeddingCache 向量缓存，指纹 -> 向量，LRU 淘汰
type EmbeddingCache struct {
	entries *lru.Cache[string, []float32]
}

func NewEmbeddingCache(capacity int) *EmbeddingCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	// 容量大于 0 时不会返回错误
	entries, _ := lru.New[string, []float32](capacity)
	return &EmbeddingCache{entries: entries}
}

func (s *EmbeddingCache) Get(fingerprint string) ([]float32, bool) {
	return s.entries.Get(fingerprint)
}

func (s *EmbeddingCache) Put(fingerprint string, vector []float32) {
	s.entries.Add(fingerprint, vector)
}

func (s *EmbeddingCache) Len() int {
	return s.entries.Len()
}
