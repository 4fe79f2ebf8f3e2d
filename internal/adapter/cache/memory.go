// Package cache provides the ranking result cache backends: a bounded
// in-process LRU and a shared redis store.
package cache

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"storerank/internal/core/domain"
	"storerank/internal/core/port"
)

type entry struct {
	value     []domain.DecoratedProduct
	expiresAt time.Time
}

// Memory is the in-process ranking cache. It is created once at process
// start and owned by the ranking service; it is only ever flushed through
// InvalidatePrefix. Expiry is checked lazily on read. When full, the least
// recently used entry is evicted.
type Memory struct {
	mu  sync.Mutex
	lru *simplelru.LRU[string, entry]
	now func() time.Time
}

var _ port.RankingCache = (*Memory)(nil)

// NewMemory returns a cache holding at most size entries.
func NewMemory(size int) *Memory {
	if size <= 0 {
		size = 4096
	}
	l, _ := simplelru.NewLRU[string, entry](size, nil)
	return &Memory{lru: l, now: time.Now}
}

// Get returns a copy of the stored entry; callers may modify it freely.
func (m *Memory) Get(_ context.Context, key string) ([]domain.DecoratedProduct, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !m.now().Before(e.expiresAt) {
		m.lru.Remove(key)
		return nil, false, nil
	}
	return cloneProducts(e.value), true, nil
}

// Set stores value until now+ttl. A non-positive ttl stores nothing.
func (m *Memory) Set(_ context.Context, key string, value []domain.DecoratedProduct, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lru.Add(key, entry{value: cloneProducts(value), expiresAt: m.now().Add(ttl)})
	return nil
}

func (m *Memory) InvalidatePrefix(_ context.Context, prefix string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for _, k := range m.lru.Keys() {
		if strings.HasPrefix(k, prefix) {
			m.lru.Remove(k)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Len()
}

// cloneProducts copies items including their variant maps and keyword
// slices, so stored entries never share memory with callers.
func cloneProducts(items []domain.DecoratedProduct) []domain.DecoratedProduct {
	if items == nil {
		return nil
	}
	out := make([]domain.DecoratedProduct, len(items))
	for i, p := range items {
		p.ImageVariants = maps.Clone(p.ImageVariants)
		p.SEOKeywords = slices.Clone(p.SEOKeywords)
		out[i] = p
	}
	return out
}
