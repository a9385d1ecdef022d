package cache

import (
	"golang.org/x/exp/constraints"

	"github.com/segmentio/splaytree/compare"
	"github.com/segmentio/splaytree/container/splay"
)

// Sorted is an Interface implementation which keeps cache entries ordered by
// key in a splay tree. Lookups splay the accessed entry to the root of the
// tree, so frequently used keys stay close to the top and the cache adapts
// itself to the access pattern.
//
// Eviction removes the entry with the smallest key. This suits caches indexed
// by monotonically increasing keys, such as sequence numbers or timestamps,
// where the smallest key is the stalest entry.
type Sorted[K comparable, V any] struct {
	index splay.Map[K, V]
}

// NewSorted constructs a Sorted cache for keys with a standard Go ordering.
func NewSorted[K constraints.Ordered, V any]() *Sorted[K, V] {
	s := new(Sorted[K, V])
	s.Init(compare.Function[K])
	return s
}

// Init initializes (or re-initializes) the cache with the given comparison
// function to order the keys. Init must be called prior to inserting entries,
// unless the cache was constructed by NewSorted.
func (s *Sorted[K, V]) Init(cmp func(K, K) int) {
	s.index.Init(cmp)
}

func (s *Sorted[K, V]) Len() int {
	return s.index.Len()
}

func (s *Sorted[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	return s.index.Insert(key, value)
}

func (s *Sorted[K, V]) Lookup(key K) (value V, found bool) {
	return s.index.Search(key)
}

func (s *Sorted[K, V]) Delete(key K) (value V, deleted bool) {
	return s.index.Delete(key)
}

func (s *Sorted[K, V]) Evict() (key K, value V, evicted bool) {
	key, value, evicted = s.index.Min()
	if evicted {
		s.index.Delete(key)
	}
	return key, value, evicted
}

// Range calls f for each entry in the cache, in ascending key order.
func (s *Sorted[K, V]) Range(f func(K, V) bool) {
	s.index.Range(f)
}
