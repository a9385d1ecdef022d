// Package splay provides ordered containers backed by a self-adjusting
// (splay) binary search tree. Every splaying access rotates the accessed
// key, or its nearest neighbor when the key is absent, up to the root of
// the tree, so that recently used keys are cheap to reach again. The
// containers are not safe to use concurrently from multiple goroutines;
// callers that share one must serialize access themselves.
package splay

// Map is a map type associating keys to values in a similar way to the
// standard Go map type, but backed by a splay tree instead of a hashmap,
// which maintains ordering of keys and rebalances itself around the keys
// that are accessed.
//
// The zero-value is a valid empty map which supports lookups and deletes,
// but must be initialized prior to inserting any keys.
type Map[K, V any] struct {
	cmp  func(K, K) int
	len  int
	root *node[K, V]
}

type node[K, V any] struct {
	left  *node[K, V]
	right *node[K, V]
	key   K
	value V
}

// NewMap instantiates a new map using the given comparison function to order
// the keys.
func NewMap[K, V any](cmp func(K, K) int) *Map[K, V] {
	m := new(Map[K, V])
	m.Init(cmp)
	return m
}

// Init initializes (or re-initializes) the map, dropping any entries it held.
// The comparison function passed as argument will be used to order the keys.
//
// Init must be called prior to inserting keys in the map, otherwise inserts
// will panic.
//
// Complexity: O(1)
func (m *Map[K, V]) Init(cmp func(K, K) int) {
	m.cmp = cmp
	m.len = 0
	m.root = nil
}

// Len returns the number of entries currently held in the map.
//
// Complexity: O(1)
func (m *Map[K, V]) Len() int { return m.len }

// Range calls f for each entry of the map. The keys and values are presented
// in ascending order according to the comparison function installed on the
// map. If f returns false, the iteration is stopped.
//
// Range does not restructure the tree.
//
// Complexity: O(n)
func (m *Map[K, V]) Range(f func(K, V) bool) {
	subrange(m.root, f)
}

func subrange[K, V any](n *node[K, V], call func(K, V) bool) bool {
	return n == nil || (subrange(n.left, call) && call(n.key, n.value) && subrange(n.right, call))
}

// Insert inserts a new entry in the map, or replaces the value if the key
// already existed. The method returns the previous value associated with the
// key or the zero-value if the key did not exist, and a boolean indicating
// whether the value was replaced.
//
// After Insert returns, the node holding the key is the root of the tree.
// Replacing the value of an existing key does not create a node.
//
// The map must have been initialized by a call to NewMap or Init or the call
// to Insert will panic.
//
// Complexity: O(log n) amortized
func (m *Map[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if m.cmp == nil {
		panic("splay.Map: Insert called before Init")
	}
	if m.root == nil {
		m.root = &node[K, V]{key: key, value: value}
		m.len++
		return previous, false
	}
	m.root = m.splay(m.root, key)
	switch cmp := m.cmp(key, m.root.key); {
	case cmp < 0:
		n := &node[K, V]{key: key, value: value, left: m.root.left, right: m.root}
		m.root.left = nil
		m.root = n
		m.len++
	case cmp > 0:
		n := &node[K, V]{key: key, value: value, left: m.root, right: m.root.right}
		m.root.right = nil
		m.root = n
		m.len++
	default:
		previous, replaced = m.root.value, true
		m.root.value = value
	}
	return previous, replaced
}

// Search returns the value associated with the given key in the map, and a
// boolean value indicating whether the key was found, splaying the tree as a
// side effect: after the call the node holding the key, or the last node
// visited on a failed search, is the root. Programs that only need an
// existence check without restructuring the tree should use Lookup instead.
//
// Complexity: O(log n) amortized
func (m *Map[K, V]) Search(key K) (value V, found bool) {
	if m.root == nil {
		return value, false
	}
	m.root = m.splay(m.root, key)
	if m.cmp(key, m.root.key) == 0 {
		return m.root.value, true
	}
	return value, false
}

// Lookup returns the value associated with the given key in the map, and a
// boolean value indicating whether the key was found in the map. Unlike
// Search, Lookup never modifies the tree.
//
// Complexity: O(depth of the key), amortized logarithmic for keys that are
// splayed regularly, worst-case O(n).
func (m *Map[K, V]) Lookup(key K) (value V, found bool) {
	for n := m.root; n != nil; {
		switch cmp := m.cmp(key, n.key); {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	return value, false
}

// Delete deletes the given key from the map. If the key does not exist, no
// entry is removed, but the tree is still splayed around the nearest key
// visited. The method returns the value removed from the map and a boolean
// indicating whether the key was found.
//
// Complexity: O(log n) amortized
func (m *Map[K, V]) Delete(key K) (value V, deleted bool) {
	if m.root == nil {
		return value, false
	}
	m.root = m.splay(m.root, key)
	if m.cmp(key, m.root.key) != 0 {
		return value, false
	}
	value, deleted = m.root.value, true
	if m.root.left == nil {
		m.root = m.root.right
	} else {
		// Split off the right subtree and splay the left one toward the
		// deleted key. Every key on the left is smaller, so its maximum
		// ends up at the root with a free right slot for the reattach.
		right := m.root.right
		left := m.splay(m.root.left, key)
		left.right = right
		m.root = left
	}
	m.len--
	return value, deleted
}

// Min returns the entry with the smallest key in the map. The tree is not
// restructured.
//
// Complexity: O(depth), no splaying
func (m *Map[K, V]) Min() (key K, value V, found bool) {
	if m.root != nil {
		n := min(m.root)
		key, value, found = n.key, n.value, true
	}
	return key, value, found
}

// Max returns the entry with the largest key in the map. The tree is not
// restructured.
//
// Complexity: O(depth), no splaying
func (m *Map[K, V]) Max() (key K, value V, found bool) {
	if m.root != nil {
		n := max(m.root)
		key, value, found = n.key, n.value, true
	}
	return key, value, found
}

func min[K, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func max[K, V any](n *node[K, V]) *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// splay rearranges the subtree rooted at n so that the node holding key, or
// the last node visited while searching for it, becomes the subtree root.
// All links are reassigned in place; a node is never left reachable from two
// parents. n must not be nil.
func (m *Map[K, V]) splay(n *node[K, V], key K) *node[K, V] {
	switch cmp := m.cmp(key, n.key); {
	case cmp < 0:
		if n.left == nil {
			return n
		}
		switch cmp := m.cmp(key, n.left.key); {
		case cmp < 0:
			// Zig-zig: bring the key up two levels in one step, the
			// detail the amortized bound depends on.
			if n.left.left != nil {
				n.left.left = m.splay(n.left.left, key)
			}
			n = rotateRight(n)
		case cmp > 0:
			// Zig-zag: straighten the bend before the final rotation.
			if n.left.right != nil {
				n.left.right = m.splay(n.left.right, key)
				n.left = rotateLeft(n.left)
			}
		}
		if n.left == nil {
			return n
		}
		return rotateRight(n)
	case cmp > 0:
		if n.right == nil {
			return n
		}
		switch cmp := m.cmp(key, n.right.key); {
		case cmp > 0:
			if n.right.right != nil {
				n.right.right = m.splay(n.right.right, key)
			}
			n = rotateLeft(n)
		case cmp < 0:
			if n.right.left != nil {
				n.right.left = m.splay(n.right.left, key)
				n.right = rotateRight(n.right)
			}
		}
		if n.right == nil {
			return n
		}
		return rotateLeft(n)
	default:
		return n
	}
}

// rotateRight promotes the left child of n to the local root, preserving the
// in-order sequence of keys. n.left must not be nil.
func rotateRight[K, V any](n *node[K, V]) *node[K, V] {
	l := n.left
	n.left = l.right
	l.right = n
	return l
}

// rotateLeft is the mirror image of rotateRight. n.right must not be nil.
func rotateLeft[K, V any](n *node[K, V]) *node[K, V] {
	r := n.right
	n.right = r.left
	r.left = n
	return r
}
