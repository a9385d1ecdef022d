package splay

import (
	"fmt"
	"strings"
)

// Node is a read-only view of one entry of a Map and of its position in the
// tree. It exposes the key, the value, and the presence of children, which is
// enough for a caller to reconstruct the current shape of the tree (for
// example to render it) without being able to break the links.
//
// A Node is only valid until the next mutating call on the map it was
// obtained from.
type Node[K, V any] struct {
	n *node[K, V]
}

// Root returns a view of the node currently at the root of the tree, and a
// boolean indicating whether the map holds any entries.
func (m *Map[K, V]) Root() (Node[K, V], bool) {
	return Node[K, V]{n: m.root}, m.root != nil
}

// Key returns the key of the entry.
func (n Node[K, V]) Key() K { return n.n.key }

// Value returns the value of the entry.
func (n Node[K, V]) Value() V { return n.n.value }

// Left returns a view of the root of the left subtree, and a boolean
// indicating whether the subtree is non-empty.
func (n Node[K, V]) Left() (Node[K, V], bool) {
	return Node[K, V]{n: n.n.left}, n.n.left != nil
}

// Right returns a view of the root of the right subtree, and a boolean
// indicating whether the subtree is non-empty.
func (n Node[K, V]) Right() (Node[K, V], bool) {
	return Node[K, V]{n: n.n.right}, n.n.right != nil
}

// Min returns a view of the entry with the smallest key in the subtree
// rooted at n. The tree is not restructured.
func (n Node[K, V]) Min() Node[K, V] { return Node[K, V]{n: min(n.n)} }

// Max returns a view of the entry with the largest key in the subtree
// rooted at n. The tree is not restructured.
func (n Node[K, V]) Max() Node[K, V] { return Node[K, V]{n: max(n.n)} }

// String returns the keys of the map in ascending order, formatted the way
// fmt prints a slice.
func (m *Map[K, V]) String() string {
	s := new(strings.Builder)
	s.WriteByte('[')
	m.Range(func(key K, _ V) bool {
		if s.Len() > 1 {
			s.WriteByte(' ')
		}
		fmt.Fprintf(s, "%v", key)
		return true
	})
	s.WriteByte(']')
	return s.String()
}
