package splay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segmentio/splaytree/compare"
)

func TestTreeInsertAndContains(t *testing.T) {
	tree := New(compare.Function[string])

	require.False(t, tree.Insert("b"))
	require.False(t, tree.Insert("a"))
	require.False(t, tree.Insert("c"))
	require.True(t, tree.Insert("a"), "inserting an existing element must replace it")

	require.Equal(t, 3, tree.Len())
	require.True(t, tree.Contains("a"))
	require.True(t, tree.Contains("b"))
	require.True(t, tree.Contains("c"))
	require.False(t, tree.Contains("d"))
}

func TestTreeSearchSplays(t *testing.T) {
	tree := New(compare.Function[int])
	for _, v := range []int{5, 1, 9, 3, 7} {
		tree.Insert(v)
	}

	require.True(t, tree.Search(3))
	require.Equal(t, 3, tree.impl.root.key, "searched element must be splayed to the root")

	require.False(t, tree.Search(4))
	root := tree.impl.root.key
	require.Contains(t, []int{3, 5}, root, "missed search must leave a neighbor of the element at the root")
}

func TestTreeDelete(t *testing.T) {
	tree := New(compare.Function[int])
	for _, v := range []int{2, 4, 6} {
		tree.Insert(v)
	}

	require.True(t, tree.Delete(4))
	require.False(t, tree.Delete(4), "deleting an element twice must be a no-op")
	require.Equal(t, 2, tree.Len())
	require.False(t, tree.Contains(4))
}

func TestTreeMinMaxAndRange(t *testing.T) {
	tree := New(compare.Function[int])

	_, found := tree.Min()
	require.False(t, found)
	_, found = tree.Max()
	require.False(t, found)

	for _, v := range []int{8, 3, 5, 13, 1} {
		tree.Insert(v)
	}

	minElem, found := tree.Min()
	require.True(t, found)
	require.Equal(t, 1, minElem)

	maxElem, found := tree.Max()
	require.True(t, found)
	require.Equal(t, 13, maxElem)

	elems := make([]int, 0, tree.Len())
	tree.Range(func(e int) bool {
		elems = append(elems, e)
		return true
	})
	require.Equal(t, []int{1, 3, 5, 8, 13}, elems)
}
