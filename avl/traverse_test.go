// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
)

func randomIntTree(t *testing.T, seed int64, n int) *avl.Tree[int] {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	tree := avl.NewOrdered[int]()
	for _, key := range r.Perm(n * 3)[:n] {
		require.True(t, tree.Insert(avl.NewNode(key)))
	}
	return tree
}

// position of every node in the emitted sequence
func positions(traverse func(avl.VisitFunc[int])) (map[*avl.Node[int]]int, []int) {
	position := make(map[*avl.Node[int]]int)
	keys := []int{}
	traverse(func(node *avl.Node[int]) bool {
		position[node] = len(keys)
		keys = append(keys, node.Item)
		return true
	})
	return position, keys
}

func TestTraversalOrderProperties(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10, 255, 1000} {
		tree := randomIntTree(t, int64(n), n)
		before := shapeOf(tree)

		_, inorder := positions(tree.TraverseInorder)
		assert.True(t, sort.IntsAreSorted(inorder), "n: %d  inorder not ascending", n)
		assert.Len(t, inorder, n)

		pre, preKeys := positions(tree.TraversePreorder)
		post, postKeys := positions(tree.TraversePostorder)
		assert.Len(t, preKeys, n)
		assert.Len(t, postKeys, n)

		// links are only inspected once the traversals are over
		for node := range pre {
			for _, child := range []*avl.Node[int]{node.Left(), node.Right()} {
				if nil == child {
					continue
				}
				assert.Less(t, pre[node], pre[child], "n: %d  preorder: %d before child %d", n, node.Item, child.Item)
				assert.Greater(t, post[node], post[child], "n: %d  postorder: %d after child %d", n, node.Item, child.Item)
			}
		}

		assert.Equal(t, before, shapeOf(tree), "n: %d  traversal left the tree changed", n)
		requireConsistent(t, tree, "traversal")
	}
}

func TestTraversalStopsEarly(t *testing.T) {
	tree := randomIntTree(t, 11, 200)
	before := shapeOf(tree)

	for name, traverse := range map[string]func(avl.VisitFunc[int]){
		"inorder":   tree.TraverseInorder,
		"preorder":  tree.TraversePreorder,
		"postorder": tree.TraversePostorder,
	} {
		calls := 0
		traverse(func(node *avl.Node[int]) bool {
			calls += 1
			return calls < 17
		})
		assert.Equal(t, 17, calls, "%s: visit called after stop", name)
		assert.Equal(t, before, shapeOf(tree), "%s: threads left behind", name)
		requireConsistent(t, tree, name)
	}
}

func TestTraversalPanicRestoresTree(t *testing.T) {
	tree := randomIntTree(t, 12, 300)
	before := shapeOf(tree)

	for name, traverse := range map[string]func(avl.VisitFunc[int]){
		"inorder":   tree.TraverseInorder,
		"preorder":  tree.TraversePreorder,
		"postorder": tree.TraversePostorder,
	} {
		calls := 0
		assert.PanicsWithValue(t, "visit failed", func() {
			traverse(func(node *avl.Node[int]) bool {
				calls += 1
				if 100 == calls {
					panic("visit failed")
				}
				return true
			})
		}, name)
		assert.Equal(t, 100, calls, "%s: visit called after panic", name)
		assert.Equal(t, before, shapeOf(tree), "%s: threads left behind", name)
		requireConsistent(t, tree, name)
	}
}

// true if f panicked, whatever the value, including nil
func panicked(f func()) (result bool) {
	result = true
	defer func() {
		_ = recover()
	}()
	f()
	return false
}

func TestTraversalNilPanicIsRaised(t *testing.T) {
	tree := randomIntTree(t, 14, 300)
	before := shapeOf(tree)

	for name, traverse := range map[string]func(avl.VisitFunc[int]){
		"inorder":   tree.TraverseInorder,
		"preorder":  tree.TraversePreorder,
		"postorder": tree.TraversePostorder,
	} {
		calls := 0
		assert.True(t, panicked(func() {
			traverse(func(node *avl.Node[int]) bool {
				calls += 1
				if 50 == calls {
					panic(nil)
				}
				return true
			})
		}), "%s: nil panic was swallowed", name)
		assert.Equal(t, 50, calls, "%s: visit called after panic", name)
		assert.Equal(t, before, shapeOf(tree), "%s: threads left behind", name)
		requireConsistent(t, tree, name)
	}
}

func TestTraversalGoexitRestoresTree(t *testing.T) {
	tree := randomIntTree(t, 13, 300)
	before := shapeOf(tree)

	for name, traverse := range map[string]func(avl.VisitFunc[int]){
		"inorder":   tree.TraverseInorder,
		"preorder":  tree.TraversePreorder,
		"postorder": tree.TraversePostorder,
	} {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			calls := 0
			traverse(func(node *avl.Node[int]) bool {
				calls += 1
				if 150 == calls {
					runtime.Goexit()
				}
				return true
			})
		}()
		wg.Wait()

		assert.Equal(t, before, shapeOf(tree), "%s: threads left behind", name)
		requireConsistent(t, tree, name)
	}
}

func TestTraversalNilArguments(t *testing.T) {
	var empty *avl.Tree[int]
	calls := 0
	count := func(*avl.Node[int]) bool {
		calls += 1
		return true
	}
	empty.TraverseInorder(count)
	empty.TraversePreorder(count)
	empty.TraversePostorder(count)
	assert.Equal(t, 0, calls)

	tree := buildIntTree(t, 1, 2, 3)
	assert.NotPanics(t, func() {
		tree.TraverseInorder(nil)
		tree.TraversePreorder(nil)
		tree.TraversePostorder(nil)
	})

	empty = avl.NewOrdered[int]()
	empty.TraversePostorder(count)
	assert.Equal(t, 0, calls)
}
