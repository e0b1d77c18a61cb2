// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "avl-testing")
	if nil != err {
		panic(fmt.Sprintf("temporary directory: %s", err))
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
			"avl":             "warn",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	if err := avl.Initialise(); nil != err {
		panic(fmt.Sprintf("avl initialization failed: %s", err))
	}

	rc := m.Run()

	avl.Finalise()
	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

func newStringTree() *avl.Tree[string] {
	return avl.New[string](strings.Compare)
}

// dump the tree into the test log on failure
func logTree[T any](t *testing.T, tree *avl.Tree[T]) {
	t.Helper()
	var b strings.Builder
	depth := tree.Fprint(&b, nil)
	t.Logf("depth: %d\n%s", depth, b.String())
}

func requireConsistent[T any](t *testing.T, tree *avl.Tree[T], stage string) {
	t.Helper()
	if err := tree.Check(); nil != err {
		logTree(t, tree)
		t.Fatalf("%s: inconsistent tree: %s", stage, err)
	}
}

func TestListShort(t *testing.T) {
	addList := []string{
		"3307", "0915", "7726", "2231", "6402",
		"4186",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"5120", "0718", "9933", "2468", "1357",
		"5120", "0718", "9933", "2468", "1357",
		"0042", "0042", "0042", "0042", "0042",
		"0042", "0042", "0042", "0042", "0042",
		"8080", "0443", "8080", "0443", "2222",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	r := rand.New(rand.NewSource(1701))
	addList := make([]string, 240)
	for i := range addList {
		addList[i] = fmt.Sprintf("%04d", r.Intn(10000))
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// for each prefix length: build the tree, remove the prefix, then the
// remainder and check the tree between the phases
func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		tree := newStringTree()
		for _, key := range addList {
			tree.Insert(avl.NewNode(key))
		}
		requireConsistent(t, tree, "add")

		alreadyDeleted := make(map[string]struct{})
		remove := func(key string) {
			if _, ok := alreadyDeleted[key]; ok {
				return
			}
			alreadyDeleted[key] = struct{}{}

			node := tree.Search(key)
			require.NotNil(t, node, "search: %q", key)
			require.NoError(t, tree.Remove(node), "remove: %q", key)
			assert.True(t, node.IsDetached(), "removed node still linked: %q", key)
			assert.Nil(t, tree.Search(key), "still present: %q", key)
		}

		for _, key := range addList[:i] {
			remove(key)
		}
		requireConsistent(t, tree, "delete")

		for _, key := range addList[i:] {
			remove(key)
		}
		requireConsistent(t, tree, "remainder")

		if !tree.IsEmpty() {
			logTree(t, tree)
			t.Fatal("remaining nodes")
		}
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := newStringTree()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(avl.NewNode(key))
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	require.Equal(t, len(expected), tree.Count(), "tree count")

	actual := []string{}
	for p := tree.First(); nil != p; p = p.Next() {
		actual = append(actual, p.Item)
	}
	assert.Equal(t, expected, actual, "next items")

	reversed := []string{}
	for p := tree.Last(); nil != p; p = p.Prev() {
		reversed = append([]string{p.Item}, reversed...)
	}
	assert.Equal(t, expected, reversed, "prev items")

	inorder := []string{}
	tree.TraverseInorder(func(node *avl.Node[string]) bool {
		inorder = append(inorder, node.Item)
		return true
	})
	assert.Equal(t, expected, inorder, "inorder items")

	// delete remainder
	for _, key := range expected {
		require.NoError(t, tree.Remove(tree.Search(key)))
	}
	assert.True(t, tree.IsEmpty(), "remaining nodes")
	assert.Equal(t, 0, tree.Count(), "remaining count")
}

// interleaved inserts and removals must keep every invariant, not just
// the parent links
func TestRandomInsertRemove(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 1966} {
		randomInsertRemove(t, seed, 3000, 400)
	}
}

func randomInsertRemove(t *testing.T, seed int64, operations int, keyRange int) {
	r := rand.New(rand.NewSource(seed))
	tree := avl.NewOrdered[int]()
	members := make(map[int]*avl.Node[int])

	for i := 0; i < operations; i += 1 {
		key := r.Intn(keyRange)
		node, present := members[key]

		// bias towards growth for the first half, shrink afterwards
		insert := r.Intn(operations) > i
		switch {
		case insert && !present:
			node = avl.NewNode(key)
			require.True(t, tree.Insert(node), "seed: %d  insert: %d", seed, key)
			members[key] = node
		case insert && present:
			require.False(t, tree.Insert(avl.NewNode(key)), "seed: %d  duplicate: %d", seed, key)
		case present:
			require.NoError(t, tree.Remove(node), "seed: %d  remove: %d", seed, key)
			delete(members, key)
		default:
			assert.Nil(t, tree.Search(key), "seed: %d  absent: %d", seed, key)
		}

		requireConsistent(t, tree, fmt.Sprintf("seed: %d  step: %d", seed, i))
		require.Equal(t, len(members), tree.Count())
	}
}

// removing in ascending order repeatedly takes the successor path and
// exercises the direct right child splice
func TestRemoveAscending(t *testing.T) {
	const n = 1000
	tree := avl.NewOrdered[int]()
	nodes := make([]*avl.Node[int], n)
	for i := range nodes {
		nodes[i] = avl.NewNode(i)
		require.True(t, tree.Insert(nodes[i]))
	}
	requireConsistent(t, tree, "add")

	for i := 0; i < n; i += 2 {
		require.NoError(t, tree.Remove(nodes[i]))
		requireConsistent(t, tree, fmt.Sprintf("remove: %d", i))
	}
	for i := n - 1; i > 0; i -= 2 {
		require.NoError(t, tree.Remove(nodes[i]))
		requireConsistent(t, tree, fmt.Sprintf("remove: %d", i))
	}
	assert.True(t, tree.IsEmpty())
}

// height stays within the AVL bound of about 1.44 log2(n)
func TestHeightBound(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for i := 0; i < 1<<12; i += 1 {
		tree.Insert(avl.NewNode(i))
	}
	assert.Equal(t, 13, tree.Height(), "sequential inserts build a perfect tree plus one")
	requireConsistent(t, tree, "sequential")

	r := rand.New(rand.NewSource(7))
	shuffled := avl.NewOrdered[int]()
	for _, key := range r.Perm(1 << 12) {
		shuffled.Insert(avl.NewNode(key))
	}
	assert.LessOrEqual(t, shuffled.Height(), 17)
}

// nodes keep constant address when tree is re-balanced
func TestNodeStability(t *testing.T) {
	tree := newStringTree()
	nodes := map[string]*avl.Node[string]{}
	for i := 1; i <= 10; i += 1 {
		key := fmt.Sprintf("%02d", i)
		nodes[key] = avl.NewNode(key)
		tree.Insert(nodes[key])
	}

	node1 := tree.Search("05")
	require.Same(t, nodes["05"], node1)

	// delete a node so the "05" node moves
	require.NoError(t, tree.Remove(nodes["06"]))
	require.NoError(t, tree.Remove(nodes["04"]))

	node2 := tree.Search("05")
	assert.Same(t, node1, node2, "node moved")
	requireConsistent(t, tree, "delete")
}

func TestGetDepthInTree(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for i := 1; i <= 7; i += 1 {
		tree.Insert(avl.NewNode(i))
	}

	assert.Equal(t, uint(0), tree.Root().Depth(), "root depth")
	assert.Equal(t, uint(1), tree.First().Next().Depth(), "incorrect node depth")
	assert.Equal(t, uint(2), tree.First().Next().Next().Depth(), "incorrect node depth")
}

func TestGetChildrenByDepth(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for i := 1; i <= 7; i += 1 {
		tree.Insert(avl.NewNode(i))
	}

	items := func(nodes []*avl.Node[int]) []int {
		result := []int{}
		for _, n := range nodes {
			result = append(result, n.Item)
		}
		return result
	}
	assert.Equal(t, []int{4}, items(tree.Root().GetChildrenByDepth(0)))
	assert.Equal(t, []int{2, 6}, items(tree.Root().GetChildrenByDepth(1)))
	assert.Equal(t, []int{1, 3, 5, 7}, items(tree.Root().GetChildrenByDepth(2)))
}

func TestPrint(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for _, key := range []int{2, 1, 3} {
		tree.Insert(avl.NewNode(key))
	}

	var b strings.Builder
	depth := tree.Fprint(&b, func(item int) string {
		return fmt.Sprintf("<%d>", item)
	})
	assert.Equal(t, 2, depth, "depth")
	expected := "       /------+ <3> ^<2> h:1 +0\n" +
		"|------+ <2> ^- h:2 +0\n" +
		"       \\------+ <1> ^<2> h:1 +0\n"
	assert.Equal(t, expected, b.String())

	var empty *avl.Tree[int]
	assert.Equal(t, 0, empty.Fprint(&b, nil))
}
