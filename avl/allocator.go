// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avltree/fault"
)

// Pool - a caller side allocator that keeps reclaimed nodes for reuse
//
// safe for concurrent use, unlike the trees
type Pool[T any] struct {
	m          sync.Mutex // to keep values in sync
	free       *Node[T]   // linked list of reclaimed nodes
	totalNodes int        // total nodes created
	freeNodes  int        // number of nodes in the pool
}

// Get - allocate a detached node, reuses reclaimed nodes if any are
// available
func (pool *Pool[T]) Get(item T) *Node[T] {
	pool.m.Lock()
	defer pool.m.Unlock()

	if nil == pool.free {
		pool.totalNodes += 1
		return NewNode(item)
	}
	p := pool.free
	pool.free = p.parent
	pool.freeNodes -= 1

	p.Init(item) // clears the free list pointer and the pool mark
	return p
}

// Put - reclaim a detached node
//
// a node that is still linked into a tree, or already in a pool, is
// refused.  The only node of a single node tree has no links and
// cannot be told apart from a detached node, so it must be removed
// from its tree before it is put back.
func (pool *Pool[T]) Put(node *Node[T]) error {
	if nil == node {
		return fault.ErrNilNode
	}

	pool.m.Lock()
	defer pool.m.Unlock()

	if !node.IsDetached() {
		return fault.ErrNodeInUse
	}

	var zero T
	node.Item = zero
	node.height = pooledHeight
	node.parent = pool.free // use as free list pointer
	pool.free = node
	pool.freeNodes += 1
	return nil
}

// Total - number of nodes ever created by the pool
func (pool *Pool[T]) Total() int {
	pool.m.Lock()
	defer pool.m.Unlock()
	return pool.totalNodes
}

// Free - number of reclaimed nodes waiting for reuse
func (pool *Pool[T]) Free() int {
	pool.m.Lock()
	defer pool.m.Unlock()
	return pool.freeNodes
}

// CopyFunc - a copy function for Tree.Copy taking the new nodes from
// the pool and duplicating the item with dup (nil copies the value)
func (pool *Pool[T]) CopyFunc(dup func(item T) (T, error)) CopyFunc[T] {
	return func(node *Node[T]) (*Node[T], error) {
		item := node.Item
		if nil != dup {
			var err error
			if item, err = dup(node.Item); nil != err {
				return nil, err
			}
		}
		return pool.Get(item), nil
	}
}

// DisposeFunc - a dispose function for Tree.Destroy returning the
// nodes to the pool
func (pool *Pool[T]) DisposeFunc() DisposeFunc[T] {
	return func(node *Node[T]) {
		_ = pool.Put(node) // Destroy only passes detached nodes
	}
}
