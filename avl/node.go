// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree, allocated by the caller
//
// Item is the payload used for ordering.  A record can embed a
// Node[*Record] whose Item points back at the record.
type Node[T any] struct {
	parent *Node[T] // points to parent node
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	height int      // 1 for a leaf
	Item   T
}

// NewNode - allocate a detached node holding item
func NewNode[T any](item T) *Node[T] {
	n := &Node[T]{}
	n.Init(item)
	return n
}

// Init - set the item and put the node in the detached state
func (p *Node[T]) Init(item T) {
	p.reset()
	p.Item = item
}

// detached state: no links, leaf height
func (p *Node[T]) reset() {
	p.parent = nil
	p.left = nil
	p.right = nil
	p.height = 1
}

// height of a node held on a Pool free list
const pooledHeight = -1

// IsDetached - true if the node has no links and is not held by a Pool
//
// a zero Node is detached; the root of a single node tree also has no
// links, so Tree.Insert checks that case itself
func (p *Node[T]) IsDetached() bool {
	return nil == p.parent && nil == p.left && nil == p.right && pooledHeight != p.height
}

// Parent - return parent node of a node
func (p *Node[T]) Parent() *Node[T] {
	return p.parent
}

// Left - return the left child
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - return the right child
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Height - height of the sub-tree rooted here, zero for nil
func (p *Node[T]) Height() int {
	if nil == p {
		return 0
	}
	return p.height
}

// Balance - right height minus left height
func (p *Node[T]) Balance() int {
	return p.right.Height() - p.left.Height()
}

// Depth - get the depth of a node
func (p *Node[T]) Depth() uint {
	count := uint(0)
	parent := p.parent
	for parent != nil {
		count += 1
		parent = parent.parent
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a
// sub-tree, left to right
func (p *Node[T]) GetChildrenByDepth(depth uint) []*Node[T] {
	nodes := []*Node[T]{}

	if depth == 0 {
		nodes = []*Node[T]{p}
	} else {
		if p.left != nil {
			nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
		}
		if p.right != nil {
			nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// recompute height from the children
func (p *Node[T]) updateHeight() {
	l := p.left.Height()
	r := p.right.Height()
	if l > r {
		p.height = l + 1
	} else {
		p.height = r + 1
	}
}
