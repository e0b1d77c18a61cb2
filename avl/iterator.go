// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree[T]) First() *Node[T] {
	if nil == tree {
		return nil
	}
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[T]) Last() *Node[T] {
	if nil == tree {
		return nil
	}
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[T]) Next() *Node[T] {
	if p.right != nil {
		return p.right.first()
	}
	// climb while coming up from a right child
	for p.parent != nil && p.parent.right == p {
		p = p.parent
	}
	return p.parent
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[T]) Prev() *Node[T] {
	if p.left != nil {
		return p.left.last()
	}
	for p.parent != nil && p.parent.left == p {
		p = p.parent
	}
	return p.parent
}

// internal: first node of a sub-tree in postorder, the leaf reached by
// going left whenever possible
func (p *Node[T]) deepestFirst() *Node[T] {
	if p == nil {
		return nil
	}
	for {
		switch {
		case p.left != nil:
			p = p.left
		case p.right != nil:
			p = p.right
		default:
			return p
		}
	}
}
