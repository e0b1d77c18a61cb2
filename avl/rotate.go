// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// point the slot that held old (a child of parent, or the root) at
// replacement; the caller fixes replacement.parent
func (tree *Tree[T]) replaceChild(parent *Node[T], old *Node[T], replacement *Node[T]) {
	switch {
	case nil == parent:
		tree.root = replacement
	case old == parent.left:
		parent.left = replacement
	default:
		parent.right = replacement
	}
}

// single RR rotation: p's right child takes p's place
//
//	  p                r
//	 / \              / \
//	a   r     =>     p   c
//	   / \          / \
//	  b   c        a   b
func (tree *Tree[T]) rotateLeft(p *Node[T]) *Node[T] {
	r := p.right
	b := r.left

	p.right = b
	if nil != b {
		b.parent = p
	}

	r.parent = p.parent
	tree.replaceChild(p.parent, p, r)

	r.left = p
	p.parent = r

	p.updateHeight()
	r.updateHeight()
	return r
}

// single LL rotation: p's left child takes p's place
//
//	    p            l
//	   / \          / \
//	  l   c   =>   a   p
//	 / \              / \
//	a   b            b   c
func (tree *Tree[T]) rotateRight(p *Node[T]) *Node[T] {
	l := p.left
	b := l.right

	p.left = b
	if nil != b {
		b.parent = p
	}

	l.parent = p.parent
	tree.replaceChild(p.parent, p, l)

	l.right = p
	p.parent = l

	p.updateHeight()
	l.updateHeight()
	return l
}

// restore the balance of p when its children differ in height by two
// returns the root of the (possibly rotated) sub-tree
//
// a heavy child leaning the same way (or level) needs one rotation at
// p, leaning the other way needs the child rotated first (double
// rotation)
func (tree *Tree[T]) rebalance(p *Node[T]) *Node[T] {
	switch balance := p.Balance(); {
	case balance < -1:
		if p.left.Balance() > 0 {
			tree.rotateLeft(p.left) // double LR rotation
		}
		return tree.rotateRight(p)

	case balance > +1:
		if p.right.Balance() < 0 {
			tree.rotateRight(p.right) // double RL rotation
		}
		return tree.rotateLeft(p)

	default:
		p.updateHeight()
		return p
	}
}
