// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Remove - unlink a node from the tree and return it to the detached
// state, the caller still owns it
//
// a node that is not in this tree is rejected with fault.ErrNotMember
// and nothing is changed
func (tree *Tree[T]) Remove(node *Node[T]) error {
	if nil == tree {
		warnf(nil, "remove: %s", fault.ErrNilTree)
		return fault.ErrNilTree
	}
	if nil == node {
		warnf(tree.log, "remove: %s", fault.ErrNilNode)
		return fault.ErrNilNode
	}
	if !tree.isMember(node) {
		warnf(tree.log, "remove: %s: %v", fault.ErrNotMember, node.Item)
		return fault.ErrNotMember
	}

	// lowest node whose sub-tree has changed shape
	var start *Node[T]

	if nil != node.left && nil != node.right {

		// splice the in-order successor into node's place
		s := node.right.first()
		if s == node.right {
			start = s
		} else {
			start = s.parent
			start.left = s.right
			if nil != s.right {
				s.right.parent = start
			}
			s.right = node.right
			s.right.parent = s
		}
		s.left = node.left
		s.left.parent = s
		s.parent = node.parent
		s.height = node.height
		tree.replaceChild(node.parent, node, s)

	} else {
		child := node.left
		if nil == child {
			child = node.right
		}
		if nil != child {
			child.parent = node.parent
		}
		tree.replaceChild(node.parent, node, child)
		start = node.parent
	}

	tree.retrace(start)

	node.reset()
	tree.count -= 1
	return nil
}

// walk from p towards the root restoring heights and rotating any
// node that has become unbalanced, a shrink can unbalance several
// ancestors so this does not stop after the first rotation
//
// stops as soon as a sub-tree is back to its previous height
func (tree *Tree[T]) retrace(p *Node[T]) {
	for nil != p {
		height := p.height
		parent := p.parent
		if tree.rebalance(p).height == height {
			return
		}
		p = parent
	}
}

// a member's chain of parent links ends at this tree's root
func (tree *Tree[T]) isMember(node *Node[T]) bool {
	if nil == tree.root {
		return false
	}
	top := node
	for nil != top.parent {
		top = top.parent
	}
	return top == tree.root
}
