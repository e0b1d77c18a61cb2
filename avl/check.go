// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the parent pointers for consistency
func (tree *Tree[T]) CheckUp() bool {
	if nil == tree {
		return true
	}
	return tree.checkup(tree.root, nil)
}

// internal: consistency checker
func (tree *Tree[T]) checkup(p *Node[T], up *Node[T]) bool {
	if nil == p {
		return true
	}
	if p.parent != up {
		warnf(tree.log, "check: %s at node: %v", fault.ErrBadParentLink, p.Item)
		return false
	}
	if !tree.checkup(p.left, p) {
		return false
	}
	return tree.checkup(p.right, p)
}

// Check - verify parent links, strict key order, stored heights, AVL
// balance and the node count
func (tree *Tree[T]) Check() error {
	if nil == tree {
		return fault.ErrNilTree
	}
	if !tree.CheckUp() {
		return fault.ErrBadParentLink
	}

	n := 0
	var previous *Node[T]
	for p := tree.First(); nil != p; p = p.Next() {
		if nil != previous && tree.compare(previous.Item, p.Item) >= 0 {
			warnf(tree.log, "check: %s: %v then %v", fault.ErrOrderViolation, previous.Item, p.Item)
			return fault.ErrOrderViolation
		}
		previous = p
		n += 1
	}
	if n != tree.count {
		warnf(tree.log, "check: %s: counted: %d  recorded: %d", fault.ErrCountMismatch, n, tree.count)
		return fault.ErrCountMismatch
	}

	// children before parents so each stored height can be checked
	// against already checked sub-trees
	p := tree.root.deepestFirst()
	for nil != p {
		l := p.left.Height()
		r := p.right.Height()
		if l-r > 1 || r-l > 1 {
			warnf(tree.log, "check: %s at node: %v [%d,%d]", fault.ErrUnbalanced, p.Item, l, r)
			return fault.ErrUnbalanced
		}
		expected := l + 1
		if r > l {
			expected = r + 1
		}
		if p.height != expected {
			warnf(tree.log, "check: %s at node: %v  stored: %d  actual: %d", fault.ErrHeightMismatch, p.Item, p.height, expected)
			return fault.ErrHeightMismatch
		}

		parent := p.parent
		if nil != parent && p == parent.left && nil != parent.right {
			p = parent.right.deepestFirst()
		} else {
			p = parent
		}
	}
	return nil
}
