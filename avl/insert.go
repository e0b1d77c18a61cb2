// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - link a detached node into the tree
//
// returns false if a node with an equal key is already present, the
// tree is then unchanged.  A duplicate is an expected outcome and is
// only reported as a warning.
//
// the only node of a single node tree has no links, so only this
// tree's own root is recognised; inserting the root of another single
// node tree is not detected and corrupts that tree.
func (tree *Tree[T]) Insert(node *Node[T]) bool {
	if !tree.usable("insert", node) {
		return false
	}
	if !node.IsDetached() || node == tree.root {
		warnf(tree.log, "insert: %s: %v", fault.ErrNodeNotDetached, node.Item)
		return false
	}

	if nil == tree.root {
		node.height = 1
		tree.root = node
		tree.count = 1
		return true
	}

	// deepest node on the path that is already leaning one way, only
	// this node can become unbalanced
	var pivot *Node[T]

	p := tree.root
descend:
	for {
		if 0 != p.Balance() {
			pivot = p
		}
		switch c := tree.compare(node.Item, p.Item); {
		case c < 0:
			if nil == p.left {
				p.left = node
				break descend
			}
			p = p.left
		case c > 0:
			if nil == p.right {
				p.right = node
				break descend
			}
			p = p.right
		default:
			warnf(tree.log, "insert: %s: %v", fault.ErrDuplicateKey, node.Item)
			return false
		}
	}

	node.parent = p
	node.height = 1
	tree.count += 1

	// every node below the pivot was level and has grown by one; above
	// the pivot the heights do not change
	for q := p; nil != q; q = q.parent {
		q.updateHeight()
		if q == pivot {
			break
		}
	}

	if nil != pivot {
		if b := pivot.Balance(); b < -1 || b > +1 {
			tree.rebalance(pivot)
		}
	}
	return true
}
