// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// DisposeFunc - receives each node removed by Destroy, already in the
// detached state
type DisposeFunc[T any] func(node *Node[T])

// Destroy - remove every node, passing each one to dispose (which may
// be nil); the tree is empty afterwards
//
// leaves are stripped one at a time climbing back through the parent
// links, so no recursion or stack is needed however deep the tree is
func (tree *Tree[T]) Destroy(dispose DisposeFunc[T]) {
	if nil == tree {
		warnf(nil, "destroy: %s", fault.ErrNilTree)
		return
	}

	// the header is emptied first so that a panicking dispose leaves
	// an empty tree rather than a partly dismantled one
	p := tree.root
	tree.root = nil
	tree.count = 0

	for nil != p {
		switch {
		case nil != p.left:
			p = p.left
		case nil != p.right:
			p = p.right
		default:
			parent := p.parent
			if nil != parent {
				if p == parent.left {
					parent.left = nil
				} else {
					parent.right = nil
				}
			}
			p.reset()
			if nil != dispose {
				dispose(p)
			}
			p = parent
		}
	}
}
