// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// CopyFunc - return a new node holding a copy of node's item
type CopyFunc[T any] func(node *Node[T]) (*Node[T], error)

// Copy - create a new tree of the same shape whose nodes are made by
// copyNode
//
// if copyNode fails the copy made so far is returned together with an
// error of class fault.IsErrProcess that also wraps the error from
// copyNode, if any; the caller decides whether to keep or destroy the
// partial copy.  The new tree shares the comparator and warner.
func (tree *Tree[T]) Copy(copyNode CopyFunc[T]) (*Tree[T], error) {
	if nil == tree {
		warnf(nil, "copy: %s", fault.ErrNilTree)
		return nil, fault.ErrNilTree
	}
	if nil == copyNode {
		warnf(tree.log, "copy: copy function is nil")
		return nil, fault.ErrCopyFailed
	}

	dst := &Tree[T]{
		compare: tree.compare,
		log:     tree.log,
	}
	if nil == tree.root {
		return dst, nil
	}

	root, err := copyOne(tree.log, copyNode, tree.root)
	if nil != err {
		return dst, err
	}
	dst.root = root
	dst.count = 1

	// s walks the source and d the copy in step: fill d's missing
	// children left then right, then go back up both trees together
	s := tree.root
	d := root
	for nil != s {
		switch {
		case nil != s.left && nil == d.left:
			c, err := copyOne(tree.log, copyNode, s.left)
			if nil != err {
				dst.fixHeights()
				return dst, err
			}
			c.parent = d
			d.left = c
			dst.count += 1
			s = s.left
			d = c

		case nil != s.right && nil == d.right:
			c, err := copyOne(tree.log, copyNode, s.right)
			if nil != err {
				dst.fixHeights()
				return dst, err
			}
			c.parent = d
			d.right = c
			dst.count += 1
			s = s.right
			d = c

		default:
			s = s.parent
			d = d.parent
		}
	}
	return dst, nil
}

// make one detached copy that claims the height of its source
func copyOne[T any](log Warner, copyNode CopyFunc[T], source *Node[T]) (*Node[T], error) {
	c, err := copyNode(source)
	if nil != err {
		warnf(log, "copy: %s: %v", fault.ErrCopyFailed, err)
		return nil, fmt.Errorf("%w: %w", fault.ErrCopyFailed, err)
	}
	if nil == c || c == source {
		warnf(log, "copy: %s: no new node for: %v", fault.ErrCopyFailed, source.Item)
		return nil, fault.ErrCopyFailed
	}
	c.reset()
	c.height = source.height
	return c, nil
}

// recompute every height bottom up, for a partial copy whose nodes
// still carry the heights of the complete source
func (tree *Tree[T]) fixHeights() {
	p := tree.root.deepestFirst()
	for nil != p {
		p.updateHeight()
		parent := p.parent
		if nil != parent && p == parent.left && nil != parent.right {
			p = parent.right.deepestFirst()
		} else {
			p = parent
		}
	}
}
