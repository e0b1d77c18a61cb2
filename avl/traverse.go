// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// VisitFunc - called for each node of a traversal, return false to
// stop further calls
//
// the node's links are not meaningful during the call and the tree
// must not be modified
type VisitFunc[T any] func(node *Node[T]) bool

// TraverseInorder - visit nodes in ascending key order
func (tree *Tree[T]) TraverseInorder(visit VisitFunc[T]) {
	if !tree.traversable("inorder", visit) {
		return
	}
	w := walker[T]{visit: visit, cur: tree.root}
	defer w.finish(w.inorder)
	w.inorder()
}

// TraversePreorder - visit every node before any of its descendants
func (tree *Tree[T]) TraversePreorder(visit VisitFunc[T]) {
	if !tree.traversable("preorder", visit) {
		return
	}
	w := walker[T]{visit: visit, cur: tree.root}
	defer w.finish(w.preorder)
	w.preorder()
}

// TraversePostorder - visit every node after all of its descendants
func (tree *Tree[T]) TraversePostorder(visit VisitFunc[T]) {
	if !tree.traversable("postorder", visit) {
		return
	}
	dummy := &Node[T]{left: tree.root}
	w := walker[T]{visit: visit, cur: dummy}
	defer w.finish(w.postorder)
	w.postorder()
}

func (tree *Tree[T]) traversable(operation string, visit VisitFunc[T]) bool {
	if nil == tree {
		warnf(nil, "%s: %s", operation, fault.ErrNilTree)
		return false
	}
	if nil == visit {
		warnf(tree.log, "%s: visit function is nil", operation)
		return false
	}
	return true
}

// walker - state of one threaded traversal
//
// the walk always runs to the end because only the walk itself removes
// the threads it has created; after a stop request it carries on
// without calling visit.  A panic or runtime.Goexit in visit is not
// recovered, the deferred finish completes the walk while it unwinds
type walker[T any] struct {
	visit   VisitFunc[T]
	stopped bool

	cur *Node[T] // next node to process, nil when finished

	// postorder: right spine segment from..to currently reversed,
	// next is the next node to emit from it
	reversed bool
	from     *Node[T]
	to       *Node[T]
	next     *Node[T]
}

// every state change of the walk is made before emit, so the walk can
// resume from any emit that does not return
func (w *walker[T]) emit(node *Node[T]) {
	if w.stopped {
		return
	}
	if !w.visit(node) {
		w.stopped = true
	}
}

// deferred by each traversal: complete a walk interrupted by a panic
// or runtime.Goexit in the visit function, which then carries on
// unwinding with its value unchanged
func (w *walker[T]) finish(walk func()) {
	if nil != w.cur {
		w.stopped = true
		walk()
	}
}

// rightmost node of p's left sub-tree, or the node already threaded
// back to p
func threadEnd[T any](p *Node[T]) *Node[T] {
	pre := p.left
	for nil != pre.right && pre.right != p {
		pre = pre.right
	}
	return pre
}

// emit a node when its thread is consumed
func (w *walker[T]) inorder() {
	for nil != w.cur {
		p := w.cur
		if nil == p.left {
			w.cur = p.right
			w.emit(p)
			continue
		}
		pre := threadEnd(p)
		if nil == pre.right {
			pre.right = p
			w.cur = p.left
		} else {
			pre.right = nil
			w.cur = p.right
			w.emit(p)
		}
	}
}

// emit a node when its thread is created
func (w *walker[T]) preorder() {
	for nil != w.cur {
		p := w.cur
		if nil == p.left {
			w.cur = p.right
			w.emit(p)
			continue
		}
		pre := threadEnd(p)
		if nil == pre.right {
			pre.right = p
			w.cur = p.left
			w.emit(p)
		} else {
			pre.right = nil
			w.cur = p.right
		}
	}
}

// starts at a dummy whose left child is the root; when the thread
// back to a node is found its left sub-tree is complete except for
// the right spine, which is emitted bottom up by reversing it
func (w *walker[T]) postorder() {
	for nil != w.cur {
		if w.reversed {
			w.drainSegment()
			continue
		}
		p := w.cur
		if nil == p.left {
			w.cur = p.right
			continue
		}
		pre := threadEnd(p)
		if nil == pre.right {
			pre.right = p
			w.cur = p.left
			continue
		}
		reverseChain(p.left, pre)
		w.from = p.left
		w.to = pre
		w.next = pre
		w.reversed = true
	}
}

// emit the reversed segment, then restore it and drop the thread
func (w *walker[T]) drainSegment() {
	for nil != w.next {
		p := w.next
		if p == w.from {
			w.next = nil
		} else {
			w.next = p.right
		}
		w.emit(p)
	}
	reverseChain(w.to, w.from)
	w.to.right = nil
	w.reversed = false
	w.cur = w.cur.right
}

// reverse the right links of the chain from..to
func reverseChain[T any](from *Node[T], to *Node[T]) {
	if from == to {
		return
	}
	x := from
	y := from.right
	for {
		z := y.right
		y.right = x
		x = y
		y = z
		if x == to {
			return
		}
	}
}
