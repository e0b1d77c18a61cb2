// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/fault"
)

// CompareFunc - ordering of two items: negative if a < b, zero if
// equal and positive if a > b
type CompareFunc[T any] func(a T, b T) int

// ContextCompareFunc - ordering function that also receives the
// context value given when the tree was created
type ContextCompareFunc[T any, C any] func(a T, b T, ctx C) int

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *Node[T]
	count   int
	compare CompareFunc[T]
	log     Warner
}

// New - create an initially empty tree ordered by a plain comparator
//
// returns nil (after a warning) if cmp is nil
func New[T any](cmp CompareFunc[T]) *Tree[T] {
	if nil == cmp {
		warnf(nil, "new: %s", fault.ErrNilComparator)
		return nil
	}
	return &Tree[T]{
		root:    nil,
		count:   0,
		compare: cmp,
	}
}

// NewWithContext - create an initially empty tree whose comparator
// receives ctx on every call
func NewWithContext[T any, C any](cmp ContextCompareFunc[T, C], ctx C) *Tree[T] {
	if nil == cmp {
		warnf(nil, "new with context: %s", fault.ErrNilComparator)
		return nil
	}
	return New(func(a T, b T) int {
		return cmp(a, b, ctx)
	})
}

// NewOrdered - create an initially empty tree for builtin ordered
// types using the natural ascending order
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New(func(a T, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return +1
		default:
			return 0
		}
	})
}

// SetWarner - route this tree's diagnostics to w instead of the
// package channel, nil reverts to the package channel
func (tree *Tree[T]) SetWarner(w Warner) {
	if nil == tree {
		return
	}
	tree.log = w
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree || nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	if nil == tree {
		return 0
	}
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	if nil == tree {
		return nil
	}
	return tree.root
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[T]) Height() int {
	if nil == tree {
		return 0
	}
	return tree.root.Height()
}

// usable - check the common preconditions of the node operations
func (tree *Tree[T]) usable(operation string, node *Node[T]) bool {
	if nil == tree {
		warnf(nil, "%s: %s", operation, fault.ErrNilTree)
		return false
	}
	if nil == tree.compare {
		warnf(tree.log, "%s: %s", operation, fault.ErrNilComparator)
		return false
	}
	if nil == node {
		warnf(tree.log, "%s: %s", operation, fault.ErrNilNode)
		return false
	}
	return true
}
