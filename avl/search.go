// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the member with a key equal to item
func (tree *Tree[T]) Search(item T) *Node[T] {
	if nil == tree || nil == tree.compare {
		return nil
	}
	return tree.search(item)
}

// Lookup - find the member whose key equals probe's key
//
// returns nil when that member is probe itself, so a caller holding a
// node can ask whether a different node with the same key is present
// without comparing the result again
func (tree *Tree[T]) Lookup(probe *Node[T]) *Node[T] {
	if !tree.usable("lookup", probe) {
		return nil
	}
	p := tree.search(probe.Item)
	if p == probe {
		return nil
	}
	return p
}

func (tree *Tree[T]) search(item T) *Node[T] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(item, p.Item); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
