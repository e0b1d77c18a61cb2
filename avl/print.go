// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Fprint - write an ASCII graphic representation of the tree, right
// sub-trees above left ones, returns the depth of the tree
//
// format renders an item, nil uses %v
func (tree *Tree[T]) Fprint(w io.Writer, format func(item T) string) int {
	if nil == tree {
		return 0
	}
	if nil == format {
		format = func(item T) string {
			return fmt.Sprintf("%v", item)
		}
	}
	return printTree(w, format, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func printTree[T any](w io.Writer, format func(T) string, p *Node[T], prefix string, br branch) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, format, p.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := "-"
	if nil != p.parent {
		up = format(p.parent.Item)
	}
	fmt.Fprintf(w, "%s ^%s h:%d %+2d\n", format(p.Item), up, p.height, p.Balance())
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, format, p.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
