// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an intrusive AVL balanced tree with parent pointers
//
// Nodes are allocated and owned by the caller: the tree only links
// them together and never allocates or frees a node.  A node must be
// in the detached state (see Node.Init) before Insert, and Remove
// returns it to that state.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The traversal routines use temporary threads through unused right
// links so that they need neither recursion nor a stack.  The visit
// function must not modify the tree while a traversal is running.
package avl
