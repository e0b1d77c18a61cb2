// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Soak test program for the avl package
//
// This program runs long seeded sequences of random insert, remove,
// lookup, copy and destroy operations against one tree and checks
// every structural property of the tree after each step.  Any
// failure is logged on the critical channel together with the seed
// so the run can be repeated.
package main
