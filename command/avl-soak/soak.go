// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

type operation int

const (
	opInsert operation = iota
	opRemove
	opLookup
	opCopy
	opDestroy
)

func (op operation) String() string {
	switch op {
	case opInsert:
		return "insert"
	case opRemove:
		return "remove"
	case opLookup:
		return "lookup"
	case opCopy:
		return "copy"
	case opDestroy:
		return "destroy"
	default:
		return fmt.Sprintf("operation(%d)", int(op))
	}
}

// the payload carried by every node
type record struct {
	key    int
	serial uint64
}

func compareRecords(a *record, b *record) int {
	switch {
	case a.key < b.key:
		return -1
	case a.key > b.key:
		return 1
	default:
		return 0
	}
}

// Statistics - operation counts of a run
type Statistics struct {
	Inserts    int
	Duplicates int
	Removes    int
	Misses     int
	Lookups    int
	Copies     int
	Destroys   int
	MaxCount   int
	MaxHeight  int
}

// Soak - one tree under random load with a shadow index of its
// members
type Soak struct {
	log    *logger.L
	rng    *rand.Rand
	seed   int64
	config *Configuration
	pool   avl.Pool[*record]
	tree   *avl.Tree[*record]
	serial uint64

	// shadow of the tree membership
	keys  []int
	index map[int]int
	nodes map[int]*avl.Node[*record]

	Stats Statistics
}

// NewSoak - create a runner; the configuration must already be valid
func NewSoak(log *logger.L, config *Configuration) *Soak {
	seed := config.Seed
	if 0 == seed {
		seed = rand.Int63()
	}
	s := &Soak{
		log:    log,
		rng:    rand.New(rand.NewSource(seed)),
		seed:   seed,
		config: config,
		tree:   avl.New[*record](compareRecords),
		index:  make(map[int]int),
		nodes:  make(map[int]*avl.Node[*record]),
	}
	s.tree.SetWarner(log)
	return s
}

// Seed - the seed actually used, needed to repeat a failed run
func (s *Soak) Seed() int64 {
	return s.seed
}

// Run - perform all configured rounds, stopping at the first
// inconsistency
func (s *Soak) Run() error {
	s.log.Infof("seed: %d  rounds: %d  operations: %d  key range: %d", s.seed, s.config.Rounds, s.config.Operations, s.config.KeyRange)

	for round := 1; round <= s.config.Rounds; round += 1 {
		if err := s.Round(); nil != err {
			util.LogError(s.log, util.CoRed, fmt.Sprintf("round: %d  seed: %d  error: %s", round, s.seed, err))
			return err
		}
		s.log.Debugf("round: %d  count: %d  height: %d", round, s.tree.Count(), s.tree.Height())
	}

	util.LogInfo(s.log, util.CoGreen, fmt.Sprintf("passed  seed: %d  stats: %+v", s.seed, s.Stats))
	return nil
}

// Round - perform one round of operations, then verify the traversals
func (s *Soak) Round() error {
	for i := 0; i < s.config.Operations; i += 1 {
		op := s.pick()
		if err := s.step(op); nil != err {
			s.log.Errorf("%s failed at count: %d  error: %s", op, s.tree.Count(), err)
			return err
		}
		if err := s.verify(); nil != err {
			s.log.Errorf("check after %s failed at count: %d  error: %s", op, s.tree.Count(), err)
			return err
		}
	}
	return s.verifyTraversals()
}

// Finish - return every remaining node to the pool
func (s *Soak) Finish() {
	s.tree.Destroy(s.pool.DisposeFunc())
	s.forget()
	s.log.Infof("pool total: %d  free: %d", s.pool.Total(), s.pool.Free())
}

// choose an operation according to the configured weights
func (s *Soak) pick() operation {
	mix := s.config.Mix
	weights := []int{mix.Insert, mix.Remove, mix.Lookup, mix.Copy, mix.Destroy}
	total := 0
	for _, w := range weights {
		total += w
	}
	n := s.rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return operation(i)
		}
		n -= w
	}
	return opLookup
}

func (s *Soak) step(op operation) error {
	switch op {
	case opInsert:
		return s.insert()
	case opRemove:
		return s.remove()
	case opLookup:
		return s.lookup()
	case opCopy:
		return s.copy()
	case opDestroy:
		return s.destroy()
	default:
		return fault.ErrInvalidOperationMix
	}
}

func (s *Soak) newRecord(key int) *record {
	s.serial += 1
	return &record{key: key, serial: s.serial}
}

func (s *Soak) insert() error {
	key := s.rng.Intn(s.config.KeyRange)
	node := s.pool.Get(s.newRecord(key))

	// a detached probe is never a member, so Lookup only returns nil
	// for an absent key
	if existing := s.tree.Lookup(node); nil != existing {
		if existing != s.nodes[key] {
			return fault.ErrDuplicateKey
		}
		s.Stats.Duplicates += 1
		return s.pool.Put(node)
	}

	if _, ok := s.nodes[key]; ok {
		return fault.ErrNotMember
	}
	if !s.tree.Insert(node) {
		return fault.ErrNodeNotDetached
	}

	s.index[key] = len(s.keys)
	s.keys = append(s.keys, key)
	s.nodes[key] = node
	s.Stats.Inserts += 1
	if n := s.tree.Count(); n > s.Stats.MaxCount {
		s.Stats.MaxCount = n
	}
	if h := s.tree.Height(); h > s.Stats.MaxHeight {
		s.Stats.MaxHeight = h
	}
	return nil
}

func (s *Soak) remove() error {
	if 0 == len(s.keys) {
		s.Stats.Misses += 1
		return nil
	}
	i := s.rng.Intn(len(s.keys))
	key := s.keys[i]
	node := s.nodes[key]

	if err := s.tree.Remove(node); nil != err {
		return err
	}
	if !node.IsDetached() {
		return fault.ErrNodeInUse
	}

	// swap delete from the key list
	last := len(s.keys) - 1
	s.keys[i] = s.keys[last]
	s.index[s.keys[i]] = i
	s.keys = s.keys[:last]
	delete(s.index, key)
	delete(s.nodes, key)

	s.Stats.Removes += 1
	return s.pool.Put(node)
}

func (s *Soak) lookup() error {
	s.Stats.Lookups += 1
	key := s.rng.Intn(s.config.KeyRange)
	expected := s.nodes[key]

	found := s.tree.Search(&record{key: key})
	if found != expected {
		return fault.ErrNotMember
	}
	if nil == expected {
		return nil
	}

	// a member probing itself is hidden
	if nil != s.tree.Lookup(expected) {
		return fault.ErrDuplicateKey
	}
	return nil
}

// copy the tree through the pool, compare it and give the nodes back
func (s *Soak) copy() error {
	s.Stats.Copies += 1

	dup := func(r *record) (*record, error) {
		d := *r
		return &d, nil
	}
	c, err := s.tree.Copy(s.pool.CopyFunc(dup))
	if nil != c {
		defer c.Destroy(s.pool.DisposeFunc())
	}
	if nil != err {
		return err
	}

	if err := c.Check(); nil != err {
		return err
	}
	if c.Count() != s.tree.Count() || c.Height() != s.tree.Height() {
		return fault.ErrCountMismatch
	}
	for p, q := s.tree.First(), c.First(); nil != p || nil != q; p, q = p.Next(), q.Next() {
		if nil == p || nil == q || p == q || p.Item == q.Item || *p.Item != *q.Item || p.Height() != q.Height() {
			return fault.ErrCopyFailed
		}
	}
	return nil
}

func (s *Soak) destroy() error {
	s.Stats.Destroys += 1
	n := 0
	s.tree.Destroy(func(node *avl.Node[*record]) {
		n += 1
		_ = s.pool.Put(node)
	})
	if n != len(s.keys) || !s.tree.IsEmpty() {
		return fault.ErrCountMismatch
	}
	s.forget()
	return nil
}

// clear the shadow index
func (s *Soak) forget() {
	s.keys = s.keys[:0]
	s.index = make(map[int]int)
	s.nodes = make(map[int]*avl.Node[*record])
}

// full check of the tree against the shadow index
func (s *Soak) verify() error {
	if err := s.tree.Check(); nil != err {
		return err
	}
	n := s.tree.Count()
	if n != len(s.keys) {
		return fault.ErrCountMismatch
	}
	if n > 0 && float64(s.tree.Height()) > heightBound(n) {
		return fault.ErrUnbalanced
	}
	return nil
}

// every traversal must visit every member once and leave the tree
// unchanged
func (s *Soak) verifyTraversals() error {
	visits := 0
	ordered := true
	var previous *avl.Node[*record]
	s.tree.TraverseInorder(func(node *avl.Node[*record]) bool {
		if nil != previous && compareRecords(previous.Item, node.Item) >= 0 {
			ordered = false
		}
		previous = node
		visits += 1
		return true
	})
	if !ordered {
		return fault.ErrOrderViolation
	}
	if visits != len(s.keys) {
		return fault.ErrCountMismatch
	}

	for _, traverse := range []func(avl.VisitFunc[*record]){s.tree.TraversePreorder, s.tree.TraversePostorder} {
		visits = 0
		traverse(func(node *avl.Node[*record]) bool {
			visits += 1
			return true
		})
		if visits != len(s.keys) {
			return fault.ErrCountMismatch
		}
	}

	// stop half way and the tree must still be intact
	half := len(s.keys) / 2
	visits = 0
	s.tree.TraversePostorder(func(node *avl.Node[*record]) bool {
		visits += 1
		return visits < half
	})
	return s.tree.Check()
}

// maximum AVL height for n nodes
func heightBound(n int) float64 {
	return 1.4405*math.Log2(float64(n)+2) - 0.3277
}
