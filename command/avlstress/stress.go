// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Settings - size of each stress run
type Settings struct {
	Count   int // values drawn per run
	Delete  int // how many of the drawn values are removed again
	Runs    int
	Modulus int // values are in [0, Modulus)
}

// Totals - accumulated over all runs
type Totals struct {
	Runs       int
	Added      int
	Duplicates int
	Removed    int
	Missing    int
}

// Validate - reject settings that cannot produce a run
func (s Settings) Validate() error {
	if s.Count <= 0 || s.Runs <= 0 || s.Modulus <= 0 || s.Delete < 0 || s.Delete > s.Count {
		return fault.ErrInvalidCount
	}
	return nil
}

// Stress - random adds then removes, checking the whole tree after
// every mutation
func Stress(settings Settings, log *logger.L) (Totals, error) {
	totals := Totals{}

	if err := settings.Validate(); nil != err {
		return totals, err
	}

	// progress at most once a second
	limiter := rate.NewLimiter(1, 1)

	for run := 0; run < settings.Runs; run += 1 {
		tree := avl.New[int]()
		present := make(map[int]struct{})
		drawn := make([]int, settings.Count)

		for i := range drawn {
			value, err := randomValue(settings.Modulus)
			if nil != err {
				return totals, err
			}
			drawn[i] = value

			_, exists := present[value]
			if tree.Add(value) == exists {
				log.Criticalf("run: %d  add: %d  returned: %t", run, value, !exists)
				return totals, fault.ErrDuplicateValue
			}
			if exists {
				totals.Duplicates += 1
			} else {
				totals.Added += 1
			}
			present[value] = struct{}{}

			if err := check(tree, log, run, "add", value); nil != err {
				return totals, err
			}
		}

		for _, value := range drawn[:settings.Delete] {
			_, exists := present[value]
			if tree.Remove(value) != exists {
				log.Criticalf("run: %d  remove: %d  expected: %t", run, value, exists)
				return totals, fault.ErrValidationFailed
			}
			if !exists {
				totals.Missing += 1
				continue
			}
			totals.Removed += 1
			delete(present, value)

			if err := check(tree, log, run, "remove", value); nil != err {
				return totals, err
			}
		}

		if len(present) != tree.Count() {
			log.Criticalf("run: %d  count: %d  expected: %d", run, tree.Count(), len(present))
			return totals, fault.ErrInvalidCount
		}
		totals.Runs += 1

		if limiter.Allow() {
			log.Infof("run: %d of %d  nodes: %d  height: %d", run+1, settings.Runs, tree.Count(), tree.Height())
		}
	}
	return totals, nil
}

// full check after one mutation, dumping the tree on failure
func check(tree *avl.Tree[int], log *logger.L, run int, operation string, value int) error {
	err := tree.Check()
	if nil == err {
		log.Debugf("run: %d  %s: %d  count: %d", run, operation, value, tree.Count())
		return nil
	}

	var b bytes.Buffer
	tree.Print(&b)
	log.Criticalf("run: %d  %s: %d  error: %s\n%s", run, operation, value, err, b.String())
	return err
}

// uniformly distributed enough for testing
func randomValue(modulus int) (int, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); nil != err {
		return 0, err
	}
	return int(binary.BigEndian.Uint64(b) % uint64(modulus)), nil
}
