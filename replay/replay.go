// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package replay - apply a scripted sequence of additions and
// removals to a tree, logging every step
package replay

import (
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// tree kinds accepted by NewSet
const (
	KindAVL = "avl"
	KindBST = "bst"
)

// Set - operations a script needs from a tree
type Set interface {
	Add(int) bool
	Remove(int) bool
	Contains(int) bool
	Count() int
	String() string
}

// Validator - full consistency check of a set, nil if consistent
type Validator func() error

// Script - the operations to apply: all additions, then all removals
type Script struct {
	Add    []int `gluamapper:"add"`
	Remove []int `gluamapper:"remove"`
}

// Result - counts of what the script did
type Result struct {
	Added      int
	Duplicates int
	Removed    int
	Missing    int
}

// NewSet - create an empty tree of the given kind and its validator
func NewSet(kind string) (Set, Validator, error) {
	switch strings.ToLower(kind) {
	case KindAVL:
		tree := avl.New[int]()
		return tree, tree.Check, nil
	case KindBST:
		tree := avl.NewBST[int]()
		return tree, func() error {
			if !tree.IsValidBST() {
				return fault.ErrOrderViolation
			}
			if !tree.CheckUp() {
				return fault.ErrParentMismatch
			}
			return nil
		}, nil
	default:
		return nil, nil, fault.ErrInvalidTreeKind
	}
}

// Run - apply a script
//
// if validate is not nil it is called after every mutation and the
// first failure stops the run
func Run(set Set, validate Validator, script Script, log *logger.L) (Result, error) {
	result := Result{}

	for _, v := range script.Add {
		if !set.Add(v) {
			log.Debugf("add: %d: %s", v, fault.ErrDuplicateValue)
			result.Duplicates += 1
			continue
		}
		result.Added += 1
		log.Debugf("add: %d  count: %d", v, set.Count())
		if err := check(validate, "add", v, log); nil != err {
			return result, err
		}
	}

	for _, v := range script.Remove {
		if !set.Remove(v) {
			log.Debugf("remove: %d: not present", v)
			result.Missing += 1
			continue
		}
		result.Removed += 1
		log.Debugf("remove: %d  count: %d", v, set.Count())
		if err := check(validate, "remove", v, log); nil != err {
			return result, err
		}
	}

	log.Infof("added: %d  duplicates: %d  removed: %d  missing: %d  count: %d",
		result.Added, result.Duplicates, result.Removed, result.Missing, set.Count())
	return result, nil
}

func check(validate Validator, operation string, v int, log *logger.L) error {
	if nil == validate {
		return nil
	}
	if err := validate(); nil != err {
		log.Errorf("%s: %d: %s", operation, v, err)
		return err
	}
	return nil
}
