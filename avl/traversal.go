// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/sequence"
)

// InorderTraversal - queue of all values in ascending order
func (tree *ordered[T]) InorderTraversal() *sequence.Queue[T] {
	q := sequence.NewQueue[T]()
	tree.Ascend(func(value T) bool {
		q.Enqueue(value)
		return true
	})
	return q
}

// Ascend - call f with each value in ascending order until f returns
// false
func (tree *ordered[T]) Ascend(f func(value T) bool) {
	for p := tree.First(); nil != p; p = p.Next() {
		if !f(p.value) {
			return
		}
	}
}

// Descend - call f with each value in descending order until f
// returns false
func (tree *ordered[T]) Descend(f func(value T) bool) {
	for p := tree.Last(); nil != p; p = p.Prev() {
		if !f(p.value) {
			return
		}
	}
}

// FindMin - lowest value in the tree
func (tree *ordered[T]) FindMin() (T, error) {
	p := tree.First()
	if nil == p {
		var zero T
		return zero, fault.ErrTreeIsEmpty
	}
	return p.value, nil
}

// FindMax - highest value in the tree
func (tree *ordered[T]) FindMax() (T, error) {
	p := tree.Last()
	if nil == p {
		var zero T
		return zero, fault.ErrTreeIsEmpty
	}
	return p.value, nil
}

// Height - height of the root, -1 for an empty tree
func (tree *Tree[T]) Height() int {
	return tree.root.Height()
}
