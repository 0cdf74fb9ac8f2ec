// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/sequence"
)

// CheckUp - check the up pointers for consistency
func (tree *ordered[T]) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[T cmp.Ordered](p *Node[T], up *Node[T]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// Validate - true if every node has a correct height and a parent
// pointer that matches the slot holding it
func (tree *Tree[T]) Validate() bool {
	return nil == tree.verify(false)
}

// Check - full invariant check: heights, parents, ordering, balance
// and count; returns the first violation found
func (tree *Tree[T]) Check() error {
	return tree.verify(true)
}

// pre-order scan of every node
func (tree *Tree[T]) verify(full bool) error {
	n := 0
	stack := sequence.NewStack[*Node[T]]()
	stack.Push(tree.root)
	for !stack.IsEmpty() {
		p, _ := stack.Pop()
		if nil == p {
			continue
		}
		n += 1

		if p.height != 1+max(p.left.Height(), p.right.Height()) {
			return fault.ErrHeightMismatch
		}

		if nil == p.up {
			if p != tree.root {
				return fault.ErrParentMismatch
			}
		} else {
			slot := p.up.right
			if p.value < p.up.value {
				slot = p.up.left
			}
			if slot != p {
				return fault.ErrParentMismatch
			}
		}

		if full {
			if nil != p.left && !(p.left.value < p.value) {
				return fault.ErrOrderViolation
			}
			if nil != p.right && !(p.right.value > p.value) {
				return fault.ErrOrderViolation
			}
			if bf := balanceFactor(p); bf < -1 || bf > 1 {
				return fault.ErrUnbalanced
			}
		}

		stack.Push(p.right)
		stack.Push(p.left)
	}
	if full {
		if !tree.ordered.strictlyAscending() {
			return fault.ErrOrderViolation
		}
		if n != tree.count {
			return fault.ErrInvalidCount
		}
	}
	return nil
}

// IsValidBST - true if no left child is greater than or equal to its
// parent and no right child is less than its parent
func (tree *BST[T]) IsValidBST() bool {
	stack := sequence.NewStack[*Node[T]]()
	stack.Push(tree.root)
	for !stack.IsEmpty() {
		p, _ := stack.Pop()
		if nil == p {
			continue
		}
		if nil != p.left && p.left.value >= p.value {
			return false
		}
		if nil != p.right && p.right.value < p.value {
			return false
		}
		stack.Push(p.right)
		stack.Push(p.left)
	}
	return true
}

// whole-tree ordering, the parent/child checks only see neighbours
func (tree *ordered[T]) strictlyAscending() bool {
	p := tree.First()
	if nil == p {
		return true
	}
	for q := p.Next(); nil != q; p, q = q, q.Next() {
		if !(p.value < q.value) {
			return false
		}
	}
	return true
}
