// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Add - insert a new value and rebalance every ancestor of the new leaf
// returns false (and leaves the tree unchanged) if the value was
// already present
func (tree *Tree[T]) Add(value T) bool {
	p := tree.insertLeaf(value, false)
	if nil == p {
		return false
	}
	tree.rebalanceFrom(p)
	return true
}

// internal: descend from the root and hang a new leaf at the first
// empty slot
//
// values less than a node go left, everything else goes right; if
// duplicates is false an equal value stops the descent and nil is
// returned
func (tree *ordered[T]) insertLeaf(value T, duplicates bool) *Node[T] {
	if nil == tree.root {
		tree.root = newNode(value, nil)
		tree.count += 1
		return tree.root
	}

	p := tree.root
	for {
		if value < p.value {
			if nil == p.left {
				p.left = newNode(value, p)
				tree.count += 1
				return p.left
			}
			p = p.left
			continue
		}
		if !duplicates && !(value > p.value) { // equal
			return nil
		}
		if nil == p.right {
			p.right = newNode(value, p)
			tree.count += 1
			return p.right
		}
		p = p.right
	}
}
