// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Add - insert a value at the leaf position found by descent
// a duplicate value is stored again in the right subtree of the
// first equal node, so this always returns true
func (tree *BST[T]) Add(value T) bool {
	tree.insertLeaf(value, true)
	return true
}

// Remove - removes the topmost node holding the value, no rebalancing
// is done
func (tree *BST[T]) Remove(value T) bool {
	up, node := tree.locate(value)
	if nil == node {
		return false
	}
	tree.splice(up, node)
	return true
}
