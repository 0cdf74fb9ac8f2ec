// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific value from the tree
// returns false if the value was not present
func (tree *Tree[T]) Remove(value T) bool {
	up, node := tree.locate(value)
	if nil == node {
		return false
	}
	tree.rebalanceFrom(tree.splice(up, node))
	return true
}
