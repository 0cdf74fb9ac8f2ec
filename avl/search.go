// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if the value is in the tree
func (tree *ordered[T]) Contains(value T) bool {
	_, node := tree.locate(value)
	return nil != node
}

// Search - find the node holding a specific value, nil if absent
func (tree *ordered[T]) Search(value T) *Node[T] {
	_, node := tree.locate(value)
	return node
}

// find a node and its parent
// returns (nil, nil) if absent and (nil, root) for a root match
func (tree *ordered[T]) locate(value T) (*Node[T], *Node[T]) {
	var up *Node[T]
	p := tree.root
	for nil != p {
		switch {
		case value < p.value:
			up, p = p, p.left
		case value > p.value:
			up, p = p, p.right
		default:
			return up, p
		}
	}
	return nil, nil
}
