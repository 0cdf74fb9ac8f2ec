// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest value, nil if empty
func (tree *ordered[T]) First() *Node[T] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest value, nil if empty
func (tree *ordered[T]) Last() *Node[T] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node that follows it in order or
// nil if no more nodes.
//
// climbs while coming up from a right child, so equal values stored
// by BST are visited too
func (p *Node[T]) Next() *Node[T] {
	if p.right != nil {
		return p.right.first()
	}
	for p.up != nil && p.up.right == p {
		p = p.up
	}
	return p.up
}

// Prev - given a node, return the node that precedes it in order or
// nil if no more nodes
func (p *Node[T]) Prev() *Node[T] {
	if p.left != nil {
		return p.left.last()
	}
	for p.up != nil && p.up.left == p {
		p = p.up
	}
	return p.up
}
