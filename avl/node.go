// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Node - a node in the tree
type Node[T cmp.Ordered] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	up     *Node[T] // points to parent node
	value  T        // ordering value
	height int      // edges to the deepest leaf below
}

// allocate a new leaf
func newNode[T cmp.Ordered](value T, up *Node[T]) *Node[T] {
	return &Node[T]{
		up:     up,
		value:  value,
		height: 0,
	}
}

// release a detached node so it cannot keep other nodes alive
func freeNode[T cmp.Ordered](node *Node[T]) {
	node.left = nil
	node.right = nil
	node.up = nil
}

// Value - read the value from a node
func (p *Node[T]) Value() T {
	return p.value
}

// Left - the left child or nil
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - the right child or nil
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Parent - return parent node of a node
func (p *Node[T]) Parent() *Node[T] {
	return p.up
}

// Height - stored height of a node, nil node has height -1
// only maintained for nodes of a balanced Tree
func (p *Node[T]) Height() int {
	if nil == p {
		return -1
	}
	return p.height
}

// Depth - get the depth of a node
func (p *Node[T]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// ChildrenAtDepth - returns all descendants at a specific depth
// below this node, depth zero is the node itself
func (p *Node[T]) ChildrenAtDepth(depth uint) []*Node[T] {
	if depth == 0 {
		return []*Node[T]{p}
	}
	nodes := []*Node[T]{}
	if p.left != nil {
		nodes = append(nodes, p.left.ChildrenAtDepth(depth-1)...)
	}
	if p.right != nil {
		nodes = append(nodes, p.right.ChildrenAtDepth(depth-1)...)
	}
	return nodes
}

// recompute the stored height from the children
func (p *Node[T]) updateHeight() {
	p.height = 1 + max(p.left.Height(), p.right.Height())
}

// height(right) - height(left)
func balanceFactor[T cmp.Ordered](p *Node[T]) int {
	return p.right.Height() - p.left.Height()
}
