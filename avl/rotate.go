// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// walk the parent pointers from p to the root, rebalancing each node
func (tree *Tree[T]) rebalanceFrom(p *Node[T]) {
	for nil != p {
		tree.rebalance(p)
		p = p.up
	}
}

// restore the balance of a single node
//
// a rotation may move p down one level; its new parent is the next
// node visited by rebalanceFrom, which fixes that node's height
func (tree *Tree[T]) rebalance(p *Node[T]) {
	bf := balanceFactor(p)
	if bf < -1 { // left heavy
		if balanceFactor(p.left) > 0 {
			// double LR rotation
			tree.rotateLeft(p.left)
			p.left.left.updateHeight()
		}
		tree.rotateRight(p)
	} else if bf > 1 { // right heavy
		if balanceFactor(p.right) < 0 {
			// double RL rotation
			tree.rotateRight(p.right)
			p.right.right.updateHeight()
		}
		tree.rotateLeft(p)
	}
	p.updateHeight()
}

// promote p.right into the place of p, p becomes its left child
func (tree *Tree[T]) rotateLeft(p *Node[T]) {
	p1 := p.right
	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	tree.replaceChild(p.up, p, p1)
	p1.left = p
	p.up = p1
}

// promote p.left into the place of p, p becomes its right child
func (tree *Tree[T]) rotateRight(p *Node[T]) {
	p1 := p.left
	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	tree.replaceChild(p.up, p, p1)
	p1.right = p
	p.up = p1
}
