// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// detach a located node from the tree
//
// returns the anchor: the lowest node whose subtree changed shape,
// i.e. where a rebalancing walk must start (nil if nothing above the
// splice point remains)
func (tree *ordered[T]) splice(up *Node[T], node *Node[T]) *Node[T] {
	anchor := up
	switch {
	case nil != node.left && nil != node.right:
		anchor = tree.removeTwoSubtrees(up, node)
	case nil != node.left || nil != node.right:
		tree.removeOneSubtree(up, node)
	default:
		tree.removeNoSubtrees(up, node)
	}
	tree.count -= 1
	freeNode(node)
	return anchor
}

// leaf: clear the parent's slot, or empty the tree
func (tree *ordered[T]) removeNoSubtrees(up *Node[T], node *Node[T]) {
	tree.replaceChild(up, node, nil)
}

// single child takes the place of the removed node
func (tree *ordered[T]) removeOneSubtree(up *Node[T], node *Node[T]) {
	child := node.left
	if nil == child {
		child = node.right
	}
	tree.replaceChild(up, node, child)
}

// replace the node by its inorder successor
//
// returns the successor's former parent, or the successor itself when
// it was the immediate right child of the removed node
func (tree *ordered[T]) removeTwoSubtrees(up *Node[T], node *Node[T]) *Node[T] {
	successorUp, successor := inorderSuccessor(node)

	// successor is deeper in the right subtree: its right child takes
	// its place and it adopts the removed node's right subtree
	if successorUp != node {
		successorUp.left = successor.right
		if nil != successor.right {
			successor.right.up = successorUp
		}
		successor.right = node.right
		node.right.up = successor
	}

	successor.left = node.left
	node.left.up = successor
	tree.replaceChild(up, node, successor)

	if successorUp == node {
		return successor
	}
	return successorUp
}

// minimum of the right subtree and its parent
// requires node.right != nil
func inorderSuccessor[T cmp.Ordered](node *Node[T]) (*Node[T], *Node[T]) {
	if nil == node.right.left {
		return node, node.right
	}
	p := node.right
	for nil != p.left.left {
		p = p.left
	}
	return p, p.left
}
