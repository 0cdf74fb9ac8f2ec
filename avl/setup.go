// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// common core of both tree types
type ordered[T cmp.Ordered] struct {
	root  *Node[T]
	count int
}

// Tree - an AVL balanced tree
type Tree[T cmp.Ordered] struct {
	ordered[T]
}

// BST - an unbalanced ordered tree
type BST[T cmp.Ordered] struct {
	ordered[T]
}

// New - create an initially empty balanced tree
func New[T cmp.Ordered](values ...T) *Tree[T] {
	tree := &Tree[T]{}
	for _, v := range values {
		tree.Add(v)
	}
	return tree
}

// NewBST - create an initially empty unbalanced tree
func NewBST[T cmp.Ordered](values ...T) *BST[T] {
	tree := &BST[T]{}
	for _, v := range values {
		tree.Add(v)
	}
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *ordered[T]) IsEmpty() bool {
	return nil == tree.root
}

// MakeEmpty - drop every node
func (tree *ordered[T]) MakeEmpty() {
	tree.root = nil
	tree.count = 0
}

// Count - number of nodes currently in the tree
func (tree *ordered[T]) Count() int {
	return tree.count
}

// Root - return the root node of the tree, nil if empty
func (tree *ordered[T]) Root() *Node[T] {
	return tree.root
}

// replace the link that currently holds node (parent slot or root)
// with replacement and fix the replacement's parent pointer
func (tree *ordered[T]) replaceChild(up *Node[T], node *Node[T], replacement *Node[T]) {
	if nil == up {
		tree.root = replacement
	} else if up.left == node {
		up.left = replacement
	} else {
		up.right = replacement
	}
	if nil != replacement {
		replacement.up = up
	}
}
