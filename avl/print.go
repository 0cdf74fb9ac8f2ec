// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree with
// parent, height and balance of each node
// returns the number of levels
func (tree *Tree[T]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", root, true)
}

// Print - display an ASCII graphic representation of the tree with
// the parent of each node
// returns the number of levels
func (tree *BST[T]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", root, false)
}

// String - values in pre-order
func (tree *Tree[T]) String() string {
	return "AVL pre-order { " + preOrder(tree.root) + " }"
}

// String - values in pre-order
func (tree *BST[T]) String() string {
	return "BST pre-order { " + preOrder(tree.root) + " }"
}

func preOrder[T cmp.Ordered](p *Node[T]) string {
	values := []string{}
	var walk func(p *Node[T])
	walk = func(p *Node[T]) {
		if nil == p {
			return
		}
		values = append(values, fmt.Sprint(p.value))
		walk(p.left)
		walk(p.right)
	}
	walk(p)
	return strings.Join(values, ", ")
}

// internal print - returns the maximum depth of the tree
func printTree[T cmp.Ordered](w io.Writer, p *Node[T], prefix string, br branch, balanced bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, balanced)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := "-"
	if nil != p.up {
		up = fmt.Sprint(p.up.value)
	}
	if balanced {
		fmt.Fprintf(w, "%v ^%s h:%d %+d\n", p.value, up, p.height, balanceFactor(p))
	} else {
		fmt.Fprintf(w, "%v ^%s\n", p.value, up)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, balanced)
	}
	return 1 + max(rd, ld)
}
