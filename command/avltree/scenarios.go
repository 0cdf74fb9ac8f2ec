// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"
	"math/rand"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// operations common to both tree kinds used by the demonstrations
type demoTree[T cmp.Ordered] interface {
	Add(value T) bool
	Remove(value T) bool
	Count() int
	Root() *avl.Node[T]
	String() string
	Print(w io.Writer) int
}

// create a tree and the function that validates it
type builder[T cmp.Ordered] func(values ...T) (demoTree[T], func() bool)

func avlBuilder[T cmp.Ordered](values ...T) (demoTree[T], func() bool) {
	tree := avl.New(values...)
	return tree, tree.Validate
}

func bstBuilder[T cmp.Ordered](values ...T) (demoTree[T], func() bool) {
	tree := avl.NewBST(values...)
	return tree, tree.IsValidBST
}

type removal struct {
	values []int
	remove int
}

var (
	drawnAdds = [][]int{
		{1, 2, 3}, // RR
		{3, 2, 1}, // LL
		{1, 3, 2}, // RL
		{3, 1, 2}, // LR
	}

	listedAdds = [][]int{
		{10, 20, 30, 40, 50},  // RR, RR
		{10, 20, 30, 50, 40},  // RR, RL
		{30, 20, 10, 5, 1},    // LL, LL
		{30, 20, 10, 1, 5},    // LL, LR
		{5, 4, 6, 3, 7, 2, 8}, // LL, RR
		stepRange(0, 30, 3),
		stepRange(0, 31, 3),
		stepRange(0, 34, 3),
		stepRange(10, -10, -2),
		{1, 1, 1, 1},
	}

	letterAdds = []string{"A", "B", "C", "D", "E"}

	listedRemoves = []removal{
		{[]int{1, 2, 3}, 1},
		{[]int{1, 2, 3}, 2},
		{[]int{1, 2, 3}, 3},
		{[]int{50, 40, 60, 30, 70, 20, 80, 45}, 0},
		{[]int{50, 40, 60, 30, 70, 20, 80, 45}, 45},
		{[]int{50, 40, 60, 30, 70, 20, 80, 45}, 40},
		{[]int{50, 40, 60, 30, 70, 20, 80, 45}, 30},
	}

	drawnRemoves = []removal{
		{[]int{50, 40, 60, 30, 70, 20, 80, 45}, 20}, // RR
		{[]int{50, 40, 60, 30, 70, 20, 80, 15}, 40}, // LL
		{[]int{50, 40, 60, 30, 70, 20, 80, 35}, 20}, // RL
		{[]int{50, 40, 60, 30, 70, 20, 80, 25}, 40}, // LR
	}
)

// values from start towards stop (exclusive) in increments of step
func stepRange(start int, stop int, step int) []int {
	values := []int{}
	for v := start; (step > 0 && v < stop) || (step < 0 && v > stop); v += step {
		values = append(values, v)
	}
	return values
}

// run the demonstrations for both tree kinds
func runScenarios(w io.Writer) error {
	if err := scenarios(w, "AVL", avlBuilder[int], avlBuilder[string]); nil != err {
		return err
	}
	return scenarios(w, "BST", bstBuilder[int], bstBuilder[string])
}

func scenarios(w io.Writer, name string, build builder[int], buildLetters builder[string]) error {

	heading(w, name, "add() example 1")
	for _, values := range drawnAdds {
		tree, valid := build(values...)
		fmt.Fprintln(w, tree)
		tree.Print(w)
		if !valid() {
			return fault.ErrValidationFailed
		}
	}

	heading(w, name, "add() example 2")
	for _, values := range listedAdds {
		tree, valid := build(values...)
		fmt.Fprintf(w, "INPUT  : %v\n", values)
		fmt.Fprintf(w, "RESULT : %s\n", tree)
		if !valid() {
			return fault.ErrValidationFailed
		}
	}
	letters, lettersValid := buildLetters(letterAdds...)
	fmt.Fprintf(w, "INPUT  : %v\n", letterAdds)
	fmt.Fprintf(w, "RESULT : %s\n", letters)
	if !lettersValid() {
		return fault.ErrValidationFailed
	}

	heading(w, name, "add() example 3")
	r := rand.New(rand.NewSource(1))
	for run := 0; run < 100; run += 1 {
		unique := make(map[int]struct{})
		tree, valid := build()
		for i := 0; i < 900; i += 1 {
			v := 1 + r.Intn(19999)
			if _, ok := unique[v]; ok {
				continue
			}
			unique[v] = struct{}{}
			tree.Add(v)
		}
		if !valid() {
			return fault.ErrValidationFailed
		}
	}
	fmt.Fprintln(w, "add() stress test finished")

	heading(w, name, "remove() example 1")
	for _, c := range listedRemoves {
		if err := removeExample(w, build, c, false); nil != err {
			return err
		}
	}

	heading(w, name, "remove() example 2")
	for _, c := range drawnRemoves {
		if err := removeExample(w, build, c, true); nil != err {
			return err
		}
	}

	heading(w, name, "remove() example 3")
	tree, valid := build(stepRange(0, 34, 3)...)
	for tree.Count() > 2 {
		rootValue := tree.Root().Value()
		tree.Remove(rootValue)
		if !valid() {
			return fault.ErrValidationFailed
		}
		fmt.Fprintf(w, "DEL: %d  RESULT : %s\n", rootValue, tree)
	}
	return nil
}

func removeExample(w io.Writer, build builder[int], c removal, draw bool) error {
	tree, valid := build(c.values...)
	fmt.Fprintf(w, "INPUT  : %s DEL: %d\n", tree, c.remove)
	if draw {
		tree.Print(w)
	}
	tree.Remove(c.remove)
	fmt.Fprintf(w, "RESULT : %s\n", tree)
	if draw {
		tree.Print(w)
		fmt.Fprintln(w)
	}
	if !valid() {
		return fault.ErrValidationFailed
	}
	return nil
}

func heading(w io.Writer, name string, title string) {
	s := fmt.Sprintf("%s - method %s", name, title)
	fmt.Fprintf(w, "\n%s\n", s)
	for range s {
		fmt.Fprint(w, "-")
	}
	fmt.Fprintln(w)
}
