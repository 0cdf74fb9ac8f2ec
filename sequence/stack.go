// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence

// Stack - last in first out
type Stack[T any] struct {
	items []T
}

// NewStack - create an empty stack
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push - add an item to the top
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop - remove and return the top item
// returns false if the stack is empty
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if 0 == n {
		return zero, false
	}
	item := s.items[n-1]
	s.items[n-1] = zero // do not retain popped item
	s.items = s.items[:n-1]
	return item, true
}

// Top - return the top item without removing it
func (s *Stack[T]) Top() (T, bool) {
	n := len(s.items)
	if 0 == n {
		var zero T
		return zero, false
	}
	return s.items[n-1], true
}

// IsEmpty - true if nothing is stacked
func (s *Stack[T]) IsEmpty() bool {
	return 0 == len(s.items)
}

// Len - number of stacked items
func (s *Stack[T]) Len() int {
	return len(s.items)
}
