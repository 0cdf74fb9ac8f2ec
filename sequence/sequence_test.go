// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/sequence"
)

func TestStack(t *testing.T) {
	s := sequence.NewStack[int]()
	assert.True(t, s.IsEmpty(), "new stack not empty")

	_, ok := s.Pop()
	assert.False(t, ok, "pop from empty stack")

	for i := 1; i <= 5; i += 1 {
		s.Push(i)
	}
	assert.Equal(t, 5, s.Len(), "wrong length")

	top, ok := s.Top()
	assert.True(t, ok)
	assert.Equal(t, 5, top, "wrong top")

	for i := 5; i >= 1; i -= 1 {
		v, ok := s.Pop()
		assert.True(t, ok, "pop failed")
		assert.Equal(t, i, v, "wrong pop order")
	}
	assert.True(t, s.IsEmpty(), "stack not empty after pops")
}

func TestStackOfPointers(t *testing.T) {
	s := sequence.NewStack[*int]()
	s.Push(nil)
	assert.False(t, s.IsEmpty(), "nil item not stacked")
	v, ok := s.Pop()
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestQueue(t *testing.T) {
	q := sequence.NewQueue[string]()
	assert.True(t, q.IsEmpty(), "new queue not empty")

	_, ok := q.Dequeue()
	assert.False(t, ok, "dequeue from empty queue")
	_, ok = q.Peek()
	assert.False(t, ok, "peek on empty queue")

	items := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q"}
	for _, item := range items {
		q.Enqueue(item)
	}
	assert.Equal(t, len(items), q.Len(), "wrong length")
	assert.Equal(t, items, q.Values(), "wrong values")

	front, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, "a", front, "wrong front")

	for _, item := range items {
		v, ok := q.Dequeue()
		assert.True(t, ok, "dequeue failed")
		assert.Equal(t, item, v, "wrong dequeue order")
	}
	assert.True(t, q.IsEmpty(), "queue not empty after dequeues")
	assert.Equal(t, []string{}, q.Values(), "values of empty queue")
}
