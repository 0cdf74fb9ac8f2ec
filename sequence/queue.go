// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence

import (
	"github.com/eapache/queue"
)

// Queue - first in first out, a typed view of a ring buffer queue
type Queue[T any] struct {
	q *queue.Queue
}

// NewQueue - create an empty queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		q: queue.New(),
	}
}

// Enqueue - add an item at the back
func (q *Queue[T]) Enqueue(item T) {
	q.q.Add(item)
}

// Dequeue - remove and return the front item
// returns false if the queue is empty
func (q *Queue[T]) Dequeue() (T, bool) {
	if 0 == q.q.Length() {
		var zero T
		return zero, false
	}
	item, _ := q.q.Remove().(T) // nil interface items come back as zero
	return item, true
}

// Peek - return the front item without removing it
func (q *Queue[T]) Peek() (T, bool) {
	if 0 == q.q.Length() {
		var zero T
		return zero, false
	}
	item, _ := q.q.Peek().(T)
	return item, true
}

// IsEmpty - true if nothing is queued
func (q *Queue[T]) IsEmpty() bool {
	return 0 == q.q.Length()
}

// Len - number of queued items
func (q *Queue[T]) Len() int {
	return q.q.Length()
}

// Values - copy of the queued items, front first
func (q *Queue[T]) Values() []T {
	n := q.q.Length()
	values := make([]T, n)
	for i := 0; i < n; i += 1 {
		values[i], _ = q.q.Get(i).(T)
	}
	return values
}
