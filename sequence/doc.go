// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sequence - unbounded LIFO and FIFO containers
//
// neither container blocks or has a capacity limit, and neither is
// safe for concurrent use
package sequence
