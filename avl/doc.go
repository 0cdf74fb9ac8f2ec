// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - ordered binary trees with parent pointers
//
// Two trees share a single node type and a common core:
//
//   BST  - a plain ordered tree; duplicate values are accepted and
//          branch to the right
//   Tree - an AVL balanced tree; duplicate values are silently
//          rejected and every mutation is followed by a walk up the
//          parent pointers rebalancing each ancestor
//
// Each node stores its height (a leaf is zero, a missing child counts
// as -1) and a pointer to its parent so that rebalancing and
// iteration never need to descend from the root again.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use a mutex around every call,
//       rotations rewrite several nodes at once.
package avl
