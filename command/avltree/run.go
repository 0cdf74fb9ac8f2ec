// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/replay"
	"github.com/bitmark-inc/avltree/sequence"
)

// read-only views shared by both tree kinds
type viewer interface {
	Print(w io.Writer) int
	InorderTraversal() *sequence.Queue[int]
	FindMin() (int, error)
	FindMax() (int, error)
}

// build the configured tree, apply its script and display the result
func runScript(w io.Writer, theConfiguration *Configuration, log *logger.L) error {
	set, validate, err := replay.NewSet(theConfiguration.Kind)
	if nil != err {
		return err
	}

	result, err := replay.Run(set, validate, theConfiguration.script(), log)
	if nil != err {
		return err
	}

	fmt.Fprintf(w, "added: %d  duplicates: %d  removed: %d  missing: %d\n",
		result.Added, result.Duplicates, result.Removed, result.Missing)
	fmt.Fprintf(w, "RESULT : %s\n", set)

	v := set.(viewer)
	if theConfiguration.Print {
		if 0 == v.Print(w) {
			fmt.Fprintf(w, "(empty tree)\n")
		}
	}

	fmt.Fprintf(w, "inorder: %v\n", v.InorderTraversal().Values())
	if lowest, err := v.FindMin(); nil == err {
		highest, _ := v.FindMax()
		fmt.Fprintf(w, "min: %d  max: %d\n", lowest, highest)
	} else {
		fmt.Fprintf(w, "min/max: %s\n", err)
	}

	if err := validate(); nil != err {
		return err
	}
	fmt.Fprintf(w, "check: ok\n")
	return nil
}
