// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

const (
	dir = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(dir)
	_ = os.Mkdir(dir, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	result := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(result)
}

func writeConfiguration(t *testing.T, source string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "avltree.conf")
	if err := os.WriteFile(fileName, []byte(source), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, `
return {
    kind = "BST",
    add = { 50, 40, 60, 30, 70, 20, 80, 45 },
    remove = { 40, 99 },
    print = true,
    logging = {
        directory = "/tmp/avltree-log",
        size = 4096,
        levels = { main = "debug" },
    },
}
`)

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration error")
	assert.Equal(t, "bst", c.Kind, "wrong kind")
	assert.Equal(t, []int{50, 40, 60, 30, 70, 20, 80, 45}, c.Add, "wrong add")
	assert.Equal(t, []int{40, 99}, c.Remove, "wrong remove")
	assert.True(t, c.Print, "print not set")
	assert.Equal(t, "/tmp/avltree-log", c.Logging.Directory, "wrong directory")
	assert.Equal(t, defaultLogFile, c.Logging.File, "default file lost")
	assert.Equal(t, 4096, c.Logging.Size, "wrong size")
	assert.Equal(t, defaultLogCount, c.Logging.Count, "default count lost")
	assert.Equal(t, "debug", c.Logging.Levels["main"], "wrong main level")
	assert.Equal(t, "info", c.Logging.Levels[logger.DefaultTag], "wrong default level")
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, `return { add = { 3, 1, 2 } }`)

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration error")
	assert.Equal(t, "avl", c.Kind, "wrong default kind")
	assert.False(t, c.Print, "print set")
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), defaultLogDirectory), c.Logging.Directory, "wrong log directory")
	assert.Equal(t, defaultLogFile, c.Logging.File, "wrong log file")
}

func TestGetConfigurationInvalidKind(t *testing.T) {
	fileName := writeConfiguration(t, `return { kind = "red-black" }`)

	_, err := getConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidTreeKind, err, "wrong error")
}

func TestGetConfigurationNotTable(t *testing.T) {
	fileName := writeConfiguration(t, `return 42`)

	_, err := getConfiguration(fileName)
	assert.Equal(t, fault.ErrConfigNotTable, err, "wrong error")
}

func TestRunScriptAVL(t *testing.T) {
	c := &Configuration{
		Kind:   "avl",
		Add:    []int{50, 40, 60, 30, 70, 20, 80, 45, 45},
		Remove: []int{40, 99},
		Print:  true,
	}

	var b bytes.Buffer
	err := runScript(&b, c, logger.New("testing"))
	assert.Nil(t, err, "run error")

	output := b.String()
	assert.Contains(t, output, "added: 8  duplicates: 1  removed: 1  missing: 1\n", "wrong counts")
	assert.Contains(t, output, "RESULT : AVL pre-order { 50, 30, 20, 45, 70, 60, 80 }\n", "wrong shape")
	assert.Contains(t, output, "|------+ 50 ^- h:2 +0\n", "no drawing")
	assert.Contains(t, output, "inorder: [20 30 45 50 60 70 80]\n", "wrong inorder")
	assert.Contains(t, output, "min: 20  max: 80\n", "wrong extremes")
}

func TestRunScriptEmptyBST(t *testing.T) {
	c := &Configuration{
		Kind:   "bst",
		Add:    []int{7},
		Remove: []int{7},
		Print:  true,
	}

	var b bytes.Buffer
	err := runScript(&b, c, logger.New("testing"))
	assert.Nil(t, err, "run error")

	output := b.String()
	assert.Contains(t, output, "RESULT : BST pre-order {  }\n", "wrong shape")
	assert.Contains(t, output, "(empty tree)\n", "missing empty marker")
	assert.Contains(t, output, "inorder: []\n", "wrong inorder")
	assert.Contains(t, output, "min/max: tree is empty\n", "wrong extremes")
}

func TestRunScriptInvalidKind(t *testing.T) {
	err := runScript(&bytes.Buffer{}, &Configuration{Kind: "splay"}, logger.New("testing"))
	assert.Equal(t, fault.ErrInvalidTreeKind, err, "wrong error")
}
