// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type session struct {
	Kind   string            `gluamapper:"kind"`
	Add    []int             `gluamapper:"add"`
	Remove []int             `gluamapper:"remove"`
	Print  bool              `gluamapper:"print"`
	Levels map[string]string `gluamapper:"levels"`
	Source string            `gluamapper:"source"`
}

func TestParseConfigurationString(t *testing.T) {
	s := session{}
	err := configuration.ParseConfigurationString(`
local values = {}
for v = 10, 50, 10 do
    values[#values + 1] = v
end
return {
    kind = "avl",
    add = values,
    remove = { 30 },
    print = true,
    levels = { DEFAULT = "info", replay = "debug" },
}
`, &s)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "avl", s.Kind, "wrong kind")
	assert.Equal(t, []int{10, 20, 30, 40, 50}, s.Add, "wrong add")
	assert.Equal(t, []int{30}, s.Remove, "wrong remove")
	assert.True(t, s.Print, "print not set")
	assert.Equal(t, map[string]string{"DEFAULT": "info", "replay": "debug"}, s.Levels, "wrong levels")
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "session.conf")
	err := os.WriteFile(fileName, []byte(`return { kind = "bst", add = { 3, 1, 2 }, source = arg[0] }`), 0600)
	assert.Nil(t, err, "write error")

	s := session{}
	err = configuration.ParseConfigurationFile(fileName, &s)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "bst", s.Kind, "wrong kind")
	assert.Equal(t, []int{3, 1, 2}, s.Add, "wrong add")
	assert.Equal(t, fileName, s.Source, "arg[0] not the file name")
}

func TestParseConfigurationErrors(t *testing.T) {
	s := session{}

	err := configuration.ParseConfigurationFile("", &s)
	assert.Equal(t, fault.ErrRequiredConfigFile, err, "empty file name")

	err = configuration.ParseConfigurationString(`return { kind = "avl" }`, s)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "struct not pointer")

	var nothing *session
	err = configuration.ParseConfigurationString(`return { kind = "avl" }`, nothing)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "nil pointer")

	err = configuration.ParseConfigurationString(`return "avl"`, &s)
	assert.Equal(t, fault.ErrConfigNotTable, err, "not a table")

	err = configuration.ParseConfigurationString(`return {`, &s)
	assert.NotNil(t, err, "syntax error not reported")

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &s)
	assert.NotNil(t, err, "missing file not reported")
}
