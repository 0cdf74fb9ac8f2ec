// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/replay"
)

const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avltree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - the contents of the Lua file
type Configuration struct {
	Kind    string               `gluamapper:"kind"`
	Add     []int                `gluamapper:"add"`
	Remove  []int                `gluamapper:"remove"`
	Print   bool                 `gluamapper:"print"`
	Logging logger.Configuration `gluamapper:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the directory holding the file
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		Kind: replay.KindAVL,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Kind = strings.ToLower(options.Kind)
	if replay.KindAVL != options.Kind && replay.KindBST != options.Kind {
		return nil, fault.ErrInvalidTreeKind
	}

	// relative log directory is relative to the configuration file
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}
	if nil == options.Logging.Levels {
		options.Logging.Levels = map[string]string{}
	}
	if _, ok := options.Logging.Levels[logger.DefaultTag]; !ok {
		options.Logging.Levels[logger.DefaultTag] = "info"
	}

	return options, nil
}

// script part of the configuration
func (c *Configuration) script() replay.Script {
	return replay.Script{
		Add:    c.Add,
		Remove: c.Remove,
	}
}
