// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultCount     = 2200
	defaultDelete    = 2000
	defaultRuns      = 10
	defaultModulus   = 10000
	defaultDirectory = "log"
)

// main program
func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "runs", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "modulus", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'm'},
		{Long: "log-directory", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: option parse error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--count=N] [--delete=M] [--runs=R] [--modulus=K] [--log-directory=DIR]", program)
	}

	settings := Settings{
		Count:   defaultCount,
		Delete:  defaultDelete,
		Runs:    defaultRuns,
		Modulus: defaultModulus,
	}
	for name, p := range map[string]*int{
		"count":   &settings.Count,
		"delete":  &settings.Delete,
		"runs":    &settings.Runs,
		"modulus": &settings.Modulus,
	} {
		if len(options[name]) > 0 {
			n, err := strconv.Atoi(options[name][0])
			if nil != err {
				exitwithstatus.Message("%s: invalid %s: %q", program, name, options[name][0])
			}
			*p = n
		}
	}
	if err := settings.Validate(); nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	directory := defaultDirectory
	if len(options["log-directory"]) > 0 {
		directory = options["log-directory"][0]
	}

	level := "info"
	if len(options["verbose"]) > 0 {
		level = "debug"
	}

	if err := os.MkdirAll(directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q error: %s", program, directory, err)
	}
	err = logger.Initialise(logger.Configuration{
		Directory: directory,
		File:      "avlstress.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	})
	if nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err := fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("stress")
	log.Infof("version: %s", version)
	log.Infof("settings: %+v", settings)

	totals, err := Stress(settings, log)
	fmt.Printf("runs: %d  added: %d  duplicates: %d  removed: %d  missing: %d\n",
		totals.Runs, totals.Added, totals.Duplicates, totals.Removed, totals.Missing)
	if nil != err {
		fault.Criticalf("stress failed: %s", err)
		exitwithstatus.Message("%s: stress failed: %s", program, err)
	}
	log.Info("finished")
}
