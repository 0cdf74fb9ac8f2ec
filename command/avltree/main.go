// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

type globalFlags struct {
	verbose bool
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	globals := globalFlags{}

	app := cli.NewApp()
	app.Name = "avltree"
	app.Usage = "build, edit and draw ordered trees"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose, v",
			Usage:       " log every operation",
			Destination: &globals.verbose,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "apply the additions and removals from a configuration file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config-file, c",
					Value: "",
					Usage: "*Lua configuration file",
				},
			},
			Action: func(c *cli.Context) error {
				return runConfiguration(c, globals)
			},
		},
		{
			Name:  "scenarios",
			Usage: "replay the reference add and remove demonstrations",
			Action: func(c *cli.Context) error {
				return runScenarios(os.Stdout)
			},
		},
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

// the run command
func runConfiguration(c *cli.Context, globals globalFlags) error {
	configurationFile := c.String("config-file")
	if "" == configurationFile {
		return fault.ErrRequiredConfigFile
	}

	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		return err
	}
	if globals.verbose {
		theConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
	}

	// start logging
	if err := os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
		return err
	}
	if err := logger.Initialise(theConfiguration.Logging); nil != err {
		return err
	}
	defer logger.Finalise()

	if err := fault.Initialise(); nil != err {
		return err
	}
	defer fault.Finalise()

	log := logger.New("main")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %+v", theConfiguration)
	defer log.Info("finished")

	return runScript(os.Stdout, theConfiguration, logger.New("replay"))
}
