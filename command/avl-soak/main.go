// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
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

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// print the final tree when it is at most this size
const maximumPrintCount = 64

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "rounds", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 {
		usage(program)
		return
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	verbose := len(options["verbose"]) > 0

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if n := len(options["rounds"]); n > 0 {
		rounds, err := strconv.Atoi(options["rounds"][n-1])
		if nil != err || rounds <= 0 {
			exitwithstatus.Message("%s: invalid rounds: %q", program, options["rounds"][n-1])
		}
		theConfiguration.Rounds = rounds
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	if err = fault.Initialise(); nil != err {
		log.Criticalf("fault initialise error: %s", err)
		exitwithstatus.Message("fault initialise error: %s", err)
	}
	defer fault.Finalise()

	if err = avl.Initialise(); nil != err {
		log.Criticalf("avl initialise error: %s", err)
		exitwithstatus.Message("avl initialise error: %s", err)
	}
	defer avl.Finalise()

	soak := NewSoak(logger.New("soak"), theConfiguration)
	if verbose {
		fmt.Printf("%s: seed: %d\n", program, soak.Seed())
	}

	err = soak.Run()
	if verbose && soak.tree.Count() <= maximumPrintCount {
		soak.tree.Fprint(os.Stdout, func(r *record) string {
			return strconv.Itoa(r.key)
		})
	}
	if nil != err {
		fault.Criticalf("soak failed  seed: %d  error: %s", soak.Seed(), err)
		exitwithstatus.Message("%s: soak failed  seed: %d  error: %s", program, soak.Seed(), err)
	}
	fault.PanicIfError("final tree check", soak.tree.Check())
	soak.Finish()

	if verbose {
		fmt.Printf("%s: passed: %+v\n", program, soak.Stats)
	}
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--version] [--rounds=N] --config-file=FILE\n\n", program)
	fmt.Printf("  --help             (-h)      - display this message\n")
	fmt.Printf("  --verbose          (-v)      - print the seed, statistics and any small final tree\n")
	fmt.Printf("  --version          (-V)      - display version string\n")
	fmt.Printf("  --rounds=N         (-r)      - override the configured number of rounds\n")
	fmt.Printf("  --config-file=FILE (-c)      - Lua configuration file\n")
	fmt.Printf("\n")
}
