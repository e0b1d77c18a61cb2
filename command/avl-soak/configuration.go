// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultRounds     = 100
	defaultOperations = 1000
	defaultKeyRange   = 5000

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-soak.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
		"soak":            "info",
	}
)

// MixType - relative weights of each operation
type MixType struct {
	Insert  int `gluamapper:"insert" json:"insert"`
	Remove  int `gluamapper:"remove" json:"remove"`
	Lookup  int `gluamapper:"lookup" json:"lookup"`
	Copy    int `gluamapper:"copy" json:"copy"`
	Destroy int `gluamapper:"destroy" json:"destroy"`
}

// Configuration - the soak run parameters
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Seed          int64                `gluamapper:"seed" json:"seed"`
	Rounds        int                  `gluamapper:"rounds" json:"rounds"`
	Operations    int                  `gluamapper:"operations" json:"operations"`
	KeyRange      int                  `gluamapper:"key_range" json:"key_range"`
	Mix           MixType              `gluamapper:"mix" json:"mix"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// the Lua mapping adds to the levels map, so never hand it the
	// shared defaults
	levels := make(LoglevelMap, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Seed:          0, // zero selects a time based seed
		Rounds:        defaultRounds,
		Operations:    defaultOperations,
		KeyRange:      defaultKeyRange,
		Mix: MixType{
			Insert:  50,
			Remove:  35,
			Lookup:  13,
			Copy:    1,
			Destroy: 1,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	if err := util.EnsureDirectory(options.Logging.Directory); nil != err {
		return nil, err
	}

	return options, nil
}

// check counts and weights
func (c *Configuration) validate() error {
	if c.Rounds <= 0 || c.Operations <= 0 || c.KeyRange <= 0 {
		return fault.ErrInvalidCount
	}
	weights := []int{c.Mix.Insert, c.Mix.Remove, c.Mix.Lookup, c.Mix.Copy, c.Mix.Destroy}
	total := 0
	for _, w := range weights {
		if w < 0 {
			return fault.ErrInvalidOperationMix
		}
		total += w
	}
	if 0 == total {
		return fault.ErrInvalidOperationMix
	}
	return nil
}
