// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse the node's Lua configuration file
package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/zatoichi-labs/plasmacashd/chain"
	"github.com/zatoichi-labs/plasmacashd/fault"
	"github.com/zatoichi-labs/plasmacashd/publish"
)

// basic defaults (directories and files are relative to the "DataDirectory" from the configuration file)
const (
	defaultLevelDBDirectory = "data"
	defaultGenesisFile      = "genesis.json"

	defaultLogDirectory = "log"
	defaultLogFile      = "plasmacashd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// DatabaseType - where the token store lives
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the complete node configuration
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	GenesisFile   string       `gluamapper:"genesis_file" json:"genesis_file"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Publishing publish.Configuration `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration  `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: dataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Plasma,
		GenesisFile:   defaultGenesisFile,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "", // derived from chain below
		},

		Publishing: publish.Configuration{
			Broadcast: []string{},
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if !chain.Valid(options.Chain) {
		return nil, fault.ErrInvalidChain
	}

	if "" == options.Database.Name {
		options.Database.Name = options.Chain + ".leveldb"
	}

	// each of these directory/file paths is relative to the data directory
	options.DataDirectory = ensureAbsolute(dataDirectory, options.DataDirectory)
	options.Database.Directory = ensureAbsolute(options.DataDirectory, options.Database.Directory)
	options.GenesisFile = ensureAbsolute(options.DataDirectory, options.GenesisFile)
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if "" != options.PidFile {
		options.PidFile = ensureAbsolute(options.DataDirectory, options.PidFile)
	}

	return options, nil
}

// DatabasePath - the full path of the LevelDB store
func (configuration *Configuration) DatabasePath() string {
	return filepath.Join(configuration.Database.Directory, configuration.Database.Name)
}

// EnsureDirectories - create the directories the node writes into
func (configuration *Configuration) EnsureDirectories() error {
	for _, directory := range []string{
		configuration.DataDirectory,
		configuration.Database.Directory,
		configuration.Logging.Directory,
	} {
		if err := os.MkdirAll(directory, 0700); nil != err {
			return err
		}
	}
	return nil
}

// make a path absolute, relative paths hang off the data directory
func ensureAbsolute(dataDirectory string, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(dataDirectory, path))
}
