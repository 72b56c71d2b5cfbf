/*
 * Copyright 2022 The Gremlins Authors
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *        http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

// Package config binds mutagen's CLI flags and environment variables (via
// viper) and reads/writes the .mgnx configuration-file format (via
// encoding/json).
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Keys available as flags and in environment variables (MUTAGEN_<KEY>).
const (
	NumMutantsKey      = "num-mutants"
	RNGSeedKey         = "rng-seed"
	MutationsKey       = "mutations"
	AllMutationsKey    = "all-mutations"
	FunctionsKey       = "functions"
	ValidateMutantsKey = "validate-mutants"
	StdoutKey          = "stdout"
	PrintOriginalKey   = "print-original"
	SaveConfigFilesKey = "save-config-files"
	OutputDirectoryKey = "output-directory"
	SolcPathKey        = "solc-path"
	VyperPathKey       = "vyper-path"
	VyperContainerKey  = "vyper-container"
)

const (
	mutagenCfgName      = ".mutagen"
	mutagenEnvVarPrefix = "MUTAGEN"

	xdgConfigHomeKey = "XDG_CONFIG_HOME"

	windowsOs = "windows"
)

// Init initialises the viper configuration for mutagen. It sets the
// configuration file name, adds cPaths as additional search paths, and wires
// automatic environment-variable overrides with the MUTAGEN_ prefix. The
// environment always takes precedence over a config file.
func Init(cPaths []string) error {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.SetEnvPrefix(mutagenEnvVarPrefix)
	viper.AutomaticEnv()
	viper.SetConfigName(mutagenCfgName)
	viper.SetConfigType("yaml")

	if isSpecificFile(cPaths) {
		viper.SetConfigFile(cPaths[0])
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
	} else if arePathsNotSet(cPaths) {
		cPaths = defaultConfigPaths()
	}

	for _, p := range cPaths {
		viper.AddConfigPath(p)
	}

	_ = viper.ReadInConfig() // ignoring error if file not present

	return nil
}

func isSpecificFile(cPaths []string) bool {
	return len(cPaths) == 1 && filepath.Ext(cPaths[0]) != ""
}

func arePathsNotSet(cPaths []string) bool {
	return len(cPaths) == 0 || len(cPaths) == 1 && cPaths[0] == ""
}

func defaultConfigPaths() []string {
	result := make([]string, 0, 4)

	if runtime.GOOS != windowsOs {
		result = append(result, "/etc/mutagen")
	}

	xchLocation, _ := homedir.Expand("~/.config")
	if x := os.Getenv(xdgConfigHomeKey); x != "" {
		xchLocation = x
	}
	xchLocation = filepath.Join(xchLocation, "mutagen", "mutagen")
	result = append(result, xchLocation)

	homeLocation, err := homedir.Expand("~/.mutagen")
	if err == nil {
		result = append(result, homeLocation)
	}

	return append(result, ".")
}

var mutex sync.RWMutex

// Set offers synchronised access to viper.
func Set[T any](k string, v T) {
	mutex.Lock()
	defer mutex.Unlock()
	viper.Set(k, v)
}

// Get offers synchronised access to viper.
func Get[T any](k string) T {
	var r T
	mutex.RLock()
	defer mutex.RUnlock()
	r, _ = viper.Get(k).(T)

	return r
}

// Reset is used mainly for testing purposes, to clean up the viper instance.
func Reset() {
	mutex.Lock()
	defer mutex.Unlock()
	viper.Reset()
}
