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

// Package cmd wires mutagen's cobra command tree, grounded on
// gremlins/cmd's root/subcommand split (gremlins.go -> unleash.go).
package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/go-mutagen/mutagen/internal/config"
	"github.com/go-mutagen/mutagen/internal/log"
)

const paramConfigFile = "config"

// Execute builds the root command and runs it.
func Execute(ctx context.Context, version string) error {
	rootCmd, err := newRootCmd(ctx, version)
	if err != nil {
		return err
	}

	return rootCmd.execute()
}

type mutagenCmd struct {
	cmd *cobra.Command
}

func (mc mutagenCmd) execute() error {
	var cfgFile string
	cobra.OnInitialize(func() {
		if err := config.Init([]string{cfgFile}); err != nil {
			log.Errorf("initialization error: %s\n", err)
			os.Exit(1)
		}
	})
	mc.cmd.PersistentFlags().StringVar(&cfgFile, paramConfigFile, "", "override config file (.mgnx or viper config)")

	return mc.cmd.Execute()
}

func newRootCmd(ctx context.Context, version string) (*mutagenCmd, error) {
	if version == "" {
		return nil, errors.New("expected a version string")
	}

	cmd := &cobra.Command{
		SilenceUsage:  true,
		SilenceErrors: true,
		Use:           "mutagen",
		Short:         shortExplainer(),
		Version:       version,
	}

	mc, err := newMutateCmd(ctx)
	if err != nil {
		return nil, err
	}
	cmd.AddCommand(mc.cmd)

	return &mutagenCmd{cmd: cmd}, nil
}

func shortExplainer() string {
	return heredoc.Doc(`
		Mutagen is a mutation-testing engine for smart-contract source code,
		targeting Solidity-like and Vyper-like languages.
	`)
}
