// Copyright (c) 2020 Cisco and/or its affiliates.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package commands - csit-vars command line
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/networkservicemesh/csit/variables"
	"github.com/networkservicemesh/csit/variables/export"
)

const (
	defaultConfigName = ".csit-vars"

	formatKey   = "format"
	outputKey   = "output"
	logLevelKey = "log-level"
)

// Arguments - command line arguments
type Arguments struct {
	config   string // Config file of the command itself.
	format   string // Output format of dump.
	output   string // Output file of dump, stdout if empty.
	logLevel string // Logrus level.
}

type varsCmd struct {
	cobra.Command

	cmdArguments *Arguments
	viper        *viper.Viper
	table        *variables.Table
	out          io.Writer
}

// NewRootCmd creates csit-vars command serving the given table.
func NewRootCmd(table *variables.Table, out io.Writer) *cobra.Command {
	rootCmd := &varsCmd{
		cmdArguments: &Arguments{},
		viper:        viper.New(),
		table:        table,
		out:          out,
	}
	rootCmd.Use = "csit-vars"
	rootCmd.Short = "Controller system test variables"
	rootCmd.Long = `Prints default endpoints, credentials, headers and API paths used by the controller system tests.`
	rootCmd.SilenceUsage = true
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return rootCmd.initConfig()
	}

	initCmd(rootCmd)
	return &rootCmd.Command
}

// Execute - main entry point for command
func Execute() {
	if err := NewRootCmd(variables.Default(), os.Stdout).Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func initCmd(rootCmd *varsCmd) {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootCmd.cmdArguments.config,
		"config", "", "", "Config file, default="+defaultConfigName+".yaml")
	flags.StringVarP(&rootCmd.cmdArguments.format,
		formatKey, "f", string(export.YAML), "Output format, yaml or json")
	flags.StringVarP(&rootCmd.cmdArguments.output,
		outputKey, "o", "", "Output file, stdout if empty")
	flags.StringVarP(&rootCmd.cmdArguments.logLevel,
		logLevelKey, "", logrus.InfoLevel.String(), "Log level")
	if err := bindFlags(rootCmd.viper, flags, formatKey, outputKey, logLevelKey); err != nil {
		logrus.Fatalf("Failed to bind flags: %v", err)
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print variable names in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range rootCmd.table.Names() {
				if _, err := fmt.Fprintln(rootCmd.out, name); err != nil {
					return err
				}
			}
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "get NAME",
		Short: "Print value of a variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := rootCmd.table.Lookup(args[0])
			if err != nil {
				return err
			}
			return printValue(rootCmd.out, v)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Write all variables as a Robot Framework variable file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.dump()
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of csit-vars",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(rootCmd.out, "csit-vars -- HEAD")
		},
	})
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		flag := flags.Lookup(key)
		if flag == nil {
			return errors.Errorf("flag %s is not defined", key)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "failed to bind flag %s", key)
		}
	}
	return nil
}

// initConfig reads the optional config file and sets the global logrus level.
func (c *varsCmd) initConfig() error {
	if c.cmdArguments.config != "" {
		c.viper.SetConfigFile(c.cmdArguments.config)
	} else {
		c.viper.SetConfigName(defaultConfigName)
		c.viper.AddConfigPath(".")
	}
	if err := c.viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "failed to read config")
		}
	} else {
		logrus.Debugf("Using config file %s", c.viper.ConfigFileUsed())
	}

	level, err := logrus.ParseLevel(c.viper.GetString(logLevelKey))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	return nil
}

func (c *varsCmd) dump() error {
	format, err := export.ParseFormat(c.viper.GetString(formatKey))
	if err != nil {
		return err
	}
	output := c.viper.GetString(outputKey)
	if output == "" {
		return export.Write(c.out, c.table, format)
	}

	file, err := os.Create(output)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", output)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logrus.Errorf("Failed to close %s: %v", output, closeErr)
		}
	}()
	if err = export.Write(file, c.table, format); err != nil {
		return err
	}
	logrus.Infof("Variables written to %s", output)
	return nil
}

func printValue(w io.Writer, v interface{}) error {
	switch val := v.(type) {
	case string, int:
		_, err := fmt.Fprintln(w, val)
		return err
	case nil:
		_, err := fmt.Fprintln(w, "null")
		return err
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal value")
	}
	_, err = w.Write(out)
	return err
}
