// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/canvas/sceneio"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is the version of the command, set with ldflags.
var Version = "dev"

// app has the state shared by all commands.
type app struct {
	out    io.Writer
	errOut io.Writer

	// flags
	configFile string
	verbose    bool
	trace      bool
	format     sceneio.Formats
	tree       bool
	metrics    bool

	config *Config
	logger *log.Logger
}

func newApp(out, errOut io.Writer) *app {
	return &app{out: out, errOut: errOut}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "scenelayout",
		Short:        "Scenelayout lays out scenes of grouped objects",
		Long:         `Scenelayout builds scenes of grouped objects from TOML, YAML or JSON scene files, runs their scripted steps, and prints the resulting layout of every object.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetVersionTemplate("scenelayout {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default "+DefaultConfigFile+")")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	pf.BoolVar(&a.trace, "trace", false, "trace every layout pass")
	pf.VarP(&a.format, "format", "f", "snapshot format: toml, yaml or json")
	pf.BoolVarP(&a.tree, "tree", "t", false, "print an object tree instead of a snapshot")
	pf.BoolVar(&a.metrics, "metrics", false, "print layout metrics after the run")

	root.AddCommand(a.layoutCommand())
	root.AddCommand(a.watchCommand())
	root.AddCommand(a.versionCommand())
	return root
}

// setup loads the config, applies the flags on top of it,
// and installs the logger as the default slog handler.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configFile)
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if fl.Changed("trace") {
		cfg.Trace = a.trace
	}
	if fl.Changed("format") {
		cfg.Format = a.format.String()
	}
	if fl.Changed("metrics") {
		cfg.Metrics = a.metrics
	}
	a.config = cfg
	cfg.Apply()

	a.logger = log.NewWithOptions(a.errOut, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           cfg.Level(),
	})
	slog.SetDefault(slog.New(a.logger))
	return nil
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "scenelayout", Version)
		},
	}
}
