// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"

	"cogentcore.org/canvas/base/iox/tomlx"
	"cogentcore.org/canvas/layout"
	"cogentcore.org/canvas/sceneio"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
)

// DefaultConfigFile is the config file used when none is given.
const DefaultConfigFile = "~/.config/scenelayout/config.toml"

// Config is the configuration of the scenelayout command,
// which is read from a TOML file.
type Config struct {

	// LogLevel is the minimum level of log messages: debug, info, warn or error.
	LogLevel string `toml:"logLevel"`

	// Trace prints a trace of every layout pass.
	Trace bool `toml:"trace"`

	// TraceDetail also prints every object that is moved by a layout pass.
	TraceDetail bool `toml:"traceDetail"`

	// Format is the output format of snapshots: toml, yaml or json.
	Format string `toml:"format"`

	// Color enables colored output of the object tree.
	Color bool `toml:"color"`

	// Metrics prints layout metrics in the Prometheus text format
	// after the scene has run.
	Metrics bool `toml:"metrics"`
}

// Defaults sets the default values of the config.
func (cfg *Config) Defaults() {
	cfg.LogLevel = "info"
	cfg.Format = "toml"
	cfg.Color = true
}

// NewConfig returns a new config with default values.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

// LoadConfig returns the config in the given file, on top of the defaults.
// If filename is empty, [DefaultConfigFile] is used if it exists.
func LoadConfig(filename string) (*Config, error) {
	cfg := NewConfig()
	optional := filename == ""
	if optional {
		filename = DefaultConfigFile
	}
	path, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	err = tomlx.Open(cfg, path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate returns an error if the config has invalid values.
func (cfg *Config) Validate() error {
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := cfg.OutputFormat(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the log level of the config, or info if it is invalid.
func (cfg *Config) Level() log.Level {
	lv, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lv
}

// OutputFormat returns the snapshot format of the config.
func (cfg *Config) OutputFormat() (sceneio.Formats, error) {
	var f sceneio.Formats
	err := f.SetString(cfg.Format)
	return f, err
}

// Apply applies the debug settings of the config to the layout package.
func (cfg *Config) Apply() {
	layout.DebugSettings.LayoutTrace = cfg.Trace || cfg.TraceDetail
	layout.DebugSettings.LayoutTraceDetail = cfg.TraceDetail
}
