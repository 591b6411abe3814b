// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/canvas/base/iox"
	"cogentcore.org/canvas/base/iox/jsonx"
	"cogentcore.org/canvas/base/iox/tomlx"
	"cogentcore.org/canvas/base/iox/yamlx"
)

// Formats are the supported file formats.
type Formats int32

const (
	// TOML is the TOML format, which is the default.
	TOML Formats = iota

	// YAML is the YAML format.
	YAML

	// JSON is the JSON format.
	JSON
)

var formatsNames = [...]string{"toml", "yaml", "json"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatsNames) {
		return "unknown"
	}
	return formatsNames[f]
}

// SetString sets the format from its name.
func (f *Formats) SetString(s string) error {
	switch strings.ToLower(s) {
	case "toml":
		*f = TOML
	case "yaml", "yml":
		*f = YAML
	case "json":
		*f = JSON
	default:
		return fmt.Errorf("sceneio: unknown format %q", s)
	}
	return nil
}

// Set implements the pflag.Value interface, so that
// formats can be used directly as command line flags.
func (f *Formats) Set(s string) error { return f.SetString(s) }

// Type implements the pflag.Value interface.
func (f *Formats) Type() string { return "format" }

// FormatFromFilename returns the format for the extension of the given filename.
func FormatFromFilename(filename string) (Formats, error) {
	var f Formats
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if err := f.SetString(ext); err != nil {
		return f, fmt.Errorf("sceneio: unsupported file extension %q", filepath.Ext(filename))
	}
	return f, nil
}

// Decoder returns the [iox.DecoderFunc] for the format.
func (f Formats) Decoder() iox.DecoderFunc {
	switch f {
	case YAML:
		return yamlx.NewDecoder
	case JSON:
		return jsonx.NewDecoder
	}
	return tomlx.NewDecoder
}

// Encoder returns the [iox.EncoderFunc] for the format.
func (f Formats) Encoder() iox.EncoderFunc {
	switch f {
	case YAML:
		return yamlx.NewEncoder
	case JSON:
		return jsonx.NewEncoder
	}
	return tomlx.NewEncoder
}

// Read reads the given value from the given reader in the format.
func (f Formats) Read(v any, r io.Reader) error {
	return iox.Read(v, r, f.Decoder())
}

// Write writes the given value to the given writer in the format.
func (f Formats) Write(v any, w io.Writer) error {
	return iox.Write(v, w, f.Encoder())
}
