// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the curvemesh tool.
package config

import (
	"os"

	"github.com/mitchellh/go-homedir"

	"cogentcore.org/curvemesh/base/errors"
	"cogentcore.org/curvemesh/base/iox/tomlx"
	"cogentcore.org/curvemesh/curve"
)

// DefaultFile is the config file read when no other is given.
// It is fine for it not to exist.
const DefaultFile = "~/.config/curvemesh/config.toml"

// Config is the main config struct that contains
// all of the configuration options for the curvemesh tool.
type Config struct {

	// the scene file (.toml, .yaml, .yml or .json) holding the curves
	Scene string `toml:"scene"`

	// the OBJ file to write; standard output if empty
	Output string `toml:"output"`

	// the object name written to the OBJ file
	Name string `toml:"name"`

	// how the path normals are chosen: minimum-twist, z-up or stored
	NormalMode curve.NormalMode `toml:"normal-mode"`

	// the seam angle in radians above which closed path frames are relaxed
	Tolerance float32 `toml:"tolerance"`

	// whether warnings fail the build
	Strict bool `toml:"strict"`
}

// Default returns a new config with the default values.
func Default() *Config {
	return &Config{
		Name:      "curvemesh",
		Tolerance: 1e-4,
	}
}

// Open reads the config from the given TOML file, expanding a leading ~.
// Values not present in the file are left unchanged.
func (c *Config) Open(file string) error {
	fn, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	return tomlx.Open(c, fn)
}

// OpenDefault reads [DefaultFile] if it exists.
func (c *Config) OpenDefault() error {
	fn := errors.Log1(homedir.Expand(DefaultFile))
	if _, err := os.Stat(fn); err != nil {
		return nil
	}
	return c.Open(fn)
}
