// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"cogentcore.org/curvemesh/base/logx"
	"cogentcore.org/curvemesh/cmd/curvemesh/cmd"
	"cogentcore.org/curvemesh/cmd/curvemesh/config"
)

// flags holds the command line flags, which override config file values.
type flags struct {
	configFile string
	output     string
	name       string
	normalMode string
	tolerance  float32
	strict     bool
	watch      bool

	veryVerbose, verbose, quiet bool
}

// newRootCmd returns the root command, with its flags bound to f.
func newRootCmd(f *flags) *cobra.Command {
	root := &cobra.Command{
		Use:   "curvemesh [scene file]",
		Short: "Convert curves to a mesh",
		Long: `curvemesh sweeps the profile curves of a scene file along its path
curves and writes the resulting mesh as OBJ. Without profile curves,
a wire mesh of the paths is written. Scene files may be TOML, YAML or JSON.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(f.veryVerbose, f.verbose, f.quiet)
			logx.SetDefaultLogger()
		},
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := loadConfig(c, f, args)
			if err != nil {
				return err
			}
			if f.watch {
				return cmd.Watch(c.Context(), cfg, c.OutOrStdout(), c.ErrOrStderr(), nil)
			}
			return cmd.Build(c.Context(), cfg, c.OutOrStdout(), c.ErrOrStderr())
		},
	}
	fs := root.Flags()
	fs.StringVarP(&f.configFile, "config", "c", config.DefaultFile, "the TOML config file")
	fs.StringVarP(&f.output, "output", "o", "", "the OBJ file to write; standard output if empty")
	fs.StringVar(&f.name, "name", "", "the object name written to the OBJ file")
	fs.StringVarP(&f.normalMode, "normal-mode", "n", "", "how the path normals are chosen: minimum-twist, z-up or stored")
	fs.Float32Var(&f.tolerance, "tolerance", 0, "the seam angle in radians above which closed path frames are relaxed")
	fs.BoolVar(&f.strict, "strict", false, "fail when warnings are reported")
	fs.BoolVarP(&f.watch, "watch", "w", false, "rebuild every time the scene file changes, until interrupted")

	pf := root.PersistentFlags()
	pf.BoolVar(&f.veryVerbose, "vv", false, "print debug messages")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "print informational messages")
	pf.BoolVarP(&f.quiet, "quiet", "q", false, "print only errors")
	return root
}

// loadConfig returns the config from the defaults, the config file,
// the scene argument and the flags that were set, in that order.
func loadConfig(c *cobra.Command, f *flags, args []string) (*config.Config, error) {
	cfg := config.Default()
	var err error
	if c.Flags().Changed("config") {
		err = cfg.Open(f.configFile)
	} else {
		err = cfg.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.Scene = args[0]
	}
	fs := c.Flags()
	if fs.Changed("output") {
		cfg.Output = f.output
	}
	if fs.Changed("name") {
		cfg.Name = f.name
	}
	if fs.Changed("normal-mode") {
		if err := cfg.NormalMode.SetString(f.normalMode); err != nil {
			return nil, err
		}
	}
	if fs.Changed("tolerance") {
		cfg.Tolerance = f.tolerance
	}
	if fs.Changed("strict") {
		cfg.Strict = f.strict
	}
	return cfg, nil
}
