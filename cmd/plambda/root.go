// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/plambda/config"
)

// Flags shared by all subcommands
type globalFlags struct {
	ConfigPath string
	Debug      bool
	Color      string
	Steps      int
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "plambda",
		Short: "Lambda calculus interpreter and type checker",
		Long: `plambda evaluates and type-checks terms of a lambda calculus with integers,
lists, general recursion and mutable references.`,
		Example: `  # Evaluate a term
  plambda eval 'add 1 2'

  # Infer the type of a term
  plambda type '\x.\y.x'

  # Run a program of ;;-separated statements
  plambda run program.pl`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "Path to a plambda.toml or plambda.yaml file")
	rootCmd.PersistentFlags().BoolVarP(&flags.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.Color, "color", config.DefaultColor, "Colored output: auto, always or never")

	rootCmd.AddCommand(evalCmd(&flags), typeCmd(&flags), runCmd(&flags), demoCmd(&flags))
	return rootCmd
}

// Resolve settings from the configuration file, overridden by flags which were set explicitly.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (config.Config, error) {
	var cfg config.Config
	var err error
	if flags.ConfigPath != "" {
		cfg, err = config.Load(flags.ConfigPath)
	} else {
		_, cfg, err = config.Find(".")
	}
	if err != nil {
		return cfg, errors.Wrap(err, "failed to load config")
	}

	if f := cmd.Flags().Lookup("debug"); f != nil && f.Changed {
		cfg.Debug = flags.Debug
	}
	if f := cmd.Flags().Lookup("color"); f != nil && f.Changed {
		cfg.Color = flags.Color
	}
	if f := cmd.Flags().Lookup("steps"); f != nil && f.Changed {
		if flags.Steps < 0 {
			return cfg, errors.Errorf("--steps must not be negative: %d", flags.Steps)
		}
		cfg.MaxSteps = flags.Steps
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return cfg, errors.Errorf("--color must be auto, always or never: %q", cfg.Color)
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: !useColor(cfg.Color, w),
	}))
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
