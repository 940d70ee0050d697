// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package main provides the journey command line tool for generating
// designed color sequences and palettes in the terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/enums"
	"cogentcore.org/journey"
	"cogentcore.org/journey/oklab"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

func main() {
	cmd := rootCmd()
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}

// options holds the flag values shared by the rendering commands.
type options struct {
	anchors     []string
	config      string
	loop        string
	contrast    string
	temperature string
	vibrancy    float32
	seed        uint64
	strength    string
	verbose     bool
}

func rootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "journey",
		Short: "journey generates perceptually even color sequences and palettes",
		Long: `journey interpolates between anchor colors in the OKLab color space,
producing smooth gradients and discrete palettes with enforced
perceptual contrast. A single anchor expands into a full designed
color wheel.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logx.UserLevel = slog.LevelDebug
			}
		},
	}
	fl := cmd.PersistentFlags()
	fl.StringSliceVarP(&opts.anchors, "anchors", "a", []string{"#4d80cc"}, "hex anchor colors, in journey order")
	fl.StringVarP(&opts.config, "config", "c", "", "TOML configuration file; explicit flags override its values")
	fl.StringVarP(&opts.loop, "loop", "l", "open", "loop mode: open, closed, or pingpong")
	fl.StringVar(&opts.contrast, "contrast", "medium", "palette contrast level: low, medium, or high")
	fl.StringVar(&opts.temperature, "temperature", "neutral", "hue temperature bias: neutral, warm, or cool")
	fl.Float32Var(&opts.vibrancy, "vibrancy", 0.3, "mid-journey vibrancy boost, 0 to 1")
	fl.Uint64Var(&opts.seed, "seed", 0, "variation seed; setting it enables micro-variation")
	fl.StringVar(&opts.strength, "strength", "subtle", "variation strength: subtle or noticeable")
	fl.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(paletteCmd(opts), gradientCmd(opts), parityCmd())
	return cmd
}

// buildConfig assembles the journey configuration from the config
// file and any explicitly set flags.
func buildConfig(cmd *cobra.Command, opts *options) (*journey.Config, error) {
	cf := &journey.Config{}
	cf.Defaults()
	if opts.config != "" {
		if err := tomlx.Open(cf, opts.config); err != nil {
			return nil, err
		}
		logx.PrintlnDebug("loaded configuration from", opts.config)
	}

	fl := cmd.Flags()
	if fl.Changed("anchors") || len(cf.Anchors) == 0 {
		cf.Anchors = cf.Anchors[:0]
		for _, hex := range opts.anchors {
			c, err := colorful.Hex(hex)
			if err != nil {
				return nil, fmt.Errorf("anchor %q: %w", hex, err)
			}
			cf.Anchors = append(cf.Anchors, oklab.RGB{R: float32(c.R), G: float32(c.G), B: float32(c.B)})
		}
	}
	if fl.Changed("loop") || opts.config == "" {
		if err := setEnum(&cf.Loop, opts.loop); err != nil {
			return nil, err
		}
	}
	if fl.Changed("contrast") || opts.config == "" {
		if err := setEnum(&cf.Contrast, opts.contrast); err != nil {
			return nil, err
		}
	}
	if fl.Changed("temperature") || opts.config == "" {
		if err := setEnum(&cf.Temperature, opts.temperature); err != nil {
			return nil, err
		}
	}
	if fl.Changed("vibrancy") {
		cf.Vibrancy = opts.vibrancy
	}
	if fl.Changed("seed") {
		cf.Variation.On = true
		cf.Variation.Seed = opts.seed
	}
	if fl.Changed("strength") {
		cf.Variation.On = true
		if err := setEnum(&cf.Variation.Strength, opts.strength); err != nil {
			return nil, err
		}
	}
	if err := cf.Validate(); err != nil {
		return nil, err
	}
	return cf, nil
}

// setEnum sets the enum from a case-insensitive name.
func setEnum(e enums.EnumSetter, s string) error {
	for _, v := range e.Values() {
		if strings.EqualFold(v.String(), s) {
			e.SetInt64(v.Int64())
			return nil
		}
	}
	names := make([]string, len(e.Values()))
	for i, v := range e.Values() {
		names[i] = strings.ToLower(v.String())
	}
	return fmt.Errorf("%q is not one of %s", s, strings.Join(names, ", "))
}

// hexString formats the color as a #rrggbb hex string.
func hexString(c oklab.RGB) string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Hex()
}
