// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/journey"
	"cogentcore.org/journey/oklab"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func paletteCmd(opts *options) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "palette generates discrete colors with enforced contrast",
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := buildConfig(cmd, opts)
			if err != nil {
				return err
			}
			jy, err := journey.New(cf)
			if err != nil {
				return err
			}
			printPalette(termenv.NewOutput(cmd.OutOrStdout()), jy.Discrete(count))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 8, "number of palette colors")
	return cmd
}

func printPalette(out *termenv.Output, colors []oklab.RGB) {
	profile := out.ColorProfile()
	for i, c := range colors {
		hex := hexString(c)
		swatch := out.String("      ").Background(profile.Color(hex))
		fmt.Fprintf(out, "%3d  %s  %s\n", i, swatch, hex)
	}
}
