// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cogentcore.org/journey"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func gradientCmd(opts *options) *cobra.Command {
	var steps int
	var at float32
	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "gradient renders a smooth strip of samples across the journey",
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := buildConfig(cmd, opts)
			if err != nil {
				return err
			}
			jy, err := journey.New(cf)
			if err != nil {
				return err
			}
			out := termenv.NewOutput(cmd.OutOrStdout())
			if cmd.Flags().Changed("at") {
				c := jy.Sample(at)
				hex := hexString(c)
				swatch := out.String("      ").Background(out.ColorProfile().Color(hex))
				fmt.Fprintf(out, "%s  %s\n", swatch, hex)
				return nil
			}
			printGradient(out, jy, steps)
			return nil
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 48, "number of samples across the strip")
	cmd.Flags().Float32Var(&at, "at", 0, "print the single sample at this position instead of a strip")
	return cmd
}

func printGradient(out *termenv.Output, jy *journey.Journey, steps int) {
	if steps < 2 {
		steps = 2
	}
	profile := out.ColorProfile()
	var sb strings.Builder
	for i := range steps {
		t := float32(i) / float32(steps-1)
		hex := hexString(jy.Sample(t))
		sb.WriteString(out.String("█").Foreground(profile.Color(hex)).String())
	}
	fmt.Fprintln(out, sb.String())
}
