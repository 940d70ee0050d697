// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/journey/parity"
	"github.com/spf13/cobra"
)

func parityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parity",
		Short: "parity runs JSON test corpora and compares palette reports",
	}
	cmd.AddCommand(parityRunCmd(), parityCompareCmd())
	return cmd
}

func parityRunCmd() *cobra.Command {
	var corpusPath, caseID, outDir string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run generates palette reports for corpus cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			cp, err := parity.OpenCorpus(corpusPath)
			if err != nil {
				return err
			}
			if caseID != "" {
				cs := cp.Case(caseID)
				if cs == nil {
					return fmt.Errorf("case %q not found in corpus %s", caseID, cp.CorpusVersion)
				}
				rp, err := parity.Run(cs)
				if err != nil {
					return err
				}
				return writeReports(cmd, outDir, rp)
			}
			reports, err := parity.RunAll(cp)
			if err != nil {
				return err
			}
			return writeReports(cmd, outDir, reports...)
		},
	}
	cmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus JSON file to run")
	cmd.Flags().StringVar(&caseID, "case", "", "run only the case with this id")
	cmd.Flags().StringVar(&outDir, "out", "", "directory for per-case report files; stdout when empty")
	_ = cmd.MarkFlagRequired("corpus")
	return cmd
}

// writeReports saves the reports one file per case, or streams them
// to stdout when no directory is given.
func writeReports(cmd *cobra.Command, outDir string, reports ...*parity.Report) error {
	if outDir == "" {
		for _, rp := range reports {
			if err := jsonx.WriteIndent(rp, cmd.OutOrStdout()); err != nil {
				return err
			}
		}
		return nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for _, rp := range reports {
		path := filepath.Join(outDir, rp.InputCaseID+".json")
		if err := rp.Save(path); err != nil {
			return err
		}
		logx.PrintlnDebug("wrote report", path)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d reports to %s\n", len(reports), outDir)
	return nil
}

func parityCompareCmd() *cobra.Command {
	var tolerancesPath, outPath, runID string
	cmd := &cobra.Command{
		Use:   "compare <report-a> <report-b>",
		Short: "compare checks two palette reports against tolerance bounds",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parity.OpenReport(args[0])
			if err != nil {
				return err
			}
			b, err := parity.OpenReport(args[1])
			if err != nil {
				return err
			}
			tc, err := parity.OpenTolerances(tolerancesPath)
			if err != nil {
				return err
			}
			run, err := parity.CompareAll([]*parity.Report{a}, []*parity.Report{b}, tc)
			if err != nil {
				return err
			}
			run.RunID = runID
			if outPath != "" {
				if err := run.Save(outPath); err != nil {
					return err
				}
			}
			cmp := run.Cases[0]
			fmt.Fprintf(cmd.OutOrStdout(), "case %s: %d colors, %d outside tolerance, max deltaE %.6f\n",
				cmp.InputCaseID, len(cmp.Deltas), cmp.Failures, cmp.MaxDeltaE)
			if run.Summary.Failed > 0 {
				return fmt.Errorf("case %q exceeded tolerance %s", cmp.InputCaseID, tc.Version)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tolerancesPath, "tolerances", "", "tolerance JSON file bounding the comparison")
	cmd.Flags().StringVar(&outPath, "out", "", "write the run report to this JSON file")
	cmd.Flags().StringVar(&runID, "run-id", "", "label recorded in the run report")
	_ = cmd.MarkFlagRequired("tolerances")
	return cmd
}
