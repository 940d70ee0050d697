// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parity drives the journey engine from JSON test corpora and
// serializes palette reports for cross-implementation comparison.
//
// A corpus supplies anchor colors and engine parameters per case, a
// tolerance configuration bounds the acceptable per-channel and
// delta-E differences, and reports carry each generated color in both
// sRGB and OKLab form. Comparing reports instead of raw samples keeps
// implementations free to differ at the ULP level.
package parity

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"cogentcore.org/journey"
)

// Run generates the palette for one case and wraps it in a report.
func Run(cs *Case) (*Report, error) {
	jy, err := journey.New(cs.JourneyConfig())
	if err != nil {
		return nil, fmt.Errorf("case %q: %w", cs.ID, err)
	}
	start := time.Now()
	palette := jy.Discrete(cs.Config.Count)
	duration := time.Since(start)

	rp := &Report{
		Engine:        Engine,
		Count:         len(palette),
		DurationMs:    float64(duration) / float64(time.Millisecond),
		InputCaseID:   cs.ID,
		CorpusVersion: cs.CorpusVersion,
		BuildFlags:    "unknown",
		Colors:        make([]ReportColor, len(palette)),
	}
	for i, c := range palette {
		lab := c.Lab()
		rp.Colors[i] = ReportColor{
			Oklab: LabValues{L: lab.L, A: lab.A, B: lab.B},
			RGB:   RGBValues{R: c.R, G: c.G, B: c.B},
		}
	}
	return rp, nil
}

// RunAll generates a report for every case in the corpus, in order.
func RunAll(cp *Corpus) ([]*Report, error) {
	reports := make([]*Report, len(cp.Cases))
	for i := range cp.Cases {
		rp, err := Run(&cp.Cases[i])
		if err != nil {
			return nil, err
		}
		reports[i] = rp
	}
	return reports, nil
}

// Comparison is the per-case outcome of comparing two reports.
type Comparison struct {

	// InputCaseID is the case both reports ran.
	InputCaseID string `json:"inputCaseId"`

	// Deltas are the per-color differences in OKLab space.
	Deltas []Delta `json:"deltas"`

	// Failures is the number of colors outside tolerance.
	Failures int `json:"failures"`

	// MaxDeltaE is the largest color difference seen.
	MaxDeltaE float64 `json:"maxDeltaE"`

	// Pass reports whether the failure fraction stayed within the
	// tolerance fail threshold.
	Pass bool `json:"pass"`
}

// Compare checks two reports for the same case against the tolerance
// bounds. Reports from different cases or with different color counts
// do not compare.
func Compare(a, b *Report, tc *ToleranceConfig) (*Comparison, error) {
	if a.InputCaseID != b.InputCaseID {
		return nil, fmt.Errorf("case ids %q and %q do not match", a.InputCaseID, b.InputCaseID)
	}
	if len(a.Colors) != len(b.Colors) {
		return nil, fmt.Errorf("case %q: color counts %d and %d do not match", a.InputCaseID, len(a.Colors), len(b.Colors))
	}
	cmp := &Comparison{
		InputCaseID: a.InputCaseID,
		Deltas:      make([]Delta, len(a.Colors)),
		Pass:        true,
	}
	for i := range a.Colors {
		d := deltaBetween(a.Colors[i], b.Colors[i])
		cmp.Deltas[i] = d
		cmp.MaxDeltaE = math.Max(cmp.MaxDeltaE, d.DeltaE)
		if !tc.Within(d) {
			cmp.Failures++
		}
	}
	if len(a.Colors) > 0 {
		cmp.Pass = float64(cmp.Failures)/float64(len(a.Colors)) <= tc.FailThreshold
	}
	return cmp, nil
}

// CompareAll compares two report sets case by case and totals the
// outcome. Reports pair by position.
func CompareAll(a, b []*Report, tc *ToleranceConfig) (*RunReport, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("report counts %d and %d do not match", len(a), len(b))
	}
	start := time.Now()
	run := &RunReport{
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Summary:  RunSummary{TotalCases: len(a)},
		Cases:    make([]Comparison, 0, len(a)),
	}
	if len(a) > 0 {
		run.CorpusVersion = a[0].CorpusVersion
		run.Engines = []string{a[0].Engine, b[0].Engine}
	}
	for i := range a {
		cmp, err := Compare(a[i], b[i], tc)
		if err != nil {
			return nil, err
		}
		run.Cases = append(run.Cases, *cmp)
		if cmp.Pass {
			run.Summary.Passed++
		} else {
			run.Summary.Failed++
		}
	}
	run.Summary.DurationMs = float64(time.Since(start)) / float64(time.Millisecond)
	return run, nil
}
