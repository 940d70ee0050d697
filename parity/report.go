// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parity

import "cogentcore.org/core/base/iox/jsonx"

// Engine identifies this implementation in reports.
const Engine = "journey-go"

// Report is the serialized output of one case run, carrying every
// palette color in both sRGB and OKLab form so that independent
// implementations can be compared without bit-exact equality.
type Report struct {

	// Engine identifies the implementation that produced the report.
	Engine string `json:"engine"`

	// Count is the number of colors.
	Count int `json:"count"`

	// DurationMs is the palette generation time in milliseconds.
	DurationMs float64 `json:"durationMs"`

	// InputCaseID is the id of the corpus case that was run.
	InputCaseID string `json:"inputCaseId"`

	// CorpusVersion is the corpus revision the case came from.
	CorpusVersion string `json:"corpusVersion"`

	// BuildFlags records how the engine was built.
	BuildFlags string `json:"buildFlags"`

	// Colors are the palette colors in generation order.
	Colors []ReportColor `json:"colors"`
}

// ReportColor is one palette color in both color spaces.
type ReportColor struct {
	Oklab LabValues `json:"oklab"`
	RGB   RGBValues `json:"rgb"`
}

// OpenReport reads a report from the given JSON file.
func OpenReport(filename string) (*Report, error) {
	rp := &Report{}
	if err := jsonx.Open(rp, filename); err != nil {
		return nil, err
	}
	return rp, nil
}

// Save writes the report to the given JSON file.
func (rp *Report) Save(filename string) error {
	return jsonx.Save(rp, filename)
}

// RunSummary totals the outcome of one comparison run.
type RunSummary struct {
	TotalCases int     `json:"totalCases"`
	Passed     int     `json:"passed"`
	Failed     int     `json:"failed"`
	DurationMs float64 `json:"durationMs"`
}

// RunReport is the artifact written after comparing two report sets
// across a whole corpus.
type RunReport struct {

	// RunID labels the run; the caller chooses it.
	RunID string `json:"runId,omitempty"`

	// Platform is the OS and architecture the run executed on.
	Platform string `json:"platform"`

	// CorpusVersion is the corpus revision that was run.
	CorpusVersion string `json:"corpusVersion"`

	// Engines are the two implementations that were compared.
	Engines []string `json:"engines"`

	// Summary totals the per-case outcomes.
	Summary RunSummary `json:"summary"`

	// Cases are the per-case comparisons.
	Cases []Comparison `json:"cases"`
}

// Save writes the run report to the given JSON file.
func (rr *RunReport) Save(filename string) error {
	return jsonx.Save(rr, filename)
}
