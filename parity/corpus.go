// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parity

import (
	"errors"
	"fmt"
	"regexp"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/journey"
	"cogentcore.org/journey/oklab"
)

// corpusVersionPattern matches corpus version strings such as v20251212.1.
var corpusVersionPattern = regexp.MustCompile(`^v\d{8}\.\d+$`)

// LabValues is the wire form of an OKLab color.
type LabValues struct {
	L float32 `json:"l"`
	A float32 `json:"a"`
	B float32 `json:"b"`
}

// Lab returns the values as an [oklab.Lab] color.
func (v LabValues) Lab() oklab.Lab {
	return oklab.Lab{L: v.L, A: v.A, B: v.B}
}

// RGBValues is the wire form of an sRGB color.
type RGBValues struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
}

// RGB returns the values as an [oklab.RGB] color.
func (v RGBValues) RGB() oklab.RGB {
	return oklab.RGB{R: v.R, G: v.G, B: v.B}
}

// Anchor is one anchor color of a test case, supplied in either color
// space. When both are present, the sRGB values win.
type Anchor struct {
	Oklab *LabValues `json:"oklab,omitempty"`
	SRGB  *RGBValues `json:"srgb,omitempty"`
}

// RGB resolves the anchor to a clamped sRGB color.
func (a *Anchor) RGB() oklab.RGB {
	var rgb oklab.RGB
	switch {
	case a.SRGB != nil:
		rgb = a.SRGB.RGB()
	case a.Oklab != nil:
		rgb = a.Oklab.Lab().RGB()
	}
	return rgb.Clamp()
}

// CaseConfig carries the engine parameters of a test case.
type CaseConfig struct {

	// Lightness is the custom lightness bias weight.
	Lightness float32 `json:"lightness"`

	// Chroma is the custom chroma multiplier; values at or below
	// zero fall back to 1.
	Chroma float32 `json:"chroma"`

	// Contrast is the minimum perceptual distance between adjacent
	// palette colors; values at or below zero fall back to 0.1.
	Contrast float32 `json:"contrast"`

	// Vibrancy is the mid-journey vibrancy boost.
	Vibrancy float32 `json:"vibrancy"`

	// Temperature selects the warm or cool hue bias when it is more
	// than 0.01 away from zero.
	Temperature float32 `json:"temperature"`

	// LoopMode is one of "open", "closed", or "pingpong";
	// anything else maps to open.
	LoopMode string `json:"loopMode,omitempty"`

	// VariationSeed enables seeded micro-variation when present.
	VariationSeed *uint64 `json:"variationSeed,omitempty"`

	// Count is the number of palette colors to generate.
	Count int `json:"count"`
}

// Case is one corpus entry driving a single palette generation.
type Case struct {

	// ID uniquely identifies the case within its corpus.
	ID string `json:"id"`

	// Anchors are the anchor colors of the journey.
	Anchors []Anchor `json:"anchors"`

	// Config carries the engine parameters.
	Config CaseConfig `json:"config"`

	// Seed is the fallback variation seed used when
	// [CaseConfig.VariationSeed] is absent.
	Seed uint64 `json:"seed"`

	// CorpusVersion is filled in from the enclosing corpus when the
	// case does not set it.
	CorpusVersion string `json:"corpusVersion,omitempty"`

	// Notes is optional free-form documentation.
	Notes string `json:"notes,omitempty"`

	// Tags are optional labels for filtering.
	Tags []string `json:"tags,omitempty"`
}

// JourneyConfig maps the case onto an engine configuration. All
// biases use their custom levels so that corpus values pass through
// unmodified, and variation runs at noticeable strength across every
// dimension whenever a seed is supplied. Anchors beyond
// [journey.MaxAnchors] are dropped.
func (cs *Case) JourneyConfig() *journey.Config {
	cf := &journey.Config{}
	cf.Defaults()

	n := min(len(cs.Anchors), journey.MaxAnchors)
	cf.Anchors = make([]oklab.RGB, n)
	for i := range cf.Anchors {
		cf.Anchors[i] = cs.Anchors[i].RGB()
	}

	cf.Lightness = journey.LightnessCustom
	cf.LightnessWeight = cs.Config.Lightness
	cf.Chroma = journey.ChromaCustom
	cf.ChromaMultiplier = 1
	if cs.Config.Chroma > 0 {
		cf.ChromaMultiplier = cs.Config.Chroma
	}
	cf.Contrast = journey.ContrastCustom
	cf.ContrastThreshold = 0.1
	if cs.Config.Contrast > 0 {
		cf.ContrastThreshold = cs.Config.Contrast
	}
	cf.Vibrancy = cs.Config.Vibrancy

	switch {
	case cs.Config.Temperature > 0.01:
		cf.Temperature = journey.TemperatureWarm
	case cs.Config.Temperature < -0.01:
		cf.Temperature = journey.TemperatureCool
	}

	switch cs.Config.LoopMode {
	case "closed":
		cf.Loop = journey.LoopClosed
	case "pingpong":
		cf.Loop = journey.LoopPingPong
	}

	cf.Variation.On = cs.Config.VariationSeed != nil
	cf.Variation.Seed = cs.Seed
	if cs.Config.VariationSeed != nil {
		cf.Variation.Seed = *cs.Config.VariationSeed
	}
	cf.Variation.Strength = journey.VariationNoticeable
	cf.Variation.Dimensions.SetFlag(true, journey.VariationHue, journey.VariationLightness, journey.VariationChroma)
	return cf
}

// Corpus is a versioned set of test cases.
type Corpus struct {

	// CorpusVersion identifies the corpus revision, such as v20251212.1.
	CorpusVersion string `json:"corpusVersion"`

	// Description documents the corpus.
	Description string `json:"description,omitempty"`

	// Cases are the test cases.
	Cases []Case `json:"cases"`
}

// OpenCorpus reads and validates a corpus from the given JSON file.
func OpenCorpus(filename string) (*Corpus, error) {
	cp := &Corpus{}
	if err := jsonx.Open(cp, filename); err != nil {
		return nil, err
	}
	if err := cp.Validate(); err != nil {
		return nil, err
	}
	for i := range cp.Cases {
		if cp.Cases[i].CorpusVersion == "" {
			cp.Cases[i].CorpusVersion = cp.CorpusVersion
		}
	}
	return cp, nil
}

// Case returns the case with the given id, or nil if there is none.
func (cp *Corpus) Case(id string) *Case {
	for i := range cp.Cases {
		if cp.Cases[i].ID == id {
			return &cp.Cases[i]
		}
	}
	return nil
}

// Validate checks the corpus version and every case, accumulating all
// problems found.
func (cp *Corpus) Validate() error {
	var errs []error
	if !corpusVersionPattern.MatchString(cp.CorpusVersion) {
		errs = append(errs, fmt.Errorf("corpus version %q does not match vYYYYMMDD.N", cp.CorpusVersion))
	}
	if len(cp.Cases) == 0 {
		errs = append(errs, errors.New("corpus has no cases"))
	}
	seen := map[string]bool{}
	for i := range cp.Cases {
		cs := &cp.Cases[i]
		if cs.ID == "" {
			errs = append(errs, fmt.Errorf("case %d has no id", i))
			continue
		}
		if seen[cs.ID] {
			errs = append(errs, fmt.Errorf("case id %q is duplicated", cs.ID))
		}
		seen[cs.ID] = true
		if len(cs.Anchors) == 0 {
			errs = append(errs, fmt.Errorf("case %q has no anchors", cs.ID))
		}
		for k := range cs.Anchors {
			a := &cs.Anchors[k]
			if a.Oklab == nil && a.SRGB == nil {
				errs = append(errs, fmt.Errorf("case %q anchor %d has neither oklab nor srgb values", cs.ID, k))
			}
		}
		if cs.Config.Count < 1 {
			errs = append(errs, fmt.Errorf("case %q count %d is not positive", cs.ID, cs.Config.Count))
		}
		switch cs.Config.LoopMode {
		case "", "open", "closed", "pingpong":
		default:
			errs = append(errs, fmt.Errorf("case %q loop mode %q is not recognized", cs.ID, cs.Config.LoopMode))
		}
	}
	return errors.Join(errs...)
}
