// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package journey

//go:generate core generate

import (
	"errors"
	"fmt"

	"cogentcore.org/journey/oklab"
)

const (
	// MaxAnchors is the maximum number of anchor colors a [Config] can hold.
	MaxAnchors = 8

	// DefaultSeed is the variation seed used when [Variation.Seed] is zero.
	DefaultSeed uint64 = 0x123456789ABCDEF0
)

// Config specifies a color journey: the anchor colors it passes through
// and the perceptual dynamics shaping the sequence around them.
// The zero value is usable once anchors are set; [Config.Defaults]
// sets the standard contrast and vibrancy.
type Config struct {

	// Anchors are the colors the journey passes through, in order,
	// as linear sRGB. Between 1 and [MaxAnchors] anchors are required.
	// A single anchor expands into a full hue wheel journey based
	// on that color.
	Anchors []oklab.RGB

	// Lightness biases the lightness of every sampled color.
	Lightness LightnessBiases

	// LightnessWeight is the signed lightness adjustment, scaled by 0.2,
	// applied when Lightness is [LightnessCustom].
	LightnessWeight float32

	// Chroma biases the chroma of every sampled color.
	Chroma ChromaBiases

	// ChromaMultiplier scales the chroma of every sampled color
	// when Chroma is [ChromaCustom].
	ChromaMultiplier float32

	// Contrast selects the minimum perceptual distance (delta-E)
	// enforced between adjacent colors in discrete palettes.
	Contrast ContrastLevels

	// ContrastThreshold is the minimum delta-E used when Contrast
	// is [ContrastCustom].
	ContrastThreshold float32

	// Vibrancy is the strength of the chroma boost applied near the
	// middle of the journey, in [0, 1]. It prevents muddy midpoints
	// when blending between distant anchors. The default is 0.3.
	Vibrancy float32

	// Temperature rotates all waypoint hues warmer or cooler.
	Temperature TemperatureBiases

	// Loop selects how positions outside [0, 1] fold back onto
	// the journey.
	Loop LoopModes

	// Variation configures seeded micro-variation of sampled colors.
	Variation Variation
}

// Defaults sets standard configuration values.
func (cf *Config) Defaults() {
	cf.Contrast = ContrastMedium
	cf.Vibrancy = 0.3
	cf.Variation.Defaults()
}

// Validate returns an error if any configuration value is outside its
// meaningful range. [New] only requires a valid anchor count; the other
// checks are for callers accepting untrusted configurations.
func (cf *Config) Validate() error {
	var errs []error
	if n := len(cf.Anchors); n < 1 || n > MaxAnchors {
		errs = append(errs, fmt.Errorf("anchor count %d is outside [1, %d]", n, MaxAnchors))
	}
	if cf.Lightness == LightnessCustom && (cf.LightnessWeight < -1 || cf.LightnessWeight > 1) {
		errs = append(errs, fmt.Errorf("lightness weight %g is outside [-1, 1]", cf.LightnessWeight))
	}
	if cf.Chroma == ChromaCustom && cf.ChromaMultiplier < 0 {
		errs = append(errs, fmt.Errorf("chroma multiplier %g is negative", cf.ChromaMultiplier))
	}
	if cf.Contrast == ContrastCustom && cf.ContrastThreshold < 0 {
		errs = append(errs, fmt.Errorf("contrast threshold %g is negative", cf.ContrastThreshold))
	}
	if cf.Vibrancy < 0 || cf.Vibrancy > 1 {
		errs = append(errs, fmt.Errorf("vibrancy %g is outside [0, 1]", cf.Vibrancy))
	}
	if cf.Variation.On && cf.Variation.Strength == VariationCustom && cf.Variation.Magnitude < 0 {
		errs = append(errs, fmt.Errorf("variation magnitude %g is negative", cf.Variation.Magnitude))
	}
	return errors.Join(errs...)
}

// Variation configures the deterministic seeded micro-variation that
// perturbs sampled colors to give them organic texture. The same seed
// always reproduces the same perturbations at the same positions.
type Variation struct {

	// On enables variation.
	On bool

	// Strength selects the perturbation magnitude.
	Strength VariationStrengths

	// Magnitude is the perturbation magnitude used when Strength
	// is [VariationCustom].
	Magnitude float32

	// Dimensions selects which color dimensions are perturbed.
	Dimensions VariationDimensions

	// Seed is the seed of the variation stream. 0 selects [DefaultSeed].
	Seed uint64
}

// Defaults sets standard variation values.
func (vr *Variation) Defaults() {
	vr.Seed = DefaultSeed
}

// LightnessBiases are the ways the lightness of sampled colors
// can be biased.
type LightnessBiases int32 //enums:enum -trim-prefix Lightness

const (
	// LightnessNeutral leaves sample lightness unchanged.
	LightnessNeutral LightnessBiases = iota

	// LightnessLighter shifts sample lightness 20% toward white.
	LightnessLighter

	// LightnessDarker shifts sample lightness 20% toward black.
	LightnessDarker

	// LightnessCustom adjusts sample lightness by the configured
	// [Config.LightnessWeight].
	LightnessCustom
)

// ChromaBiases are the ways the chroma (saturation) of sampled
// colors can be biased.
type ChromaBiases int32 //enums:enum -trim-prefix Chroma

const (
	// ChromaNeutral leaves sample chroma unchanged.
	ChromaNeutral ChromaBiases = iota

	// ChromaMuted scales sample chroma by 0.6 for a pastel look.
	ChromaMuted

	// ChromaVivid scales sample chroma by 1.4 for a bold look.
	ChromaVivid

	// ChromaCustom scales sample chroma by the configured
	// [Config.ChromaMultiplier].
	ChromaCustom
)

// ContrastLevels are the minimum perceptual distances enforced between
// adjacent colors in discrete palettes.
type ContrastLevels int32 //enums:enum -trim-prefix Contrast

const (
	// ContrastLow enforces a minimum delta-E of 0.05.
	ContrastLow ContrastLevels = iota

	// ContrastMedium enforces a minimum delta-E of 0.1.
	ContrastMedium

	// ContrastHigh enforces a minimum delta-E of 0.15.
	ContrastHigh

	// ContrastCustom enforces the configured [Config.ContrastThreshold].
	ContrastCustom
)

// TemperatureBiases are the ways waypoint hues can be rotated warmer
// or cooler.
type TemperatureBiases int32 //enums:enum -trim-prefix Temperature

const (
	// TemperatureNeutral leaves waypoint hues unchanged.
	TemperatureNeutral TemperatureBiases = iota

	// TemperatureWarm rotates waypoint hues toward red-orange.
	TemperatureWarm

	// TemperatureCool rotates waypoint hues toward blue.
	TemperatureCool
)

// LoopModes are the ways journey positions outside [0, 1] fold back
// onto the journey.
type LoopModes int32 //enums:enum -trim-prefix Loop

const (
	// LoopOpen clamps positions to the ends of the journey.
	LoopOpen LoopModes = iota

	// LoopClosed wraps positions so the journey repeats seamlessly.
	LoopClosed

	// LoopPingPong reflects positions so the journey reverses
	// direction at each end.
	LoopPingPong
)

// VariationStrengths are the magnitudes of seeded micro-variation.
type VariationStrengths int32 //enums:enum -trim-prefix Variation

const (
	// VariationSubtle perturbs colors with a magnitude of 0.02.
	VariationSubtle VariationStrengths = iota

	// VariationNoticeable perturbs colors with a magnitude of 0.05.
	VariationNoticeable

	// VariationCustom perturbs colors with the configured
	// [Variation.Magnitude].
	VariationCustom
)

// VariationDimensions are the color dimensions that seeded
// micro-variation can perturb.
type VariationDimensions int64 //enums:bitflag -trim-prefix Variation

const (
	// VariationHue perturbs the hue angle of sampled colors.
	VariationHue VariationDimensions = iota

	// VariationLightness perturbs the lightness of sampled colors.
	VariationLightness

	// VariationChroma perturbs the chroma of sampled colors.
	VariationChroma
)
