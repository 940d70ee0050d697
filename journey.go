// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package journey generates designed color sequences in the OKLab
// color space. A [Journey] is compiled from a [Config] holding 1-8
// anchor colors, from which it derives designed waypoints with eased
// hue pacing and parametric chroma and lightness envelopes. It can
// then be sampled continuously with [Journey.Sample] or rendered as
// a discrete palette with [Journey.Discrete], which enforces a
// minimum perceptual distance between adjacent entries.
//
// All sampling is deterministic: the same configuration and seed
// always produce the same colors.
package journey

import (
	"errors"
	"fmt"
	"slices"

	"cogentcore.org/journey/oklab"
)

// Journey is a compiled color journey, ready for sampling.
// Use [New] to make one. Methods are safe to call on a nil
// Journey, yielding zero colors.
type Journey struct {

	// the configuration the journey was compiled from,
	// with its own copy of the anchors
	config Config

	// designed waypoints derived from the anchors
	waypoints []Waypoint

	// effective variation seed
	seed uint64
}

// New compiles the given configuration into a [Journey], converting
// its anchors to OKLCh and deriving the designed waypoints. The
// configuration must have between 1 and [MaxAnchors] anchors.
func New(cf *Config) (*Journey, error) {
	if cf == nil {
		return nil, errors.New("journey.New: config is nil")
	}
	if n := len(cf.Anchors); n < 1 || n > MaxAnchors {
		return nil, fmt.Errorf("journey.New: anchor count %d is outside [1, %d]", n, MaxAnchors)
	}
	jy := &Journey{config: *cf}
	jy.config.Anchors = slices.Clone(cf.Anchors)
	jy.seed = cf.Variation.Seed
	if jy.seed == 0 {
		jy.seed = DefaultSeed
	}
	anchors := make([]oklab.LCh, len(cf.Anchors))
	for i, a := range cf.Anchors {
		anchors[i] = a.Lab().LCh()
	}
	jy.waypoints = makeWaypoints(&jy.config, anchors)
	return jy, nil
}

// Config returns a copy of the configuration the journey was
// compiled from.
func (jy *Journey) Config() Config {
	if jy == nil {
		return Config{}
	}
	cf := jy.config
	cf.Anchors = slices.Clone(cf.Anchors)
	return cf
}

// Waypoints returns a copy of the journey's designed waypoints.
func (jy *Journey) Waypoints() []Waypoint {
	if jy == nil {
		return nil
	}
	return slices.Clone(jy.waypoints)
}
