// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package journey

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/journey/oklab"
)

const (
	// subtleMagnitude is the perturbation magnitude of [VariationSubtle].
	subtleMagnitude = 0.02

	// noticeableMagnitude is the perturbation magnitude of
	// [VariationNoticeable].
	noticeableMagnitude = 0.05
)

// applyVariation perturbs a color using the seeded variation stream
// for position t. The stream state depends only on the seed and t,
// so the same position always gets the same perturbation.
func (jy *Journey) applyVariation(lch oklab.LCh, t float32) oklab.LCh {
	vr := &jy.config.Variation
	if !vr.On {
		return lch
	}
	state := jy.seed ^ uint64(int64(t*1000000))

	mag := float32(subtleMagnitude)
	switch vr.Strength {
	case VariationNoticeable:
		mag = noticeableMagnitude
	case VariationCustom:
		mag = vr.Magnitude
	}

	if vr.Dimensions.HasFlag(VariationHue) {
		lch.H = normHue(lch.H + (mixFloat(&state)-0.5)*mag*math32.Pi)
	}
	if vr.Dimensions.HasFlag(VariationLightness) {
		lch.L = math32.Clamp(lch.L+(mixFloat(&state)-0.5)*mag, 0, 1)
	}
	if vr.Dimensions.HasFlag(VariationChroma) {
		lch.C = math32.Clamp(lch.C+(mixFloat(&state)-0.5)*mag*0.5, 0, maxChroma)
	}
	return lch
}

// mixNext advances the variation stream and returns the next raw
// draw. It is a lightweight xoshiro-inspired mixer over a 64-bit
// state treated as two 32-bit halves. The exact arithmetic is part
// of the deterministic output contract: the same seed must yield
// the same stream everywhere, so it must not change.
func mixNext(state *uint64) uint64 {
	s0 := uint64(uint32(*state))
	s1 := *state >> 32
	result := s0 + s1

	s1 ^= s0
	s0 = ((s0 << 24) | (s0 >> 8)) ^ s1 ^ (s1 << 16)
	s1 = (s1 << 37) | (s1 >> 27)

	*state = s1<<32 | s0
	return result
}

// mixFloat returns the next draw of the variation stream in [0, 1),
// using 24 bits of precision.
func mixFloat(state *uint64) float32 {
	return float32(mixNext(state)&0xFFFFFF) / 16777216
}
