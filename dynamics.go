// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package journey

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/journey/oklab"
)

const (
	// vibrancyGain is the peak chroma boost from vibrancy at the
	// middle of the journey.
	vibrancyGain = 0.6

	// vibrancyWindow is the half-width of the triangular vibrancy
	// window around the middle of the journey.
	vibrancyWindow = 0.35

	// maxChroma is the chroma ceiling kept throughout; OKLCh chroma
	// beyond this is outside the sRGB gamut for most hues.
	maxChroma = 0.4
)

// applyDynamics applies the lightness, chroma, and vibrancy dynamics
// to an interpolated color. t is the raw journey position, used for
// the mid-journey vibrancy window.
func (jy *Journey) applyDynamics(lch oklab.LCh, t float32) oklab.LCh {
	cf := &jy.config

	switch cf.Lightness {
	case LightnessLighter:
		lch.L = math32.Lerp(lch.L, 1, 0.2)
	case LightnessDarker:
		lch.L = math32.Lerp(lch.L, 0, 0.2)
	case LightnessCustom:
		lch.L += cf.LightnessWeight * 0.2
	}

	switch cf.Chroma {
	case ChromaMuted:
		lch.C *= 0.6
	case ChromaVivid:
		lch.C *= 1.4
	case ChromaCustom:
		lch.C *= cf.ChromaMultiplier
	}

	// mid-journey vibrancy boost, preventing muddy midpoints
	boost := 1 + cf.Vibrancy*vibrancyGain*math32.Max(0, 1-math32.Abs(t-0.5)/vibrancyWindow)
	lch.C *= boost

	lch.L = math32.Clamp(lch.L, 0, 1)
	lch.C = math32.Clamp(lch.C, 0, maxChroma)
	return lch
}
