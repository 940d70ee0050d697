// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package journey

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/journey/oklab"
)

// contrastIterations bounds the iterative contrast refinement.
const contrastIterations = 5

// minDeltaE returns the minimum perceptual distance enforced between
// adjacent discrete palette entries for the configured contrast level.
func (jy *Journey) minDeltaE() float32 {
	switch jy.config.Contrast {
	case ContrastLow:
		return 0.05
	case ContrastHigh:
		return 0.15
	case ContrastCustom:
		return jy.config.ContrastThreshold
	}
	return 0.1
}

// applyMinimumContrast adjusts color until it is at least minDeltaE
// away from previous, refining iteratively: first a lightness nudge
// away from the previous color, then a growing hue rotation with a
// chroma boost, up to contrastIterations rounds. Small nudges per
// round keep the adjusted color close to its intended position.
func applyMinimumContrast(color oklab.RGB, previous *oklab.RGB, minDeltaE float32) oklab.RGB {
	if previous == nil {
		return color
	}
	prev := previous.Lab()
	curr := color.Lab()
	for iter := 0; iter < contrastIterations; iter++ {
		dE := oklab.DeltaE(curr, prev)
		if dE >= minDeltaE {
			break
		}
		shortfall := minDeltaE - dE

		// nudge lightness away from the previous color
		direction := float32(1)
		if prev.L >= 0.5 {
			direction = -1
		}
		curr.L = math32.Clamp(curr.L+direction*shortfall*0.5, 0, 1)

		dE = oklab.DeltaE(curr, prev)
		if dE >= minDeltaE {
			break
		}
		shortfall = minDeltaE - dE

		// rotate hue further each round and boost chroma
		lch := curr.LCh()
		lch.H += 0.2 * float32(iter)
		for lch.H >= 2*math32.Pi {
			lch.H -= 2 * math32.Pi
		}
		if lch.C > 1e-5 {
			lch.C = math32.Min(lch.C*(1+shortfall*0.5), maxChroma)
		}
		curr = lch.Lab()
	}
	return curr.RGB().Clamp()
}
