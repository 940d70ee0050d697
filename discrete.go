// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package journey

import (
	"math"

	"cogentcore.org/core/math32"
	"cogentcore.org/journey/oklab"
)

const (
	// DiscreteSpacing is the fixed journey spacing between successive
	// indices in [Journey.DiscreteAt] and [Journey.DiscreteRange],
	// giving 20 positions per journey cycle.
	DiscreteSpacing = 0.05

	// pulseThreshold is the palette size above which [Journey.Discrete]
	// applies the periodic chroma pulse.
	pulseThreshold = 20
)

// Discrete returns a palette of count colors spaced evenly along the
// journey, each at least the configured minimum delta-E away from the
// one before it. Spacing is loop-aware: a closed journey divides the
// cycle by count so the wraparound point is not repeated, an open
// journey spans [0, 1] inclusive, and a ping-pong journey mirrors
// positions through the middle of the palette. Palettes larger than
// 20 colors get a periodic chroma pulse that gives the saturation a
// gentle rhythm. Returns nil for a nil journey or count < 1.
func (jy *Journey) Discrete(count int) []oklab.RGB {
	if jy == nil || count <= 0 {
		return nil
	}
	minDE := jy.minDeltaE()
	out := make([]oklab.RGB, count)
	for i := range out {
		color := jy.Sample(jy.discreteLoopPosition(i, count))
		if i > 0 {
			color = applyMinimumContrast(color, &out[i-1], minDE)
		}
		out[i] = color
	}
	if count > pulseThreshold {
		pulseChroma(out)
	}
	return out
}

// DiscreteAt returns the discrete palette color at the given index,
// using the fixed [DiscreteSpacing] between indices. The contrast
// chain is replayed from index 0, so the result is always identical
// to the corresponding entry of [Journey.DiscreteRange] starting at
// 0. A nil journey or negative index yields black.
func (jy *Journey) DiscreteAt(index int) oklab.RGB {
	if jy == nil || index < 0 {
		return oklab.RGB{}
	}
	minDE := jy.minDeltaE()
	var previous *oklab.RGB
	var prev oklab.RGB
	for i := 0; i < index; i++ {
		prev = jy.discreteIndexColor(i, previous, minDE)
		previous = &prev
	}
	return jy.discreteIndexColor(index, previous, minDE)
}

// DiscreteRange returns count discrete palette colors starting at the
// given index, consistent with [Journey.DiscreteAt]: the contrast
// chain is replayed from index 0, so any range matches the equivalent
// sequence of single-index lookups. Returns nil for a nil journey,
// negative start, or count < 1.
func (jy *Journey) DiscreteRange(start, count int) []oklab.RGB {
	if jy == nil || start < 0 || count <= 0 {
		return nil
	}
	minDE := jy.minDeltaE()
	var previous *oklab.RGB
	var prev oklab.RGB
	for i := 0; i < start; i++ {
		prev = jy.discreteIndexColor(i, previous, minDE)
		previous = &prev
	}
	out := make([]oklab.RGB, count)
	for i := range out {
		out[i] = jy.discreteIndexColor(start+i, previous, minDE)
		prev = out[i]
		previous = &prev
	}
	return out
}

// discreteIndexColor samples the fixed-spacing position of index and
// enforces contrast against the previous chain color.
func (jy *Journey) discreteIndexColor(index int, previous *oklab.RGB, minDE float32) oklab.RGB {
	return applyMinimumContrast(jy.Sample(discretePosition(index)), previous, minDE)
}

// discretePosition returns the fixed-spacing journey position of a
// discrete index, wrapping around each full cycle.
func discretePosition(index int) float32 {
	if index < 0 {
		return 0
	}
	return math32.Mod(float32(index)*DiscreteSpacing, 1)
}

// discreteLoopPosition returns the journey position of index in a
// palette of the given size, spaced according to the loop mode.
func (jy *Journey) discreteLoopPosition(index, count int) float32 {
	if index < 0 || count <= 0 {
		return 0
	}
	switch jy.config.Loop {
	case LoopClosed:
		return float32(index) / float32(count)
	case LoopPingPong:
		t := float32(0.5)
		if count > 1 {
			t = float32(index) / float32(count-1)
		}
		t *= 2
		if t > 1 {
			t = 2 - t
		}
		return t
	}
	if count > 1 {
		return float32(index) / float32(count-1)
	}
	return 0.5
}

// pulseChroma applies a periodic chroma modulation across the
// palette: a gentle cosine wave with a period of 10 entries that
// helps the eye separate adjacent colors in large palettes.
func pulseChroma(colors []oklab.RGB) {
	for i, c := range colors {
		lch := c.Lab().LCh()
		pulse := 1 + 0.1*math.Cos(float64(i)*math.Pi/5)
		lch.C = math32.Clamp(float32(float64(lch.C)*pulse), 0, maxChroma)
		colors[i] = lch.Lab().RGB().Clamp()
	}
}
