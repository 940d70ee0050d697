// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package journey

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/journey/oklab"
	"github.com/stretchr/testify/assert"
)

func newJourney(t *testing.T, cf *Config) *Journey {
	t.Helper()
	jy, err := New(cf)
	if err != nil {
		t.Fatal(err)
	}
	return jy
}

func assertInGamut(t *testing.T, c oklab.RGB) {
	t.Helper()
	assert.GreaterOrEqual(t, c.R, float32(0))
	assert.LessOrEqual(t, c.R, float32(1))
	assert.GreaterOrEqual(t, c.G, float32(0))
	assert.LessOrEqual(t, c.G, float32(1))
	assert.GreaterOrEqual(t, c.B, float32(0))
	assert.LessOrEqual(t, c.B, float32(1))
}

func TestDefaults(t *testing.T) {
	cf := &Config{}
	cf.Defaults()
	assert.Equal(t, LightnessNeutral, cf.Lightness)
	assert.Equal(t, ChromaNeutral, cf.Chroma)
	assert.Equal(t, ContrastMedium, cf.Contrast)
	assert.Equal(t, TemperatureNeutral, cf.Temperature)
	assert.Equal(t, LoopOpen, cf.Loop)
	assert.Equal(t, float32(0.3), cf.Vibrancy)
	assert.False(t, cf.Variation.On)
	assert.Equal(t, DefaultSeed, cf.Variation.Seed)
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	cf := &Config{}
	cf.Defaults()
	_, err = New(cf)
	assert.Error(t, err)

	cf.Anchors = make([]oklab.RGB, MaxAnchors+1)
	_, err = New(cf)
	assert.Error(t, err)

	cf.Anchors = []oklab.RGB{{R: 0.3, G: 0.5, B: 0.8}}
	jy, err := New(cf)
	assert.NoError(t, err)
	assert.NotNil(t, jy)
}

func TestValidate(t *testing.T) {
	cf := &Config{Anchors: []oklab.RGB{{R: 0.3, G: 0.5, B: 0.8}}}
	cf.Defaults()
	assert.NoError(t, cf.Validate())

	cf.Vibrancy = 1.5
	assert.Error(t, cf.Validate())
	cf.Vibrancy = 0.3

	cf.Lightness = LightnessCustom
	cf.LightnessWeight = 2
	assert.Error(t, cf.Validate())
	cf.LightnessWeight = 0.5
	assert.NoError(t, cf.Validate())

	cf.Contrast = ContrastCustom
	cf.ContrastThreshold = -0.1
	assert.Error(t, cf.Validate())
}

func TestNilJourney(t *testing.T) {
	var jy *Journey
	assert.Equal(t, oklab.RGB{}, jy.Sample(0.5))
	assert.Nil(t, jy.Discrete(5))
	assert.Equal(t, oklab.RGB{}, jy.DiscreteAt(3))
	assert.Nil(t, jy.DiscreteRange(0, 3))
	assert.Nil(t, jy.Waypoints())
	assert.Equal(t, Config{}, jy.Config())
}

func TestSampleGamut(t *testing.T) {
	cf := &Config{Anchors: []oklab.RGB{{R: 0.3, G: 0.5, B: 0.8}}}
	cf.Defaults()
	jy := newJourney(t, cf)

	for _, tv := range []float32{0, 0.25, 0.5, 0.75, 1} {
		assertInGamut(t, jy.Sample(tv))
	}
	// a single anchor expands into a hue wheel, so the middle of the
	// journey is far from the anchor color
	assert.NotEqual(t, jy.Sample(0), jy.Sample(0.5))
}

func TestDeterminism(t *testing.T) {
	cf := &Config{Anchors: []oklab.RGB{{R: 0.7, G: 0.4, B: 0.2}}}
	cf.Defaults()
	cf.Variation.On = true
	cf.Variation.Seed = 42
	cf.Variation.Strength = VariationSubtle
	cf.Variation.Dimensions.SetFlag(true, VariationHue, VariationLightness, VariationChroma)

	a := newJourney(t, cf)
	b := newJourney(t, cf)

	for _, tv := range []float32{0, 0.1, 0.33, 0.5, 0.77, 1} {
		assert.Equal(t, a.Sample(tv), b.Sample(tv))
	}
	assert.Equal(t, a.Discrete(3), b.Discrete(3))
	assert.Equal(t, a.Discrete(3), a.Discrete(3))
}

func TestLoopClosed(t *testing.T) {
	cf := &Config{Anchors: []oklab.RGB{{R: 0.3, G: 0.5, B: 0.8}, {R: 0.8, G: 0.3, B: 0.4}}}
	cf.Defaults()
	cf.Loop = LoopClosed
	jy := newJourney(t, cf)

	a, b := jy.Sample(0), jy.Sample(1)
	tolassert.EqualTol(t, a.R, b.R, 1e-3)
	tolassert.EqualTol(t, a.G, b.G, 1e-3)
	tolassert.EqualTol(t, a.B, b.B, 1e-3)
}

func TestLoopPingPong(t *testing.T) {
	cf := &Config{Anchors: []oklab.RGB{{R: 0.3, G: 0.5, B: 0.8}, {R: 0.8, G: 0.3, B: 0.4}}}
	cf.Defaults()
	cf.Loop = LoopPingPong
	cf.Vibrancy = 0 // the vibrancy window tracks the raw position, not the folded one
	jy := newJourney(t, cf)

	for _, tv := range []float32{1.2, 1.5, 1.8, 2} {
		a, b := jy.Sample(tv), jy.Sample(2-tv)
		tolassert.EqualTol(t, a.R, b.R, 1e-3)
		tolassert.EqualTol(t, a.G, b.G, 1e-3)
		tolassert.EqualTol(t, a.B, b.B, 1e-3)
	}
}

func TestLoopOpen(t *testing.T) {
	cf := &Config{Anchors: []oklab.RGB{{R: 0.3, G: 0.5, B: 0.8}, {R: 0.8, G: 0.3, B: 0.4}}}
	cf.Defaults()
	cf.Vibrancy = 0
	jy := newJourney(t, cf)

	assert.Equal(t, jy.Sample(0), jy.Sample(-0.5))
	assert.Equal(t, jy.Sample(1), jy.Sample(1.7))
}

func TestHueShortestPath(t *testing.T) {
	jy := &Journey{waypoints: []Waypoint{
		{Anchor: oklab.LCh{L: 0.6, C: 0.2, H: 6.2}, Weight: 1},
		{Anchor: oklab.LCh{L: 0.6, C: 0.2, H: 0.2}, Weight: 1},
	}}
	total := float32(0)
	prev := jy.interpolate(0).H
	for i := 1; i <= 10; i++ {
		h := jy.interpolate(float32(i) / 10).H
		d := math32.Abs(h - prev)
		if d > math32.Pi {
			d = 2*math32.Pi - d
		}
		total += d
		prev = h
	}
	// crossing from 6.2 to 0.2 rad goes the short way around the wheel
	assert.Less(t, total, float32(0.4))
}

func TestLightnessBias(t *testing.T) {
	cf := &Config{Anchors: []oklab.RGB{{R: 0.4, G: 0.5, B: 0.6}}}
	cf.Defaults()
	neutral := newJourney(t, cf)

	cf.Lightness = LightnessLighter
	lighter := newJourney(t, cf)
	cf.Lightness = LightnessDarker
	darker := newJourney(t, cf)
	cf.Lightness = LightnessCustom
	cf.LightnessWeight = 1
	custom := newJourney(t, cf)

	for _, tv := range []float32{0.2, 0.5, 0.8} {
		n := neutral.Sample(tv).Lab()
		assert.Greater(t, lighter.Sample(tv).Lab().L, n.L)
		assert.Less(t, darker.Sample(tv).Lab().L, n.L)
		assert.Greater(t, custom.Sample(tv).Lab().L, n.L)
	}
}

func TestChromaBias(t *testing.T) {
	cf := &Config{Anchors: []oklab.RGB{{R: 0.4, G: 0.5, B: 0.7}}}
	cf.Defaults()
	neutral := newJourney(t, cf)

	cf.Chroma = ChromaMuted
	muted := newJourney(t, cf)
	cf.Chroma = ChromaVivid
	vivid := newJourney(t, cf)

	for _, tv := range []float32{0.2, 0.5, 0.8} {
		n := neutral.Sample(tv).Lab().LCh()
		assert.Less(t, muted.Sample(tv).Lab().LCh().C, n.C)
		assert.Greater(t, vivid.Sample(tv).Lab().LCh().C, n.C)
	}
}

func TestTemperatureBias(t *testing.T) {
	cf := &Config{Anchors: []oklab.RGB{{R: 0.3, G: 0.5, B: 0.8}, {R: 0.7, G: 0.4, B: 0.2}}}
	cf.Defaults()
	neutral := newJourney(t, cf)

	cf.Temperature = TemperatureWarm
	warm := newJourney(t, cf)
	cf.Temperature = TemperatureCool
	cool := newJourney(t, cf)

	nw, ww, cw := neutral.Waypoints(), warm.Waypoints(), cool.Waypoints()
	for i := range nw {
		tolassert.EqualTol(t, normHue(nw[i].Anchor.H+temperatureShift), ww[i].Anchor.H, 1e-6)
		tolassert.EqualTol(t, normHue(nw[i].Anchor.H-temperatureShift), cw[i].Anchor.H, 1e-6)
	}
}

func TestWaypoints(t *testing.T) {
	cf := &Config{Anchors: []oklab.RGB{{R: 0.3, G: 0.5, B: 0.8}}}
	cf.Defaults()
	jy := newJourney(t, cf)

	wps := jy.Waypoints()
	assert.Len(t, wps, wheelWaypoints)
	base := oklab.RGB{R: 0.3, G: 0.5, B: 0.8}.Lab().LCh()
	assert.Equal(t, base, wps[0].Anchor)
	for i, wp := range wps {
		assert.Equal(t, float32(1), wp.Weight)
		if i > 0 {
			assert.Greater(t, wp.Anchor.H, wps[i-1].Anchor.H)
		}
	}
	// the wheel spans a full hue cycle
	tolassert.EqualTol(t, base.H+2*math32.Pi, wps[len(wps)-1].Anchor.H, 1e-5)

	cf.Anchors = []oklab.RGB{{R: 0.3, G: 0.5, B: 0.8}, {R: 0.7, G: 0.4, B: 0.2}, {R: 0.2, G: 0.7, B: 0.3}}
	jy = newJourney(t, cf)
	assert.Len(t, jy.Waypoints(), 3)
}

func TestVariation(t *testing.T) {
	cf := &Config{Anchors: []oklab.RGB{{R: 0.5, G: 0.3, B: 0.6}}}
	cf.Defaults()
	plain := newJourney(t, cf)

	cf.Variation.On = true
	cf.Variation.Strength = VariationNoticeable
	cf.Variation.Dimensions.SetFlag(true, VariationHue, VariationLightness, VariationChroma)
	varied := newJourney(t, cf)

	maxDelta := float32(0)
	for i := 0; i <= 50; i++ {
		tv := float32(i) / 50
		c := varied.Sample(tv)
		assertInGamut(t, c)
		maxDelta = math32.Max(maxDelta, oklab.DeltaE(plain.Sample(tv).Lab(), c.Lab()))
	}
	assert.Greater(t, maxDelta, float32(0))
	assert.Less(t, maxDelta, float32(0.2))
}

func TestVariationDimensions(t *testing.T) {
	cf := &Config{Anchors: []oklab.RGB{{R: 0.5, G: 0.3, B: 0.6}}}
	cf.Defaults()
	plain := newJourney(t, cf)

	cf.Variation.On = true
	cf.Variation.Strength = VariationNoticeable
	cf.Variation.Dimensions.SetFlag(true, VariationLightness)
	varied := newJourney(t, cf)

	moved := float32(0)
	for _, tv := range []float32{0.1, 0.3, 0.5, 0.7, 0.9} {
		p := plain.Sample(tv).Lab().LCh()
		v := varied.Sample(tv).Lab().LCh()
		tolassert.EqualTol(t, p.H, v.H, 1e-4)
		tolassert.EqualTol(t, p.C, v.C, 1e-4)
		moved += math32.Abs(v.L - p.L)
	}
	assert.Greater(t, moved, float32(0))
}

func TestVariationZeroSeed(t *testing.T) {
	cf := &Config{Anchors: []oklab.RGB{{R: 0.5, G: 0.3, B: 0.6}}}
	cf.Defaults()
	cf.Variation.On = true
	cf.Variation.Dimensions.SetFlag(true, VariationHue)

	cf.Variation.Seed = 0
	zero := newJourney(t, cf)
	cf.Variation.Seed = DefaultSeed
	dflt := newJourney(t, cf)

	for _, tv := range []float32{0.1, 0.5, 0.9} {
		assert.Equal(t, dflt.Sample(tv), zero.Sample(tv))
	}
}

func TestMixDeterminism(t *testing.T) {
	a := uint64(0x123456789ABCDEF0)
	b := a
	for i := 0; i < 100; i++ {
		assert.Equal(t, mixNext(&a), mixNext(&b))
		assert.Equal(t, a, b)
	}
	f := mixFloat(&a)
	assert.GreaterOrEqual(t, f, float32(0))
	assert.Less(t, f, float32(1))
}

func BenchmarkSample(b *testing.B) {
	cf := &Config{Anchors: []oklab.RGB{{R: 0.3, G: 0.5, B: 0.8}, {R: 0.7, G: 0.4, B: 0.2}}}
	cf.Defaults()
	cf.Variation.On = true
	cf.Variation.Dimensions.SetFlag(true, VariationHue, VariationLightness, VariationChroma)
	jy, err := New(cf)
	if err != nil {
		b.Fatal(err)
	}
	var c oklab.RGB
	for i := 0; i < b.N; i++ {
		c = jy.Sample(float32(i%1000) / 1000)
	}
	_ = c
}
