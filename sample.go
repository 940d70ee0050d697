// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package journey

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/journey/oklab"
)

// Sample returns the color of the journey at position t, as linear
// sRGB clamped to [0, 1]. Positions outside [0, 1] are folded back
// onto the journey according to the configured [LoopModes].
func (jy *Journey) Sample(t float32) oklab.RGB {
	if jy == nil {
		return oklab.RGB{}
	}
	lch := jy.interpolate(t)
	lch = jy.applyDynamics(lch, t)
	lch = jy.applyVariation(lch, t)
	return lch.Lab().RGB().Clamp()
}

// interpolate evaluates the waypoint path at position t, folding t
// per the loop mode and clamping to [0, 1]. Interpolation runs in
// OKLCh with smoothstep easing within each segment, and hue always
// takes the shortest way around the wheel.
func (jy *Journey) interpolate(t float32) oklab.LCh {
	wps := jy.waypoints
	if len(wps) == 0 {
		return oklab.LCh{L: 0.5, C: 0.1}
	}
	switch jy.config.Loop {
	case LoopClosed:
		t = math32.Mod(t, 1)
		if t < 0 {
			t++
		}
	case LoopPingPong:
		t = math32.Mod(t, 2)
		if t < 0 {
			t += 2
		}
		if t > 1 {
			t = 2 - t
		}
	}
	t = math32.Clamp(t, 0, 1)
	if len(wps) == 1 {
		return wps[0].Anchor
	}

	segSize := 1 / float32(len(wps)-1)
	seg := int(t / segSize)
	if seg >= len(wps)-1 {
		seg = len(wps) - 2
	}
	lt := smoothstep((t - float32(seg)*segSize) / segSize)

	a, b := wps[seg].Anchor, wps[seg+1].Anchor
	res := oklab.LCh{
		L: math32.Lerp(a.L, b.L, lt),
		C: math32.Lerp(a.C, b.C, lt),
	}
	diff := b.H - a.H
	if diff > math32.Pi {
		diff -= 2 * math32.Pi
	}
	if diff < -math32.Pi {
		diff += 2 * math32.Pi
	}
	res.H = normHue(a.H + diff*lt)
	return res
}

// smoothstep is the cubic smoothstep easing of t in [0, 1].
func smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}

// normHue wraps a hue angle to [0, 2π).
func normHue(h float32) float32 {
	for h < 0 {
		h += 2 * math32.Pi
	}
	for h >= 2*math32.Pi {
		h -= 2 * math32.Pi
	}
	return h
}
