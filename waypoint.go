// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package journey

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/journey/oklab"
)

// Waypoint is one designed stop along a journey path.
type Waypoint struct {

	// Anchor is the waypoint color in OKLCh.
	Anchor oklab.LCh

	// Weight is the relative influence of the waypoint.
	Weight float32
}

const (
	// wheelWaypoints is the number of waypoints derived from a
	// single anchor.
	wheelWaypoints = 8

	// temperatureShift is the hue rotation in radians applied by
	// the warm and cool temperature biases.
	temperatureShift = 0.3
)

// makeWaypoints derives the designed waypoints from the given anchors
// in OKLCh. A single anchor expands into a full hue wheel with eased
// (non-uniform) hue pacing, a chroma envelope peaking mid-journey,
// and a gentle lightness wave. Multiple anchors are used directly.
// The temperature bias rotates all resulting hues.
func makeWaypoints(cf *Config, anchors []oklab.LCh) []Waypoint {
	var wps []Waypoint
	if len(anchors) == 1 {
		base := anchors[0]
		wps = make([]Waypoint, wheelWaypoints)
		for i := range wps {
			t := float32(i) / float32(wheelWaypoints-1)
			wps[i].Anchor.H = base.H + smoothstep(t)*2*math32.Pi
			wps[i].Anchor.C = base.C * (1 + 0.2*math32.Sin(t*math32.Pi))
			wps[i].Anchor.L = base.L * (1 + 0.1*math32.Sin(t*2*math32.Pi))
			wps[i].Weight = 1
		}
	} else {
		wps = make([]Waypoint, len(anchors))
		for i, a := range anchors {
			wps[i] = Waypoint{Anchor: a, Weight: 1}
		}
	}
	if cf.Temperature != TemperatureNeutral {
		shift := float32(temperatureShift)
		if cf.Temperature == TemperatureCool {
			shift = -shift
		}
		for i := range wps {
			wps[i].Anchor.H = normHue(wps[i].Anchor.H + shift)
		}
	}
	return wps
}
