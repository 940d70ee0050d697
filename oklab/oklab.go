// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklab implements the OKLab perceptually uniform color space
// and its cylindrical LCh form over linear RGB.
//
// OKLab is designed so that Euclidean distance between coordinates
// approximates perceived color difference, which makes it well suited
// to palette design, gradient interpolation, and contrast checks.
// The conversion matrices are from Björn Ottosson's reference
// derivation: https://bottosson.github.io/posts/oklab/
package oklab

import (
	"math"

	"cogentcore.org/core/math32"
)

// RGB is a color in linear (not gamma corrected) sRGB space, with each
// channel nominally in [0, 1]. Values outside that range can occur
// transiently, for example from [Lab.RGB] on out-of-gamut colors, and
// must be clamped with [RGB.Clamp] before being treated as final output.
type RGB struct {
	R, G, B float32
}

// Lab is a color in OKLab space: L is perceptual lightness in [0, 1],
// and A, B are the green-red and blue-yellow opponent axes,
// approximately in [-0.4, 0.4].
type Lab struct {
	L, A, B float32
}

// LCh is the cylindrical form of OKLab: L is lightness in [0, 1], C is
// the chroma magnitude (practically at most about 0.4), and H is the
// hue angle in radians, normalized to [0, 2π).
type LCh struct {
	L, C, H float32
}

// Lab converts linear RGB to OKLab. The pipeline is RGB → LMS cone
// response → cube root compression → opponent encoding, with the matrix
// arithmetic and cube roots in float64 (the precise cube root variant,
// which eliminates the ~1% error of the fast approximation).
func (c RGB) Lab() Lab {
	l := 0.4122214708*float64(c.R) + 0.5363325363*float64(c.G) + 0.0514459929*float64(c.B)
	m := 0.2119034982*float64(c.R) + 0.6806995451*float64(c.G) + 0.1073969566*float64(c.B)
	s := 0.0883024619*float64(c.R) + 0.2817188376*float64(c.G) + 0.6299787005*float64(c.B)

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	return Lab{
		L: float32(0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp),
		A: float32(1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp),
		B: float32(0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp),
	}
}

// RGB converts OKLab to linear RGB as the exact algebraic inverse of
// [RGB.Lab]. The result can be out of gamut (channels outside [0, 1])
// when the coordinates are not representable in sRGB, so use [RGB.Clamp]
// if a displayable color is needed.
func (c Lab) RGB() RGB {
	lp := float64(c.L) + 0.3963377774*float64(c.A) + 0.2158037573*float64(c.B)
	mp := float64(c.L) - 0.1055613458*float64(c.A) - 0.0638541728*float64(c.B)
	sp := float64(c.L) - 0.0894841775*float64(c.A) - 1.2914855480*float64(c.B)

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	return RGB{
		R: float32(4.0767416621*l - 3.3077115913*m + 0.2309699292*s),
		G: float32(-1.2684380046*l + 2.6097574011*m - 0.3413193965*s),
		B: float32(-0.0041960863*l - 0.7034186147*m + 1.7076147010*s),
	}
}

// LCh converts OKLab to its cylindrical form, with the hue angle
// normalized to [0, 2π).
func (c Lab) LCh() LCh {
	h := math32.Atan2(c.B, c.A)
	if h < 0 {
		h += 2 * math32.Pi
	}
	return LCh{L: c.L, C: math32.Sqrt(c.A*c.A + c.B*c.B), H: h}
}

// Lab converts cylindrical LCh back to Cartesian OKLab.
func (c LCh) Lab() Lab {
	return Lab{L: c.L, A: c.C * math32.Cos(c.H), B: c.C * math32.Sin(c.H)}
}

// DeltaE returns the Euclidean distance between two OKLab colors, which
// approximates the perceived difference between them. It is always
// non-negative, and zero only for identical coordinates.
func DeltaE(a, b Lab) float32 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math32.Sqrt(dl*dl + da*da + db*db)
}

// Clamp returns the color with each channel clamped to [0, 1].
// It is idempotent.
func (c RGB) Clamp() RGB {
	c.R = math32.Clamp(c.R, 0, 1)
	c.G = math32.Clamp(c.G, 0, 1)
	c.B = math32.Clamp(c.B, 0, 1)
	return c
}

// IsReadable reports whether the color's lightness is in a comfortable
// range for text and UI elements: neither very dark (L < 0.2) nor very
// light (L > 0.95).
func (c Lab) IsReadable() bool {
	return c.L >= 0.2 && c.L <= 0.95
}

// EnforceContrast returns color adjusted so that its perceptual
// distance from reference is at least minDeltaE, when achievable.
// A color already far enough away is returned unchanged; otherwise its
// lightness is moved to the far side of the reference, and if that
// still falls short its chroma is boosted by 15% (capped at 0.4).
// This is the fast single-pass utility; discrete palette generation
// uses a stronger iterative variant.
func EnforceContrast(color, reference Lab, minDeltaE float32) Lab {
	if DeltaE(color, reference) >= minDeltaE {
		return color
	}

	sign := float32(1)
	if color.L-reference.L < 0 {
		sign = -1
	}
	adjusted := color
	adjusted.L = math32.Clamp(reference.L+sign*minDeltaE*0.7, 0, 1)
	if DeltaE(adjusted, reference) >= minDeltaE {
		return adjusted
	}

	lch := adjusted.LCh()
	lch.C = math32.Clamp(lch.C*1.15, 0, 0.4)
	return lch.Lab()
}
