// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parity

import (
	"errors"
	"fmt"
	"math"

	"cogentcore.org/core/base/iox/jsonx"
)

// ToleranceAbs is the absolute per-channel and delta-E bounds.
// A bound at or below zero disables that check.
type ToleranceAbs struct {
	L      float64 `json:"l"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	DeltaE float64 `json:"deltaE"`
}

// ToleranceRel is the relative per-channel bounds, scaled against the
// corresponding absolute bound plus one. A bound at or below zero
// disables that check.
type ToleranceRel struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// ToleranceConfig is the comparison policy for reports.
type ToleranceConfig struct {

	// Version identifies the tolerance revision.
	Version string `json:"version"`

	// Description documents the policy.
	Description string `json:"description,omitempty"`

	// Abs are the absolute bounds.
	Abs ToleranceAbs `json:"abs"`

	// Rel are the relative bounds.
	Rel ToleranceRel `json:"rel"`

	// FailThreshold is the fraction of colors in a case that may
	// exceed the bounds before the whole case fails.
	FailThreshold float64 `json:"failThreshold"`

	// PolicyNotes documents the rationale for the bounds.
	PolicyNotes string `json:"policyNotes,omitempty"`
}

// Delta is the per-channel difference between two colors under
// comparison, in OKLab space.
type Delta struct {
	L      float64 `json:"l"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	DeltaE float64 `json:"deltaE"`
}

// OpenTolerances reads and validates a tolerance configuration from
// the given JSON file.
func OpenTolerances(filename string) (*ToleranceConfig, error) {
	tc := &ToleranceConfig{}
	if err := jsonx.Open(tc, filename); err != nil {
		return nil, err
	}
	if err := tc.Validate(); err != nil {
		return nil, err
	}
	return tc, nil
}

// Validate checks that the bounds are usable, accumulating all
// problems found.
func (tc *ToleranceConfig) Validate() error {
	var errs []error
	if tc.Version == "" {
		errs = append(errs, errors.New("tolerance version is empty"))
	}
	if tc.Abs.L < 0 || tc.Abs.A < 0 || tc.Abs.B < 0 || tc.Abs.DeltaE < 0 {
		errs = append(errs, errors.New("absolute bounds must not be negative"))
	}
	if tc.Rel.L < 0 || tc.Rel.A < 0 || tc.Rel.B < 0 {
		errs = append(errs, errors.New("relative bounds must not be negative"))
	}
	if tc.FailThreshold < 0 || tc.FailThreshold > 1 {
		errs = append(errs, fmt.Errorf("fail threshold %g is outside [0, 1]", tc.FailThreshold))
	}
	return errors.Join(errs...)
}

// Within reports whether the delta satisfies every enabled bound.
func (tc *ToleranceConfig) Within(d Delta) bool {
	al := math.Abs(d.L)
	aa := math.Abs(d.A)
	ab := math.Abs(d.B)
	ae := math.Abs(d.DeltaE)

	if tc.Abs.L > 0 && al > tc.Abs.L {
		return false
	}
	if tc.Abs.A > 0 && aa > tc.Abs.A {
		return false
	}
	if tc.Abs.B > 0 && ab > tc.Abs.B {
		return false
	}
	if tc.Abs.DeltaE > 0 && ae > tc.Abs.DeltaE {
		return false
	}

	// relative bounds scale against the absolute bound offset by one
	if tc.Rel.L > 0 && al > tc.Rel.L*math.Abs(tc.Abs.L+1) {
		return false
	}
	if tc.Rel.A > 0 && aa > tc.Rel.A*math.Abs(tc.Abs.A+1) {
		return false
	}
	if tc.Rel.B > 0 && ab > tc.Rel.B*math.Abs(tc.Abs.B+1) {
		return false
	}
	return true
}

// deltaBetween computes the channel deltas between two report colors
// in OKLab space, in double precision.
func deltaBetween(a, b ReportColor) Delta {
	dl := float64(a.Oklab.L) - float64(b.Oklab.L)
	da := float64(a.Oklab.A) - float64(b.Oklab.A)
	db := float64(a.Oklab.B) - float64(b.Oklab.B)
	return Delta{L: dl, A: da, B: db, DeltaE: math.Sqrt(dl*dl + da*da + db*db)}
}
