// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/journey"
	"cogentcore.org/journey/oklab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the tool with the given args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSetEnum(t *testing.T) {
	var loop journey.LoopModes
	assert.NoError(t, setEnum(&loop, "closed"))
	assert.Equal(t, journey.LoopClosed, loop)
	assert.NoError(t, setEnum(&loop, "PingPong"))
	assert.Equal(t, journey.LoopPingPong, loop)

	err := setEnum(&loop, "spiral")
	assert.ErrorContains(t, err, "is not one of")
	assert.ErrorContains(t, err, "pingpong")
}

func TestHexString(t *testing.T) {
	assert.Equal(t, "#ff0000", hexString(oklab.RGB{R: 1}))
	assert.Equal(t, "#000000", hexString(oklab.RGB{}))
	assert.Equal(t, "#ffffff", hexString(oklab.RGB{R: 1, G: 1, B: 1}))
}

func TestPalette(t *testing.T) {
	out, err := execute(t, "palette", "-a", "#4d80cc", "-n", "4")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	for _, line := range lines {
		assert.Contains(t, line, "#")
	}
}

func TestPaletteMultiAnchor(t *testing.T) {
	out, err := execute(t, "palette", "-a", "#ff0000,#0000ff", "--loop", "closed", "-n", "6")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 6)
}

func TestPaletteVariation(t *testing.T) {
	a, err := execute(t, "palette", "-a", "#4d80cc", "--seed", "42", "-n", "3")
	require.NoError(t, err)
	b, err := execute(t, "palette", "-a", "#4d80cc", "--seed", "42", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPaletteTemperature(t *testing.T) {
	warm, err := execute(t, "palette", "-a", "#4d80cc", "--temperature", "warm", "-n", "3")
	require.NoError(t, err)
	neutral, err := execute(t, "palette", "-a", "#4d80cc", "-n", "3")
	require.NoError(t, err)
	assert.NotEqual(t, warm, neutral)
}

func TestPaletteBadAnchor(t *testing.T) {
	_, err := execute(t, "palette", "-a", "nothex")
	assert.ErrorContains(t, err, "anchor")
}

func TestPaletteBadLoop(t *testing.T) {
	_, err := execute(t, "palette", "--loop", "spiral")
	assert.ErrorContains(t, err, "is not one of")
}

func TestGradientAt(t *testing.T) {
	out, err := execute(t, "gradient", "-a", "#4d80cc", "--at", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "#")
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 1)
}

func TestGradientStrip(t *testing.T) {
	out, err := execute(t, "gradient", "-a", "#ff0000,#00ff00", "-n", "10")
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(out, "█"))
}

func TestParityRunAndCompare(t *testing.T) {
	corpus := filepath.Join("..", "..", "parity", "testdata", "corpus.json")
	tolerances := filepath.Join("..", "..", "parity", "testdata", "tolerances.json")
	dir := t.TempDir()

	_, err := execute(t, "parity", "run", "--corpus", corpus, "--out", dir)
	require.NoError(t, err)
	report := filepath.Join(dir, "single-anchor-open.json")

	out, err := execute(t, "parity", "compare", report, report, "--tolerances", tolerances)
	require.NoError(t, err)
	assert.Contains(t, out, "0 outside tolerance")
}

func TestParityUnknownCase(t *testing.T) {
	corpus := filepath.Join("..", "..", "parity", "testdata", "corpus.json")
	_, err := execute(t, "parity", "run", "--corpus", corpus, "--case", "missing")
	assert.ErrorContains(t, err, "not found")
}
