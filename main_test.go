package main

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/scheerer/color-models/color"
)

func testConfig(model string, depth int) ColorConfig {
	return ColorConfig{
		InputModel:    model,
		ColorDepth:    depth,
		LogLevel:      "info",
		LifxKelvin:    3500,
		MaxBrightness: 1,
		MinBrightness: 0,
	}
}

func TestRunHex(t *testing.T) {
	var out bytes.Buffer
	err := Run(testConfig("HEX", 8), []string{"f39"}, &out)
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "f39\n")
	assert.Contains(t, report, "rgb24  (R:255, G:51, B:153)")
	assert.Contains(t, report, "rgb48  (R:65535, G:13107, B:39321)")
	assert.Contains(t, report, "hex    ff3399")
	assert.Contains(t, report, "short  f39")
	assert.Contains(t, report, "hsv    h=330.00 s=0.8000 v=1.0000")
	assert.Contains(t, report, "kelvin=3500")
}

func TestRunHexAcceptsHashPrefix(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(testConfig("hex", 8), []string{"#00ff00"}, &out))
	assert.Contains(t, out.String(), "hsv    h=120.00 s=1.0000 v=1.0000")
}

func TestRunDeepRGB(t *testing.T) {
	var out bytes.Buffer
	err := Run(testConfig("RGB", 16), []string{"65535,0,257"}, &out)
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "rgb24  (R:255, G:0, B:1)")
	assert.Contains(t, report, "rgb48  (R:65535, G:0, B:257)")
	assert.Contains(t, report, "hex    ff0001")
}

func TestRunFraction(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(testConfig("FRACTION", 8), []string{"2, -1, 0.2"}, &out))
	assert.Contains(t, out.String(), "hex    ff0033")
}

func TestRunHSV(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(testConfig("HSV", 8), []string{"-30,1,1", "10,Inf,Inf"}, &out))

	report := out.String()
	assert.Contains(t, report, "rgb24  (R:255, G:0, B:128)")
	assert.Contains(t, report, "hsv    h=330.00 s=1.0000 v=1.0000")
	assert.Contains(t, report, "hsv    h=10.00 s=1.0000 v=1.0000")
}

func TestRunCollectsErrors(t *testing.T) {
	var out bytes.Buffer
	err := Run(testConfig("HEX", 8), []string{"zzz", "fff", "abcd"}, &out)
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.True(t, errors.Is(errs[0], color.ErrInvalidDigit), "got %v", errs[0])
	assert.True(t, errors.Is(errs[1], color.ErrInvalidFormat), "got %v", errs[1])

	// the valid value in between is still reported
	assert.Contains(t, out.String(), "hex    ffffff")
}

func TestRunRejectsNaNHue(t *testing.T) {
	var out bytes.Buffer
	err := Run(testConfig("HSV", 8), []string{"NaN,1,1", "Inf,0,0"}, &out)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.True(t, errors.Is(errs[0], color.ErrInvalidNumericInput), "got %v", errs[0])
	assert.True(t, errors.Is(errs[1], color.ErrNonFiniteHue), "got %v", errs[1])
	assert.Empty(t, out.String())
}

func TestRunInvalidConfig(t *testing.T) {
	var out bytes.Buffer

	err := Run(testConfig("CMYK", 8), []string{"fff"}, &out)
	assert.Error(t, err)

	err = Run(testConfig("HEX", 12), []string{"fff"}, &out)
	assert.True(t, errors.Is(err, color.ErrUnsupportedDepth), "got %v", err)
	assert.Empty(t, out.String())
}
