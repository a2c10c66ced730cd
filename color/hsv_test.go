package color

import (
	stdcolor "image/color"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHSVRejectsNaN(t *testing.T) {
	nan := math.NaN()
	for _, tt := range [][3]float64{
		{nan, 1, 1},
		{0, nan, 1},
		{0, 1, nan},
		{math.Inf(1), nan, 0},
	} {
		_, err := NewHSV(tt[0], tt[1], tt[2])
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidNumericInput), "got %v", err)
	}
}

func TestNewHSVRejectsInfiniteHue(t *testing.T) {
	_, err := NewHSV(math.Inf(1), 0, 0)
	assert.True(t, errors.Is(err, ErrNonFiniteHue), "got %v", err)

	_, err = NewHSV(math.Inf(-1), SMin, VMin)
	assert.True(t, errors.Is(err, ErrNonFiniteHue), "got %v", err)
}

func TestNewHSVClampsInfiniteSaturationAndValue(t *testing.T) {
	c, err := NewHSV(10, math.Inf(1), math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, 10.0, c.H())
	assert.Equal(t, 1.0, c.S())
	assert.Equal(t, 1.0, c.V())

	c, err = NewHSV(HMin, math.Inf(-1), math.Inf(-1))
	require.NoError(t, err)
	assert.True(t, c.Equal(MustHSV(HMin, SMin, VMin)))
}

func TestNewHSVNormalizes(t *testing.T) {
	tests := []struct {
		name string
		in   [3]float64
		want [3]float64
	}{
		{"below range", [3]float64{HMin - 1, SMin - 1, VMin - 1}, [3]float64{HMax - 1, SMin, VMin}},
		{"above range", [3]float64{HMax + 1, SMax + 1, VMax + 1}, [3]float64{HMin + 1, SMax, VMax}},
		{"full turn", [3]float64{HMax, 0.5, 0.5}, [3]float64{0, 0.5, 0.5}},
		{"many turns", [3]float64{-725, 0.5, 0.5}, [3]float64{355, 0.5, 0.5}},
		{"tiny negative hue", [3]float64{-1e-20, 0, 0}, [3]float64{0, 0, 0}},
		{"in range", [3]float64{0.5, 0.8, 0.9}, [3]float64{0.5, 0.8, 0.9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewHSV(tt.in[0], tt.in[1], tt.in[2])
			require.NoError(t, err)
			assert.True(t, c.Equal(MustHSV(tt.want[0], tt.want[1], tt.want[2])), "got %v", c)
			assert.GreaterOrEqual(t, c.H(), HMin)
			assert.Less(t, c.H(), HMax)
		})
	}
}

func TestMustHSVPanics(t *testing.T) {
	assert.Panics(t, func() { MustHSV(math.NaN(), 0, 0) })
	assert.NotPanics(t, func() { MustHSV(1, 2, 3) })
}

func TestHSVGetterSetter(t *testing.T) {
	var c HSV
	assert.Equal(t, [3]float64{0, 0, 0}, c.Tuple())

	c.SetH(120)
	c.SetS(0.5)
	c.SetV(1)
	assert.Equal(t, 120.0, c.H())
	assert.Equal(t, 0.5, c.S())
	assert.Equal(t, 1.0, c.V())

	// setters do not normalize
	c.SetH(400)
	c.SetS(-2)
	assert.Equal(t, [3]float64{400, -2, 1}, c.Tuple())
}

func TestHSVEqual(t *testing.T) {
	a := MustHSV(200, 0.5, 0.5)
	assert.True(t, a.Equal(MustHSV(200+5e-8, 0.5, 0.5)))
	assert.False(t, a.Equal(MustHSV(200+2e-7, 0.5, 0.5)))
	assert.False(t, a.Equal(MustHSV(200, 0.51, 0.5)))
	assert.True(t, a.ApproxEqual(MustHSV(200.01, 0.51, 0.49), 0.02))

	nan := HSV{h: math.NaN(), s: 1, v: 1}
	assert.True(t, nan.Equal(HSV{h: math.NaN(), s: 1, v: 1}))
	assert.False(t, nan.Equal(HSVRed))
}

func TestHSVPresets(t *testing.T) {
	assert.True(t, HSVWhite.IsWhite())
	assert.True(t, HSVBlack.IsBlack())
	assert.False(t, HSVRed.IsWhite())
	assert.False(t, HSVRed.IsBlack())
	assert.Equal(t, [3]float64{120, 1, 1}, HSVGreen.Tuple())
	assert.Equal(t, [3]float64{240, 1, 1}, HSVBlue.Tuple())

	var zero HSV
	assert.True(t, zero.IsBlack())
}

func TestHSVFromBytes(t *testing.T) {
	assert.True(t, MustHSV(0, 0, 0).Equal(HSVFromBytes(0, 0, 0)))
	assert.True(t, MustHSV(72, 0.2, 0.2).Equal(HSVFromBytes(51, 51, 51)))
	assert.True(t, MustHSV(360, 1, 1).Equal(HSVFromBytes(255, 255, 255)))
}

func TestHSVBytes(t *testing.T) {
	assert.Equal(t, [3]uint8{0, 0, 0}, MustHSV(HMin, SMin, VMin).Bytes())
	assert.Equal(t, [3]uint8{0, 255, 255}, MustHSV(HMax, SMax, VMax).Bytes())
	assert.Equal(t, [3]uint8{127, 127, 51}, MustHSV(HMax/2, SMax/2, VMax/5).Bytes())
}

func TestHSVString(t *testing.T) {
	assert.Equal(t, "(H:240, S:1, V:1)", HSVBlue.String())
	assert.Equal(t, "(H:0, S:0, V:0.5)", MustHSV(0, 0, 0.5).String())
}

func TestHSVImplementsStdColor(t *testing.T) {
	var c stdcolor.Color = HSVGreen
	r, g, b, a := c.RGBA()
	assert.Equal(t, [4]uint32{0, 0xffff, 0, 0xffff}, [4]uint32{r, g, b, a})
}
