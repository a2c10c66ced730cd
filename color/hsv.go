package color

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/scheerer/color-models/internal/util"
)

const (
	HMin = 0.0
	HMax = 360.0
	SMin = 0.0
	SMax = 1.0
	VMin = 0.0
	VMax = 1.0

	// Epsilon is the per channel tolerance used by HSV.Equal.
	Epsilon = 1e-7
)

// HSV is a color described by hue, saturation and value.
//
//   - h in degrees, [0, 360)
//   - s as a fraction, [0, 1]
//   - v as a fraction, [0, 1]
//
// The zero value is black.
type HSV struct {
	h, s, v float64
}

var (
	HSVWhite = HSV{h: 0, s: 0, v: 1}
	HSVBlack = HSV{h: 0, s: 0, v: 0}
	HSVRed   = HSV{h: 0, s: 1, v: 1}
	HSVGreen = HSV{h: 120, s: 1, v: 1}
	HSVBlue  = HSV{h: 240, s: 1, v: 1}
)

// NewHSV creates a color from hue, saturation and value.
//
// The hue wraps around, so -1 becomes 359 and 361 becomes 1. Saturation and
// value are clamped into [0, 1]; this includes the infinities. NaN in any
// channel and an infinite hue are rejected.
func NewHSV(h, s, v float64) (HSV, error) {
	if math.IsNaN(h) || math.IsNaN(s) || math.IsNaN(v) {
		return HSV{}, errors.Wrapf(ErrInvalidNumericInput, "hsv (%v, %v, %v) contains NaN", h, s, v)
	}
	if math.IsInf(h, 0) {
		return HSV{}, errors.Wrapf(ErrNonFiniteHue, "hue %v", h)
	}
	return normalizeHSV(h, s, v), nil
}

// MustHSV is like NewHSV but panics on invalid input.
func MustHSV(h, s, v float64) HSV {
	c, err := NewHSV(h, s, v)
	if err != nil {
		panic(err)
	}
	return c
}

// normalizeHSV expects h to be finite and no channel to be NaN.
func normalizeHSV(h, s, v float64) HSV {
	return HSV{
		h: wrapHue(h),
		s: util.ClampRange(s, SMin, SMax),
		v: util.ClampRange(v, VMin, VMax),
	}
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, HMax)
	if h < 0 {
		h += HMax
	}
	// tiny negative inputs round up to exactly HMax
	if h >= HMax {
		h = HMin
	}
	return h
}

// HSVFromBytes maps 0-255 onto each channel's range: 255 is a hue of 360
// (which wraps to 0) and a saturation or value of 1.
func HSVFromBytes(h, s, v uint8) HSV {
	return normalizeHSV(
		util.Fraction(h)*HMax,
		util.Fraction(s)*SMax,
		util.Fraction(v)*VMax,
	)
}

func (c HSV) H() float64 { return c.h }
func (c HSV) S() float64 { return c.s }
func (c HSV) V() float64 { return c.v }

// SetH replaces the hue without wrapping it.
func (c *HSV) SetH(h float64) { c.h = h }

// SetS replaces the saturation without clamping it.
func (c *HSV) SetS(s float64) { c.s = s }

// SetV replaces the value without clamping it.
func (c *HSV) SetV(v float64) { c.v = v }

// Tuple returns the channels as (h, s, v).
func (c HSV) Tuple() [3]float64 {
	return [3]float64{c.h, c.s, c.v}
}

// Bytes maps each channel onto 0-255, truncating. It is the inverse of
// HSVFromBytes up to rounding.
func (c HSV) Bytes() [3]uint8 {
	return [3]uint8{
		uint8(c.h / HMax * math.MaxUint8),
		uint8(c.s / SMax * math.MaxUint8),
		uint8(c.v / VMax * math.MaxUint8),
	}
}

// Equal compares each channel with a tolerance of Epsilon.
func (c HSV) Equal(other HSV) bool {
	return c.ApproxEqual(other, Epsilon)
}

// ApproxEqual compares each channel with the given tolerance. NaN equals NaN
// and infinities equal infinities of the same sign.
func (c HSV) ApproxEqual(other HSV, epsilon float64) bool {
	return util.ApproxEqual(c.h, other.h, epsilon) &&
		util.ApproxEqual(c.s, other.s, epsilon) &&
		util.ApproxEqual(c.v, other.v, epsilon)
}

func (c HSV) IsWhite() bool {
	return c.Equal(HSVWhite)
}

func (c HSV) IsBlack() bool {
	return c.Equal(HSVBlack)
}

// RGB24 converts c to 8 bits per channel.
func (c HSV) RGB24() RGB24 {
	return HSVToRGB[uint8](c)
}

// RGB48 converts c to 16 bits per channel.
func (c HSV) RGB48() RGB48 {
	return HSVToRGB[uint16](c)
}

// RGBA implements image/color.Color. The color is always opaque.
func (c HSV) RGBA() (r, g, b, a uint32) {
	return c.RGB48().RGBA()
}

func (c HSV) String() string {
	return fmt.Sprintf("(H:%g, S:%g, V:%g)", c.h, c.s, c.v)
}
