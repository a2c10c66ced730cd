package color

import (
	"math"

	"github.com/scheerer/color-models/internal/util"
)

// RGBToHSV converts an RGB color of any depth to HSV.
//
// Achromatic colors (all channels equal) get a hue of 0. When two channels
// share the maximum, red wins over green and green over blue.
func RGBToHSV[T Channel](c RGB[T]) HSV {
	r, g, b := c.Fractions()

	cMax := util.Max3(r, g, b)
	cMin := util.Min3(r, g, b)
	delta := cMax - cMin

	var h float64
	switch {
	case delta == 0:
		h = 0
	case r >= g && r >= b:
		h = 60 * math.Mod((g-b)/delta, 6)
	case g >= b:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if cMax > 0 {
		s = delta / cMax
	}

	return normalizeHSV(h, s, cMax)
}

// HSVToRGB converts an HSV color to RGB with channels of type T.
//
// See https://en.wikipedia.org/wiki/HSL_and_HSV#HSV_to_RGB
func HSVToRGB[T Channel](c HSV) RGB[T] {
	chroma := c.v * c.s
	h := c.h / 60
	if h >= 6 {
		// only reachable through SetH
		h = math.Mod(h, 6)
	}
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))

	r, g, b := hueSector(h, chroma, x)
	m := c.v - chroma

	return FromFractions[T](r+m, g+m, b+m)
}

// hueSector returns the pre-offset channels for h in [0, 6). Anything else,
// NaN included, yields the achromatic triple.
func hueSector(h, chroma, x float64) (r, g, b float64) {
	switch {
	case math.IsNaN(h) || h < 0:
		return 0, 0, 0
	case h < 1:
		return chroma, x, 0
	case h < 2:
		return x, chroma, 0
	case h < 3:
		return 0, chroma, x
	case h < 4:
		return 0, x, chroma
	case h < 5:
		return x, 0, chroma
	default:
		return chroma, 0, x
	}
}
