package color

import (
	"fmt"

	"github.com/scheerer/color-models/internal/util"
)

// RGB is a color made of red, green and blue channels of type T.
//
// The channel type fixes the depth: RGB[uint8] is the common 24-bit true
// color, RGB[uint16] is 48-bit deep color. The zero value is black.
type RGB[T Channel] struct {
	r, g, b T
}

// RGB24 stores 8 bits per channel (0-255).
type RGB24 = RGB[uint8]

// RGB48 stores 16 bits per channel (0-65535).
type RGB48 = RGB[uint16]

// NewRGB creates a color from raw channel values.
func NewRGB[T Channel](r, g, b T) RGB[T] {
	return RGB[T]{r: r, g: g, b: b}
}

// FromTuple creates a color from an (r, g, b) triple.
func FromTuple[T Channel](rgb [3]T) RGB[T] {
	return NewRGB(rgb[0], rgb[1], rgb[2])
}

// FromFractions creates a color from channel fractions in [0, 1].
// Values above 1 become the channel maximum, values below 0 and NaN become 0.
func FromFractions[T Channel](r, g, b float64) RGB[T] {
	return RGB[T]{
		r: util.ToChannel[T](r),
		g: util.ToChannel[T](g),
		b: util.ToChannel[T](b),
	}
}

// FromFractionTuple is FromFractions for an (r, g, b) triple.
func FromFractionTuple[T Channel](rgb [3]float64) RGB[T] {
	return FromFractions[T](rgb[0], rgb[1], rgb[2])
}

// ChannelMax returns the largest value a channel of c can hold.
func (c RGB[T]) ChannelMax() T {
	return util.MaxOf[T]()
}

func (c RGB[T]) R() T { return c.r }
func (c RGB[T]) G() T { return c.g }
func (c RGB[T]) B() T { return c.b }

func (c *RGB[T]) SetR(r T) { c.r = r }
func (c *RGB[T]) SetG(g T) { c.g = g }
func (c *RGB[T]) SetB(b T) { c.b = b }

// Tuple returns the channels as (r, g, b).
func (c RGB[T]) Tuple() [3]T {
	return [3]T{c.r, c.g, c.b}
}

// Fractions returns the channels scaled into [0, 1].
func (c RGB[T]) Fractions() (r, g, b float64) {
	return util.Fraction(c.r), util.Fraction(c.g), util.Fraction(c.b)
}

// HSV converts c to the HSV model.
func (c RGB[T]) HSV() HSV {
	return RGBToHSV(c)
}

// Equal compares channel by channel.
func (c RGB[T]) Equal(other RGB[T]) bool {
	return c.r == other.r && c.g == other.g && c.b == other.b
}

func (c RGB[T]) IsWhite() bool {
	return c.Equal(White[T]())
}

func (c RGB[T]) IsBlack() bool {
	return c.Equal(Black[T]())
}

// RGBA implements image/color.Color. The color is always opaque.
func (c RGB[T]) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := c.Fractions()
	return uint32(util.ToChannel[uint16](fr)),
		uint32(util.ToChannel[uint16](fg)),
		uint32(util.ToChannel[uint16](fb)),
		0xffff
}

func (c RGB[T]) String() string {
	return fmt.Sprintf("(R:%d, G:%d, B:%d)", c.r, c.g, c.b)
}

func White[T Channel]() RGB[T] {
	max := util.MaxOf[T]()
	return RGB[T]{r: max, g: max, b: max}
}

func Black[T Channel]() RGB[T] {
	return RGB[T]{}
}

func Red[T Channel]() RGB[T] {
	return RGB[T]{r: util.MaxOf[T]()}
}

func Green[T Channel]() RGB[T] {
	return RGB[T]{g: util.MaxOf[T]()}
}

func Blue[T Channel]() RGB[T] {
	return RGB[T]{b: util.MaxOf[T]()}
}
