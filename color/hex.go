package color

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scheerer/color-models/internal/util"
)

const (
	byteMax   = 0xff
	nibbleMax = 0xf
)

// FromHex parses a 6 digit ("rrggbb") or 3 digit ("rgb") hex string,
// case-insensitive and without a leading '#'.
//
// Each pair of a 6 digit string is an 8-bit level, each digit of a 3 digit
// string a 4-bit level; both are stretched linearly onto the channel range of
// T, so "f" and "ff" both become the channel maximum.
func FromHex[T Channel](hex string) (RGB[T], error) {
	length := utf8.RuneCountInString(hex)
	if length != 6 && length != 3 {
		logger.With(zap.String("hex", hex)).Debug("Rejected hex string with invalid length")
		return RGB[T]{}, errors.Wrapf(ErrInvalidFormat, "hex %q has length %d, want 3 or 6", hex, length)
	}
	for i, r := range hex {
		if !isHexDigit(r) {
			logger.With(zap.String("hex", hex)).Debug("Rejected hex string with invalid digit")
			return RGB[T]{}, errors.Wrapf(ErrInvalidDigit, "hex %q has %q at offset %d", hex, r, i)
		}
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB[T]{}, errors.Wrapf(ErrInvalidDigit, "hex %q: %v", hex, err)
	}

	if length == 6 {
		return fromPacked[T](uint32(value), 8, byteMax), nil
	}
	return fromPacked[T](uint32(value), 4, nibbleMax), nil
}

// fromPacked splits value into three levels of bits width each (blue in the
// lowest bits) and stretches every level from [0, levelMax] onto T.
func fromPacked[T Channel](value uint32, bits uint, levelMax uint32) RGB[T] {
	factor := uint32(util.MaxOf[T]()) / levelMax

	b := T((value & levelMax) * factor)
	value >>= bits
	g := T((value & levelMax) * factor)
	value >>= bits
	r := T((value & levelMax) * factor)

	return NewRGB(r, g, b)
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// Hex returns the color as 6 lowercase hex digits, e.g. white is "ffffff".
//
// Channels wider than 8 bits are reduced to 8-bit levels first, the same way
// Downscale does.
func (c RGB[T]) Hex() string {
	divider := uint32(util.MaxOf[T]()) / byteMax
	sum := (uint32(c.r)/divider)<<16 | (uint32(c.g)/divider)<<8 | uint32(c.b)/divider
	return fmt.Sprintf("%06x", sum)
}

// HexShort returns the color as 3 lowercase hex digits, e.g. white is "fff".
//
// This is lossy: every channel is rounded to the nearest of 16 levels.
// "f0f0f0" becomes "eee".
func (c RGB[T]) HexShort() string {
	fr, fg, fb := c.Fractions()
	r := uint32(math.Round(fr * nibbleMax))
	g := uint32(math.Round(fg * nibbleMax))
	b := uint32(math.Round(fb * nibbleMax))
	return fmt.Sprintf("%03x", r<<8|g<<4|b)
}
