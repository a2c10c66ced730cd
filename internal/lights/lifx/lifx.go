// Package lifx maps colors onto the 16-bit HSBK representation used by LIFX
// bulbs.
package lifx

import (
	"math"

	"github.com/pdf/golifx/common"
	"go.uber.org/zap"

	"github.com/scheerer/color-models/color"
	"github.com/scheerer/color-models/internal/logging"
	"github.com/scheerer/color-models/internal/util"
)

var logger = logging.New("lifx")

const DefaultKelvin = 3500

type Config struct {
	Kelvin        uint16
	MaxBrightness float64
	MinBrightness float64
}

// DefaultConfig leaves the brightness untouched.
func DefaultConfig() Config {
	return Config{
		Kelvin:        DefaultKelvin,
		MaxBrightness: 1,
		MinBrightness: 0,
	}
}

// NewColor converts c to a LIFX color and applies the brightness bounds of
// config.
func NewColor(c color.HSV, config Config) common.Color {
	lifxColor := common.Color{
		Hue:        util.ToChannel[uint16](c.H() / color.HMax),
		Saturation: util.ToChannel[uint16](c.S()),
		Brightness: util.ToChannel[uint16](c.V()),
		Kelvin:     config.Kelvin,
	}
	return Adjust(lifxColor, config)
}

// FromRGB converts an RGB color of any depth to a LIFX color.
func FromRGB[T color.Channel](c color.RGB[T], config Config) common.Color {
	return NewColor(color.RGBToHSV(c), config)
}

// ToHSV converts a LIFX color back to HSV. Kelvin is dropped.
func ToHSV(c common.Color) (color.HSV, error) {
	return color.NewHSV(
		util.Fraction(c.Hue)*color.HMax,
		util.Fraction(c.Saturation),
		util.Fraction(c.Brightness),
	)
}

// Adjust turns blackish colors off and keeps the brightness between
// config.MinBrightness and config.MaxBrightness.
func Adjust(c common.Color, config Config) common.Color {
	blackThreshold := 0.015 * 0xFFFF
	if c.Brightness <= uint16(blackThreshold) && c.Saturation <= uint16(blackThreshold) {
		logger.With(zap.Any("lifxColor", c)).Debug("Blackish color - turning the light off")
		return common.Color{
			Hue:        0,
			Saturation: 0,
			Brightness: 0,
			Kelvin:     c.Kelvin,
		}
	}

	c.Brightness = uint16(math.Min(config.MaxBrightness*0xFFFF, math.Max(config.MinBrightness*0xFFFF, float64(c.Brightness))))

	return c
}
