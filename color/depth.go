package color

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scheerer/color-models/internal/util"
)

// Upscale converts c to the wider channel type W by multiplying every channel
// with max(W) / max(N). This is lossless.
//
// ErrUnsupportedDepth is returned when W is narrower than N or the two
// maxima are not related by an integer factor.
func Upscale[N, W Channel](c RGB[N]) (RGB[W], error) {
	factor, err := depthFactor[N, W]()
	if err != nil {
		return RGB[W]{}, err
	}
	return RGB[W]{
		r: W(c.r) * factor,
		g: W(c.g) * factor,
		b: W(c.b) * factor,
	}, nil
}

// Downscale converts c to the narrower channel type N by integer division
// with max(W) / max(N). This is lossy: Downscale(Upscale(x)) == x, but the
// reverse only holds for multiples of the factor.
//
// ErrUnsupportedDepth is returned when N is wider than W or the two maxima
// are not related by an integer factor.
func Downscale[W, N Channel](c RGB[W]) (RGB[N], error) {
	divider, err := depthFactor[N, W]()
	if err != nil {
		return RGB[N]{}, err
	}
	return RGB[N]{
		r: N(c.r / divider),
		g: N(c.g / divider),
		b: N(c.b / divider),
	}, nil
}

// Rescale converts c to channel type To, upscaling or downscaling as needed.
func Rescale[From, To Channel](c RGB[From]) (RGB[To], error) {
	if uint64(util.MaxOf[To]()) >= uint64(util.MaxOf[From]()) {
		return Upscale[From, To](c)
	}
	return Downscale[From, To](c)
}

// depthFactor returns max(W) / max(N) as a W.
func depthFactor[N, W Channel]() (W, error) {
	narrow := uint64(util.MaxOf[N]())
	wide := uint64(util.MaxOf[W]())
	if wide < narrow || wide%narrow != 0 {
		logger.With(zap.Uint64("narrowMax", narrow), zap.Uint64("wideMax", wide)).
			Debug("Rejected depth conversion")
		return 0, errors.Wrapf(ErrUnsupportedDepth, "channel max %d is not a multiple of %d", wide, narrow)
	}
	return W(wide / narrow), nil
}

// RGB24To48 converts 8-bit channels to 16-bit channels (x * 257).
func RGB24To48(c RGB24) RGB48 {
	const factor = 0xffff / 0xff
	return NewRGB(uint16(c.r)*factor, uint16(c.g)*factor, uint16(c.b)*factor)
}

// RGB48To24 converts 16-bit channels to 8-bit channels (x / 257). Lossy.
func RGB48To24(c RGB48) RGB24 {
	const divider = 0xffff / 0xff
	return NewRGB(uint8(c.r/divider), uint8(c.g/divider), uint8(c.b/divider))
}
