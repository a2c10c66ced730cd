package color

import "github.com/pkg/errors"

var (
	// ErrInvalidFormat is returned for hex strings that are not 3 or 6 digits long.
	ErrInvalidFormat = errors.New("invalid hex format")
	// ErrInvalidDigit is returned for hex strings containing a non-hex character.
	ErrInvalidDigit = errors.New("invalid hex digit")
	// ErrInvalidNumericInput is returned when an HSV channel is NaN.
	ErrInvalidNumericInput = errors.New("invalid numeric input")
	// ErrNonFiniteHue is returned when the hue is infinite.
	ErrNonFiniteHue = errors.New("hue must be finite")
	// ErrUnsupportedDepth is returned when two channel widths are not related
	// by an integer scale factor in the requested direction.
	ErrUnsupportedDepth = errors.New("unsupported depth conversion")
)
