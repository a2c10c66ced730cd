// Package color implements RGB colors of configurable channel depth, HSV
// colors, the conversions between them and a hexadecimal text encoding.
//
// All values are small immutable structs; they can be copied and converted
// from any number of goroutines without synchronisation.
package color

import (
	stdcolor "image/color"

	"github.com/scheerer/color-models/internal/logging"
	"github.com/scheerer/color-models/internal/util"
)

var logger = logging.New("color")

// Channel is the set of unsigned integer types a color channel can be stored in.
type Channel = util.Unsigned

// Color is implemented by every color model in this package.
type Color interface {
	stdcolor.Color

	// IsWhite reports whether the color is absolute white.
	IsWhite() bool
	// IsBlack reports whether the color is absolute black.
	IsBlack() bool
}

var (
	_ Color = RGB24{}
	_ Color = RGB48{}
	_ Color = HSV{}
)
