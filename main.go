package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/scheerer/color-models/color"
	"github.com/scheerer/color-models/internal/lights/lifx"
	"github.com/scheerer/color-models/internal/logging"
	"github.com/scheerer/color-models/internal/util"
)

var (
	logger = logging.New("main")
	config = ColorConfig{}
)

type ColorConfig struct {
	InputModel    string  `env:"INPUT_MODEL" envDefault:"HEX"`
	ColorDepth    int     `env:"COLOR_DEPTH" envDefault:"8"`
	LogLevel      string  `env:"LOG_LEVEL" envDefault:"info"`
	LifxKelvin    int     `env:"LIFX_KELVIN" envDefault:"3500"`
	MaxBrightness float64 `env:"MAX_BRIGHTNESS" envDefault:"1"`
	MinBrightness float64 `env:"MIN_BRIGHTNESS" envDefault:"0"`
}

func (c ColorConfig) lifxConfig() lifx.Config {
	return lifx.Config{
		Kelvin:        uint16(c.LifxKelvin),
		MaxBrightness: c.MaxBrightness,
		MinBrightness: c.MinBrightness,
	}
}

func main() {
	defer logger.Sync()

	err := env.Parse(&config)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to parse environment variables")
	}

	level, err := logging.ParseLevel(config.LogLevel)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Invalid LOG_LEVEL")
	}
	logging.GetLeveler().SetAllLevels(level)

	logger.With(zap.Any("config", config)).Debug("Starting color conversion")

	if len(os.Args) < 2 {
		logger.Info("Usage: color-models VALUE [VALUE...]")
		logger.Info("Adjust INPUT_MODEL to change how values are read. Valid values are: [HEX, RGB, FRACTION, HSV]")
		logger.Info("HEX takes rrggbb or rgb. RGB takes r,g,b integers. FRACTION takes r,g,b in [0,1]. HSV takes h,s,v.")
		logger.Info("Adjust COLOR_DEPTH to 8 or 16 to choose the channel width.")
		logger.Info("Adjust LIFX_KELVIN, MIN_BRIGHTNESS and MAX_BRIGHTNESS to tune the LIFX output.")
		os.Exit(2)
	}

	if err := Run(config, os.Args[1:], os.Stdout); err != nil {
		for _, e := range multierr.Errors(err) {
			logger.With(zap.Error(e)).Error("Failed to convert value")
		}
		os.Exit(1)
	}
}

// Run converts every arg according to config and writes a report per value
// to w. Values that fail to parse are skipped; their errors are combined in
// the returned error.
func Run(config ColorConfig, args []string, w io.Writer) error {
	model := strings.ToUpper(config.InputModel)
	switch model {
	case "HEX", "RGB", "FRACTION", "HSV":
	default:
		return fmt.Errorf("unknown input model: %v", config.InputModel)
	}

	var errs error
	for _, arg := range args {
		var err error
		switch config.ColorDepth {
		case 8:
			err = convert(w, model, arg, util.ParseTriple[uint8], config)
		case 16:
			err = convert(w, model, arg, util.ParseTriple[uint16], config)
		default:
			return fmt.Errorf("%w: COLOR_DEPTH %d, want 8 or 16", color.ErrUnsupportedDepth, config.ColorDepth)
		}
		if err != nil {
			logger.With(zap.String("value", arg), zap.Error(err)).Debug("Skipping value")
			errs = multierr.Append(errs, fmt.Errorf("%q: %w", arg, err))
		}
	}
	return errs
}

func convert[T color.Channel](w io.Writer, model, arg string, parseInts func(string) ([3]T, error), config ColorConfig) error {
	c, hsv, err := parseInput(model, arg, parseInts)
	if err != nil {
		return err
	}
	return report(w, arg, c, hsv, config)
}

func parseInput[T color.Channel](model, arg string, parseInts func(string) ([3]T, error)) (color.RGB[T], color.HSV, error) {
	var c color.RGB[T]
	switch model {
	case "HEX":
		var err error
		c, err = color.FromHex[T](strings.TrimPrefix(arg, "#"))
		if err != nil {
			return c, color.HSV{}, err
		}
	case "RGB":
		t, err := parseInts(arg)
		if err != nil {
			return c, color.HSV{}, err
		}
		c = color.FromTuple(t)
	case "FRACTION":
		t, err := util.ParseTriple[float64](arg)
		if err != nil {
			return c, color.HSV{}, err
		}
		c = color.FromFractionTuple[T](t)
	case "HSV":
		t, err := util.ParseTriple[float64](arg)
		if err != nil {
			return c, color.HSV{}, err
		}
		hsv, err := color.NewHSV(t[0], t[1], t[2])
		if err != nil {
			return c, color.HSV{}, err
		}
		return color.HSVToRGB[T](hsv), hsv, nil
	}
	return c, c.HSV(), nil
}

func report[T color.Channel](w io.Writer, arg string, c color.RGB[T], hsv color.HSV, config ColorConfig) error {
	rgb24, err := color.Rescale[T, uint8](c)
	if err != nil {
		return err
	}
	rgb48, err := color.Rescale[T, uint16](c)
	if err != nil {
		return err
	}
	l := lifx.NewColor(hsv, config.lifxConfig())

	_, err = fmt.Fprintf(w, "%s\n"+
		"  rgb24  %s\n"+
		"  rgb48  %s\n"+
		"  hex    %s\n"+
		"  short  %s\n"+
		"  hsv    h=%.2f s=%.4f v=%.4f\n"+
		"  lifx   hue=%d saturation=%d brightness=%d kelvin=%d\n",
		arg, rgb24, rgb48, c.Hex(), c.HexShort(),
		hsv.H(), hsv.S(), hsv.V(),
		l.Hue, l.Saturation, l.Brightness, l.Kelvin)
	return err
}
