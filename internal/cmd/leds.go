package cmd

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/allyctl/allyctl/device/ally"
	"github.com/allyctl/allyctl/internal/log"
)

// Leds sets the controller LED color and brightness.
type Leds struct {
	Color      string `help:"Static color for all zones as RRGGBB hex" placeholder:"RRGGBB"`
	Brightness int    `default:"-1" help:"Brightness level 0-3"`
}

func (c *Leds) Run(logger *slog.Logger, rawLogger log.RawLogger, flags *DeviceFlags) error {
	if c.Color == "" && c.Brightness < 0 {
		return errors.New("nothing to do, pass --color and/or --brightness")
	}

	d, closer, err := openDevice(flags, logger, rawLogger)
	if err != nil {
		return err
	}
	defer closer()

	if c.Color != "" {
		rgb, err := strconv.ParseUint(c.Color, 16, 32)
		if err != nil || rgb > 0xffffff {
			return errors.New("color must be a RRGGBB hex value")
		}
		d.SetRGB(byte(rgb>>16), byte(rgb>>8), byte(rgb))
	}
	if c.Brightness >= 0 {
		if c.Brightness > int(ally.MaxBrightness) {
			return ally.Validationf("set brightness", "level %d out of range 0-%d", c.Brightness, ally.MaxBrightness)
		}
		if err := d.SetBrightness(byte(c.Brightness)); err != nil {
			return err
		}
	}

	d.FlushLEDs()
	logger.Info("leds updated", "color", c.Color, "brightness", c.Brightness)
	return nil
}
