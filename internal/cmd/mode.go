package cmd

import (
	"log/slog"

	"github.com/allyctl/allyctl/device/ally"
	"github.com/allyctl/allyctl/internal/log"
)

// Mode switches the controller operating mode and pushes the mode's
// profile.
type Mode struct {
	Mode string `arg:"" help:"Target mode: game, wasd, mouse (or 1-3)"`
}

func (c *Mode) Run(logger *slog.Logger, rawLogger log.RawLogger, flags *DeviceFlags) error {
	m, err := ally.ParseMode(c.Mode)
	if err != nil {
		return err
	}

	d, closer, err := openDevice(flags, logger, rawLogger)
	if err != nil {
		return err
	}
	defer closer()

	if err := d.SetMode(m); err != nil {
		return err
	}
	logger.Info("mode switched", "mode", m)
	return nil
}
