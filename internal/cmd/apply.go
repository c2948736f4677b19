package cmd

import (
	"log/slog"

	"github.com/allyctl/allyctl/internal/log"
)

// Apply pushes the full stored profile to the controller.
type Apply struct{}

func (c *Apply) Run(logger *slog.Logger, rawLogger log.RawLogger, flags *DeviceFlags) error {
	d, closer, err := openDevice(flags, logger, rawLogger)
	if err != nil {
		return err
	}
	defer closer()

	n, err := d.Apply()
	if err != nil {
		return err
	}
	logger.Info("profile applied", "mode", d.Mode(), "packets", n)
	return nil
}
