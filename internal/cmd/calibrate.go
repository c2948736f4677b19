package cmd

import (
	"log/slog"

	"github.com/allyctl/allyctl/device/ally"
	"github.com/allyctl/allyctl/internal/log"
)

// Calibrate writes axis calibration values to the controller.
type Calibrate struct {
	Axis   string  `arg:"" help:"Axis to calibrate: js_left, js_right, tr_left, tr_right"`
	Values []int16 `arg:"" help:"Stick: x-stable x-min x-max y-stable y-min y-max. Trigger: stable max"`
}

func (c *Calibrate) Run(logger *slog.Logger, rawLogger log.RawLogger, flags *DeviceFlags) error {
	axis, err := ally.ParseAxis(c.Axis)
	if err != nil {
		return err
	}

	d, closer, err := openDevice(flags, logger, rawLogger)
	if err != nil {
		return err
	}
	defer closer()

	if err := d.Calibrate(axis, c.Values); err != nil {
		return err
	}
	logger.Info("calibration written", "axis", axis)
	return nil
}

// CalibrateReset restores an axis to its factory calibration.
type CalibrateReset struct {
	Axis string `arg:"" help:"Axis to reset: js_left, js_right, tr_left, tr_right"`
}

func (c *CalibrateReset) Run(logger *slog.Logger, rawLogger log.RawLogger, flags *DeviceFlags) error {
	axis, err := ally.ParseAxis(c.Axis)
	if err != nil {
		return err
	}

	d, closer, err := openDevice(flags, logger, rawLogger)
	if err != nil {
		return err
	}
	defer closer()

	if err := d.ResetCalibration(axis); err != nil {
		return err
	}
	logger.Info("calibration reset", "axis", axis)
	return nil
}
