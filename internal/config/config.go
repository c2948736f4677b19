// Package config defines the CLI structure and configuration for allyctl.
package config

import (
	"github.com/allyctl/allyctl/internal/cmd"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"ALLYCTL_LOG_LEVEL"`
	File    string `help:"Log file path (default: none; logs only to console)" env:"ALLYCTL_LOG_FILE"`
	RawFile string `help:"Raw feature report log file path (default: none)" env:"ALLYCTL_LOG_RAW_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log    `embed:"" prefix:"log."`
	Device cmd.DeviceFlags `embed:"" prefix:"device."`

	Config string `help:"Extra configuration file to load" env:"ALLYCTL_CONFIG" type:"path"`

	List           cmd.List           `cmd:"" help:"List HID configuration interfaces"`
	Show           cmd.Show           `cmd:"" help:"Print every readable controller attribute"`
	Get            cmd.Get            `cmd:"" help:"Read one controller attribute"`
	Set            cmd.Set            `cmd:"" help:"Write one controller attribute"`
	Apply          cmd.Apply          `cmd:"" help:"Push the active profile to the controller"`
	Mode           cmd.Mode           `cmd:"" help:"Switch the controller operating mode"`
	Calibrate      cmd.Calibrate      `cmd:"" help:"Write axis calibration values"`
	CalibrateReset cmd.CalibrateReset `cmd:"" name:"calibrate-reset" help:"Restore factory calibration for an axis"`
	Leds           cmd.Leds           `cmd:"" help:"Set LED color and brightness"`
	Symbols        cmd.Symbols        `cmd:"" help:"List bindable button names"`
	Tray           cmd.Tray           `cmd:"" help:"Run the resident tray agent"`
	Install        cmd.Install        `cmd:"" help:"Start the tray agent with the user session"`
	Uninstall      cmd.Uninstall      `cmd:"" help:"Remove the tray agent startup registration"`
}
