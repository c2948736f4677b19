package cmd

import (
	"fmt"
	"log/slog"

	"github.com/allyctl/allyctl/device/ally"
	"github.com/allyctl/allyctl/hidio"
)

// List prints the attached controller configuration interfaces.
type List struct {
	All bool `help:"List every HID interface of matching controllers, not only the configuration interface"`
}

func (c *List) Run(logger *slog.Logger, flags *DeviceFlags) error {
	if err := hidio.Init(); err != nil {
		return ally.NewError(ally.KindOutOfResources, "hid init", err)
	}
	defer func() { _ = hidio.Exit() }()

	vid, pid, err := flags.ids()
	if err != nil {
		return ally.NewError(ally.KindValidation, "list controllers", err)
	}

	infos, err := hidio.Enumerate(vid, pid)
	if err != nil {
		return ally.NewError(ally.KindOutOfResources, "list controllers", err)
	}

	n := 0
	for _, info := range infos {
		if !c.All && !flags.Match(info) {
			continue
		}
		n++
		fmt.Printf("%s  %04x:%04x  usage %04x:%04x  %s", info.Path, info.VendorID, info.ProductID, info.UsagePage, info.Usage, info.Product)
		if info.Serial != "" {
			fmt.Printf("  (%s)", info.Serial)
		}
		fmt.Println()
	}
	if n == 0 {
		logger.Info("no matching controllers found")
	}
	return nil
}
