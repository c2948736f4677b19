package cmd

import (
	"fmt"
	"log/slog"

	"github.com/allyctl/allyctl/device/ally"
	"github.com/allyctl/allyctl/internal/log"
)

// Get reads one attribute of the active profile.
type Get struct {
	Attr string `arg:"" help:"Attribute name (see 'allyctl show')"`
}

func (c *Get) Run(logger *slog.Logger, rawLogger log.RawLogger, flags *DeviceFlags) error {
	attr, ok := ally.LookupAttr(c.Attr)
	if !ok {
		return ally.Validationf("get attribute", "unknown attribute %q", c.Attr)
	}
	if attr.Read == nil {
		return ally.Validationf("get attribute", "%s is write-only", c.Attr)
	}

	d, closer, err := openDevice(flags, logger, rawLogger)
	if err != nil {
		return err
	}
	defer closer()

	v, err := attr.Read(d)
	if err != nil {
		return err
	}
	fmt.Println(v)
	return nil
}
