package cmd

import (
	"log/slog"
	"strings"

	"github.com/allyctl/allyctl/device/ally"
	"github.com/allyctl/allyctl/internal/log"
)

// Set writes one attribute. Most attributes only update the stored
// profile; pass --apply to push the result in the same invocation.
type Set struct {
	Attr  string   `arg:"" help:"Attribute name (see 'allyctl show')"`
	Value []string `arg:"" optional:"" help:"Attribute value; omit to clear a mapping"`
	Apply bool     `help:"Push the full profile after storing the value"`
}

func (c *Set) Run(logger *slog.Logger, rawLogger log.RawLogger, flags *DeviceFlags) error {
	attr, ok := ally.LookupAttr(c.Attr)
	if !ok {
		return ally.Validationf("set attribute", "unknown attribute %q", c.Attr)
	}

	d, closer, err := openDevice(flags, logger, rawLogger)
	if err != nil {
		return err
	}
	defer closer()

	if err := attr.Write(d, strings.Join(c.Value, " ")); err != nil {
		return err
	}
	logger.Debug("attribute stored", "attr", c.Attr)

	if c.Apply {
		n, err := d.Apply()
		if err != nil {
			return err
		}
		logger.Info("profile applied", "mode", d.Mode(), "packets", n)
	}
	return nil
}
