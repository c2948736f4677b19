// Package cmd implements the allyctl subcommands.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/allyctl/allyctl/device/ally"
	"github.com/allyctl/allyctl/hidio"
	"github.com/allyctl/allyctl/internal/log"
)

// DeviceFlags selects the controller interface commands talk to. It is
// embedded into the root CLI so every command shares one --device.*
// flag group.
type DeviceFlags struct {
	Path        string `help:"HID path of the configuration interface (skips discovery)" env:"ALLYCTL_DEVICE_PATH"`
	VID         string `help:"Vendor id to discover (hex accepted)" default:"0x0b05" env:"ALLYCTL_DEVICE_VID"`
	PID         string `help:"Product id to discover (hex accepted; default matches known controllers)" env:"ALLYCTL_DEVICE_PID"`
	StrictReady bool   `help:"Treat an exhausted readiness handshake as fatal" env:"ALLYCTL_STRICT_READY"`
}

func (f *DeviceFlags) ids() (vid, pid uint16, err error) {
	parse := func(s string) (uint16, error) {
		if s == "" {
			return 0, nil
		}
		v, err := strconv.ParseUint(s, 0, 16)
		if err != nil {
			return 0, fmt.Errorf("bad device id %q: %w", s, err)
		}
		return uint16(v), nil
	}
	if vid, err = parse(f.VID); err != nil {
		return 0, 0, err
	}
	if pid, err = parse(f.PID); err != nil {
		return 0, 0, err
	}
	return vid, pid, nil
}

// Match reports whether info is a configuration interface the flags
// accept. Without an explicit product id only the known controller
// models pass.
func (f *DeviceFlags) Match(info hidio.DeviceInfo) bool {
	vid, pid, err := f.ids()
	if err != nil {
		return false
	}
	if vid != 0 && info.VendorID != vid {
		return false
	}
	if pid != 0 {
		if info.ProductID != pid {
			return false
		}
	} else if info.ProductID != ally.ProductAllyRC71L && info.ProductID != ally.ProductAllyX {
		return false
	}
	return info.UsagePage == ally.CfgUsagePage
}

// discover picks the configuration interface to use. With several
// matching controllers attached, the first enumeration hit wins.
func (f *DeviceFlags) discover(logger *slog.Logger) (hidio.DeviceInfo, error) {
	if _, _, err := f.ids(); err != nil {
		return hidio.DeviceInfo{}, ally.NewError(ally.KindValidation, "discover controller", err)
	}
	infos, err := hidio.Enumerate(0, 0)
	if err != nil {
		return hidio.DeviceInfo{}, ally.NewError(ally.KindOutOfResources, "discover controller", err)
	}
	var matches []hidio.DeviceInfo
	for _, info := range infos {
		if f.Match(info) {
			matches = append(matches, info)
		}
	}
	if len(matches) == 0 {
		return hidio.DeviceInfo{}, ally.NewError(ally.KindOutOfResources, "discover controller",
			errors.New("no matching configuration interface found"))
	}
	if len(matches) > 1 {
		logger.Debug("multiple controllers found, using the first", "count", len(matches))
	}
	return matches[0], nil
}

// openDevice initializes hidapi, locates the controller and wraps it
// in an ally.Device. The returned closer tears both down; it is safe
// to call exactly once.
func openDevice(flags *DeviceFlags, logger *slog.Logger, raw log.RawLogger) (*ally.Device, func(), error) {
	if err := hidio.Init(); err != nil {
		return nil, nil, ally.NewError(ally.KindOutOfResources, "hid init", err)
	}

	path := flags.Path
	if path == "" {
		info, err := flags.discover(logger)
		if err != nil {
			_ = hidio.Exit()
			return nil, nil, err
		}
		path = info.Path
		logger.Debug("discovered controller", "path", path, "product", info.Product)
	}

	t, err := hidio.OpenPath(path)
	if err != nil {
		_ = hidio.Exit()
		return nil, nil, ally.NewError(ally.KindOutOfResources, "open controller", err)
	}

	d := ally.New(t, ally.Config{StrictReady: flags.StrictReady}, logger, raw)
	closer := func() {
		if err := d.Close(); err != nil {
			logger.Debug("device close", "error", err)
		}
		_ = hidio.Exit()
	}
	return d, closer, nil
}
