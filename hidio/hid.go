package hidio

import (
	"fmt"

	"github.com/sstallion/go-hid"
)

// Init initializes the underlying hidapi library. Call once before any
// enumeration or open, and pair with Exit.
func Init() error {
	return hid.Init()
}

// Exit tears down the hidapi library.
func Exit() error {
	return hid.Exit()
}

// Enumerate lists HID interfaces matching vid/pid. A zero vid or pid
// acts as a wildcard.
func Enumerate(vid, pid uint16) ([]DeviceInfo, error) {
	var out []DeviceInfo
	err := hid.Enumerate(vid, pid, func(info *hid.DeviceInfo) error {
		out = append(out, DeviceInfo{
			Path:      info.Path,
			VendorID:  info.VendorID,
			ProductID: info.ProductID,
			Product:   info.ProductStr,
			Serial:    info.SerialNbr,
			UsagePage: info.UsagePage,
			Usage:     info.Usage,
			Interface: info.InterfaceNbr,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("hid enumerate: %w", err)
	}
	return out, nil
}

// Device is a Transport backed by an open hidapi handle.
type Device struct {
	dev  *hid.Device
	path string
}

// OpenPath opens the HID interface at the given platform path.
func OpenPath(path string) (*Device, error) {
	d, err := hid.OpenPath(path)
	if err != nil {
		return nil, fmt.Errorf("hid open %s: %w", path, err)
	}
	return &Device{dev: d, path: path}, nil
}

// Path returns the platform path this device was opened with.
func (d *Device) Path() string {
	return d.path
}

func (d *Device) SendFeature(buf []byte) error {
	if _, err := d.dev.SendFeatureReport(buf); err != nil {
		return fmt.Errorf("send feature report: %w", err)
	}
	return nil
}

func (d *Device) GetFeature(buf []byte) error {
	if _, err := d.dev.GetFeatureReport(buf); err != nil {
		return fmt.Errorf("get feature report: %w", err)
	}
	return nil
}

func (d *Device) Close() error {
	return d.dev.Close()
}
