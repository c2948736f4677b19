// Package hidio wraps HID feature report I/O behind a small transport
// interface so higher layers can run against real hardware or an
// in-memory mock.
package hidio

// Transport is the feature report channel to a single HID device.
// Buffers are passed through verbatim; the first byte selects the
// report id on both directions.
type Transport interface {
	// SendFeature issues a SET_FEATURE request with buf.
	SendFeature(buf []byte) error
	// GetFeature issues a GET_FEATURE request, filling buf in place.
	// buf[0] must contain the report id to read.
	GetFeature(buf []byte) error
	Close() error
}

// DeviceInfo describes one enumerated HID interface.
type DeviceInfo struct {
	Path      string
	VendorID  uint16
	ProductID uint16
	Product   string
	Serial    string
	UsagePage uint16
	Usage     uint16
	Interface int
}
