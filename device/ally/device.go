// Package ally drives the MCU configuration interface of ROG Ally
// handhelds: button remapping, deadzones, response curves, vibration,
// turbo fire, axis calibration and LED control, all over 64-byte HID
// feature reports.
package ally

import (
	"log/slog"
	"sync"

	"github.com/allyctl/allyctl/hidio"
	"github.com/allyctl/allyctl/internal/log"
)

// Config carries Device construction options.
type Config struct {
	// StrictReady makes an exhausted readiness handshake abort the
	// operation instead of logging and proceeding.
	StrictReady bool
}

// Device owns one controller configuration interface. It wraps the
// feature report transport with the configuration Store, the readiness
// handshake and the LED worker. All state mutation and profile traffic
// is serialized on a single mutex; LED writes run on their own worker
// goroutine and only contend on the transport itself.
type Device struct {
	mu        sync.Mutex
	store     *Store
	transport hidio.Transport

	// txMu serializes raw feature report traffic, which the LED
	// worker issues concurrently with profile pushes.
	txMu sync.Mutex

	leds   *ledWorker
	logger *slog.Logger
	raw    log.RawLogger

	strictReady bool
	initialized bool
	closed      bool
}

// New wraps an open transport. The store starts at factory defaults;
// nothing is written to the controller until Init or an explicit
// operation.
func New(t hidio.Transport, cfg Config, logger *slog.Logger, raw log.RawLogger) *Device {
	if logger == nil {
		logger = slog.Default()
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	d := &Device{
		store:       NewStore(),
		transport:   t,
		logger:      logger,
		raw:         raw,
		strictReady: cfg.StrictReady,
	}
	d.leds = newLEDWorker(d.writeFeature, logger)
	return d
}

// Init wakes the MCU and brings the controller in line with the store:
// the wake-up greeting to all three keyboard report ids, then a mode
// select, then the full profile push. One-shot commands can skip Init
// and leave the controller's mode alone.
func (d *Device) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range greetingReportIDs {
		if err := d.writeFeature("init", EncodeGreeting(id)); err != nil {
			return err
		}
	}
	if err := d.setModeLocked(d.store.Mode()); err != nil {
		return err
	}
	d.initialized = true
	d.logger.Debug("controller initialized", "mode", d.store.Mode())
	return nil
}

// Close stops the LED worker, hands the controller back to mouse mode
// when Init configured it, and closes the transport.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	d.leds.Close()
	if d.initialized {
		if err := d.setModeLocked(ModeMouse); err != nil {
			d.logger.Debug("mouse mode handover failed", "error", err)
		}
	}
	return d.transport.Close()
}

// writeFeature sends one feature report, mirroring it to the raw
// logger first.
func (d *Device) writeFeature(op string, buf []byte) error {
	d.txMu.Lock()
	defer d.txMu.Unlock()
	if d.raw.Enabled() {
		d.raw.Frame("send", buf)
	}
	if err := d.transport.SendFeature(buf); err != nil {
		return NewError(KindTransport, op, err)
	}
	return nil
}

// getFeature reads one feature report in place. buf[0] selects the
// report id.
func (d *Device) getFeature(op string, buf []byte) error {
	d.txMu.Lock()
	defer d.txMu.Unlock()
	if err := d.transport.GetFeature(buf); err != nil {
		return NewError(KindTransport, op, err)
	}
	if d.raw.Enabled() {
		d.raw.Frame("recv", buf)
	}
	return nil
}

// Mode returns the active controller mode.
func (d *Device) Mode() Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.Mode()
}

// SetMode selects the active mode, sends the mode packet and follows
// it with a full profile push so the firmware state matches the newly
// active profile.
func (d *Device) SetMode(m Mode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setModeLocked(m)
}

func (d *Device) setModeLocked(m Mode) error {
	if err := d.store.SetMode(m); err != nil {
		return err
	}
	if err := d.ready("set mode"); err != nil {
		return err
	}
	if err := d.writeFeature("set mode", EncodeSetMode(m)); err != nil {
		return err
	}
	_, err := d.pushLocked()
	return err
}

// SetButton stores one mapping sub-slot. Like all plain setters it
// only mutates the store; Apply pushes the result.
func (d *Device) SetButton(btn Button, secondary bool, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.SetButton(btn, secondary, value)
}

// ButtonName returns the bound symbol of one sub-slot in display form.
func (d *Device) ButtonName(btn Button, secondary bool) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.ButtonName(btn, secondary)
}

// ResetMappings restores the active mode's built-in mapping table in
// the store.
func (d *Device) ResetMappings() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.store.ResetMappings()
}

// SetDeadzone stores one axis's inner/outer deadzone pair.
func (d *Device) SetDeadzone(axis Axis, inner, outer byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.SetDeadzone(axis, inner, outer)
}

// Deadzone returns one axis's stored deadzone pair.
func (d *Device) Deadzone(axis Axis) (inner, outer byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.Deadzone(axis)
}

// SetAntiDeadzone stores one stick's output floor.
func (d *Device) SetAntiDeadzone(side Side, value byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.SetAntiDeadzone(side, value)
}

// AntiDeadzone returns one stick's stored output floor.
func (d *Device) AntiDeadzone(side Side) byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.AntiDeadzone(side)
}

// SetVibeIntensity stores both rumble strengths.
func (d *Device) SetVibeIntensity(left, right byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.SetVibeIntensity(left, right)
}

// VibeIntensity returns the stored rumble strengths.
func (d *Device) VibeIntensity() (left, right byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.VibeIntensity()
}

// SetCurvePoint stores one response curve point.
func (d *Device) SetCurvePoint(side Side, point int, move, response byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.SetCurvePoint(side, point, move, response)
}

// CurvePoint returns one stored response curve point.
func (d *Device) CurvePoint(side Side, point int) (move, response byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.CurvePoint(side, point)
}

// SetTurbo stores one button's turbo-fire interval.
func (d *Device) SetTurbo(btn Button, interval byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.SetTurbo(btn, interval)
}

// Turbo returns one button's stored turbo interval.
func (d *Device) Turbo(btn Button) byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.Turbo(btn)
}

// StickCalibration returns one stick's stored calibration in accessor
// order.
func (d *Device) StickCalibration(axis Axis) (xStable, xMin, xMax, yStable, yMin, yMax int16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.StickCalibration(axis)
}

// TriggerCalibration returns one trigger's stored calibration.
func (d *Device) TriggerCalibration(axis Axis) (stable, max int16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.TriggerCalibration(axis)
}
