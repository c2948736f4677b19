package ally

// Calibrate stores an axis calibration and writes it to the MCU.
// Stick axes take six values in accessor order (x-stable, x-min,
// x-max, y-stable, y-min, y-max), trigger axes two (stable, max).
// Every calibration write is finalized with a commit packet. Stored
// values are kept even when the write fails; a later Calibrate or
// ResetCalibration resolves the divergence.
func (d *Device) Calibrate(axis Axis, values []int16) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var frame []byte
	switch {
	case axis.IsStick():
		if len(values) != 6 {
			return Validationf("set calibration", "stick axis %s takes 6 values, got %d", axis, len(values))
		}
		if err := d.store.SetStickCalibration(axis, values[0], values[1], values[2], values[3], values[4], values[5]); err != nil {
			return err
		}
		frame = EncodeStickCalibration(axis, d.store.stickCalWire(axis))
	case axis.Valid():
		if len(values) != 2 {
			return Validationf("set calibration", "trigger axis %s takes 2 values, got %d", axis, len(values))
		}
		if err := d.store.SetTriggerCalibration(axis, values[0], values[1]); err != nil {
			return err
		}
		frame = EncodeTriggerCalibration(axis, d.store.trigCalWire(axis))
	default:
		return Validationf("set calibration", "invalid axis")
	}

	if err := d.ready("set calibration"); err != nil {
		return err
	}
	if err := d.writeFeature("set calibration", frame); err != nil {
		return err
	}
	return d.writeFeature("commit calibration", EncodeCalibrationCommit())
}

// ResetCalibration clears one axis's calibration on the MCU and zeroes
// the stored values. The reset packet is committed like a write.
func (d *Device) ResetCalibration(axis Axis) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.store.ClearCalibration(axis); err != nil {
		return err
	}
	if err := d.ready("reset calibration"); err != nil {
		return err
	}
	if err := d.writeFeature("reset calibration", EncodeCalibrationReset(axis)); err != nil {
		return err
	}
	return d.writeFeature("commit calibration", EncodeCalibrationCommit())
}
