package ally

// pushPacketCount is the length of the full profile push sequence:
// nine mapping packets followed by joystick deadzones, trigger
// deadzones, anti-deadzones, vibration, both response curves and
// turbo.
const pushPacketCount = PairCount + 7

// Apply pushes the active profile to the controller as the fixed
// packet sequence, after one readiness handshake. The sequence is
// fail-fast: the first send error aborts the push and is returned with
// the failing packet's category in its operation; packets already sent
// are not rolled back. It returns the number of packets that made it
// out.
func (d *Device) Apply() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pushLocked()
}

func (d *Device) pushLocked() (int, error) {
	if err := d.ready("apply profile"); err != nil {
		return 0, err
	}

	type packet struct {
		op  string
		buf []byte
	}
	p := d.store.profile()
	packets := make([]packet, 0, pushPacketCount)
	for pair := PairDPadUpDown; pair <= PairTriggers; pair++ {
		packets = append(packets, packet{"apply mapping " + pair.String(), EncodeMapping(p, pair)})
	}
	packets = append(packets,
		packet{"apply joystick deadzones", EncodeJoystickDeadzone(p)},
		packet{"apply trigger deadzones", EncodeTriggerDeadzone(p)},
		packet{"apply anti-deadzones", EncodeAntiDeadzone(p)},
		packet{"apply vibration intensity", EncodeVibeIntensity(p)},
		packet{"apply response curve left", EncodeResponseCurve(p, SideLeft)},
		packet{"apply response curve right", EncodeResponseCurve(p, SideRight)},
		packet{"apply turbo", EncodeTurbo(p)},
	)

	for sent, pkt := range packets {
		if err := d.writeFeature(pkt.op, pkt.buf); err != nil {
			return sent, err
		}
	}
	d.logger.Debug("profile pushed", "mode", d.store.Mode(), "packets", len(packets))
	return len(packets), nil
}
