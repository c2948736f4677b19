package ally

import "encoding/binary"

// greeting is the MCU wake-up payload sent to each keyboard report id
// before any configuration traffic.
var greeting = []byte("ASUS Tech.Inc.\x00")

// greetingReportIDs are the keyboard backlight report ids that expect
// the greeting, in send order.
var greetingReportIDs = []byte{0x5a, 0x5d, 0x5e}

func newFrame(cmd, payloadLen byte) []byte {
	buf := make([]byte, FrameLen)
	buf[0] = ReportID
	buf[1] = CodePage
	buf[2] = cmd
	buf[3] = payloadLen
	return buf
}

// EncodeGreeting builds the 16-byte initialization frame for one
// report id.
func EncodeGreeting(reportID byte) []byte {
	buf := make([]byte, 1+len(greeting))
	buf[0] = reportID
	copy(buf[1:], greeting)
	return buf
}

// EncodeSetMode builds the mode switch packet.
func EncodeSetMode(m Mode) []byte {
	buf := newFrame(cmdSetMode, lenMode)
	buf[4] = byte(m)
	return buf
}

// EncodeMapping builds the set-mapping packet for one button pair.
// Uniquely among the commands, the pair byte precedes the length byte.
func EncodeMapping(p *Profile, pair BtnPair) []byte {
	buf := make([]byte, FrameLen)
	buf[0] = ReportID
	buf[1] = CodePage
	buf[2] = cmdSetMapping
	buf[3] = byte(pair)
	buf[4] = lenMapping
	copy(buf[5:], p.KeyMapping[pair-1][:])
	return buf
}

// EncodeJoystickDeadzone builds the stick deadzone packet: left inner,
// left outer, right inner, right outer.
func EncodeJoystickDeadzone(p *Profile) []byte {
	buf := newFrame(cmdSetJoystickDZ, lenDeadzone)
	copy(buf[4:], p.Deadzones[dzJoystick][:])
	return buf
}

// EncodeTriggerDeadzone builds the trigger deadzone packet.
func EncodeTriggerDeadzone(p *Profile) []byte {
	buf := newFrame(cmdSetTriggerDZ, lenDeadzone)
	copy(buf[4:], p.Deadzones[dzTrigger][:])
	return buf
}

// EncodeAntiDeadzone builds the stick anti-deadzone packet.
func EncodeAntiDeadzone(p *Profile) []byte {
	buf := newFrame(cmdSetAntiDeadzone, lenAntiDeadzone)
	buf[4] = p.AntiDeadzones[SideLeft]
	buf[5] = p.AntiDeadzones[SideRight]
	return buf
}

// EncodeVibeIntensity builds the vibration intensity packet.
func EncodeVibeIntensity(p *Profile) []byte {
	buf := newFrame(cmdSetVibeIntensity, lenVibeIntensity)
	buf[4] = p.VibeIntensity[SideLeft]
	buf[5] = p.VibeIntensity[SideRight]
	return buf
}

// EncodeResponseCurve builds the response curve packet for one stick.
func EncodeResponseCurve(p *Profile, side Side) []byte {
	buf := newFrame(cmdSetResponseCurve, lenResponseCurve)
	buf[4] = byte(side) + 1
	copy(buf[5:], p.ResponseCurves[side][:])
	return buf
}

// EncodeTurbo builds the turbo interval packet covering all pairs.
func EncodeTurbo(p *Profile) []byte {
	buf := newFrame(cmdSetTurbo, lenTurbo)
	copy(buf[4:], p.TurboBtns[:])
	return buf
}

// EncodeLEDs builds the gamepad RGB packet. The same color is repeated
// for all four LED zones.
func EncodeLEDs(r, g, b byte) []byte {
	buf := newFrame(cmdSetLEDs, lenLEDs)
	for zone := 0; zone < 4; zone++ {
		buf[4+zone*3] = r
		buf[5+zone*3] = g
		buf[6+zone*3] = b
	}
	return buf
}

// EncodeBrightness builds the raw keyboard backlight packet. level is
// 0 to MaxBrightness.
func EncodeBrightness(level byte) []byte {
	return []byte{0x5a, 0xba, 0xc5, 0xc4, level}
}

// EncodeCheckReady builds the readiness probe packet.
func EncodeCheckReady() []byte {
	return newFrame(cmdCheckReady, lenCheckReady)
}

// IsReadyEcho reports whether a feature report read shows the MCU
// acknowledging the readiness probe.
func IsReadyEcho(buf []byte) bool {
	return len(buf) > 2 && buf[2] == cmdCheckReady
}

// EncodeStickCalibration builds the calibration packet for a stick
// axis. cal is in wire order (y-stable, y-min, y-max, x-stable, x-min,
// x-max); each value is written big-endian and a byte-sum checksum of
// the twelve data bytes follows the payload.
func EncodeStickCalibration(axis Axis, cal [6]int16) []byte {
	buf := newFrame(cmdSetCalibration, lenCalStick)
	buf[4] = calOpSet
	buf[5] = byte(axis)
	var checksum byte
	for i, v := range cal {
		binary.BigEndian.PutUint16(buf[6+i*2:], uint16(v))
		checksum += buf[6+i*2] + buf[7+i*2]
	}
	buf[6+len(cal)*2] = checksum
	return buf
}

// EncodeTriggerCalibration builds the calibration packet for a trigger
// axis: stable then max, big-endian, no checksum.
func EncodeTriggerCalibration(axis Axis, cal [2]int16) []byte {
	buf := newFrame(cmdSetCalibration, lenCalTrigger)
	buf[4] = calOpSet
	buf[5] = byte(axis)
	for i, v := range cal {
		binary.BigEndian.PutUint16(buf[6+i*2:], uint16(v))
	}
	return buf
}

// EncodeCalibrationCommit builds the stage-2 packet that finalizes any
// calibration write or reset.
func EncodeCalibrationCommit() []byte {
	buf := newFrame(cmdSetCalibration, lenCalCommit)
	buf[4] = calOpCommit
	return buf
}

// EncodeCalibrationReset builds the packet clearing one axis's stored
// calibration on the MCU.
func EncodeCalibrationReset(axis Axis) []byte {
	buf := newFrame(cmdSetCalibration, lenCalReset)
	buf[4] = calOpReset
	buf[5] = byte(axis)
	return buf
}
