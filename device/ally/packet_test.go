package ally_test

import (
	"testing"

	"github.com/allyctl/allyctl/device/ally"
	"github.com/stretchr/testify/assert"
)

func TestGreetingFrame(t *testing.T) {
	assert.Equal(t, []byte{
		0x5a, 'A', 'S', 'U', 'S', ' ', 'T', 'e',
		'c', 'h', '.', 'I', 'n', 'c', '.', 0x00,
	}, ally.EncodeGreeting(0x5a))
	assert.Equal(t, byte(0x5d), ally.EncodeGreeting(0x5d)[0])
}

func TestSetModeFrame(t *testing.T) {
	buf := ally.EncodeSetMode(ally.ModeWASD)
	assert.Len(t, buf, ally.FrameLen)
	assert.Equal(t, []byte{0x5a, 0xd1, 0x01, 0x01, 0x02}, buf[:5])
	assert.Equal(t, make([]byte, ally.FrameLen-5), buf[5:])
}

func TestMappingFrame(t *testing.T) {
	var p ally.Profile
	p.SetButton(ally.PairAB, ally.SideLeft, false, ally.PageKeyboard, 0x1d)

	expected := []byte{
		0x5a, 0xd1, 0x02, 0x05, 0x2c, 0x02, 0x1d, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, expected, ally.EncodeMapping(&p, ally.PairAB))
}

func TestMappingFrameSubSlots(t *testing.T) {
	var p ally.Profile
	p.SetButton(ally.PairXY, ally.SideLeft, false, ally.PageGamepad, 0x03)
	p.SetButton(ally.PairXY, ally.SideLeft, true, ally.PageKeyboard, 0x1d)
	p.SetButton(ally.PairXY, ally.SideRight, false, ally.PageGamepad, 0x04)
	p.SetButton(ally.PairXY, ally.SideRight, true, ally.PageMouse, 0x01)

	buf := ally.EncodeMapping(&p, ally.PairXY)
	assert.Equal(t, byte(0x06), buf[3], "pair byte precedes the length byte")
	assert.Equal(t, byte(0x2c), buf[4])
	assert.Equal(t, []byte{0x01, 0x03}, buf[5:7], "left primary")
	assert.Equal(t, []byte{0x02, 0x1d}, buf[16:18], "left secondary")
	assert.Equal(t, []byte{0x01, 0x04}, buf[27:29], "right primary")
	assert.Equal(t, []byte{0x03, 0x01}, buf[38:40], "right secondary")
}

func TestAnalogueFrames(t *testing.T) {
	p := ally.Profile{
		Deadzones:      [2][4]byte{{1, 60, 2, 50}, {3, 40, 4, 30}},
		AntiDeadzones:  [2]byte{10, 11},
		VibeIntensity:  [2]byte{21, 42},
		ResponseCurves: [2][8]byte{{1, 2, 3, 4, 5, 6, 7, 8}, {9, 10, 11, 12, 13, 14, 15, 16}},
	}

	buf := ally.EncodeJoystickDeadzone(&p)
	assert.Equal(t, []byte{0x5a, 0xd1, 0x04, 0x04, 1, 60, 2, 50}, buf[:8])

	buf = ally.EncodeTriggerDeadzone(&p)
	assert.Equal(t, []byte{0x5a, 0xd1, 0x05, 0x04, 3, 40, 4, 30}, buf[:8])

	buf = ally.EncodeAntiDeadzone(&p)
	assert.Equal(t, []byte{0x5a, 0xd1, 0x18, 0x02, 10, 11}, buf[:6])

	buf = ally.EncodeVibeIntensity(&p)
	assert.Equal(t, []byte{0x5a, 0xd1, 0x06, 0x02, 21, 42}, buf[:6])

	buf = ally.EncodeResponseCurve(&p, ally.SideLeft)
	assert.Equal(t, []byte{0x5a, 0xd1, 0x13, 0x09, 0x01, 1, 2, 3, 4, 5, 6, 7, 8}, buf[:13])

	buf = ally.EncodeResponseCurve(&p, ally.SideRight)
	assert.Equal(t, []byte{0x5a, 0xd1, 0x13, 0x09, 0x02, 9, 10, 11, 12, 13, 14, 15, 16}, buf[:13])
}

func TestTurboFrame(t *testing.T) {
	var p ally.Profile
	p.TurboBtns[16] = 5 // pair A/B, left slot

	buf := ally.EncodeTurbo(&p)
	assert.Equal(t, []byte{0x5a, 0xd1, 0x0f, 0x20}, buf[:4])
	assert.Equal(t, byte(5), buf[4+16])
	assert.Len(t, buf, ally.FrameLen)
}

func TestLEDFrames(t *testing.T) {
	buf := ally.EncodeLEDs(0xaa, 0xbb, 0xcc)
	assert.Len(t, buf, ally.FrameLen)
	assert.Equal(t, []byte{
		0x5a, 0xd1, 0x08, 0x0c,
		0xaa, 0xbb, 0xcc,
		0xaa, 0xbb, 0xcc,
		0xaa, 0xbb, 0xcc,
		0xaa, 0xbb, 0xcc,
	}, buf[:16])
	assert.Equal(t, make([]byte, ally.FrameLen-16), buf[16:])

	assert.Equal(t, []byte{0x5a, 0xba, 0xc5, 0xc4, 0x02}, ally.EncodeBrightness(2))
}

func TestCommandFramesFixedSize(t *testing.T) {
	var p ally.Profile
	frames := map[string][]byte{
		"mode":           ally.EncodeSetMode(ally.ModeGame),
		"mapping":        ally.EncodeMapping(&p, ally.PairDPadUpDown),
		"js deadzone":    ally.EncodeJoystickDeadzone(&p),
		"tr deadzone":    ally.EncodeTriggerDeadzone(&p),
		"anti-deadzone":  ally.EncodeAntiDeadzone(&p),
		"vibration":      ally.EncodeVibeIntensity(&p),
		"response curve": ally.EncodeResponseCurve(&p, ally.SideRight),
		"turbo":          ally.EncodeTurbo(&p),
		"leds":           ally.EncodeLEDs(1, 2, 3),
		"check ready":    ally.EncodeCheckReady(),
		"stick cal":      ally.EncodeStickCalibration(ally.AxisStickLeft, [6]int16{}),
		"trigger cal":    ally.EncodeTriggerCalibration(ally.AxisTriggerRight, [2]int16{}),
		"cal commit":     ally.EncodeCalibrationCommit(),
		"cal reset":      ally.EncodeCalibrationReset(ally.AxisStickRight),
	}
	for name, buf := range frames {
		assert.Len(t, buf, ally.FrameLen, name)
		assert.Equal(t, byte(0x5a), buf[0], name)
		assert.Equal(t, byte(0xd1), buf[1], name)
	}
}

func TestCheckReadyFrame(t *testing.T) {
	buf := ally.EncodeCheckReady()
	assert.Len(t, buf, ally.FrameLen)
	assert.Equal(t, []byte{0x5a, 0xd1, 0x0a, 0x01}, buf[:4])

	assert.True(t, ally.IsReadyEcho(buf))
	assert.False(t, ally.IsReadyEcho(ally.EncodeSetMode(ally.ModeGame)))
	assert.False(t, ally.IsReadyEcho(nil))
}

func TestStickCalibrationFrame(t *testing.T) {
	// Wire order is the y-group first. Values 110, 60, 950, 100, 50,
	// 900 sum to 640 byte-wise, so the trailing checksum is 0x80.
	buf := ally.EncodeStickCalibration(ally.AxisStickLeft, [6]int16{110, 60, 950, 100, 50, 900})

	expected := []byte{
		0x5a, 0xd1, 0x0d, 0x0e, 0x01, 0x01, 0x00, 0x6e,
		0x00, 0x3c, 0x03, 0xb6, 0x00, 0x64, 0x00, 0x32,
		0x03, 0x84, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, expected, buf)
}

func TestTriggerCalibrationFrame(t *testing.T) {
	buf := ally.EncodeTriggerCalibration(ally.AxisTriggerRight, [2]int16{30, 1000})

	assert.Equal(t, []byte{0x5a, 0xd1, 0x0d, 0x06, 0x01, 0x04, 0x00, 0x1e, 0x03, 0xe8}, buf[:10])
	assert.Equal(t, make([]byte, ally.FrameLen-10), buf[10:], "trigger calibration carries no checksum")
}

func TestCalibrationControlFrames(t *testing.T) {
	buf := ally.EncodeCalibrationCommit()
	assert.Equal(t, []byte{0x5a, 0xd1, 0x0d, 0x01, 0x03}, buf[:5])

	buf = ally.EncodeCalibrationReset(ally.AxisTriggerLeft)
	assert.Equal(t, []byte{0x5a, 0xd1, 0x0d, 0x02, 0x02, 0x03}, buf[:6])
}
