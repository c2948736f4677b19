package ally_test

import (
	"errors"
	"testing"

	"github.com/allyctl/allyctl/device/ally"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibrateStick(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{})

	require.NoError(t, d.Calibrate(ally.AxisStickLeft, []int16{100, 50, 900, 110, 60, 950}))

	frames := m.Sent()
	require.Len(t, frames, 3, "probe, calibration, commit")

	cal := frames[1]
	assert.Equal(t, []byte{0x5a, 0xd1, 0x0d, 0x0e, 0x01, 0x01}, cal[:6])
	// Wire payload leads with the y-group: 110, 60, 950, then 100,
	// 50, 900, big-endian, followed by the byte-sum checksum.
	assert.Equal(t, []byte{
		0x00, 0x6e, 0x00, 0x3c, 0x03, 0xb6,
		0x00, 0x64, 0x00, 0x32, 0x03, 0x84,
		0x80,
	}, cal[6:19])

	assert.Equal(t, []byte{0x5a, 0xd1, 0x0d, 0x01, 0x03}, frames[2][:5])

	xs, xmin, xmax, ys, ymin, ymax := d.StickCalibration(ally.AxisStickLeft)
	assert.Equal(t, []int16{100, 50, 900, 110, 60, 950}, []int16{xs, xmin, xmax, ys, ymin, ymax})
}

func TestCalibrateTrigger(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{})

	require.NoError(t, d.Calibrate(ally.AxisTriggerRight, []int16{30, 1000}))

	frames := m.Sent()
	require.Len(t, frames, 3)

	cal := frames[1]
	assert.Equal(t, []byte{0x5a, 0xd1, 0x0d, 0x06, 0x01, 0x04, 0x00, 0x1e, 0x03, 0xe8, 0x00}, cal[:11],
		"trigger calibration has no checksum byte")

	stable, max := d.TriggerCalibration(ally.AxisTriggerRight)
	assert.Equal(t, int16(30), stable)
	assert.Equal(t, int16(1000), max)
}

func TestCalibrateValueCount(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{})

	err := d.Calibrate(ally.AxisStickLeft, []int16{1, 2})
	assert.True(t, ally.IsKind(err, ally.KindValidation))

	err = d.Calibrate(ally.AxisTriggerLeft, []int16{1, 2, 3, 4, 5, 6})
	assert.True(t, ally.IsKind(err, ally.KindValidation))

	err = d.Calibrate(ally.Axis(9), []int16{1, 2})
	assert.True(t, ally.IsKind(err, ally.KindValidation))

	assert.Empty(t, m.Sent())
}

func TestCalibrateKeepsValuesOnSendFailure(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{})
	m.FailSend(1, errors.New("ep stall")) // probe is attempt 0

	err := d.Calibrate(ally.AxisStickRight, []int16{10, 20, 30, 40, 50, 60})
	require.Error(t, err)
	assert.True(t, ally.IsKind(err, ally.KindTransport))

	frames := m.Sent()
	require.Len(t, frames, 1, "commit is not sent after a failed write")
	assert.Equal(t, byte(0x0a), frames[0][2])

	xs, _, _, _, _, _ := d.StickCalibration(ally.AxisStickRight)
	assert.Equal(t, int16(10), xs, "stored values survive the failed push")
}

func TestResetCalibration(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{})

	require.NoError(t, d.Calibrate(ally.AxisStickLeft, []int16{100, 50, 900, 110, 60, 950}))
	require.NoError(t, d.ResetCalibration(ally.AxisStickLeft))

	frames := m.Sent()
	require.Len(t, frames, 6)
	assert.Equal(t, []byte{0x5a, 0xd1, 0x0d, 0x02, 0x02, 0x01}, frames[4][:6])
	assert.Equal(t, []byte{0x5a, 0xd1, 0x0d, 0x01, 0x03}, frames[5][:5])

	xs, xmin, xmax, ys, ymin, ymax := d.StickCalibration(ally.AxisStickLeft)
	assert.Equal(t, []int16{0, 0, 0, 0, 0, 0}, []int16{xs, xmin, xmax, ys, ymin, ymax})
}
