package ally_test

import (
	"testing"

	"github.com/allyctl/allyctl/device/ally"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledFrames(frames [][]byte) [][]byte {
	var out [][]byte
	for _, f := range frames {
		if len(f) > 2 && f[1] == 0xd1 && f[2] == 0x08 {
			out = append(out, f)
		}
		if len(f) == 5 && f[1] == 0xba {
			out = append(out, f)
		}
	}
	return out
}

func TestLEDWritesCoalesce(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{})

	// A burst of updates may collapse into fewer writes, but the last
	// color always lands.
	for i := 0; i <= 50; i++ {
		d.SetRGB(byte(i), 0x22, 0x33)
	}
	d.FlushLEDs()

	frames := ledFrames(m.Sent())
	require.NotEmpty(t, frames)
	assert.LessOrEqual(t, len(frames), 51)
	assert.Equal(t, ally.EncodeLEDs(50, 0x22, 0x33), frames[len(frames)-1])

	require.NoError(t, d.Close())
}

func TestLEDBrightness(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{})

	require.NoError(t, d.SetBrightness(2))
	d.FlushLEDs()

	frames := ledFrames(m.Sent())
	require.Len(t, frames, 1)
	assert.Equal(t, []byte{0x5a, 0xba, 0xc5, 0xc4, 0x02}, frames[0])

	err := d.SetBrightness(ally.MaxBrightness + 1)
	assert.True(t, ally.IsKind(err, ally.KindValidation))
	d.FlushLEDs()
	assert.Len(t, ledFrames(m.Sent()), 1)

	require.NoError(t, d.Close())
}

func TestLEDCombinedUpdate(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{})

	d.SetRGB(1, 2, 3)
	require.NoError(t, d.SetBrightness(1))
	d.FlushLEDs()

	frames := ledFrames(m.Sent())
	require.Len(t, frames, 2, "rgb and brightness are separate packets")

	require.NoError(t, d.Close())
}

func TestNoLEDWritesAfterClose(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{})

	d.SetRGB(9, 9, 9)
	d.FlushLEDs()
	require.NoError(t, d.Close())
	n := len(m.Sent())

	d.SetRGB(1, 1, 1)
	_ = d.SetBrightness(1)
	d.FlushLEDs()

	assert.Len(t, m.Sent(), n, "closed worker drops updates")
}

func TestFlushWithNothingPending(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{})
	d.FlushLEDs()
	assert.Empty(t, m.Sent())
	require.NoError(t, d.Close())
}

func TestRegistry(t *testing.T) {
	r := ally.NewRegistry()
	d1, m1 := newTestDevice(t, ally.Config{})
	d2, m2 := newTestDevice(t, ally.Config{})

	assert.Nil(t, r.Add("/dev/hidraw1", d1))
	assert.Nil(t, r.Add("/dev/hidraw0", d2))
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"/dev/hidraw0", "/dev/hidraw1"}, r.Paths())

	got, ok := r.Get("/dev/hidraw1")
	require.True(t, ok)
	assert.Same(t, d1, got)

	removed := r.Remove("/dev/hidraw1")
	assert.Same(t, d1, removed)
	assert.Nil(t, r.Remove("/dev/hidraw1"))
	assert.Equal(t, 1, r.Len())

	require.NoError(t, r.Close())
	assert.Equal(t, 0, r.Len())
	assert.True(t, m2.Closed())
	assert.False(t, m1.Closed(), "removed devices are the caller's to close")

	require.NoError(t, d1.Close())
}
