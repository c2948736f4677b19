package ally_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/allyctl/allyctl/device/ally"
	"github.com/allyctl/allyctl/hidio"
	"github.com/allyctl/allyctl/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler captures every record so tests can assert on log
// traffic.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func TestStrictReadyAborts(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{StrictReady: true})
	m.FailGet(errors.New("no echo"))

	n, err := d.Apply()
	assert.Equal(t, 0, n)
	require.Error(t, err)
	assert.True(t, ally.IsKind(err, ally.KindNotReady))

	frames := m.Sent()
	require.Len(t, frames, 4, "probe budget is four attempts")
	for _, f := range frames {
		assert.Equal(t, byte(0x0a), f[2])
	}
}

func TestLenientProceedsWhenNotReady(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{})
	m.FailGet(errors.New("no echo"))

	n, err := d.Apply()
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	// Four exhausted probes, then the full sequence anyway.
	assert.Len(t, m.Sent(), 4+16)
}

func TestReadyAcceptsLateEcho(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{StrictReady: true})

	// First read returns unrelated data; the second attempt falls
	// through to the probe echo.
	m.QueueReply(make([]byte, ally.FrameLen))

	n, err := d.Apply()
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	frames := m.Sent()
	require.Len(t, frames, 2+16)
	assert.Equal(t, byte(0x0a), frames[0][2])
	assert.Equal(t, byte(0x0a), frames[1][2])
	assert.Equal(t, byte(0x02), frames[2][2], "push starts after the echo lands")
}

func TestHandshakeTracesAttempts(t *testing.T) {
	h := &recordingHandler{}
	m := hidio.NewMock()
	d := ally.New(m, ally.Config{}, slog.New(h), nil)

	// One garbage reply forces a second probe before the echo lands.
	m.QueueReply(make([]byte, ally.FrameLen))

	_, err := d.Apply()
	require.NoError(t, err)

	var attempts []int64
	for _, r := range h.records {
		if r.Level != log.LevelTrace || r.Message != "readiness probe" {
			continue
		}
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == "attempt" {
				attempts = append(attempts, a.Value.Int64())
			}
			return true
		})
	}
	assert.Equal(t, []int64{1, 2}, attempts)
}

func TestStrictReadyBlocksCalibration(t *testing.T) {
	d, m := newTestDevice(t, ally.Config{StrictReady: true})
	m.FailGet(errors.New("no echo"))

	err := d.Calibrate(ally.AxisStickLeft, []int16{1, 2, 3, 4, 5, 6})
	assert.True(t, ally.IsKind(err, ally.KindNotReady))
	assert.Len(t, m.Sent(), 4, "only probes went out")

	// The store keeps the values; a later write can still push them.
	xs, _, _, _, _, _ := d.StickCalibration(ally.AxisStickLeft)
	assert.Equal(t, int16(1), xs)
}
