//go:build linux

package hidio

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUeventTouchesHidraw(t *testing.T) {
	add := []byte("add@/devices/pci0000:00/usb1/1-3/1-3:1.2/0003:0B05:1ABE.0007/hidraw/hidraw3\x00" +
		"ACTION=add\x00SUBSYSTEM=hidraw\x00DEVNAME=hidraw3\x00")
	assert.True(t, ueventTouchesHidraw(add))

	remove := []byte("remove@/devices/pci0000:00/usb1/1-3/1-3:1.2/0003:0B05:1ABE.0007/hidraw/hidraw3\x00" +
		"ACTION=remove\x00SUBSYSTEM=hidraw\x00DEVNAME=hidraw3\x00")
	assert.True(t, ueventTouchesHidraw(remove))

	bind := []byte("bind@/devices/pci0000:00/usb1/1-3/1-3:1.2/0003:0B05:1ABE.0007\x00" +
		"ACTION=bind\x00SUBSYSTEM=hid\x00")
	assert.False(t, ueventTouchesHidraw(bind))

	usb := []byte("add@/devices/pci0000:00/usb1/1-3\x00ACTION=add\x00SUBSYSTEM=usb\x00")
	assert.False(t, ueventTouchesHidraw(usb))
}

func TestWatchUeventsTeardown(t *testing.T) {
	// Whether the subscription succeeds or falls back to polling only,
	// the returned closer must come back once the monitor stops.
	m := NewMonitor(nil, time.Hour, slog.New(slog.DiscardHandler))
	stopWatch := m.watchUevents()
	close(m.stop)

	done := make(chan struct{})
	go func() {
		stopWatch()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("uevent watcher did not shut down")
	}
}
