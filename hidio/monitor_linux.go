//go:build linux

package hidio

import (
	"bytes"

	"golang.org/x/sys/unix"
)

// watchUevents subscribes to kernel uevents and kicks an immediate poll
// whenever a hidraw node is added or removed. Failures fall back to
// plain interval polling.
func (m *Monitor) watchUevents() func() {
	fd, err := unix.Socket(unix.AF_NETLINK, unix.SOCK_RAW|unix.SOCK_CLOEXEC, unix.NETLINK_KOBJECT_UEVENT)
	if err != nil {
		m.logger.Debug("uevent socket unavailable, polling only", "error", err)
		return func() {}
	}
	sa := &unix.SockaddrNetlink{Family: unix.AF_NETLINK, Groups: 1}
	if err := unix.Bind(fd, sa); err != nil {
		m.logger.Debug("uevent bind failed, polling only", "error", err)
		_ = unix.Close(fd)
		return func() {}
	}

	// A receive timeout lets the reader notice Close without needing to
	// interrupt a blocked recvfrom. Without it the reader could block
	// forever, so a failure here means polling only.
	tv := unix.Timeval{Usec: 500000}
	if err := unix.SetsockoptTimeval(fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv); err != nil {
		m.logger.Debug("uevent timeout setup failed, polling only", "error", err)
		_ = unix.Close(fd)
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 4096)
		for {
			select {
			case <-m.stop:
				return
			default:
			}
			n, _, err := unix.Recvfrom(fd, buf, 0)
			if err != nil {
				if err == unix.EAGAIN || err == unix.EINTR {
					continue
				}
				m.logger.Debug("uevent read failed, polling only", "error", err)
				return
			}
			if ueventTouchesHidraw(buf[:n]) {
				select {
				case m.wake <- struct{}{}:
				default:
				}
			}
		}
	}()

	return func() {
		<-done
		_ = unix.Close(fd)
	}
}

// ueventTouchesHidraw reports whether a uevent datagram describes an
// add or remove on the hidraw subsystem.
func ueventTouchesHidraw(msg []byte) bool {
	if !bytes.HasPrefix(msg, []byte("add@")) && !bytes.HasPrefix(msg, []byte("remove@")) {
		return false
	}
	return bytes.Contains(msg, []byte("SUBSYSTEM=hidraw"))
}
