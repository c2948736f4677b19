package ally

import (
	"errors"
	"time"

	"github.com/allyctl/allyctl/internal/log"
)

// readyAttempts bounds the probes sent in one readiness handshake.
const readyAttempts = 4

// readyPollDelay separates consecutive readiness probes.
const readyPollDelay = time.Millisecond

// checkReady runs the bounded probe/echo handshake: send the readiness
// probe, read a feature report back and look for the probe command
// echoed in the command byte. Transport errors count as failed
// attempts.
func (d *Device) checkReady() bool {
	buf := make([]byte, FrameLen)
	for attempt := 1; attempt <= readyAttempts; attempt++ {
		log.Trace(d.logger, "readiness probe", "attempt", attempt)
		if err := d.writeFeature("check ready", EncodeCheckReady()); err != nil {
			d.logger.Debug("readiness probe failed", "attempt", attempt, "error", err)
		} else {
			clear(buf)
			buf[0] = ReportID
			if err := d.getFeature("check ready", buf); err != nil {
				d.logger.Debug("readiness echo read failed", "attempt", attempt, "error", err)
			} else if IsReadyEcho(buf) {
				return true
			}
		}
		time.Sleep(readyPollDelay)
	}
	return false
}

// ready gates configuration traffic on the readiness handshake. In
// strict mode an unresponsive MCU aborts the operation; by default the
// miss is logged and the write proceeds, which is how the hardware is
// driven in practice.
func (d *Device) ready(op string) error {
	if d.checkReady() {
		return nil
	}
	if d.strictReady {
		return NewError(KindNotReady, op, errors.New("controller did not acknowledge readiness probe"))
	}
	d.logger.Warn("controller not ready, proceeding anyway", "op", op)
	return nil
}
