package ally

import (
	"log/slog"
	"sync"
)

// ledWorker owns all LED traffic. RGB and brightness updates land in a
// single pending slot with last-writer-wins semantics and a worker
// goroutine writes them out, so a burst of updates collapses into the
// newest state instead of queueing a packet per call.
type ledWorker struct {
	send   func(op string, buf []byte) error
	logger *slog.Logger

	mu   sync.Mutex
	cond *sync.Cond

	// pending state, guarded by mu
	updateRGB    bool
	r, g, b      byte
	updateBright bool
	brightness   byte

	busy    bool
	removed bool

	kick chan struct{}
	done chan struct{}
}

func newLEDWorker(send func(op string, buf []byte) error, logger *slog.Logger) *ledWorker {
	w := &ledWorker{
		send:   send,
		logger: logger,
		kick:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	go w.loop()
	return w
}

// SetRGB schedules a gamepad RGB update. The newest color wins when
// updates outpace the hardware.
func (w *ledWorker) SetRGB(r, g, b byte) {
	w.mu.Lock()
	if w.removed {
		w.mu.Unlock()
		return
	}
	w.updateRGB = true
	w.r, w.g, w.b = r, g, b
	w.mu.Unlock()
	w.wake()
}

// SetBrightness schedules a keyboard backlight update.
func (w *ledWorker) SetBrightness(level byte) {
	w.mu.Lock()
	if w.removed {
		w.mu.Unlock()
		return
	}
	w.updateBright = true
	w.brightness = level
	w.mu.Unlock()
	w.wake()
}

func (w *ledWorker) wake() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Flush blocks until no update is pending and no write is in flight.
// It returns immediately once the worker is closed.
func (w *ledWorker) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for !w.removed && (w.updateRGB || w.updateBright || w.busy) {
		w.cond.Wait()
	}
}

// Close cancels pending updates, waits for any in-flight write and
// stops the worker. No LED write is issued after Close returns.
func (w *ledWorker) Close() {
	w.mu.Lock()
	if w.removed {
		w.mu.Unlock()
		<-w.done
		return
	}
	w.removed = true
	w.updateRGB = false
	w.updateBright = false
	w.cond.Broadcast()
	w.mu.Unlock()
	w.wake()
	<-w.done
}

func (w *ledWorker) loop() {
	defer close(w.done)
	for range w.kick {
		if w.drain() {
			return
		}
	}
}

// drain writes out pending updates until none remain, reporting
// whether the worker should stop. The pending flags are cleared before
// the write so updates arriving mid-write stay pending for the next
// round.
func (w *ledWorker) drain() (stop bool) {
	for {
		w.mu.Lock()
		if w.removed {
			w.mu.Unlock()
			return true
		}
		var buf []byte
		var op string
		switch {
		case w.updateRGB:
			w.updateRGB = false
			op = "set leds"
			buf = EncodeLEDs(w.r, w.g, w.b)
		case w.updateBright:
			w.updateBright = false
			op = "set brightness"
			buf = EncodeBrightness(w.brightness)
		default:
			w.cond.Broadcast()
			w.mu.Unlock()
			return false
		}
		w.busy = true
		w.mu.Unlock()

		if err := w.send(op, buf); err != nil {
			w.logger.Debug("led write failed", "op", op, "error", err)
		}

		w.mu.Lock()
		w.busy = false
		w.cond.Broadcast()
		w.mu.Unlock()
	}
}

// SetRGB schedules a gamepad RGB update on the LED worker. The same
// color is applied to all four LED zones.
func (d *Device) SetRGB(r, g, b byte) {
	d.leds.SetRGB(r, g, b)
}

// SetBrightness schedules a keyboard backlight update, level 0 (off)
// to MaxBrightness.
func (d *Device) SetBrightness(level byte) error {
	if level > MaxBrightness {
		return Validationf("set brightness", "level %d exceeds %d", level, MaxBrightness)
	}
	d.leds.SetBrightness(level)
	return nil
}

// FlushLEDs blocks until scheduled LED updates have been written out.
func (d *Device) FlushLEDs() {
	d.leds.Flush()
}
