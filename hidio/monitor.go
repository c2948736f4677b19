package hidio

import (
	"log/slog"
	"time"
)

// EventKind discriminates Monitor events.
type EventKind int

const (
	// Arrived is emitted when a matching interface appears, including
	// interfaces already present on the first poll.
	Arrived EventKind = iota
	// Departed is emitted when a previously seen interface disappears.
	Departed
)

func (k EventKind) String() string {
	switch k {
	case Arrived:
		return "arrived"
	case Departed:
		return "departed"
	default:
		return "unknown"
	}
}

// Event is a single hotplug observation.
type Event struct {
	Kind EventKind
	Info DeviceInfo
}

// Monitor watches the HID enumeration for interfaces accepted by a
// match predicate and emits arrival/departure events. hidapi exposes no
// portable hotplug callback, so the monitor diffs enumerations on a
// fixed interval; on Linux a netlink uevent subscription kicks an
// immediate poll so hotplug surfaces ahead of the next tick.
type Monitor struct {
	match    func(DeviceInfo) bool
	interval time.Duration
	logger   *slog.Logger

	events chan Event
	wake   chan struct{}
	stop   chan struct{}
	done   chan struct{}
	known  map[string]DeviceInfo
}

// NewMonitor creates a Monitor; Start must be called to begin polling.
func NewMonitor(match func(DeviceInfo) bool, interval time.Duration, logger *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Monitor{
		match:    match,
		interval: interval,
		logger:   logger,
		events:   make(chan Event, 8),
		wake:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		known:    make(map[string]DeviceInfo),
	}
}

// Events returns the channel hotplug events are delivered on.
func (m *Monitor) Events() <-chan Event {
	return m.events
}

// Start launches the polling loop. The first poll runs immediately so
// already-connected devices surface without waiting an interval.
func (m *Monitor) Start() {
	go m.loop()
}

// Close stops the polling loop and waits for it to exit.
func (m *Monitor) Close() {
	close(m.stop)
	<-m.done
}

func (m *Monitor) loop() {
	defer close(m.done)

	stopWake := m.watchUevents()
	defer stopWake()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.poll()
	for {
		select {
		case <-m.stop:
			return
		case <-m.wake:
			m.poll()
		case <-ticker.C:
			m.poll()
		}
	}
}

func (m *Monitor) poll() {
	infos, err := Enumerate(0, 0)
	if err != nil {
		m.logger.Warn("hid enumeration failed", "error", err)
		return
	}

	seen := make(map[string]DeviceInfo)
	for _, info := range infos {
		if m.match(info) {
			seen[info.Path] = info
		}
	}

	for path, info := range seen {
		if _, ok := m.known[path]; !ok {
			m.emit(Event{Kind: Arrived, Info: info})
		}
	}
	for path, info := range m.known {
		if _, ok := seen[path]; !ok {
			m.emit(Event{Kind: Departed, Info: info})
		}
	}
	m.known = seen
}

func (m *Monitor) emit(ev Event) {
	select {
	case m.events <- ev:
	case <-m.stop:
	}
}
