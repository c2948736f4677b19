//go:build !linux

package hidio

// watchUevents has no platform hotplug source off Linux; the ticker
// alone drives polling.
func (m *Monitor) watchUevents() func() {
	return func() {}
}
