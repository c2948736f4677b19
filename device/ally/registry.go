package ally

import (
	"slices"
	"sync"

	"golang.org/x/exp/maps"
)

// Registry tracks open Devices by HID path. Long-running consumers use
// it to keep hotplug arrivals and departures straight when more than
// one controller interface comes and goes.
type Registry struct {
	mu      sync.RWMutex
	devices map[string]*Device
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{devices: make(map[string]*Device)}
}

// Add registers a device under its HID path, replacing and returning
// any previous entry so the caller can close it.
func (r *Registry) Add(path string, d *Device) (replaced *Device) {
	r.mu.Lock()
	defer r.mu.Unlock()
	replaced = r.devices[path]
	r.devices[path] = d
	return replaced
}

// Get returns the device registered under path.
func (r *Registry) Get(path string) (*Device, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.devices[path]
	return d, ok
}

// Remove unregisters and returns the device under path, nil when none
// is registered. Closing it is the caller's job.
func (r *Registry) Remove(path string) *Device {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.devices[path]
	delete(r.devices, path)
	return d
}

// Paths returns the registered HID paths, sorted.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	paths := maps.Keys(r.devices)
	slices.Sort(paths)
	return paths
}

// Len returns the number of registered devices.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}

// Close closes every registered device and empties the registry. The
// first close error is returned.
func (r *Registry) Close() error {
	r.mu.Lock()
	devices := r.devices
	r.devices = make(map[string]*Device)
	r.mu.Unlock()

	var firstErr error
	for _, d := range devices {
		if err := d.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
