package hidio

import (
	"errors"
	"slices"
	"sync"
)

// ErrMockClosed is returned by a Mock after Close.
var ErrMockClosed = errors.New("hidio: mock transport closed")

// Mock is an in-memory Transport for tests. It records every frame
// passed to SendFeature. GetFeature serves queued replies first and
// otherwise echoes the most recently sent frame, which matches the
// controller's command-echo behavior.
type Mock struct {
	mu       sync.Mutex
	attempts int
	sent     [][]byte
	last     []byte
	replies  [][]byte
	sendErr  map[int]error
	getErr   error
	closed   bool
}

func NewMock() *Mock {
	return &Mock{sendErr: make(map[int]error)}
}

// FailSend makes the n-th SendFeature call (0-based, counting failed
// attempts) return err instead of recording the frame.
func (m *Mock) FailSend(n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendErr[n] = err
}

// FailGet makes every subsequent GetFeature call return err.
func (m *Mock) FailGet(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

// QueueReply enqueues a frame served by the next GetFeature call,
// ahead of the default echo behavior.
func (m *Mock) QueueReply(frame []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, slices.Clone(frame))
}

// Sent returns copies of all successfully sent frames in order.
func (m *Mock) Sent() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.sent))
	for i, f := range m.sent {
		out[i] = slices.Clone(f)
	}
	return out
}

// Closed reports whether Close has been called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *Mock) SendFeature(buf []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrMockClosed
	}
	n := m.attempts
	m.attempts++
	if err := m.sendErr[n]; err != nil {
		return err
	}
	cp := slices.Clone(buf)
	m.sent = append(m.sent, cp)
	m.last = cp
	return nil
}

func (m *Mock) GetFeature(buf []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrMockClosed
	}
	if m.getErr != nil {
		return m.getErr
	}
	if len(m.replies) > 0 {
		copy(buf, m.replies[0])
		m.replies = m.replies[1:]
		return nil
	}
	if m.last != nil {
		copy(buf, m.last)
	}
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
