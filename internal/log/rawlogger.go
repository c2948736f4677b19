package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// RawLogger dumps raw feature report frames for wire-level debugging.
// Implementations must be safe for concurrent use.
type RawLogger interface {
	// Enabled reports whether frames are actually written anywhere,
	// letting callers skip formatting work.
	Enabled() bool
	// Frame logs a single report buffer. dir is a short direction tag
	// such as "send" or "recv".
	Frame(dir string, data []byte)
}

// NewRaw returns a RawLogger writing to w. A nil writer yields a no-op
// logger, so call sites never need to nil-check.
func NewRaw(w io.Writer) RawLogger {
	if w == nil {
		return nopRaw{}
	}
	return &rawLogger{w: w}
}

type nopRaw struct{}

func (nopRaw) Enabled() bool        { return false }
func (nopRaw) Frame(string, []byte) {}

type rawLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *rawLogger) Enabled() bool { return true }

func (l *rawLogger) Frame(dir string, data []byte) {
	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02T15:04:05.000000Z07:00"))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("%-4s", dir))
	for i, by := range data {
		if i%32 == 0 {
			b.WriteString("\n  ")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%02x", by))
	}
	b.WriteString("\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, b.String())
}
