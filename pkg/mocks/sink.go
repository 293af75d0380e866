package mocks

import (
	"sync"

	"github.com/user/camview/pkg/ports"
)

// ViewSink is a mock implementation of ports.ViewSink that records
// every published update.
type ViewSink struct {
	PublishFunc func(update ports.ViewUpdate) error

	mu      sync.Mutex
	Updates []ports.ViewUpdate
}

func (m *ViewSink) Publish(update ports.ViewUpdate) error {
	m.mu.Lock()
	m.Updates = append(m.Updates, update)
	m.mu.Unlock()
	if m.PublishFunc != nil {
		return m.PublishFunc(update)
	}
	return nil
}

// Published returns a snapshot of the recorded updates.
func (m *ViewSink) Published() []ports.ViewUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ports.ViewUpdate, len(m.Updates))
	copy(out, m.Updates)
	return out
}

// Ensure ViewSink implements ports.ViewSink
var _ ports.ViewSink = (*ViewSink)(nil)
