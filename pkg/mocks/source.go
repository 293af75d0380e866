// Package mocks provides mock implementations for testing.
package mocks

import (
	"sync"

	"github.com/user/camview/pkg/pipeline"
	"github.com/user/camview/pkg/ports"
)

// FrameSource is a mock implementation of ports.FrameSource.
// It tracks open/release counts for lifecycle assertions.
type FrameSource struct {
	OpenFunc      func(device int) error
	ReadFrameFunc func() (pipeline.Frame, error)
	ReleaseFunc   func() error

	mu       sync.Mutex
	open     bool
	Opens    int
	Reads    int
	Releases int
}

func (m *FrameSource) Open(device int) error {
	m.mu.Lock()
	m.Opens++
	m.mu.Unlock()
	if m.OpenFunc != nil {
		if err := m.OpenFunc(device); err != nil {
			return err
		}
	}
	m.mu.Lock()
	m.open = true
	m.mu.Unlock()
	return nil
}

func (m *FrameSource) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *FrameSource) ReadFrame() (pipeline.Frame, error) {
	m.mu.Lock()
	m.Reads++
	m.mu.Unlock()
	if m.ReadFrameFunc != nil {
		return m.ReadFrameFunc()
	}
	return pipeline.NewFrame(4, 4, 3), nil
}

func (m *FrameSource) Release() error {
	m.mu.Lock()
	m.Releases++
	m.open = false
	m.mu.Unlock()
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc()
	}
	return nil
}

// ReadCount returns how many frames have been requested.
func (m *FrameSource) ReadCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Reads
}

// ReleaseCount returns how many times Release was called.
func (m *FrameSource) ReleaseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Releases
}

// Ensure FrameSource implements ports.FrameSource
var _ ports.FrameSource = (*FrameSource)(nil)
