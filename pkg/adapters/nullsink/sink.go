// Package nullsink provides a no-op presentation sink.
package nullsink

import (
	"github.com/user/camview/pkg/ports"
)

// Sink is a no-op implementation of ports.ViewSink.
// It discards every update.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Publish does nothing.
func (s *Sink) Publish(update ports.ViewUpdate) error {
	return nil
}

// Ensure Sink implements ports.ViewSink
var _ ports.ViewSink = (*Sink)(nil)
