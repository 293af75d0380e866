package ports

import (
	"github.com/user/camview/pkg/pipeline"
)

// FrameSource abstracts a live video capture device.
//
// The session opens the source once on start, reads one frame per tick
// from its worker, and releases it exactly once on stop. A transient
// read miss is reported as an empty frame with a nil error; a nil-error
// empty frame skips the tick.
type FrameSource interface {
	// Open connects to the capture device with the given index.
	Open(device int) error

	// IsOpen reports whether the source is currently connected.
	IsOpen() bool

	// ReadFrame acquires the next frame. The returned frame is owned by
	// the caller and does not outlive one tick.
	ReadFrame() (pipeline.Frame, error)

	// Release disconnects from the device and frees its resources.
	Release() error
}
