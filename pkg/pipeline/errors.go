package pipeline

import "errors"

// Error conditions surfaced by the pipeline and the session lifecycle.
// Callers match them with errors.Is; stages wrap them with context.
var (
	// ErrSourceUnavailable indicates the video source could not be opened
	// or has gone away. The session stays (or becomes) inactive.
	ErrSourceUnavailable = errors.New("video source unavailable")

	// ErrOverlayTooLarge indicates the overlay exceeds the target frame
	// in at least one dimension. Raised before any pixel is written.
	ErrOverlayTooLarge = errors.New("overlay exceeds frame bounds")

	// ErrEncodeFailed indicates a frame could not be encoded. The tick
	// is dropped, not retried.
	ErrEncodeFailed = errors.New("frame encode failed")

	// ErrShutdownTimeout indicates the worker did not finish its
	// in-flight tick within one period during Stop.
	ErrShutdownTimeout = errors.New("worker did not stop within one period")
)
