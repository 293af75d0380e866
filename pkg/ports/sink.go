package ports

import (
	"time"
)

// ViewUpdate carries the two encoded images produced by one tick.
type ViewUpdate struct {
	FramePNG     []byte
	HistogramPNG []byte
	Timestamp    time.Time
}

// ViewSink receives encoded images for presentation.
//
// Delivery is fire-and-forget: an error is logged by the session and
// never blocks the next tick.
type ViewSink interface {
	Publish(update ViewUpdate) error
}
