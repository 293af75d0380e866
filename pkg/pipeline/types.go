package pipeline

import (
	"image"
	"image/color"
)

// =============================================================================
// Common Types
// =============================================================================

// Histogram holds 256 intensity bins for one channel plane.
// Invariant: the bin sum equals the pixel count of the source plane.
type Histogram [256]uint32

// Sum returns the total count across all bins.
func (h Histogram) Sum() uint64 {
	var total uint64
	for _, n := range h {
		total += uint64(n)
	}
	return total
}

// =============================================================================
// Overlay Stage Types
// =============================================================================

// OverlayInput contains the target frame and the overlay to composite.
type OverlayInput struct {
	Target  Frame // mutated in place
	Overlay Frame // read-only, shared across ticks
}

// OverlayResult contains the composited frame (same backing buffer as
// the target).
type OverlayResult struct {
	Frame Frame
}

// =============================================================================
// Grayscale Stage Types
// =============================================================================

// GrayscaleInput contains the frame to convert.
type GrayscaleInput struct {
	Frame Frame
}

// GrayscaleResult contains the single-channel frame. Conversion reuses
// the input buffer; an already single-channel input passes through.
type GrayscaleResult struct {
	Frame Frame
}

// =============================================================================
// Histogram Stage Types
// =============================================================================

// HistogramInput contains the processed frame and the rendering theme.
type HistogramInput struct {
	Frame Frame
	Theme HistogramTheme
}

// HistogramTheme defines histogram canvas styling. Every channel is
// drawn with the same ink; there is no per-channel color coding.
type HistogramTheme struct {
	Background color.Color
	Ink        color.Color
}

// DefaultHistogramTheme returns the default dark theme.
func DefaultHistogramTheme() HistogramTheme {
	return HistogramTheme{
		Background: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Ink:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// HistogramResult contains the per-channel histograms and the rendered
// canvas, drawn fresh from the current frame only.
type HistogramResult struct {
	Channels []Histogram
	Canvas   image.Image
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains the frame, or a pre-rendered image such as the
// histogram canvas, to serialize. Image takes precedence when set.
type EncodeInput struct {
	Frame Frame
	Image image.Image
}

// EncodeResult contains the encoded PNG bytes.
type EncodeResult struct {
	Data []byte
}
