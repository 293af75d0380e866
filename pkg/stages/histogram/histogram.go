// Package histogram implements the intensity histogram stage: per-channel
// distribution counting, min-max normalization, and polyline rendering.
package histogram

import (
	"context"
	"fmt"
	"math"

	"github.com/user/camview/pkg/pipeline"
	"github.com/user/camview/pkg/ports"
)

// Canvas geometry. The plot is always rendered on a fresh fixed-size
// canvas; nothing is retained across ticks.
const (
	CanvasWidth  = 150
	CanvasHeight = 150

	bins      = 256
	lineWidth = 2.0
)

// Stage computes per-channel intensity histograms and renders them as
// connected polylines on a fixed-size canvas.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new histogram stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("histogram"),
	}
}

// Execute computes and renders the histogram for the given frame.
func (s *Stage) Execute(ctx context.Context, input pipeline.HistogramInput) (pipeline.HistogramResult, error) {
	frame := input.Frame
	if err := frame.Validate(); err != nil {
		return pipeline.HistogramResult{}, fmt.Errorf("histogram input: %w", err)
	}

	channels := Compute(frame)
	s.logger.Debug("Computed %d channel histograms for %dx%d frame",
		len(channels), frame.Width, frame.Height)

	canvas := s.renderer.CreateCanvas(CanvasWidth, CanvasHeight, input.Theme.Background)

	// binWidth keeps the original round(width/256) mapping. With a
	// 150-wide canvas this truncates to 1 px bins and the tail of the
	// plot falls off the right edge; the canvas clips it.
	binWidth := int(math.Round(float64(CanvasWidth) / float64(bins)))

	for _, hist := range channels {
		heights := normalize(hist, CanvasHeight)
		for i := 1; i < bins; i++ {
			canvas.DrawLine(
				binWidth*(i-1), CanvasHeight-heights[i-1],
				binWidth*i, CanvasHeight-heights[i],
				input.Theme.Ink, lineWidth,
			)
		}
	}

	return pipeline.HistogramResult{
		Channels: channels,
		Canvas:   canvas.ToImage(),
	}, nil
}

// Compute splits the frame into channel planes and counts a 256-bin
// histogram per plane: unweighted, unmasked, full range.
func Compute(frame pipeline.Frame) []pipeline.Histogram {
	channels := make([]pipeline.Histogram, frame.Channels)
	for i, v := range frame.Pix {
		channels[i%frame.Channels][v]++
	}
	return channels
}

// normalize scales the histogram so its bins span [0, max], mapping the
// largest bin to max (min-max normalization, independent per channel).
// A uniform histogram normalizes to all zeros. Values are rounded and
// clipped to [0, max].
func normalize(hist pipeline.Histogram, max int) [bins]int {
	var heights [bins]int

	lo, hi := hist[0], hist[0]
	for _, n := range hist[1:] {
		if n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	if hi == lo {
		return heights
	}

	scale := float64(max) / float64(hi-lo)
	for i, n := range hist {
		v := int(math.Round(float64(n-lo) * scale))
		if v < 0 {
			v = 0
		}
		if v > max {
			v = max
		}
		heights[i] = v
	}
	return heights
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.HistogramInput, pipeline.HistogramResult] = (*Stage)(nil)
