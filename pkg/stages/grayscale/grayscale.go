// Package grayscale implements the color-to-intensity conversion stage.
package grayscale

import (
	"context"
	"fmt"

	"github.com/user/camview/pkg/pipeline"
	"github.com/user/camview/pkg/ports"
)

// Stage converts a 3-channel frame to a single-channel intensity frame
// using a Rec.601 luma-weighted reduction. Conversion happens after
// compositing, so the overlay is visible in grayscale too.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new grayscale stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("grayscale"),
	}
}

// Execute converts the frame in place, reusing the front of its pixel
// buffer. A single-channel input passes through unchanged.
func (s *Stage) Execute(ctx context.Context, input pipeline.GrayscaleInput) (pipeline.GrayscaleResult, error) {
	frame := input.Frame

	if err := frame.Validate(); err != nil {
		return pipeline.GrayscaleResult{}, fmt.Errorf("grayscale input: %w", err)
	}
	if frame.Channels == 1 {
		return pipeline.GrayscaleResult{Frame: frame}, nil
	}

	s.logger.Debug("Converting %dx%d frame to grayscale", frame.Width, frame.Height)

	// In-place reduction: the write index never overtakes the read index.
	n := frame.Width * frame.Height
	for i := 0; i < n; i++ {
		frame.Pix[i] = pipeline.Luma(frame.Pix[i*3], frame.Pix[i*3+1], frame.Pix[i*3+2])
	}
	frame.Pix = frame.Pix[:n]
	frame.Channels = 1

	return pipeline.GrayscaleResult{Frame: frame}, nil
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.GrayscaleInput, pipeline.GrayscaleResult] = (*Stage)(nil)
