// Package encode implements the display encoding stage.
package encode

import (
	"context"
	"fmt"

	"github.com/user/camview/pkg/pipeline"
	"github.com/user/camview/pkg/ports"
)

// Stage serializes a processed frame, or a pre-rendered image such as
// the histogram canvas, into a lossless PNG byte buffer.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("encode"),
	}
}

// Execute encodes the input as PNG. Any failure surfaces as
// pipeline.ErrEncodeFailed; the session drops the tick without retry.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	img := input.Image
	if img == nil {
		if err := input.Frame.Validate(); err != nil {
			return pipeline.EncodeResult{}, fmt.Errorf("%w: %v", pipeline.ErrEncodeFailed, err)
		}
		img = input.Frame.ToImage()
	}

	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return pipeline.EncodeResult{}, fmt.Errorf("%w: %v", pipeline.ErrEncodeFailed, err)
	}

	s.logger.Debug("Encoded %d PNG bytes", len(data))
	return pipeline.EncodeResult{Data: data}, nil
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult] = (*Stage)(nil)
