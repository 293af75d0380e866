// Package overlay implements the logo compositing stage.
package overlay

import (
	"context"
	"fmt"

	"github.com/user/camview/pkg/pipeline"
	"github.com/user/camview/pkg/ports"
)

// Stage composites a fixed overlay onto a frame with a masked copy.
//
// The overlay is anchored at the bottom-right corner of the target. An
// overlay pixel replaces the target pixel only when at least one of its
// channel values is non-zero; all-zero pixels are transparent. Color
// values are replaced, never mixed.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new overlay stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("overlay"),
	}
}

// Execute composites the overlay onto the target frame in place.
// The overlay must fit inside the target on both axes; a larger overlay
// raises pipeline.ErrOverlayTooLarge before any pixel is written.
func (s *Stage) Execute(ctx context.Context, input pipeline.OverlayInput) (pipeline.OverlayResult, error) {
	target := input.Target
	ov := input.Overlay

	if err := target.Validate(); err != nil {
		return pipeline.OverlayResult{}, fmt.Errorf("target frame: %w", err)
	}
	if err := ov.Validate(); err != nil {
		return pipeline.OverlayResult{}, fmt.Errorf("overlay frame: %w", err)
	}
	if ov.Width > target.Width || ov.Height > target.Height {
		return pipeline.OverlayResult{}, fmt.Errorf("%w: overlay %dx%d, frame %dx%d",
			pipeline.ErrOverlayTooLarge, ov.Width, ov.Height, target.Width, target.Height)
	}

	s.logger.Debug("Compositing %dx%d overlay onto %dx%d frame",
		ov.Width, ov.Height, target.Width, target.Height)

	// Bottom-right anchor.
	originX := target.Width - ov.Width
	originY := target.Height - ov.Height

	for y := 0; y < ov.Height; y++ {
		for x := 0; x < ov.Width; x++ {
			src := ov.PixOffset(x, y)
			if !masked(ov.Pix[src : src+ov.Channels]) {
				continue
			}
			dst := target.PixOffset(originX+x, originY+y)
			copyPixel(target.Pix[dst:dst+target.Channels], ov.Pix[src:src+ov.Channels])
		}
	}

	return pipeline.OverlayResult{Frame: target}, nil
}

// masked reports whether the overlay pixel participates in the copy.
// The overlay acts as its own mask: any non-zero channel passes.
func masked(px []byte) bool {
	for _, v := range px {
		if v != 0 {
			return true
		}
	}
	return false
}

// copyPixel writes a source pixel into the destination, adapting the
// channel count when overlay and target disagree.
func copyPixel(dst, src []byte) {
	switch {
	case len(dst) == len(src):
		copy(dst, src)
	case len(dst) == 1:
		// Color overlay on an intensity frame: reduce with Rec.601 luma.
		dst[0] = pipeline.Luma(src[0], src[1], src[2])
	default:
		// Intensity overlay on a color frame: replicate.
		dst[0], dst[1], dst[2] = src[0], src[0], src[0]
	}
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.OverlayInput, pipeline.OverlayResult] = (*Stage)(nil)
