// Package osassets loads fixed image assets from disk.
package osassets

import (
	"fmt"

	"github.com/user/camview/pkg/pipeline"
	"github.com/user/camview/pkg/ports"
)

// Loader implements ports.AssetLoader over the filesystem and renderer
// ports. PNG and JPEG assets are auto-detected.
type Loader struct {
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new Loader.
func New(fs ports.FileSystem, renderer ports.Renderer) *Loader {
	return &Loader{
		fs:       fs,
		renderer: renderer,
	}
}

// LoadOverlay reads and decodes the overlay image into a frame.
func (l *Loader) LoadOverlay(path string) (pipeline.Frame, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return pipeline.Frame{}, fmt.Errorf("read overlay: %w", err)
	}

	// Logos come as PNG or JPEG; let the decoder sniff the data.
	img, err := l.renderer.DecodeImage(data, ports.FormatAuto)
	if err != nil {
		return pipeline.Frame{}, fmt.Errorf("decode overlay %s: %w", path, err)
	}

	frame := pipeline.FrameFromImage(img)
	if err := frame.Validate(); err != nil {
		return pipeline.Frame{}, fmt.Errorf("overlay %s: %w", path, err)
	}
	return frame, nil
}

// Ensure Loader implements ports.AssetLoader
var _ ports.AssetLoader = (*Loader)(nil)
