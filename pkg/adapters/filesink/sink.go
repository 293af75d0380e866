// Package filesink provides a presentation sink that writes the encoded
// images to files, so any image viewer can act as the display.
package filesink

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/user/camview/pkg/ports"
)

// Sink writes each update to frame.png and histogram.png under the
// base directory, overwriting the previous tick. With KeepHistory it
// additionally writes numbered copies of every frame.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer

	// FitWidth scales frames wider than this down to it, preserving
	// the aspect ratio. Zero disables scaling. Mirrors the fixed
	// presentation width of the display widget this sink stands in for.
	FitWidth int

	// KeepHistory also writes frames/frame-NNNN.png per tick.
	KeepHistory bool

	mu    sync.Mutex
	count int
}

// New creates a new file sink rooted at baseDir.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Publish writes the two encoded images of one tick.
func (s *Sink) Publish(update ports.ViewUpdate) error {
	framePNG, err := s.fitFrame(update.FramePNG)
	if err != nil {
		return err
	}

	if err := s.fs.WriteFile(filepath.Join(s.baseDir, "frame.png"), framePNG); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if err := s.fs.WriteFile(filepath.Join(s.baseDir, "histogram.png"), update.HistogramPNG); err != nil {
		return fmt.Errorf("write histogram: %w", err)
	}

	if s.KeepHistory {
		s.mu.Lock()
		n := s.count
		s.count++
		s.mu.Unlock()

		path := filepath.Join(s.baseDir, "frames", fmt.Sprintf("frame-%04d.png", n))
		if err := s.fs.WriteFile(path, framePNG); err != nil {
			return fmt.Errorf("write frame history: %w", err)
		}
	}
	return nil
}

// fitFrame scales the frame down to FitWidth when it is wider.
func (s *Sink) fitFrame(data []byte) ([]byte, error) {
	if s.FitWidth <= 0 {
		return data, nil
	}
	img, err := s.renderer.DecodeImage(data, ports.FormatPNG)
	if err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= s.FitWidth {
		return data, nil
	}
	height := bounds.Dy() * s.FitWidth / bounds.Dx()
	img = s.renderer.ResizeImage(img, s.FitWidth, height)
	return s.renderer.EncodeImage(img, ports.FormatPNG, 0)
}

// Ensure Sink implements ports.ViewSink
var _ ports.ViewSink = (*Sink)(nil)
