// Package gocvsource provides a frame source backed by an OpenCV
// VideoCapture device via gocv.
package gocvsource

import (
	"errors"
	"fmt"
	"sync"

	"gocv.io/x/gocv"

	"github.com/user/camview/pkg/pipeline"
	"github.com/user/camview/pkg/ports"
)

// Source implements ports.FrameSource over gocv.VideoCapture.
//
// The capture handle and the reusable Mat are guarded by a mutex so a
// late read cannot race a release during the bounded-join shutdown.
type Source struct {
	mu  sync.Mutex
	cam *gocv.VideoCapture
	mat gocv.Mat
}

// New creates an unopened Source.
func New() *Source {
	return &Source{}
}

// Open connects to the capture device with the given index.
func (s *Source) Open(device int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cam != nil {
		return errors.New("source already open")
	}
	cam, err := gocv.VideoCaptureDevice(device)
	if err != nil {
		return fmt.Errorf("open capture device %d: %w", device, err)
	}
	s.cam = cam
	s.mat = gocv.NewMat()
	return nil
}

// IsOpen reports whether the device is connected.
func (s *Source) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cam != nil && s.cam.IsOpened()
}

// ReadFrame grabs the next frame and converts it to an RGB frame. A
// transient miss returns an empty frame with a nil error.
func (s *Source) ReadFrame() (pipeline.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cam == nil {
		return pipeline.Frame{}, errors.New("source not open")
	}
	if ok := s.cam.Read(&s.mat); !ok {
		return pipeline.Frame{}, errors.New("read from capture device")
	}
	if s.mat.Empty() {
		return pipeline.Frame{}, nil
	}

	img, err := s.mat.ToImage()
	if err != nil {
		return pipeline.Frame{}, fmt.Errorf("convert captured frame: %w", err)
	}
	return pipeline.FrameFromImage(img), nil
}

// Release disconnects from the device and frees the capture buffers.
func (s *Source) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cam == nil {
		return nil
	}
	err := s.cam.Close()
	s.mat.Close()
	s.cam = nil
	if err != nil {
		return fmt.Errorf("close capture device: %w", err)
	}
	return nil
}

// Ensure Source implements ports.FrameSource
var _ ports.FrameSource = (*Source)(nil)
