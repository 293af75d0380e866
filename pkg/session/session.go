// Package session drives the per-frame pipeline: it owns the capture
// session lifecycle, the periodic acquisition worker, and the shared
// toggles read by the worker and written by the control surface.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/user/camview/pkg/pipeline"
	"github.com/user/camview/pkg/ports"
	"github.com/user/camview/pkg/stages/encode"
	"github.com/user/camview/pkg/stages/grayscale"
	"github.com/user/camview/pkg/stages/histogram"
	"github.com/user/camview/pkg/stages/overlay"
)

// State is the session lifecycle state.
type State int

const (
	StateInactive State = iota
	StateStarting
	StateActive
	StateStopping
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateStarting:
		return "starting"
	case StateActive:
		return "active"
	case StateStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// DefaultInterval is the acquisition period: one frame every 33 ms,
// roughly 30 frames per second.
const DefaultInterval = 33 * time.Millisecond

// Config contains session parameters.
type Config struct {
	Device    int           // capture device index
	Interval  time.Duration // acquisition period (default 33 ms)
	Grayscale bool          // start with grayscale conversion enabled
	Theme     pipeline.HistogramTheme
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Device:   0,
		Interval: DefaultInterval,
		Theme:    pipeline.DefaultHistogramTheme(),
	}
}

// Session runs the acquisition pipeline on a fixed period.
//
// Two threads of control touch a session: the control surface
// (Start/Stop and the toggles) and the single acquisition worker. All
// shared state is guarded by one mutex; the overlay reference is
// published under it and treated as immutable afterwards.
type Session struct {
	source ports.FrameSource
	loader ports.AssetLoader
	sink   ports.ViewSink
	logger ports.Logger

	overlayStage   pipeline.Stage[pipeline.OverlayInput, pipeline.OverlayResult]
	grayscaleStage pipeline.Stage[pipeline.GrayscaleInput, pipeline.GrayscaleResult]
	histogramStage pipeline.Stage[pipeline.HistogramInput, pipeline.HistogramResult]
	encodeStage    pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]

	device   int
	interval time.Duration
	theme    pipeline.HistogramTheme

	mu        sync.Mutex
	state     State
	grayscale bool
	overlay   *pipeline.Frame // nil when compositing is disabled
	done      chan struct{}
	exited    chan struct{}
}

// New creates an inactive session wired to the given adapters.
func New(
	cfg Config,
	source ports.FrameSource,
	loader ports.AssetLoader,
	sink ports.ViewSink,
	renderer ports.Renderer,
	logger ports.Logger,
) *Session {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Theme.Background == nil || cfg.Theme.Ink == nil {
		cfg.Theme = pipeline.DefaultHistogramTheme()
	}
	return &Session{
		source:         source,
		loader:         loader,
		sink:           sink,
		logger:         logger.WithComponent("session"),
		overlayStage:   overlay.NewStage(logger),
		grayscaleStage: grayscale.NewStage(logger),
		histogramStage: histogram.NewStage(renderer, logger),
		encodeStage:    encode.NewStage(renderer, logger),
		device:         cfg.Device,
		interval:       cfg.Interval,
		theme:          cfg.Theme,
		state:          StateInactive,
		grayscale:      cfg.Grayscale,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetGrayscale toggles grayscale conversion. Takes effect on the next tick.
func (s *Session) SetGrayscale(enabled bool) {
	s.mu.Lock()
	s.grayscale = enabled
	s.mu.Unlock()
}

// EnableOverlay loads the overlay asset once and enables compositing.
// A load failure leaves compositing disabled and is not fatal.
func (s *Session) EnableOverlay(path string) error {
	frame, err := s.loader.LoadOverlay(path)
	if err != nil {
		s.logger.Warn("Overlay %s could not be loaded, compositing stays disabled: %s", path, err)
		return fmt.Errorf("load overlay %s: %w", path, err)
	}
	s.mu.Lock()
	s.overlay = &frame
	s.mu.Unlock()
	s.logger.Info("Overlay enabled: %s (%dx%d)", path, frame.Width, frame.Height)
	return nil
}

// DisableOverlay turns off compositing. Takes effect on the next tick.
func (s *Session) DisableOverlay() {
	s.mu.Lock()
	s.overlay = nil
	s.mu.Unlock()
}

// Start opens the source and spawns the acquisition worker. Starting a
// session that is not inactive is an error. If the source cannot be
// opened the session stays inactive, no worker is spawned, and the
// error wraps pipeline.ErrSourceUnavailable.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateInactive {
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("session is %s, not inactive", state)
	}
	s.state = StateStarting
	s.mu.Unlock()

	if err := s.source.Open(s.device); err != nil {
		s.mu.Lock()
		s.state = StateInactive
		s.mu.Unlock()
		s.logger.Error("Impossible to open the camera connection: %s", err)
		return fmt.Errorf("%w: open device %d: %v", pipeline.ErrSourceUnavailable, s.device, err)
	}
	if !s.source.IsOpen() {
		s.mu.Lock()
		s.state = StateInactive
		s.mu.Unlock()
		s.logger.Error("Impossible to open the camera connection")
		return fmt.Errorf("%w: device %d", pipeline.ErrSourceUnavailable, s.device)
	}

	s.mu.Lock()
	s.state = StateActive
	s.done = make(chan struct{})
	s.exited = make(chan struct{})
	done, exited := s.done, s.exited
	s.mu.Unlock()

	s.logger.Info("Session started on device %d, one frame every %s", s.device, s.interval)
	go s.run(ctx, done, exited)
	return nil
}

// Stop signals the worker to cease, waits up to one period for the
// in-flight tick, then releases the source exactly once. If the worker
// does not finish within the bound, the release proceeds anyway and the
// returned error wraps pipeline.ErrShutdownTimeout. Stopping an
// inactive session is a no-op.
func (s *Session) Stop() error {
	s.mu.Lock()
	if s.state != StateActive {
		s.mu.Unlock()
		return nil
	}
	s.state = StateStopping
	done, exited := s.done, s.exited
	s.mu.Unlock()

	close(done)

	var timedOut bool
	select {
	case <-exited:
	case <-time.After(s.interval):
		timedOut = true
		s.logger.Warn("Exception in stopping the frame capture, trying to release the camera now")
	}

	if err := s.source.Release(); err != nil {
		s.logger.Warn("Releasing the camera failed: %s", err)
	}

	s.mu.Lock()
	s.overlay = nil
	s.state = StateInactive
	s.mu.Unlock()

	s.logger.Info("Session stopped")
	if timedOut {
		return fmt.Errorf("%w (%s)", pipeline.ErrShutdownTimeout, s.interval)
	}
	return nil
}

// RunOnce executes a single pipeline pass synchronously: open, one
// tick, release. The session must be inactive.
func (s *Session) RunOnce(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	// The worker runs its first tick immediately; give it one period
	// and shut down.
	select {
	case <-time.After(s.interval):
	case <-ctx.Done():
	}
	return s.Stop()
}

// run is the acquisition worker. The first tick fires immediately, then
// one per interval. Ticks never overlap: the single worker degrades to
// fixed-delay when a tick overruns the period.
func (s *Session) run(ctx context.Context, done, exited chan struct{}) {
	defer close(exited)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs one atomic pipeline pass: acquire, process, hand off. Any
// error logs and skips the tick; only Stop ends the worker.
func (s *Session) tick(ctx context.Context) {
	s.mu.Lock()
	gray := s.grayscale
	ov := s.overlay
	s.mu.Unlock()

	if !s.source.IsOpen() {
		return
	}

	frame, err := s.source.ReadFrame()
	if err != nil {
		s.logger.Warn("Exception during the frame elaboration: %s", err)
		return
	}
	if frame.Empty() {
		return
	}

	if ov != nil {
		result, err := s.overlayStage.Execute(ctx, pipeline.OverlayInput{Target: frame, Overlay: *ov})
		if err != nil {
			s.logger.Warn("Exception during the frame elaboration: %s", err)
			return
		}
		frame = result.Frame
	}

	if gray {
		result, err := s.grayscaleStage.Execute(ctx, pipeline.GrayscaleInput{Frame: frame})
		if err != nil {
			s.logger.Warn("Exception during the frame elaboration: %s", err)
			return
		}
		frame = result.Frame
	}

	hist, err := s.histogramStage.Execute(ctx, pipeline.HistogramInput{Frame: frame, Theme: s.theme})
	if err != nil {
		s.logger.Warn("Exception during the frame elaboration: %s", err)
		return
	}

	encodedFrame, err := s.encodeStage.Execute(ctx, pipeline.EncodeInput{Frame: frame})
	if err != nil {
		s.logger.Warn("Dropping frame: %s", err)
		return
	}
	encodedHist, err := s.encodeStage.Execute(ctx, pipeline.EncodeInput{Image: hist.Canvas})
	if err != nil {
		s.logger.Warn("Dropping frame: %s", err)
		return
	}

	update := ports.ViewUpdate{
		FramePNG:     encodedFrame.Data,
		HistogramPNG: encodedHist.Data,
		Timestamp:    time.Now(),
	}
	if err := s.sink.Publish(update); err != nil {
		// Fire and forget: a busy presentation never blocks the next tick.
		s.logger.Warn("Presentation sink rejected the update: %s", err)
	}
}
