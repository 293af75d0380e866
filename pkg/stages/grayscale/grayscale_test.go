package grayscale

import (
	"context"
	"testing"

	"github.com/user/camview/pkg/adapters/logger"
	"github.com/user/camview/pkg/pipeline"
)

func TestStage_Execute_UniformColor(t *testing.T) {
	stage := NewStage(logger.NewNoop())

	f := pipeline.NewFrame(4, 3, 3)
	for i := 0; i < 4*3; i++ {
		f.Pix[i*3], f.Pix[i*3+1], f.Pix[i*3+2] = 10, 20, 30
	}

	result, err := stage.Execute(context.Background(), pipeline.GrayscaleInput{Frame: f})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := result.Frame
	if out.Channels != 1 {
		t.Fatalf("expected 1 channel, got %d", out.Channels)
	}
	if out.Width != 4 || out.Height != 3 {
		t.Fatalf("dimensions changed: %dx%d", out.Width, out.Height)
	}
	if len(out.Pix) != 4*3 {
		t.Fatalf("buffer length %d, want %d", len(out.Pix), 4*3)
	}

	want := pipeline.Luma(10, 20, 30)
	for i, v := range out.Pix {
		if v != want {
			t.Fatalf("pixel %d: got %d, want uniform %d", i, v, want)
		}
	}
}

func TestStage_Execute_GrayPassthrough(t *testing.T) {
	stage := NewStage(logger.NewNoop())

	f := pipeline.NewFrame(2, 2, 1)
	for i := range f.Pix {
		f.Pix[i] = byte(i)
	}

	result, err := stage.Execute(context.Background(), pipeline.GrayscaleInput{Frame: f})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Frame.Channels != 1 || len(result.Frame.Pix) != 4 {
		t.Fatalf("single-channel input must pass through unchanged")
	}
	for i := range f.Pix {
		if result.Frame.Pix[i] != byte(i) {
			t.Fatalf("pixel %d changed", i)
		}
	}
}

func TestStage_Execute_InvalidFrame(t *testing.T) {
	stage := NewStage(logger.NewNoop())

	bad := pipeline.Frame{Pix: make([]byte, 5), Width: 2, Height: 2, Channels: 3}
	if _, err := stage.Execute(context.Background(), pipeline.GrayscaleInput{Frame: bad}); err == nil {
		t.Fatal("expected error for inconsistent frame")
	}
}
