package osassets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/user/camview/pkg/adapters/ggrenderer"
	"github.com/user/camview/pkg/mocks"
)

func TestLoader_LoadOverlay(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	fs := mocks.NewFileSystem()
	fs.Files["logo.png"] = buf.Bytes()

	loader := New(fs, ggrenderer.New())
	frame, err := loader.LoadOverlay("logo.png")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if frame.Width != 3 || frame.Height != 2 || frame.Channels != 3 {
		t.Fatalf("unexpected geometry %dx%dx%d", frame.Width, frame.Height, frame.Channels)
	}
	if frame.Pix[0] != 200 || frame.Pix[1] != 100 || frame.Pix[2] != 50 {
		t.Errorf("first pixel %v, want [200 100 50]", frame.Pix[:3])
	}
}

func TestLoader_LoadOverlay_MissingFile(t *testing.T) {
	loader := New(mocks.NewFileSystem(), ggrenderer.New())
	if _, err := loader.LoadOverlay("missing.png"); err == nil {
		t.Fatal("expected error for missing asset")
	}
}

func TestLoader_LoadOverlay_CorruptData(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.Files["bad.png"] = []byte("not an image")

	loader := New(fs, ggrenderer.New())
	if _, err := loader.LoadOverlay("bad.png"); err == nil {
		t.Fatal("expected error for corrupt asset")
	}
}
