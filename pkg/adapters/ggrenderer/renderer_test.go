package ggrenderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/camview/pkg/ports"
)

func TestRenderer_CreateCanvas(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(150, 150, color.Black)
	img := canvas.ToImage()
	if img.Bounds().Dx() != 150 || img.Bounds().Dy() != 150 {
		t.Errorf("canvas is %dx%d, want 150x150", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// The background fill must cover the whole canvas.
	r8, g8, b8, _ := img.At(75, 75).RGBA()
	if r8 != 0 || g8 != 0 || b8 != 0 {
		t.Errorf("background pixel not black: %v", img.At(75, 75))
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(100, 100, color.Black)
	canvas.DrawLine(0, 50, 100, 50, color.White, 2)

	img := canvas.ToImage()
	c, _, _, _ := img.At(50, 50).RGBA()
	if c == 0 {
		t.Error("line left no ink at its midpoint")
	}
	c, _, _, _ = img.At(50, 10).RGBA()
	if c != 0 {
		t.Error("ink found far away from the line")
	}
}

func TestRenderer_EncodeDecodePNG(t *testing.T) {
	r := New()

	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = byte(i)
	}
	// PNG drops nothing, but keep the fixture opaque like real frames.
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
	}

	data, err := r.EncodeImage(src, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	img, err := r.DecodeImage(data, ports.FormatPNG)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			wr, wg, wb, _ := src.At(x, y).RGBA()
			gr, gg_, gb, _ := img.At(x, y).RGBA()
			if wr != gr || wg != gg_ || wb != gb {
				t.Fatalf("pixel (%d,%d) changed in PNG round trip", x, y)
			}
		}
	}
}

func TestRenderer_EncodeDecodeJPEG(t *testing.T) {
	r := New()

	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	data, err := r.EncodeImage(src, ports.FormatJPEG, 90)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := r.DecodeImage(data, ports.FormatJPEG); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestRenderer_DecodeAuto(t *testing.T) {
	r := New()

	src := image.NewGray(image.Rect(0, 0, 4, 4))
	data, err := r.EncodeImage(src, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := r.DecodeImage(data, ports.FormatAuto)
	if err != nil {
		t.Fatalf("auto decode: %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("unexpected decode result %v", img.Bounds())
	}
}

func TestRenderer_ResizeImage(t *testing.T) {
	r := New()

	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	dst := r.ResizeImage(src, 50, 25)
	if dst.Bounds().Dx() != 50 || dst.Bounds().Dy() != 25 {
		t.Errorf("resized to %v, want 50x25", dst.Bounds())
	}
}
