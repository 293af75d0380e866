package pipeline

import (
	"image"
	"testing"
)

func TestFrame_Validate(t *testing.T) {
	tests := []struct {
		name    string
		frame   Frame
		wantErr bool
	}{
		{"valid color", NewFrame(4, 3, 3), false},
		{"valid gray", NewFrame(4, 3, 1), false},
		{"two channels", NewFrame(4, 3, 2), true},
		{"short buffer", Frame{Pix: make([]byte, 10), Width: 4, Height: 3, Channels: 3}, true},
		{"zero width", Frame{Pix: []byte{}, Width: 0, Height: 3, Channels: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.frame.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFrame_Clone(t *testing.T) {
	f := NewFrame(2, 2, 3)
	f.Pix[0] = 42

	c := f.Clone()
	c.Pix[0] = 7

	if f.Pix[0] != 42 {
		t.Errorf("clone shares the pixel buffer")
	}
	if c.Width != f.Width || c.Height != f.Height || c.Channels != f.Channels {
		t.Errorf("clone geometry differs")
	}
}

func TestFrame_ImageRoundTrip_Gray(t *testing.T) {
	f := NewFrame(3, 2, 1)
	for i := range f.Pix {
		f.Pix[i] = byte(i * 40)
	}

	img := f.ToImage()
	if _, ok := img.(*image.Gray); !ok {
		t.Fatalf("expected *image.Gray, got %T", img)
	}

	back := FrameFromImage(img)
	if back.Channels != 1 || back.Width != 3 || back.Height != 2 {
		t.Fatalf("unexpected geometry %dx%dx%d", back.Width, back.Height, back.Channels)
	}
	for i := range f.Pix {
		if back.Pix[i] != f.Pix[i] {
			t.Fatalf("pixel %d: got %d, want %d", i, back.Pix[i], f.Pix[i])
		}
	}
}

func TestFrame_ImageRoundTrip_Color(t *testing.T) {
	f := NewFrame(2, 2, 3)
	for i := range f.Pix {
		f.Pix[i] = byte(i * 17)
	}

	back := FrameFromImage(f.ToImage())
	if back.Channels != 3 {
		t.Fatalf("expected 3 channels, got %d", back.Channels)
	}
	for i := range f.Pix {
		if back.Pix[i] != f.Pix[i] {
			t.Fatalf("pixel %d: got %d, want %d", i, back.Pix[i], f.Pix[i])
		}
	}
}

func TestLuma(t *testing.T) {
	tests := []struct {
		r, g, b byte
		want    byte
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{10, 20, 30, 18},   // 2.99 + 11.74 + 3.42 = 18.15
		{255, 0, 0, 76},    // 0.299 * 255 = 76.2
		{0, 255, 0, 150},   // 0.587 * 255 = 149.7
		{0, 0, 255, 29},    // 0.114 * 255 = 29.1
	}

	for _, tt := range tests {
		if got := Luma(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("Luma(%d, %d, %d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestHistogram_Sum(t *testing.T) {
	var h Histogram
	h[0] = 3
	h[128] = 5
	h[255] = 2

	if got := h.Sum(); got != 10 {
		t.Errorf("Sum() = %d, want 10", got)
	}
}
