package pipeline

import (
	"fmt"
	"image"
	"image/color"
)

// Frame is a rectangular 8-bit pixel buffer with 1 (intensity) or 3
// (interleaved RGB) channels. A frame is created fresh each tick by the
// frame source, mutated in place by the overlay and grayscale stages,
// and discarded after encoding.
type Frame struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// NewFrame allocates a zeroed frame with the given geometry.
func NewFrame(width, height, channels int) Frame {
	return Frame{
		Pix:      make([]byte, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// Empty reports whether the frame carries no pixels, e.g. a transient
// read miss from the source. An empty frame skips the tick.
func (f Frame) Empty() bool {
	return f.Width <= 0 || f.Height <= 0 || len(f.Pix) == 0
}

// Validate checks the geometry invariant: 1 or 3 channels and a buffer
// length consistent with the dimensions.
func (f Frame) Validate() error {
	if f.Channels != 1 && f.Channels != 3 {
		return fmt.Errorf("frame has %d channels, want 1 or 3", f.Channels)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("frame has non-positive dimensions %dx%d", f.Width, f.Height)
	}
	if want := f.Width * f.Height * f.Channels; len(f.Pix) != want {
		return fmt.Errorf("frame buffer is %d bytes, want %d for %dx%dx%d",
			len(f.Pix), want, f.Width, f.Height, f.Channels)
	}
	return nil
}

// Clone returns a deep copy of the frame.
func (f Frame) Clone() Frame {
	pix := make([]byte, len(f.Pix))
	copy(pix, f.Pix)
	return Frame{Pix: pix, Width: f.Width, Height: f.Height, Channels: f.Channels}
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (f Frame) PixOffset(x, y int) int {
	return (y*f.Width + x) * f.Channels
}

// ToImage converts the frame to a standard image: *image.Gray for one
// channel, *image.RGBA (alpha 255) for three.
func (f Frame) ToImage() image.Image {
	if f.Channels == 1 {
		img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
		copy(img.Pix, f.Pix)
		return img
	}
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i := 0; i < f.Width*f.Height; i++ {
		img.Pix[i*4+0] = f.Pix[i*3+0]
		img.Pix[i*4+1] = f.Pix[i*3+1]
		img.Pix[i*4+2] = f.Pix[i*3+2]
		img.Pix[i*4+3] = 0xff
	}
	return img
}

// Luma reduces an RGB triple to a single intensity value with the
// standard Rec.601 weights.
func Luma(r, g, b byte) byte {
	return byte(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b) + 0.5)
}

// FrameFromImage converts a standard image to a frame: *image.Gray maps
// to one channel, everything else to three interleaved RGB channels.
func FrameFromImage(img image.Image) Frame {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if gray, ok := img.(*image.Gray); ok {
		f := NewFrame(w, h, 1)
		for y := 0; y < h; y++ {
			src := gray.Pix[y*gray.Stride : y*gray.Stride+w]
			copy(f.Pix[y*w:(y+1)*w], src)
		}
		return f
	}

	f := NewFrame(w, h, 3)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			f.Pix[i+0] = c.R
			f.Pix[i+1] = c.G
			f.Pix[i+2] = c.B
			i += 3
		}
	}
	return f
}
