package app

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// FlipRows converts bottom-up RGBA rows, as GL reads them, into a top-down image.
func FlipRows(pixels []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stride := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*img.Stride:], src)
	}
	return img
}

// WritePNG stores a bottom-up RGBA frame as a PNG file.
func WritePNG(path string, pixels []byte, width, height int) error {
	if len(pixels) != width*height*4 {
		return fmt.Errorf("screenshot: got %d bytes for %dx%d", len(pixels), width, height)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	if err := png.Encode(f, FlipRows(pixels, width, height)); err != nil {
		f.Close()
		return fmt.Errorf("screenshot: %w", err)
	}
	return f.Close()
}
