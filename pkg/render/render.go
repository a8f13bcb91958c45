// Package render bridges sub-image views and Go images: it decodes image
// files into row-major luminance buffers suitable for viewing, and
// materializes child views into standalone grayscale images for saving.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"
	"os"

	"sliceview/pkg/view"
)

// DefaultJPEGQuality matches the quality used for saved crops unless the
// caller asks otherwise
const DefaultJPEGQuality = 90

// LoadGray decodes the JPEG or PNG image at path into a row-major
// luminance buffer and returns it with the image's dimensions. The buffer
// is laid out as buf[y*columns+x], ready to back a view of the full frame.
func LoadGray(path string) ([]uint8, view.ImageDimensions, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, view.ImageDimensions{}, fmt.Errorf("error opening image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, view.ImageDimensions{}, fmt.Errorf("error decoding image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			buf[y*width+x] = gray.Y
		}
	}

	return buf, view.NewImageDimensions(width, height), nil
}

// Materialize renders the view's child region into a standalone grayscale
// image. This is the one place pixel data is copied: the returned image
// owns its pixels and stays valid after the backing buffer goes away.
func Materialize(v *view.SliceView[uint8]) *image.Gray {
	cols := v.ChildDims.Columns
	rows := v.ChildDims.Rows

	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			img.SetGray(x, y, color.Gray{Y: v.At(y*cols + x)})
		}
	}
	return img
}

// SaveJPEG writes the image to filename as a JPEG with the given quality.
// A quality of zero or less falls back to DefaultJPEGQuality.
func SaveJPEG(img image.Image, filename string, quality int) error {
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return jpeg.Encode(file, img, &jpeg.Options{Quality: quality})
}
