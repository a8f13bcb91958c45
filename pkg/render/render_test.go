package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"sliceview/pkg/view"
)

// TestMaterialize verifies that a child view renders into a grayscale
// image with the child's shape and pixel values.
func TestMaterialize(t *testing.T) {
	parent := view.NewImageDimensions(4, 4)
	buf := []uint8{
		10, 20, 30, 40,
		11, 21, 31, 41,
		12, 22, 32, 42,
		13, 23, 33, 43,
	}

	v := view.New(parent, 1, 1, buf, view.NewImageDimensions(2, 2))
	img := Materialize(v)

	bounds := img.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 2 {
		t.Fatalf("Expected 2x2 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	expected := [2][2]uint8{
		{21, 31},
		{22, 32},
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := img.GrayAt(x, y).Y; got != expected[y][x] {
				t.Errorf("Pixel (%d,%d): expected %d, got %d", x, y, expected[y][x], got)
			}
		}
	}
}

// TestMaterializePassthru verifies that a passthrough view renders the
// whole parent unchanged.
func TestMaterializePassthru(t *testing.T) {
	parent := view.NewImageDimensions(3, 2)
	buf := []uint8{1, 2, 3, 4, 5, 6}

	img := Materialize(view.NewPassthru(parent, buf))

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := img.GrayAt(x, y).Y; got != buf[y*3+x] {
				t.Errorf("Pixel (%d,%d): expected %d, got %d", x, y, buf[y*3+x], got)
			}
		}
	}
}

// TestLoadGrayRoundTrip writes a grayscale PNG, loads it back as a
// row-major buffer and checks the values survive exactly (PNG is
// lossless).
func TestLoadGrayRoundTrip(t *testing.T) {
	// Skip this test in short mode
	if testing.Short() {
		t.Skip("Skipping file I/O test in short mode")
	}

	tempDir, err := os.MkdirTemp("", "render-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	width, height := 5, 3
	src := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src.SetGray(x, y, color.Gray{Y: uint8(10*x + y)})
		}
	}

	path := filepath.Join(tempDir, "test.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	if err := png.Encode(file, src); err != nil {
		file.Close()
		t.Fatalf("Failed to encode test image: %v", err)
	}
	file.Close()

	buf, dims, err := LoadGray(path)
	if err != nil {
		t.Fatalf("Failed to load image: %v", err)
	}

	if dims.Columns != width || dims.Rows != height {
		t.Errorf("Expected dimensions %dx%d, got %dx%d", width, height, dims.Columns, dims.Rows)
	}
	if len(buf) != width*height {
		t.Fatalf("Expected buffer length %d, got %d", width*height, len(buf))
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if got := buf[y*width+x]; got != uint8(10*x+y) {
				t.Errorf("Buffer value at (%d,%d): expected %d, got %d", x, y, 10*x+y, got)
			}
		}
	}

	// Missing file
	if _, _, err := LoadGray(filepath.Join(tempDir, "missing.png")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

// TestSaveJPEG verifies a materialized crop can be written to disk.
func TestSaveJPEG(t *testing.T) {
	// Skip this test in short mode
	if testing.Short() {
		t.Skip("Skipping file I/O test in short mode")
	}

	tempDir, err := os.MkdirTemp("", "render-save-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	parent := view.NewImageDimensions(4, 4)
	buf := make([]uint8, 16)
	for i := range buf {
		buf[i] = 128
	}

	img := Materialize(view.NewPassthru(parent, buf))
	filename := filepath.Join(tempDir, "crop.jpg")
	if err := SaveJPEG(img, filename, 0); err != nil {
		t.Fatalf("Failed to save JPEG: %v", err)
	}

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		t.Errorf("Saved file does not exist: %s", filename)
	}
}
