package raster

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestFromImagePreservesPixels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	src.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 128})
	src.SetNRGBA(2, 0, color.NRGBA{0, 0, 255, 0})
	src.SetNRGBA(0, 1, color.NRGBA{10, 20, 30, 40})
	src.SetNRGBA(1, 1, color.NRGBA{50, 60, 70, 80})
	src.SetNRGBA(2, 1, color.NRGBA{90, 100, 110, 120})

	r := FromImage(src)
	if r.Width != 3 || r.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", r.Width, r.Height)
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !bytes.Equal(r.Pix, src.Pix) {
		t.Fatalf("pixels = % x, want % x", r.Pix, src.Pix)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	// Images decoded from subregions may not start at (0,0).
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.SetNRGBA(5, 5, color.NRGBA{1, 2, 3, 4})
	src.SetNRGBA(6, 5, color.NRGBA{5, 6, 7, 8})

	r := FromImage(src)
	if r.Width != 2 || r.Height != 1 {
		t.Fatalf("dimensions = %dx%d, want 2x1", r.Width, r.Height)
	}
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if !bytes.Equal(r.Pix, want) {
		t.Fatalf("pixels = % x, want % x", r.Pix, want)
	}
}

func TestToNRGBARoundTrip(t *testing.T) {
	r := New(2, 2)
	for i := range r.Pix {
		r.Pix[i] = byte(i * 7)
	}

	img, err := r.ToNRGBA()
	if err != nil {
		t.Fatalf("ToNRGBA: %v", err)
	}
	back := FromImage(img)
	if back.Width != r.Width || back.Height != r.Height || !bytes.Equal(back.Pix, r.Pix) {
		t.Fatal("NRGBA round trip altered the raster")
	}
}

func TestValidate(t *testing.T) {
	good := New(4, 3)
	if err := good.Validate(); err != nil {
		t.Fatalf("Validate on fresh raster: %v", err)
	}

	bad := &Raster{Width: 4, Height: 3, Pix: make([]byte, 47)}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for short pixel buffer")
	}

	empty := &Raster{Width: 0, Height: 0, Pix: []byte{}}
	if err := empty.Validate(); err != nil {
		t.Fatalf("Validate on empty raster: %v", err)
	}

	if _, err := bad.ToNRGBA(); err == nil {
		t.Fatal("ToNRGBA should reject an invalid raster")
	}
}
