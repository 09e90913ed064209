package raster

import (
	"fmt"
	"image"
	"image/draw"
)

// Raster is the intermediate representation passed between the image
// front-end and the container codec. Pixels are stored as interleaved
// R,G,B,A bytes (4 bytes per pixel, row-major order), straight alpha.
type Raster struct {
	Width  uint32
	Height uint32
	Pix    []byte // len = Width * Height * 4
}

// New allocates a zeroed Raster for the given dimensions.
func New(width, height uint32) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]byte, uint64(width)*uint64(height)*4),
	}
}

// Validate checks the pixel buffer length against the dimensions.
func (r *Raster) Validate() error {
	want := uint64(r.Width) * uint64(r.Height) * 4
	if uint64(len(r.Pix)) != want {
		return fmt.Errorf("raster %dx%d needs %d pixel bytes, has %d",
			r.Width, r.Height, want, len(r.Pix))
	}
	return nil
}

// FromImage converts any decoded image to a Raster. Alpha stays straight
// (non-premultiplied) so the pixel bytes survive a container round trip.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	r := &Raster{
		Width:  uint32(b.Dx()),
		Height: uint32(b.Dy()),
	}
	// NRGBA rows can carry stride padding; the Raster is tightly packed.
	rowBytes := b.Dx() * 4
	if nrgba.Stride == rowBytes {
		r.Pix = nrgba.Pix[:b.Dy()*rowBytes]
		return r
	}
	r.Pix = make([]byte, b.Dy()*rowBytes)
	for y := 0; y < b.Dy(); y++ {
		copy(r.Pix[y*rowBytes:(y+1)*rowBytes], nrgba.Pix[y*nrgba.Stride:y*nrgba.Stride+rowBytes])
	}
	return r
}

// ToNRGBA wraps the pixel buffer as a straight-alpha stdlib image.
// The returned image shares the Raster's pixel memory.
func (r *Raster) ToNRGBA() (*image.NRGBA, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &image.NRGBA{
		Pix:    r.Pix,
		Stride: int(r.Width) * 4,
		Rect:   image.Rect(0, 0, int(r.Width), int(r.Height)),
	}, nil
}
