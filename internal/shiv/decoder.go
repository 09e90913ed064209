package shiv

import (
	"fmt"

	"github.com/Shivanosh/ShivanoshConverter/internal/raster"
	"github.com/Shivanosh/ShivanoshConverter/internal/zlib"
)

// Decode parses a complete Shivanosh container and reconstructs its Raster.
// data must be exactly the container's bytes: everything after the 12-byte
// header is treated as the compressed payload.
//
// Decode validates before it constructs: on any failure it returns a typed
// error and no Raster. The decompressed payload must hold at least
// width*height*4 bytes; excess trailing bytes are ignored, and zero-area
// dimensions decode to an empty Raster.
func Decode(data []byte) (*raster.Raster, error) {
	hdr, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}

	pix, err := zlib.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}

	want := hdr.PixelBytes()
	if uint64(len(pix)) < want {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, payload has %d",
			ErrSizeMismatch, hdr.Width, hdr.Height, want, len(pix))
	}

	return &raster.Raster{
		Width:  hdr.Width,
		Height: hdr.Height,
		Pix:    pix[:want],
	}, nil
}
