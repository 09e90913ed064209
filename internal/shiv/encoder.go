package shiv

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/Shivanosh/ShivanoshConverter/internal/raster"
	"github.com/Shivanosh/ShivanoshConverter/internal/zlib"
)

// Encode frames a Raster as a Shivanosh container: magic, little-endian
// dimensions, then the zlib-compressed pixel buffer. The pixel bytes are
// framed as-is, with no reordering, resampling, or color conversion, so
// Decode(Encode(r)) reproduces r exactly. Output is deterministic for a
// given Raster.
func Encode(r *raster.Raster) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	payload, err := zlib.Compress(r.Pix)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeBackend, err)
	}

	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(payload))
	buf.WriteString(Magic)

	var dims [8]byte
	binary.LittleEndian.PutUint32(dims[0:4], r.Width)
	binary.LittleEndian.PutUint32(dims[4:8], r.Height)
	buf.Write(dims[:])

	buf.Write(payload)
	return buf.Bytes(), nil
}
