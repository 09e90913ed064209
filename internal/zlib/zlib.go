// Package zlib wraps the compression backend used for container payloads.
// Streams are zlib (RFC 1950), always written at the strongest level: the
// inputs are small raster files, so output size wins over encode speed, and
// a fixed level keeps encoding deterministic.
package zlib

import (
	"bytes"
	"fmt"
	"io"

	kzlib "github.com/klauspost/compress/zlib"
)

// Compress deflates data into a complete zlib stream.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := kzlib.NewWriterLevel(&buf, kzlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("zlib writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib flush: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress inflates a complete zlib stream to EOF. Corrupt or truncated
// input fails; it never yields partial output.
func Decompress(data []byte) ([]byte, error) {
	r, err := kzlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib reader: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("zlib decompress: %w", err)
	}
	return out, nil
}
