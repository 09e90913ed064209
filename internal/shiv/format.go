// Package shiv implements the Shivanosh image container: a fixed 12-byte
// header followed by a zlib-compressed RGBA pixel buffer.
//
// Layout (integers little-endian, no padding):
//
//	offset 0, size 4: magic, literal "MYIF"
//	offset 4, size 4: width, unsigned 32-bit
//	offset 8, size 4: height, unsigned 32-bit
//	offset 12, rest : compressed payload, inflates to width*height*4 bytes
//	                  of interleaved R,G,B,A, row-major
//
// There is no payload length field and no checksum; the payload runs to the
// end of the input. A container therefore cannot be concatenated with or
// embedded in other data; the decoder must be handed exactly the
// container's bytes. The format also carries no version field, so any layout
// change is a breaking change.
package shiv

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Magic identifies a Shivanosh container.
const Magic = "MYIF"

// HeaderSize is the fixed byte length of magic + width + height.
const HeaderSize = 12

// Extension is the conventional file extension for containers.
const Extension = ".shivanosh"

// Decode and encode failures. All are terminal; callers decide whether to
// retry, report, or skip. Match with errors.Is.
var (
	ErrInvalidFormat   = errors.New("not a shivanosh container (bad magic)")
	ErrTruncatedHeader = errors.New("truncated container header")
	ErrCorruptPayload  = errors.New("corrupt compressed payload")
	ErrSizeMismatch    = errors.New("payload too small for declared dimensions")
	ErrEncodeBackend   = errors.New("compression backend failed")
)

// Header is the decoded fixed-layout prefix of a container.
type Header struct {
	Width  uint32
	Height uint32
}

// PixelBytes returns the decompressed payload length the header declares.
// Computed in 64 bits so pathological dimensions cannot wrap.
func (h Header) PixelBytes() uint64 {
	return uint64(h.Width) * uint64(h.Height) * 4
}

// DecodeHeader parses the magic and dimensions without touching the
// payload. The error rules match Decode: bad magic before truncation is
// reported as ErrInvalidFormat, a short dimension field as
// ErrTruncatedHeader.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < len(Magic) {
		return Header{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncatedHeader, len(data), HeaderSize)
	}
	if string(data[:len(Magic)]) != Magic {
		return Header{}, fmt.Errorf("%w: got %q", ErrInvalidFormat, data[:len(Magic)])
	}
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncatedHeader, len(data), HeaderSize)
	}
	return Header{
		Width:  binary.LittleEndian.Uint32(data[4:8]),
		Height: binary.LittleEndian.Uint32(data[8:12]),
	}, nil
}
