// Package pipeline orchestrates the CLI's conversions: arbitrary source
// image bytes to a Shivanosh container, and a container back to PNG.
package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Source-image formats accepted by Convert, beyond the PNG support
	// pulled in above.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Shivanosh/ShivanoshConverter/internal/raster"
	"github.com/Shivanosh/ShivanoshConverter/internal/shiv"
)

// Result holds the output of a Convert run.
type Result struct {
	Data      []byte // encoded container
	SrcFormat string // source image format name ("png", "jpeg", ...)
	Width     uint32
	Height    uint32
}

// Convert decodes a source image and encodes it as a Shivanosh container:
// decode → raster → frame+compress.
func Convert(imageData []byte) (*Result, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("decoding source image: %w", err)
	}

	r := raster.FromImage(img)
	data, err := shiv.Encode(r)
	if err != nil {
		return nil, fmt.Errorf("encoding container: %w", err)
	}

	return &Result{
		Data:      data,
		SrcFormat: format,
		Width:     r.Width,
		Height:    r.Height,
	}, nil
}

// Export decodes a Shivanosh container and re-encodes it as PNG. The PNG is
// written from the straight-alpha raster, so pixel bytes pass through
// unchanged; premultiplication is left to whatever displays the image.
func Export(containerData []byte) ([]byte, error) {
	r, err := shiv.Decode(containerData)
	if err != nil {
		return nil, err
	}

	img, err := r.ToNRGBA()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}
