// Package raster decodes image files into the in-core pixel container. It
// covers PNG/JPEG/GIF via the standard library, BMP via
// golang.org/x/image/bmp, a minimal TGA decoder for parity with the
// original tool's broader format coverage, and falls back to the legacy
// MBM container when none of those recognize the input.
package raster

import (
	"bytes"
	"fmt"
	stdimage "image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/bmp"

	"github.com/ducakar/img2dds/pkg/image"
)

// Init performs any one-time setup the decoding libraries need. The
// standard-library and golang.org/x/image decoders used here carry no
// global state, so this is a no-op — but it is exposed so callers follow
// a paired init/destroy lifecycle, keeping a future swap to a stateful
// decoder an API-compatible change.
func Init() {}

// Destroy tears down anything Init set up. See Init.
func Destroy() {}

// Load decodes path into an image.Data. It tries the standard
// image-decoding registry (PNG/JPEG/GIF), then BMP, then a minimal TGA
// decoder, then falls back to the legacy MBM container before giving up.
func Load(path string) (image.Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return image.Data{}, fmt.Errorf("raster: open %s: %w", path, err)
	}

	if img, _, err := stdimage.Decode(bytes.NewReader(raw)); err == nil {
		return fromStdImage(img), nil
	}
	if img, err := bmp.Decode(bytes.NewReader(raw)); err == nil {
		return fromStdImage(img), nil
	}
	if d, err := decodeTGA(raw); err == nil {
		return d, nil
	}
	if d, err := decodeMBM(raw); err == nil {
		return d, nil
	}

	return image.Data{}, fmt.Errorf("raster: %s: %w", path, ErrUnrecognizedFormat)
}

// ErrUnrecognizedFormat is returned by Load when no decoder, including the
// MBM fallback, recognized the input.
var ErrUnrecognizedFormat = fmt.Errorf("unrecognized image format")

func fromStdImage(img stdimage.Image) image.Data {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	d := image.New(w, h)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			d.Pixels[i+0] = uint8(r >> 8)
			d.Pixels[i+1] = uint8(g >> 8)
			d.Pixels[i+2] = uint8(b >> 8)
			d.Pixels[i+3] = uint8(a >> 8)
			i += 4
		}
	}
	return d
}
