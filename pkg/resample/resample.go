// Package resample resizes RGBA8 pixel buffers with a Catmull-Rom filter,
// the same resampling family the original FreeImage-based builder used
// (FILTER_CATMULLROM) for both the primary rescale and every mipmap level.
package resample

import (
	"image"

	"golang.org/x/image/draw"
)

// Rescale resamples a w×h RGBA8 buffer (row-major, top-to-bottom, tightly
// packed R,G,B,A) to w2×h2 using a Catmull-Rom kernel, and returns a new
// buffer of length w2*h2*4. Passing w2==w and h2==h still round-trips
// through the resampler (cheap and keeps the call site uniform); callers
// that want to skip resampling entirely should check dimensions themselves.
func Rescale(pixels []byte, w, h, w2, h2 int) []byte {
	src := &image.NRGBA{
		Pix:    pixels,
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w2, h2))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	if dst.Stride == w2*4 {
		return dst.Pix
	}
	// Stride padding only happens for pathological widths; compact it away
	// so callers always get a tightly packed buffer.
	out := make([]byte, 0, w2*h2*4)
	for y := 0; y < h2; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w2*4]
		out = append(out, row...)
	}
	return out
}
