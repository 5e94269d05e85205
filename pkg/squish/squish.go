// Package squish binds the S3TC block compressor (libsquish) via cgo for
// DXT1/DXT5 output.
package squish

/*
#cgo LDFLAGS: -lsquish -lstdc++
#cgo CXXFLAGS: -std=c++11
#include "squish_wrapper.h"
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// Flag mirrors libsquish's compression flags. Multiple flags combine with
// bitwise OR, same as the underlying C++ API.
type Flag int

const (
	DXT1 Flag = 1 << 0
	DXT3 Flag = 1 << 1
	DXT5 Flag = 1 << 2

	ColourClusterFit          Flag = 1 << 3
	ColourRangeFit            Flag = 1 << 4
	WeightColourByAlpha       Flag = 1 << 7
	ColourIterativeClusterFit Flag = 1 << 8

	// ITERATIVE_CLUSTER_FIT aliases libsquish's iterative cluster-fit flag.
	ITERATIVE_CLUSTER_FIT Flag = ColourIterativeClusterFit
	// WEIGHT_COLOUR_BY_ALPHA aliases the alpha-weighting flag.
	WEIGHT_COLOUR_BY_ALPHA Flag = WeightColourByAlpha
)

// StorageRequirements returns the number of bytes a w×h image compresses
// to under the given flags (block count times bytes-per-block, rounded up
// to whole 4×4 blocks).
func StorageRequirements(w, h int, flags Flag) int {
	return int(C.squish_get_storage_requirements(C.int(w), C.int(h), C.int(flags)))
}

// Compress block-compresses a tightly packed w×h RGBA8 buffer and returns
// the compressed bytes. flags must include exactly one of DXT1/DXT3/DXT5.
func Compress(pixels []byte, w, h int, flags Flag) ([]byte, error) {
	if len(pixels) != w*h*4 {
		return nil, fmt.Errorf("squish: pixel buffer length %d does not match %dx%d RGBA8", len(pixels), w, h)
	}
	size := StorageRequirements(w, h, flags)
	if size <= 0 {
		return nil, fmt.Errorf("squish: invalid storage requirement %d for %dx%d", size, w, h)
	}

	out := make([]byte, size)
	C.squish_compress_image(
		(*C.uchar)(unsafe.Pointer(&pixels[0])),
		C.int(w),
		C.int(h),
		unsafe.Pointer(&out[0]),
		C.int(flags),
	)
	return out, nil
}
