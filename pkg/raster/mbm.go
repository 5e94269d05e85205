package raster

import (
	"encoding/binary"
	"fmt"

	"github.com/ducakar/img2dds/pkg/image"
)

const mbmMagic = 0x50534B03

// decodeMBM decodes the legacy MBM raster container: a 20-byte header
// (magic, width, height, type, bpp) followed by bottom-to-top,
// left-to-right rows of R,G,B (and A when bpp is 32). The in-memory image
// is the vertical reflection of the on-disk rows, i.e. top-to-bottom.
func decodeMBM(data []byte) (image.Data, error) {
	if len(data) < 20 {
		return image.Data{}, fmt.Errorf("mbm: header truncated")
	}
	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != mbmMagic {
		return image.Data{}, fmt.Errorf("mbm: bad magic %#x", magic)
	}

	w := int(binary.LittleEndian.Uint32(data[4:8]))
	h := int(binary.LittleEndian.Uint32(data[8:12]))
	typ := binary.LittleEndian.Uint32(data[12:16])
	bpp := int(binary.LittleEndian.Uint32(data[16:20]))

	if w <= 0 || h <= 0 {
		return image.Data{}, fmt.Errorf("mbm: invalid dimensions %dx%d", w, h)
	}
	if bpp != 24 && bpp != 32 {
		return image.Data{}, fmt.Errorf("mbm: unsupported bpp %d", bpp)
	}

	srcBytesPerPixel := bpp / 8
	need := 20 + w*h*srcBytesPerPixel
	if len(data) < need {
		return image.Data{}, fmt.Errorf("mbm: pixel data truncated")
	}
	src := data[20:need]

	d := image.New(w, h)
	for row := 0; row < h; row++ {
		srcRow := h - 1 - row // bottom-to-top on disk -> top-to-bottom in memory
		srcOff := srcRow * w * srcBytesPerPixel
		dstOff := row * w * 4
		for x := 0; x < w; x++ {
			so := srcOff + x*srcBytesPerPixel
			do := dstOff + x*4
			d.Pixels[do], d.Pixels[do+1], d.Pixels[do+2] = src[so], src[so+1], src[so+2]
			if srcBytesPerPixel == 4 {
				d.Pixels[do+3] = src[so+3]
			} else {
				d.Pixels[do+3] = 255
			}
		}
	}

	if typ != 0 {
		d.Flags |= image.FlagNormal
	}
	return d, nil
}
