package raster

import (
	"fmt"

	"github.com/ducakar/img2dds/pkg/image"
)

// decodeTGA decodes uncompressed (type 2) and RLE (type 10) true-color TGA
// data at 24 or 32 bits per pixel. Color-mapped and other image types are
// rejected rather than guessed at.
func decodeTGA(data []byte) (image.Data, error) {
	if len(data) < 18 {
		return image.Data{}, fmt.Errorf("tga: header truncated")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	w := int(data[12]) | int(data[13])<<8
	h := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return image.Data{}, fmt.Errorf("tga: color-mapped images not supported")
	}
	if imageType != 2 && imageType != 10 {
		return image.Data{}, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return image.Data{}, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}
	if w <= 0 || h <= 0 {
		return image.Data{}, fmt.Errorf("tga: invalid dimensions %dx%d", w, h)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return image.Data{}, fmt.Errorf("tga: id field truncated")
	}
	pixelData := data[offset:]
	bytesPerPixel := bpp / 8
	topToBottom := descriptor&0x20 != 0

	d := image.New(w, h)
	setPixel := func(idx int, b, g, r, a byte) {
		x := idx % w
		y := idx / w
		if !topToBottom {
			y = h - 1 - y
		}
		o := (y*w + x) * 4
		d.Pixels[o], d.Pixels[o+1], d.Pixels[o+2], d.Pixels[o+3] = r, g, b, a
	}

	if imageType == 2 {
		need := w * h * bytesPerPixel
		if len(pixelData) < need {
			return image.Data{}, fmt.Errorf("tga: pixel data truncated")
		}
		for i := 0; i < w*h; i++ {
			o := i * bytesPerPixel
			a := byte(255)
			if bytesPerPixel == 4 {
				a = pixelData[o+3]
			}
			setPixel(i, pixelData[o], pixelData[o+1], pixelData[o+2], a)
		}
		return d, nil
	}

	pixelIdx, dataIdx, n := 0, 0, w*h
	for pixelIdx < n && dataIdx < len(pixelData) {
		packet := pixelData[dataIdx]
		dataIdx++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if dataIdx+bytesPerPixel > len(pixelData) {
				break
			}
			b, g, r := pixelData[dataIdx], pixelData[dataIdx+1], pixelData[dataIdx+2]
			a := byte(255)
			if bytesPerPixel == 4 {
				a = pixelData[dataIdx+3]
			}
			dataIdx += bytesPerPixel
			for i := 0; i < count && pixelIdx < n; i++ {
				setPixel(pixelIdx, b, g, r, a)
				pixelIdx++
			}
			continue
		}

		for i := 0; i < count && pixelIdx < n; i++ {
			if dataIdx+bytesPerPixel > len(pixelData) {
				break
			}
			b, g, r := pixelData[dataIdx], pixelData[dataIdx+1], pixelData[dataIdx+2]
			a := byte(255)
			if bytesPerPixel == 4 {
				a = pixelData[dataIdx+3]
			}
			dataIdx += bytesPerPixel
			setPixel(pixelIdx, b, g, r, a)
			pixelIdx++
		}
	}

	return d, nil
}
