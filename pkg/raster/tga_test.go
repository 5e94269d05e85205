package raster

import (
	"reflect"
	"testing"
)

func tgaHeader(w, h, bpp int, descriptor byte, imageType byte) []byte {
	return []byte{
		0, 0, imageType, 0, 0, 0, 0, 0,
		0, 0, 0, 0,
		byte(w), byte(w >> 8),
		byte(h), byte(h >> 8),
		byte(bpp), descriptor,
	}
}

func TestDecodeTGAUncompressed(t *testing.T) {
	hdr := tgaHeader(2, 1, 24, 0x20, 2) // top-to-bottom
	body := []byte{
		10, 20, 30, // pixel 0: BGR on disk -> R=30,G=20,B=10
		40, 50, 60, // pixel 1
	}
	d, err := decodeTGA(append(hdr, body...))
	if err != nil {
		t.Fatalf("decodeTGA: %v", err)
	}
	want := []byte{30, 20, 10, 255, 60, 50, 40, 255}
	if !reflect.DeepEqual(d.Pixels, want) {
		t.Errorf("pixels = %v, want %v", d.Pixels, want)
	}
}

func TestDecodeTGABottomToTop(t *testing.T) {
	hdr := tgaHeader(1, 2, 24, 0x00, 2) // bottom-to-top
	body := []byte{
		1, 1, 1, // first stored row -> bottom of image
		2, 2, 2, // second stored row -> top of image
	}
	d, err := decodeTGA(append(hdr, body...))
	if err != nil {
		t.Fatalf("decodeTGA: %v", err)
	}
	want := []byte{2, 2, 2, 255, 1, 1, 1, 255}
	if !reflect.DeepEqual(d.Pixels, want) {
		t.Errorf("pixels = %v, want %v", d.Pixels, want)
	}
}

func TestDecodeTGARejectsColorMapped(t *testing.T) {
	hdr := tgaHeader(1, 1, 24, 0x20, 2)
	hdr[1] = 1 // colorMapType != 0
	if _, err := decodeTGA(append(hdr, 1, 2, 3)); err == nil {
		t.Error("expected an error for a color-mapped TGA")
	}
}

func TestDecodeTGARLE(t *testing.T) {
	hdr := tgaHeader(4, 1, 24, 0x20, 10)
	body := []byte{
		0x80 | 3, 9, 9, 9, // RLE packet: 4 pixels of (9,9,9) BGR
	}
	d, err := decodeTGA(append(hdr, body...))
	if err != nil {
		t.Fatalf("decodeTGA: %v", err)
	}
	for i := 0; i < len(d.Pixels); i += 4 {
		if d.Pixels[i] != 9 || d.Pixels[i+1] != 9 || d.Pixels[i+2] != 9 || d.Pixels[i+3] != 255 {
			t.Fatalf("pixel %d = %v, want (9,9,9,255)", i/4, d.Pixels[i:i+4])
		}
	}
}
