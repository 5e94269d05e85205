package dds

import (
	"testing"

	"github.com/ducakar/img2dds/pkg/image"
)

func solidFace(w, h int, r, g, b, a byte) image.Data {
	d := image.New(w, h)
	for i := 0; i < len(d.Pixels); i += 4 {
		d.Pixels[i], d.Pixels[i+1], d.Pixels[i+2], d.Pixels[i+3] = r, g, b, a
	}
	return d
}

// 4x4 opaque RGB input, no options.
func TestBuildUncompressedOpaque(t *testing.T) {
	faces := []image.Data{solidFace(4, 4, 10, 20, 30, 255)}
	out, err := Build(faces, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(out) < 128 {
		t.Fatalf("output too short: %d bytes", len(out))
	}
	if string(out[0:4]) != "DDS " {
		t.Errorf("magic = %q, want %q", out[0:4], "DDS ")
	}
	if le32(out[4:8]) != 124 {
		t.Errorf("headerSize = %d, want 124", le32(out[4:8]))
	}

	info, err := ReadInfo(out)
	if err != nil {
		t.Fatalf("ReadInfo: %v", err)
	}
	if info.MipLevels != 1 {
		t.Errorf("MipLevels = %d, want 1", info.MipLevels)
	}

	var hdr Header
	readHeader(t, out, &hdr)
	// Per the pitch formula ((W'*bpp/8+3)/4)*4 with W'=4, bpp=24: 12.
	if hdr.PitchOrLinearSize != 12 {
		t.Errorf("pitch = %d, want 12", hdr.PitchOrLinearSize)
	}
	if hdr.PixelFormat.FourCC != [4]byte{} {
		t.Errorf("FourCC = %v, want zero", hdr.PixelFormat.FourCC)
	}

	payload := out[128:]
	if len(payload) != 48 {
		t.Errorf("payload = %d bytes, want 48", len(payload))
	}
}

// 4x4 RGBA with one non-opaque pixel, compressed + mipmaps.
func TestBuildCompressedWithAlpha(t *testing.T) {
	face := solidFace(4, 4, 10, 20, 30, 255)
	face.Pixels[3] = 128 // one non-opaque pixel
	out, err := Build([]image.Data{face}, Options{Bits: Compression | Mipmaps})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var hdr Header
	readHeader(t, out, &hdr)
	if hdr.Flags&flagLinearSize == 0 {
		t.Error("expected LINEARSIZE flag")
	}
	if hdr.Flags&flagMipMapCount == 0 {
		t.Error("expected MIPMAPCOUNT flag")
	}
	if hdr.PixelFormat.FourCC != [4]byte{'D', 'X', 'T', '5'} {
		t.Errorf("FourCC = %q, want DXT5", hdr.PixelFormat.FourCC)
	}
	if hdr.MipMapCount != 3 {
		t.Errorf("mipMapCount = %d, want 3", hdr.MipMapCount)
	}
}

// 8x8 input, mipmaps + scale 0.5 -> (4,4), L=3.
func TestBuildScaledMipChain(t *testing.T) {
	face := solidFace(8, 8, 1, 2, 3, 255)
	out, err := Build([]image.Data{face}, Options{Bits: Mipmaps, Scale: 0.5})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var hdr Header
	readHeader(t, out, &hdr)
	if hdr.Width != 4 || hdr.Height != 4 {
		t.Errorf("dims = %dx%d, want 4x4", hdr.Width, hdr.Height)
	}
	if hdr.MipMapCount != 3 {
		t.Errorf("mipMapCount = %d, want 3", hdr.MipMapCount)
	}
}

// 6 faces of 16x16, CUBE_MAP|MIPMAPS.
func TestBuildCubeMap(t *testing.T) {
	faces := make([]image.Data, 6)
	for i := range faces {
		faces[i] = solidFace(16, 16, byte(i), byte(i), byte(i), 255)
	}
	out, err := Build(faces, Options{Bits: CubeMap | Mipmaps})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var hdr Header
	readHeader(t, out, &hdr)
	if hdr.Caps2 != 0x0000FE00 {
		t.Errorf("caps2 = %#x, want 0x0000FE00", hdr.Caps2)
	}
	if hdr.PixelFormat.FourCC == [4]byte{'D', 'X', '1', '0'} {
		t.Error("cube map must not emit a DX10 header")
	}
}

// 3 faces of 16x16 with MIPMAPS (array).
func TestBuildTextureArray(t *testing.T) {
	faces := make([]image.Data, 3)
	for i := range faces {
		faces[i] = solidFace(16, 16, byte(i), byte(i), byte(i), 255)
	}
	out, err := Build(faces, Options{Bits: Mipmaps})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var hdr Header
	readHeader(t, out, &hdr)
	if hdr.PixelFormat.FourCC != [4]byte{'D', 'X', '1', '0'} {
		t.Fatalf("FourCC = %q, want DX10", hdr.PixelFormat.FourCC)
	}
	var dx10 DX10Header
	readDX10(t, out, &dx10)
	if dx10.ArraySize != 3 {
		t.Errorf("arraySize = %d, want 3", dx10.ArraySize)
	}
	if dx10.DXGIFormat != 28 {
		t.Errorf("dxgiFormat = %d, want 28", dx10.DXGIFormat)
	}
}

func TestBuildRejectsEmptyFaces(t *testing.T) {
	_, err := Build(nil, Options{})
	assertKind(t, err, EmptyFaces)
}

func TestBuildRejectsCubeArity(t *testing.T) {
	faces := []image.Data{solidFace(4, 4, 0, 0, 0, 255), solidFace(4, 4, 0, 0, 0, 255)}
	_, err := Build(faces, Options{Bits: CubeMap})
	assertKind(t, err, CubeArity)
}

func TestBuildRejectsShapeMismatch(t *testing.T) {
	faces := []image.Data{solidFace(4, 4, 0, 0, 0, 255), solidFace(8, 8, 0, 0, 0, 255)}
	_, err := Build(faces, Options{})
	assertKind(t, err, ShapeMismatch)
}

func assertKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	be, ok := err.(*BuildError)
	if !ok {
		t.Fatalf("error = %v (%T), want *BuildError", err, err)
	}
	if be.Kind != want {
		t.Errorf("kind = %v, want %v", be.Kind, want)
	}
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
