// Package dds implements the DDS header emitter/introspector and the
// per-face build orchestration: it drives the image package's classifier
// and face-prep transforms, calls out to the resample and squish packages,
// and writes the header format laid out in header.go.
package dds

// Header-level constants, binary-compatible with the on-disk 128-byte DDS
// header. Field order and sizes are load-bearing: Header and PixelFormat
// are written with encoding/binary in declaration order.
const (
	Magic       = 0x20534444 // "DDS "
	HeaderSize  = 124
	PixelFmtSize = 32

	flagCaps        = 0x00000001
	flagHeight      = 0x00000002
	flagWidth       = 0x00000004
	flagPitch       = 0x00000008
	flagPixelFormat = 0x00001000
	flagMipMapCount = 0x00020000
	flagLinearSize  = 0x00080000

	pfAlphaPixels = 0x00000001
	pfFourCC      = 0x00000004
	pfRGB         = 0x00000040
	pfNormal      = 0x80000000

	capsTexture = 0x00001000
	capsComplex = 0x00000008
	capsMipMap  = 0x00400000

	caps2CubeMap   = 0x00000200
	caps2PositiveX = 0x00000400
	caps2NegativeX = 0x00000800
	caps2PositiveY = 0x00001000
	caps2NegativeY = 0x00002000
	caps2PositiveZ = 0x00004000
	caps2NegativeZ = 0x00008000

	// cube2 is the complete caps2 value for a cube map: CUBEMAP plus all
	// six face bits, 0x0000FE00.
	cube2 = caps2CubeMap | caps2PositiveX | caps2NegativeX | caps2PositiveY | caps2NegativeY | caps2PositiveZ | caps2NegativeZ

	// DXGI format codes used by the DX10 extension.
	DXGIFormatR8G8B8A8Unorm = 28
	DXGIFormatBC1Unorm      = 71
	DXGIFormatBC3Unorm      = 77

	resourceDimensionTexture2D = 3
)

// Header is the on-disk 128-byte legacy DDS header, including the 4-byte
// magic and the 4-byte header-size word that precede the 124-byte body.
type Header struct {
	Magic             uint32
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PixelFormat       PixelFormat
	Caps              uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32
}

// PixelFormat is the 32-byte DDS_PIXELFORMAT block.
type PixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      [4]byte
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// DX10Header is the optional 20-byte DXT10 extension, present iff the
// legacy header's FourCC is "DX10".
type DX10Header struct {
	DXGIFormat        uint32
	ResourceDimension uint32
	MiscFlag          uint32
	ArraySize         uint32
	MiscFlags2        uint32
}
