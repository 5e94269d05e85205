package dds

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// MetadataSize is the fixed size of a texture metadata sidecar file.
const MetadataSize = 256

// Metadata is the 256-byte descriptor that accompanies a headerless raw BC
// payload: just enough information to reconstruct the DDS header that
// would normally precede it.
type Metadata struct {
	Width       uint32
	Height      uint32
	MipLevels   uint32
	DXGIFormat  uint32
	DDSFileSize uint32
	RawFileSize uint32
	Flags       uint32
	ArraySize   uint32
	Reserved    [224]byte
}

// ParseMetadata reads a 256-byte metadata record.
func ParseMetadata(r io.Reader) (*Metadata, error) {
	data := make([]byte, MetadataSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("dds: read metadata: %w", err)
	}

	m := &Metadata{
		Width:       binary.LittleEndian.Uint32(data[0x00:0x04]),
		Height:      binary.LittleEndian.Uint32(data[0x04:0x08]),
		MipLevels:   binary.LittleEndian.Uint32(data[0x08:0x0C]),
		DXGIFormat:  binary.LittleEndian.Uint32(data[0x0C:0x10]),
		DDSFileSize: binary.LittleEndian.Uint32(data[0x10:0x14]),
		RawFileSize: binary.LittleEndian.Uint32(data[0x14:0x18]),
		Flags:       binary.LittleEndian.Uint32(data[0x18:0x1C]),
		ArraySize:   binary.LittleEndian.Uint32(data[0x1C:0x20]),
	}
	copy(m.Reserved[:], data[0x20:])
	return m, nil
}

// ToBytes serializes m back to its 256-byte on-disk form.
func (m *Metadata) ToBytes() []byte {
	data := make([]byte, MetadataSize)
	binary.LittleEndian.PutUint32(data[0x00:0x04], m.Width)
	binary.LittleEndian.PutUint32(data[0x04:0x08], m.Height)
	binary.LittleEndian.PutUint32(data[0x08:0x0C], m.MipLevels)
	binary.LittleEndian.PutUint32(data[0x0C:0x10], m.DXGIFormat)
	binary.LittleEndian.PutUint32(data[0x10:0x14], m.DDSFileSize)
	binary.LittleEndian.PutUint32(data[0x14:0x18], m.RawFileSize)
	binary.LittleEndian.PutUint32(data[0x18:0x1C], m.Flags)
	binary.LittleEndian.PutUint32(data[0x1C:0x20], m.ArraySize)
	copy(data[0x20:], m.Reserved[:])
	return data
}

func (m *Metadata) String() string {
	return fmt.Sprintf("%dx%d, %d mips, dxgi=%d, dds_size=%d, raw_size=%d",
		m.Width, m.Height, m.MipLevels, m.DXGIFormat, m.DDSFileSize, m.RawFileSize)
}

// SynthesizeHeader builds a complete DDS file (header + DX10 extension +
// payload) by prefixing rawBC with the header m describes. rawBC must be
// exactly m.RawFileSize bytes.
func SynthesizeHeader(rawBC []byte, m *Metadata) ([]byte, error) {
	if uint32(len(rawBC)) != m.RawFileSize {
		return nil, fmt.Errorf("dds: raw payload is %d bytes, metadata declares %d", len(rawBC), m.RawFileSize)
	}

	flags := uint32(flagCaps | flagHeight | flagWidth | flagPixelFormat | flagLinearSize)
	if m.MipLevels > 1 {
		flags |= flagMipMapCount
	}
	caps := uint32(capsTexture)
	if m.MipLevels > 1 {
		caps |= capsMipMap
	}

	hdr := Header{
		Magic:             Magic,
		Size:              HeaderSize,
		Flags:             flags,
		Height:            m.Height,
		Width:             m.Width,
		PitchOrLinearSize: blockLinearSize(m.Width, m.Height, m.DXGIFormat),
		MipMapCount:       m.MipLevels,
		PixelFormat: PixelFormat{
			Size:   PixelFmtSize,
			Flags:  pfFourCC,
			FourCC: [4]byte{'D', 'X', '1', '0'},
		},
		Caps: caps,
	}
	dx10 := DX10Header{
		DXGIFormat:        m.DXGIFormat,
		ResourceDimension: resourceDimensionTexture2D,
		ArraySize:         m.ArraySize,
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("dds: write header: %w", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, &dx10); err != nil {
		return nil, fmt.Errorf("dds: write dx10 header: %w", err)
	}
	buf.Write(rawBC)
	return buf.Bytes(), nil
}

// blockLinearSize computes the block-compressed storage size for BC1
// (8 bytes/block) and BC3/other 16-byte-block formats.
func blockLinearSize(w, h, dxgiFormat uint32) uint32 {
	blockSize := uint32(16)
	if dxgiFormat == DXGIFormatBC1Unorm {
		blockSize = 8
	}
	blocksWide := (w + 3) / 4
	blocksHigh := (h + 3) / 4
	return blocksWide * blocksHigh * blockSize
}
