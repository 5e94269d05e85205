package dds

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Info is the introspector's report: geometry and format, read from the
// header alone, without touching the payload.
type Info struct {
	Width, Height int
	MipLevels     int
	Format        string // FourCC, or "RGBA"/"RGB " for uncompressed
	NormalMap     bool
}

// ReadInfo parses just enough of data's header to report geometry and
// format. It fails with BadHeader if the leading 4 bytes are not "DDS ".
func ReadInfo(data []byte) (Info, error) {
	if len(data) < 128 {
		return Info{}, newErr(BadHeader, "file shorter than the 128-byte legacy header")
	}
	r := bytes.NewReader(data)

	var hdr Header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return Info{}, newErr(BadHeader, "read header: %w", err)
	}
	if hdr.Magic != Magic {
		return Info{}, newErr(BadHeader, "magic is %#08x, want %#08x", hdr.Magic, uint32(Magic))
	}

	mips := 1
	if hdr.Flags&flagMipMapCount != 0 {
		mips = int(hdr.MipMapCount)
	}

	format := formatTag(hdr.PixelFormat)

	return Info{
		Width:     int(hdr.Width),
		Height:    int(hdr.Height),
		MipLevels: mips,
		Format:    format,
		NormalMap: hdr.PixelFormat.Flags&pfNormal != 0,
	}, nil
}

func formatTag(pf PixelFormat) string {
	if pf.Flags&pfFourCC != 0 {
		return string(pf.FourCC[:])
	}
	if pf.RGBBitCount == 32 {
		return "RGBA"
	}
	return "RGB "
}

// String renders one line summarizing a report, e.g. for the CLI -I flag.
func (i Info) String() string {
	s := fmt.Sprintf("%dx%d L=%d %s", i.Width, i.Height, i.MipLevels, i.Format)
	if i.NormalMap {
		s += " NORMAL_MAP"
	}
	return s
}
