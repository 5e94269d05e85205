// Package buildcache stores the oriented, resampled level-0 face of a
// build — the single most expensive step to reproduce — keyed by a hash
// of the source file plus the build options that affect pixel output. A
// cache miss or a corrupt entry never changes build output, only build
// time: every entry is zstd-framed exactly like a from-scratch rebuild
// would have produced, so a corrupt read is always safe to discard and
// recompute.
package buildcache

import (
	"encoding/binary"
	"fmt"
)

// magic identifies a cache entry file.
var magic = [4]byte{0x49, 0x32, 0x44, 0x43} // "I2DC"

// headerSize is the fixed binary size of an entry header.
const headerSize = 24 // 4 + 4 + 8 + 8 bytes

// header precedes the zstd-compressed level-0 pixel buffer in a cache
// entry file.
type header struct {
	magic            [4]byte
	headerLength     uint32
	length           uint64 // uncompressed size
	compressedLength uint64 // compressed size
}

func (h *header) validate() error {
	if h.magic != magic {
		return fmt.Errorf("buildcache: bad magic %x", h.magic)
	}
	if h.headerLength != 16 {
		return fmt.Errorf("buildcache: bad header length %d", h.headerLength)
	}
	if h.length == 0 || h.compressedLength == 0 {
		return fmt.Errorf("buildcache: zero-length entry")
	}
	return nil
}

func (h *header) marshalBinary() []byte {
	buf := make([]byte, headerSize)
	copy(buf[0:4], h.magic[:])
	binary.LittleEndian.PutUint32(buf[4:8], h.headerLength)
	binary.LittleEndian.PutUint64(buf[8:16], h.length)
	binary.LittleEndian.PutUint64(buf[16:24], h.compressedLength)
	return buf
}

func (h *header) unmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return fmt.Errorf("buildcache: header truncated: need %d, got %d", headerSize, len(data))
	}
	copy(h.magic[:], data[0:4])
	h.headerLength = binary.LittleEndian.Uint32(data[4:8])
	h.length = binary.LittleEndian.Uint64(data[8:16])
	h.compressedLength = binary.LittleEndian.Uint64(data[16:24])
	return h.validate()
}

func newHeader(uncompressed, compressed uint64) *header {
	return &header{magic: magic, headerLength: 16, length: uncompressed, compressedLength: compressed}
}
