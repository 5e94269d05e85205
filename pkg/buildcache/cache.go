package buildcache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/DataDog/zstd"
)

// Cache stores resampled level-0 faces on disk under a directory, keyed
// by an opaque key string (typically Key's output).
type Cache struct {
	dir string
}

// Open returns a Cache rooted at $XDG_CACHE_HOME/img2dds (or the
// platform default from os.UserCacheDir()). A cache directory that
// cannot be created or used is not an error here — the returned Cache's
// Get always misses and Put always no-ops, so callers fall back to
// recomputing rather than failing the build.
func Open() *Cache {
	base, err := os.UserCacheDir()
	if err != nil {
		return &Cache{}
	}
	dir := filepath.Join(base, "img2dds")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &Cache{}
	}
	return &Cache{dir: dir}
}

// Key derives a cache key from the source file's contents and a string
// describing the build options that affect pixel output (scale, flip,
// flop, swizzle, and compression, which swaps R and B before resampling);
// anything else about the build must not be folded in.
func Key(sourceContents []byte, optionsDescriptor string) string {
	h := sha256.New()
	h.Write(sourceContents)
	h.Write([]byte{0})
	h.Write([]byte(optionsDescriptor))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".i2dc")
}

// Get returns the cached pixel buffer for key, if present and
// well-formed. A missing or corrupt entry is reported as (nil, false) —
// never as an error the caller must handle specially.
func (c *Cache) Get(key string) ([]byte, bool) {
	if c.dir == "" {
		return nil, false
	}
	f, err := os.Open(c.path(key))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	data, err := decode(f)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Put stores pixels under key. Failures are silently dropped: the cache
// is an optimization, and a write failure must not fail the build.
func (c *Cache) Put(key string, pixels []byte) {
	if c.dir == "" {
		return
	}
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return
	}
	tmpName := f.Name()
	defer os.Remove(tmpName)

	if err := encode(f, pixels); err != nil {
		f.Close()
		return
	}
	if err := f.Close(); err != nil {
		return
	}
	os.Rename(tmpName, c.path(key))
}

func encode(w io.Writer, data []byte) error {
	compressed, err := zstd.CompressLevel(nil, data, zstd.BestSpeed)
	if err != nil {
		return fmt.Errorf("buildcache: compress: %w", err)
	}
	hdr := newHeader(uint64(len(data)), uint64(len(compressed)))
	if _, err := w.Write(hdr.marshalBinary()); err != nil {
		return fmt.Errorf("buildcache: write header: %w", err)
	}
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("buildcache: write payload: %w", err)
	}
	return nil
}

func decode(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buildcache: read entry: %w", err)
	}
	if len(raw) < headerSize {
		return nil, fmt.Errorf("buildcache: entry truncated")
	}

	var hdr header
	if err := hdr.unmarshalBinary(raw[:headerSize]); err != nil {
		return nil, err
	}
	compressed := raw[headerSize:]
	if uint64(len(compressed)) != hdr.compressedLength {
		return nil, fmt.Errorf("buildcache: compressed length mismatch")
	}

	data, err := zstd.Decompress(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("buildcache: decompress: %w", err)
	}
	if uint64(len(data)) != hdr.length {
		return nil, fmt.Errorf("buildcache: uncompressed length mismatch")
	}
	return data, nil
}
