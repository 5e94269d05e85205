package dds

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ducakar/img2dds/pkg/buildcache"
	"github.com/ducakar/img2dds/pkg/image"
	"github.com/ducakar/img2dds/pkg/resample"
	"github.com/ducakar/img2dds/pkg/squish"
)

// faceCacheKey derives the per-face cache key from the build's base key,
// empty when the build has no cache key of its own.
func faceCacheKey(baseKey string, faceIndex int) string {
	if baseKey == "" {
		return ""
	}
	return fmt.Sprintf("%s:face%d", baseKey, faceIndex)
}

// level is one mip level of one prepared face: its dimensions and its
// final payload bytes (compressed blocks or raw scanlines).
type level struct {
	w, h    int
	payload []byte
}

// Build runs the classifier, face preparer, payload emitter, and header
// emitter over faces and returns a complete DDS file. For a cube map
// faces must be given in +X,-X,+Y,-Y,+Z,-Z order and len(faces) must be 6
// when opts.Bits has CubeMap set; without CubeMap, more than one face
// builds a texture array.
func Build(faces []image.Data, opts Options) ([]byte, error) {
	if len(faces) < 1 {
		return nil, newErr(EmptyFaces, "no faces given")
	}
	if opts.has(CubeMap) && len(faces) != 6 {
		return nil, newErr(CubeArity, "cube map requires exactly 6 faces, got %d", len(faces))
	}

	w, h := faces[0].Width, faces[0].Height
	for i, f := range faces {
		if f.Width != w || f.Height != h {
			return nil, newErr(ShapeMismatch, "face %d is %dx%d, expected %dx%d", i, f.Width, f.Height, w, h)
		}
	}

	scale := opts.EffectiveScale()
	w2 := int(math.Max(1, math.Round(float64(w)*scale)))
	h2 := int(math.Max(1, math.Round(float64(h)*scale)))

	prepared := make([]image.Data, len(faces))
	alpha := false
	for i := range faces {
		f := faces[i].Clone()
		image.DetermineAlpha(&f)

		if opts.has(Flip) {
			image.Flip(&f)
		}
		if opts.has(Flop) {
			image.Flop(&f)
		}

		switch {
		case opts.has(YYYX):
			image.SwizzleYYYX(&f)
		case opts.has(ZYZX):
			image.SwizzleZYZX(&f)
		case opts.has(Compression):
			image.SwapRB(&f)
		}

		if f.Flags&image.FlagAlpha != 0 {
			alpha = true
		}
		prepared[i] = f
	}

	compression := opts.has(Compression)
	mipmaps := opts.has(Mipmaps)
	cubeMap := opts.has(CubeMap)
	bpp := image.TargetBPP(alpha, compression, len(faces), cubeMap)

	numLevels := 1
	if mipmaps {
		numLevels = mipLevelCount(w2, h2)
	}

	var faceLevels [][]level
	var level0Storage int
	for i := range prepared {
		key := faceCacheKey(opts.CacheKey, i)
		levels, err := buildFaceLevels(opts.Cache, key, &prepared[i], w, h, w2, h2, numLevels, compression, alpha, bpp)
		if err != nil {
			return nil, err
		}
		faceLevels = append(faceLevels, levels)
		if i == 0 {
			level0Storage = len(levels[0].payload)
		}
	}

	var buf bytes.Buffer
	hdr, dx10 := buildHeader(w2, h2, bpp, numLevels, len(faces), level0Storage, alpha, compression, mipmaps, cubeMap, opts.has(NormalMap))
	if err := binary.Write(&buf, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("dds: write header: %w", err)
	}
	if dx10 != nil {
		if err := binary.Write(&buf, binary.LittleEndian, dx10); err != nil {
			return nil, fmt.Errorf("dds: write dx10 header: %w", err)
		}
	}
	for _, levels := range faceLevels {
		for _, lv := range levels {
			buf.Write(lv.payload)
		}
	}

	return buf.Bytes(), nil
}

// mipLevelCount returns L = floor(log2(max(w,h))) + 1.
func mipLevelCount(w, h int) int {
	m := w
	if h > m {
		m = h
	}
	return int(math.Floor(math.Log2(float64(m)))) + 1
}

func buildFaceLevels(cache *buildcache.Cache, cacheKey string, f *image.Data, srcW, srcH, w2, h2, numLevels int, compression, alpha bool, bpp int) ([]level, error) {
	level0 := resampleLevel0(cache, cacheKey, f.Pixels, srcW, srcH, w2, h2)

	levels := make([]level, numLevels)
	for l := 0; l < numLevels; l++ {
		lw := maxInt(1, w2>>l)
		lh := maxInt(1, h2>>l)

		var pixels []byte
		if lw == w2 && lh == h2 {
			pixels = level0
		} else {
			pixels = resample.Rescale(level0, w2, h2, lw, lh)
		}

		var payload []byte
		if compression {
			flags := squish.ITERATIVE_CLUSTER_FIT | squish.WEIGHT_COLOUR_BY_ALPHA
			if alpha {
				flags |= squish.DXT5
			} else {
				flags |= squish.DXT1
			}
			compressed, err := squish.Compress(pixels, lw, lh, flags)
			if err != nil {
				return nil, fmt.Errorf("dds: compress level %d: %w", l, err)
			}
			payload = compressed
		} else if bpp == 24 {
			payload = image.DropAlpha(pixels)
		} else {
			payload = pixels
		}

		levels[l] = level{w: lw, h: lh, payload: payload}
	}
	return levels, nil
}

// resampleLevel0 resamples a face's source pixels to the build's scaled
// dimensions, consulting cache first since this is the single most
// expensive step to reproduce when a build is re-run unchanged.
func resampleLevel0(cache *buildcache.Cache, cacheKey string, pixels []byte, srcW, srcH, w2, h2 int) []byte {
	if cache != nil && cacheKey != "" {
		if cached, ok := cache.Get(cacheKey); ok {
			return cached
		}
	}
	level0 := resample.Rescale(pixels, srcW, srcH, w2, h2)
	if cache != nil && cacheKey != "" {
		cache.Put(cacheKey, level0)
	}
	return level0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
