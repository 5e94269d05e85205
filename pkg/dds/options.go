package dds

import "github.com/ducakar/img2dds/pkg/buildcache"

// Options is an immutable bitset of per-build configuration, plus a
// floating-point scale factor applied to every face before mip generation.
type Options struct {
	Bits  OptionBits
	Scale float64

	// Cache, if non-nil, is consulted for the oriented, resampled
	// level-0 face under CacheKey before resampling it from scratch.
	// Both are zero-valued for the common case of an uncached build.
	Cache    *buildcache.Cache
	CacheKey string
}

// OptionBits is a bitset of build options.
type OptionBits uint32

const (
	CubeMap OptionBits = 1 << iota
	NormalMap
	Mipmaps
	Compression
	Flip
	Flop
	YYYX
	ZYZX
)

func (o Options) has(bit OptionBits) bool { return o.Bits&bit != 0 }

// EffectiveScale returns o.Scale, defaulting to 1.0 for a zero value so a
// zero-value Options still behaves as an identity-scale build.
func (o Options) EffectiveScale() float64 {
	if o.Scale == 0 {
		return 1.0
	}
	return o.Scale
}
