package image

import "github.com/ducakar/img2dds/pkg/colorf"

// normalMapTolerance is the squared-length tolerance for the per-pixel unit
// vector test. A tighter value reduces false positives at the cost of
// rejecting more borderline normal maps.
const normalMapTolerance = 0.8

// normalMapMinAlpha is the minimum alpha a pixel must carry to be considered
// by the normal-map heuristic at all.
const normalMapMinAlpha = 0.9

// normalMapMeanTolerance bounds the squared magnitude of the whole-image
// mean tangent/bitangent/recentered-Z vector.
const normalMapMeanTolerance = 0.1

// DetermineAlpha scans d's alpha channel and sets FlagAlpha iff any byte is
// not 0xFF. It is idempotent: calling it twice leaves the flag unchanged.
func DetermineAlpha(d *Data) {
	for i := 3; i < len(d.Pixels); i += 4 {
		if d.Pixels[i] != 0xFF {
			d.Flags |= FlagAlpha
			return
		}
	}
}

// IsNormalMap reports whether d's pixels look like a ½-biased unit-vector
// field: per pixel, a recentered RGB vector with squared length near 1 and
// alpha at least normalMapMinAlpha, and a whole-image mean vector close to
// (0, 0, ½) (i.e. an average color near #8080FF). It is pure and returns
// false for an empty image.
func IsNormalMap(d *Data) bool {
	if d.IsEmpty() {
		return false
	}

	var sum colorf.Color
	n := len(d.Pixels) / 4
	for i := 0; i < len(d.Pixels); i += 4 {
		c := colorf.FromRGBA8(d.Pixels[i], d.Pixels[i+1], d.Pixels[i+2], 255).Add(colorf.Color{R: -0.5, G: -0.5, B: -0.5})
		a := float32(d.Pixels[i+3]) / 255

		lenSq := c.DotRGB()
		if abs32(1-lenSq) > normalMapTolerance || a < normalMapMinAlpha {
			return false
		}

		sum = sum.Add(c)
	}

	mean := sum.Scale(1 / float32(n))
	mean.B -= 0.5 // recenter Z: normal maps average near Z=1, i.e. biased-Z near ½.
	if mean.DotRGB() >= normalMapMeanTolerance {
		return false
	}
	return true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
