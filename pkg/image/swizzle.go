package image

// SwizzleYYYX rewrites every pixel's (R,G,B,A) to (G,G,G,R) — the DXT5nm
// packing normal maps use so the compressor's best-preserved channels (G
// and A) carry the two components that matter most. It forces FlagAlpha on
// since the rewritten A channel now carries real data.
func SwizzleYYYX(d *Data) {
	for i := 0; i < len(d.Pixels); i += 4 {
		r, g := d.Pixels[i], d.Pixels[i+1]
		d.Pixels[i] = g
		d.Pixels[i+1] = g
		d.Pixels[i+2] = g
		d.Pixels[i+3] = r
	}
	d.Flags |= FlagAlpha
}

// SwizzleZYZX rewrites every pixel's (R,G,B,A) to (B,G,B,R), the DXT5nm+z
// variant that additionally preserves the Z component in B. It forces
// FlagAlpha on for the same reason as SwizzleYYYX.
func SwizzleZYZX(d *Data) {
	for i := 0; i < len(d.Pixels); i += 4 {
		r, g, b := d.Pixels[i], d.Pixels[i+1], d.Pixels[i+2]
		d.Pixels[i] = b
		d.Pixels[i+1] = g
		d.Pixels[i+2] = b
		d.Pixels[i+3] = r
	}
	d.Flags |= FlagAlpha
}

// SwapRB swaps the R and B channels in place, feeding a block compressor
// that expects BGRA ordering.
func SwapRB(d *Data) {
	for i := 0; i < len(d.Pixels); i += 4 {
		d.Pixels[i], d.Pixels[i+2] = d.Pixels[i+2], d.Pixels[i]
	}
}

// TargetBPP selects 32 or 24 bits per pixel per the rules: alpha or
// compression or (more than one face outside a cube map) forces 32;
// otherwise 24, dropping the alpha channel from the uncompressed payload.
func TargetBPP(alpha, compression bool, numFaces int, cubeMap bool) int {
	if alpha || compression || (numFaces > 1 && !cubeMap) {
		return 32
	}
	return 24
}

// DropAlpha compacts a 32-bpp RGBA buffer into a tightly packed 24-bpp RGB
// buffer, discarding the alpha channel. The input buffer is unchanged; a
// new buffer is returned.
func DropAlpha(pixels []byte) []byte {
	out := make([]byte, 0, len(pixels)/4*3)
	for i := 0; i < len(pixels); i += 4 {
		out = append(out, pixels[i], pixels[i+1], pixels[i+2])
	}
	return out
}
