package dds

// buildHeader assembles the legacy header and, when the format calls for
// it, the DX10 extension. dx10 is nil unless the FourCC is "DX10".
func buildHeader(w, h, bpp, numLevels, numFaces, level0Storage int, alpha, compression, mipmaps, cubeMap, normalMap bool) (Header, *DX10Header) {
	flags := uint32(flagCaps | flagHeight | flagWidth | flagPixelFormat)
	if mipmaps {
		flags |= flagMipMapCount
	}
	var pitchOrLinearSize uint32
	if compression {
		flags |= flagLinearSize
		pitchOrLinearSize = uint32(level0Storage)
	} else {
		flags |= flagPitch
		pitchOrLinearSize = uint32(((w*bpp/8 + 3) / 4) * 4)
	}

	caps := uint32(capsTexture)
	if mipmaps {
		caps |= capsComplex | capsMipMap
	}
	if cubeMap {
		caps |= capsComplex
	}

	caps2 := uint32(0)
	if cubeMap {
		caps2 = cube2
	}

	isArray := !cubeMap && numFaces > 1

	pf := PixelFormat{Size: PixelFmtSize}
	if alpha {
		pf.Flags |= pfAlphaPixels
	}
	if normalMap {
		pf.Flags |= pfNormal
	}

	switch {
	case isArray:
		pf.Flags |= pfFourCC
		pf.FourCC = [4]byte{'D', 'X', '1', '0'}
	case compression:
		pf.Flags |= pfFourCC
		if alpha {
			pf.FourCC = [4]byte{'D', 'X', 'T', '5'}
		} else {
			pf.FourCC = [4]byte{'D', 'X', 'T', '1'}
		}
	default:
		pf.Flags |= pfRGB
	}

	if !compression {
		pf.RGBBitCount = uint32(bpp)
		pf.RBitMask = 0x00FF0000
		pf.GBitMask = 0x0000FF00
		pf.BBitMask = 0x000000FF
		pf.ABitMask = 0xFF000000
	}

	hdr := Header{
		Magic:             Magic,
		Size:              HeaderSize,
		Flags:             flags,
		Height:            uint32(h),
		Width:             uint32(w),
		PitchOrLinearSize: pitchOrLinearSize,
		Depth:             0,
		MipMapCount:       uint32(numLevels),
		PixelFormat:       pf,
		Caps:              caps,
		Caps2:             caps2,
	}

	if !isArray {
		return hdr, nil
	}

	var dxgiFormat uint32
	switch {
	case !compression:
		dxgiFormat = DXGIFormatR8G8B8A8Unorm
	case alpha:
		dxgiFormat = DXGIFormatBC3Unorm
	default:
		dxgiFormat = DXGIFormatBC1Unorm
	}

	return hdr, &DX10Header{
		DXGIFormat:        dxgiFormat,
		ResourceDimension: resourceDimensionTexture2D,
		ArraySize:         uint32(numFaces),
	}
}
