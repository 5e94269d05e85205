// img2dds builds DDS texture files from conventional raster images (and
// the legacy MBM container), optionally compressing and mipmapping them.
//
// Usage:
//
//	img2dds [-IN] [-hv] [-cmsSn] [-r scale] <input> [<output>]
//	img2dds batch [-cmsSn] [-hv] [-r scale] <inputDir> <outputDir>
//	img2dds info <input.dds>
//	img2dds wrap <metadata-file> <raw-bc-file> <output.dds>
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ducakar/img2dds/pkg/buildcache"
	"github.com/ducakar/img2dds/pkg/dds"
	"github.com/ducakar/img2dds/pkg/image"
	"github.com/ducakar/img2dds/pkg/raster"
)

// cacheDescriptor summarizes the options that affect pixel output, for
// folding into a cache key alongside the source file's contents.
func cacheDescriptor(opts dds.Options) string {
	return fmt.Sprintf("bits=%x;scale=%g", opts.Bits&(dds.Flip|dds.Flop|dds.YYYX|dds.ZYZX|dds.Compression), opts.EffectiveScale())
}

func main() {
	raster.Init()
	defer raster.Destroy()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "batch":
			os.Exit(runBatch(os.Args[2:]))
		case "info":
			os.Exit(runInfo(os.Args[2:]))
		case "wrap":
			os.Exit(runWrap(os.Args[2:]))
		}
	}

	os.Exit(runBuild(os.Args[1:]))
}

type buildFlags struct {
	info, normalTest, flop, flip, compress, mipmaps, normal, yyyx, zyzx bool
	scale                                                               string
}

func parseBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	fs.BoolVar(&f.info, "I", false, "print DDS info and exit")
	fs.BoolVar(&f.normalTest, "N", false, "test the normal-map heuristic and exit")
	fs.BoolVar(&f.flop, "h", false, "horizontal flip (flop)")
	fs.BoolVar(&f.flip, "v", false, "vertical flip")
	fs.BoolVar(&f.compress, "c", false, "DXT1/DXT5 block compression")
	fs.BoolVar(&f.mipmaps, "m", false, "generate a full mipmap chain")
	fs.BoolVar(&f.normal, "n", false, "mark the output as a normal map")
	fs.BoolVar(&f.yyyx, "s", false, "YYYX swizzle (DXT5nm)")
	fs.BoolVar(&f.zyzx, "S", false, "ZYZX swizzle (DXT5nm+z)")
	fs.StringVar(&f.scale, "r", "1.0", "scale factor")
}

func (f *buildFlags) options() dds.Options {
	var bits dds.OptionBits
	if f.compress {
		bits |= dds.Compression
	}
	if f.mipmaps {
		bits |= dds.Mipmaps
	}
	if f.normal {
		bits |= dds.NormalMap
	}
	if f.flip {
		bits |= dds.Flip
	}
	if f.flop {
		bits |= dds.Flop
	}
	if f.yyyx {
		bits |= dds.YYYX
	}
	if f.zyzx {
		bits |= dds.ZYZX
	}

	scale, err := strconv.ParseFloat(f.scale, 64)
	if err != nil {
		scale = 1.0
	}
	return dds.Options{Bits: bits, Scale: scale}
}

func runBuild(args []string) int {
	fs := flag.NewFlagSet("img2dds", flag.ContinueOnError)
	var f buildFlags
	parseBuildFlags(fs, &f)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "usage: img2dds [-IN] [-hv] [-cmsSn] [-r scale] <input> [<output>]")
		return 1
	}
	input := rest[0]

	if f.info {
		data, err := os.ReadFile(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "img2dds: %v\n", err)
			return 1
		}
		info, err := dds.ReadInfo(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "img2dds: %v\n", err)
			return 1
		}
		fmt.Println(info.String())
		return 0
	}

	sourceContents, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "img2dds: %v\n", err)
		return 1
	}
	img, err := raster.Load(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "img2dds: %v\n", err)
		return 1
	}

	if f.normalTest {
		if image.IsNormalMap(&img) {
			return 0
		}
		return 1
	}

	var output string
	if len(rest) >= 2 {
		output = rest[1]
	} else {
		ext := filepath.Ext(input)
		if ext == "" {
			fmt.Fprintln(os.Stderr, "img2dds: input has no extension and no explicit output was given")
			return 1
		}
		output = strings.TrimSuffix(input, ext) + ".dds"
	}

	opts := f.options()
	if img.Flags&image.FlagNormal != 0 {
		opts.Bits |= dds.NormalMap
		opts.Bits &^= dds.YYYX | dds.ZYZX
	}
	opts.Cache = buildcache.Open()
	opts.CacheKey = buildcache.Key(sourceContents, cacheDescriptor(opts))

	out, err := dds.Build([]image.Data{img}, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "img2dds: %v\n", err)
		return 1
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "img2dds: %v\n", err)
		return 1
	}
	return 0
}
