package main

import (
	"fmt"
	"os"

	"github.com/ducakar/img2dds/pkg/dds"
)

// runWrap prefixes a headerless raw BC payload with the DDS header its
// sidecar metadata describes, for pipelines that produce compressed
// pixel data and metadata separately and only need the container built
// at the end.
func runWrap(args []string) int {
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: img2dds wrap <metadata-file> <raw-bc-file> <output.dds>")
		return 1
	}
	metaPath, rawPath, outPath := args[0], args[1], args[2]

	metaFile, err := os.Open(metaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "img2dds: %v\n", err)
		return 1
	}
	defer metaFile.Close()

	meta, err := dds.ParseMetadata(metaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "img2dds: %v\n", err)
		return 1
	}

	raw, err := os.ReadFile(rawPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "img2dds: %v\n", err)
		return 1
	}

	out, err := dds.SynthesizeHeader(raw, meta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "img2dds: %v\n", err)
		return 1
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "img2dds: %v\n", err)
		return 1
	}
	return 0
}
