package main

import (
	"fmt"
	"os"

	"github.com/ducakar/img2dds/pkg/dds"
)

// runInfo implements the standalone "info" verb, equivalent to the -I
// flag on the single-build form but without requiring any other build
// flags.
func runInfo(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: img2dds info <input.dds>")
		return 1
	}

	data, err := os.ReadFile(args[0])
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
