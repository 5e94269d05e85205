package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/ducakar/img2dds/pkg/buildcache"
	"github.com/ducakar/img2dds/pkg/dds"
	"github.com/ducakar/img2dds/pkg/image"
	"github.com/ducakar/img2dds/pkg/raster"
)

var recognizedExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tga": true, ".mbm": true,
}

type batchJob struct {
	path, outPath string
}

type batchResult struct {
	job batchJob
	err error
}

// runBatch walks inputDir for recognized raster files and builds each to
// its mirrored location under outputDir, dispatching across a worker pool
// the way extractFilesFromPackage dispatches decompression jobs — minus
// its strict-ordering requirement, since batch outputs are independent
// files.
func runBatch(args []string) int {
	fs := flag.NewFlagSet("img2dds batch", flag.ContinueOnError)
	var f buildFlags
	parseBuildFlags(fs, &f)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	rest := fs.Args()
	if len(rest) != 2 {
		fmt.Fprintln(os.Stderr, "usage: img2dds batch [-cmsSn] [-hv] [-r scale] <inputDir> <outputDir>")
		return 1
	}
	inputDir, outputDir := rest[0], rest[1]
	opts := f.options()
	cache := buildcache.Open()

	var jobs []batchJob
	err := filepath.Walk(inputDir, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !recognizedExtensions[ext] && ext != "" {
			return nil
		}
		rel, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		outPath := filepath.Join(outputDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".dds")
		jobs = append(jobs, batchJob{path: path, outPath: outPath})
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "img2dds: walk %s: %v\n", inputDir, err)
		return 1
	}

	numWorkers := runtime.NumCPU()
	jobCh := make(chan batchJob, numWorkers*2)
	resultCh := make(chan batchResult, len(jobs))
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for job := range jobCh {
			resultCh <- batchResult{job: job, err: buildOne(job, opts, cache)}
		}
	}
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go worker()
	}

	go func() {
		for _, j := range jobs {
			jobCh <- j
		}
		close(jobCh)
	}()

	succeeded, failed := 0, 0
	for range jobs {
		res := <-resultCh
		if res.err != nil {
			fmt.Fprintf(os.Stderr, "img2dds: %s: %v\n", res.job.path, res.err)
			failed++
		} else {
			succeeded++
			fmt.Printf("\033[2K\rBuilt %d/%d, %d failed", succeeded, len(jobs), failed)
		}
	}
	wg.Wait()
	fmt.Printf("\ndone: %d built, %d failed\n", succeeded, failed)

	if failed > 0 {
		return 1
	}
	return 0
}

func buildOne(job batchJob, opts dds.Options, cache *buildcache.Cache) error {
	sourceContents, err := os.ReadFile(job.path)
	if err != nil {
		return err
	}
	img, err := raster.Load(job.path)
	if err != nil {
		return err
	}

	faceOpts := opts
	if img.Flags&image.FlagNormal != 0 {
		faceOpts.Bits |= dds.NormalMap
		faceOpts.Bits &^= dds.YYYX | dds.ZYZX
	}
	faceOpts.Cache = cache
	faceOpts.CacheKey = buildcache.Key(sourceContents, cacheDescriptor(faceOpts))

	out, err := dds.Build([]image.Data{img}, faceOpts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(job.outPath), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	return os.WriteFile(job.outPath, out, 0o644)
}
