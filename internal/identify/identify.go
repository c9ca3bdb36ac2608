// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package identify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/ostafen/imgsniff/internal/logger"
	"github.com/ostafen/imgsniff/internal/mmap"
	"github.com/ostafen/imgsniff/pkg/imagefmt"
)

type Options struct {
	Jobs    int  // Maximum number of files classified concurrently
	UseMmap bool // Classify the whole mapped file instead of a fixed window
	Hash    bool // Compute an xxhash digest of the file content

	Logger hclog.Logger
}

// Result is the outcome of classifying a single file.
// Err is set when the file could not be read or classified.
type Result struct {
	Path   string
	Size   int64
	Format imagefmt.Format
	Digest string // Hex encoded xxhash64, empty unless requested
	Err    error
}

// Recognized reports whether a format was detected.
func (r Result) Recognized() bool {
	return r.Err == nil && r.Format != imagefmt.Unknown
}

// Run classifies every regular file found under paths. Directories are walked
// recursively. Results follow the order in which files were discovered.
// Per-file failures are reported in Result.Err; Run itself fails only when a
// path cannot be walked or ctx is cancelled.
func Run(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	files, err := ListFiles(paths)
	if err != nil {
		return nil, err
	}
	log.Debug("collected files", "count", len(files))

	results := make([]Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Jobs, 1))

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res := identifyFile(path, opts)
			if res.Err != nil {
				log.Warn("unable to identify file", "path", path, "err", res.Err)
			} else {
				log.Debug("identified file", "path", path, "format", res.Format)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ListFiles expands paths into the regular files they contain.
func ListFiles(paths []string) ([]string, error) {
	var files []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %q: %w", p, err)
		}
	}
	return files, nil
}

func identifyFile(path string, opts Options) Result {
	res := Result{Path: path}

	if opts.UseMmap {
		res.Size, res.Format, res.Digest, res.Err = identifyMapped(path, opts.Hash)
	} else {
		res.Size, res.Format, res.Digest, res.Err = identifyWindow(path, opts.Hash)
	}
	return res
}

// identifyWindow classifies the first imagefmt.WindowSize bytes of the file.
func identifyWindow(path string, hash bool) (int64, imagefmt.Format, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, imagefmt.Unknown, "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, imagefmt.Unknown, "", err
	}

	format, err := imagefmt.DetectReader(f)
	if err != nil {
		return info.Size(), imagefmt.Unknown, "", err
	}

	var digest string
	if hash {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return info.Size(), format, "", err
		}

		h := xxhash.New()
		if _, err := io.Copy(h, f); err != nil {
			return info.Size(), format, "", fmt.Errorf("failed to hash file: %w", err)
		}
		digest = formatDigest(h.Sum64())
	}
	return info.Size(), format, digest, nil
}

// identifyMapped classifies the whole mapped file. Unlike the window mode,
// short or unrecognized content yields imagefmt.Unknown without an error.
func identifyMapped(path string, hash bool) (int64, imagefmt.Format, string, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return 0, imagefmt.Unknown, "", err
	}
	defer m.Close()

	format := imagefmt.Detect(m.Data)

	var digest string
	if hash {
		digest = formatDigest(xxhash.Sum64(m.Data))
	}
	return m.Size, format, digest, nil
}

func formatDigest(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}

// Summary counts results per outcome.
type Summary struct {
	Files      int
	Recognized int
	Unknown    int
	ShortReads int
	Failed     int
	ByFormat   map[imagefmt.Format]int
	TotalBytes int64
}

func Summarize(results []Result) Summary {
	s := Summary{
		Files:    len(results),
		ByFormat: make(map[imagefmt.Format]int),
	}

	for _, r := range results {
		s.TotalBytes += r.Size

		switch {
		case r.Recognized():
			s.Recognized++
			s.ByFormat[r.Format]++
		case r.Err == nil, errors.Is(r.Err, imagefmt.ErrNotRecognized):
			s.Unknown++
		case errors.Is(r.Err, imagefmt.ErrShortRead):
			s.ShortReads++
		default:
			s.Failed++
		}
	}
	return s
}
