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
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/ostafen/imgsniff/internal/config"
	"github.com/ostafen/imgsniff/internal/identify"
	"github.com/ostafen/imgsniff/pkg/imagefmt"
	"github.com/spf13/cobra"
)

func DefineIdentifyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identify <path>...",
		Short: "Identify the image format of files",
		Long: `The 'identify' command classifies every file given on the command line, walking directories recursively.
Only the leading bytes of each file are inspected; pixel data is never decoded.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunIdentify,
	}

	cmd.Flags().IntP("jobs", "j", cfg.Jobs, "number of files classified concurrently")
	cmd.Flags().Bool("mmap", cfg.UseMmap, "memory map files and classify their whole content")
	cmd.Flags().Bool("hash", cfg.Hash, "compute an xxhash digest of every file")
	cmd.Flags().StringP("output", "o", "", "write a DFXML report to the specified file")
	cmd.Flags().Bool("strict", false, "exit with an error if any file is not recognized")

	return cmd
}

func RunIdentify(cmd *cobra.Command, args []string) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	useMmap, _ := cmd.Flags().GetBool("mmap")
	hash, _ := cmd.Flags().GetBool("hash")
	outputFile, _ := cmd.Flags().GetString("output")
	strict, _ := cmd.Flags().GetBool("strict")

	log := newLogger(cmd, cmd.ErrOrStderr())

	start := time.Now()
	results, err := identify.Run(cmd.Context(), args, identify.Options{
		Jobs:    jobs,
		UseMmap: useMmap,
		Hash:    hash,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	if err := printResults(cmd, results, hash); err != nil {
		return err
	}

	if outputFile != "" {
		if err := writeReport(outputFile, args, results); err != nil {
			return err
		}
		log.Info("report saved", "path", absPath(outputFile))
	}

	summary := identify.Summarize(results)
	log.Info("identification completed",
		"files", summary.Files,
		"recognized", summary.Recognized,
		"unknown", summary.Unknown,
		"short", summary.ShortReads,
		"failed", summary.Failed,
		"total", formatBytes(summary.TotalBytes),
		"duration", time.Since(start).Round(time.Millisecond),
	)

	if strict && summary.Recognized != summary.Files {
		return fmt.Errorf("%d of %d files not recognized", summary.Files-summary.Recognized, summary.Files)
	}
	return nil
}

func printResults(cmd *cobra.Command, results []identify.Result, hash bool) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	header := "PATH\tFORMAT\tEXT\tSIZE"
	if hash {
		header += "\tXXH64"
	}
	fmt.Fprintln(w, header)

	for _, r := range results {
		line := fmt.Sprintf("%s\t%s\t%s\t%s", r.Path, describe(r), ext(r), formatBytes(r.Size))
		if hash {
			line += "\t" + r.Digest
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

func describe(r identify.Result) string {
	switch {
	case r.Err == nil:
		return r.Format.String()
	case errors.Is(r.Err, imagefmt.ErrShortRead):
		return "(too short)"
	case errors.Is(r.Err, imagefmt.ErrNotRecognized):
		return imagefmt.Unknown.String()
	}
	return "(error)"
}

func ext(r identify.Result) string {
	if r.Err != nil {
		return "-"
	}
	return r.Format.Ext()
}

func writeReport(path string, paths []string, results []identify.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %q: %w", path, err)
	}

	if err := identify.WriteReport(f, paths, results); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%dB", b)
	}

	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	val := float64(b) / float64(div)
	if val == float64(int64(val)) {
		return fmt.Sprintf("%.0f%cB", val, "KMGTPE"[exp])
	}
	return fmt.Sprintf("%.2f%cB", val, "KMGTPE"[exp])
}
