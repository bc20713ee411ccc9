// Package pipeline orchestrates a run: decode the source, strip its
// background, crop to content, then render and write every catalog target.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sydlexius/iconforge/internal/catalog"
	"github.com/sydlexius/iconforge/internal/emit"
	"github.com/sydlexius/iconforge/internal/filesystem"
	"github.com/sydlexius/iconforge/internal/icon"
)

// BaseTransparentName is the debug artifact holding the stripped-and-cropped
// source, written alongside the platform assets.
const BaseTransparentName = "base_transparent.png"

// Options configures a run.
type Options struct {
	// Workers bounds concurrent target emission. Values below 1 mean 1.
	Workers int
	// Stripper removes the source background. Nil selects the stock
	// near-white stripper.
	Stripper icon.Stripper
	// Logger receives per-target progress. Nil discards logs.
	Logger *slog.Logger
}

// TargetResult records the outcome of one target.
type TargetResult struct {
	Name string
	Path string
	Err  error
}

// Summary reports what a run produced. Individual target failures land
// here rather than aborting the run, so one unwritable path cannot block
// unrelated platform assets.
type Summary struct {
	Results []TargetResult
	Elapsed time.Duration
}

// Written counts targets that were persisted successfully.
func (s *Summary) Written() int {
	n := 0
	for _, r := range s.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the results of targets that could not be produced.
func (s *Summary) Failed() []TargetResult {
	var failed []TargetResult
	for _, r := range s.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// Run executes the full pipeline for one source image. Decode failures are
// fatal and return an error with no partial catalog attempted; everything
// after a successful crop is isolated per target and reported through the
// Summary.
func Run(ctx context.Context, sourcePath, outDir string, opts Options) (*Summary, error) {
	start := time.Now()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	stripper := opts.Stripper
	if stripper == nil {
		stripper = icon.DefaultStripper
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	src, err := icon.Load(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("loading source image: %w", err)
	}

	stripped := stripper.Strip(src)
	cropped := icon.CropToContent(stripped)
	logger.Debug("prepared source",
		slog.String("source", sourcePath),
		slog.Int("width", cropped.Bounds().Dx()),
		slog.Int("height", cropped.Bounds().Dy()))

	summary := &Summary{}
	var mu sync.Mutex
	record := func(r TargetResult) {
		mu.Lock()
		summary.Results = append(summary.Results, r)
		mu.Unlock()
	}

	record(writeBaseTransparent(cropped, outDir, logger))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, target := range catalog.Targets() {
		target := target
		g.Go(func() error {
			record(emitTarget(ctx, cropped, target, outDir, logger))
			// Target failures are collected, never propagated: one bad
			// path must not cancel the remaining targets.
			return nil
		})
	}
	g.Wait() //nolint:errcheck // group funcs always return nil

	summary.Elapsed = time.Since(start)

	failed := summary.Failed()
	logger.Info("run complete",
		slog.Int("written", summary.Written()),
		slog.Int("failed", len(failed)),
		slog.Duration("elapsed", summary.Elapsed))
	for _, r := range failed {
		logger.Warn("target failed",
			slog.String("target", r.Name),
			slog.String("error", r.Err.Error()))
	}

	return summary, nil
}

// writeBaseTransparent persists the stripped-and-cropped raster for
// inspection and debugging.
func writeBaseTransparent(cropped *image.NRGBA, outDir string, logger *slog.Logger) TargetResult {
	result := TargetResult{Name: "base-transparent", Path: BaseTransparentName}

	data, err := icon.EncodePNG(cropped)
	if err != nil {
		result.Err = fmt.Errorf("rendering: %w", err)
		return result
	}
	if err := filesystem.WriteFileAtomic(filepath.Join(outDir, BaseTransparentName), data, 0o644); err != nil {
		result.Err = fmt.Errorf("writing: %w", err)
		return result
	}

	logger.Debug("wrote base transparent", slog.String("path", BaseTransparentName))
	return result
}

// emitTarget renders one catalog target and writes it under outDir.
func emitTarget(ctx context.Context, cropped *image.NRGBA, target catalog.Target, outDir string, logger *slog.Logger) TargetResult {
	result := TargetResult{Name: target.Name, Path: target.Path}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	data, err := emit.Render(cropped, target)
	if err != nil {
		result.Err = fmt.Errorf("rendering: %w", err)
		return result
	}

	if err := filesystem.WriteFileAtomic(filepath.Join(outDir, target.Path), data, 0o644); err != nil {
		result.Err = fmt.Errorf("writing: %w", err)
		return result
	}

	logger.Debug("wrote target",
		slog.String("target", target.Name),
		slog.String("path", target.Path),
		slog.Int("bytes", len(data)))
	return result
}
