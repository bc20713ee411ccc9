// Command iconforge converts a single source icon image into the
// platform asset set: a multi-resolution Windows ICO plus Android legacy
// and adaptive launcher icons for every density bucket.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sydlexius/iconforge/internal/config"
	"github.com/sydlexius/iconforge/internal/logging"
	"github.com/sydlexius/iconforge/internal/pipeline"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <source-image> <output-dir>\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(sourcePath, outDir string) error {
	configPath := os.Getenv("ICONFORGE_CONFIG")
	if configPath == "" {
		configPath = "iconforge.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closer := logging.New(cfg.Logging)
	if closer != nil {
		defer closer.Close() //nolint:errcheck
	}

	summary, err := pipeline.Run(context.Background(), sourcePath, outDir, pipeline.Options{
		Workers: cfg.Emit.Workers,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("wrote %d of %d targets to %s\n", summary.Written(), len(summary.Results), outDir)
	if failed := summary.Failed(); len(failed) > 0 {
		for _, r := range failed {
			fmt.Fprintf(os.Stderr, "failed %s (%s): %v\n", r.Name, r.Path, r.Err)
		}
		return fmt.Errorf("%d target(s) failed", len(failed))
	}

	return nil
}
