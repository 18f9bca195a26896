package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/boralg/shadersense/cache"
	"github.com/boralg/shadersense/logging"
	"github.com/boralg/shadersense/module"
	"github.com/boralg/shadersense/preprocessor"
	"github.com/boralg/shadersense/shading"
	"github.com/boralg/shadersense/symbols"
)

func newWatchCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory of shader files and report cache invalidation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), args[0])
		},
	}
}

func runWatch(ctx context.Context, dir string) error {
	watcher, err := cache.NewWatcher()
	if err != nil {
		return err
	}

	handles := make(map[string]*cache.Handle)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		lang, ok := shading.LanguageFromFilename(path)
		if !ok {
			continue
		}

		h := cache.NewHandle(path, extractorFor(lang))
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		parser := module.NewParser(lang)
		m, err := parser.Create(path, lang, string(content))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			parser.Close()
			continue
		}
		if err := h.Open(m); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		}
		if err := watcher.Watch(h); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		handles[path] = h
		fmt.Printf("watching %s\n", path)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go reportDirty(ctx, handles)

	watcher.Run(ctx)
	return nil
}

// extractorFor builds a cache.Extract closure that re-runs the matching
// language's symbol extractor and preprocessor evaluator over the module
// it is given; it does not re-read or re-parse the file from disk.
func extractorFor(lang shading.Language) cache.Extract {
	return func(m *module.ShaderModule) (*symbols.List, *preprocessor.Preprocessor, error) {
		extractor, err := newExtractor(lang)
		if err != nil {
			return nil, nil, err
		}
		defer extractor.Close()

		list, extractErrs := extractor.Extract(m)
		for _, e := range extractErrs {
			logging.Logger.Warn("symbol extraction error", "err", e)
		}

		evaluator, err := newPreprocessorEvaluator(lang)
		if err != nil {
			return nil, nil, err
		}
		defer evaluator.Close()

		ctx := preprocessor.NewContext(m.FilePath, nil, nil)
		pre, evalErrs := evaluator.Evaluate(m, ctx)
		for _, e := range evalErrs {
			logging.Logger.Warn("preprocessor evaluation error", "err", e)
		}

		return list, pre, nil
	}
}

// reportDirty polls each handle's state until ctx is cancelled, printing
// a line whenever a watched file transitions to Dirty.
func reportDirty(ctx context.Context, handles map[string]*cache.Handle) {
	reported := make(map[string]bool)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for path, h := range handles {
				dirty := h.State() == cache.Dirty
				if dirty && !reported[path] {
					fmt.Printf("dirty: %s\n", path)
					reported[path] = true
				}
				if !dirty {
					reported[path] = false
				}
			}
		}
	}
}
