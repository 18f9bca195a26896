package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/boralg/shadersense/diagnostic"
	"github.com/boralg/shadersense/shading"
	"github.com/boralg/shadersense/validator"
)

func newValidateCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <files...>",
		Short: "Validate shader files concurrently against their configured external compiler",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cfg, args)
		},
	}
}

type validateResult struct {
	path string
	list diagnostic.List
	err  error
}

func runValidate(ctx context.Context, cfg *Config, paths []string) error {
	results := make([]validateResult, len(paths))

	eg, _ := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			list, err := validateOne(cfg, path)
			results[i] = validateResult{path: path, list: list, err: err}
			return nil
		})
	}
	_ = eg.Wait()

	failed := false
	for _, r := range results {
		printValidateResult(r)
		if r.err != nil || !r.list.IsEmpty() {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("validation reported problems")
	}
	return nil
}

func validateOne(cfg *Config, path string) (diagnostic.List, error) {
	lang, ok := shading.LanguageFromFilename(path)
	if !ok {
		return diagnostic.Empty(), fmt.Errorf("%s: unrecognized shading language", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return diagnostic.Empty(), err
	}

	v, err := newValidator(lang, cfg)
	if err != nil {
		return diagnostic.Empty(), err
	}

	params := validator.Params{
		EntryPoint:           "main",
		Includes:             cfg.project.IncludeDirs,
		Defines:              cfg.project.Defines,
		PathRemapping:        cfg.project.PathRemapping,
		HlslShaderModel:      cfg.project.HlslShaderModel,
		HlslVersion:          cfg.project.HlslVersion,
		HlslEnable16BitTypes: cfg.project.HlslEnable16BitTypes,
		GlslClient:           cfg.project.GlslClient,
		GlslSpirv:            cfg.project.GlslSpirv,
	}

	return v.Validate(string(content), path, params, func(string) (string, bool) { return "", false })
}

func printValidateResult(r validateResult) {
	if r.err != nil {
		fmt.Printf("%s: %v\n", r.path, r.err)
		return
	}
	if r.list.IsEmpty() {
		fmt.Printf("%s: ok\n", r.path)
		return
	}
	for _, d := range r.list.Diagnostics {
		pos := d.Range.Start
		fmt.Printf("%s:%d:%d\t%s\t%s\n", r.path, pos.Line+1, pos.Column+1, d.Severity, d.Message)
	}
}
