package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boralg/shadersense/module"
	"github.com/boralg/shadersense/shading"
	"github.com/boralg/shadersense/symbols"
)

func newSymbolsCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols <file>",
		Short: "List the document symbols extracted from a single shader file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSymbols(args[0])
		},
	}
}

func runSymbols(path string) error {
	lang, ok := shading.LanguageFromFilename(path)
	if !ok {
		return fmt.Errorf("%s: unrecognized shading language", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	parser := module.NewParser(lang)
	defer parser.Close()

	m, err := parser.Create(path, lang, string(content))
	if err != nil {
		return err
	}
	defer m.Close()

	extractor, err := newExtractor(lang)
	if err != nil {
		return err
	}
	defer extractor.Close()

	list, errs := extractor.Extract(m)
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}

	printDocumentSymbols(list)
	return nil
}

func printDocumentSymbols(list *symbols.List) {
	for _, s := range list.DocumentSymbols() {
		pos := s.Range.Range.Start
		fmt.Printf("%s:%d:%d\t%s\t%s\n", s.Range.FilePath, pos.Line+1, pos.Column+1, s.Kind, s.Label)
	}
}
