// Command shaderlintctl is a standalone command-line front end over the
// shader tooling core: it inspects a single file's symbols, batch
// validates files against their configured external compiler, or
// watches a directory and reports cache invalidation as files change.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boralg/shadersense/config"
	"github.com/boralg/shadersense/logging"
)

// Config holds the flags shared across subcommands.
type Config struct {
	ConfigPath string
	project    config.Project
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "shaderlintctl",
		Short: "Shader symbol inspection and validation from the command line",
		Long: `shaderlintctl exposes the shader tooling core outside of an editor:
list a file's symbols, validate files with the configured external
compilers, or watch a directory and report cache invalidation.`,
		Example: `  # List symbols in a single file
  shaderlintctl symbols tonemap.hlsl

  # Validate a batch of files concurrently
  shaderlintctl validate shaders/*.hlsl

  # Watch a directory for changes
  shaderlintctl watch ./shaders`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Init()
			project, err := config.Load(cfg.ConfigPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg.project = project
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ConfigPath, "config", "shaderlsp.jsonc", "path to the project configuration file")

	rootCmd.AddCommand(newSymbolsCmd(&cfg))
	rootCmd.AddCommand(newValidateCmd(&cfg))
	rootCmd.AddCommand(newWatchCmd(&cfg))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
