package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vango-dev/termkit/internal/config"
	"github.com/vango-dev/termkit/internal/errors"
)

func (a *app) initCmd() *cobra.Command {
	var (
		components string
		registry   string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create termkit.json in the current directory",
		Long: `Create termkit.json in the current directory.

By default widgets come from the catalog built into termkit and are
installed under internal/tui/<name>.

Examples:
  termkit init
  termkit init --components pkg/ui
  termkit init --registry https://registry.example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			return a.runInit(cmd, wd, components, registry)
		},
	}

	cmd.Flags().StringVar(&components, "components", config.DefaultComponentsPath, "Directory to install components into")
	cmd.Flags().StringVar(&registry, "registry", "", "URL of an HTTP registry (default: built-in catalog)")

	return cmd
}

func (a *app) runInit(cmd *cobra.Command, dir, components, registryURL string) error {
	out := cmd.OutOrStdout()

	if config.Exists(dir) {
		return errors.New("E100").
			WithDetail(config.ConfigFileName + " already exists in " + dir).
			WithSuggestion("Edit it directly, or remove it and run 'termkit init' again")
	}

	cfg := config.New()
	cfg.Name = filepath.Base(dir)
	cfg.Paths.Components = components
	if registryURL != "" {
		cfg.Registry.Source = config.SourceHTTP
		cfg.Registry.URL = registryURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		return err
	}

	success(out, "Created %s", config.ConfigFileName)
	info(out, "Components: %s/<name>", cfg.ComponentsPath())
	info(out, "Ledger:     %s", cfg.LedgerPath())
	info(out, "Registry:   %s", cfg.Registry.Source)
	out.Write([]byte("\n"))
	info(out, "Add widgets with: termkit add spinner statusbar")
	return nil
}
