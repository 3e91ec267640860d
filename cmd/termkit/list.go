package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vango-dev/termkit/internal/config"
	"github.com/vango-dev/termkit/internal/errors"
	"github.com/vango-dev/termkit/internal/ledger"
	"github.com/vango-dev/termkit/internal/ui"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available components",
		Long: `List the components in the registry.

Inside a project, installed components are marked and pending upgrades
show the installed version. Outside a project the built-in catalog is
listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd)
		},
	}
}

func (a *app) runList(cmd *cobra.Command) (err error) {
	ctx, done := a.commandContext(cmd)
	defer func() { done(err) }()

	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		if !errors.HasCode(err, "E101") {
			return err
		}
		cfg = config.New()
	}

	var p *project
	if cfg.Path() != "" {
		if p, err = a.openProjectWith(cfg); err != nil {
			return err
		}
	} else {
		p = &project{
			cfg:      cfg,
			ledger:   ledger.New(),
			provider: newProvider(cfg, a.logger),
		}
	}

	manifest, err := p.catalog(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), ui.RenderCatalog(manifest, p.ledger))
	return nil
}
