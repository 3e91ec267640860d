package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vango-dev/termkit/internal/engine"
	"github.com/vango-dev/termkit/internal/ui"
)

func (a *app) updateCmd() *cobra.Command {
	var opts engine.UpgradeOptions

	cmd := &cobra.Command{
		Use:   "update [component...]",
		Short: "Upgrade installed components",
		Long: `Upgrade installed components to the registry's version.

With no arguments every installed component is checked. Components you
have edited are skipped unless --force is given; use 'termkit diff' to see
what changed.

Examples:
  termkit update
  termkit update --check
  termkit update spinner --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUpdate(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite components with local changes")
	cmd.Flags().BoolVar(&opts.CheckOnly, "check", false, "Only report available updates")

	return cmd
}

func (a *app) runUpdate(cmd *cobra.Command, names []string, opts engine.UpgradeOptions) (err error) {
	ctx, done := a.commandContext(cmd)
	defer func() { done(err) }()

	p, err := a.openProject()
	if err != nil {
		return err
	}

	report, err := p.engine.Upgrade(ctx, p.ledger, names, opts)
	if !opts.CheckOnly {
		if saveErr := p.saveLedger(); saveErr != nil && err == nil {
			err = saveErr
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), ui.RenderUpgrade(report))
	if err != nil {
		return err
	}
	if report.Results.Failed() {
		return errItemsFailed
	}
	return nil
}
