package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vango-dev/termkit/internal/ui"
)

func (a *app) diffCmd() *cobra.Command {
	var exitCode bool

	cmd := &cobra.Command{
		Use:   "diff <component>",
		Short: "Show how an installed component differs from the registry",
		Long: `Classify every file of an installed component.

Each file is compared against the fingerprint recorded when it was
installed and against the registry's current copy:

  unchanged          matches upstream
  upstream-updated   upstream moved, your copy is untouched
  locally-modified   you edited it, upstream did not move
  conflict           both you and upstream changed it
  missing-locally    upstream has it, your project does not
  local-only         your project has it, upstream does not

Nothing is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDiff(cmd, args[0], exitCode)
		},
	}

	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Exit with status 1 when the component is not in sync")

	return cmd
}

func (a *app) runDiff(cmd *cobra.Command, name string, exitCode bool) (err error) {
	ctx, done := a.commandContext(cmd)
	defer func() { done(err) }()

	p, err := a.openProject()
	if err != nil {
		return err
	}

	report, err := p.engine.Compare(ctx, p.ledger, name)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), ui.RenderCompare(report))
	if exitCode && !report.InSync() {
		return errItemsFailed
	}
	return nil
}
