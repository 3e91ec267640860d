package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/vango-dev/termkit/internal/engine"
	"github.com/vango-dev/termkit/internal/ui"
	"golang.org/x/term"
)

func (a *app) addCmd() *cobra.Command {
	var (
		overwrite bool
		yes       bool
	)

	cmd := &cobra.Command{
		Use:   "add <component>...",
		Short: "Copy components into your project",
		Long: `Copy components into your project.

Components are copied as source code that you own. Components they
require are added first. A component whose directory already has files
is left alone unless you confirm, pass --overwrite, or pass --yes.

Examples:
  termkit add spinner
  termkit add statusbar badge
  termkit add panel --overwrite`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAdd(cmd, args, overwrite, yes)
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "overwrite", "o", false, "Replace components that already have files")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Answer yes to every confirmation")

	return cmd
}

func (a *app) runAdd(cmd *cobra.Command, names []string, overwrite, yes bool) (err error) {
	ctx, done := a.commandContext(cmd)
	defer func() { done(err) }()

	p, err := a.openProject()
	if err != nil {
		return err
	}

	opts := engine.InstallOptions{
		Overwrite: overwrite,
		AssumeYes: yes,
	}
	if !overwrite && !yes && term.IsTerminal(int(os.Stdin.Fd())) {
		opts.Confirm = func(name string) bool {
			return confirmReplace(p.engine.ComponentDir(name))
		}
	}

	report, err := p.engine.Install(ctx, p.ledger, names, opts)
	if saveErr := p.saveLedger(); saveErr != nil && err == nil {
		err = saveErr
	}

	fmt.Fprint(cmd.OutOrStdout(), ui.RenderInstall(report))
	if err != nil {
		return err
	}
	if report.Results.Failed() {
		return errItemsFailed
	}
	return nil
}

// confirmReplace asks whether an existing component directory may be
// overwritten.
func confirmReplace(dir string) bool {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Replace %s?", dir)).
				Description("Files termkit installs will overwrite what is there").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false
	}
	return ok
}
