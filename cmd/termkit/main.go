package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vango-dev/termkit/internal/errors"
	"github.com/vango-dev/termkit/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┌─┐┬─┐┌┬┐┬┌─┬┌┬┐
   │ ├┤ ├┬┘│││├┴┐│ │
   ┴ └─┘┴└─┴ ┴┴ ┴┴ ┴
`

// errItemsFailed signals that a batch finished but some items failed. The
// report has already been printed.
var errItemsFailed = stderrors.New("one or more components failed")

// app holds state shared by every command of one invocation.
type app struct {
	verbose     bool
	metricsFile string

	runID     string
	logger    *slog.Logger
	telemetry *telemetry.Recorder
	stderr    io.Writer
}

func newApp() *app {
	return &app{
		runID:     uuid.NewString(),
		logger:    slog.Default(),
		telemetry: telemetry.New(),
		stderr:    os.Stderr,
	}
}

func main() {
	a := newApp()
	rootCmd := a.rootCmd()

	err := rootCmd.Execute()

	if a.metricsFile != "" {
		if werr := a.telemetry.WriteTextfile(a.metricsFile); werr != nil {
			errorMsg(a.stderr, "could not write metrics: %v", werr)
		}
	}

	if err != nil {
		if !stderrors.Is(err, errItemsFailed) {
			errors.PrintError(err)
		}
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "termkit",
		Short: "Copy-in terminal UI widgets for Go",
		Long: `termkit vendors terminal UI widgets into your Go project.

Widgets are copied as source code that you own. termkit remembers what it
installed, so it can tell your edits apart from upstream changes:

  • add      copy widgets into the project
  • diff     classify each file of an installed widget
  • update   pull upstream changes into untouched widgets
  • list     browse the catalog`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setupLogging()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")

	rootCmd.AddCommand(
		a.initCmd(),
		a.addCmd(),
		a.diffCmd(),
		a.updateCmd(),
		a.listCmd(),
		a.serveCmd(),
		versionCmd(),
	)

	return rootCmd
}

func (a *app) setupLogging() {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level})
	a.logger = slog.New(handler).With("run_id", a.runID)
}

// commandContext returns a context canceled on SIGINT or SIGTERM, carrying a
// span for the command.
func (a *app) commandContext(cmd *cobra.Command) (context.Context, func(error)) {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	ctx, span := a.telemetry.Start(ctx, "command."+cmd.Name(),
		attribute.String("termkit.run_id", a.runID))

	return ctx, func(err error) {
		span.End(err)
		stop()
	}
}

// printBanner prints the termkit ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
