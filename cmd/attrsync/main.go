package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/desertwitch/attrsync/internal/configuration"
	"github.com/desertwitch/attrsync/internal/filesystem"
	"github.com/desertwitch/attrsync/internal/identity"
	"github.com/desertwitch/attrsync/internal/reconcile"
	"github.com/desertwitch/attrsync/internal/schema"
	"github.com/desertwitch/attrsync/internal/ui"
)

const (
	stackTraceBufMax = 1 << 24
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string
)

type cliFlags struct {
	configFile string
	dryRun     bool
	workers    int
	failFast   bool
	verbose    bool
	manifest   string

	set map[string]bool
}

func parseFlags(args []string, output io.Writer) (*cliFlags, error) {
	flags := &cliFlags{set: map[string]bool{}}

	fs := flag.NewFlagSet("attrsync", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&flags.configFile, "config", "", "read settings from this env-style file")
	fs.BoolVar(&flags.dryRun, "dry-run", false, "report the changes without making them")
	fs.IntVar(&flags.workers, "workers", 0, "maximum number of paths reconciled at the same time")
	fs.BoolVar(&flags.failFast, "fail-fast", false, "stop reconciling after the first failed path")
	fs.BoolVar(&flags.verbose, "verbose", false, "also list unchanged paths in the report")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: attrsync [flags] MANIFEST\n\n") //nolint:errcheck
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("(main) %w: %w", ErrUsage, err)
	}

	if fs.NArg() != 1 {
		fs.Usage()

		return nil, fmt.Errorf("(main) %w: expected exactly one manifest", ErrUsage)
	}
	flags.manifest = fs.Arg(0)

	fs.Visit(func(f *flag.Flag) {
		flags.set[f.Name] = true
	})

	return flags, nil
}

// apply lets the flags that were given take precedence over the settings.
func (f *cliFlags) apply(settings *configuration.AppConfiguration) {
	if f.set["dry-run"] {
		settings.DryRun = f.dryRun
	}

	if f.set["fail-fast"] {
		settings.FailFast = f.failFast
	}

	if f.set["workers"] {
		if f.workers < 1 {
			slog.Warn("Ignoring invalid worker count.",
				"workers", f.workers,
			)
		} else {
			settings.Workers = f.workers
		}
	}
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		slog.Warn("Received signal: no more paths will be reconciled.",
			"signal", sig.String(),
		)
		cancel()
	}()

	sigChan2 := make(chan os.Signal, 1)
	signal.Notify(sigChan2, syscall.SIGUSR1)
	go func() {
		for range sigChan2 {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen])
		}
	}()
}

func run(ctx context.Context, flags *cliFlags, logLevel *slog.LevelVar, warnings counter) error {
	var files []string
	if flags.configFile != "" {
		files = append(files, flags.configFile)
	}

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{}, &schema.OS{})

	settings, err := configHandler.ReadSettings(files...)
	if err != nil {
		slog.Error("Failed to read the settings.",
			"err", err,
		)

		return fmt.Errorf("(main) %w", err)
	}
	flags.apply(settings)
	logLevel.Set(settings.LogLevel)

	if Version != "" {
		slog.Debug("Starting:", "version", Version)
	}

	manifest, err := configHandler.LoadManifest(flags.manifest)
	if err != nil {
		slog.Error("Failed to load the manifest.",
			"manifest", flags.manifest,
			"err", err,
		)

		return fmt.Errorf("(main) %w", err)
	}

	identityHandler := identity.NewHandler(&schema.Identity{})
	fsHandler := filesystem.NewHandler(&schema.Unix{})
	reconcileHandler := reconcile.NewHandler(identityHandler, fsHandler, reconcile.WithDryRun(settings.DryRun))
	reportHandler := ui.NewHandler(os.Stdout, flags.verbose)

	app := NewApp(settings, manifest, reconcileHandler, reportHandler, warnings)

	if err := app.Launch(ctx); err != nil {
		if !errors.Is(err, ErrReconcileFailed) {
			slog.Error("Reconciliation was interrupted.",
				"err", err,
			)
		}

		return err
	}

	return nil
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logLevel := &slog.LevelVar{}
	warnings := setupLogging(os.Stderr, logLevel)
	setupSignalHandlers(cancel)

	flags, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			ExitCode = 2
		}

		return
	}

	if err := run(ctx, flags, logLevel, warnings); err != nil {
		ExitCode = 1
	}
}
