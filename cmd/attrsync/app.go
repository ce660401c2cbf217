package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/desertwitch/attrsync/internal/configuration"
	"github.com/desertwitch/attrsync/internal/queue"
	"github.com/desertwitch/attrsync/internal/reconcile"
	"github.com/desertwitch/attrsync/internal/schema"
	"github.com/desertwitch/attrsync/internal/ui"
)

type reconciler interface {
	ApplyAll(target *reconcile.Target) (*schema.ChangeRecord, error)
}

type reporter interface {
	Render(summary *ui.Summary) error
}

type counter interface {
	Count() int
}

type App struct {
	settings         *configuration.AppConfiguration
	manifest         *configuration.Manifest
	reconcileHandler reconciler
	reportHandler    reporter
	warnings         counter
}

func NewApp(settings *configuration.AppConfiguration,
	manifest *configuration.Manifest,
	reconcileHandler reconciler,
	reportHandler reporter,
	warnings counter,
) *App {
	return &App{
		settings:         settings,
		manifest:         manifest,
		reconcileHandler: reconcileHandler,
		reportHandler:    reportHandler,
		warnings:         warnings,
	}
}

// Launch reconciles all resources of the manifest and renders the report.
// An error is returned if any path has failed or the run was canceled.
func (app *App) Launch(ctx context.Context) error {
	started := time.Now()

	slog.Info("Reconciling:",
		"manifest", app.manifest.Source,
		"digest", app.manifest.Digest,
		"paths", len(app.manifest.Resources),
		"workers", app.settings.Workers,
		"dryRun", app.settings.DryRun,
	)

	entries, err := app.Reconcile(ctx)

	summary := &ui.Summary{
		Source:   app.manifest.Source,
		Digest:   app.manifest.Digest,
		DryRun:   app.settings.DryRun,
		Started:  started,
		Elapsed:  time.Since(started),
		Warnings: app.warnings.Count(),
		Entries:  entries,
	}

	if rerr := app.reportHandler.Render(summary); rerr != nil {
		slog.Error("Failed to render the report.",
			"err", rerr,
		)
	}

	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	if _, _, failed, skipped := summary.Counts(); failed > 0 {
		return fmt.Errorf("(app) %w: %d failed, %d skipped", ErrReconcileFailed, failed, skipped)
	}

	return nil
}

// Reconcile reconciles all resources of the manifest with the configured
// number of workers. The entries are in manifest order, paths that were
// never reconciled are marked as skipped.
func (app *App) Reconcile(ctx context.Context) ([]ui.Entry, error) {
	tasker := queue.NewTaskManager[*ui.Entry]()

	if app.settings.FailFast {
		tasker.StopWhen(func(entry *ui.Entry) bool {
			return entry != nil && entry.Err != nil
		})
	}

	for _, res := range app.manifest.Resources {
		tasker.Add(app.reconcileTask(res))
	}

	results, err := tasker.LaunchConcAndWait(ctx, app.settings.Workers)

	entries := make([]ui.Entry, len(results))
	for i, entry := range results {
		if entry == nil {
			res := app.manifest.Resources[i]
			entries[i] = ui.Entry{Label: res.Label, Path: res.Path, Skipped: true}

			continue
		}
		entries[i] = *entry
	}

	return entries, err //nolint:wrapcheck
}

func (app *App) reconcileTask(res configuration.Resource) func() *ui.Entry {
	return func() *ui.Entry {
		start := time.Now()

		target := &reconcile.Target{
			Path:  res.Path,
			Label: res.Label,
			Desired: reconcile.Desired{
				Owner: res.OwnerSpec(),
				Group: res.GroupSpec(),
				Mode:  res.ModeSpec(),
			},
			OnChange: func(change schema.Change) {
				slog.Debug("Notified:",
					"label", res.Label,
					"attribute", string(change.Attribute),
				)
			},
		}

		record, err := app.reconcileHandler.ApplyAll(target)

		entry := &ui.Entry{
			Label:   res.Label,
			Path:    res.Path,
			Err:     err,
			Elapsed: time.Since(start),
		}

		if record != nil {
			entry.Changes = record.Changes
		}

		if err != nil {
			slog.Error("Failed to reconcile:",
				"label", res.Label,
				"err", err,
			)
		}

		return entry
	}
}
