// Package ui renders the summary of a reconciliation run for the terminal.
package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/desertwitch/attrsync/internal/schema"
)

// Entry is the outcome of the reconciliation of a single path.
type Entry struct {
	Label   string
	Path    string
	Changes []schema.Change
	Err     error

	// Skipped is set for a path that was never reconciled, because the run
	// was canceled or stopped early.
	Skipped bool

	Elapsed time.Duration
}

// Summary is everything that is shown about a reconciliation run.
type Summary struct {
	Source   string
	Digest   string
	DryRun   bool
	Started  time.Time
	Elapsed  time.Duration
	Warnings int
	Entries  []Entry
}

// Counts returns the number of changed, unchanged, failed and skipped paths.
func (s *Summary) Counts() (changed, unchanged, failed, skipped int) {
	for _, e := range s.Entries {
		switch {
		case e.Skipped:
			skipped++
		case e.Err != nil:
			failed++
		case len(e.Changes) > 0:
			changed++
		default:
			unchanged++
		}
	}

	return changed, unchanged, failed, skipped
}

// Handler is the principal implementation of the report [Handler].
type Handler struct {
	out     io.Writer
	verbose bool
}

// NewHandler returns a pointer to a new report [Handler] writing to out.
// Unless verbose, unchanged paths are left out of the table.
func NewHandler(out io.Writer, verbose bool) *Handler {
	return &Handler{
		out:     out,
		verbose: verbose,
	}
}

// Render writes the rendered [Summary].
func (h *Handler) Render(summary *Summary) error {
	if _, err := fmt.Fprintln(h.out, h.render(summary)); err != nil {
		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}
