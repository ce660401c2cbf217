package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

const (
	statusChanged     = "changed"
	statusWouldChange = "would change"
	statusUnchanged   = "ok"
	statusFailed      = "failed"
	statusSkipped     = "skipped"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for the report title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	// borderStyle defines the style for the table borders.
	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))

	// infoStyle defines the style for the report details.
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	// headerStyle defines the style for the table header.
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	// cellStyle defines the style for the table cells.
	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// helpStyle defines the style for the less important text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	statusStyles = map[string]lipgloss.Style{
		statusChanged:     cellStyle.Foreground(lipgloss.Color("#04B575")),
		statusWouldChange: cellStyle.Foreground(lipgloss.Color("#EBCB8B")),
		statusUnchanged:   cellStyle.Foreground(lipgloss.Color("#626262")),
		statusFailed:      cellStyle.Foreground(lipgloss.Color("#FF5F87")),
		statusSkipped:     cellStyle.Foreground(lipgloss.Color("#626262")),
	}
)

func (h *Handler) render(s *Summary) string {
	title := "attrsync"
	if s.DryRun {
		title += " (dry-run)"
	}

	sections := []string{
		titleStyle.Render(title),
		"", // Empty line for spacing.
		infoStyle.Render(formatDetails(s)),
	}

	if rows := h.rows(s); len(rows) > 0 {
		sections = append(sections, "", h.table(rows))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func formatDetails(s *Summary) string {
	changed, unchanged, failed, skipped := s.Counts()

	changedWord := "changed"
	if s.DryRun {
		changedWord = "to change"
	}

	digest := s.Digest
	if len(digest) > 16 { //nolint:mnd
		digest = digest[:16]
	}

	return fmt.Sprintf(
		"Manifest: %s (%s)\n"+
			"Summary: %s, %s %s, %s unchanged, %s failed, %s skipped\n"+
			"Warnings: %s\n"+
			"Time: Started=%s, Elapsed=%s",
		s.Source, digest,
		english.Plural(len(s.Entries), "path", ""),
		humanize.Comma(int64(changed)), changedWord,
		humanize.Comma(int64(unchanged)),
		humanize.Comma(int64(failed)),
		humanize.Comma(int64(skipped)),
		humanize.Comma(int64(s.Warnings)),
		s.Started.Format("15:04:05"),
		s.Elapsed.Round(time.Millisecond),
	)
}

func (h *Handler) rows(s *Summary) [][]string {
	rows := [][]string{}

	for _, e := range s.Entries {
		status, detail := entryStatus(e, s.DryRun)
		if status == statusUnchanged && !h.verbose {
			continue
		}
		rows = append(rows, []string{e.Label, status, detail})
	}

	return rows
}

func entryStatus(e Entry, dryRun bool) (string, string) {
	switch {
	case e.Skipped:
		return statusSkipped, ""
	case e.Err != nil:
		return statusFailed, e.Err.Error()
	case len(e.Changes) > 0:
		parts := make([]string, 0, len(e.Changes))
		for _, c := range e.Changes {
			parts = append(parts, c.String())
		}
		if dryRun {
			return statusWouldChange, strings.Join(parts, ", ")
		}

		return statusChanged, strings.Join(parts, ", ")
	default:
		return statusUnchanged, ""
	}
}

func (h *Handler) table(rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("PATH", "STATUS", "DETAILS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				if style, ok := statusStyles[rows[row][1]]; ok {
					return style
				}
			case col == 2: //nolint:mnd
				return cellStyle.Inherit(helpStyle)
			}

			return cellStyle
		}).
		String()
}
