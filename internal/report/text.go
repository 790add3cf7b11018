package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/unbound-force/covgap/internal/gap"
)

// maxPathWidth is the display width budget for file paths in the
// per-file table.
const maxPathWidth = 40

// Options configures text rendering.
type Options struct {
	// StripPrefixes are removed from the front of file paths for
	// display. The first matching prefix wins.
	StripPrefixes []string
}

// WriteText writes the three-part coverage report: the per-file
// table with its TOTAL row, the current/target/gap summary block,
// and the prioritized lowest-coverage list.
func WriteText(w io.Writer, a *gap.Analysis, opts Options) error {
	s := DefaultStyles()

	fmt.Fprintln(w, s.Header.Render("=== Coverage Analysis ==="))
	fmt.Fprintln(w)

	if len(a.Rows) == 0 {
		fmt.Fprintln(w, s.Muted.Render("No source files in tracefile."))
		return nil
	}

	writeFileTable(w, a, opts, s)
	fmt.Fprintln(w)
	writeSummary(w, a.Summary, s)
	fmt.Fprintln(w)
	writeLowest(w, a, opts, s)

	return nil
}

func writeFileTable(w io.Writer, a *gap.Analysis, opts Options, s Styles) {
	target := a.Summary.Target

	rows := make([][]string, 0, len(a.Rows)+1)
	for _, r := range a.Rows {
		rows = append(rows, []string{
			displayPath(r.Path, opts.StripPrefixes),
			strconv.Itoa(r.CoveredLines),
			strconv.Itoa(r.TotalLines),
			fmt.Sprintf("%.1f%%", r.Percent),
			strconv.Itoa(r.LinesToTarget),
		})
	}

	sum := a.Summary
	totalGap := gap.LinesToTarget(sum.CoveredLines, sum.TotalLines, target)
	rows = append(rows, []string{
		"TOTAL",
		strconv.Itoa(sum.CoveredLines),
		strconv.Itoa(sum.TotalLines),
		fmt.Sprintf("%.1f%%", sum.Percent),
		strconv.Itoa(totalGap),
	})

	totalIdx := len(rows) - 1
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			// Numeric columns are right-aligned; only the file
			// path column reads left to right.
			align := lipgloss.Right
			if col == 0 {
				align = lipgloss.Left
			}
			if row == table.HeaderRow {
				return s.TableHeader.Align(align)
			}
			if row == totalIdx {
				return s.TotalRow.Align(align)
			}
			// Color the coverage column against the target.
			if col == 3 && row >= 0 && row < len(a.Rows) {
				return s.PercentStyle(a.Rows[row].Percent, target).Align(align)
			}
			if col == 0 {
				return lipgloss.NewStyle().PaddingRight(1)
			}
			return lipgloss.NewStyle().Align(align)
		}).
		Headers("FILE", "COVERED", "TOTAL", "COVERAGE", fmt.Sprintf("TO %.0f%%", target)).
		Rows(rows...)

	fmt.Fprintln(w, t)
}

func writeSummary(w io.Writer, sum gap.Summary, s Styles) {
	current := s.PercentStyle(sum.Percent, sum.Target).
		Render(fmt.Sprintf("%.1f%%", sum.Percent))
	fmt.Fprintf(w, "%s %s\n", s.SummaryLabel.Render("Current Coverage:"), current)
	fmt.Fprintf(w, "%s %.1f%%\n", s.SummaryLabel.Render("Target Coverage:"), sum.Target)
	fmt.Fprintf(w, "%s %d\n", s.SummaryLabel.Render("Lines Needed:"), sum.LinesNeeded)
}

func writeLowest(w io.Writer, a *gap.Analysis, opts Options, s Styles) {
	fmt.Fprintln(w, s.Header.Render(
		"--- Lowest Coverage (prioritized for testing) ---"))

	if len(a.Lowest) == 0 {
		fmt.Fprintln(w, s.Muted.Render("  No files with instrumented lines."))
		return
	}

	for i, r := range a.Lowest {
		pct := s.PercentStyle(r.Percent, a.Summary.Target).
			Render(fmt.Sprintf("%5.1f%%", r.Percent))
		fmt.Fprintf(w, "  %d. %s  %s  %s\n",
			i+1, pct, displayPath(r.Path, opts.StripPrefixes),
			s.Muted.Render(fmt.Sprintf("(%d lines uncovered)", r.UncoveredLines)))
	}
}

// displayPath strips the first matching configured prefix, then
// truncates from the front to the table's path width, keeping the
// more informative tail.
func displayPath(path string, prefixes []string) string {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			path = strings.TrimPrefix(path, p)
			break
		}
	}
	if runes := []rune(path); len(runes) > maxPathWidth {
		path = "..." + string(runes[len(runes)-(maxPathWidth-3):])
	}
	return path
}
