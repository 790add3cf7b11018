package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for section headers.
	Header lipgloss.Style

	// TableHeader styles the header row of the per-file table.
	TableHeader lipgloss.Style

	// TotalRow styles the aggregate row at the bottom of the table.
	TotalRow lipgloss.Style

	// Good styles coverage at or above the target.
	Good lipgloss.Style

	// Bad styles coverage below the target.
	Bad lipgloss.Style

	// SummaryLabel styles summary block labels.
	SummaryLabel lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableHeader:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TotalRow:     lipgloss.NewStyle().Bold(true),
		Good:         lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		Bad:          lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		SummaryLabel: lipgloss.NewStyle().Bold(true).Width(18),
		Border:       lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// PercentStyle returns Good or Bad depending on whether pct meets
// the target.
func (s Styles) PercentStyle(pct, target float64) lipgloss.Style {
	if pct >= target {
		return s.Good
	}
	return s.Bad
}
