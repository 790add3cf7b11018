package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/unbound-force/covgap/internal/gap"
	"github.com/unbound-force/covgap/internal/lcov"
	"github.com/unbound-force/covgap/internal/report"
)

func sampleAnalysis(t *testing.T) *gap.Analysis {
	t.Helper()
	tf, err := lcov.Parse(strings.NewReader(sampleTracefile))
	if err != nil {
		t.Fatal(err)
	}
	return gap.Analyze(tf, gap.DefaultOptions())
}

// TestRenderReportContent_Summary verifies the TUI body opens with
// the file count and overall coverage.
func TestRenderReportContent_Summary(t *testing.T) {
	output := renderReportContent(sampleAnalysis(t), report.Options{})

	if !strings.Contains(output, "2 file(s)") {
		t.Errorf("expected output to contain '2 file(s)', got:\n%s", output)
	}
	if !strings.Contains(output, "src/parser.go") {
		t.Errorf("expected output to contain 'src/parser.go', got:\n%s", output)
	}
	if !strings.Contains(output, "Lowest Coverage") {
		t.Errorf("expected prioritized list in TUI content, got:\n%s", output)
	}
}

// TestRenderReportContent_Empty verifies an empty tracefile renders
// the zero-file title without panicking.
func TestRenderReportContent_Empty(t *testing.T) {
	tf, err := lcov.Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	a := gap.Analyze(tf, gap.DefaultOptions())

	output := renderReportContent(a, report.Options{})
	if !strings.Contains(output, "0 file(s)") {
		t.Errorf("expected output to contain '0 file(s)', got:\n%s", output)
	}
}

// TestReportModel_ReadyAfterWindowSize verifies that the viewport is
// initialized on the first WindowSizeMsg and renders the content.
func TestReportModel_ReadyAfterWindowSize(t *testing.T) {
	m := newReportModel(sampleAnalysis(t), report.Options{})

	if m.ready {
		t.Fatal("model must not be ready before the first WindowSizeMsg")
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	rm, ok := updated.(reportModel)
	if !ok {
		t.Fatalf("unexpected model type %T", updated)
	}
	if !rm.ready {
		t.Fatal("expected model to be ready after WindowSizeMsg")
	}

	view := rm.View()
	if !strings.Contains(view, "src/parser.go") {
		t.Errorf("expected view to contain 'src/parser.go', got:\n%s", view)
	}
}

// TestReportModel_QuitKey verifies that q produces the quit command.
func TestReportModel_QuitKey(t *testing.T) {
	m := newReportModel(sampleAnalysis(t), report.Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a command from the quit key")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}
