// Package gap computes per-file and aggregate coverage gaps against
// a target threshold from parsed LCOV data.
package gap

import (
	"sort"

	"github.com/unbound-force/covgap/internal/lcov"
)

// Defaults for gap analysis.
const (
	// DefaultTarget is the coverage target percentage.
	DefaultTarget = 80.0

	// DefaultLowestCount is how many of the lowest-coverage files
	// the prioritized list shows.
	DefaultLowestCount = 5
)

// Options configures gap analysis.
type Options struct {
	// Target is the coverage target percentage (0-100).
	Target float64

	// LowestCount caps the prioritized lowest-coverage list.
	LowestCount int
}

// DefaultOptions returns options with the standard 80% target and
// five-entry priority list.
func DefaultOptions() Options {
	return Options{Target: DefaultTarget, LowestCount: DefaultLowestCount}
}

// Row is the per-file view of a coverage record.
type Row struct {
	// Path is the source file path from the tracefile.
	Path string `json:"path"`

	// CoveredLines is the hit line count.
	CoveredLines int `json:"covered_lines"`

	// TotalLines is the instrumented line count.
	TotalLines int `json:"total_lines"`

	// Percent is the line coverage percentage (0-100).
	Percent float64 `json:"percent"`

	// LinesToTarget is how many more covered lines the file needs
	// to reach the target. Negative when already above it.
	LinesToTarget int `json:"lines_to_target"`

	// UncoveredLines is TotalLines minus CoveredLines.
	UncoveredLines int `json:"uncovered_lines"`
}

// Summary aggregates coverage across all files.
type Summary struct {
	// Files is the number of source files in the tracefile.
	Files int `json:"files"`

	// CoveredLines and TotalLines are summed over all files.
	CoveredLines int `json:"covered_lines"`
	TotalLines   int `json:"total_lines"`

	// Percent is the overall coverage percentage.
	Percent float64 `json:"percent"`

	// Target is the configured target percentage.
	Target float64 `json:"target"`

	// LinesNeeded is the overall gap to the target, clamped to
	// zero: a surplus is not a deficit worth reporting.
	LinesNeeded int `json:"lines_needed"`
}

// Analysis is the complete output of a gap computation.
type Analysis struct {
	// Rows holds every file, sorted ascending by path.
	Rows []Row `json:"rows"`

	// Summary holds the aggregate totals.
	Summary Summary `json:"summary"`

	// Lowest holds the lowest-coverage files (total > 0 only),
	// ascending by percent, ties in tracefile order.
	Lowest []Row `json:"lowest"`
}

// Percent computes covered/total*100, guarding against an empty file.
func Percent(covered, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(covered) / float64(total) * 100
}

// LinesToTarget computes floor(total*target/100) - covered: the
// additional covered lines needed to reach the target. The result is
// negative when the file is already above it.
func LinesToTarget(covered, total int, target float64) int {
	return int(float64(total)*target/100) - covered
}

// Analyze computes rows, aggregate summary, and the prioritized
// lowest-coverage list for the parsed tracefile. Files are consumed
// in tracefile declaration order so that the stable sort in the
// lowest list breaks ties the same way every run.
func Analyze(tf *lcov.Tracefile, opts Options) *Analysis {
	if opts.Target <= 0 {
		opts.Target = DefaultTarget
	}
	if opts.LowestCount <= 0 {
		opts.LowestCount = DefaultLowestCount
	}

	files := tf.Files()
	rows := make([]Row, 0, len(files))
	var coveredAll, totalAll int
	for _, fc := range files {
		rows = append(rows, Row{
			Path:           fc.Path,
			CoveredLines:   fc.CoveredLines,
			TotalLines:     fc.TotalLines,
			Percent:        Percent(fc.CoveredLines, fc.TotalLines),
			LinesToTarget:  LinesToTarget(fc.CoveredLines, fc.TotalLines, opts.Target),
			UncoveredLines: fc.TotalLines - fc.CoveredLines,
		})
		coveredAll += fc.CoveredLines
		totalAll += fc.TotalLines
	}

	lowest := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.TotalLines > 0 {
			lowest = append(lowest, r)
		}
	}
	sort.SliceStable(lowest, func(i, j int) bool {
		return lowest[i].Percent < lowest[j].Percent
	})
	if len(lowest) > opts.LowestCount {
		lowest = lowest[:opts.LowestCount]
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Path < rows[j].Path
	})

	linesNeeded := LinesToTarget(coveredAll, totalAll, opts.Target)
	if linesNeeded < 0 {
		linesNeeded = 0
	}

	return &Analysis{
		Rows: rows,
		Summary: Summary{
			Files:        len(rows),
			CoveredLines: coveredAll,
			TotalLines:   totalAll,
			Percent:      Percent(coveredAll, totalAll),
			Target:       opts.Target,
			LinesNeeded:  linesNeeded,
		},
		Lowest: lowest,
	}
}
