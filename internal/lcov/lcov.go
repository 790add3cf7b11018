// Package lcov parses LCOV tracefiles into per-file line coverage
// records.
//
// A tracefile is line-oriented: each record opens with an SF:
// source-file declaration and closes with an end_of_record marker.
// In between, DA: lines carry per-line hit counts and LF:/LH: carry
// the record's instrumented and hit line totals. Directives outside
// this set are ignored.
package lcov

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FileCoverage holds the coverage data for one source file as
// declared by the tracefile.
type FileCoverage struct {
	// Path is the source file path exactly as it appears after SF:.
	Path string

	// TotalLines is the declared instrumented line count (LF:).
	// Zero when the record never carried an LF: directive.
	TotalLines int

	// CoveredLines is the declared hit line count (LH:).
	CoveredLines int

	// LineHits maps line number to execution hit count (DA:).
	LineHits map[int]int
}

// Tracefile is the parsed collection of file records, preserving the
// order in which source files were first declared.
type Tracefile struct {
	byPath map[string]*FileCoverage
	order  []string
}

// Files returns the records in first-declaration order.
func (t *Tracefile) Files() []*FileCoverage {
	files := make([]*FileCoverage, 0, len(t.order))
	for _, path := range t.order {
		files = append(files, t.byPath[path])
	}
	return files
}

// Lookup returns the record for a path, or nil if the tracefile
// never declared it.
func (t *Tracefile) Lookup(path string) *FileCoverage {
	return t.byPath[path]
}

// Len returns the number of distinct source files declared.
func (t *Tracefile) Len() int {
	return len(t.order)
}

// file returns the record for path, creating it on first sight.
// A repeated SF: declaration reuses the existing record, so line
// hits merge and a later record's totals overwrite earlier ones.
func (t *Tracefile) file(path string) *FileCoverage {
	if fc, ok := t.byPath[path]; ok {
		return fc
	}
	fc := &FileCoverage{Path: path, LineHits: make(map[int]int)}
	t.byPath[path] = fc
	t.order = append(t.order, path)
	return fc
}

// ParseFile opens and parses an LCOV tracefile. The underlying I/O
// error is kept in the wrap chain so callers can inspect it.
func ParseFile(path string) (*Tracefile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tracefile: %w", err)
	}
	defer f.Close()

	tf, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tf, nil
}

// Parse reads an LCOV stream to completion.
//
// Directive handling is last-seen-wins: LF: and LH: values simply
// overwrite scratch state until an end_of_record commits them, so a
// reordered record still parses (using the final values seen). A
// record whose end_of_record arrives without any LF: since the last
// SF: contributes no aggregate counts; its DA: detail is kept.
// A malformed integer in a recognized directive aborts the parse.
func Parse(r io.Reader) (*Tracefile, error) {
	tf := &Tracefile{byPath: make(map[string]*FileCoverage)}

	var (
		current *FileCoverage
		inLF    bool
		lfCount int
		lhCount int
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "SF:"):
			// An empty path leaves no current file: subsequent
			// directives are dropped until the next declaration.
			if path := line[len("SF:"):]; path != "" {
				current = tf.file(path)
			} else {
				current = nil
			}
			inLF = false

		case strings.HasPrefix(line, "LF:"):
			n, err := strconv.Atoi(line[len("LF:"):])
			if err != nil {
				return nil, directiveErr(lineNo, line, err)
			}
			lfCount = n
			inLF = true

		case strings.HasPrefix(line, "LH:"):
			n, err := strconv.Atoi(line[len("LH:"):])
			if err != nil {
				return nil, directiveErr(lineNo, line, err)
			}
			lhCount = n

		case strings.HasPrefix(line, "end_of_record"):
			if current != nil && inLF {
				current.TotalLines = lfCount
				current.CoveredLines = lhCount
			}
			inLF = false

		case strings.HasPrefix(line, "DA:"):
			if current == nil {
				continue
			}
			lineNum, hits, err := parseLineData(line[len("DA:"):])
			if err != nil {
				return nil, directiveErr(lineNo, line, err)
			}
			current.LineHits[lineNum] = hits
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading tracefile: %w", err)
	}

	return tf, nil
}

// parseLineData splits a DA: payload of the form
// "<line>[,<hits>[,<checksum>]]". The hit count defaults to zero
// when absent; any trailing checksum field is ignored.
func parseLineData(payload string) (lineNum, hits int, err error) {
	parts := strings.Split(payload, ",")
	lineNum, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	if len(parts) > 1 {
		hits, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, err
		}
	}
	return lineNum, hits, nil
}

func directiveErr(lineNo int, line string, err error) error {
	return fmt.Errorf("line %d: malformed directive %q: %w", lineNo, line, err)
}
