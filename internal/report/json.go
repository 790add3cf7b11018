// Package report renders gap analyses as styled terminal text or
// machine-readable JSON.
package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/covgap/internal/gap"
)

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	Version string      `json:"version"`
	Rows    []gap.Row   `json:"rows"`
	Summary gap.Summary `json:"summary"`
	Lowest  []gap.Row   `json:"lowest"`
}

// WriteJSON writes the analysis as formatted JSON to the writer.
func WriteJSON(w io.Writer, a *gap.Analysis) error {
	rpt := JSONReport{
		Version: "0.1.0",
		Rows:    a.Rows,
		Summary: a.Summary,
		Lowest:  a.Lowest,
	}
	if rpt.Rows == nil {
		rpt.Rows = []gap.Row{}
	}
	if rpt.Lowest == nil {
		rpt.Lowest = []gap.Row{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rpt)
}
