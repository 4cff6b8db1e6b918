package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/wc-matches/internal/pipeline"
)

// OutputFormat specifies the summary format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the run summary in the specified format
func WriteOutput(w io.Writer, report *pipeline.Report, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatText:
		return writeText(w, report)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the report as JSON
func writeJSON(w io.Writer, report *pipeline.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(struct {
		*pipeline.Report
		Duration string `json:"duration"`
	}{
		Report:   report,
		Duration: report.Duration.String(),
	})
}

// writeText outputs the report as human-readable text
func writeText(w io.Writer, report *pipeline.Report) error {
	for _, y := range report.Years {
		fmt.Fprintf(w, "%d: %d matches\n", y.Year, y.Rows)
	}
	fmt.Fprintf(w, "\nTotal: %d matches across %d years\n", report.Total, len(report.Years))
	fmt.Fprintf(w, "Wrote %s\n", report.Output)
	return nil
}
