// Package report renders aggregated compliance results into a report file.
// Supported formats are JSON, HTML, and PDF; anything else is a caller
// error surfaced immediately, never silently ignored. Rendering failures do
// not affect the already-computed results.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/surveyor/pkg/check"
)

// Generate renders results into dir using the format from cfg and returns
// the written file path. Unsupported formats fail with
// check.ErrUnsupportedFormat.
func Generate(results check.Results, cfg check.RuleConfig, dir string) (string, error) {
	path := filepath.Join(dir, "report."+strings.ToLower(string(cfg.Format)))

	var err error
	switch cfg.Format {
	case check.FormatJSON:
		err = writeJSON(results, cfg, path)
	case check.FormatHTML:
		err = writeHTML(results, cfg, path)
	case check.FormatPDF:
		err = writePDF(results, cfg, path)
	default:
		return "", fmt.Errorf("%w: %q", check.ErrUnsupportedFormat, cfg.Format)
	}
	if err != nil {
		return "", fmt.Errorf("render %s report: %w", cfg.Format, err)
	}
	return path, nil
}

// row is one rendered table line, shared by the HTML and PDF layouts.
type row struct {
	Name    string
	Type    string
	Family  string
	ID      string
	Outcome string
}

// tableRows flattens results into rendering order: one row per summarized
// object, buckets in aggregation order.
func tableRows(results check.Results) []row {
	var rows []row
	for _, outcome := range check.AggregatedOutcomes {
		for _, obj := range results[outcome] {
			rows = append(rows, row{
				Name:    obj.Name,
				Type:    obj.Type,
				Family:  obj.Family,
				ID:      obj.ID,
				Outcome: string(outcome),
			})
		}
	}
	return rows
}

func criteriaLine(cfg check.RuleConfig) string {
	return fmt.Sprintf("Criteria: %s - %s - %s", cfg.Category, cfg.Property, cfg.RulePrefix)
}
