package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/mesh-intelligence/surveyor/pkg/check"
)

func writePDF(results check.Results, cfg check.RuleConfig, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	pdf.CellFormat(200, 10, "Report", "", 1, "C", false, 0, "")
	pdf.CellFormat(200, 10, criteriaLine(cfg), "", 1, "", false, 0, "")
	pdf.CellFormat(200, 10, "Name | Type | Family | ID | Status", "", 1, "", false, 0, "")

	for _, r := range tableRows(results) {
		line := fmt.Sprintf("%s | %s | %s | %s | %s", r.Name, r.Type, r.Family, r.ID, r.Outcome)
		pdf.CellFormat(200, 10, line, "", 1, "", false, 0, "")
	}

	return pdf.OutputFileAndClose(path)
}
