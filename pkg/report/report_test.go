package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/surveyor/pkg/check"
)

func testResults() check.Results {
	return check.Results{
		check.OutcomeMissing: {
			{Name: "Window-M", Type: "Casement", Family: "Basic", ID: "w-m"},
		},
		check.OutcomeValid: {
			{Name: "Window-V", Type: "Casement", Family: "Basic", ID: "w-v"},
		},
		check.OutcomeInvalid: {},
	}
}

func testConfig(format check.Format) check.RuleConfig {
	return check.RuleConfig{
		Category:   "Windows",
		Property:   "OmniClass Number",
		RulePrefix: "23.30.20",
		Format:     format,
		Severity:   check.SeverityError,
	}
}

func TestGenerateJSON(t *testing.T) {
	dir := t.TempDir()

	path, err := Generate(testResults(), testConfig(check.FormatJSON), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Criteria struct {
			Category string `json:"category"`
			Property string `json:"property"`
			Value    string `json:"value"`
		} `json:"assessment_criteria"`
		Results map[string][]struct {
			Name string `json:"name"`
			ID   string `json:"id"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "Windows", doc.Criteria.Category)
	assert.Equal(t, "OmniClass Number", doc.Criteria.Property)
	assert.Equal(t, "23.30.20", doc.Criteria.Value)
	require.Len(t, doc.Results["valid"], 1)
	assert.Equal(t, "w-v", doc.Results["valid"][0].ID)
	require.Len(t, doc.Results["missing"], 1)
	assert.Empty(t, doc.Results["invalid"])
}

func TestGenerateHTML(t *testing.T) {
	dir := t.TempDir()

	path, err := Generate(testResults(), testConfig(check.FormatHTML), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "<h1>Report: Windows - OmniClass Number - 23.30.20</h1>")
	assert.Contains(t, html, "<td>Window-V</td>")
	assert.Contains(t, html, "<td>valid</td>")
	assert.Contains(t, html, "<td>w-m</td>")
}

func TestGeneratePDF(t *testing.T) {
	dir := t.TempDir()

	path, err := Generate(testResults(), testConfig(check.FormatPDF), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	_, err := Generate(testResults(), testConfig("DOCX"), t.TempDir())
	assert.ErrorIs(t, err, check.ErrUnsupportedFormat)
}

func TestTableRowsOrder(t *testing.T) {
	rows := tableRows(testResults())
	require.Len(t, rows, 2)

	// Aggregation order: missing before valid.
	assert.Equal(t, "w-m", rows[0].ID)
	assert.Equal(t, "missing", rows[0].Outcome)
	assert.Equal(t, "w-v", rows[1].ID)
	assert.Equal(t, "valid", rows[1].Outcome)
}
