package report

import (
	"html/template"
	"os"

	"github.com/mesh-intelligence/surveyor/pkg/check"
)

var htmlTemplate = template.Must(template.New("report").Parse(`<html>
<head><title>Report</title></head>
<body>
<h1>Report: {{.Category}} - {{.Property}} - {{.Rule}}</h1>
<table border="1">
<tr><th>Name</th><th>Type</th><th>Family</th><th>ID</th><th>Status</th></tr>
{{- range .Rows}}
<tr><td>{{.Name}}</td><td>{{.Type}}</td><td>{{.Family}}</td><td>{{.ID}}</td><td>{{.Outcome}}</td></tr>
{{- end}}
</table>
</body>
</html>
`))

type htmlData struct {
	Category string
	Property string
	Rule     string
	Rows     []row
}

func writeHTML(results check.Results, cfg check.RuleConfig, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	data := htmlData{
		Category: cfg.Category,
		Property: cfg.Property,
		Rule:     cfg.RulePrefix,
		Rows:     tableRows(results),
	}
	if err := htmlTemplate.Execute(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
