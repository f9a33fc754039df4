package report

import (
	"html/template"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"lower": strings.ToLower,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>SQL Anti-Pattern Report</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 0.4rem 0.6rem; text-align: left; vertical-align: top; }
th { background: #f4f4f4; }
code { font-size: 0.9em; }
.critical { color: #c62828; font-weight: bold; }
.high { color: #ef6c00; }
.medium { color: #f9a825; }
.low { color: #1565c0; }
</style>
</head>
<body>
<h1>SQL Anti-Pattern Report</h1>
<p>Run <code>{{.RunID}}</code> generated {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}</p>
<p><strong>Health score:</strong> {{.Health.Score}}/100 ({{.Health.Label}})</p>
<p>Critical: {{.Summary.Critical}} &middot; High: {{.Summary.High}} &middot; Medium: {{.Summary.Medium}} &middot; Low: {{.Summary.Low}} &middot; Total: {{.Summary.Total}}</p>
{{- if .Issues}}
<table>
<thead><tr><th>Severity</th><th>Issue</th><th>Count</th><th>Example Query</th><th>Description</th><th>Fix</th><th>Impact</th></tr></thead>
<tbody>
{{- range .Issues}}
<tr><td class="{{lower .Severity.String}}">{{.Severity}}</td><td>{{.Issue}}</td><td>{{.Count}}</td><td><code>{{.Query}}</code></td><td>{{.Description}}</td><td>{{.Fix}}</td><td>{{.Impact}}</td></tr>
{{- end}}
</tbody>
</table>
{{- else}}
<p>No anti-patterns detected.</p>
{{- end}}
</body>
</html>
`))

func (r *Renderer) renderHTML(w io.Writer, rows []Row) error {
	if err := htmlTemplate.Execute(w, r.document(rows)); err != nil {
		return errors.Wrap(err, "failed to render HTML report")
	}
	return nil
}
