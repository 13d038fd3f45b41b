package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/dshills/govlint/internal/schema"
)

type markdownRenderer struct{}

var mdFuncs = template.FuncMap{
	"diffPrefix": func(kind schema.DiffKind) string {
		switch kind {
		case schema.DiffAdded:
			return "+"
		case schema.DiffRemoved:
			return "-"
		default:
			return " "
		}
	},
}

var mdTemplate = template.Must(template.New("report").Funcs(mdFuncs).Parse(`# GovLint Report

**Status:** {{ .Summary.Status }}
**Profile:** {{ .Input.Profile }}
**Critical:** {{ .Summary.CriticalCount }} | **High:** {{ .Summary.HighCount }} | **Medium:** {{ .Summary.MediumCount }} | **Low:** {{ .Summary.LowCount }}
{{ if .Findings }}
---

## Findings

| Category | Severity | Rule | Message |
|----------|----------|------|---------|
{{ range .Findings }}| {{ .Category }} | {{ .Severity }} | {{ .RuleID }} | {{ .Message }} |
{{ end }}{{ end }}{{ if .Warnings }}
## Warnings
{{ range .Warnings }}
- **{{ .Kind }}** ({{ .RuleID }}): {{ .Detail }}
{{ end }}{{ end }}{{ if .Diff }}
---

## Diff

` + "```diff" + `
{{ range .Diff }}{{ diffPrefix .Kind }}{{ .Content }}
{{ end }}` + "```" + `
{{ end }}{{ if .Suggestion }}
---

## Generative Suggestion

` + "```" + `
{{ .Suggestion }}
` + "```" + `
{{ end }}
---
*Input: {{ .Input.File }} ({{ .Input.Hash }}) | Run: {{ .Input.RunID }}*
`))

func (r *markdownRenderer) Render(report *schema.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
