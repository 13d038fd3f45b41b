package profile

import (
	"strings"

	"github.com/dshills/govlint/internal/rule"
	"github.com/dshills/govlint/internal/schema"
)

func init() {
	mustRegister(docsStyle())
}

// docsStyle targets plain documentation prose rather than SDK code.
func docsStyle() *RuleSet {
	return &RuleSet{
		Name: "docs-style",
		Rules: []rule.Rule{
			{
				ID:       "docs-unresolved-placeholder",
				Category: schema.CategoryStyle,
				Severity: schema.SeverityMedium,
				Message:  "Document contains an unresolved placeholder (TBD / to be determined).",
				Match:    rule.ContainsAny("TBD", "to be determined"),
			},
			{
				ID:       "docs-vague-phrase",
				Category: schema.CategoryStyle,
				Severity: schema.SeverityLow,
				Message:  "Vague phrasing weakens the document; name the concrete behavior instead.",
				Match:    rule.ContainsAny("as needed", "as appropriate", "and so on"),
			},
			{
				ID:       "docs-double-space",
				Category: schema.CategoryStyle,
				Severity: schema.SeverityLow,
				Message:  "Sentences are separated by double spaces.",
				Match:    rule.Contains(".  "),
				Corrections: []rule.Correction{
					{Find: ".  ", Replace: ". "},
				},
			},
			{
				ID:                "docs-passive-voice",
				Category:          schema.CategoryStyle,
				Severity:          schema.SeverityLow,
				Message:           "Passive constructions detected; the style guide requires active voice.",
				NeedsStyleContext: true,
				Match: func(in rule.Input) bool {
					if !strings.Contains(strings.ToLower(in.StyleRules), "active voice") {
						return false
					}
					return strings.Contains(in.Doc, " is performed by ") ||
						strings.Contains(in.Doc, " will be ") ||
						strings.Contains(in.Doc, " was done ")
				},
			},
		},
	}
}
