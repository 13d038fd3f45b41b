package profile

import (
	"regexp"
	"strings"

	"github.com/dshills/govlint/internal/rule"
	"github.com/dshills/govlint/internal/schema"
)

func init() {
	mustRegister(splunk())
}

// splunk targets code written against the Splunk Enterprise SDK.
func splunk() *RuleSet {
	return &RuleSet{
		Name: "splunk",
		Rules: []rule.Rule{
			{
				ID:       "splunk-mgmt-port",
				Category: schema.CategoryLogic,
				Severity: schema.SeverityHigh,
				Message:  "Connection targets the web port 80; the Splunk management API listens on port 8089.",
				// Boundary match so an already-correct port=8089 never re-fires.
				Match: rule.Matches(regexp.MustCompile(`port=80\b`)),
				Corrections: []rule.Correction{
					// The identity pair claims existing port=8089 spans first
					// so the literal port=80 edit cannot land inside them.
					{Find: "port=8089", Replace: "port=8089"},
					{Find: "port=80", Replace: "port=8089"},
				},
			},
			{
				ID:       "splunk-hardcoded-credentials",
				Category: schema.CategorySecurity,
				Severity: schema.SeverityCritical,
				Message:  "Hardcoded credentials detected; authenticate with a token from the environment instead.",
				Match: rule.ContainsAny(
					"username='admin'",
					`username="admin"`,
					"password='changeme'",
					`password="changeme"`,
				),
				// The combined pair is registered first so that a document
				// carrying both literals collapses to a single token line;
				// the individual pairs cover documents with only one.
				Corrections: []rule.Correction{
					{Find: "username='admin', password='changeme'", Replace: "token=os.environ['SPLUNK_TOKEN']"},
					{Find: `username="admin", password="changeme"`, Replace: `token=os.environ["SPLUNK_TOKEN"]`},
					{Find: "username='admin'", Replace: "token=os.environ['SPLUNK_TOKEN']"},
					{Find: `username="admin"`, Replace: `token=os.environ["SPLUNK_TOKEN"]`},
					{Find: "password='changeme'", Replace: "token=os.environ['SPLUNK_TOKEN']"},
					{Find: `password="changeme"`, Replace: `token=os.environ["SPLUNK_TOKEN"]`},
				},
			},
			{
				ID:       "splunk-plaintext-endpoint",
				Category: schema.CategorySecurity,
				Severity: schema.SeverityMedium,
				Message:  "Endpoint uses plaintext HTTP; Splunk management endpoints require HTTPS.",
				Match:    rule.Contains("http://"),
				Corrections: []rule.Correction{
					{Find: "http://", Replace: "https://"},
				},
			},
			{
				ID:       "splunk-tls-verify-disabled",
				Category: schema.CategorySecurity,
				Severity: schema.SeverityHigh,
				Message:  "TLS certificate verification is disabled.",
				Match:    rule.Contains("verify=False"),
				Corrections: []rule.Correction{
					{Find: "verify=False", Replace: "verify=True"},
				},
			},
			{
				// Style guidance comes from the ingested Splunk style guide;
				// without that context this rule is skipped.
				ID:                "splunk-passive-voice",
				Category:          schema.CategoryStyle,
				Severity:          schema.SeverityLow,
				Message:           "Documentation text uses passive or future constructions; the Splunk style guide requires active voice and present tense.",
				NeedsStyleContext: true,
				Match: func(in rule.Input) bool {
					if !strings.Contains(strings.ToLower(in.StyleRules), "active voice") {
						return false
					}
					for _, marker := range []string{" will be ", " is being ", " has been ", " are loaded by "} {
						if strings.Contains(in.Doc, marker) {
							return true
						}
					}
					return false
				},
			},
		},
	}
}
