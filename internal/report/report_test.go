package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/govlint/internal/schema"
)

func makeFindings(severities ...schema.Severity) []schema.Finding {
	findings := make([]schema.Finding, len(severities))
	for i, s := range severities {
		findings[i] = schema.Finding{
			RuleID:   "r",
			Category: schema.CategoryLogic,
			Severity: s,
			Message:  "m",
		}
	}
	return findings
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, schema.StatusPass, StatusOf(nil))
	assert.Equal(t, schema.StatusFailAutoFixed, StatusOf(makeFindings(schema.SeverityLow)))
}

func TestCounts(t *testing.T) {
	low, medium, high, critical := Counts(makeFindings(
		schema.SeverityCritical, schema.SeverityHigh, schema.SeverityHigh,
		schema.SeverityMedium, schema.SeverityLow, schema.SeverityLow, schema.SeverityLow,
	))
	assert.Equal(t, 3, low)
	assert.Equal(t, 1, medium)
	assert.Equal(t, 2, high)
	assert.Equal(t, 1, critical)
}

func TestWorstSeverity(t *testing.T) {
	assert.Equal(t, schema.Severity(""), WorstSeverity(nil))
	assert.Equal(t, schema.SeverityHigh,
		WorstSeverity(makeFindings(schema.SeverityLow, schema.SeverityHigh, schema.SeverityMedium)))
}

func TestFilterBySeverity(t *testing.T) {
	findings := makeFindings(schema.SeverityLow, schema.SeverityMedium, schema.SeverityCritical)

	assert.Len(t, FilterBySeverity(findings, schema.SeverityLow), 3)
	assert.Len(t, FilterBySeverity(findings, schema.SeverityMedium), 2)
	assert.Len(t, FilterBySeverity(findings, schema.SeverityCritical), 1)
}

func TestFormat_Pass(t *testing.T) {
	out := Format(nil, "clean text", 100)

	assert.Contains(t, out, "Status: PASS")
	assert.Contains(t, out, "clean text")
	assert.NotContains(t, out, "Findings:")
}

func TestFormat_FailWithFindingRows(t *testing.T) {
	findings := []schema.Finding{
		{RuleID: "splunk-mgmt-port", Category: schema.CategoryLogic, Severity: schema.SeverityHigh, Message: "port issue"},
		{RuleID: "splunk-hardcoded-credentials", Category: schema.CategorySecurity, Severity: schema.SeverityCritical, Message: "credential issue"},
	}

	out := Format(findings, "corrected", 100)

	assert.Contains(t, out, "Status: FAIL (auto-fixed)")
	assert.Contains(t, out, "2 finding(s)")
	assert.Contains(t, out, "[LOGIC/HIGH] splunk-mgmt-port: port issue")
	assert.Contains(t, out, "[SECURITY/CRITICAL] splunk-hardcoded-credentials: credential issue")
	assert.Contains(t, out, "corrected")
}

func TestFormat_TruncatesPreview(t *testing.T) {
	long := strings.Repeat("x", 50)

	out := Format(nil, long, 10)

	assert.Contains(t, out, strings.Repeat("x", 10)+TruncationMarker)
	assert.NotContains(t, out, strings.Repeat("x", 11))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "unbounded", Truncate("unbounded", 0))
	assert.Equal(t, "hé"+TruncationMarker, Truncate("héllo", 2), "truncation counts runes, not bytes")
}
