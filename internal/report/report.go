// Package report derives summary values from findings and formats the
// review-comment style text report. Everything here is a pure view over an
// existing audit result; nothing re-runs the audit.
package report

import (
	"fmt"
	"strings"

	"github.com/dshills/govlint/internal/schema"
)

// TruncationMarker is appended to a corrected-text preview that was cut at
// the caller's truncation limit.
const TruncationMarker = "… [truncated]"

// StatusOf computes the overall verdict: Pass when no rule fired, otherwise
// Fail with automatic fixes applied.
func StatusOf(findings []schema.Finding) schema.Status {
	if len(findings) == 0 {
		return schema.StatusPass
	}
	return schema.StatusFailAutoFixed
}

// Counts returns the per-severity finding counts.
func Counts(findings []schema.Finding) (low, medium, high, critical int) {
	for _, f := range findings {
		switch f.Severity {
		case schema.SeverityLow:
			low++
		case schema.SeverityMedium:
			medium++
		case schema.SeverityHigh:
			high++
		case schema.SeverityCritical:
			critical++
		}
	}
	return
}

// WorstSeverity returns the highest severity present, or "" when there are
// no findings.
func WorstSeverity(findings []schema.Finding) schema.Severity {
	worst := schema.Severity("")
	rank := -1
	for _, f := range findings {
		if o := schema.SeverityOrdinal(f.Severity); o > rank {
			rank = o
			worst = f.Severity
		}
	}
	return worst
}

// MeetsSeverity reports whether s is at or above threshold.
func MeetsSeverity(s, threshold schema.Severity) bool {
	return schema.SeverityOrdinal(s) >= schema.SeverityOrdinal(threshold)
}

// FilterBySeverity returns only findings at or above the given threshold.
func FilterBySeverity(findings []schema.Finding, threshold schema.Severity) []schema.Finding {
	if threshold == schema.SeverityLow {
		return findings
	}
	out := make([]schema.Finding, 0, len(findings))
	for _, f := range findings {
		if MeetsSeverity(f.Severity, threshold) {
			out = append(out, f)
		}
	}
	return out
}

// Format renders findings and the corrected text as a review-comment style
// summary. The corrected-text preview is cut at truncateAt runes with an
// explicit marker; truncateAt <= 0 disables truncation.
func Format(findings []schema.Finding, correctedText string, truncateAt int) string {
	var sb strings.Builder

	if len(findings) == 0 {
		sb.WriteString("Status: PASS — no governance issues found.\n")
	} else {
		low, medium, high, critical := Counts(findings)
		sb.WriteString(fmt.Sprintf(
			"Status: FAIL (auto-fixed) — %d finding(s): %d critical, %d high, %d medium, %d low.\n",
			len(findings), critical, high, medium, low,
		))
		sb.WriteString("\nFindings:\n")
		for _, f := range findings {
			sb.WriteString(fmt.Sprintf("- [%s/%s] %s: %s\n", f.Category, f.Severity, f.RuleID, f.Message))
		}
	}

	sb.WriteString("\nCorrected output preview:\n")
	sb.WriteString(Truncate(correctedText, truncateAt))
	sb.WriteString("\n")
	return sb.String()
}

// Truncate limits s to maxRunes runes, appending the truncation marker when
// content was cut. maxRunes <= 0 returns s unmodified.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}
	return string(r[:maxRunes]) + TruncationMarker
}
