// Package audit applies a profile's rules to a document and produces
// findings plus a corrected copy. Audit is a pure function of its inputs:
// it holds no state between calls and is safe to invoke concurrently
// against a shared rule set.
package audit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/govlint/internal/profile"
	"github.com/dshills/govlint/internal/rule"
	"github.com/dshills/govlint/internal/schema"
)

// Option configures a single audit run.
type Option func(*options)

type options struct {
	styleRules string
}

// WithStyleRules supplies the style-guide text that gates style-context
// rules. Without it those rules are skipped, not failed.
func WithStyleRules(text string) Option {
	return func(o *options) { o.styleRules = text }
}

// Audit evaluates every rule in rs against text and returns a fresh result.
//
// Predicates always see the original, unmodified text, so predicate
// evaluation is independent of rule order. Corrections accumulate across
// fired rules with last-write-wins on duplicate find strings, then apply
// as span edits located on the original text — a replacement value can
// never be re-matched by a later correction.
func Audit(text string, rs *profile.RuleSet, opts ...Option) schema.AuditResult {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	in := rule.Input{Doc: text, StyleRules: o.styleRules}

	res := schema.AuditResult{
		OriginalText:  text,
		CorrectedText: text,
	}

	merged := newCorrections()
	for _, r := range rs.Rules {
		if r.NeedsStyleContext && o.styleRules == "" {
			res.SkippedStyleRules++
			continue
		}

		fired, err := rule.Eval(r, in)
		if err != nil {
			res.Warnings = append(res.Warnings, schema.Warning{
				RuleID: r.ID,
				Kind:   schema.WarningRuleFault,
				Detail: err.Error(),
			})
			continue
		}
		if !fired {
			continue
		}

		res.Findings = append(res.Findings, schema.Finding{
			RuleID:   r.ID,
			Category: r.Category,
			Severity: r.Severity,
			Message:  r.Message,
		})

		if len(r.Corrections) == 0 {
			continue
		}
		merged.add(r.Corrections)
		if !anyTargetPresent(text, r.Corrections) {
			res.Warnings = append(res.Warnings, schema.Warning{
				RuleID: r.ID,
				Kind:   schema.WarningCorrectionMismatch,
				Detail: fmt.Sprintf("rule %s fired but none of its %d correction target(s) occur in the document", r.ID, len(r.Corrections)),
			})
		}
	}

	res.CorrectedText = applySpans(text, locateSpans(text, merged))
	return res
}

// AuditProfile resolves the named profile and audits text against it. The
// only possible error is an unknown profile name.
func AuditProfile(text, profileName string, opts ...Option) (schema.AuditResult, error) {
	rs, err := profile.Get(profileName)
	if err != nil {
		return schema.AuditResult{}, err
	}
	return Audit(text, rs, opts...), nil
}

// corrections is an ordered find→replace mapping. Order is first
// registration of each find string; a later rule registering the same find
// overwrites the replacement (last write wins — documented behavior).
type corrections struct {
	order []string
	repl  map[string]string
}

func newCorrections() *corrections {
	return &corrections{repl: map[string]string{}}
}

func (c *corrections) add(cs []rule.Correction) {
	for _, corr := range cs {
		if corr.Find == "" {
			continue
		}
		if _, seen := c.repl[corr.Find]; !seen {
			c.order = append(c.order, corr.Find)
		}
		c.repl[corr.Find] = corr.Replace
	}
}

// anyTargetPresent reports whether at least one correction target occurs in
// the original document.
func anyTargetPresent(doc string, cs []rule.Correction) bool {
	for _, c := range cs {
		if c.Find != "" && strings.Contains(doc, c.Find) {
			return true
		}
	}
	return false
}

// span is one pending edit located at fixed offsets in the original text.
type span struct {
	start, end int
	replace    string
}

// locateSpans finds every occurrence of each registered find string in the
// original document. Occurrences that overlap a span already claimed by an
// earlier-registered correction are dropped.
func locateSpans(doc string, c *corrections) []span {
	var spans []span
	for _, find := range c.order {
		replace := c.repl[find]
		for idx := 0; ; {
			off := strings.Index(doc[idx:], find)
			if off < 0 {
				break
			}
			start := idx + off
			end := start + len(find)
			if !overlapsAny(spans, start, end) {
				spans = append(spans, span{start: start, end: end, replace: replace})
			}
			idx = end
		}
	}
	return spans
}

func overlapsAny(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

// applySpans performs the edits in a single right-to-left pass so that each
// edit leaves the offsets of the spans still pending intact.
func applySpans(doc string, spans []span) string {
	if len(spans) == 0 {
		return doc
	}
	sorted := make([]span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start > sorted[j].start })

	out := doc
	for _, s := range sorted {
		out = out[:s.start] + s.replace + out[s.end:]
	}
	return out
}
