package rule

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dshills/govlint/internal/schema"
)

// Input is what a predicate sees: the document under audit and, for
// style-gated rules, the style-rules text supplied by the caller.
// Predicates always evaluate against the original, unmodified document,
// never partially-corrected text.
type Input struct {
	Doc        string
	StyleRules string
}

// Predicate decides whether a rule fires. Predicates must be pure and
// side-effect-free.
type Predicate func(in Input) bool

// Correction is a single literal (non-regex) substitution applied when the
// owning rule fires.
type Correction struct {
	Find    string
	Replace string
}

// Rule is a single detection+correction unit: a predicate over the input
// document, a human-readable finding, and an optional list of deterministic
// substitutions. Rules are immutable after construction and safe to share
// across concurrent audits.
type Rule struct {
	ID          string
	Category    schema.Category
	Severity    schema.Severity
	Message     string
	Match       Predicate
	Corrections []Correction
	// NeedsStyleContext marks a rule that only runs when the caller
	// supplies style-rules text; without it the rule is skipped, not failed.
	NeedsStyleContext bool
}

// Eval runs the rule's predicate with panic isolation: a faulting predicate
// reports fired=false and a non-nil error instead of aborting the audit, so
// one bad rule cannot block all others.
func Eval(r Rule, in Input) (fired bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			fired = false
			err = fmt.Errorf("rule %s: predicate panicked: %v", r.ID, p)
		}
	}()
	if r.Match == nil {
		return false, nil
	}
	return r.Match(in), nil
}

// Contains builds a predicate that fires when the document contains substr.
func Contains(substr string) Predicate {
	return func(in Input) bool {
		return strings.Contains(in.Doc, substr)
	}
}

// ContainsAny builds a predicate that fires when the document contains at
// least one of the given substrings.
func ContainsAny(substrs ...string) Predicate {
	return func(in Input) bool {
		for _, s := range substrs {
			if strings.Contains(in.Doc, s) {
				return true
			}
		}
		return false
	}
}

// ContainsAll builds a predicate that fires only when the document contains
// every one of the given substrings.
func ContainsAll(substrs ...string) Predicate {
	return func(in Input) bool {
		for _, s := range substrs {
			if !strings.Contains(in.Doc, s) {
				return false
			}
		}
		return true
	}
}

// Matches builds a predicate from a compiled regular expression. Detection
// may be pattern-based even though corrections stay literal.
func Matches(re *regexp.Regexp) Predicate {
	return func(in Input) bool {
		return re.MatchString(in.Doc)
	}
}
