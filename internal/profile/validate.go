package profile

import (
	"fmt"
	"regexp"

	"github.com/dshills/govlint/internal/schema"
)

var ruleIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Validate checks the structural invariants of a rule set: a non-empty
// name, at least one rule, unique well-formed rule IDs, known category and
// severity values, a predicate per rule, and non-empty correction targets.
func Validate(rs *RuleSet) error {
	if rs == nil {
		return fmt.Errorf("rule set is nil")
	}
	if rs.Name == "" {
		return fmt.Errorf("rule set has no name")
	}
	if len(rs.Rules) == 0 {
		return fmt.Errorf("profile %q: rule set has no rules", rs.Name)
	}

	seen := make(map[string]struct{}, len(rs.Rules))
	for i, r := range rs.Rules {
		prefix := fmt.Sprintf("profile %q: rule[%d]", rs.Name, i)

		if !ruleIDPattern.MatchString(r.ID) {
			return fmt.Errorf("%s: id %q must match %s", prefix, r.ID, ruleIDPattern)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%s: duplicate id %q", prefix, r.ID)
		}
		seen[r.ID] = struct{}{}

		if !schema.IsValidCategory(r.Category) {
			return fmt.Errorf("%s: unknown category %q (must be LOGIC, SECURITY, or STYLE)", prefix, r.Category)
		}
		if !schema.IsValidSeverity(r.Severity) {
			return fmt.Errorf("%s: invalid severity %q (must be LOW, MEDIUM, HIGH, or CRITICAL)", prefix, r.Severity)
		}
		if r.Message == "" {
			return fmt.Errorf("%s: message is required", prefix)
		}
		if r.Match == nil {
			return fmt.Errorf("%s: predicate is required", prefix)
		}
		for j, c := range r.Corrections {
			if c.Find == "" {
				return fmt.Errorf("%s: correction[%d] has an empty find target", prefix, j)
			}
		}
	}
	return nil
}
