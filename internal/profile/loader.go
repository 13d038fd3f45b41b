package profile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/govlint/internal/rule"
	"github.com/dshills/govlint/internal/schema"
)

// fileProfile is the YAML shape of a user-defined profile.
type fileProfile struct {
	Name  string     `yaml:"name"`
	Rules []fileRule `yaml:"rules"`
}

type fileRule struct {
	ID                string           `yaml:"id"`
	Category          string           `yaml:"category"`
	Severity          string           `yaml:"severity"`
	Message           string           `yaml:"message"`
	Contains          []string         `yaml:"contains"`
	FindReplace       []fileCorrection `yaml:"find_replace"`
	NeedsStyleContext bool             `yaml:"needs_style_context"`
}

type fileCorrection struct {
	Find    string `yaml:"find"`
	Replace string `yaml:"replace"`
}

// LoadFile reads a user-defined profile from a YAML file and returns a
// validated rule set. The caller decides whether to register it.
func LoadFile(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}
	rs, err := parseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("profile file %q: %w", path, err)
	}
	return rs, nil
}

func parseProfile(data []byte) (*RuleSet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var fp fileProfile
	if err := dec.Decode(&fp); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	rs := &RuleSet{Name: fp.Name, Rules: make([]rule.Rule, 0, len(fp.Rules))}
	for i, fr := range fp.Rules {
		if len(fr.Contains) == 0 {
			return nil, fmt.Errorf("rule[%d] %q: at least one contains needle is required", i, fr.ID)
		}
		// Predicate/correction agreement: a fired rule must be able to find
		// at least one of its correction targets, so every find target has
		// to appear inside one of the needles that can trigger the rule.
		for j, fc := range fr.FindReplace {
			if !findCoveredByNeedles(fc.Find, fr.Contains) {
				return nil, fmt.Errorf("rule[%d] %q: find_replace[%d] target %q does not occur in any contains needle; predicate and correction disagree",
					i, fr.ID, j, fc.Find)
			}
		}

		r := rule.Rule{
			ID:                fr.ID,
			Category:          schema.Category(fr.Category),
			Severity:          schema.Severity(fr.Severity),
			Message:           fr.Message,
			Match:             rule.ContainsAny(fr.Contains...),
			NeedsStyleContext: fr.NeedsStyleContext,
		}
		for _, fc := range fr.FindReplace {
			r.Corrections = append(r.Corrections, rule.Correction{Find: fc.Find, Replace: fc.Replace})
		}
		rs.Rules = append(rs.Rules, r)
	}

	if err := Validate(rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// findCoveredByNeedles reports whether find occurs inside at least one
// needle. A document containing such a needle necessarily contains find,
// so the correction can never be a guaranteed no-op.
func findCoveredByNeedles(find string, needles []string) bool {
	if find == "" {
		return false
	}
	for _, n := range needles {
		if strings.Contains(n, find) {
			return true
		}
	}
	return false
}
