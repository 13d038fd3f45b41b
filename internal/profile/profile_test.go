package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/govlint/internal/rule"
	"github.com/dshills/govlint/internal/schema"
)

func TestGet_BuiltinProfiles(t *testing.T) {
	for _, name := range []string{"splunk", "omniverse", "docs-style"} {
		rs, err := Get(name)
		require.NoError(t, err, "profile %s", name)
		assert.Equal(t, name, rs.Name)
		assert.NotEmpty(t, rs.Rules)
	}
}

func TestGet_UnknownProfile(t *testing.T) {
	_, err := Get("nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestNames_SortedAndIncludesBuiltins(t *testing.T) {
	names := Names()
	assert.IsType(t, []string{}, names)
	assert.Contains(t, names, "splunk")
	assert.Contains(t, names, "omniverse")
	assert.Contains(t, names, "docs-style")
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i], "names must be sorted")
	}
}

func TestRegister_DuplicateName(t *testing.T) {
	rs := &RuleSet{
		Name: "splunk",
		Rules: []rule.Rule{{
			ID:       "x",
			Category: schema.CategoryLogic,
			Severity: schema.SeverityLow,
			Message:  "m",
			Match:    rule.Contains("x"),
		}},
	}
	err := Register(rs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestValidate_Rejections(t *testing.T) {
	valid := func() *RuleSet {
		return &RuleSet{
			Name: "p",
			Rules: []rule.Rule{{
				ID:       "ok-rule",
				Category: schema.CategoryLogic,
				Severity: schema.SeverityLow,
				Message:  "m",
				Match:    rule.Contains("x"),
			}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*RuleSet)
		wantErr string
	}{
		{"empty name", func(rs *RuleSet) { rs.Name = "" }, "no name"},
		{"no rules", func(rs *RuleSet) { rs.Rules = nil }, "no rules"},
		{"bad id", func(rs *RuleSet) { rs.Rules[0].ID = "Bad_ID" }, "must match"},
		{"bad category", func(rs *RuleSet) { rs.Rules[0].Category = "NOISE" }, "unknown category"},
		{"bad severity", func(rs *RuleSet) { rs.Rules[0].Severity = "EXTREME" }, "invalid severity"},
		{"no message", func(rs *RuleSet) { rs.Rules[0].Message = "" }, "message is required"},
		{"no predicate", func(rs *RuleSet) { rs.Rules[0].Match = nil }, "predicate is required"},
		{
			"empty find",
			func(rs *RuleSet) { rs.Rules[0].Corrections = []rule.Correction{{Find: "", Replace: "y"}} },
			"empty find target",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := valid()
			tt.mutate(rs)
			err := Validate(rs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.NoError(t, Validate(valid()))
}

func TestValidate_DuplicateRuleID(t *testing.T) {
	r := rule.Rule{
		ID:       "dup",
		Category: schema.CategoryStyle,
		Severity: schema.SeverityLow,
		Message:  "m",
		Match:    rule.Contains("x"),
	}
	err := Validate(&RuleSet{Name: "p", Rules: []rule.Rule{r, r}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}
