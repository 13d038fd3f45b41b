package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/govlint/internal/rule"
	"github.com/dshills/govlint/internal/schema"
)

const sampleProfileYAML = `name: acme-sdk
rules:
  - id: acme-legacy-endpoint
    category: LOGIC
    severity: HIGH
    message: Legacy v1 endpoint is deprecated.
    contains: ["api.acme.test/v1/"]
    find_replace:
      - find: "api.acme.test/v1/"
        replace: "api.acme.test/v2/"
  - id: acme-debug-flag
    category: SECURITY
    severity: MEDIUM
    message: Debug mode must not ship.
    contains: ["debug=true"]
    find_replace:
      - find: "debug=true"
        replace: "debug=false"
`

func writeProfileFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_ValidProfile(t *testing.T) {
	rs, err := LoadFile(writeProfileFile(t, sampleProfileYAML))
	require.NoError(t, err)

	assert.Equal(t, "acme-sdk", rs.Name)
	require.Len(t, rs.Rules, 2)

	r := rs.Rules[0]
	assert.Equal(t, "acme-legacy-endpoint", r.ID)
	assert.Equal(t, schema.CategoryLogic, r.Category)
	assert.Equal(t, schema.SeverityHigh, r.Severity)
	require.Len(t, r.Corrections, 1)
	assert.Equal(t, rule.Correction{Find: "api.acme.test/v1/", Replace: "api.acme.test/v2/"}, r.Corrections[0])

	// The built predicate fires on the declared needle.
	fired, err := rule.Eval(r, rule.Input{Doc: "GET https://api.acme.test/v1/items"})
	require.NoError(t, err)
	assert.True(t, fired)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading profile file")
}

func TestParseProfile_RejectsUnknownFields(t *testing.T) {
	_, err := parseProfile([]byte("name: p\nbogus: field\nrules: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing YAML")
}

func TestParseProfile_RejectsPredicateCorrectionMismatch(t *testing.T) {
	// Flags one substring but corrects a different literal — the latent
	// defect shape the loader must refuse.
	const mismatch = `name: p
rules:
  - id: mismatched
    category: LOGIC
    severity: LOW
    message: m
    contains: ["port=80"]
    find_replace:
      - find: "port = 80"
        replace: "port = 8089"
`
	_, err := parseProfile([]byte(mismatch))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "predicate and correction disagree")
}

func TestParseProfile_RequiresNeedles(t *testing.T) {
	const noNeedles = `name: p
rules:
  - id: needleless
    category: STYLE
    severity: LOW
    message: m
`
	_, err := parseProfile([]byte(noNeedles))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contains needle is required")
}

func TestParseProfile_RejectsBadEnumValues(t *testing.T) {
	const badCategory = `name: p
rules:
  - id: r
    category: VIBES
    severity: LOW
    message: m
    contains: ["x"]
`
	_, err := parseProfile([]byte(badCategory))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}
