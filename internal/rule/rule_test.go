package rule

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/govlint/internal/schema"
)

func TestEval_Fires(t *testing.T) {
	r := Rule{ID: "port", Category: schema.CategoryLogic, Match: Contains("port=80")}

	fired, err := Eval(r, Input{Doc: "connect(port=80)"})
	require.NoError(t, err)
	assert.True(t, fired)
}

func TestEval_DoesNotFire(t *testing.T) {
	r := Rule{ID: "port", Match: Contains("port=80")}

	fired, err := Eval(r, Input{Doc: "connect(port=8089)"})
	require.NoError(t, err)
	assert.False(t, fired)
}

func TestEval_NilPredicate(t *testing.T) {
	fired, err := Eval(Rule{ID: "empty"}, Input{Doc: "anything"})
	require.NoError(t, err)
	assert.False(t, fired)
}

func TestEval_PanickingPredicateIsIsolated(t *testing.T) {
	r := Rule{
		ID:    "broken",
		Match: func(Input) bool { panic("boom") },
	}

	fired, err := Eval(r, Input{Doc: "anything"})
	assert.False(t, fired)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Contains(t, err.Error(), "boom")
}

func TestContainsAny(t *testing.T) {
	p := ContainsAny("username='admin'", `username="admin"`)

	assert.True(t, p(Input{Doc: `conn(username="admin")`}))
	assert.True(t, p(Input{Doc: "conn(username='admin')"}))
	assert.False(t, p(Input{Doc: "conn(token=tok)"}))
}

func TestContainsAll(t *testing.T) {
	p := ContainsAll("import splunklib", "connect(")

	assert.True(t, p(Input{Doc: "import splunklib\nsplunklib.client.connect()"}))
	assert.False(t, p(Input{Doc: "import splunklib"}))
}

func TestMatches(t *testing.T) {
	p := Matches(regexp.MustCompile(`(?i)password\s*=\s*'`))

	assert.True(t, p(Input{Doc: "PASSWORD = 'changeme'"}))
	assert.False(t, p(Input{Doc: "password from vault"}))
}
