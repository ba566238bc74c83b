package packs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, prefix, data string) *ruleSet {
	t.Helper()
	rs, err := parseGitignore("x", prefix, []byte(data))
	require.NoError(t, err)
	return rs
}

func TestRuleSetDecide(t *testing.T) {
	rs := mustParse(t, "", `
# editor leftovers
*.bak
!keep.bak
build/
/rooted
\#literal
`)

	tests := []struct {
		rel   string
		isDir bool
		want  Decision
	}{
		{"notes.bak", false, DecisionIgnore},
		{"keep.bak", false, DecisionInclude},
		{"build", true, DecisionIgnore},
		{"build", false, DecisionNone},
		{"rooted", false, DecisionIgnore},
		{"sub/rooted", false, DecisionNone},
		{"sub/x.bak", false, DecisionIgnore},
		{"#literal", false, DecisionIgnore},
		{".vimrc", false, DecisionNone},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, rs.decide(tt.rel, tt.isDir))
		})
	}
	assert.Equal(t, 5, rs.rules)
}

func TestRuleSetLastMatchWins(t *testing.T) {
	rs := mustParse(t, "", "!a.txt\na.txt\n")
	assert.Equal(t, DecisionIgnore, rs.decide("a.txt", false))

	rs = mustParse(t, "", "a.txt\n!a.txt\n")
	assert.Equal(t, DecisionInclude, rs.decide("a.txt", false))
}

func TestRuleSetPrefix(t *testing.T) {
	// a parent directory's file sees the package as demo/
	rs := mustParse(t, "demo/", "/demo/secret\n/vimrc\n*.swp\ncache/\n")

	assert.Equal(t, DecisionIgnore, rs.decide("secret", false))
	assert.Equal(t, DecisionNone, rs.decide("vimrc", false))
	assert.Equal(t, DecisionIgnore, rs.decide("x.swp", false))
	assert.Equal(t, DecisionIgnore, rs.decide("cache", true))
}

func TestRuleSetParentDirectoryIgnoresEverything(t *testing.T) {
	rs := mustParse(t, "demo/", "demo/\n")
	assert.Equal(t, DecisionIgnore, rs.decide("vimrc", false))
}

func TestParseGitignoreSkipsInvalid(t *testing.T) {
	rs := mustParse(t, "", "[z-a].txt\nok.txt\n")
	assert.Equal(t, []string{"[z-a].txt"}, rs.invalid)
	assert.Equal(t, 1, rs.rules)
	assert.Equal(t, DecisionIgnore, rs.decide("ok.txt", false))
}

func TestNilRuleSet(t *testing.T) {
	var rs *ruleSet
	assert.Equal(t, DecisionNone, rs.decide("a", false))
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, `\[ab\]`, escapeGlob("[ab]"))
	assert.Equal(t, `a\*b\?`, escapeGlob("a*b?"))
	assert.Equal(t, `my\ file`, escapeGlob("my file"))
	assert.Equal(t, "plain.sh", escapeGlob("plain.sh"))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "ignore", DecisionIgnore.String())
	assert.Equal(t, "include", DecisionInclude.String())
	assert.Equal(t, "none", DecisionNone.String())
}
