package packs

import (
	"bytes"
	"strings"

	"github.com/woozymasta/pathrules"
)

// Decision is the verdict a rule source reaches for one entry.
type Decision int

const (
	// DecisionNone means no rule in the source matched.
	DecisionNone Decision = iota
	// DecisionIgnore means the entry is excluded.
	DecisionIgnore
	// DecisionInclude means the entry was matched by a re-including rule.
	DecisionInclude
)

func (d Decision) String() string {
	switch d {
	case DecisionIgnore:
		return "ignore"
	case DecisionInclude:
		return "include"
	default:
		return "none"
	}
}

// matcherOptions is shared by every compiled rule set: backslash escapes
// are literal characters, as in git.
var matcherOptions = pathrules.MatcherOptions{EnableEscaping: true}

// ruleSet holds the compiled patterns of one ignore source. Later rules
// take precedence over earlier ones.
type ruleSet struct {
	source string
	// prefix locates the package relative to the directory of the source,
	// slash separated with a trailing slash, empty when they coincide.
	prefix  string
	matcher *pathrules.Matcher
	rules   int
	// invalid lists patterns that were skipped because they do not compile.
	invalid []string
}

// parseGitignore reads gitignore-syntax data into a rule set whose
// patterns are relative to the directory prefix names.
func parseGitignore(source, prefix string, data []byte) (*ruleSet, error) {
	rules, err := pathrules.ParseRules(bytes.NewReader(data), pathrules.ParseOptions{})
	if err != nil {
		return nil, err
	}
	rs := &ruleSet{source: source, prefix: prefix}
	rs.matcher, rs.invalid = compileRules(rules)
	rs.rules = len(rules) - len(rs.invalid)
	return rs, nil
}

// compileRules builds a matcher from every rule that compiles on its own
// and returns the patterns of the others.
func compileRules(rules []pathrules.Rule) (*pathrules.Matcher, []string) {
	valid := make([]pathrules.Rule, 0, len(rules))
	var invalid []string
	for _, r := range rules {
		if _, err := pathrules.NewMatcher([]pathrules.Rule{r}, matcherOptions); err != nil {
			invalid = append(invalid, r.Pattern)
			continue
		}
		valid = append(valid, r)
	}
	m, _ := pathrules.NewMatcher(valid, matcherOptions)
	return m, invalid
}

// decide evaluates the rule set for rel, slash separated and relative to
// the package root. The last matching rule wins.
func (rs *ruleSet) decide(rel string, isDir bool) Decision {
	if rs == nil || rs.matcher == nil {
		return DecisionNone
	}
	return decisionOf(rs.matcher.Decide(rs.prefix+rel, isDir))
}

func decisionOf(res pathrules.MatchResult) Decision {
	switch {
	case !res.Matched:
		return DecisionNone
	case res.Included:
		return DecisionInclude
	default:
		return DecisionIgnore
	}
}

// escapeGlob quotes every glob metacharacter so name matches only itself.
func escapeGlob(name string) string {
	var b strings.Builder
	for _, c := range name {
		switch c {
		case '*', '?', '[', ']', '{', '}', '\\', ' ':
			b.WriteRune('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
