package packs

import (
	"path/filepath"
	"strings"

	"github.com/woozymasta/pathrules"

	"github.com/arthur-debert/scrubjay/pkg/config"
	"github.com/arthur-debert/scrubjay/pkg/errors"
	"github.com/arthur-debert/scrubjay/pkg/paths"
)

// IgnoreFileName is the per-package ignore file. It is never linked.
const IgnoreFileName = ".ignore"

// Override is the exclusion rule set applied before any ignore file.
// Globs are evaluated in the order they were added and the first match
// wins. A glob prefixed with "!" excludes; any other glob whitelists, and
// once a whitelist glob exists entries matching nothing are excluded.
type Override struct {
	root       string
	matcher    *pathrules.Matcher
	whitelists int
}

// OverrideBuilder accumulates globs for an Override.
type OverrideBuilder struct {
	root  string
	globs []string
}

// NewOverrideBuilder starts an override rule set rooted at root.
func NewOverrideBuilder(root string) *OverrideBuilder {
	return &OverrideBuilder{root: root}
}

// Add appends a glob in override syntax.
func (b *OverrideBuilder) Add(glob string) *OverrideBuilder {
	b.globs = append(b.globs, glob)
	return b
}

// Build validates every glob and returns the rule set.
func (b *OverrideBuilder) Build() (*Override, error) {
	o := &Override{root: b.root}
	// the matcher lets the last match win, so globs go in reversed
	rules := make([]pathrules.Rule, len(b.globs))
	for i, glob := range b.globs {
		r := pathrules.Rule{Pattern: glob, Action: pathrules.ActionInclude}
		if pattern, ok := strings.CutPrefix(glob, "!"); ok {
			r = pathrules.Rule{Pattern: pattern, Action: pathrules.ActionExclude}
		} else {
			o.whitelists++
		}
		if _, err := pathrules.NewMatcher([]pathrules.Rule{r}, matcherOptions); err != nil {
			return nil, errors.Wrapf(err, errors.ErrOverrideBuild, "invalid override glob `%s`", glob).
				WithDetail("glob", glob).
				WithDetail("root", b.root)
		}
		rules[len(b.globs)-1-i] = r
	}

	m, err := pathrules.NewMatcher(rules, matcherOptions)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrOverrideBuild, "invalid override globs").
			WithDetail("root", b.root)
	}
	o.matcher = m
	return o, nil
}

// Decide evaluates rel against the overrides.
func (o *Override) Decide(rel string, isDir bool) Decision {
	if o == nil || o.matcher == nil {
		return DecisionNone
	}
	res := o.matcher.Decide(rel, isDir)
	switch {
	case !res.Matched && o.whitelists > 0:
		return DecisionIgnore
	case !res.Matched:
		return DecisionNone
	case res.Included:
		return DecisionInclude
	default:
		return DecisionIgnore
	}
}

// BuildOverrides returns the rule set excluding the ignore file, the
// package descriptor and every hook script named by cfg.
func BuildOverrides(root string, cfg config.PackageConfig) (*Override, error) {
	builder := NewOverrideBuilder(root).
		Add("!" + escapeGlob(IgnoreFileName)).
		Add("!" + escapeGlob(config.DescriptorFileName))

	for _, script := range cfg.ScriptNames() {
		rel, err := scriptRelPath(root, script)
		if err != nil {
			return nil, err
		}
		builder.Add("!/" + escapeGlob(rel))
	}
	return builder.Build()
}

// scriptRelPath resolves a hook script name to a slash separated path
// relative to root.
func scriptRelPath(root, script string) (string, error) {
	full := script
	if !filepath.IsAbs(full) {
		full = filepath.Join(root, script)
	}
	rel, err := filepath.Rel(root, full)
	if err != nil || rel == "." || !paths.IsWithin(root, full) {
		return "", errors.Newf(errors.ErrOverrideBuild, "hook script `%s` is outside the package", script).
			WithDetail("script", script).
			WithDetail("root", root)
	}
	return filepath.ToSlash(rel), nil
}
