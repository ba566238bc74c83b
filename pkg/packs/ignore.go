package packs

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gopasspw/gitconfig"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/scrubjay/pkg/errors"
	"github.com/arthur-debert/scrubjay/pkg/paths"
	"github.com/arthur-debert/scrubjay/pkg/types"
)

// GitIgnoreFileName is the per-directory git ignore file
const GitIgnoreFileName = ".gitignore"

// Matcher decides which entries of a package are left out of the link set.
// Sources are consulted in order and the first one that reaches a decision
// wins.
type Matcher struct {
	overrides *Override
	sources   []*ruleSet
}

// Match returns the decision and the name of the source that made it.
// An empty source means no source matched and the entry is included.
func (m *Matcher) Match(rel string, isDir bool) (Decision, string) {
	rel = filepath.ToSlash(rel)
	if d := m.overrides.Decide(rel, isDir); d != DecisionNone {
		return d, "overrides"
	}
	for _, rs := range m.sources {
		if d := rs.decide(rel, isDir); d != DecisionNone {
			return d, rs.source
		}
	}
	return DecisionNone, ""
}

// Sources lists the ignore files that contributed rules, in precedence order.
func (m *Matcher) Sources() []string {
	names := make([]string, 0, len(m.sources))
	for _, rs := range m.sources {
		names = append(names, rs.source)
	}
	return names
}

// matcherBuilder gathers the ignore sources of one package root.
type matcherBuilder struct {
	fs     types.FS
	root   string
	logger zerolog.Logger
}

func newMatcherBuilder(fsys types.FS, root string, logger zerolog.Logger) *matcherBuilder {
	return &matcherBuilder{
		fs:     fsys,
		root:   filepath.Clean(root),
		logger: logger,
	}
}

// build collects, in precedence order: the .ignore files from the package
// up to the work tree root, the .gitignore files along the same chain, the
// repository exclude file and the global excludes file. Outside a work
// tree only the package's own .ignore applies.
func (b *matcherBuilder) build(overrides *Override) (*Matcher, error) {
	m := &Matcher{overrides: overrides}

	workTree, inGit := paths.FindGitWorkTree(b.root)
	if !inGit {
		b.logger.Trace().Str("root", b.root).Msg("Not inside a git work tree, skipping git ignore sources")
		if err := b.addFile(m, b.root, IgnoreFileName); err != nil {
			return nil, err
		}
		return m, nil
	}
	b.logger.Trace().Str("workTree", workTree).Msg("Package is inside a git work tree")

	chain := b.dirChain(workTree)
	for _, name := range []string{IgnoreFileName, GitIgnoreFileName} {
		for _, dir := range chain {
			if err := b.addFile(m, dir, name); err != nil {
				return nil, err
			}
		}
	}

	gitDir := filepath.Join(workTree, ".git")
	if info, err := b.fs.Stat(gitDir); err == nil && info.IsDir() {
		if err := b.add(m, filepath.Join(gitDir, "info", "exclude"), workTree); err != nil {
			return nil, err
		}
	}

	if err := b.add(m, b.globalExcludesPath(workTree), workTree); err != nil {
		return nil, err
	}
	return m, nil
}

// dirChain lists the package root and its parents up to workTree,
// deepest first.
func (b *matcherBuilder) dirChain(workTree string) []string {
	chain := []string{b.root}
	for dir := b.root; dir != workTree; {
		parent := filepath.Dir(dir)
		if parent == dir || !paths.IsWithin(workTree, parent) {
			break
		}
		chain = append(chain, parent)
		dir = parent
	}
	return chain
}

func (b *matcherBuilder) addFile(m *Matcher, dir, name string) error {
	return b.add(m, filepath.Join(dir, name), dir)
}

// add reads the ignore file at path, whose patterns are relative to base.
func (b *matcherBuilder) add(m *Matcher, path, base string) error {
	rs, err := b.readIgnoreFile(path, b.prefix(base))
	if err != nil {
		return err
	}
	if rs != nil {
		m.sources = append(m.sources, rs)
	}
	return nil
}

// prefix is the package root relative to base, as a rule candidate prefix.
func (b *matcherBuilder) prefix(base string) string {
	rel, err := filepath.Rel(base, b.root)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel) + "/"
}

// readIgnoreFile parses a gitignore-syntax file. A missing file yields no
// rule set.
func (b *matcherBuilder) readIgnoreFile(path, prefix string) (*ruleSet, error) {
	if path == "" {
		return nil, nil
	}
	data, err := b.fs.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrWalk, "cannot read ignore file `%s`", path).
			WithDetail("path", path)
	}
	rs, err := parseGitignore(path, prefix, data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWalk, "cannot parse ignore file `%s`", path).
			WithDetail("path", path)
	}
	for _, pattern := range rs.invalid {
		b.logger.Debug().
			Str("file", path).
			Str("pattern", pattern).
			Msg("Skipping invalid ignore pattern")
	}
	b.logger.Trace().Str("file", path).Int("rules", rs.rules).Msg("Loaded ignore file")
	return rs, nil
}

// globalExcludesPath resolves core.excludesFile from the git configuration
// of workTree, falling back to git's default location.
func (b *matcherBuilder) globalExcludesPath(workTree string) string {
	cfg := gitconfig.New()
	cfg.LoadAll(filepath.Join(workTree, ".git"))

	value := strings.TrimSpace(cfg.Get("core.excludesfile"))
	if value == "" {
		return paths.DefaultGitExcludesPath()
	}
	if value == "~" || strings.HasPrefix(value, "~/") {
		expanded, err := paths.ExpandShell(value)
		if err != nil {
			b.logger.Warn().Err(err).Str("excludesFile", value).Msg("Cannot expand core.excludesFile")
			return paths.DefaultGitExcludesPath()
		}
		value = expanded
	}
	b.logger.Trace().Str("excludesFile", value).Msg("Using global git excludes file")
	return value
}
