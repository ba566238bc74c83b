package packs

import (
	"iter"
	"path/filepath"

	"github.com/arthur-debert/scrubjay/pkg/errors"
	"github.com/arthur-debert/scrubjay/pkg/paths"
	"github.com/arthur-debert/scrubjay/pkg/types"
)

// Links enumerates the immediate entries of the package that should be
// linked, in lexical order. The sequence is lazy and single pass: every
// call walks the directory again and recomputes the target root. After an
// error is yielded the sequence stops.
func (p *Package) Links() iter.Seq2[types.Link, error] {
	return func(yield func(types.Link, error) bool) {
		matcher, err := p.Matcher()
		if err != nil {
			yield(types.Link{}, err)
			return
		}
		p.logger.Trace().Strs("sources", matcher.Sources()).Msg("Ignore sources")

		// os.ReadDir returns the entries it managed to read alongside the
		// error, so those are still yielded before the failure.
		entries, readErr := p.fs.ReadDir(p.path)
		for _, entry := range entries {
			name := entry.Name()
			isDir := entry.IsDir()
			if decision, source := matcher.Match(name, isDir); decision == DecisionIgnore {
				p.logger.Trace().
					Str("entry", name).
					Str("source", source).
					Msg("Entry ignored")
				continue
			}

			link, err := p.link(filepath.Join(p.path, name), isDir)
			if !yield(link, err) || err != nil {
				return
			}
		}
		if readErr != nil {
			yield(types.Link{}, errors.Wrapf(readErr, errors.ErrWalk, "cannot read `%s`", p.path).
				WithDetail("path", p.path))
		}
	}
}

// CollectLinks drains Links, stopping at the first error.
func (p *Package) CollectLinks() ([]types.Link, error) {
	var links []types.Link
	for link, err := range p.Links() {
		if err != nil {
			return links, err
		}
		links = append(links, link)
	}
	return links, nil
}

func (p *Package) link(source string, isDir bool) (types.Link, error) {
	rel, err := filepath.Rel(p.path, source)
	if err != nil || rel == "." || !paths.IsWithin(p.path, source) {
		e := errors.Newf(errors.ErrPathRelativization, "`%s` is not inside `%s`", source, p.path).
			WithDetail("path", source).
			WithDetail("root", p.path)
		if err != nil {
			e.Wrapped = err
		}
		return types.Link{}, e
	}

	root, err := p.TargetRoot()
	if err != nil {
		return types.Link{}, err
	}

	return types.Link{
		Source:  source,
		Target:  filepath.Join(root, rel),
		RelPath: rel,
		IsDir:   isDir,
	}, nil
}
