package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/scrubjay/pkg/errors"
)

// ExpandShell expands environment variable references and a leading tilde
// in path, the way an interactive shell would for an unquoted word.
//
// Supported forms are $NAME, ${NAME}, ${NAME:-default}, ~ and ~/rest.
// A reference to an unset variable without a default fails with
// ErrShellExpansion, as does a failed home directory lookup. A "$" that
// does not start a reference is kept as is, and so is ~user.
func ExpandShell(path string) (string, error) {
	expanded, err := expandEnv(path)
	if err != nil {
		return "", err
	}
	return expandTilde(expanded)
}

func expandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrShellExpansion, "cannot expand `~`").
			WithDetail("path", path)
	}

	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

func expandEnv(path string) (string, error) {
	if !strings.Contains(path, "$") {
		return path, nil
	}

	var b strings.Builder
	for i := 0; i < len(path); i++ {
		if path[i] != '$' || i+1 == len(path) {
			b.WriteByte(path[i])
			continue
		}

		if path[i+1] == '{' {
			end := strings.IndexByte(path[i+2:], '}')
			if end < 0 {
				// Unterminated braces are not a reference
				b.WriteByte(path[i])
				continue
			}
			expr := path[i+2 : i+2+end]
			value, err := lookupExpr(expr, path)
			if err != nil {
				return "", err
			}
			b.WriteString(value)
			i += 2 + end
			continue
		}

		n := nameLength(path[i+1:])
		if n == 0 {
			b.WriteByte(path[i])
			continue
		}
		name := path[i+1 : i+1+n]
		value, err := lookup(name, path)
		if err != nil {
			return "", err
		}
		b.WriteString(value)
		i += n
	}
	return b.String(), nil
}

// lookupExpr resolves the inside of ${...}
func lookupExpr(expr, path string) (string, error) {
	name, def, hasDefault := strings.Cut(expr, ":-")
	if nameLength(name) != len(name) || name == "" {
		return "", errors.Newf(errors.ErrShellExpansion, "invalid variable reference `${%s}`", expr).
			WithDetail("path", path)
	}
	if value, ok := os.LookupEnv(name); ok && (!hasDefault || value != "") {
		return value, nil
	}
	if hasDefault {
		return def, nil
	}
	return lookup(name, path)
}

func lookup(name, path string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", errors.Newf(errors.ErrShellExpansion, "environment variable `%s` is not set", name).
			WithDetail("variable", name).
			WithDetail("path", path)
	}
	return value, nil
}

func nameLength(s string) int {
	n := 0
	for n < len(s) {
		c := s[n]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			n++
			continue
		}
		break
	}
	return n
}
