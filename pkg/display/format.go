package display

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatText renders progress lines as the run goes
	FormatText Format = iota
	// FormatJSON renders a machine-readable JSON summary at the end
	FormatJSON
	// FormatYAML renders a YAML summary at the end
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, fmt.Errorf("unknown format: %s", s)
	}
}

// ColorProfile resolves a color setting ("auto", "always", "never") for
// output. In auto mode NO_COLOR, a non-terminal output or a terminal
// without color support all turn color off.
func ColorProfile(mode string, output *os.File) termenv.Profile {
	switch strings.ToLower(mode) {
	case "never":
		return termenv.Ascii
	case "always":
		if p := termenv.EnvColorProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI
	}

	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if output == nil || (!isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(output).ColorProfile()
}
