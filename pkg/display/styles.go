package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Terminal colors
var (
	ActionColor  = lipgloss.Color("2") // green
	CreatedColor = lipgloss.Color("6") // cyan
	RemovedColor = lipgloss.Color("1") // red
	RunningColor = lipgloss.Color("5") // magenta
	ErrorColor   = lipgloss.Color("1")
	MutedColor   = lipgloss.Color("8")
)

// Styles groups the lipgloss styles of one output stream
type Styles struct {
	Action  lipgloss.Style
	Created lipgloss.Style
	Removed lipgloss.Style
	Running lipgloss.Style
	Path    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds styles rendering to w with the given color profile
func NewStyles(w io.Writer, profile termenv.Profile) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	return Styles{
		Action:  r.NewStyle().Foreground(ActionColor),
		Created: r.NewStyle().Foreground(CreatedColor),
		Removed: r.NewStyle().Foreground(RemovedColor),
		Running: r.NewStyle().Foreground(RunningColor),
		Path:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(MutedColor),
		Error: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
	}
}

// PlainStyles renders without any escape sequences
func PlainStyles(w io.Writer) Styles {
	return NewStyles(w, termenv.Ascii)
}
