package display

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/arthur-debert/scrubjay/pkg/errors"
	"github.com/arthur-debert/scrubjay/pkg/paths"
	"github.com/arthur-debert/scrubjay/pkg/types"
)

// Indent prefixes per-link and per-hook lines
const Indent = "‣ "

// Console is a types.Reporter printing progress lines. Link and hook lines
// only appear when verbose is set.
type Console struct {
	out     io.Writer
	styles  Styles
	verbose bool
	dryRun  bool

	// packagePath is the root of the package being reported
	packagePath string
}

// NewConsole creates a console reporter writing to out
func NewConsole(out io.Writer, styles Styles, run *types.RunConfig) *Console {
	c := &Console{out: out, styles: styles}
	if run != nil {
		c.verbose = run.Verbose
		c.dryRun = run.DryRun
	}
	return c
}

func (c *Console) PackageStarted(action types.Action, packagePath, targetRoot string) {
	c.packagePath = packagePath

	suffix := ""
	if c.dryRun {
		suffix = c.styles.Muted.Render(" (dry run)")
	}

	if targetRoot == "" {
		fmt.Fprintf(c.out, "%s %s%s%s\n",
			c.styles.Action.Render(action.Gerund()),
			c.path(packagePath),
			c.styles.Action.Render("..."),
			suffix)
		return
	}

	preposition := "to"
	if action == types.ActionUninstall {
		preposition = "from"
	}
	fmt.Fprintf(c.out, "%s %s %s %s%s%s\n",
		c.styles.Action.Render(action.Gerund()),
		c.path(packagePath),
		c.styles.Action.Render(preposition),
		c.path(targetRoot),
		c.styles.Action.Render("..."),
		suffix)
}

func (c *Console) HookStarted(event types.HookEvent, invocation types.HookInvocation) {
	if !c.verbose {
		return
	}
	switch invocation.Kind {
	case types.HookKindCommand:
		fmt.Fprintf(c.out, "%s%s `%s`%s\n",
			Indent,
			c.styles.Running.Render("Running command"),
			invocation.Descriptor,
			c.styles.Running.Render("..."))
	case types.HookKindScript:
		fmt.Fprintf(c.out, "%s%s %s%s\n",
			Indent,
			c.styles.Running.Render("Running script"),
			c.path(invocation.Path),
			c.styles.Running.Render("..."))
	}
}

func (c *Console) LinkProcessed(packagePath string, op types.LinkOp, link types.Link, outcome types.LinkOutcome) {
	if !c.verbose {
		return
	}
	var verb string
	switch outcome {
	case types.OutcomeCreated, types.OutcomeReplaced, types.OutcomeWouldCreate:
		verb = c.styles.Created.Render("Created")
	case types.OutcomeRemoved, types.OutcomeForceRemoved, types.OutcomeWouldRemove:
		verb = c.styles.Removed.Render("Removed")
	case types.OutcomeAbsent:
		verb = c.styles.Muted.Render("Absent")
	default:
		verb = string(outcome)
	}
	fmt.Fprintf(c.out, "%s%s %s\n", Indent, verb, c.path(link.Target))
}

func (c *Console) PackageFinished(action types.Action, packagePath string) {
	fmt.Fprintf(c.out, "%s %s\n", c.styles.Action.Render(action.Past()), c.path(packagePath))
}

// ErrorLine renders the single-line form of err in the error style
func ErrorLine(styles Styles, err error) string {
	return styles.Error.Render(errors.Line(err))
}

// path renders p relative to the current package when it lies below it,
// backquoted when it contains whitespace.
func (c *Console) path(p string) string {
	return c.styles.Path.Render(DisplayPath(c.packagePath, p))
}

// DisplayPath shortens p relative to root when p lies strictly below it.
// The root itself and paths outside it stay absolute. The result is
// wrapped in backquotes when it contains whitespace.
func DisplayPath(root, p string) string {
	shown := p
	if root != "" && p != root && paths.IsWithin(root, p) {
		if rel, err := filepath.Rel(root, p); err == nil && rel != "." {
			shown = rel
		}
	}
	if strings.IndexFunc(shown, unicode.IsSpace) >= 0 {
		return "`" + shown + "`"
	}
	return shown
}
