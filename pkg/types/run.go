package types

// Action selects what to do with a package
type Action string

const (
	ActionInstall   Action = "install"
	ActionUninstall Action = "uninstall"
	ActionReinstall Action = "reinstall"
)

// Actions lists every action in the order they are offered by the CLI
var Actions = []Action{ActionInstall, ActionUninstall, ActionReinstall}

// Gerund returns the "-ing" form used in progress messages ("Installing")
func (a Action) Gerund() string {
	switch a {
	case ActionInstall:
		return "Installing"
	case ActionUninstall:
		return "Uninstalling"
	case ActionReinstall:
		return "Reinstalling"
	}
	return string(a)
}

// Past returns the past form used in completion messages ("Installed")
func (a Action) Past() string {
	switch a {
	case ActionInstall:
		return "Installed"
	case ActionUninstall:
		return "Uninstalled"
	case ActionReinstall:
		return "Reinstalled"
	}
	return string(a)
}

// RunConfig is the resolved configuration of one invocation. It is shared
// read-only by every package processed in that invocation.
type RunConfig struct {
	Action  Action
	DryRun  bool
	Force   bool
	Verbose bool
}
