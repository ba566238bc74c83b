package types

// HookEvent names a lifecycle point at which a package hook may run
type HookEvent string

const (
	HookPreInstall    HookEvent = "pre_install"
	HookPostInstall   HookEvent = "post_install"
	HookPreUninstall  HookEvent = "pre_uninstall"
	HookPostUninstall HookEvent = "post_uninstall"
)

// HookEvents lists the events in descriptor order
var HookEvents = []HookEvent{HookPreInstall, HookPostInstall, HookPreUninstall, HookPostUninstall}

// HookKind tells how a hook is invoked
type HookKind string

const (
	HookKindNone    HookKind = "none"
	HookKindCommand HookKind = "command"
	HookKindScript  HookKind = "script"
)

// HookInvocation describes a resolved hook: what will be run and how
type HookInvocation struct {
	Kind HookKind `json:"kind" yaml:"kind"`

	// Descriptor is the command string or the script name as configured
	Descriptor string `json:"descriptor" yaml:"descriptor"`

	// Path is the absolute script path for script hooks
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}
