package scrubjay

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Link package directories into a target tree"
	MsgInstallShort     = "Link the entries of packages into their target roots"
	MsgUninstallShort   = "Remove the links of packages from their target roots"
	MsgReinstallShort   = "Uninstall then install packages"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"
	MsgVersionFormat    = "scrubjay %s (commit %s, built %s)\n"
	MsgPackageArgs      = "PACKAGE..."
	MsgNoCommand        = "no command specified"
	MsgPackagesRequired = "requires at least one package directory"

	// Flag descriptions
	MsgFlagVerbose = "Show every link and hook; repeat to raise log level (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Report what would be done without changing anything or running hooks"
	MsgFlagForce   = "Replace existing targets on install; remove non-symlink targets on uninstall"
	MsgFlagOutput  = "Output format: text, json or yaml"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagConfig  = "Settings file (default $XDG_CONFIG_HOME/scrubjay/config.toml)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/uninstall-long.txt
	msgUninstallLongRaw string
	MsgUninstallLong    = strings.TrimSpace(msgUninstallLongRaw)

	//go:embed msgs/reinstall-long.txt
	msgReinstallLongRaw string
	MsgReinstallLong    = strings.TrimSpace(msgReinstallLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
