package scrubjay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/scrubjay/internal/version"
	"github.com/arthur-debert/scrubjay/pkg/display"
	"github.com/arthur-debert/scrubjay/pkg/logging"
	"github.com/arthur-debert/scrubjay/pkg/packs/orchestration"
	"github.com/arthur-debert/scrubjay/pkg/types"
)

var actionTexts = map[types.Action]struct {
	short, long, example string
}{
	types.ActionInstall:   {MsgInstallShort, MsgInstallLong, MsgInstallExample},
	types.ActionUninstall: {MsgUninstallShort, MsgUninstallLong, ""},
	types.ActionReinstall: {MsgReinstallShort, MsgReinstallLong, ""},
}

func newActionCmd(action types.Action, opts *rootOptions) *cobra.Command {
	texts := actionTexts[action]
	return &cobra.Command{
		Use:     string(action) + " " + MsgPackageArgs,
		Short:   texts.short,
		Long:    texts.long,
		Example: texts.example,
		GroupID: "core",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(MsgPackagesRequired)
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, action, args, opts)
		},
	}
}

// runAction executes action on every package and prints the outcome.
func runAction(cmd *cobra.Command, action types.Action, packages []string, opts *rootOptions) error {
	run := opts.runConfig(cmd, action)

	format, err := display.ParseFormat(opts.outputFormat(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	styles := display.NewStyles(out, display.ColorProfile(opts.colorMode(), fileOf(out)))
	errStyles := display.NewStyles(errOut, display.ColorProfile(opts.colorMode(), fileOf(errOut)))

	execOpts := orchestration.Options{DefaultTarget: opts.settings.DefaultTarget}
	if format == display.FormatText {
		execOpts.Reporter = display.NewConsole(out, styles, run)
	}

	logging.LogCommand(logging.GetLogger("cli"), string(action), packages)

	result, execErr := orchestration.Execute(cmd.Context(), run, packages, execOpts)

	if err := display.RenderSummary(out, format, result); err != nil {
		return err
	}

	if execErr == nil {
		return nil
	}
	reported := false
	for _, pkg := range result.Packages {
		if pkg.Error != nil {
			fmt.Fprintln(errOut, display.ErrorLine(errStyles, pkg.Error))
			reported = true
		}
	}
	if !reported {
		// interrupted before any package failed
		return execErr
	}
	return ErrReported
}

func fileOf(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
