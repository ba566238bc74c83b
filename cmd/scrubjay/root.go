package scrubjay

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/scrubjay/internal/version"
	"github.com/arthur-debert/scrubjay/pkg/config"
	"github.com/arthur-debert/scrubjay/pkg/logging"
	"github.com/arthur-debert/scrubjay/pkg/types"
)

// ErrReported is returned when the failure was already printed, one line
// per failed package. Callers only need to exit non-zero.
var ErrReported = errors.New("errors reported")

// rootOptions holds the persistent flags and the loaded settings
type rootOptions struct {
	verbosity  int
	dryRun     bool
	force      bool
	output     string
	noColor    bool
	configPath string

	settings config.Settings
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "scrubjay",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			settings, err := config.LoadSettings(opts.configPath)
			if err != nil {
				return err
			}
			opts.settings = settings
			log.Debug().Str("settings", settings.String()).Msg("Settings loaded")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, MsgFlagDryRun)
	flags.BoolVarP(&opts.force, "force", "f", false, MsgFlagForce)
	flags.StringVarP(&opts.output, "output", "o", "", MsgFlagOutput)
	flags.BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	flags.StringVar(&opts.configPath, "config", "", MsgFlagConfig)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	for _, action := range types.Actions {
		rootCmd.AddCommand(newActionCmd(action, opts))
	}
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// runConfig merges the flags with the settings defaults. A flag only
// overrides its setting when given on the command line.
func (o *rootOptions) runConfig(cmd *cobra.Command, action types.Action) *types.RunConfig {
	run := &types.RunConfig{
		Action:  action,
		DryRun:  o.settings.Defaults.DryRun,
		Force:   o.settings.Defaults.Force,
		Verbose: o.settings.Defaults.Verbose,
	}
	flags := cmd.Flags()
	if flags.Changed("dry-run") {
		run.DryRun = o.dryRun
	}
	if flags.Changed("force") {
		run.Force = o.force
	}
	if flags.Changed("verbose") {
		run.Verbose = o.verbosity > 0
	}
	return run
}

// outputFormat returns the --output flag or the settings default
func (o *rootOptions) outputFormat(cmd *cobra.Command) string {
	if cmd.Flags().Changed("output") {
		return o.output
	}
	return o.settings.Output.Format
}

// colorMode returns "never" with --no-color, else the settings value
func (o *rootOptions) colorMode() string {
	if o.noColor {
		return config.ColorNever
	}
	return o.settings.Output.Color
}
