package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/gms/internal/backup"
	"github.com/rileyhilliard/gms/internal/config"
	"github.com/rileyhilliard/gms/internal/errors"
	"github.com/rileyhilliard/gms/internal/gdctl"
	"github.com/rileyhilliard/gms/internal/layout"
	"github.com/rileyhilliard/gms/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile     string
	verboseFlag bool
	assumeYes   bool
)

// rootCmd is the base command. With no arguments it opens the interactive
// menu on a terminal; given a monitor ID it switches to that monitor, so
// "gms DP-2" works as a bare command token.
var rootCmd = &cobra.Command{
	Use:   "gms [monitor-id]",
	Short: "Instant GNOME monitor switching via gdctl",
	Long: `gms switches monitor layouts, resolutions, and refresh rates
instantly using GNOME's gdctl - no logout required.

Run with no arguments for an interactive menu, or pass a monitor ID
to switch to that monitor at its preferred mode.

Examples:
  gms              # interactive monitor/mode menu
  gms DP-2         # switch to the DP-2 monitor only
  gms triple       # restore the triple monitor layout
  gms available    # show connected monitors`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			// A bare monitor ID acts like 'gms switch <id>'.
			return switchCommand(args[0])
		}

		if ui.IsTerminal(os.Stdin) {
			return interactiveCommand()
		}

		_ = cmd.Help()
		os.Exit(1)
		return nil
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Config returns the --config flag value.
func Config() string {
	return cfgFile
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompts")

	cobra.OnInitialize(func() {
		if verboseFlag {
			os.Setenv("GMS_DEBUG", "1")
		}
	})
}

// buildStack loads config and wires the gdctl client, backup manager, and
// applier that every mutating command needs.
func buildStack(noBackup bool) (*config.Config, *gdctl.Client, *layout.Applier, error) {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return nil, nil, nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, nil, err
	}

	client := gdctl.NewClient(cfg.Gdctl)

	backups, err := backup.NewManager(cfg.Backup)
	if err != nil {
		return nil, nil, nil, err
	}

	applier := layout.NewApplier(client, backups, cfg)
	applier.NoBackup = noBackup

	return cfg, client, applier, nil
}

// loadConfigOnly is buildStack for read-only commands.
func loadConfigOnly() (*config.Config, *gdctl.Client, error) {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return nil, nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}
	return cfg, gdctl.NewClient(cfg.Gdctl), nil
}

// errNoMonitors is the unrecoverable startup condition: gdctl ran but
// reported nothing recognizable.
func errNoMonitors() error {
	return errors.New(errors.ErrGdctl,
		"No monitors detected",
		"Make sure monitors are connected and 'gdctl show' works.")
}
