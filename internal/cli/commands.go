package cli

import (
	"os"

	"github.com/rileyhilliard/gms/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	switchNoBackup bool
	presetNoBackup bool
	backupsClean   bool
	initForce      bool
	menuLimitFlag  int
)

// switchCmd switches a single monitor to its preferred mode
var switchCmd = &cobra.Command{
	Use:   "switch <monitor-id>",
	Short: "Switch to a single monitor at its preferred mode",
	Long: `Make one monitor the sole primary display, driven at the
preferred mode from your config.

The current configuration is backed up first, so a bad switch can be
recovered by reading the latest snapshot in the backup directory.

Examples:
  gms switch DP-2
  gms switch eDP-1 --no-backup`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return switchCommandWithBackup(args[0], switchNoBackup)
	},
}

// showCmd prints the current gdctl configuration
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current monitor configuration",
	Long:  `Print the current display configuration as reported by 'gdctl show'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showCommand()
	},
}

// listCmd lists all configured monitors
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured monitors",
	Long: `List every monitor known to your config, connected or not,
with its preferred mode and vendor/product codes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCommand()
	},
}

// availableCmd shows only currently connected monitors
var availableCmd = &cobra.Command{
	Use:   "available",
	Short: "Show connected monitors and working commands",
	Long: `Show only the monitors gdctl currently reports as connected,
along with the environment context (laptop-only, full desk setup, or
partial) and the commands that will work right now.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return availableCommand()
	},
}

// presetCmd applies a named multi-monitor layout
var presetCmd = &cobra.Command{
	Use:   "preset <name>",
	Short: "Apply a named multi-monitor layout",
	Long: `Apply one of the preset layouts from your config. All monitors the
preset requires must be connected; otherwise the preset is refused and
the missing monitors are listed.

Examples:
  gms preset triple
  gms preset dual --no-backup`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return presetCommand(args[0], presetNoBackup)
	},
}

// tripleCmd is a shorthand for 'gms preset triple'
var tripleCmd = &cobra.Command{
	Use:   "triple",
	Short: "Restore the triple monitor layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return presetCommand("triple", presetNoBackup)
	},
}

// dualCmd is a shorthand for 'gms preset dual'
var dualCmd = &cobra.Command{
	Use:   "dual",
	Short: "Dual monitor layout (laptop + external)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return presetCommand("dual", presetNoBackup)
	},
}

// backupsCmd lists or cleans configuration snapshots
var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List retained configuration backups",
	Long: `List the configuration snapshots taken before each apply,
newest first. Only the most recent snapshots are retained (5 by
default; see backup.keep in the config).

Examples:
  gms backups
  gms backups --clean`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return backupsCommand(backupsClean)
	},
}

// initCmd writes a starter config file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the gms config file",
	Long: `Write a starter config to ~/.config/gms/config.yaml with the
default monitor and preset tables, ready to edit for your hardware.

Examples:
  gms init
  gms init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for gms.

Examples:
  # Bash
  gms completion bash > /etc/bash_completion.d/gms

  # Zsh
  gms completion zsh > "${fpath[1]}/_gms"

  # Fish
  gms completion fish > ~/.config/fish/completions/gms.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	switchCmd.Flags().BoolVar(&switchNoBackup, "no-backup", false, "skip the pre-switch configuration backup")

	presetCmd.Flags().BoolVar(&presetNoBackup, "no-backup", false, "skip the pre-apply configuration backup")
	tripleCmd.Flags().BoolVar(&presetNoBackup, "no-backup", false, "skip the pre-apply configuration backup")
	dualCmd.Flags().BoolVar(&presetNoBackup, "no-backup", false, "skip the pre-apply configuration backup")

	backupsCmd.Flags().BoolVar(&backupsClean, "clean", false, "delete all retained backups")

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	rootCmd.Flags().IntVar(&menuLimitFlag, "limit", 0, "cap the ranked mode list in the interactive menu (default 10)")

	// Register all commands
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(availableCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(tripleCmd)
	rootCmd.AddCommand(dualCmd)
	rootCmd.AddCommand(backupsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
