// Package cli implements the gms command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to small workflow functions for the actual work. The general
// structure keeps a clean separation between:
//
//   - Command definitions (cobra.Command instances in commands.go)
//   - Workflow orchestration (buildStack wiring config, gdctl, backups)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "gms" with subcommands for different operations:
//
//	gms                  - Interactive monitor/mode menu (on a terminal)
//	gms <monitor-id>     - Switch to that monitor, preferred mode
//	gms switch <id>      - Same, as an explicit subcommand
//	gms show             - Print current gdctl configuration
//	gms list             - List configured monitors
//	gms available        - Show connected monitors and working commands
//	gms preset <name>    - Apply a named layout (triple/dual shorthands exist)
//	gms backups          - List configuration snapshots
//	gms init             - Write the starter config file
//
// # Flag Handling
//
// Global flags (--config, --verbose) are defined on the root command and
// available to all subcommands. Mutating commands take --no-backup to skip
// the pre-apply snapshot.
package cli
