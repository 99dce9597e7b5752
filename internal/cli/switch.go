package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/huh"

	"github.com/rileyhilliard/gms/internal/config"
	"github.com/rileyhilliard/gms/internal/errors"
	"github.com/rileyhilliard/gms/internal/gdctl"
	"github.com/rileyhilliard/gms/internal/ui"
	"github.com/rileyhilliard/gms/internal/util"
)

// switchCommand switches to a single monitor, backing up first.
func switchCommand(monitorID string) error {
	return switchCommandWithBackup(monitorID, false)
}

func switchCommandWithBackup(monitorID string, noBackup bool) error {
	cfg, _, applier, err := buildStack(noBackup)
	if err != nil {
		return err
	}

	mon, ok := cfg.Monitors[monitorID]
	if !ok {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown monitor '%s'", monitorID),
			"Configured monitors: "+util.JoinOrNone(monitorIDs(cfg.Monitors))+
				". Run 'gms available' to see what's connected.")
	}
	if mon.PreferredMode == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Monitor %s has no preferred_mode configured", monitorID),
			"Set preferred_mode for it in your config, e.g. 3440x1440@100.006.")
	}

	mode, err := gdctl.ParseModeString(mon.PreferredMode)
	if err != nil {
		return err
	}

	fmt.Printf("Switching to: %s (%s)\n", mon.Name, monitorID)
	fmt.Printf("   %s at %s\n", mon.Description, mode)

	ok, err = confirmSwitch(mon.Name, monitorID, mode)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}

	result, err := applier.SwitchSingle(monitorID, mode)
	if result != nil && result.BackupPath != "" {
		fmt.Printf("%s Configuration backed up to %s\n",
			ui.SuccessStyle.Render(ui.SymbolSuccess), result.BackupPath)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s Switched to %s - change applied instantly, no logout required\n",
		ui.SuccessStyle.Render(ui.SymbolSuccess), mon.Name)
	return nil
}

// confirmSwitch asks before the display configuration changes. Declining
// leaves the configuration untouched.
func confirmSwitch(name, monitorID string, mode gdctl.Mode) (bool, error) {
	if skipConfirm(assumeYes, os.Stdin) {
		return true, nil
	}

	confirmed := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Switch to %s (%s) at %s?", name, monitorID, mode)).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, errors.WrapWithCode(err, errors.ErrExec,
			"Failed to get user input",
			"Re-run with --yes to skip the prompt.")
	}
	return confirmed, nil
}

// skipConfirm reports whether the pre-switch prompt is bypassed: --yes skips
// it, and so does a non-interactive stdin, where a prompt would hang scripts.
func skipConfirm(assumeYes bool, stdin *os.File) bool {
	return assumeYes || !ui.IsTerminal(stdin)
}

// monitorIDs returns the configured monitor IDs, sorted.
func monitorIDs(monitors map[string]config.Monitor) []string {
	ids := make([]string, 0, len(monitors))
	for id := range monitors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
