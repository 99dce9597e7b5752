// Package menu implements the interactive monitor/mode selection loop: pick
// a monitor, pick a mode (ranked top picks or the full list), confirm, apply,
// repeat until quit.
package menu

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	gmserrors "github.com/rileyhilliard/gms/internal/errors"
	"github.com/rileyhilliard/gms/internal/gdctl"
	"github.com/rileyhilliard/gms/internal/layout"
	"github.com/rileyhilliard/gms/internal/ui"
)

// state is where the menu loop currently is.
type state int

const (
	stateSelectMonitor state = iota
	stateSelectMode
	stateConfirm
	stateApply
	stateExit
)

// Sentinel select values for non-mode menu entries.
const (
	choiceQuit   = -1
	choiceBack   = -2
	choiceToggle = -3
)

// Session runs the interactive loop over one set of detected monitors.
type Session struct {
	applier  *layout.Applier
	monitors []gdctl.Monitor
	limit    int
	out      io.Writer
}

// NewSession creates a menu session. limit caps the ranked mode view
// (<= 0 means the default of 10).
func NewSession(applier *layout.Applier, monitors []gdctl.Monitor, limit int, out io.Writer) *Session {
	return &Session{
		applier:  applier,
		monitors: monitors,
		limit:    limit,
		out:      out,
	}
}

// Run drives the loop until the user quits. A cancelled form (esc / ctrl+c)
// quits from any state.
func (s *Session) Run() error {
	if len(s.monitors) == 0 {
		return gmserrors.New(gmserrors.ErrGdctl,
			"No monitors detected",
			"Make sure monitors are connected and 'gdctl show' works.")
	}

	st := stateSelectMonitor
	showAll := false
	var monitor *gdctl.Monitor
	var mode gdctl.Mode

	for st != stateExit {
		switch st {
		case stateSelectMonitor:
			picked, err := s.pickMonitor()
			if err != nil {
				return err
			}
			if picked == nil {
				st = stateExit
				break
			}
			monitor = picked
			showAll = false
			st = stateSelectMode

		case stateSelectMode:
			choice, picked, err := s.pickMode(monitor, showAll)
			if err != nil {
				return err
			}
			switch choice {
			case choiceQuit:
				st = stateExit
			case choiceBack:
				st = stateSelectMonitor
			case choiceToggle:
				showAll = !showAll
			default:
				mode = picked
				st = stateConfirm
			}

		case stateConfirm:
			ok, err := s.confirm(monitor, mode)
			if err != nil {
				return err
			}
			if ok {
				st = stateApply
			} else {
				fmt.Fprintf(s.out, "%s Configuration not applied.\n\n", ui.MutedStyle.Render(ui.SymbolFail))
				st = stateSelectMonitor
			}

		case stateApply:
			s.apply(monitor, mode)
			st = stateSelectMonitor
		}
	}

	fmt.Fprintln(s.out, "Exiting...")
	return nil
}

// pickMonitor shows the monitor menu. Returns nil when the user quits.
func (s *Session) pickMonitor() (*gdctl.Monitor, error) {
	options := make([]huh.Option[int], 0, len(s.monitors)+1)
	for i := range s.monitors {
		options = append(options, huh.NewOption(MonitorLabel(&s.monitors[i]), i))
	}
	options = append(options, huh.NewOption("Quit", choiceQuit))

	var selected int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Connected monitors").
				Options(options...).
				Value(&selected),
		),
	)

	if err := s.runForm(form); err != nil {
		if errors.Is(err, errAborted) {
			return nil, nil
		}
		return nil, err
	}
	if selected == choiceQuit {
		return nil, nil
	}
	return &s.monitors[selected], nil
}

// pickMode shows the mode menu for a monitor, either the ranked top picks or
// the full list. The returned choice is one of the sentinel values or an
// index resolved to the picked mode.
func (s *Session) pickMode(monitor *gdctl.Monitor, showAll bool) (int, gdctl.Mode, error) {
	modeOptions := BuildModeOptions(monitor, showAll, s.limit)

	options := make([]huh.Option[int], 0, len(modeOptions)+3)
	for i, opt := range modeOptions {
		options = append(options, huh.NewOption(opt.Label, i))
	}
	if showAll {
		options = append(options, huh.NewOption("Show top picks only", choiceToggle))
	} else {
		options = append(options, huh.NewOption("Show all modes", choiceToggle))
	}
	options = append(options,
		huh.NewOption("Back to monitor selection", choiceBack),
		huh.NewOption("Quit", choiceQuit),
	)

	title := fmt.Sprintf("Modes for %s", monitor.DisplayName())

	var selected int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(options...).
				Value(&selected),
		),
	)

	if err := s.runForm(form); err != nil {
		if errors.Is(err, errAborted) {
			return choiceQuit, gdctl.Mode{}, nil
		}
		return 0, gdctl.Mode{}, err
	}
	if selected < 0 {
		return selected, gdctl.Mode{}, nil
	}
	return selected, modeOptions[selected].Mode, nil
}

// confirm echoes the pending change and asks for an explicit yes.
// Declining is the default.
func (s *Session) confirm(monitor *gdctl.Monitor, mode gdctl.Mode) (bool, error) {
	description := fmt.Sprintf("Monitor: %s\nMode: %s", monitor.DisplayName(), mode.Display())
	if monitor.Current != nil {
		description += fmt.Sprintf("\nCurrent: %s", monitor.Current.Display())
	}

	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Apply this configuration?").
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)

	if err := s.runForm(form); err != nil {
		if errors.Is(err, errAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

// apply backs up and applies the change, reporting either way.
func (s *Session) apply(monitor *gdctl.Monitor, mode gdctl.Mode) {
	fmt.Fprintf(s.out, "\nSwitching to %s...\n", mode.Display())

	result, err := s.applier.SwitchSingle(monitor.ID, mode)
	if result != nil && result.BackupPath != "" {
		fmt.Fprintf(s.out, "%s Configuration backed up to %s\n",
			ui.SuccessStyle.Render(ui.SymbolSuccess), result.BackupPath)
	}

	if err != nil {
		fmt.Fprintln(s.out, ui.ErrorStyle.Render(strings.TrimRight(err.Error(), "\n")))
		if result != nil && result.BackupPath != "" {
			fmt.Fprintln(s.out, "Your previous configuration has been backed up for recovery.")
		}
		fmt.Fprintln(s.out)
		return
	}

	// Keep the in-memory view in step with what was just applied.
	monitor.Current = monitor.FindMode(mode)

	fmt.Fprintf(s.out, "%s Successfully applied configuration!\n\n",
		ui.SuccessStyle.Render(ui.SymbolSuccess))
}

// errAborted normalizes huh's user-abort error for the loop's quit handling.
var errAborted = errors.New("menu aborted")

func (s *Session) runForm(form *huh.Form) error {
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errAborted
		}
		return gmserrors.WrapWithCode(err, gmserrors.ErrExec,
			"Menu input failed",
			"Check terminal compatibility.")
	}
	return nil
}
