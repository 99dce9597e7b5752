package menu

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/gms/internal/gdctl"
	"github.com/rileyhilliard/gms/internal/ui"
)

// ModeOption is one selectable mode with its display label.
type ModeOption struct {
	Mode  gdctl.Mode
	Label string
}

// MonitorLabel builds the monitor menu label, including the active mode when
// known: `ASUS 34" UltraWide (DP-2) ● Currently: 3440x1440 @ 100.006 Hz`.
func MonitorLabel(m *gdctl.Monitor) string {
	label := m.DisplayName()
	if m.Current != nil {
		label += fmt.Sprintf(" %s Currently: %s", ui.SymbolCurrent, m.Current.Display())
	}
	return label
}

// BuildModeOptions builds the mode menu entries for a monitor: the ranked
// top picks by default, or every advertised mode when showAll is set. Each
// label annotates native resolution, the maximum rate for its resolution,
// and the currently active mode.
func BuildModeOptions(m *gdctl.Monitor, showAll bool, limit int) []ModeOption {
	var modes []gdctl.Mode
	if showAll {
		modes = gdctl.AllModesSorted(m.Modes)
	} else {
		modes = gdctl.TopModes(m.Modes, limit)
		if len(modes) == 0 {
			// Every mode is sub-HD; better to show them than nothing.
			modes = gdctl.AllModesSorted(m.Modes)
		}
	}

	nativePixels := gdctl.NativePixels(m.Modes)

	options := make([]ModeOption, len(modes))
	for i, mode := range modes {
		options[i] = ModeOption{
			Mode:  mode,
			Label: modeLabel(m, mode, nativePixels),
		}
	}
	return options
}

func modeLabel(m *gdctl.Monitor, mode gdctl.Mode, nativePixels int) string {
	var markers []string
	if mode.PixelCount() == nativePixels {
		markers = append(markers, "Native")
	}
	if mode == gdctl.MaxRateMode(m.Modes, mode.Width, mode.Height) {
		markers = append(markers, "Maximum")
	}
	if m.Current != nil && mode == *m.Current {
		markers = append(markers, "Current")
	}

	label := mode.Display()
	if len(markers) > 0 {
		label += fmt.Sprintf(" (%s)", strings.Join(markers, ", "))
	}
	return label
}
