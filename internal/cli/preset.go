package cli

import (
	"fmt"
	"sort"

	"github.com/rileyhilliard/gms/internal/config"
	"github.com/rileyhilliard/gms/internal/ui"
)

// presetCommand applies a named multi-monitor layout.
func presetCommand(name string, noBackup bool) error {
	cfg, _, applier, err := buildStack(noBackup)
	if err != nil {
		return err
	}

	if preset, ok := cfg.Presets[name]; ok && preset.Description != "" {
		fmt.Printf("Applying '%s' layout...\n", name)
		fmt.Printf("   %s\n", preset.Description)
	}

	result, err := applier.ApplyPreset(name)
	if result != nil && result.BackupPath != "" {
		fmt.Printf("%s Configuration backed up to %s\n",
			ui.SuccessStyle.Render(ui.SymbolSuccess), result.BackupPath)
	}
	if err != nil {
		return err
	}

	if result.FallbackFor != "" {
		fmt.Printf("%s First attempt was rejected; %s fell back to %s\n",
			ui.WarningStyle.Render(ui.SymbolWarn), result.FallbackFor, result.FallbackMode)
	}

	fmt.Printf("%s '%s' layout applied!\n", ui.SuccessStyle.Render(ui.SymbolSuccess), name)
	for _, p := range result.Request.Placements {
		label := p.MonitorID
		if mon, ok := cfg.Monitors[p.MonitorID]; ok {
			label = fmt.Sprintf("%s (%s)", mon.Name, p.MonitorID)
		}
		detail := p.Mode.Display()
		if p.Transform != "" {
			detail += ", rotated " + p.Transform
		}
		if p.Primary {
			detail += ", primary"
		}
		fmt.Printf("   • %s: %s\n", label, detail)
	}

	return nil
}

// presetNames returns the configured preset names, sorted.
func presetNames(cfg *config.Config) []string {
	names := make([]string, 0, len(cfg.Presets))
	for name := range cfg.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
