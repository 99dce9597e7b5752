package config

import (
	"fmt"

	"github.com/rileyhilliard/gms/internal/errors"
	"github.com/rileyhilliard/gms/internal/gdctl"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but gms only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest gms release.")
	}

	if cfg.Backup.Keep < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("backup.keep must be at least 1, got %d", cfg.Backup.Keep),
			"Set backup.keep to how many snapshots to retain (default 5).")
	}

	for id, mon := range cfg.Monitors {
		if mon.PreferredMode == "" {
			continue
		}
		if _, err := gdctl.ParseModeString(mon.PreferredMode); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Monitor %s has an invalid preferred_mode '%s'", id, mon.PreferredMode),
				"Modes look like 3440x1440@100.006. Run 'gdctl show --modes' to list valid ones.")
		}
	}

	for name, preset := range cfg.Presets {
		if err := validatePreset(cfg, name, preset); err != nil {
			return err
		}
	}

	return nil
}

func validatePreset(cfg *Config, name string, preset Preset) error {
	if len(preset.Placements) == 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Preset '%s' has no placements", name),
			"Each preset needs at least one placement entry.")
	}

	for _, id := range preset.Require {
		if err := validateKnownMonitor(cfg, name, id); err != nil {
			return err
		}
	}

	for i, p := range preset.Placements {
		switch {
		case p.Monitor == "" && len(p.Candidates) == 0:
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Preset '%s' placement %d names no monitor", name, i+1),
				"Set either 'monitor' or a 'candidates' list on the placement.")
		case p.Monitor != "" && len(p.Candidates) > 0:
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Preset '%s' placement %d has both 'monitor' and 'candidates'", name, i+1),
				"A placement is either fixed or a candidate slot, not both.")
		}

		if p.Monitor != "" {
			if err := validateKnownMonitor(cfg, name, p.Monitor); err != nil {
				return err
			}
			if err := validatePlacementMode(name, p.Monitor, p.Mode); err != nil {
				return err
			}
		}
		for _, id := range p.Candidates {
			if err := validateKnownMonitor(cfg, name, id); err != nil {
				return err
			}
			if err := validatePlacementMode(name, id, p.Modes[id]); err != nil {
				return err
			}
		}
	}

	for id, modes := range preset.FallbackModes {
		for _, mode := range modes {
			if _, err := gdctl.ParseModeString(mode); err != nil {
				return errors.WrapWithCode(err, errors.ErrConfig,
					fmt.Sprintf("Preset '%s' has an invalid fallback mode '%s' for %s", name, mode, id),
					"Modes look like 2560x1080@60.000.")
			}
		}
	}

	return nil
}

func validateKnownMonitor(cfg *Config, preset, monitorID string) error {
	if _, ok := cfg.Monitors[monitorID]; !ok {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Preset '%s' references unknown monitor '%s'", preset, monitorID),
			"Add it to the monitors table, or fix the ID (run 'gdctl show').")
	}
	return nil
}

func validatePlacementMode(preset, monitorID, mode string) error {
	if mode == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Preset '%s' has no mode for %s", preset, monitorID),
			"Set 'mode' on fixed placements, or a 'modes' entry per candidate.")
	}
	if _, err := gdctl.ParseModeString(mode); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Preset '%s' has an invalid mode '%s' for %s", preset, mode, monitorID),
			"Modes look like 3440x1440@100.006.")
	}
	return nil
}
