package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// DefaultBackupKeep is how many backup snapshots are retained.
const DefaultBackupKeep = 5

// Config represents the complete gms configuration file.
type Config struct {
	Version  int                `yaml:"version"`
	Gdctl    string             `yaml:"gdctl"`
	Backup   BackupConfig       `yaml:"backup"`
	Monitors map[string]Monitor `yaml:"monitors"`
	Presets  map[string]Preset  `yaml:"presets"`
}

// BackupConfig controls configuration snapshots taken before each apply.
type BackupConfig struct {
	// Dir is where snapshot files are written. Supports a leading ~.
	Dir string `yaml:"dir"`

	// Keep is how many recent snapshots to retain.
	Keep int `yaml:"keep"`
}

// Monitor describes one known physical display, keyed by its port ID
// (e.g. "DP-2"). These tables replace hardcoded monitor knowledge so the
// tool isn't tied to one desk's hardware.
type Monitor struct {
	// Name is the human-friendly label shown in listings.
	Name string `yaml:"name"`

	// Vendor and Product are the EDID codes gdctl reports.
	Vendor  string `yaml:"vendor"`
	Product string `yaml:"product"`

	// Description is free text shown in 'gms list'.
	Description string `yaml:"description"`

	// PreferredMode is the mode used by 'gms switch' for this monitor,
	// in WIDTHxHEIGHT@RATE form.
	PreferredMode string `yaml:"preferred_mode"`
}

// Preset is a fixed, named multi-monitor arrangement.
type Preset struct {
	// Description shown in help and listings.
	Description string `yaml:"description"`

	// Require lists monitor IDs that must all be connected before the
	// preset is applied. Missing ones cause a refusal, never a partial apply.
	Require []string `yaml:"require"`

	// Placements define the logical monitor arrangement, in order.
	Placements []Placement `yaml:"placements"`

	// FallbackModes declares alternate modes to retry per monitor when the
	// first apply fails with a mode-related error. Keyed by monitor ID.
	FallbackModes map[string][]string `yaml:"fallback_modes"`
}

// Placement positions one display within a preset. Either Monitor names a
// fixed display, or Candidates lists IDs tried in priority order with the
// first connected one filling the slot.
type Placement struct {
	Monitor    string   `yaml:"monitor,omitempty"`
	Candidates []string `yaml:"candidates,omitempty"`

	// Mode for a fixed placement; Modes maps candidate IDs to their modes.
	Mode  string            `yaml:"mode,omitempty"`
	Modes map[string]string `yaml:"modes,omitempty"`

	Primary   bool    `yaml:"primary,omitempty"`
	Scale     float64 `yaml:"scale,omitempty"`
	Transform string  `yaml:"transform,omitempty"`
	X         int     `yaml:"x"`
	Y         int     `yaml:"y"`
}

// DefaultConfig returns a Config with the stock desk layout: three external
// ultrawides plus the laptop panel, and the triple/dual presets. 'gms init'
// writes this as the starting point to edit.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Gdctl:   "gdctl",
		Backup: BackupConfig{
			Dir:  "~/.local/state/gms/backups",
			Keep: DefaultBackupKeep,
		},
		Monitors: map[string]Monitor{
			"DP-2": {
				Name:          "ASUS 34\" UltraWide",
				Vendor:        "AUS",
				Product:       "VG34VQEL1A",
				Description:   "ASUS monitor with 3440x1440 resolution",
				PreferredMode: "3440x1440@100.006",
			},
			"DP-3": {
				Name:          "LG 29\" UltraWide",
				Vendor:        "GSM",
				Product:       "LG ULTRAWIDE",
				Description:   "LG monitor with 2560x1080 resolution",
				PreferredMode: "2560x1080@60.000",
			},
			"DP-4": {
				Name:          "Iiyama 34\" UltraWide",
				Vendor:        "IVM",
				Product:       "PL3481WQ",
				Description:   "Iiyama monitor with 3440x1440 resolution",
				PreferredMode: "3440x1440@179.981",
			},
			"eDP-1": {
				Name:          "Built-in Laptop Display",
				Vendor:        "CSO",
				Product:       "0x1319",
				Description:   "Built-in laptop screen with 2880x1920 resolution",
				PreferredMode: "2880x1920@60.000",
			},
		},
		Presets: map[string]Preset{
			"triple": {
				Description: "LG portrait left, Iiyama top-right, ASUS primary bottom-right",
				Require:     []string{"DP-2", "DP-3", "DP-4"},
				Placements: []Placement{
					{Monitor: "DP-3", Mode: "2560x1080@60.000", Transform: "270", X: 0, Y: 0},
					{Monitor: "DP-4", Mode: "3440x1440@179.981", X: 1080, Y: 0},
					{Monitor: "DP-2", Mode: "3440x1440@100.006", Primary: true, X: 1080, Y: 1440},
				},
			},
			"dual": {
				Description: "Laptop left, first connected external right (portable mode)",
				Require:     []string{"eDP-1"},
				Placements: []Placement{
					{Monitor: "eDP-1", Mode: "2880x1920@60.000", Scale: 1.75, X: 0, Y: 0},
					{
						Candidates: []string{"DP-3", "DP-4", "DP-2"},
						Modes: map[string]string{
							"DP-3": "1920x1080@60.000",
							"DP-4": "3440x1440@59.973",
							"DP-2": "3440x1440@59.973",
						},
						Primary: true,
						// Laptop panel at scale 1.75 occupies a logical
						// width of 1644, so the external starts there.
						X: 1644,
						Y: 0,
					},
				},
				FallbackModes: map[string][]string{
					// A portable panel on DP-3 may be the LG instead;
					// retry at its native width.
					"DP-3": {"2560x1080@60.000"},
				},
			},
		},
	}
}
