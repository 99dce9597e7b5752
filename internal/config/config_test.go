package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/gms/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "gdctl", cfg.Gdctl)
	assert.Equal(t, DefaultBackupKeep, cfg.Backup.Keep)

	require.Contains(t, cfg.Monitors, "DP-2")
	assert.Equal(t, "3440x1440@100.006", cfg.Monitors["DP-2"].PreferredMode)
	require.Contains(t, cfg.Monitors, "eDP-1")

	require.Contains(t, cfg.Presets, "triple")
	assert.Equal(t, []string{"DP-2", "DP-3", "DP-4"}, cfg.Presets["triple"].Require)
	require.Contains(t, cfg.Presets, "dual")
	require.Len(t, cfg.Presets["dual"].Placements, 2)
	assert.Equal(t, []string{"DP-3", "DP-4", "DP-2"}, cfg.Presets["dual"].Placements[1].Candidates)

	require.NoError(t, Validate(cfg), "shipped defaults must validate")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: 1
gdctl: /usr/local/bin/gdctl
backup:
  dir: /tmp/gms-backups
  keep: 3
monitors:
  HDMI-1:
    name: Office TV
    preferred_mode: 3840x2160@30.000
presets:
  tv:
    description: TV only
    require: [HDMI-1]
    placements:
      - monitor: HDMI-1
        mode: 3840x2160@30.000
        primary: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/gdctl", cfg.Gdctl)
	assert.Equal(t, "/tmp/gms-backups", cfg.Backup.Dir)
	assert.Equal(t, 3, cfg.Backup.Keep)

	// File values merge over defaults.
	require.Contains(t, cfg.Monitors, "HDMI-1")
	assert.Equal(t, "Office TV", cfg.Monitors["HDMI-1"].Name)
	assert.Contains(t, cfg.Monitors, "DP-2", "default monitors survive the merge")

	require.Contains(t, cfg.Presets, "tv")
	assert.Equal(t, "3840x2160@30.000", cfg.Presets["tv"].Placements[0].Mode)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [unclosed"), 0644))

	_, err := Load(path)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gdctl: /opt/gdctl\n"), 0644))

	t.Setenv("GMS_GDCTL", "/env/gdctl")
	t.Setenv("GMS_BACKUP_DIR", "/env/backups")
	t.Setenv("GMS_BACKUP_KEEP", "9")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/env/gdctl", cfg.Gdctl, "environment beats the file")
	assert.Equal(t, "/env/backups", cfg.Backup.Dir)
	assert.Equal(t, 9, cfg.Backup.Keep)
}

func TestLoad_KeepsMonitorIDCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `monitors:
  DP-7:
    name: New monitor
    preferred_mode: 1920x1080@60.000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// gdctl connector names are case sensitive; "dp-7" would never match.
	assert.Contains(t, cfg.Monitors, "DP-7")
}

func TestFind_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFind_ExplicitPathMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "ghost.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadOrDefault_NoFileAnywhere(t *testing.T) {
	// Point HOME at an empty dir and run from one with no .gms.yaml.
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tilde path", "~/.local/state/gms", filepath.Join(home, ".local/state/gms")},
		{"bare tilde", "~", home},
		{"absolute path untouched", "/var/tmp/gms", "/var/tmp/gms"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "version from the future",
			mutate:  func(c *Config) { c.Version = CurrentConfigVersion + 1 },
			wantErr: "from the future",
		},
		{
			name:    "keep below one",
			mutate:  func(c *Config) { c.Backup.Keep = 0 },
			wantErr: "backup.keep",
		},
		{
			name: "bad preferred mode",
			mutate: func(c *Config) {
				m := c.Monitors["DP-2"]
				m.PreferredMode = "huge"
				c.Monitors["DP-2"] = m
			},
			wantErr: "invalid preferred_mode",
		},
		{
			name: "preset without placements",
			mutate: func(c *Config) {
				c.Presets["empty"] = Preset{Description: "nothing"}
			},
			wantErr: "no placements",
		},
		{
			name: "placement without monitor or candidates",
			mutate: func(c *Config) {
				c.Presets["broken"] = Preset{Placements: []Placement{{Mode: "1920x1080@60.000"}}}
			},
			wantErr: "names no monitor",
		},
		{
			name: "placement with both monitor and candidates",
			mutate: func(c *Config) {
				c.Presets["broken"] = Preset{Placements: []Placement{{
					Monitor:    "DP-2",
					Candidates: []string{"DP-3"},
					Mode:       "1920x1080@60.000",
				}}}
			},
			wantErr: "both 'monitor' and 'candidates'",
		},
		{
			name: "preset requiring unknown monitor",
			mutate: func(c *Config) {
				p := c.Presets["triple"]
				p.Require = append(p.Require, "DP-9")
				c.Presets["triple"] = p
			},
			wantErr: "unknown monitor 'DP-9'",
		},
		{
			name: "placement on unknown monitor",
			mutate: func(c *Config) {
				c.Presets["broken"] = Preset{Placements: []Placement{{
					Monitor: "HDMI-1",
					Mode:    "1920x1080@60.000",
				}}}
			},
			wantErr: "unknown monitor 'HDMI-1'",
		},
		{
			name: "fixed placement without mode",
			mutate: func(c *Config) {
				c.Presets["broken"] = Preset{Placements: []Placement{{Monitor: "DP-2"}}}
			},
			wantErr: "no mode for DP-2",
		},
		{
			name: "candidate without modes entry",
			mutate: func(c *Config) {
				c.Presets["broken"] = Preset{Placements: []Placement{{
					Candidates: []string{"DP-3"},
				}}}
			},
			wantErr: "no mode for DP-3",
		},
		{
			name: "invalid fallback mode",
			mutate: func(c *Config) {
				p := c.Presets["dual"]
				p.FallbackModes = map[string][]string{"DP-3": {"whatever"}}
				c.Presets["dual"] = p
			},
			wantErr: "invalid fallback mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
