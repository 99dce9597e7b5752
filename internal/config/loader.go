package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/gms/internal/errors"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".gms.yaml"
	// GlobalConfigDir is the directory for the user's config, under $HOME.
	GlobalConfigDir = ".config/gms"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path, layering file values over the
// defaults and GMS_* environment overrides over both. The file is decoded
// with yaml.v3 directly: monitor IDs like "DP-2" are map keys and must keep
// their case, which a case-insensitive config layer would destroy.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'gms init' to create one, or specify a file with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is readable")
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file",
			"Check "+path+" against the fields 'gms init' generates")
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides layers GMS_GDCTL, GMS_BACKUP_DIR, and GMS_BACKUP_KEEP
// over the loaded config.
func applyEnvOverrides(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix("GMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if s := v.GetString("gdctl"); s != "" {
		cfg.Gdctl = s
	}
	if s := v.GetString("backup.dir"); s != "" {
		cfg.Backup.Dir = s
	}
	if n := v.GetInt("backup.keep"); n > 0 {
		cfg.Backup.Keep = n
	}
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .gms.yaml in the current directory
// 3. ~/.config/gms/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults when no
// config file exists anywhere. Commands work out of the box this way; 'gms
// init' just makes the defaults editable.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		return cfg, nil
	}
	return Load(path)
}

// GlobalConfigPath returns the path 'gms init' writes to.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Can't determine home directory",
			"Check your environment configuration.")
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile), nil
}

// ExpandHome expands a leading ~ in a path to the user's home directory.
func ExpandHome(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Can't determine home directory",
			"Check your environment configuration.")
	}
	return filepath.Join(home, path[1:]), nil
}
