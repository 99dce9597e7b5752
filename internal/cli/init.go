package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/gms/internal/config"
	"github.com/rileyhilliard/gms/internal/errors"
	"github.com/rileyhilliard/gms/internal/ui"
	"gopkg.in/yaml.v3"
)

// initCommand writes the starter config file with the default monitor and
// preset tables so they can be edited for the hardware at hand.
func initCommand(force bool) error {
	configPath, err := config.GlobalConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# gms configuration
# Monitor and preset tables for GNOME monitor switching via gdctl.
# Run 'gdctl show --modes' to see the IDs and modes your hardware reports.

`

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to create config directory",
			"Check directory permissions")
	}
	if err := os.WriteFile(configPath, []byte(header+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SuccessStyle.Render(ui.SymbolSuccess), configPath)
	fmt.Println("Next steps:")
	fmt.Println("  edit the monitors/presets tables for your hardware")
	fmt.Println("  gms available  - check what's connected")
	fmt.Println("  gms            - interactive menu")

	return nil
}
