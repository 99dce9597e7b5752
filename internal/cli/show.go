package cli

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/gms/internal/config"
	"github.com/rileyhilliard/gms/internal/ui"
	"github.com/rileyhilliard/gms/internal/util"
)

// showCommand prints the raw current configuration.
func showCommand() error {
	_, client, err := loadConfigOnly()
	if err != nil {
		return err
	}

	out, err := client.Show()
	if err != nil {
		return err
	}

	fmt.Println(ui.BoldStyle.Render("Current monitor configuration:"))
	fmt.Println(ui.MutedStyle.Render(strings.Repeat("━", ui.HeaderWidth)))
	fmt.Print(out)
	return nil
}

// listCommand lists every configured monitor, connected or not.
func listCommand() error {
	cfg, _, err := loadConfigOnly()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(cfg.Monitors))
	for _, id := range monitorIDs(cfg.Monitors) {
		mon := cfg.Monitors[id]
		rows = append(rows, []string{id, mon.Name, mon.PreferredMode, mon.Vendor, mon.Product})
	}

	fmt.Println("Configured monitors:")
	fmt.Print(ui.RenderTable([]ui.TableColumn{
		{Title: "ID", Width: 8},
		{Title: "NAME", Width: 26},
		{Title: "PREFERRED MODE", Width: 20},
		{Title: "VENDOR", Width: 8},
		{Title: "PRODUCT", Width: 14},
	}, rows))
	return nil
}

// availableCommand shows connected monitors and the environment context.
func availableCommand() error {
	cfg, client, err := loadConfigOnly()
	if err != nil {
		return err
	}

	connected, err := client.ConnectedIDs()
	if err != nil {
		return err
	}
	if len(connected) == 0 {
		return errNoMonitors()
	}

	fmt.Printf("%s Currently connected monitors:\n", ui.SymbolMonitor)
	for _, id := range connected {
		if mon, ok := cfg.Monitors[id]; ok {
			fmt.Printf("%s %s: %s\n", ui.SuccessStyle.Render(ui.SymbolSuccess), id, mon.Name)
			if mon.Description != "" {
				fmt.Printf("   %s\n", mon.Description)
			}
			fmt.Printf("   Vendor: %s, Product: %s\n", mon.Vendor, mon.Product)
		} else {
			fmt.Printf("%s %s: Unknown monitor (not in configuration)\n",
				ui.WarningStyle.Render(ui.SymbolWarn), id)
		}
	}

	fmt.Println()
	fmt.Println("Environment: " + environmentContext(cfg, connected))

	fmt.Println()
	fmt.Println("Working commands:")
	for _, id := range connected {
		if mon, ok := cfg.Monitors[id]; ok {
			fmt.Printf("  gms %s - switch to %s\n", id, mon.Name)
		}
	}
	for _, name := range presetNamesFor(cfg, connected) {
		fmt.Printf("  gms %s - %s\n", name, cfg.Presets[name].Description)
	}

	return nil
}

// environmentContext summarizes the connection state the way a human thinks
// about it: away from the desk, fully docked, or something in between.
func environmentContext(cfg *config.Config, connected []string) string {
	externals := externalIDs(connected)

	if len(externals) == 0 {
		return "Laptop-only mode (away from the desk setup)"
	}

	allExternalsConnected := true
	for id := range cfg.Monitors {
		if isBuiltIn(id) {
			continue
		}
		if !containsID(connected, id) {
			allExternalsConnected = false
			break
		}
	}
	if allExternalsConnected {
		return "Full desk setup (all external monitors connected)"
	}

	return fmt.Sprintf("Partial setup (%d external %s connected)",
		len(externals), util.Pluralize(len(externals), "monitor", "monitors"))
}

// presetNamesFor returns presets whose required monitors are all connected.
func presetNamesFor(cfg *config.Config, connected []string) []string {
	var names []string
	for _, name := range presetNames(cfg) {
		ok := true
		for _, id := range cfg.Presets[name].Require {
			if !containsID(connected, id) {
				ok = false
				break
			}
		}
		if ok {
			names = append(names, name)
		}
	}
	return names
}

// isBuiltIn reports whether a monitor ID names a built-in laptop panel.
// Embedded DisplayPort connectors are "eDP-*" in kernel naming.
func isBuiltIn(id string) bool {
	return strings.HasPrefix(id, "eDP")
}

func externalIDs(ids []string) []string {
	var externals []string
	for _, id := range ids {
		if !isBuiltIn(id) {
			externals = append(externals, id)
		}
	}
	return externals
}

func containsID(ids []string, want string) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
