package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/gms/internal/menu"
	"github.com/rileyhilliard/gms/internal/ui"
	"github.com/rileyhilliard/gms/internal/util"
)

// interactiveCommand runs the monitor/mode selection menu loop.
func interactiveCommand() error {
	_, client, applier, err := buildStack(false)
	if err != nil {
		return err
	}

	ui.PrintHeader(ui.HeaderInfo{
		Version: formatVersion(GetVersion()),
		Tagline: "GNOME monitor switcher",
	})

	fmt.Println(ui.InfoStyle.Render("Detecting monitors..."))
	monitors, err := client.Monitors()
	if err != nil {
		return err
	}
	if len(monitors) == 0 {
		return errNoMonitors()
	}

	fmt.Printf("%s Found %d %s\n\n",
		ui.SuccessStyle.Render(ui.SymbolSuccess),
		len(monitors),
		util.Pluralize(len(monitors), "monitor", "monitors"))

	session := menu.NewSession(applier, monitors, menuLimitFlag, os.Stdout)
	return session.Run()
}
