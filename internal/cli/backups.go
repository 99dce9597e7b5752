package cli

import (
	"fmt"

	"github.com/rileyhilliard/gms/internal/backup"
	"github.com/rileyhilliard/gms/internal/config"
	"github.com/rileyhilliard/gms/internal/ui"
	"github.com/rileyhilliard/gms/internal/util"
)

// backupsCommand lists or cleans retained configuration snapshots.
func backupsCommand(clean bool) error {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}

	manager, err := backup.NewManager(cfg.Backup)
	if err != nil {
		return err
	}

	if clean {
		if err := manager.Clean(); err != nil {
			return err
		}
		fmt.Printf("%s Removed all backups from %s\n",
			ui.SuccessStyle.Render(ui.SymbolSuccess), manager.Dir())
		return nil
	}

	snapshots, err := manager.List()
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		fmt.Printf("No backups in %s yet - one is taken before every apply.\n", manager.Dir())
		return nil
	}

	rows := make([][]string, len(snapshots))
	for i, s := range snapshots {
		rows[i] = []string{
			s.Name,
			s.ModTime.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d B", s.Size),
		}
	}

	fmt.Printf("%d %s in %s (newest first):\n",
		len(snapshots),
		util.Pluralize(len(snapshots), "backup", "backups"),
		manager.Dir())
	fmt.Print(ui.RenderTable([]ui.TableColumn{
		{Title: "NAME", Width: 36},
		{Title: "CAPTURED", Width: 20},
		{Title: "SIZE", Width: 10},
	}, rows))
	return nil
}
