// Package backup snapshots gdctl's configuration text before mutating
// changes, retaining a bounded number of recent snapshot files.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rileyhilliard/gms/internal/config"
	"github.com/rileyhilliard/gms/internal/errors"
	"github.com/rileyhilliard/gms/internal/logger"
)

// filePrefix and fileSuffix frame snapshot file names:
// gdctl-backup-<timestamp>.txt
const (
	filePrefix = "gdctl-backup-"
	fileSuffix = ".txt"
)

// Snapshot describes one retained backup file.
type Snapshot struct {
	Path    string
	Name    string
	ModTime time.Time
	Size    int64
}

// Manager writes and prunes configuration snapshots in a fixed directory.
type Manager struct {
	dir  string
	keep int
	log  logger.Logger
	now  func() time.Time
}

// NewManager creates a Manager from backup config, expanding a leading ~
// in the directory.
func NewManager(cfg config.BackupConfig) (*Manager, error) {
	dir, err := config.ExpandHome(cfg.Dir)
	if err != nil {
		return nil, err
	}

	keep := cfg.Keep
	if keep < 1 {
		keep = config.DefaultBackupKeep
	}

	return &Manager{
		dir:  dir,
		keep: keep,
		log:  logger.NewEnvLogger("[backup]"),
		now:  time.Now,
	}, nil
}

// SetLogger replaces the manager's logger.
func (m *Manager) SetLogger(l logger.Logger) { m.log = l }

// Dir returns the backup directory.
func (m *Manager) Dir() string { return m.dir }

// Snapshot writes the given configuration text to a new timestamp-named file
// and prunes old snapshots past the retention cap. Returns the written path.
func (m *Manager) Snapshot(text string) (string, error) {
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrBackup,
			"Can't create backup directory "+m.dir,
			"Check your permissions.")
	}

	name := fmt.Sprintf("%s%d%s", filePrefix, m.now().UnixNano(), fileSuffix)
	path := filepath.Join(m.dir, name)

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrBackup,
			"Can't write backup file "+path,
			"Check your permissions.")
	}

	if err := m.Prune(); err != nil {
		// Retention failure shouldn't undo a successful snapshot.
		m.log.Warn("backup pruning failed: %v", err)
	}

	return path, nil
}

// Prune deletes all but the most recent snapshots, by modification time.
func (m *Manager) Prune() error {
	snapshots, err := m.List()
	if err != nil {
		return err
	}

	if len(snapshots) <= m.keep {
		return nil
	}

	for _, s := range snapshots[m.keep:] {
		if err := os.Remove(s.Path); err != nil {
			return errors.WrapWithCode(err, errors.ErrBackup,
				"Can't delete old backup "+s.Path,
				"Check your permissions.")
		}
		m.log.Debug("cleaned up old backup: %s", s.Name)
	}

	return nil
}

// List returns retained snapshots sorted by modification time, newest first.
// A missing backup directory is an empty list, not an error.
func (m *Manager) List() ([]Snapshot, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrBackup,
			"Can't read backup directory "+m.dir,
			"Check your permissions.")
	}

	var snapshots []Snapshot
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue // entry vanished mid-listing
		}
		snapshots = append(snapshots, Snapshot{
			Path:    filepath.Join(m.dir, name),
			Name:    name,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		if !snapshots[i].ModTime.Equal(snapshots[j].ModTime) {
			return snapshots[i].ModTime.After(snapshots[j].ModTime)
		}
		// Names embed the capture timestamp, so they break mtime ties on
		// filesystems with coarse timestamp granularity.
		return snapshots[i].Name > snapshots[j].Name
	})

	return snapshots, nil
}

// Clean removes every retained snapshot.
func (m *Manager) Clean() error {
	snapshots, err := m.List()
	if err != nil {
		return err
	}
	for _, s := range snapshots {
		if err := os.Remove(s.Path); err != nil {
			return errors.WrapWithCode(err, errors.ErrBackup,
				"Can't delete backup "+s.Path,
				"Check your permissions.")
		}
	}
	return nil
}
