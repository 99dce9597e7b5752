package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/gms/internal/config"
	"github.com/rileyhilliard/gms/internal/logger"
)

func newTestManager(t *testing.T, keep int) *Manager {
	t.Helper()
	m, err := NewManager(config.BackupConfig{Dir: t.TempDir(), Keep: keep})
	require.NoError(t, err)
	m.SetLogger(logger.Noop())

	// Deterministic, strictly increasing timestamps for file names.
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	calls := 0
	m.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	}
	return m
}

func TestSnapshotWritesFile(t *testing.T) {
	m := newTestManager(t, 5)

	path, err := m.Snapshot("Logical monitors:\n└──Monitor DP-2\n")

	require.NoError(t, err)
	assert.DirExists(t, m.Dir())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Logical monitors:\n└──Monitor DP-2\n", string(data))

	name := filepath.Base(path)
	assert.Regexp(t, `^gdctl-backup-\d+\.txt$`, name)
}

func TestSnapshotRetention(t *testing.T) {
	m := newTestManager(t, 5)

	// Seven rapid snapshots leave exactly the five newest behind.
	var paths []string
	for i := 0; i < 7; i++ {
		path, err := m.Snapshot(fmt.Sprintf("snapshot %d", i))
		require.NoError(t, err)
		paths = append(paths, path)
	}

	snapshots, err := m.List()
	require.NoError(t, err)
	require.Len(t, snapshots, 5)

	// The two oldest are gone, the rest survive.
	assert.NoFileExists(t, paths[0])
	assert.NoFileExists(t, paths[1])
	for _, p := range paths[2:] {
		assert.FileExists(t, p)
	}
}

func TestListNewestFirst(t *testing.T) {
	m := newTestManager(t, 10)

	for i := 0; i < 3; i++ {
		_, err := m.Snapshot(fmt.Sprintf("snapshot %d", i))
		require.NoError(t, err)
	}

	snapshots, err := m.List()
	require.NoError(t, err)
	require.Len(t, snapshots, 3)

	// Names embed nanosecond timestamps, so newest-first means
	// lexicographically descending.
	assert.Greater(t, snapshots[0].Name, snapshots[1].Name)
	assert.Greater(t, snapshots[1].Name, snapshots[2].Name)
}

func TestListIgnoresForeignFiles(t *testing.T) {
	m := newTestManager(t, 5)
	require.NoError(t, os.MkdirAll(m.Dir(), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(m.Dir(), "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(m.Dir(), "gdctl-backup-sub.txt"), 0755))

	_, err := m.Snapshot("real one")
	require.NoError(t, err)

	snapshots, err := m.List()
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Regexp(t, `^gdctl-backup-\d+\.txt$`, snapshots[0].Name)
}

func TestListMissingDir(t *testing.T) {
	m, err := NewManager(config.BackupConfig{
		Dir:  filepath.Join(t.TempDir(), "never-created"),
		Keep: 5,
	})
	require.NoError(t, err)

	snapshots, err := m.List()
	require.NoError(t, err)
	assert.Empty(t, snapshots)
}

func TestClean(t *testing.T) {
	m := newTestManager(t, 5)
	for i := 0; i < 3; i++ {
		_, err := m.Snapshot("snapshot")
		require.NoError(t, err)
	}

	require.NoError(t, m.Clean())

	snapshots, err := m.List()
	require.NoError(t, err)
	assert.Empty(t, snapshots)
}

func TestNewManagerDefaultsKeep(t *testing.T) {
	m, err := NewManager(config.BackupConfig{Dir: t.TempDir(), Keep: 0})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBackupKeep, m.keep)
}
