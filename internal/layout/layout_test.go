package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/gms/internal/backup"
	"github.com/rileyhilliard/gms/internal/config"
	"github.com/rileyhilliard/gms/internal/gdctl"
	"github.com/rileyhilliard/gms/internal/gdctl/gdctltest"
	"github.com/rileyhilliard/gms/internal/logger"
)

// showFor builds plain "gdctl show" output listing the given monitor IDs.
func showFor(ids ...string) string {
	out := "Logical monitors:\n"
	for _, id := range ids {
		out += fmt.Sprintf("├──Monitor %s (Display %s)\n│      └──1920x1080@60.000\n", id, id)
	}
	return out
}

func newTestApplier(t *testing.T, fake *gdctltest.FakeRunner) *Applier {
	t.Helper()

	client := gdctl.NewClientWithRunner(fake)
	client.SetLogger(logger.Noop())

	backups, err := backup.NewManager(config.BackupConfig{Dir: t.TempDir(), Keep: 5})
	require.NoError(t, err)
	backups.SetLogger(logger.Noop())

	applier := NewApplier(client, backups, config.DefaultConfig())
	applier.SetLogger(logger.Noop())
	return applier
}

func TestSwitchSingle(t *testing.T) {
	fake := gdctltest.NewFakeRunner().
		SetDefault(gdctl.Result{Stdout: showFor("DP-2", "eDP-1")}, nil)
	applier := newTestApplier(t, fake)

	result, err := applier.SwitchSingle("DP-2", gdctl.Mode{Width: 3440, Height: 1440, Rate: "100.006"})

	require.NoError(t, err)
	assert.NotEmpty(t, result.BackupPath, "snapshot taken before the switch")

	calls := fake.SetCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{
		"set", "--verbose", "--logical-monitor", "--primary",
		"--monitor", "DP-2", "--mode", "3440x1440@100.006",
	}, calls[0])
}

func TestSwitchSingle_NotConnected(t *testing.T) {
	fake := gdctltest.NewFakeRunner().
		SetDefault(gdctl.Result{Stdout: showFor("eDP-1")}, nil)
	applier := newTestApplier(t, fake)

	_, err := applier.SwitchSingle("DP-2", gdctl.Mode{Width: 3440, Height: 1440, Rate: "100.006"})

	var missing *MissingMonitorsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"DP-2"}, missing.Missing)
	assert.Equal(t, []string{"eDP-1"}, missing.Connected)
	assert.Empty(t, fake.SetCalls(), "nothing applied when the monitor is absent")
}

func TestSwitchSingle_NoBackup(t *testing.T) {
	fake := gdctltest.NewFakeRunner().
		SetDefault(gdctl.Result{Stdout: showFor("DP-2")}, nil)
	applier := newTestApplier(t, fake)
	applier.NoBackup = true

	result, err := applier.SwitchSingle("DP-2", gdctl.Mode{Width: 3440, Height: 1440, Rate: "100.006"})

	require.NoError(t, err)
	assert.Empty(t, result.BackupPath)
}

func TestApplyPreset_Triple(t *testing.T) {
	fake := gdctltest.NewFakeRunner().
		SetDefault(gdctl.Result{Stdout: showFor("DP-2", "DP-3", "DP-4")}, nil)
	applier := newTestApplier(t, fake)

	result, err := applier.ApplyPreset("triple")

	require.NoError(t, err)
	assert.NotEmpty(t, result.BackupPath)

	calls := fake.SetCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{
		"set", "--verbose",
		"--logical-monitor",
		"--monitor", "DP-3", "--mode", "2560x1080@60.000",
		"--transform", "270", "--x", "0", "--y", "0",
		"--logical-monitor",
		"--monitor", "DP-4", "--mode", "3440x1440@179.981",
		"--x", "1080", "--y", "0",
		"--logical-monitor", "--primary",
		"--monitor", "DP-2", "--mode", "3440x1440@100.006",
		"--x", "1080", "--y", "1440",
	}, calls[0])
}

func TestApplyPreset_MissingMonitors(t *testing.T) {
	// Only two of the three required monitors are connected.
	fake := gdctltest.NewFakeRunner().
		SetDefault(gdctl.Result{Stdout: showFor("DP-2", "DP-3")}, nil)
	applier := newTestApplier(t, fake)

	_, err := applier.ApplyPreset("triple")

	var missing *MissingMonitorsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "triple", missing.Layout)
	assert.Equal(t, []string{"DP-4"}, missing.Missing)
	assert.Equal(t, []string{"DP-2", "DP-3"}, missing.Connected)
	assert.Empty(t, fake.SetCalls(), "refusal happens before any mutating call")
}

func TestApplyPreset_Unknown(t *testing.T) {
	fake := gdctltest.NewFakeRunner()
	applier := newTestApplier(t, fake)

	_, err := applier.ApplyPreset("quad")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown preset 'quad'")
	assert.Contains(t, err.Error(), "dual, triple")
	assert.Empty(t, fake.Calls, "gdctl never invoked for an unknown preset")
}

func TestApplyPreset_CandidateSlot(t *testing.T) {
	// Laptop plus the LG: the dual preset's candidate slot picks DP-3 and its
	// declared per-candidate mode.
	fake := gdctltest.NewFakeRunner().
		SetDefault(gdctl.Result{Stdout: showFor("eDP-1", "DP-3")}, nil)
	applier := newTestApplier(t, fake)

	result, err := applier.ApplyPreset("dual")

	require.NoError(t, err)
	calls := fake.SetCalls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0], "DP-3")
	assert.Contains(t, calls[0], "1920x1080@60.000")
	assert.NotContains(t, calls[0], "DP-4")
	assert.Empty(t, result.FallbackFor)
}

func TestApplyPreset_CandidatePriorityOrder(t *testing.T) {
	// With every external connected the first candidate in the list wins.
	fake := gdctltest.NewFakeRunner().
		SetDefault(gdctl.Result{Stdout: showFor("eDP-1", "DP-2", "DP-3", "DP-4")}, nil)
	applier := newTestApplier(t, fake)

	_, err := applier.ApplyPreset("dual")

	require.NoError(t, err)
	calls := fake.SetCalls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0], "DP-3")
	assert.NotContains(t, calls[0], "DP-2")
}

func TestApplyPreset_NoCandidateConnected(t *testing.T) {
	fake := gdctltest.NewFakeRunner().
		SetDefault(gdctl.Result{Stdout: showFor("eDP-1")}, nil)
	applier := newTestApplier(t, fake)

	_, err := applier.ApplyPreset("dual")

	var missing *MissingMonitorsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"one of DP-3/DP-4/DP-2"}, missing.Missing)
	assert.Empty(t, fake.SetCalls())
}

func TestApplyPreset_FallbackRetry(t *testing.T) {
	fake := gdctltest.NewFakeRunner().
		SetDefault(gdctl.Result{Stdout: showFor("eDP-1", "DP-3")}, nil)
	applier := newTestApplier(t, fake)

	// First set attempt rejects the mode; the declared DP-3 fallback succeeds.
	firstArgs := "set --verbose " +
		"--logical-monitor --monitor eDP-1 --mode 2880x1920@60.000 --scale 1.75 --x 0 --y 0 " +
		"--logical-monitor --primary --monitor DP-3 --mode 1920x1080@60.000 --x 1644 --y 0"
	fake.StubFailure(firstArgs, "Mode 1920x1080@60.000 not available on DP-3")

	result, err := applier.ApplyPreset("dual")

	require.NoError(t, err)
	assert.Equal(t, "DP-3", result.FallbackFor)
	assert.Equal(t, "2560x1080@60.000", result.FallbackMode.String())

	calls := fake.SetCalls()
	require.Len(t, calls, 2)
	assert.Contains(t, calls[1], "2560x1080@60.000")
}

func TestApplyPreset_NonModeFailureNotRetried(t *testing.T) {
	fake := gdctltest.NewFakeRunner().
		Stub("show", showFor("eDP-1", "DP-3")).       // connected check
		Stub("show", showFor("eDP-1", "DP-3")).       // backup snapshot
		SetDefault(gdctl.Result{Stderr: "DBus connection lost", ExitCode: 1}, nil)
	applier := newTestApplier(t, fake)

	_, err := applier.ApplyPreset("dual")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DBus connection lost")
	assert.Len(t, fake.SetCalls(), 1, "no fallback retry for a non-mode failure")
}

func TestApplyPreset_BackupFailureIsNotFatal(t *testing.T) {
	// "show" works for the connected check, then fails when snapshotting.
	fake := gdctltest.NewFakeRunner().
		Stub("show", showFor("DP-2", "DP-3", "DP-4")).
		StubFailure("show", "transient DBus error")
	applier := newTestApplier(t, fake)

	result, err := applier.ApplyPreset("triple")

	require.NoError(t, err)
	assert.Empty(t, result.BackupPath)
	assert.Len(t, fake.SetCalls(), 1, "apply proceeds without the snapshot")
}
