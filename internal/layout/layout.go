// Package layout applies monitor arrangements: single-monitor switches and
// named preset layouts, with a configuration snapshot before every change.
package layout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rileyhilliard/gms/internal/backup"
	"github.com/rileyhilliard/gms/internal/config"
	"github.com/rileyhilliard/gms/internal/errors"
	"github.com/rileyhilliard/gms/internal/gdctl"
	"github.com/rileyhilliard/gms/internal/logger"
	"github.com/rileyhilliard/gms/internal/util"
)

// MissingMonitorsError is returned when a layout needs monitors that aren't
// connected. The mutating command is never invoked in that case.
type MissingMonitorsError struct {
	Layout    string
	Missing   []string
	Connected []string
}

func (e *MissingMonitorsError) Error() string {
	return fmt.Sprintf("✗ '%s' needs monitors that aren't connected\n\n  Missing: %s\n  Connected: %s\n",
		e.Layout,
		util.JoinOrNone(e.Missing),
		util.JoinOrNone(e.Connected))
}

// Result reports what an apply did, for display.
type Result struct {
	Request      gdctl.SetRequest
	BackupPath   string     // empty when backup was skipped or failed
	FallbackMode gdctl.Mode // set when a declared fallback was what succeeded
	FallbackFor  string     // monitor the fallback applied to
}

// Applier orchestrates backup-then-apply for switches and presets.
type Applier struct {
	client  *gdctl.Client
	backups *backup.Manager
	cfg     *config.Config
	log     logger.Logger

	// NoBackup skips the pre-apply snapshot (--no-backup).
	NoBackup bool
}

// NewApplier creates an Applier.
func NewApplier(client *gdctl.Client, backups *backup.Manager, cfg *config.Config) *Applier {
	return &Applier{
		client:  client,
		backups: backups,
		cfg:     cfg,
		log:     logger.NewEnvLogger("[layout]"),
	}
}

// SetLogger replaces the applier's logger.
func (a *Applier) SetLogger(l logger.Logger) { a.log = l }

// SwitchSingle makes monitorID the sole primary logical monitor at the given
// mode, verifying first that it is actually connected.
func (a *Applier) SwitchSingle(monitorID string, mode gdctl.Mode) (*Result, error) {
	connected, err := a.client.ConnectedIDs()
	if err != nil {
		return nil, err
	}
	if !contains(connected, monitorID) {
		return nil, &MissingMonitorsError{
			Layout:    monitorID,
			Missing:   []string{monitorID},
			Connected: connected,
		}
	}

	req := gdctl.SetRequest{
		Verbose: true,
		Placements: []gdctl.Placement{
			{MonitorID: monitorID, Mode: mode, Primary: true},
		},
	}

	result := &Result{Request: req}
	result.BackupPath = a.snapshot()

	if _, err := a.client.Apply(req); err != nil {
		return result, err
	}
	return result, nil
}

// ApplyPreset applies the named preset layout. Required monitors must all be
// connected; candidate slots take the first connected candidate. On a
// mode-related failure, declared fallback modes are retried in order.
func (a *Applier) ApplyPreset(name string) (*Result, error) {
	preset, ok := a.cfg.Presets[name]
	if !ok {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown preset '%s'", name),
			"Known presets: "+util.JoinOrNone(presetNames(a.cfg)))
	}

	connected, err := a.client.ConnectedIDs()
	if err != nil {
		return nil, err
	}

	req, err := resolvePreset(name, preset, connected)
	if err != nil {
		return nil, err
	}

	result := &Result{Request: req}
	result.BackupPath = a.snapshot()

	applyResult, err := a.client.Apply(req)
	if err == nil {
		return result, nil
	}

	// One declared-fallback pass: only for mode-related failures, and only
	// for monitors the preset names alternates for.
	if !isModeRelated(applyResult.Stderr) {
		return result, err
	}
	for _, p := range req.Placements {
		for _, alt := range preset.FallbackModes[p.MonitorID] {
			mode, parseErr := gdctl.ParseModeString(alt)
			if parseErr != nil {
				continue // validated at load time; stay safe anyway
			}
			a.log.Info("retrying %s with fallback mode %s", p.MonitorID, mode)

			retry := req.WithMode(p.MonitorID, mode)
			if _, retryErr := a.client.Apply(retry); retryErr == nil {
				result.Request = retry
				result.FallbackMode = mode
				result.FallbackFor = p.MonitorID
				return result, nil
			}
		}
	}

	return result, err
}

// snapshot captures the current configuration before a change. Failure is a
// warning, never a blocker: a missed backup shouldn't stop the switch.
func (a *Applier) snapshot() string {
	if a.NoBackup {
		return ""
	}

	text, err := a.client.Show()
	if err != nil {
		a.log.Warn("could not capture configuration for backup: %v", err)
		return ""
	}

	path, err := a.backups.Snapshot(text)
	if err != nil {
		a.log.Warn("could not write backup: %v", err)
		return ""
	}
	return path
}

// resolvePreset turns a preset into a concrete SetRequest against the
// currently connected monitors, or a MissingMonitorsError.
func resolvePreset(name string, preset config.Preset, connected []string) (gdctl.SetRequest, error) {
	var missing []string
	for _, id := range preset.Require {
		if !contains(connected, id) {
			missing = append(missing, id)
		}
	}

	req := gdctl.SetRequest{Verbose: true}
	for _, p := range preset.Placements {
		placement := gdctl.Placement{
			Primary:   p.Primary,
			Scale:     p.Scale,
			Transform: p.Transform,
			X:         p.X,
			Y:         p.Y,
		}

		switch {
		case p.Monitor != "":
			if !contains(connected, p.Monitor) && !contains(missing, p.Monitor) {
				missing = append(missing, p.Monitor)
			}
			placement.MonitorID = p.Monitor
			placement.Mode, _ = gdctl.ParseModeString(p.Mode)

		default:
			id := firstConnected(p.Candidates, connected)
			if id == "" {
				missing = append(missing, fmt.Sprintf("one of %s", strings.Join(p.Candidates, "/")))
				continue
			}
			placement.MonitorID = id
			placement.Mode, _ = gdctl.ParseModeString(p.Modes[id])
		}

		req.Placements = append(req.Placements, placement)
	}

	if len(missing) > 0 {
		return gdctl.SetRequest{}, &MissingMonitorsError{
			Layout:    name,
			Missing:   missing,
			Connected: connected,
		}
	}
	return req, nil
}

// isModeRelated reports whether gdctl's failure text looks like a rejected
// mode, the only failure kind worth a fallback retry.
func isModeRelated(stderr string) bool {
	return strings.Contains(strings.ToLower(stderr), "mode")
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

func firstConnected(candidates, connected []string) string {
	for _, id := range candidates {
		if contains(connected, id) {
			return id
		}
	}
	return ""
}

func presetNames(cfg *config.Config) []string {
	names := make([]string, 0, len(cfg.Presets))
	for name := range cfg.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
