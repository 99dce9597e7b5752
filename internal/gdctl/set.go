package gdctl

import "strconv"

// Placement positions one physical display within the desktop layout: the
// mode to drive it at, whether it is the primary output, and its logical
// position, scale, and rotation.
type Placement struct {
	MonitorID string
	Mode      Mode
	Primary   bool
	Scale     float64 // 0 means leave gdctl's default
	Transform string  // rotation, e.g. "270"; empty means none
	X         int
	Y         int
}

// SetRequest describes a full "gdctl set" invocation: one logical monitor
// per placement, applied atomically by gdctl.
type SetRequest struct {
	Verbose    bool
	Placements []Placement
}

// Args builds the argv for the request, e.g.
//
//	set --verbose --logical-monitor --primary --monitor DP-2 --mode 3440x1440@100.006
//
// Position flags are always emitted for multi-monitor arrangements; a lone
// placement at the origin omits them and takes gdctl's defaults, matching
// how a plain single-monitor switch is invoked.
func (r SetRequest) Args() []string {
	args := []string{"set"}
	if r.Verbose {
		args = append(args, "--verbose")
	}

	multi := len(r.Placements) > 1
	for _, p := range r.Placements {
		args = append(args, "--logical-monitor")
		if p.Primary {
			args = append(args, "--primary")
		}
		args = append(args, "--monitor", p.MonitorID, "--mode", p.Mode.String())
		if p.Scale > 0 {
			args = append(args, "--scale", strconv.FormatFloat(p.Scale, 'f', -1, 64))
		}
		if p.Transform != "" {
			args = append(args, "--transform", p.Transform)
		}
		if multi || p.X != 0 || p.Y != 0 {
			args = append(args, "--x", strconv.Itoa(p.X), "--y", strconv.Itoa(p.Y))
		}
	}

	return args
}

// WithMode returns a copy of the request with the mode of the placement for
// monitorID replaced. Used for declared fallback retries.
func (r SetRequest) WithMode(monitorID string, mode Mode) SetRequest {
	placements := make([]Placement, len(r.Placements))
	copy(placements, r.Placements)
	for i := range placements {
		if placements[i].MonitorID == monitorID {
			placements[i].Mode = mode
		}
	}
	return SetRequest{Verbose: r.Verbose, Placements: placements}
}
