// Package gdctl wraps GNOME's gdctl display configuration tool: invoking it,
// parsing its tree-formatted output into monitors and modes, and building
// "gdctl set" invocations for logical monitor arrangements.
package gdctl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rileyhilliard/gms/internal/errors"
)

// Mode is a resolution and refresh rate a display can be driven at.
// Rate keeps gdctl's decimal text verbatim (e.g. "59.973") because
// "gdctl set --mode" must round-trip the exact string it printed.
type Mode struct {
	Width  int
	Height int
	Rate   string
}

// String returns the mode in gdctl's wire format: 3440x1440@100.006.
func (m Mode) String() string {
	return fmt.Sprintf("%dx%d@%s", m.Width, m.Height, m.Rate)
}

// Display returns a user-friendly form: 3440x1440 @ 100.006 Hz.
func (m Mode) Display() string {
	return fmt.Sprintf("%dx%d @ %s Hz", m.Width, m.Height, m.Rate)
}

// Resolution returns the WIDTHxHEIGHT part without the refresh rate.
func (m Mode) Resolution() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// PixelCount returns width*height, the measure used to rank resolutions.
func (m Mode) PixelCount() int {
	return m.Width * m.Height
}

// RateHz parses the refresh rate for numeric comparison. Returns 0 if the
// rate text is malformed.
func (m Mode) RateHz() float64 {
	hz, err := strconv.ParseFloat(m.Rate, 64)
	if err != nil {
		return 0
	}
	return hz
}

// IsZero reports whether the mode is the zero value.
func (m Mode) IsZero() bool {
	return m.Width == 0 && m.Height == 0 && m.Rate == ""
}

// ParseModeString parses a WIDTHxHEIGHT@RATE string into a Mode.
func ParseModeString(s string) (Mode, error) {
	match := modePattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Mode{}, errors.New(errors.ErrParse,
			fmt.Sprintf("'%s' is not a valid mode", s),
			"Modes look like 3440x1440@100.006 (width x height @ refresh rate).")
	}
	return modeFromMatch(match), nil
}

// Monitor is a physical display: its stable port identifier, human-readable
// name, optional vendor/product codes, the modes it advertises (in the order
// gdctl reports them), and the mode it is currently driven at, if known.
type Monitor struct {
	ID      string
	Name    string
	Vendor  string
	Product string
	Modes   []Mode
	Current *Mode
}

// DisplayName returns a user-friendly label: "ASUSTek COMPUTER INC 34\" (DP-2)".
func (m *Monitor) DisplayName() string {
	return fmt.Sprintf("%s (%s)", m.Name, m.ID)
}

// FindMode returns the monitor's mode equal to want, or nil.
// Identity is the (resolution, rate) pair itself.
func (m *Monitor) FindMode(want Mode) *Mode {
	for i := range m.Modes {
		if m.Modes[i] == want {
			return &m.Modes[i]
		}
	}
	return nil
}
