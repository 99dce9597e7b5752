package gdctl

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

// Line patterns for gdctl's tree-formatted output. All parsing of that output
// goes through this table so a format change in gdctl is a localized failure.
//
// Sample "gdctl show --modes" block:
//
//	├──Monitor DP-2 (ASUSTek COMPUTER INC 34")
//	│  ├──Vendor: AUS
//	│  ├──Product: VG34VQEL1A
//	│  └──Modes
//	│      ├──3440x1440@179.981
//	│      └──3440x1440@59.973
//
// In plain "gdctl show" the single mode under each monitor is the active one
// and hangs off a └── connector.
var (
	monitorHeaderPattern = regexp.MustCompile(`[├└]──Monitor\s+(\S+)\s+\((.+?)\)`)
	vendorPattern        = regexp.MustCompile(`├──Vendor:\s*(.+)`)
	productPattern       = regexp.MustCompile(`├──Product:\s*(.+)`)
	modeLinePattern      = regexp.MustCompile(`[├└]──(\d+)x(\d+)@(\d+(?:\.\d+)?)`)
	currentModePattern   = regexp.MustCompile(`└──(\d+)x(\d+)@(\d+(?:\.\d+)?)`)

	// modePattern matches a bare WIDTHxHEIGHT@RATE string (config values,
	// user input), anchored so trailing junk is rejected.
	modePattern = regexp.MustCompile(`^(\d+)x(\d+)@(\d+(?:\.\d+)?)$`)
)

// modeFromMatch builds a Mode from a pattern match whose groups are
// width, height, rate. The patterns only admit digits, so Atoi cannot fail.
func modeFromMatch(match []string) Mode {
	w, _ := strconv.Atoi(match[1])
	h, _ := strconv.Atoi(match[2])
	return Mode{Width: w, Height: h, Rate: match[3]}
}

// ParseMonitors extracts monitors and their available modes from
// "gdctl show --modes" output. Parsing is best effort: lines that match no
// known pattern are skipped, and output with no monitor headers yields an
// empty slice, not an error.
func ParseMonitors(output string) []Monitor {
	var monitors []Monitor
	var current *Monitor

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()

		if match := monitorHeaderPattern.FindStringSubmatch(line); match != nil {
			monitors = append(monitors, Monitor{ID: match[1], Name: match[2]})
			current = &monitors[len(monitors)-1]
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case vendorPattern.MatchString(line):
			current.Vendor = strings.TrimSpace(vendorPattern.FindStringSubmatch(line)[1])
		case productPattern.MatchString(line):
			current.Product = strings.TrimSpace(productPattern.FindStringSubmatch(line)[1])
		default:
			if match := modeLinePattern.FindStringSubmatch(line); match != nil {
				current.Modes = append(current.Modes, modeFromMatch(match))
			}
		}
	}

	return monitors
}

// ParseCurrentModes extracts each monitor's single active mode from plain
// "gdctl show" output, keyed by monitor ID. Only the first └── mode line
// after each monitor header counts; later ones belong to other subtrees.
func ParseCurrentModes(output string) map[string]Mode {
	current := make(map[string]Mode)
	var monitorID string

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()

		if match := monitorHeaderPattern.FindStringSubmatch(line); match != nil {
			monitorID = match[1]
			continue
		}
		if monitorID == "" {
			continue
		}
		if _, seen := current[monitorID]; seen {
			continue
		}
		if match := currentModePattern.FindStringSubmatch(line); match != nil {
			current[monitorID] = modeFromMatch(match)
		}
	}

	return current
}

// MergeCurrentModes annotates monitors with their active mode, matching by
// value equality against each monitor's advertised mode list. A current mode
// that matches nothing in the list is dropped silently.
func MergeCurrentModes(monitors []Monitor, current map[string]Mode) {
	for i := range monitors {
		want, ok := current[monitors[i].ID]
		if !ok {
			continue
		}
		if mode := monitors[i].FindMode(want); mode != nil {
			monitors[i].Current = mode
		}
	}
}

// ParseConnectedIDs returns the set of monitor IDs present in any gdctl
// show output, in order of first appearance.
func ParseConnectedIDs(output string) []string {
	var ids []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		if match := monitorHeaderPattern.FindStringSubmatch(scanner.Text()); match != nil {
			if !seen[match[1]] {
				seen[match[1]] = true
				ids = append(ids, match[1])
			}
		}
	}

	return ids
}
