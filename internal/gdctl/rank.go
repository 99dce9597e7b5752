package gdctl

import "sort"

// DefaultTopLimit caps the ranked mode list when the caller doesn't say.
const DefaultTopLimit = 10

// minRankedPixels is the cutoff below which resolutions are dropped from the
// ranked view: anything smaller than 1280x720 isn't worth offering.
const minRankedPixels = 1280 * 720

// How many modes each resolution contributes to the ranked list.
const (
	nativeModeCount = 3
	otherModeCount  = 2
)

// resolutionGroup holds one resolution's modes, rates sorted descending.
type resolutionGroup struct {
	width  int
	height int
	modes  []Mode
}

func (g resolutionGroup) pixels() int { return g.width * g.height }

// groupByResolution buckets modes by resolution, preserving first-appearance
// order of resolutions and sorting rates descending within each bucket.
func groupByResolution(modes []Mode) []resolutionGroup {
	index := make(map[string]int)
	var groups []resolutionGroup

	for _, m := range modes {
		key := m.Resolution()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, resolutionGroup{width: m.Width, height: m.Height})
		}
		groups[i].modes = append(groups[i].modes, m)
	}

	for i := range groups {
		g := groups[i].modes
		sort.SliceStable(g, func(a, b int) bool {
			return g[a].RateHz() > g[b].RateHz()
		})
	}

	return groups
}

// TopModes ranks a monitor's mode list for display: sub-HD resolutions are
// dropped, remaining resolutions are ordered by pixel count descending, rates
// descending within each, and the result takes up to 3 modes from the native
// (highest pixel count) resolution and up to 2 from every other, truncated to
// limit. limit <= 0 means DefaultTopLimit. Pure function of its inputs.
func TopModes(modes []Mode, limit int) []Mode {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	groups := groupByResolution(modes)

	kept := groups[:0]
	for _, g := range groups {
		if g.pixels() >= minRankedPixels {
			kept = append(kept, g)
		}
	}
	sort.SliceStable(kept, func(a, b int) bool {
		return kept[a].pixels() > kept[b].pixels()
	})

	var ranked []Mode
	for i, g := range kept {
		take := otherModeCount
		if i == 0 {
			take = nativeModeCount
		}
		if take > len(g.modes) {
			take = len(g.modes)
		}
		ranked = append(ranked, g.modes[:take]...)
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// AllModesSorted returns every mode grouped by resolution with no filtering
// or caps: resolutions by pixel count descending (native first), rates
// descending within each. This is the "full list" view of the mode menu.
func AllModesSorted(modes []Mode) []Mode {
	groups := groupByResolution(modes)
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].pixels() > groups[b].pixels()
	})

	var sorted []Mode
	for _, g := range groups {
		sorted = append(sorted, g.modes...)
	}
	return sorted
}

// NativePixels returns the highest pixel count among the modes, the measure
// that defines a monitor's native resolution. Returns 0 for an empty list.
func NativePixels(modes []Mode) int {
	max := 0
	for _, m := range modes {
		if m.PixelCount() > max {
			max = m.PixelCount()
		}
	}
	return max
}

// MaxRateMode returns the highest-refresh mode at the given resolution, or
// the zero Mode if the resolution isn't offered.
func MaxRateMode(modes []Mode, width, height int) Mode {
	var best Mode
	for _, m := range modes {
		if m.Width != width || m.Height != height {
			continue
		}
		if best.IsZero() || m.RateHz() > best.RateHz() {
			best = m
		}
	}
	return best
}
