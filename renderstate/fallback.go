// SPDX-License-Identifier: GPL-2.0-or-later

package renderstate

// Table maps every requested mode of every stage to the mode the adapter
// can actually do. A Table is built once per adapter selection and never
// patched afterwards.
type Table [numStages][numFilterModes]FilterMode

// Build computes the fallback cascade for all stages.
// anisotropyEnabled should only be true if the configured level is above 1.
func Build(caps Caps, anisotropyEnabled bool) Table {
	var t Table
	for _, s := range Stages {
		sc := caps[s]
		row := &t[s]
		row[FilterNone] = FilterNone
		row[FilterPoint] = row[FilterNone]
		if sc.Point {
			row[FilterPoint] = FilterPoint
		}
		row[FilterLinear] = row[FilterPoint]
		if sc.Linear {
			row[FilterLinear] = FilterLinear
		}
		row[FilterAnisotropic] = row[FilterLinear]
		// there is no anisotropic mip filter
		if s != StageMip && anisotropyEnabled && sc.Anisotropic {
			row[FilterAnisotropic] = FilterAnisotropic
		}
	}
	return t
}

// Resolve returns the mode to submit for a requested mode at stage s.
// Modes above FilterAnisotropic are clamped, unknown stages get FilterNone.
func (t *Table) Resolve(s Stage, requested FilterMode) FilterMode {
	if s >= numStages {
		return FilterNone
	}
	if requested >= numFilterModes {
		requested = FilterAnisotropic
	}
	return t[s][requested]
}
