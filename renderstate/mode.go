// SPDX-License-Identifier: GPL-2.0-or-later

package renderstate

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FilterMode is a texture filtering technique. The values are ordered by
// richness, a larger value is never cheaper than a smaller one.
type FilterMode uint8

const (
	FilterNone FilterMode = iota
	FilterPoint
	FilterLinear
	FilterAnisotropic

	numFilterModes = 4
)

var filterNames = [numFilterModes]string{
	"none",
	"point",
	"linear",
	"anisotropic",
}

func (m FilterMode) String() string {
	if m >= numFilterModes {
		return "FilterMode(" + strconv.Itoa(int(m)) + ")"
	}
	return filterNames[m]
}

// Valid reports whether m is one of the four known modes.
func (m FilterMode) Valid() bool {
	return m < numFilterModes
}

// ParseFilterMode accepts a mode name in any case or its numeric value.
func ParseFilterMode(s string) (FilterMode, error) {
	ls := strings.ToLower(strings.TrimSpace(s))
	for i, n := range filterNames {
		if n == ls {
			return FilterMode(i), nil
		}
	}
	switch ls {
	case "nearest":
		return FilterPoint, nil
	case "aniso":
		return FilterAnisotropic, nil
	}
	i, err := strconv.Atoi(ls)
	if err == nil && i >= 0 && i < numFilterModes {
		return FilterMode(i), nil
	}
	return FilterNone, errors.Errorf("%q is not a valid filter mode", s)
}

// Stage is one of the three independent filtering roles of a sampler.
type Stage uint8

const (
	StageMin Stage = iota
	StageMag
	StageMip

	numStages = 3
)

// Stages lists all stages in table order.
var Stages = [numStages]Stage{StageMin, StageMag, StageMip}

func (s Stage) String() string {
	switch s {
	case StageMin:
		return "min"
	case StageMag:
		return "mag"
	case StageMip:
		return "mip"
	}
	return "Stage(" + strconv.Itoa(int(s)) + ")"
}
