// SPDX-License-Identifier: GPL-2.0-or-later

package renderstate

import (
	"strings"

	"github.com/pkg/errors"
)

// StageCaps holds the natively supported modes of a single stage.
// FilterNone is always supported and has no flag.
type StageCaps struct {
	Point       bool
	Linear      bool
	Anisotropic bool
}

// Caps is the filtering capability record of an adapter, indexed by Stage.
type Caps [numStages]StageCaps

// Supports reports native support of mode m at stage s.
func (c Caps) Supports(s Stage, m FilterMode) bool {
	if s >= numStages {
		return false
	}
	sc := c[s]
	switch m {
	case FilterNone:
		return true
	case FilterPoint:
		return sc.Point
	case FilterLinear:
		return sc.Linear
	case FilterAnisotropic:
		return sc.Anisotropic
	}
	return false
}

// String formats the caps the way ParseCaps reads them, e.g. "min=pla,mag=pl,mip=pl".
func (c Caps) String() string {
	var b strings.Builder
	for i, s := range Stages {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s.String())
		b.WriteByte('=')
		sc := c[s]
		if sc.Point {
			b.WriteByte('p')
		}
		if sc.Linear {
			b.WriteByte('l')
		}
		if sc.Anisotropic {
			b.WriteByte('a')
		}
	}
	return b.String()
}

// ParseCaps reads a comma separated list of stage=flags pairs. The flags
// are any of the letters p (point), l (linear) and a (anisotropic).
// Stages not named have no support besides FilterNone.
func ParseCaps(s string) (Caps, error) {
	var c Caps
	s = strings.TrimSpace(s)
	if s == "" {
		return c, nil
	}
	for _, part := range strings.Split(s, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			return Caps{}, errors.Errorf("caps entry %q is not stage=flags", part)
		}
		st, ok := parseStage(kv[0])
		if !ok {
			return Caps{}, errors.Errorf("unknown stage %q", kv[0])
		}
		var sc StageCaps
		for _, r := range strings.ToLower(kv[1]) {
			switch r {
			case 'p':
				sc.Point = true
			case 'l':
				sc.Linear = true
			case 'a':
				sc.Anisotropic = true
			case '-':
			default:
				return Caps{}, errors.Errorf("unknown filter flag %q for stage %v", r, st)
			}
		}
		c[st] = sc
	}
	return c, nil
}

func parseStage(s string) (Stage, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "minify":
		return StageMin, true
	case "mag", "magnify":
		return StageMag, true
	case "mip", "mipmap":
		return StageMip, true
	}
	return 0, false
}
