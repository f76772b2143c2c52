// SPDX-License-Identifier: GPL-2.0-or-later

package renderstate

const (
	// MaxSamplers is the number of sampler slots tracked.
	MaxSamplers = 16
	// DefaultAnisotropy is the level every slot starts at.
	DefaultAnisotropy = 1
)

// LevelFunc receives a sampler slot and its new anisotropy level.
type LevelFunc func(sampler, level uint32)

// SamplerLevels remembers the last anisotropy level sent for each sampler
// slot so unchanged levels are not sent again.
type SamplerLevels struct {
	levels   [MaxSamplers]uint32
	onChange LevelFunc

	// slots at or above MaxSamplers, like the D3D9 displacement map and
	// vertex texture samplers
	extra map[uint32]uint32
}

// NewSamplerLevels returns a cache with every slot at DefaultAnisotropy.
// onChange may be nil.
func NewSamplerLevels(onChange LevelFunc) *SamplerLevels {
	sl := &SamplerLevels{onChange: onChange}
	sl.Reset()
	return sl
}

// Reset puts every slot back to DefaultAnisotropy without signaling.
func (sl *SamplerLevels) Reset() {
	for i := range sl.levels {
		sl.levels[i] = DefaultAnisotropy
	}
	sl.extra = nil
}

// Set records level for sampler and returns the previous level. onChange
// is only called if the level differs from the recorded one.
func (sl *SamplerLevels) Set(sampler, level uint32) uint32 {
	prev := sl.Level(sampler)
	if prev == level {
		return prev
	}
	if sampler < MaxSamplers {
		sl.levels[sampler] = level
	} else {
		if sl.extra == nil {
			sl.extra = make(map[uint32]uint32)
		}
		sl.extra[sampler] = level
	}
	if sl.onChange != nil {
		sl.onChange(sampler, level)
	}
	return prev
}

// Level returns the recorded level of sampler.
func (sl *SamplerLevels) Level(sampler uint32) uint32 {
	if sampler < MaxSamplers {
		return sl.levels[sampler]
	}
	if l, ok := sl.extra[sampler]; ok {
		return l
	}
	return DefaultAnisotropy
}
