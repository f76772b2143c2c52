// SPDX-License-Identifier: GPL-2.0-or-later

package renderstate

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"rsfix/conlog"
)

// Settings provides the user configuration the render state depends on.
type Settings interface {
	// AnisotropyLevel is the configured maximum anisotropy, 1 means off.
	AnisotropyLevel() uint32
	// ForceLinear downgrades anisotropic min and mag requests to linear.
	ForceLinear() bool
}

// State is the render state of one device. It is not safe for concurrent
// use, all calls are expected from the render thread.
type State struct {
	dev      Device
	settings Settings
	levels   *SamplerLevels

	table      *Table
	adapter    int
	caps       Caps
	generation uuid.UUID
}

func NewState(dev Device, settings Settings) *State {
	s := &State{
		dev:      dev,
		settings: settings,
		adapter:  -1,
	}
	s.levels = NewSamplerLevels(s.programAnisotropy)
	return s
}

func (s *State) programAnisotropy(sampler, level uint32) {
	if err := s.dev.SetSamplerAnisotropy(sampler, level); err != nil {
		conlog.Logger().WithFields(logrus.Fields{
			"sampler": sampler,
			"level":   level,
		}).WithError(err).Warn("failed to set sampler anisotropy")
	}
}

// InitialiseFallbackFilters rebuilds the fallback table for adapter. It must
// be called whenever the adapter is (re)selected or the anisotropy setting
// changes. On error the previous table stays in use.
func (s *State) InitialiseFallbackFilters(adapter int) error {
	caps, err := s.dev.FilterCaps(adapter)
	if err != nil {
		return errors.Wrapf(err, "could not query filter caps of adapter %d", adapter)
	}
	aniso := s.settings.AnisotropyLevel() > 1
	t := Build(caps, aniso)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	s.table = &t
	s.adapter = adapter
	s.caps = caps
	s.generation = id

	conlog.Logger().WithFields(logrus.Fields{
		"adapter":    adapter,
		"caps":       caps.String(),
		"anisotropy": aniso,
		"generation": id.String(),
	}).Info("fallback filters initialised")
	return nil
}

// FallbackSamplerValue returns the mode to program instead of requested.
// Before the first initialisation everything resolves to FilterNone.
func (s *State) FallbackSamplerValue(stage Stage, requested FilterMode) FilterMode {
	if s.table == nil {
		return FilterNone
	}
	if requested > FilterAnisotropic {
		requested = FilterAnisotropic
	}
	if requested == FilterAnisotropic && stage != StageMip && s.settings.ForceLinear() {
		requested = FilterLinear
	}
	return s.table.Resolve(stage, requested)
}

// SetTextureAnisotropicLevel records and programs the anisotropy level of a
// sampler if it changed. It returns the previous level.
func (s *State) SetTextureAnisotropicLevel(sampler, level uint32) uint32 {
	return s.levels.Set(sampler, level)
}

// SetSamplerFilter resolves requested and programs the result.
func (s *State) SetSamplerFilter(sampler uint32, stage Stage, requested FilterMode) error {
	m := s.FallbackSamplerValue(stage, requested)
	if err := s.dev.SetSamplerFilter(sampler, stage, m); err != nil {
		return errors.Wrapf(err, "sampler %d %v filter %v (requested %v)", sampler, stage, m, requested)
	}
	return nil
}

// Table returns a copy of the active table and whether one exists.
func (s *State) Table() (Table, bool) {
	if s.table == nil {
		return Table{}, false
	}
	return *s.table, true
}

// Adapter returns the adapter of the active table, -1 if none.
func (s *State) Adapter() int {
	return s.adapter
}

func (s *State) Caps() Caps {
	return s.caps
}

func (s *State) Generation() uuid.UUID {
	return s.generation
}

// AnisotropyLevel returns the recorded level of sampler.
func (s *State) AnisotropyLevel(sampler uint32) uint32 {
	return s.levels.Level(sampler)
}
