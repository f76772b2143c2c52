// SPDX-License-Identifier: GPL-2.0-or-later

package renderstate

import (
	"github.com/pkg/errors"
)

// Device is the graphics backend the render state talks to.
type Device interface {
	// FilterCaps queries the filtering capabilities of an adapter.
	FilterCaps(adapter int) (Caps, error)
	// SetSamplerFilter programs an already resolved mode.
	SetSamplerFilter(sampler uint32, s Stage, m FilterMode) error
	// SetSamplerAnisotropy programs the maximum anisotropy of a sampler.
	SetSamplerAnisotropy(sampler, level uint32) error
}

// SamplerState is what a StaticDevice remembers per sampler.
type SamplerState struct {
	Filter     [numStages]FilterMode
	Anisotropy uint32
}

// StaticDevice is a Device without hardware. Every adapter reports the
// same caps and programmed states are kept in memory.
type StaticDevice struct {
	Caps     Caps
	Adapters int
	// Calls counts all successful Set* calls.
	Calls    int
	samplers map[uint32]*SamplerState
}

func NewStaticDevice(caps Caps) *StaticDevice {
	return &StaticDevice{
		Caps:     caps,
		Adapters: 1,
		samplers: make(map[uint32]*SamplerState),
	}
}

func (d *StaticDevice) FilterCaps(adapter int) (Caps, error) {
	if adapter < 0 || adapter >= d.Adapters {
		return Caps{}, errors.Errorf("adapter %d out of range [0,%d)", adapter, d.Adapters)
	}
	return d.Caps, nil
}

func (d *StaticDevice) sampler(i uint32) *SamplerState {
	s, ok := d.samplers[i]
	if !ok {
		s = &SamplerState{Anisotropy: DefaultAnisotropy}
		d.samplers[i] = s
	}
	return s
}

func (d *StaticDevice) SetSamplerFilter(sampler uint32, s Stage, m FilterMode) error {
	if s >= numStages {
		return errors.Errorf("unknown stage %v", s)
	}
	if !d.Caps.Supports(s, m) {
		return errors.Errorf("%v filter %v not supported", s, m)
	}
	d.sampler(sampler).Filter[s] = m
	d.Calls++
	return nil
}

func (d *StaticDevice) SetSamplerAnisotropy(sampler, level uint32) error {
	d.sampler(sampler).Anisotropy = level
	d.Calls++
	return nil
}

// Sampler returns the programmed state of a sampler.
func (d *StaticDevice) Sampler(i uint32) SamplerState {
	return *d.sampler(i)
}
