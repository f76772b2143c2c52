// SPDX-License-Identifier: GPL-2.0-or-later

// Package gldevice implements renderstate.Device with GL sampler objects.
package gldevice

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"

	"rsfix/renderstate"
)

type sampler struct {
	id  uint32
	min renderstate.FilterMode
	mip renderstate.FilterMode
}

// Device owns one sampler object per texture unit. A GL context only has
// a single adapter, 0.
type Device struct {
	samplers      map[uint32]*sampler
	maxAnisotropy float32
}

func New() *Device {
	return &Device{
		samplers:      make(map[uint32]*sampler),
		maxAnisotropy: 1,
	}
}

func (d *Device) FilterCaps(adapter int) (renderstate.Caps, error) {
	if adapter != 0 {
		return renderstate.Caps{}, errors.Errorf("gl has no adapter %d", adapter)
	}
	mainthread.Call(func() {
		gl.GetFloatv(gl.MAX_TEXTURE_MAX_ANISOTROPY, &d.maxAnisotropy)
	})
	return capsFromMaxAnisotropy(d.maxAnisotropy), nil
}

// MaxAnisotropy is the limit reported by the last FilterCaps.
func (d *Device) MaxAnisotropy() float32 {
	return d.maxAnisotropy
}

// unit returns the sampler bound to texture unit u, creating it if needed.
// Must run on the main thread.
func (d *Device) unit(u uint32) *sampler {
	s, ok := d.samplers[u]
	if !ok {
		s = &sampler{mip: renderstate.FilterLinear, min: renderstate.FilterPoint}
		gl.GenSamplers(1, &s.id)
		gl.BindSampler(u, s.id)
		d.samplers[u] = s
	}
	return s
}

func (d *Device) SetSamplerFilter(u uint32, st renderstate.Stage, m renderstate.FilterMode) error {
	if !m.Valid() {
		return errors.Errorf("invalid filter mode %v", m)
	}
	mainthread.Call(func() {
		s := d.unit(u)
		switch st {
		case renderstate.StageMag:
			gl.SamplerParameteri(s.id, gl.TEXTURE_MAG_FILTER, magFilter(m))
			return
		case renderstate.StageMin:
			s.min = m
		case renderstate.StageMip:
			s.mip = m
		}
		gl.SamplerParameteri(s.id, gl.TEXTURE_MIN_FILTER, minFilter(s.min, s.mip))
	})
	return nil
}

func (d *Device) SetSamplerAnisotropy(u, level uint32) error {
	v := float32(level)
	if v > d.maxAnisotropy {
		v = d.maxAnisotropy
	}
	if v < 1 {
		v = 1
	}
	mainthread.Call(func() {
		gl.SamplerParameterf(d.unit(u).id, gl.TEXTURE_MAX_ANISOTROPY, v)
	})
	return nil
}

// Release deletes all sampler objects.
func (d *Device) Release() {
	mainthread.CallNonBlock(func() {
		for u, s := range d.samplers {
			gl.BindSampler(u, 0)
			gl.DeleteSamplers(1, &s.id)
		}
		d.samplers = make(map[uint32]*sampler)
	})
}
