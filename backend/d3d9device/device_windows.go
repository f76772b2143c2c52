// SPDX-License-Identifier: GPL-2.0-or-later

//go:build windows

package d3d9device

import (
	"github.com/gonutz/d3d9"
	"github.com/pkg/errors"

	"rsfix/renderstate"
)

// Device is a renderstate.Device on top of a Direct3D 9 device.
type Device struct {
	d3d *d3d9.Direct3D
	dev *d3d9.Device
}

func New(d3d *d3d9.Direct3D, dev *d3d9.Device) *Device {
	return &Device{d3d: d3d, dev: dev}
}

func (d *Device) FilterCaps(adapter int) (renderstate.Caps, error) {
	if adapter < 0 || uint(adapter) >= d.d3d.GetAdapterCount() {
		return renderstate.Caps{}, errors.Errorf("adapter %d does not exist", adapter)
	}
	caps, err := d.d3d.GetDeviceCaps(uint(adapter), d3d9.DEVTYPE_HAL)
	if err != nil {
		return renderstate.Caps{}, errors.Wrap(err, "GetDeviceCaps")
	}
	return CapsFromTextureFilterCaps(caps.TextureFilterCaps), nil
}

func (d *Device) SetSamplerFilter(sampler uint32, s renderstate.Stage, m renderstate.FilterMode) error {
	err := d.dev.SetSamplerState(sampler, d3d9.SAMPLERSTATETYPE(samplerStateOf(s)), texFilter(m))
	return errors.Wrap(err, "SetSamplerState")
}

func (d *Device) SetSamplerAnisotropy(sampler, level uint32) error {
	err := d.dev.SetSamplerState(sampler, d3d9.SAMP_MAXANISOTROPY, level)
	return errors.Wrap(err, "SetSamplerState")
}
