// SPDX-License-Identifier: GPL-2.0-or-later

// Package d3d9device drives sampler filtering of a Direct3D 9 device.
package d3d9device

import (
	"rsfix/renderstate"
)

// D3DCAPS9.TextureFilterCaps bits, declared here for the same reason as the
// sampler state types below.
const (
	ptFilterCapsMinFPoint       = 0x00000100
	ptFilterCapsMinFLinear      = 0x00000200
	ptFilterCapsMinFAnisotropic = 0x00000400
	ptFilterCapsMipFPoint       = 0x00010000
	ptFilterCapsMipFLinear      = 0x00020000
	ptFilterCapsMagFPoint       = 0x01000000
	ptFilterCapsMagFLinear      = 0x02000000
	ptFilterCapsMagFAnisotropic = 0x04000000
)

// D3DSAMPLERSTATETYPE values of the filter states. gonutz/d3d9 only builds on
// windows, so this portable file cannot use its SAMP_* constants.
const (
	SampMagFilter     = 5
	SampMinFilter     = 6
	SampMipFilter     = 7
	SampMaxAnisotropy = 10
)

// CapsFromTextureFilterCaps decodes D3DCAPS9.TextureFilterCaps.
func CapsFromTextureFilterCaps(bits uint32) renderstate.Caps {
	has := func(b uint32) bool { return bits&b != 0 }
	var c renderstate.Caps
	c[renderstate.StageMin] = renderstate.StageCaps{
		Point:       has(ptFilterCapsMinFPoint),
		Linear:      has(ptFilterCapsMinFLinear),
		Anisotropic: has(ptFilterCapsMinFAnisotropic),
	}
	c[renderstate.StageMag] = renderstate.StageCaps{
		Point:       has(ptFilterCapsMagFPoint),
		Linear:      has(ptFilterCapsMagFLinear),
		Anisotropic: has(ptFilterCapsMagFAnisotropic),
	}
	c[renderstate.StageMip] = renderstate.StageCaps{
		Point:  has(ptFilterCapsMipFPoint),
		Linear: has(ptFilterCapsMipFLinear),
	}
	return c
}

// StageOf maps a filter sampler state to its stage.
func StageOf(samplerState uint32) (renderstate.Stage, bool) {
	switch samplerState {
	case SampMinFilter:
		return renderstate.StageMin, true
	case SampMagFilter:
		return renderstate.StageMag, true
	case SampMipFilter:
		return renderstate.StageMip, true
	}
	return 0, false
}

func samplerStateOf(s renderstate.Stage) uint32 {
	switch s {
	case renderstate.StageMin:
		return SampMinFilter
	case renderstate.StageMag:
		return SampMagFilter
	}
	return SampMipFilter
}

// D3DTEXTUREFILTERTYPE shares its first four values with FilterMode.
func texFilter(m renderstate.FilterMode) uint32 {
	return uint32(m)
}

// SamplerValue is the hook for a SetSamplerState call: filter states get
// their value replaced by the fallback, every other state passes through.
func SamplerValue(rs *renderstate.State, samplerState, value uint32) uint32 {
	stage, ok := StageOf(samplerState)
	if !ok {
		return value
	}
	return texFilter(rs.FallbackSamplerValue(stage, renderstate.FilterMode(min(value, 255))))
}
