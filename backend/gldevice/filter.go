// SPDX-License-Identifier: GPL-2.0-or-later

package gldevice

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"rsfix/renderstate"
)

// magFilter maps a mag mode to GL. GL has no unfiltered magnification,
// none is nearest.
func magFilter(m renderstate.FilterMode) int32 {
	if m >= renderstate.FilterLinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

// minFilter combines the min and mip modes into the single GL min filter.
func minFilter(minMode, mipMode renderstate.FilterMode) int32 {
	linear := minMode >= renderstate.FilterLinear
	switch mipMode {
	case renderstate.FilterNone:
		if linear {
			return gl.LINEAR
		}
		return gl.NEAREST
	case renderstate.FilterPoint:
		if linear {
			return gl.LINEAR_MIPMAP_NEAREST
		}
		return gl.NEAREST_MIPMAP_NEAREST
	}
	if linear {
		return gl.LINEAR_MIPMAP_LINEAR
	}
	return gl.NEAREST_MIPMAP_LINEAR
}

// capsFromMaxAnisotropy builds the caps of a GL context. Point and linear
// are core, anisotropic needs a max level above 1.
func capsFromMaxAnisotropy(maxAnisotropy float32) renderstate.Caps {
	aniso := maxAnisotropy > 1
	return renderstate.Caps{
		renderstate.StageMin: {Point: true, Linear: true, Anisotropic: aniso},
		renderstate.StageMag: {Point: true, Linear: true, Anisotropic: aniso},
		renderstate.StageMip: {Point: true, Linear: true},
	}
}
