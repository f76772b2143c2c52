// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"rsfix/cvar"
)

var (
	Fov          *cvar.Cvar
	FovAdapt     *cvar.Cvar
	LogLevel     *cvar.Cvar
	RAdapter     *cvar.Cvar
	RAnisotropy  *cvar.Cvar
	RForceLinear *cvar.Cvar
	RMagFilter   *cvar.Cvar
	RMinFilter   *cvar.Cvar
	RMipFilter   *cvar.Cvar
	VidHeight    *cvar.Cvar
	VidWidth     *cvar.Cvar
)

func init() {
	Fov = cvar.MustRegister("fov", "90", cvar.ARCHIVE)
	FovAdapt = cvar.MustRegister("fov_adapt", "1", cvar.ARCHIVE)
	LogLevel = cvar.MustRegister("log_level", "info", cvar.ARCHIVE)
	RAdapter = cvar.MustRegister("r_adapter", "0", cvar.ARCHIVE)
	RAnisotropy = cvar.MustRegister("r_anisotropy", "1", cvar.ARCHIVE|cvar.NOTIFY)
	// debug aid, never saved
	RForceLinear = cvar.MustRegister("r_forcelinear", "0", cvar.NOTIFY)
	RMagFilter = cvar.MustRegister("r_magfilter", "linear", cvar.ARCHIVE)
	RMinFilter = cvar.MustRegister("r_minfilter", "anisotropic", cvar.ARCHIVE)
	RMipFilter = cvar.MustRegister("r_mipfilter", "linear", cvar.ARCHIVE)
	VidHeight = cvar.MustRegister("vid_height", "480", cvar.ARCHIVE)
	VidWidth = cvar.MustRegister("vid_width", "640", cvar.ARCHIVE)
}

// RenderSettings exposes the render cvars to the render state.
type RenderSettings struct{}

func (RenderSettings) AnisotropyLevel() uint32 {
	v := RAnisotropy.Int()
	if v < 1 {
		return 1
	}
	return uint32(v)
}

func (RenderSettings) ForceLinear() bool {
	return RForceLinear.Bool()
}
