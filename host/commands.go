// SPDX-License-Identifier: GPL-2.0-or-later

package host

import (
	"os"

	"github.com/pkg/errors"

	"rsfix/cmd"
	"rsfix/config"
	"rsfix/conlog"
	"rsfix/cvar"
	"rsfix/cvars"
	"rsfix/renderstate"
	"rsfix/viewport"
)

func (h *Host) addCommands() error {
	for _, e := range []struct {
		name string
		f    cmd.QFunc
	}{
		{"cmdlist", h.cmds.PrintList},
		{"echo", echo},
		{"exec", h.exec},
		{"fovinfo", fovInfo},
		{"r_anisotropy_set", h.anisotropySet},
		{"r_applyfilters", h.applyFilters},
		{"r_describefilters", h.describeFilters},
		{"r_filtertable", h.filterTable},
		{"r_rebuildfilters", h.rebuildFilters},
		{"writeconfig", h.writeConfig},
	} {
		if err := h.cmds.Add(e.name, e.f); err != nil {
			return err
		}
	}
	return nil
}

func echo(a cmd.Arguments) error {
	conlog.Printf("%s\n", a.ArgumentString())
	return nil
}

func (h *Host) exec(a cmd.Arguments) error {
	args := a.Args()
	if len(args) != 2 {
		conlog.Printf("exec <filename> : execute a script file\n")
		return nil
	}
	name := args[1].String()
	b, err := os.ReadFile(name)
	if err != nil {
		conlog.Printf("couldn't exec %s\n", name)
		conlog.Logger().WithError(err).WithField("file", name).Debug("exec failed")
		return nil
	}
	conlog.Printf("execing %s\n", name)
	h.cbuf.InsertText(string(b))
	return nil
}

func fovInfo(_ cmd.Arguments) error {
	fovx, fovy := viewport.Fov(cvars.Fov.Value(),
		cvars.VidWidth.Value(), cvars.VidHeight.Value(), cvars.FovAdapt.Bool())
	conlog.Printf("%dx%d fov_x %.2f fov_y %.2f\n",
		cvars.VidWidth.Int(), cvars.VidHeight.Int(), fovx, fovy)
	return nil
}

func (h *Host) anisotropySet(a cmd.Arguments) error {
	args := a.Args()
	if len(args) != 3 {
		conlog.Printf("r_anisotropy_set <sampler> <level>\n")
		return nil
	}
	s, l := args[1].Uint32(), args[2].Uint32()
	prev := h.render.SetTextureAnisotropicLevel(s, l)
	if prev == l {
		conlog.Printf("sampler %d already at %d\n", s, l)
	} else {
		conlog.Printf("sampler %d: %d -> %d\n", s, prev, l)
	}
	return nil
}

func requestedMode(cv *cvar.Cvar) renderstate.FilterMode {
	m, err := renderstate.ParseFilterMode(cv.String())
	if err != nil {
		return renderstate.FilterNone
	}
	return m
}

// applyFilters programs the configured filters on a sampler.
func (h *Host) applyFilters(a cmd.Arguments) error {
	args := a.Args()
	if len(args) != 2 {
		conlog.Printf("r_applyfilters <sampler>\n")
		return nil
	}
	s := args[1].Uint32()
	for _, st := range []struct {
		stage renderstate.Stage
		cv    *cvar.Cvar
	}{
		{renderstate.StageMin, cvars.RMinFilter},
		{renderstate.StageMag, cvars.RMagFilter},
		{renderstate.StageMip, cvars.RMipFilter},
	} {
		if err := h.render.SetSamplerFilter(s, st.stage, requestedMode(st.cv)); err != nil {
			return err
		}
	}
	h.render.SetTextureAnisotropicLevel(s, cvars.RenderSettings{}.AnisotropyLevel())
	return nil
}

func (h *Host) describeFilters(_ cmd.Arguments) error {
	modes := []renderstate.FilterMode{
		renderstate.FilterNone,
		renderstate.FilterPoint,
		renderstate.FilterLinear,
		renderstate.FilterAnisotropic,
	}
	for i, m := range modes {
		conlog.SafePrintf("   %d: %s\n", i, m)
	}
	conlog.Printf("%d modes\n", len(modes))
	for _, st := range []struct {
		stage renderstate.Stage
		cv    *cvar.Cvar
	}{
		{renderstate.StageMin, cvars.RMinFilter},
		{renderstate.StageMag, cvars.RMagFilter},
		{renderstate.StageMip, cvars.RMipFilter},
	} {
		req := requestedMode(st.cv)
		conlog.Printf("%s: %s -> %s\n", st.stage, req, h.render.FallbackSamplerValue(st.stage, req))
	}
	return nil
}

func (h *Host) filterTable(_ cmd.Arguments) error {
	t, ok := h.render.Table()
	if !ok {
		conlog.Printf("no fallback filters\n")
		return nil
	}
	conlog.Printf("adapter %d caps %s generation %s\n",
		h.render.Adapter(), h.render.Caps(), h.render.Generation())
	conlog.SafePrintf("       none   point  linear anisotropic\n")
	for _, s := range renderstate.Stages {
		row := t[s]
		conlog.SafePrintf("%-6s %-6s %-6s %-6s %s\n", s, row[0], row[1], row[2], row[3])
	}
	return nil
}

func (h *Host) rebuildFilters(a cmd.Arguments) error {
	args := a.Args()
	adapter := cvars.RAdapter.Int()
	if len(args) > 1 {
		adapter = args[1].Int()
	}
	if err := h.render.InitialiseFallbackFilters(adapter); err != nil {
		conlog.Printf("could not rebuild the fallback filters: %v\n", err)
		return nil
	}
	conlog.Printf("fallback filters rebuilt for adapter %d\n", adapter)
	return nil
}

func (h *Host) writeConfig(a cmd.Arguments) error {
	name := h.configFile
	if args := a.Args(); len(args) > 1 {
		name = args[1].String()
	}
	if err := config.Save(name, h.cvars); err != nil {
		return errors.Wrap(err, "writeconfig")
	}
	conlog.Printf("wrote %s\n", name)
	return nil
}
