// SPDX-License-Identifier: GPL-2.0-or-later

// Package host ties the render state to the console: cvars, commands and
// the settings file.
package host

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"rsfix/cbuf"
	"rsfix/cmd"
	"rsfix/config"
	"rsfix/conlog"
	"rsfix/cvar"
	"rsfix/cvars"
	"rsfix/math"
	"rsfix/renderstate"
)

const maxAnisotropy = 16

type Host struct {
	cvars      *cvar.Cvars
	cmds       *cmd.Commands
	cbuf       cbuf.CommandBuffer
	render     *renderstate.State
	configFile string
}

// New creates a host for dev. The settings file is read by Init.
func New(dev renderstate.Device, configFile string) (*Host, error) {
	h := &Host{
		cvars:      cvar.Default(),
		cmds:       cmd.New(),
		render:     renderstate.NewState(dev, cvars.RenderSettings{}),
		configFile: configFile,
	}
	if err := h.cvars.AddCommands(h.cmds); err != nil {
		return nil, err
	}
	if err := h.addCommands(); err != nil {
		return nil, err
	}
	h.cbuf.SetCommandExecutors([]cbuf.Efunc{
		func(_ *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
			return h.cmds.Execute(a)
		},
		func(_ *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
			return h.cvars.Execute(a)
		},
	})
	h.setCallbacks()
	return h, nil
}

func (h *Host) setCallbacks() {
	cvars.RAnisotropy.SetCallback(h.anisotropyCallback)
	cvars.RAdapter.SetCallback(func(*cvar.Cvar) { h.rebuild() })
	for _, cv := range []*cvar.Cvar{cvars.RMinFilter, cvars.RMagFilter, cvars.RMipFilter} {
		cv.SetCallback(filterModeCallback)
	}
	cvars.LogLevel.SetCallback(func(cv *cvar.Cvar) {
		if err := conlog.SetLevel(cv.String()); err != nil {
			conlog.Printf("\"%s\" is not a valid log level\n", cv.String())
		}
	})
}

func (h *Host) anisotropyCallback(cv *cvar.Cvar) {
	v := math.Clamp(1, cv.Value(), maxAnisotropy)
	if v != cv.Value() {
		cv.SetValue(v)
		return
	}
	// the table depends on whether anisotropy is above 1
	h.rebuild()
}

func filterModeCallback(cv *cvar.Cvar) {
	m, err := renderstate.ParseFilterMode(cv.String())
	if err != nil {
		conlog.Printf("\"%s\" is not a valid filter mode for %s\n", cv.String(), cv.Name())
		cv.Reset()
		return
	}
	if cv.String() != m.String() {
		cv.SetByString(m.String())
	}
}

// rebuild refreshes the fallback table if one was built before.
func (h *Host) rebuild() {
	if h.render.Adapter() < 0 {
		return
	}
	if err := h.render.InitialiseFallbackFilters(cvars.RAdapter.Int()); err != nil {
		conlog.Logger().WithError(err).Warn("keeping the previous fallback filters")
		conlog.Printf("could not rebuild the fallback filters: %v\n", err)
	}
}

// Init reads the settings file and builds the fallback table for the
// configured adapter.
func (h *Host) Init() error {
	if err := h.LoadConfig(); err != nil {
		return err
	}
	return h.InitRender()
}

// LoadConfig applies the settings file. Cvar changes made after it and
// before InitRender do not trigger table rebuilds.
func (h *Host) LoadConfig() error {
	_, err := config.Load(h.configFile, h.cvars)
	return err
}

// InitRender builds the first fallback table for r_adapter.
func (h *Host) InitRender() error {
	adapter := cvars.RAdapter.Int()
	if err := h.render.InitialiseFallbackFilters(adapter); err != nil {
		return errors.Wrap(err, "host init")
	}
	conlog.Logger().WithFields(logrus.Fields{
		"adapter":    adapter,
		"anisotropy": cvars.RAnisotropy.Int(),
	}).Debug("host initialised")
	return nil
}

// AddText queues console text.
func (h *Host) AddText(text string) {
	h.cbuf.AddText(text)
}

// Frame runs the queued console commands.
func (h *Host) Frame() error {
	return h.cbuf.Execute()
}

// Idle reports whether no console text is waiting.
func (h *Host) Idle() bool {
	return h.cbuf.Empty()
}

// Shutdown writes the settings file.
func (h *Host) Shutdown(save bool) error {
	if !save {
		return nil
	}
	return config.Save(h.configFile, h.cvars)
}

func (h *Host) Render() *renderstate.State {
	return h.render
}
