// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"

	cmdl "rsfix/commandline"
	"rsfix/conlog"
	"rsfix/cvars"
	"rsfix/host"
	"rsfix/renderstate"
)

func run() error {
	caps, err := renderstate.ParseCaps(cmdl.Caps())
	if err != nil {
		return errors.Wrap(err, "-caps")
	}
	dev := renderstate.NewStaticDevice(caps)
	if a := cmdl.Adapter(); a >= dev.Adapters {
		dev.Adapters = a + 1
	}

	h, err := host.New(dev, cmdl.ConfigFile())
	if err != nil {
		return err
	}
	if err := h.LoadConfig(); err != nil {
		return err
	}

	// the command line wins over the settings file
	if l := cmdl.LogLevel(); l != "" {
		cvars.LogLevel.SetByString(l)
	}
	if a := cmdl.Adapter(); a >= 0 {
		cvars.RAdapter.SetValue(float32(a))
	}
	if l, ok := cmdl.Anisotropy(); ok {
		cvars.RAnisotropy.SetValue(float32(l))
	}
	if w := cmdl.Width(); w > 0 {
		cvars.VidWidth.SetByString(strconv.Itoa(w))
	}
	if hg := cmdl.Height(); hg > 0 {
		cvars.VidHeight.SetByString(strconv.Itoa(hg))
	}

	if err := h.InitRender(); err != nil {
		return err
	}

	text := cmdl.ConsoleCommands(flag.Args())
	if text == "" {
		text = "r_filtertable\nr_describefilters\n"
	}
	h.AddText(text)
	for {
		if err := h.Frame(); err != nil {
			return err
		}
		if h.Idle() {
			break
		}
	}
	return h.Shutdown(!cmdl.NoSave())
}

func main() {
	flag.Parse()
	level := "info"
	if l := cmdl.LogLevel(); l != "" {
		level = l
	}
	if err := conlog.Init(os.Stderr, level); err != nil {
		conlog.Logger().WithError(err).Warn("keeping the default log level")
	}
	if err := run(); err != nil {
		conlog.Logger().WithError(err).Error("rsfix failed")
		os.Exit(1)
	}
}
