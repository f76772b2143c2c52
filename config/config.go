// SPDX-License-Identifier: GPL-2.0-or-later

// Package config moves cvar values from and to a settings file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"rsfix/conlog"
	"rsfix/cvar"
)

const DefaultFile = "rsfix.yaml"

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	return v
}

// Load applies every key of the settings file that names a registered cvar.
// A missing file is not an error. It returns the number of applied keys.
func Load(path string, cvars *cvar.Cvars) (int, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		conlog.Logger().WithField("file", path).Debug("no settings file")
		return 0, nil
	}
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return 0, errors.Wrapf(err, "could not read settings from %s", path)
	}
	n := 0
	for _, k := range v.AllKeys() {
		cv, ok := cvars.Get(k)
		if !ok {
			conlog.Logger().WithField("key", k).Warn("settings file names an unknown cvar")
			continue
		}
		cv.SetByString(strings.TrimSpace(v.GetString(k)))
		n++
	}
	conlog.Logger().WithField("file", path).Infof("applied %d settings", n)
	return n, nil
}

// Save writes all archived cvars to path.
func Save(path string, cvars *cvar.Cvars) error {
	v := newViper(path)
	for _, cv := range cvars.Sorted() {
		if cv.Archive() {
			v.Set(cv.Name(), cv.String())
		}
	}
	if err := v.WriteConfigAs(path); err != nil {
		return errors.Wrapf(err, "could not write settings to %s", path)
	}
	return nil
}
