// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	log = newLogger(os.Stderr, logrus.InfoLevel)

	console io.Writer = os.Stdout

	p  = printConsole
	sp = printConsole
)

func printConsole(format string, v ...interface{}) {
	fmt.Fprintf(console, format, v...)
}

func newLogger(w io.Writer, lvl logrus.Level) *logrus.Logger {
	return &logrus.Logger{
		Out: w,
		Formatter: &logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
			DisableSorting:  true,
		},
		Hooks: make(logrus.LevelHooks),
		Level: lvl,
	}
}

// Init replaces the logger. level is any level logrus understands.
func Init(w io.Writer, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "failed to parse log level")
	}
	log = newLogger(w, lvl)
	return nil
}

// SetLevel changes the level of the current logger.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "failed to parse log level")
	}
	log.SetLevel(lvl)
	return nil
}

func Logger() *logrus.Logger {
	return log
}

// SetConsole redirects Printf and SafePrintf.
func SetConsole(w io.Writer) {
	console = w
}

func SetPrintf(f func(string, ...interface{})) {
	p = f
}

func SetSafePrintf(f func(string, ...interface{})) {
	sp = f
}

// Printf writes to the console.
func Printf(format string, v ...interface{}) {
	p(format, v...)
}

// SafePrintf writes to the console without triggering a screen update.
func SafePrintf(format string, v ...interface{}) {
	sp(format, v...)
}

// DPrintf is a developer message, only visible at debug level.
func DPrintf(format string, v ...interface{}) {
	log.Debugf(format, v...)
}
