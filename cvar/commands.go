// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"strings"

	"rsfix/cmd"
	"rsfix/conlog"
)

// Execute handles a line whose first argument names a cvar: print it or set
// it. It reports false if no such cvar exists.
func (c *Cvars) Execute(a cmd.Arguments) (bool, error) {
	args := a.Args()
	if len(args) == 0 {
		return false, nil
	}
	cv, ok := c.Get(args[0].String())
	if !ok {
		return false, nil
	}
	if len(args) == 1 {
		conlog.Printf("\"%s\" is \"%s\"\n", cv.Name(), cv.String())
		return true, nil
	}
	c.set(cv, args[1].String())
	return true, nil
}

func (c *Cvars) set(cv *Cvar, v string) {
	old := cv.String()
	cv.SetByString(v)
	if cv.Notify() && old != cv.String() {
		conlog.Logger().WithField("cvar", cv.Name()).Infof("changed to %q", cv.String())
	}
}

// AddCommands registers the cvar console commands.
func (c *Cvars) AddCommands(cmds *cmd.Commands) error {
	for _, e := range []struct {
		name string
		f    cmd.QFunc
	}{
		{"cvarlist", c.list},
		{"inc", c.inc},
		{"reset", c.reset},
		{"resetall", c.resetAll},
		{"set", c.setCmd(cmds, false)},
		{"seta", c.setCmd(cmds, true)},
		{"toggle", c.toggle},
	} {
		if err := cmds.Add(e.name, e.f); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cvars) setCmd(cmds *cmd.Commands, archive bool) cmd.QFunc {
	usage := "set <cvar> <value>\n"
	if archive {
		usage = "seta <cvar> <value>\n"
	}
	return func(a cmd.Arguments) error {
		args := a.Args()[1:]
		if len(args) < 2 {
			conlog.Printf("%s", usage)
			return nil
		}
		name := args[0].String()
		if cmds.Exists(name) {
			conlog.Printf("%s conflicts with a command\n", name)
			return nil
		}
		cv, ok := c.Get(name)
		if ok {
			c.set(cv, args[1].String())
		} else {
			cv = c.create(name, args[1].String())
			cv.user = true
		}
		if archive {
			cv.archive = true
		}
		return nil
	}
}

func (c *Cvars) toggle(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("toggle <cvar> : toggle cvar\n")
		return nil
	}
	if cv, ok := c.Get(args[0].String()); ok {
		cv.Toggle()
	} else {
		conlog.Printf("toggle: variable %v not found\n", args[0].String())
	}
	return nil
}

func (c *Cvars) inc(a cmd.Arguments) error {
	args := a.Args()[1:]
	var amount float32 = 1
	switch len(args) {
	case 1:
	case 2:
		amount = args[1].Float32()
	default:
		conlog.Printf("inc <cvar> [amount] : increment cvar\n")
		return nil
	}
	if cv, ok := c.Get(args[0].String()); ok {
		cv.SetValue(cv.Value() + amount)
	} else {
		conlog.Printf("inc: variable %v not found\n", args[0].String())
	}
	return nil
}

func (c *Cvars) reset(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("reset <cvar> : reset cvar to default\n")
		return nil
	}
	if cv, ok := c.Get(args[0].String()); ok {
		cv.Reset()
	} else {
		conlog.Printf("reset: variable %v not found\n", args[0].String())
	}
	return nil
}

func (c *Cvars) resetAll(_ cmd.Arguments) error {
	for _, cv := range c.all {
		cv.Reset()
	}
	return nil
}

func (c *Cvars) list(a cmd.Arguments) error {
	args := a.Args()
	part := ""
	if len(args) > 1 {
		part = args[1].String()
	}
	count := 0
	for _, v := range c.Sorted() {
		if !strings.HasPrefix(v.Name(), part) {
			continue
		}
		ar := " "
		if v.Archive() {
			ar = "*"
		}
		n := " "
		if v.Notify() {
			n = "s"
		}
		conlog.SafePrintf("%s%s %s \"%s\"\n", ar, n, v.Name(), v.String())
		count++
	}
	conlog.SafePrintf("%v cvars\n", count)
	return nil
}
