// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"testing"

	"github.com/pkg/errors"
)

func TestCommands(t *testing.T) {
	c := New()
	var got []QArg
	if err := c.Add("R_Rebuild", func(a Arguments) error {
		got = a.Args()
		return nil
	}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Add("r_rebuild", func(Arguments) error { return nil }); err == nil {
		t.Errorf("Add accepted a duplicate name")
	}
	if !c.Exists("r_REBUILD") {
		t.Errorf("Exists is not case insensitive")
	}
	ok, err := c.Execute(Parse("r_rebuild 1"))
	if !ok || err != nil {
		t.Fatalf("Execute = %v, %v", ok, err)
	}
	if len(got) != 2 || got[1].Int() != 1 {
		t.Errorf("command got %v", got)
	}
	if ok, _ := c.Execute(Parse("unknown")); ok {
		t.Errorf("Execute(unknown) reported success")
	}
}

func TestCommandsError(t *testing.T) {
	c := New()
	Must(c.Add("fail", func(Arguments) error { return errors.New("boom") }))
	ok, err := c.Execute(Parse("fail"))
	if ok || err == nil {
		t.Errorf("Execute(fail) = %v, %v", ok, err)
	}
}

func TestList(t *testing.T) {
	c := New()
	Must(c.Add("b", func(Arguments) error { return nil }))
	Must(c.Add("a", func(Arguments) error { return nil }))
	l := c.List()
	if len(l) != 2 || l[0] != "a" || l[1] != "b" {
		t.Errorf("List() = %v", l)
	}
}
