// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/pkg/errors"

	"rsfix/cmd"
)

func TestWait(t *testing.T) {
	c := CommandBuffer{}
	runCount := 0
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			runCount++
			return true, nil
		}})
	c.AddText("wait\n")
	c.AddText("test\n")
	c.AddText("test\n")
	c.AddText("wait\n")
	c.AddText("test\n")
	c.Execute()
	if runCount != 0 {
		t.Errorf("runCount=%v, want %v", runCount, 0)
	}
	c.Execute()
	if runCount != 2 {
		t.Errorf("runCount=%v, want %v", runCount, 2)
	}
	c.Execute()
	if runCount != 3 {
		t.Errorf("runCount=%v, want %v", runCount, 3)
	}
}

func TestWaitFromCommand(t *testing.T) {
	c := CommandBuffer{}
	var got []string
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			got = append(got, a.Full())
			if a.Full() == "pause" {
				cb.Wait()
			}
			return true, nil
		}})
	c.AddText("one; pause; two\n")
	if err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if diff := deep.Equal(got, []string{"one", "pause"}); diff != nil {
		t.Error(diff)
	}
	if err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if diff := deep.Equal(got, []string{"one", "pause", "two"}); diff != nil {
		t.Error(diff)
	}
}

func TestSplit(t *testing.T) {
	c := CommandBuffer{}
	var got []string
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			got = append(got, a.Full())
			return true, nil
		}})
	c.AddText(`set r_minfilter linear; r_rebuildfilters` + "\n")
	c.AddText(`echo "a;b"` + "\n\n")
	c.InsertText("first")
	if err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := []string{"first", "set r_minfilter linear", "r_rebuildfilters", `echo "a;b"`}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
	if !c.Empty() {
		t.Errorf("buffer not empty after Execute")
	}
}

func TestExecutorOrderAndError(t *testing.T) {
	c := CommandBuffer{}
	var order []int
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			order = append(order, 1)
			if a.Argv(0).String() == "fail" {
				return false, errors.New("fail")
			}
			return false, nil
		},
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			order = append(order, 2)
			return true, nil
		}})
	c.AddText("ok\nfail\nlater\n")
	if err := c.Execute(); err == nil {
		t.Errorf("Execute did not return the executor error")
	}
	if diff := deep.Equal(order, []int{1, 2, 1}); diff != nil {
		t.Error(diff)
	}
	if c.Empty() {
		t.Errorf("buffer lost the commands after the failure")
	}
}
