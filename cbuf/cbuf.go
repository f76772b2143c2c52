// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"strings"

	"rsfix/cmd"
	"rsfix/conlog"
)

// Efunc tries to handle a parsed line and reports whether it did.
type Efunc func(*CommandBuffer, cmd.Arguments) (bool, error)

// CommandBuffer holds console text that still needs to be executed.
type CommandBuffer struct {
	buf string
	// set by the wait command, following commands run on the next Execute
	wait      bool
	executors []Efunc
}

func (c *CommandBuffer) SetCommandExecutors(e []Efunc) {
	c.executors = e
}

func (c *CommandBuffer) AddText(text string) {
	c.buf += text
}

// InsertText puts text in front of everything not yet executed.
func (c *CommandBuffer) InsertText(text string) {
	c.buf = text + "\n" + c.buf
}

// Wait postpones the remaining buffer to the next Execute.
func (c *CommandBuffer) Wait() {
	c.wait = true
}

func (c *CommandBuffer) Empty() bool {
	return len(c.buf) == 0
}

// nextLine cuts the first command off the buffer. Commands end at a
// newline or at a ';' outside of quotes.
func (c *CommandBuffer) nextLine() string {
	quote := false
	i := 0
LineLoop:
	for ; i < len(c.buf); i++ {
		switch c.buf[i] {
		case '"':
			quote = !quote
		case ';':
			if !quote {
				break LineLoop
			}
		case '\n':
			break LineLoop
		}
	}
	line := c.buf[:i]
	if i < len(c.buf) {
		i++
	}
	c.buf = c.buf[i:]
	return line
}

// Execute runs buffered commands until the buffer is empty or a wait
// command was hit. The first executor error stops execution, the rest of
// the buffer is kept.
func (c *CommandBuffer) Execute() error {
	for len(c.buf) != 0 {
		line := c.nextLine()
		if strings.TrimSpace(line) == "wait" {
			c.Wait()
		} else if err := c.execute(line); err != nil {
			return err
		}
		if c.wait {
			c.wait = false
			return nil
		}
	}
	return nil
}

func (c *CommandBuffer) execute(s string) error {
	a := cmd.Parse(s)
	args := a.Args()
	if len(args) == 0 {
		return nil
	}
	for _, e := range c.executors {
		if ok, err := e(c, a); err != nil {
			return err
		} else if ok {
			return nil
		}
	}
	name := args[0].String()
	conlog.Logger().WithField("command", name).Debug("unknown command")
	conlog.Printf("Unknown command \"%s\"\n", name)
	return nil
}
