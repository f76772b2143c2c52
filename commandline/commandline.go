// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

var (
	adapter    int
	anisotropy = boolInt{false, 16}
	caps       string
	configFile string
	height     int
	logLevel   string
	noSave     bool
	width      int
)

// boolInt is a flag usable as "-flag" or "-flag=10". "-flag 10" is not
// possible as the flag package would not know if 10 belongs to the flag.
type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = true
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

func init() {
	flag.IntVar(&adapter, "adapter", -1, "adapter index, negative is unset")
	flag.Var(&anisotropy, "anisotropy", "force anisotropic filtering, optional level")
	flag.StringVar(&caps, "caps", "min=pla,mag=pla,mip=pl", "filter caps of the static device, stage=flags with p(oint) l(inear) a(nisotropic)")
	flag.StringVar(&configFile, "config", "rsfix.yaml", "settings file")
	flag.IntVar(&height, "height", -1, "screen height, negative is unset")
	flag.StringVar(&logLevel, "loglevel", "", "log level, overrides the settings file")
	flag.BoolVar(&noSave, "nosave", false, "do not write the settings file on exit")
	flag.IntVar(&width, "width", -1, "screen width, negative is unset")
}

func Adapter() int {
	return adapter
}

// Anisotropy returns the requested level and whether the flag was given.
func Anisotropy() (int, bool) {
	return anisotropy.num, anisotropy.set
}

func Caps() string {
	return caps
}

func ConfigFile() string {
	return configFile
}

func Height() int {
	return height
}

func LogLevel() string {
	return logLevel
}

func NoSave() bool {
	return noSave
}

func Width() int {
	return width
}

// ConsoleCommands turns the non flag arguments into console text. Every
// argument starting with '+' begins a new command, the following
// arguments up to the next '+' are its parameters.
func ConsoleCommands(args []string) string {
	var b strings.Builder
	inCmd := false
	for _, a := range args {
		switch {
		case strings.HasPrefix(a, "+"):
			if inCmd {
				b.WriteByte('\n')
			}
			b.WriteString(a[1:])
			inCmd = true
		case inCmd:
			b.WriteByte(' ')
			if strings.ContainsAny(a, " \t;") {
				b.WriteString(`"` + a + `"`)
			} else {
				b.WriteString(a)
			}
		}
	}
	if inCmd {
		b.WriteByte('\n')
	}
	return b.String()
}
