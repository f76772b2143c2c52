// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Flag uint64

const (
	NONE    Flag = 0
	ARCHIVE Flag = 1      // saved to the settings file
	NOTIFY  Flag = 1 << 1 // changes are logged
	ROM     Flag = 1 << 6 // read only
	USER    Flag = 1 << 17
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	archive  bool
	notify   bool
	rom      bool
	user     bool
	callback CallbackFunc
	name     string
	// stringValue is the truth, value the derived one
	stringValue  string
	value        float32
	defaultValue string
}

func (cv *Cvar) Archive() bool {
	return cv.archive
}

func (cv *Cvar) Notify() bool {
	return cv.notify
}

func (cv *Cvar) UserDefined() bool {
	return cv.user
}

func (cv *Cvar) SetCallback(cb CallbackFunc) {
	cv.callback = cb
}

func (cv *Cvar) SetByString(s string) {
	if cv.rom {
		return
	}
	cv.stringValue = s
	pf, _ := strconv.ParseFloat(strings.TrimSpace(s), 32)
	cv.value = float32(pf)
	if cv.callback != nil {
		cv.callback(cv)
	}
}

func (cv *Cvar) Reset() {
	cv.SetByString(cv.defaultValue)
}

func (cv *Cvar) String() string {
	return cv.stringValue
}

func (cv *Cvar) Default() string {
	return cv.defaultValue
}

func (cv *Cvar) Name() string {
	return cv.name
}

func (cv *Cvar) Value() float32 {
	return cv.value
}

// Int truncates the value.
func (cv *Cvar) Int() int {
	return int(cv.value)
}

func (cv *Cvar) SetValue(value float32) {
	if float32(int(value)) == value {
		cv.SetByString(strconv.FormatInt(int64(value), 10))
	} else {
		cv.SetByString(strconv.FormatFloat(float64(value), 'f', -1, 32))
	}
}

func (cv *Cvar) Toggle() {
	if cv.Bool() {
		cv.SetByString("0")
	} else {
		cv.SetByString("1")
	}
}

func (cv *Cvar) Bool() bool {
	return cv.stringValue != "0" && cv.stringValue != ""
}

// Cvars is a set of console variables addressed by lower case name.
type Cvars struct {
	all    []*Cvar
	byName map[string]*Cvar
}

func New() *Cvars {
	return &Cvars{byName: make(map[string]*Cvar)}
}

func (c *Cvars) All() []*Cvar {
	return c.all
}

// Sorted returns all cvars ordered by name.
func (c *Cvars) Sorted() []*Cvar {
	r := make([]*Cvar, len(c.all))
	copy(r, c.all)
	sort.Slice(r, func(i, j int) bool { return r[i].name < r[j].name })
	return r
}

func (c *Cvars) Get(name string) (*Cvar, bool) {
	cv, ok := c.byName[strings.ToLower(name)]
	return cv, ok
}

func (c *Cvars) create(name, value string) *Cvar {
	cv := &Cvar{name: strings.ToLower(name), defaultValue: value}
	cv.SetByString(value)
	c.all = append(c.all, cv)
	c.byName[cv.name] = cv
	return cv
}

func (c *Cvars) Register(name, value string, flags Flag) (*Cvar, error) {
	if _, ok := c.Get(name); ok {
		return nil, errors.Errorf("can't register variable %s, already defined", name)
	}

	cv := c.create(name, value)
	cv.archive = flags&ARCHIVE != 0
	cv.notify = flags&NOTIFY != 0
	cv.user = flags&USER != 0
	// ROM last, the initial value has to be set
	cv.rom = flags&ROM != 0
	return cv, nil
}

func (c *Cvars) MustRegister(n, v string, flags Flag) *Cvar {
	cv, err := c.Register(n, v, flags)
	if err != nil {
		panic(err.Error())
	}
	return cv
}

var defaultCvars = New()

// Default returns the package level cvar set.
func Default() *Cvars {
	return defaultCvars
}

func MustRegister(n, v string, flags Flag) *Cvar {
	return defaultCvars.MustRegister(n, v, flags)
}
