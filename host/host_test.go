// SPDX-License-Identifier: GPL-2.0-or-later

package host

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"rsfix/conlog"
	"rsfix/cvars"
	"rsfix/renderstate"
)

var testCaps = renderstate.Caps{
	renderstate.StageMin: {Point: true, Linear: true, Anisotropic: true},
	renderstate.StageMag: {Point: true, Linear: true},
	renderstate.StageMip: {Point: true, Linear: true},
}

func captureConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	pf := func(f string, v ...interface{}) {
		fmt.Fprintf(&buf, f, v...)
	}
	conlog.SetPrintf(pf)
	conlog.SetSafePrintf(pf)
	t.Cleanup(func() {
		discard := func(string, ...interface{}) {}
		conlog.SetPrintf(discard)
		conlog.SetSafePrintf(discard)
	})
	return &buf
}

func newTestHost(t *testing.T, settings string) (*Host, *renderstate.StaticDevice) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "rsfix.yaml")
	if settings != "" {
		if err := os.WriteFile(p, []byte(settings), 0644); err != nil {
			t.Fatal(err)
		}
	}
	dev := renderstate.NewStaticDevice(testCaps)
	h, err := New(dev, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	run(t, h, "resetall")
	if err := h.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return h, dev
}

func run(t *testing.T, h *Host, text string) {
	t.Helper()
	h.AddText(text + "\n")
	if err := h.Frame(); err != nil {
		t.Fatalf("%q: %v", text, err)
	}
}

func TestInitAndAnisotropyRebuild(t *testing.T) {
	captureConsole(t)
	h, _ := newTestHost(t, "")
	rs := h.Render()
	if got := rs.FallbackSamplerValue(renderstate.StageMin, renderstate.FilterAnisotropic); got != renderstate.FilterLinear {
		t.Errorf("with r_anisotropy 1 min anisotropic = %v, want linear", got)
	}
	gen := rs.Generation()
	run(t, h, "r_anisotropy 8")
	if got := rs.FallbackSamplerValue(renderstate.StageMin, renderstate.FilterAnisotropic); got != renderstate.FilterAnisotropic {
		t.Errorf("with r_anisotropy 8 min anisotropic = %v, want anisotropic", got)
	}
	if rs.Generation() == gen {
		t.Errorf("changing r_anisotropy did not rebuild the table")
	}
}

func TestAnisotropyClamp(t *testing.T) {
	captureConsole(t)
	h, _ := newTestHost(t, "")
	run(t, h, "r_anisotropy 64")
	if v := cvars.RAnisotropy.Int(); v != maxAnisotropy {
		t.Errorf("r_anisotropy = %v, want %v", v, maxAnisotropy)
	}
	run(t, h, "r_anisotropy 0")
	if v := cvars.RAnisotropy.Int(); v != 1 {
		t.Errorf("r_anisotropy = %v, want 1", v)
	}
}

func TestFilterModeCvar(t *testing.T) {
	buf := captureConsole(t)
	h, _ := newTestHost(t, "")
	run(t, h, "r_minfilter LINEAR")
	if s := cvars.RMinFilter.String(); s != "linear" {
		t.Errorf("r_minfilter = %q, want linear", s)
	}
	run(t, h, "r_minfilter trilinear")
	if s := cvars.RMinFilter.String(); s != "anisotropic" {
		t.Errorf("r_minfilter = %q, want the default", s)
	}
	if !strings.Contains(buf.String(), "not a valid filter mode") {
		t.Errorf("no error printed: %q", buf.String())
	}
}

func TestApplyFilters(t *testing.T) {
	captureConsole(t)
	h, dev := newTestHost(t, "r_anisotropy: 4\nr_magfilter: anisotropic\nr_mipfilter: anisotropic\n")
	run(t, h, "r_applyfilters 1")
	want := renderstate.SamplerState{
		Filter: [3]renderstate.FilterMode{
			renderstate.FilterAnisotropic,
			renderstate.FilterLinear,
			renderstate.FilterLinear,
		},
		Anisotropy: 4,
	}
	if diff := deep.Equal(dev.Sampler(1), want); diff != nil {
		t.Error(diff)
	}
}

func TestForceLinear(t *testing.T) {
	captureConsole(t)
	h, _ := newTestHost(t, "r_anisotropy: 16\n")
	rs := h.Render()
	run(t, h, "r_forcelinear 1")
	if got := rs.FallbackSamplerValue(renderstate.StageMin, renderstate.FilterAnisotropic); got != renderstate.FilterLinear {
		t.Errorf("forced min anisotropic = %v, want linear", got)
	}
	run(t, h, "toggle r_forcelinear")
	if got := rs.FallbackSamplerValue(renderstate.StageMin, renderstate.FilterAnisotropic); got != renderstate.FilterAnisotropic {
		t.Errorf("min anisotropic = %v, want anisotropic", got)
	}
}

func TestAnisotropySetCommand(t *testing.T) {
	buf := captureConsole(t)
	h, dev := newTestHost(t, "")
	run(t, h, "r_anisotropy_set 0 4")
	calls := dev.Calls
	run(t, h, "r_anisotropy_set 0 4")
	if dev.Calls != calls {
		t.Errorf("repeated level reached the device")
	}
	out := buf.String()
	if !strings.Contains(out, "sampler 0: 1 -> 4") || !strings.Contains(out, "sampler 0 already at 4") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestFilterTableAndDescribe(t *testing.T) {
	buf := captureConsole(t)
	h, _ := newTestHost(t, "")
	run(t, h, "r_filtertable; r_describefilters")
	out := buf.String()
	for _, want := range []string{
		"caps min=pla,mag=pl,mip=pl",
		"mip    none   point  linear linear",
		"4 modes",
		"min: anisotropic -> linear",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestRebuildBadAdapterKeepsTable(t *testing.T) {
	buf := captureConsole(t)
	h, _ := newTestHost(t, "")
	run(t, h, "r_rebuildfilters 2")
	if !strings.Contains(buf.String(), "could not rebuild") {
		t.Errorf("no error printed: %q", buf.String())
	}
	if a := h.Render().Adapter(); a != 0 {
		t.Errorf("Adapter() = %v, want 0", a)
	}
}

func TestShutdownSaves(t *testing.T) {
	captureConsole(t)
	h, _ := newTestHost(t, "")
	run(t, h, "r_anisotropy 2")
	if err := h.Shutdown(true); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	b, err := os.ReadFile(h.configFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "r_anisotropy") || strings.Contains(string(b), "r_forcelinear") {
		t.Errorf("unexpected settings file:\n%s", b)
	}
}

func TestFovInfoAndExec(t *testing.T) {
	buf := captureConsole(t)
	h, _ := newTestHost(t, "")
	script := filepath.Join(t.TempDir(), "wide.cfg")
	if err := os.WriteFile(script, []byte("vid_width 1920\nvid_height 1080\nfovinfo\n"), 0644); err != nil {
		t.Fatal(err)
	}
	run(t, h, "exec "+script)
	if !strings.Contains(buf.String(), "1920x1080 fov_x 106.26 fov_y 73.74") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestOverrideBeforeInitRender(t *testing.T) {
	captureConsole(t)
	p := filepath.Join(t.TempDir(), "rsfix.yaml")
	if err := os.WriteFile(p, []byte("r_adapter: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	h, err := New(renderstate.NewStaticDevice(testCaps), p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	run(t, h, "resetall")
	if err := h.Init(); err == nil {
		t.Fatalf("Init with a missing adapter succeeded")
	}

	if err := h.LoadConfig(); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cvars.RAdapter.SetValue(0)
	if err := h.InitRender(); err != nil {
		t.Fatalf("InitRender: %v", err)
	}
	if a := h.Render().Adapter(); a != 0 {
		t.Errorf("Adapter() = %v, want 0", a)
	}
}
