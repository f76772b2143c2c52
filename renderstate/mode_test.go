// SPDX-License-Identifier: GPL-2.0-or-later

package renderstate

import (
	"testing"
)

func TestParseFilterMode(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want FilterMode
		err  bool
	}{
		{in: "none", want: FilterNone},
		{in: "Linear", want: FilterLinear},
		{in: " ANISOTROPIC ", want: FilterAnisotropic},
		{in: "nearest", want: FilterPoint},
		{in: "3", want: FilterAnisotropic},
		{in: "4", err: true},
		{in: "trilinear", err: true},
	} {
		got, err := ParseFilterMode(tc.in)
		if tc.err {
			if err == nil {
				t.Errorf("ParseFilterMode(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFilterMode(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFilterMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseCaps(t *testing.T) {
	c, err := ParseCaps("min=pla, mag=pl ,mip=p")
	if err != nil {
		t.Fatalf("ParseCaps: %v", err)
	}
	want := Caps{
		StageMin: {Point: true, Linear: true, Anisotropic: true},
		StageMag: {Point: true, Linear: true},
		StageMip: {Point: true},
	}
	if c != want {
		t.Errorf("ParseCaps = %v, want %v", c, want)
	}
	if s := c.String(); s != "min=pla,mag=pl,mip=p" {
		t.Errorf("String() = %q", s)
	}
	for _, bad := range []string{"min", "tex=p", "min=x"} {
		if _, err := ParseCaps(bad); err == nil {
			t.Errorf("ParseCaps(%q) succeeded", bad)
		}
	}
	if c, err := ParseCaps(""); err != nil || c != (Caps{}) {
		t.Errorf("ParseCaps(\"\") = %v, %v", c, err)
	}
}

func TestSupports(t *testing.T) {
	c := Caps{StageMag: {Linear: true}}
	if !c.Supports(StageMin, FilterNone) {
		t.Errorf("none must always be supported")
	}
	if c.Supports(StageMag, FilterPoint) {
		t.Errorf("mag point reported as supported")
	}
	if !c.Supports(StageMag, FilterLinear) {
		t.Errorf("mag linear reported as unsupported")
	}
	if c.Supports(Stage(5), FilterNone) {
		t.Errorf("unknown stage reported as supported")
	}
}
