// SPDX-License-Identifier: GPL-2.0-or-later

// Package viewport derives view angles for screens that are not 4:3.
package viewport

import (
	"github.com/chewxy/math32"

	qmath "rsfix/math"
)

const (
	MinFov = 1
	MaxFov = 179

	// the aspect the configured fov is meant for
	baseAspect = float32(3) / 4
)

// AdaptFovx widens or narrows a 4:3 horizontal fov so the vertical fov
// stays the same on a width x height screen.
func AdaptFovx(fovx, width, height float32) float32 {
	fovx = qmath.Clamp(MinFov, fovx, MaxFov)
	if width <= 0 || height <= 0 {
		return fovx
	}
	x := height / width
	if x == baseAspect {
		return fovx
	}
	a := math32.Atan(baseAspect / x * math32.Tan(qmath.DegToRad(fovx/2)))
	return qmath.Clamp(MinFov, qmath.RadToDeg(a*2), MaxFov)
}

// CalcFovy returns the vertical fov matching fovx on a width x height screen.
func CalcFovy(fovx, width, height float32) float32 {
	fovx = qmath.Clamp(MinFov, fovx, MaxFov)
	if width <= 0 || height <= 0 {
		return fovx
	}
	x := width / math32.Tan(qmath.DegToRad(fovx/2))
	a := math32.Atan(height / x)
	return qmath.RadToDeg(a * 2)
}

// Fov computes both view angles. With adapt set the horizontal fov is
// adjusted to the aspect first.
func Fov(fovx, width, height float32, adapt bool) (float32, float32) {
	if adapt {
		fovx = AdaptFovx(fovx, width, height)
	} else {
		fovx = qmath.Clamp(MinFov, fovx, MaxFov)
	}
	return fovx, CalcFovy(fovx, width, height)
}
