// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"github.com/chewxy/math32"
)

const (
	Pi = math32.Pi
)

// DegToRad converts degrees to radians.
func DegToRad(d float32) float32 {
	return d * Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(r float32) float32 {
	return r * 180 / Pi
}
