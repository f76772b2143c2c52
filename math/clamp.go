// SPDX-License-Identifier: GPL-2.0-or-later

package math

type Number interface {
	~int | ~int64 | ~uint32 | ~float32 | ~float64
}

// Clamp limits val to [min, max].
func Clamp[K Number](min, val, max K) K {
	switch {
	case val < min:
		return min
	case val > max:
		return max
	}
	return val
}
