package utils

import (
	"math"
)

type Fl = float32

func MinInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}

func MaxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// ClampInt returns v restricted to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundPrec rounds f with n digits precision
func RoundPrec(f Fl, n int) Fl {
	n10 := math.Pow10(n)
	return Fl(math.Round(float64(f)*n10) / n10)
}
