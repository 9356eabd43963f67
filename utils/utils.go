package utils

import (
	"math"
)

func Deg(rads float64) float64 {
	return rads / (math.Pi / 180)
}

func Rad(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}

// Mod returns x modulo m, with the sign of m rather than x. So Mod(-90, 360)
// is 270, not -90 as math.Mod would return.
func Mod(x float64, m float64) float64 {
	r := math.Mod(x, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// SinCos returns the sine and cosine of an angle given in degrees.
func SinCos(degrees float64) (float64, float64) {
	return math.Sincos(Rad(degrees))
}
