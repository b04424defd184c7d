// Package mapping provides the numeric range conversions used throughout the
// pipeline to turn 0-100 style parameters into pixel-space values.
package mapping

import "math"

// MapRange linearly maps v from [inMin,inMax] to [outMin,outMax]. The input
// is clamped into its range first, so boundary parameter values can never
// push a derived quantity outside its output range. When inMin == inMax the
// result is outMin; this is a defined fallback, not an error.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMin == inMax {
		return outMin
	}
	if inMin < inMax {
		v = Clamp(v, inMin, inMax)
	} else {
		v = Clamp(v, inMax, inMin)
	}
	t := (v - inMin) / (inMax - inMin)
	return outMin + t*(outMax-outMin)
}

// CosineInterpolate blends a toward b using (1-cos(t*pi))/2 as the mixing
// weight. Compared to linear interpolation the blend eases in and out at the
// segment boundaries, which keeps interpolated tear edges looking organic
// rather than faceted.
func CosineInterpolate(a, b, t float64) float64 {
	t = Clamp(t, 0, 1)
	w := (1 - math.Cos(t*math.Pi)) / 2
	return a*(1-w) + b*w
}

// Lerp linearly interpolates between a and b without clamping t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo,hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
