package astro

import "math"

// normalizeDegrees wraps a longitude into [0, 360). A negative input
// within half an ulp of zero would round to exactly 360 after the
// correction, so the result is re-checked.
func normalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d -= 360
	}
	return d
}

// angularSeparation returns the shorter arc between two longitudes, in
// [0, 180].
func angularSeparation(a, b float64) float64 {
	diff := math.Abs(normalizeDegrees(a) - normalizeDegrees(b))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// forwardDistance returns the zodiacal distance from a to b measured in the
// direction of increasing longitude, in [0, 360).
func forwardDistance(a, b float64) float64 {
	return normalizeDegrees(b - a)
}

// signOf returns the sign index for a longitude.
func signOf(longitude float64) int {
	return int(normalizeDegrees(longitude) / SignSpan)
}

// degreeInSign returns the degree within the sign for a longitude.
func degreeInSign(longitude float64) float64 {
	return math.Mod(normalizeDegrees(longitude), SignSpan)
}

// houseFromSign returns the 1-based house a sign occupies counted from a
// reference sign.
func houseFromSign(sign, referenceSign int) int {
	return ((sign-referenceSign)%12+12)%12 + 1
}

// nakshatraOf returns the mansion index 0..26 and the degree within it.
func nakshatraOf(longitude float64) (int, float64) {
	l := normalizeDegrees(longitude)
	idx := int(l / NakshatraSpan)
	if idx > 26 {
		idx = 26
	}
	return idx, math.Mod(l, NakshatraSpan)
}

// padaOf returns the 1..4 quarter for a degree offset within a mansion.
func padaOf(degreeInNakshatra float64) int {
	p := int(degreeInNakshatra/PadaSpan) + 1
	if p > 4 {
		p = 4
	}
	return p
}

// navamsaSign returns the ninth-division sign for a longitude.
func navamsaSign(longitude float64) int {
	return int(normalizeDegrees(longitude)/PadaSpan) % 12
}
