package bmath

import "math"

// Pi is the truncated constant the curvature hue math was calibrated
// against. Swapping in math.Pi shifts every hue slightly.
const Pi = 3.1415926

// FastAtan2 is a self-normalizing polynomial atan2 approximation
// (Volkan Salma's version, see
// http://pubs.opengroup.org/onlinepubs/009695399/functions/atan2.html).
// Max error is about 0.01 radians, which is plenty for turning orbit
// travel directions into hues, and it costs a lot less than the real
// thing in a per-point inner loop.
func FastAtan2(y, x float64) float64 {
	absY := math.Abs(y) + 1e-10 // kludge to prevent 0/0 condition
	var r, angle float64
	if x < 0 {
		r = (x + absY) / (absY - x)
		angle = 3 * Pi / 4
	} else {
		r = (x - absY) / (x + absY)
		angle = Pi / 4
	}
	angle += (0.1963*r*r - 0.9817) * r
	if y < 0 {
		return -angle // negate if in quad III or IV
	}
	return angle
}
