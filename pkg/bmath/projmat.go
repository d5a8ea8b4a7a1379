package bmath

import(
	"fmt"
	"math"

	"golang.org/x/image/math/f64"  // Will be "image/math/f64" at some point, hopefully
)

// ProjMat holds the eight coefficients of the pair of affine forms
// that project an orbit state (a,b) and its sample origin (cx,cy)
// onto the view plane:
//
//   x = a*m0 + b*m1 + cx*m2 + cy*m3
//   y = a*m4 + b*m5 + cx*m6 + cy*m7
//
// The caller owns the coefficients, and may rewrite them between
// render passes (but not during one).
type ProjMat [8]float64

// Identity is the conventional orientation: b becomes x, a becomes y,
// the sample origin contributes nothing.
func Identity() ProjMat {
	return ProjMat{0, 1, 0, 0,   1, 0, 0, 0}
}

func (m ProjMat)Apply(a, b, cx, cy float64) f64.Vec2 {
	return f64.Vec2{
		a*m[0] + b*m[1] + cx*m[2] + cy*m[3],
		a*m[4] + b*m[5] + cx*m[6] + cy*m[7],
	}
}

func (m ProjMat)String() string {
	str := fmt.Sprintf("[%10f, %10f, %10f, %10f]\n", m[0], m[1], m[2], m[3])
	str += fmt.Sprintf("[%10f, %10f, %10f, %10f]\n", m[4], m[5], m[6], m[7])
	return str
}

// PlaneToPixel maps a plane point in the [-2,2) square onto a w x h
// pixel grid. Points outside the square come back outside [0,w)x[0,h);
// callers are expected to drop those.
func PlaneToPixel(v f64.Vec2, w, h int) (int, int) {
	px := int(math.Floor((v[0] + 2) / 4 * float64(w)))
	py := int(math.Floor((v[1] + 2) / 4 * float64(h)))
	return px, py
}
