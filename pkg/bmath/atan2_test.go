package bmath

import (
	"math"
	"testing"
)

func TestFastAtan2ApproxError(t *testing.T) {
	// Sweep angles at several radii; the approximation should stay
	// within about a hundredth of a radian of the real thing.
	for i := 0; i < 3600; i++ {
		theta := float64(i) * math.Pi / 1800
		for _, rad := range []float64{1e-6, 0.5, 1, 10, 1e6} {
			x := rad * math.Cos(theta)
			y := rad * math.Sin(theta)
			err := math.Abs(FastAtan2(y, x) - math.Atan2(y, x))
			if err > math.Pi {
				err = 2*math.Pi - err
			}
			if err > 0.011 {
				t.Fatalf("atan2(%g, %g): error %g too large", y, x, err)
			}
		}
	}
}

func TestFastAtan2Quadrants(t *testing.T) {
	cases := []struct {
		y, x float64
		want float64 // approximate
	}{
		{0, 1, 0},
		{1, 1, Pi / 4},
		{1, -1, 3 * Pi / 4},
		{-1, -1, -3 * Pi / 4},
		{-1, 1, -Pi / 4},
	}
	for _, c := range cases {
		got := FastAtan2(c.y, c.x)
		if math.Abs(got-c.want) > 0.011 {
			t.Fatalf("FastAtan2(%g, %g) = %g, want about %g", c.y, c.x, got, c.want)
		}
	}
}
