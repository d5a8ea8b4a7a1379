package bbrot

import(
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/3bl3gamer/buddhabrot/pkg/bmath"
)

// The deposit strategies. Each color mode is its own algorithm; the
// three curvature variants look nearly identical but feed different
// neighbor spans into the angle computation and render visibly
// differently, so they stay separate functions rather than one
// parameterized one.

// ColorMode selects the per-point color increment policy.
type ColorMode int

const (
	ColorConstant ColorMode = iota // plain density plot
	ColorHueRed
	ColorHueGreen
	ColorHueBlue
	ColorDepth
)

func (cm ColorMode)String() string {
	switch cm {
	case ColorConstant: return "constant"
	case ColorHueRed:   return "hue-red"
	case ColorHueGreen: return "hue-green"
	case ColorHueBlue:  return "hue-blue"
	case ColorDepth:    return "depth"
	}
	return "unknown"
}

// PointsMode decides which samples get to contribute at all: orbits
// that stayed bounded (inner), or orbits that escaped (outer).
type PointsMode int

const (
	PointsInner PointsMode = iota
	PointsOuter
)

func (pm PointsMode)String() string {
	if pm == PointsOuter {
		return "outer"
	}
	return "inner"
}

// hueRGB turns a scalar in [0,1] into a fully saturated mid-lightness
// color increment.
func hueRGB(h float64) (uint8, uint8, uint8) {
	return colorful.Hsl(h*360, 1, 0.5).RGB255()
}

// depthRGB is hueRGB plus a floor: an exactly-black increment gets a
// minimum red, so a depth contribution can never be invisible.
func depthRGB(h float64) (uint8, uint8, uint8) {
	r, g, b := colorful.Hsl(h*360, 1, 0.5).RGB255()
	if r == 0 && g == 0 && b == 0 {
		r = 2
	}
	return r, g, b
}

func (r *Renderer)add(x, y int, cr, cg, cb uint8) {
	px := r.acc.Px(x, y)
	px.R += uint64(cr)
	px.G += uint64(cg)
	px.B += uint64(cb)
}

// depositConstant adds (1,1,1) at every in-bounds projected point.
func (r *Renderer)depositConstant(first, remaining int, cx, cy float64) {
	w, h := r.acc.W, r.acc.H
	for k := first; k < r.budget; k++ {
		pt := r.Orb.Points[k]
		x, y := bmath.PlaneToPixel(r.m.Apply(pt.A, pt.B, cx, cy), w, h)
		if x >= 0 && y >= 0 && x < w && y < h {
			px := r.acc.Px(x, y)
			px.R++
			px.G++
			px.B++
		}
	}
}

// The curvature modes color each interior point of the recorded
// sequence (first and last are skipped, they only have one neighbor)
// by how sharply the orbit turns there. The angle difference is
// normalized by pi and folded back into [0,1], then goes through HSL
// as a pure hue. Out-of-grid points are dropped before any angle math.

func (r *Renderer)depositHueRed(first, remaining int, cx, cy float64) {
	w, h := r.acc.W, r.acc.H
	pts := r.Orb.Points
	for k := first + 1; k < r.budget-1; k++ {
		pt := pts[k]
		x, y := bmath.PlaneToPixel(r.m.Apply(pt.A, pt.B, cx, cy), w, h)
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		angle0 := bmath.FastAtan2(pt.B-pts[k-1].B, pt.A-pts[k-1].A)
		angle1 := bmath.FastAtan2(pts[k+1].B-pt.B, pts[k+1].A-pt.A)
		d := math.Abs(angle1-angle0) / bmath.Pi
		if d > 1 {
			d = 2 - d
		}
		cr, cg, cb := hueRGB(d)
		r.add(x, y, cr, cg, cb)
	}
}

// depositHueGreen measures both angles away from the current point
// (toward each neighbor) instead of along the direction of travel.
func (r *Renderer)depositHueGreen(first, remaining int, cx, cy float64) {
	w, h := r.acc.W, r.acc.H
	pts := r.Orb.Points
	for k := first + 1; k < r.budget-1; k++ {
		pt := pts[k]
		x, y := bmath.PlaneToPixel(r.m.Apply(pt.A, pt.B, cx, cy), w, h)
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		angle0 := bmath.FastAtan2(pts[k-1].B-pt.B, pts[k-1].A-pt.A)
		angle1 := bmath.FastAtan2(pts[k+1].B-pt.B, pts[k+1].A-pt.A)
		d := math.Abs(angle1-angle0) / bmath.Pi
		if d > 1 {
			d = 2 - d
		}
		cr, cg, cb := hueRGB(d)
		r.add(x, y, cr, cg, cb)
	}
}

// depositHueBlue compares the incoming direction against the whole
// neighbor-to-neighbor span, and folds overshoot downward.
func (r *Renderer)depositHueBlue(first, remaining int, cx, cy float64) {
	w, h := r.acc.W, r.acc.H
	pts := r.Orb.Points
	for k := first + 1; k < r.budget-1; k++ {
		pt := pts[k]
		x, y := bmath.PlaneToPixel(r.m.Apply(pt.A, pt.B, cx, cy), w, h)
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		angle0 := bmath.FastAtan2(pt.B-pts[k-1].B, pt.A-pts[k-1].A)
		angle1 := bmath.FastAtan2(pts[k+1].B-pts[k-1].B, pts[k+1].A-pts[k-1].A)
		d := math.Abs(angle1-angle0) / bmath.Pi
		if d > 1 {
			d = d - 1
		}
		cr, cg, cb := hueRGB(d)
		r.add(x, y, cr, cg, cb)
	}
}

// depositDepth colors the whole sample by how deep its orbit ran:
// escaped orbits take a hue from the fraction of budget they spent,
// bounded ones from their detected period length.
func (r *Renderer)depositDepth(first, remaining int, cx, cy float64) {
	if first >= r.budget {
		return // nothing recorded
	}
	var hue float64
	if remaining == 0 {
		hue = periodHue(r.Orb.Points, first, r.budget)
	} else {
		hue = float64(r.budget-remaining) / float64(r.budget)
	}
	cr, cg, cb := depthRGB(hue)
	w, h := r.acc.W, r.acc.H
	for k := first; k < r.budget; k++ {
		pt := r.Orb.Points[k]
		x, y := bmath.PlaneToPixel(r.m.Apply(pt.A, pt.B, cx, cy), w, h)
		if x >= 0 && y >= 0 && x < w && y < h {
			r.add(x, y, cr, cg, cb)
		}
	}
}

// periodHue scans from the first iterate for the first later one that
// comes back within 0.01 on both coordinates, and folds the distance
// between them into a 16-cycle hue. No recurrence found means hue 0.
func periodHue(pts []OrbitPoint, first, budget int) float64 {
	ref := pts[budget-1]
	period := 0
	for k := budget - 2; k >= first; k-- {
		if math.Abs(pts[k].A-ref.A) < 0.01 && math.Abs(pts[k].B-ref.B) < 0.01 {
			period = budget - 1 - k
			break
		}
	}
	h := float64(period) / 16
	return h - math.Floor(h)
}
