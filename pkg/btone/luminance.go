package btone

import(
	"github.com/3bl3gamer/buddhabrot/pkg/bbrot"
)

// LumMetric picks how a pixel's three accumulated channels collapse to
// the single luminance number the exposure estimator works on. Max is
// what the renderer was tuned against; Rec709 is the perceptual
// weighting (https://en.wikipedia.org/wiki/Relative_luminance) kept
// around as an alternative policy.
type LumMetric int

const (
	LumMax LumMetric = iota
	LumRec709
)

func (m LumMetric)String() string {
	if m == LumRec709 {
		return "rec709"
	}
	return "max"
}

// Of computes the pixel's luminance under the metric.
func (m LumMetric)Of(p bbrot.AccumPixel) float64 {
	if m == LumRec709 {
		return 0.2126*float64(p.R) + 0.7152*float64(p.G) + 0.0722*float64(p.B)
	}
	l := p.R
	if p.G > l { l = p.G }
	if p.B > l { l = p.B }
	return float64(l)
}
