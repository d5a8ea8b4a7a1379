package btone

// Turns the unbounded accumulator counts into an 8-bit displayable
// image. The pipeline is classic auto-exposure tone mapping
// (https://en.wikipedia.org/wiki/Tone_mapping): estimate a brightness
// factor from a luminance histogram, then push every channel through a
// cached gamma lookup table.

import(
	"fmt"
	"image"
	"math"

	"github.com/3bl3gamer/buddhabrot/pkg/bbrot"
)

// TableLen is the gamma lookup table resolution.
const TableLen = 1024

// Tonemapper owns all the per-session conversion state: the brightness
// factor, the gamma table with its memoization key, and the histogram
// scratch the estimator refills on every pass. One Tonemapper per
// conversion stream; nothing here is safe for concurrent use.
type Tonemapper struct {
	Brightness float64   // linear scale applied before the gamma table
	Metric     LumMetric

	lut         [TableLen]uint8
	lutContrast float64 // NaN until the first BuildTable

	lums         []float64
	histo        [256]uint64
	threshBucket int
	avg          float64
}

// NewTonemapper starts with neutral brightness and an unbuilt table.
func NewTonemapper() *Tonemapper {
	return &Tonemapper{
		Brightness:   1,
		lutContrast:  math.NaN(),
		threshBucket: -1,
	}
}

// BuildTable fills the gamma lookup table for the given contrast
// exponent. Calling it again with the same contrast is free - the
// table is only recomputed when the exponent actually changes.
func (t *Tonemapper)BuildTable(contrast float64) {
	if contrast == t.lutContrast {
		return
	}
	for i := range t.lut {
		t.lut[i] = uint8(math.Floor(255*math.Pow(float64(i)/TableLen, contrast) + 0.5))
	}
	t.lutContrast = contrast
}

// Map scales an accumulated channel value by the brightness factor and
// looks it up in the gamma table. Anything that would index past the
// table saturates to 255, which is also where NaN ends up, so a
// degenerate brightness factor can never index out of range.
func (t *Tonemapper)Map(v float64) uint8 {
	f := v*t.Brightness*float64(TableLen-1) + 0.5
	if f < float64(TableLen) {
		return t.lut[int(f)]
	}
	return 255
}

// ConvertRows writes final RGBA for the half-open row range
// [first, first+count). Chunking the conversion this way lets a host
// keep a UI responsive; the brightness factor and gamma table must be
// settled (EstimateExposure) before the first chunk.
func (t *Tonemapper)ConvertRows(acc *bbrot.Accumulator, out *image.RGBA, first, count int) error {
	if b := out.Bounds(); b.Dx() != acc.W || b.Dy() != acc.H {
		return fmt.Errorf("convert %dx%d accumulator into %dx%d image", acc.W, acc.H, b.Dx(), b.Dy())
	}
	if first < 0 || count < 0 || first+count > acc.H {
		return fmt.Errorf("row range [%d,%d) outside %d rows", first, first+count, acc.H)
	}
	for y := first; y < first+count; y++ {
		for x := 0; x < acc.W; x++ {
			p := acc.Px(x, y)
			o := out.PixOffset(x, y)
			out.Pix[o+0] = t.Map(float64(p.R))
			out.Pix[o+1] = t.Map(float64(p.G))
			out.Pix[o+2] = t.Map(float64(p.B))
			out.Pix[o+3] = 255
		}
	}
	return nil
}

// Convert is ConvertRows over the whole image.
func (t *Tonemapper)Convert(acc *bbrot.Accumulator, out *image.RGBA) error {
	return t.ConvertRows(acc, out, 0, acc.H)
}
