package bpipe

import(
	"fmt"
	"image"

	"github.com/3bl3gamer/buddhabrot/pkg/bbrot"
	"github.com/3bl3gamer/buddhabrot/pkg/bmath"
	"github.com/3bl3gamer/buddhabrot/pkg/btone"
)

// Kernel bundles every buffer a render session needs: the projection
// matrix, the HDR accumulator and orbit scratch inside the renderer,
// and the displayable output image. One allocation up front, then the
// host calls the operations below in any order it likes. Width and
// height are re-passed on the per-stage operations so that a host
// holding stale dimensions gets an error instead of a garbled buffer.
type Kernel struct {
	mat bmath.ProjMat
	ren *bbrot.Renderer
	tm  *btone.Tonemapper
	out *image.RGBA
}

// New allocates a session for the given resolution and maximum
// iteration budget.
func New(w, h, iters int) (*Kernel, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("image size %dx%d", w, h)
	}
	if iters < 1 {
		return nil, fmt.Errorf("iteration budget %d, want >= 1", iters)
	}
	k := &Kernel{
		mat: bmath.Identity(),
		tm:  btone.NewTonemapper(),
		out: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
	k.ren = bbrot.NewRenderer(bbrot.NewAccumulator(w, h), &k.mat, iters)
	return k, nil
}

// Seed re-seeds the sampling stream. Without it the default reference
// stream applies, which is still deterministic.
func (k *Kernel)Seed(state, seq uint64) { k.ren.Rng.Seed(state, seq) }

// Matrix is the host-writable view transform. Rewrite it between
// Render calls, never during one.
func (k *Kernel)Matrix() *bmath.ProjMat { return &k.mat }

// SetEscape selects the orbit bound check for subsequent renders.
func (k *Kernel)SetEscape(e bbrot.EscapeTest) { k.ren.Orb.Escape = e }

// SetLumMetric selects the luminance policy the exposure estimator
// uses.
func (k *Kernel)SetLumMetric(m btone.LumMetric) { k.tm.Metric = m }

// Render runs more orbit samples. Repeated calls accumulate onto the
// same buffer.
func (k *Kernel)Render(w, h, iters, samples int, pm bbrot.PointsMode, cm bbrot.ColorMode) error {
	return k.ren.Render(bbrot.RenderParams{
		Width: w, Height: h,
		Iters:   iters,
		Samples: samples,
		Points:  pm,
		Color:   cm,
	})
}

// EstimateExposure recomputes the brightness factor from the current
// accumulator contents.
func (k *Kernel)EstimateExposure(w, h, step int, contrast float64) error {
	acc := k.ren.Acc()
	if w != acc.W || h != acc.H {
		return fmt.Errorf("estimate %dx%d against a %dx%d accumulator", w, h, acc.W, acc.H)
	}
	return k.tm.EstimateExposure(acc, step, contrast)
}

// ConvertRows tone-maps the row range [first, first+count) into the
// output image.
func (k *Kernel)ConvertRows(w, h, first, count int) error {
	acc := k.ren.Acc()
	if w != acc.W || h != acc.H {
		return fmt.Errorf("convert %dx%d against a %dx%d accumulator", w, h, acc.W, acc.H)
	}
	return k.tm.ConvertRows(acc, k.out, first, count)
}

// Convert tone-maps the whole image.
func (k *Kernel)Convert() error {
	return k.tm.Convert(k.ren.Acc(), k.out)
}

// Image is the displayable output, valid after a Convert.
func (k *Kernel)Image() *image.RGBA { return k.out }

// HDR is the raw accumulator, usable anywhere an hdr.Image is wanted.
func (k *Kernel)HDR() *bbrot.Accumulator { return k.ren.Acc() }

// Tonemapper exposes the conversion state for diagnostics.
func (k *Kernel)Tonemapper() *btone.Tonemapper { return k.tm }
