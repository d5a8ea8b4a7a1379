package bbrot

import(
	"fmt"

	"github.com/3bl3gamer/buddhabrot/pkg/bmath"
)

// RenderParams is one render call's worth of knobs. Width and height
// must match the accumulator the renderer was built over - they get
// re-passed on every call so that dimension drift turns into an error
// instead of silently scribbling over the wrong pixels.
type RenderParams struct {
	Width, Height int
	Iters         int // iteration budget per sample
	Samples       int
	Points        PointsMode
	Color         ColorMode
}

// Renderer is the orbit accumulation context: sampling stream, orbit
// scratch, projection matrix, accumulator. All the state it mutates is
// right here, so independent renderers never interfere. A single
// renderer is strictly one-caller-at-a-time: Render must not overlap
// with anything else touching the same stream or scratch.
type Renderer struct {
	Rng *bmath.Pcg32
	Mat *bmath.ProjMat
	Orb Orbiter

	acc    *Accumulator
	m      bmath.ProjMat // snapshot of *Mat for the duration of one call
	budget int
}

// NewRenderer sizes the orbit scratch once, for the largest iteration
// budget the session will use. The matrix stays caller-owned so hosts
// can rewrite the view between passes.
func NewRenderer(acc *Accumulator, mat *bmath.ProjMat, maxIters int) *Renderer {
	return &Renderer{
		Rng: bmath.NewPcg32(),
		Mat: mat,
		Orb: Orbiter{Points: make([]OrbitPoint, maxIters)},
		acc: acc,
	}
}

// Acc returns the accumulator the renderer deposits into.
func (r *Renderer)Acc() *Accumulator { return r.acc }

// Render runs p.Samples independent orbit simulations and accumulates
// their contributions. Call it as often as you like - more calls just
// means more samples in the same buffer.
func (r *Renderer)Render(p RenderParams) error {
	if p.Width != r.acc.W || p.Height != r.acc.H {
		return fmt.Errorf("render %dx%d against a %dx%d accumulator", p.Width, p.Height, r.acc.W, r.acc.H)
	}
	if p.Iters < 1 || p.Iters > len(r.Orb.Points) {
		return fmt.Errorf("iteration budget %d outside scratch capacity %d", p.Iters, len(r.Orb.Points))
	}
	if p.Samples < 0 {
		return fmt.Errorf("negative sample count %d", p.Samples)
	}
	if p.Points != PointsInner && p.Points != PointsOuter {
		return fmt.Errorf("no points mode numbered %d", int(p.Points))
	}

	var deposit func(first, remaining int, cx, cy float64)
	switch p.Color {
	case ColorConstant: deposit = r.depositConstant
	case ColorHueRed:   deposit = r.depositHueRed
	case ColorHueGreen: deposit = r.depositHueGreen
	case ColorHueBlue:  deposit = r.depositHueBlue
	case ColorDepth:    deposit = r.depositDepth
	default:
		return fmt.Errorf("no color mode numbered %d", int(p.Color))
	}

	r.m = *r.Mat
	r.budget = p.Iters

	for i := 0; i < p.Samples; i++ {
		cx := r.Rng.Unit()*4 - 2
		cy := r.Rng.Unit()*4 - 2
		remaining, first := r.Orb.Run(cx, cy, p.Iters)
		if p.Points == PointsInner && remaining != 0 {
			continue
		}
		if p.Points == PointsOuter && remaining == 0 {
			continue
		}
		deposit(first, remaining, cx, cy)
	}
	return nil
}
