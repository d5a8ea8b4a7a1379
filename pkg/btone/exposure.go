package btone

import(
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/3bl3gamer/buddhabrot/pkg/bbrot"
)

const (
	// histoShrink maps the luminance-over-average ratio onto histogram
	// buckets: ratio 1.0 lands in bucket 6 of 256, leaving headroom
	// above for the bright outliers the estimator wants to find.
	histoShrink = 0.025

	// drainFrac is the fraction of sampled pixels the auto-exposure is
	// allowed to blow out to full white.
	drainFrac = 0.001
)

// EstimateExposure recomputes the brightness factor from the current
// accumulator contents, rebuilding the gamma table first if the
// contrast changed. It subsamples every step-th row and column, builds
// a luminance histogram, and picks the brightness that saturates only
// a small fixed fraction of the brightest samples. Deliberately
// over-exposing that sliver is what gives the remaining majority its
// contrast.
//
// An all-dark accumulator leaves the previous factor in place rather
// than dividing by a zero average.
func (t *Tonemapper)EstimateExposure(acc *bbrot.Accumulator, step int, contrast float64) error {
	if step < 1 {
		return fmt.Errorf("subsampling step %d, want >= 1", step)
	}
	t.BuildTable(contrast)

	t.lums = t.lums[:0]
	for y := 0; y < acc.H; y += step {
		for x := 0; x < acc.W; x += step {
			t.lums = append(t.lums, t.Metric.Of(*acc.Px(x, y)))
		}
	}
	t.avg = stat.Mean(t.lums, nil)

	// The histogram is rebuilt from scratch on every pass.
	for i := range t.histo {
		t.histo[i] = 0
	}
	t.threshBucket = -1
	if t.avg == 0 {
		return nil
	}

	for _, l := range t.lums {
		idx := int(l / t.avg * 256 * histoShrink)
		if idx > 255 {
			idx = 255
		}
		t.histo[idx]++
	}

	// Walk from the brightest bucket down, draining the blow-out
	// budget. The first bucket holding more than the leftover budget
	// pins the threshold luminance; interpolation inside that bucket
	// uses its lower edge. The walk always stops, because the budget
	// is strictly smaller than the total count.
	drain := drainFrac * float64(len(t.lums))
	for i := 255; i >= 0; i-- {
		val := float64(t.histo[i])
		if val <= drain {
			drain -= val
			continue
		}
		pos := (float64(i) + drain/val) / 256
		// A budget drained to exactly zero can pin the bottom bucket,
		// putting the threshold at luminance zero. The bucket's top
		// edge keeps the reciprocal finite.
		if pos == 0 {
			pos = 1.0 / 256
		}
		t.Brightness = 1 / (pos * t.avg / histoShrink)
		t.threshBucket = i
		break
	}
	return nil
}

// AvgLum reports the average subsampled luminance of the last pass.
func (t *Tonemapper)AvgLum() float64 { return t.avg }

// ThresholdBucket reports which histogram bucket pinned the threshold
// on the last pass, or -1 if the pass short-circuited.
func (t *Tonemapper)ThresholdBucket() int { return t.threshBucket }

// HistogramSnapshot copies out the last pass's luminance histogram.
func (t *Tonemapper)HistogramSnapshot() [256]uint64 { return t.histo }
