package bdiag

// Reporting on accumulator contents and exposure decisions: quantile
// summaries for log lines, and a chart of what the auto-exposure saw.
// Nothing in here feeds back into rendering.

import(
	"fmt"

	"github.com/codahale/hdrhistogram"
	"gonum.org/v1/gonum/stat"

	"github.com/3bl3gamer/buddhabrot/pkg/bbrot"
	"github.com/3bl3gamer/buddhabrot/pkg/btone"
)

// Accumulated counts above this are folded into the top of the
// quantile tracker's range.
const maxTrackable = 1000000000

// BufferStats is a one-line summary of the accumulator: how much of it
// is lit, and where the lit luminances sit.
type BufferStats struct {
	Total   int     // pixels in the buffer
	NonZero int     // pixels with any accumulated light
	Mean    float64 // mean luminance over all pixels
	P50     int64   // median luminance of the lit pixels
	P99     int64
	Max     int64
}

func (s BufferStats)String() string {
	return fmt.Sprintf("px[%d/%d lit, mean %.2f, p50 %d, p99 %d, max %d]",
		s.NonZero, s.Total, s.Mean, s.P50, s.P99, s.Max)
}

// Stats summarizes the accumulator under the given luminance metric.
// Quantiles cover only the lit pixels - on a sparse render the dark
// majority would otherwise pin every percentile to zero.
func Stats(acc *bbrot.Accumulator, metric btone.LumMetric) BufferStats {
	h := hdrhistogram.New(1, maxTrackable, 3)
	lums := make([]float64, len(acc.Pixels))
	nonZero := 0
	for i, p := range acc.Pixels {
		lum := metric.Of(p)
		lums[i] = lum
		if lum <= 0 {
			continue
		}
		nonZero++
		v := int64(lum)
		if v > maxTrackable { v = maxTrackable }
		if v < 1            { v = 1 }
		h.RecordValue(v) // cannot fail after the clamp
	}
	return BufferStats{
		Total:   len(acc.Pixels),
		NonZero: nonZero,
		Mean:    stat.Mean(lums, nil),
		P50:     h.ValueAtQuantile(50),
		P99:     h.ValueAtQuantile(99),
		Max:     h.Max(),
	}
}
