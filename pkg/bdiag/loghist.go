package bdiag

import(
	"math"

	"github.com/skypies/util/histogram"

	"github.com/3bl3gamer/buddhabrot/pkg/bbrot"
	"github.com/3bl3gamer/buddhabrot/pkg/btone"
)

// LogLumHistogram buckets the lit pixels by log2 luminance, scaled so
// the 256 buckets cover ten stops. Handy as a quick %v log line to see
// how the accumulated energy spreads before tone mapping.
func LogLumHistogram(acc *bbrot.Accumulator, metric btone.LumMetric) histogram.Histogram {
	h := histogram.Histogram{NumBuckets: 256, ValMin: 0, ValMax: 256}
	for _, p := range acc.Pixels {
		lum := metric.Of(p)
		if lum <= 0 {
			continue
		}
		if log2 := math.Log2(lum); log2 > 0.2 {
			h.Add(histogram.ScalarVal(int(log2 * 25.6)))
		}
	}
	return h
}
