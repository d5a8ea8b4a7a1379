package bdiag

import(
	"fmt"

	"github.com/fogleman/gg"

	"github.com/3bl3gamer/buddhabrot/pkg/btone"
)

// WriteExposureChart draws the estimator's luminance histogram as a
// bar chart PNG, with the bucket that pinned the exposure threshold
// picked out in red. Useful when a render comes out too dark or too
// blown and you want to see what the auto-exposure was looking at.
func WriteExposureChart(t *btone.Tonemapper, filename string) error {
	const (
		barW   = 2
		chartH = 200
		margin = 30
	)
	w := 256*barW + 2*margin
	h := chartH + 2*margin

	histo := t.HistogramSnapshot()
	max := uint64(0)
	for _, v := range histo {
		if v > max { max = v }
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	baseline := float64(margin + chartH)
	for i, v := range histo {
		if v == 0 {
			continue
		}
		barH := float64(v) / float64(max) * chartH
		if i == t.ThresholdBucket() {
			dc.SetRGB(1, 0.2, 0.2)
		} else {
			dc.SetRGB(0.85, 0.85, 0.85)
		}
		dc.DrawRectangle(float64(margin+i*barW), baseline-barH, barW, barH)
		dc.Fill()
	}

	dc.SetRGB(0.5, 0.5, 0.5)
	dc.DrawLine(float64(margin), baseline, float64(margin+256*barW), baseline)
	dc.Stroke()

	dc.SetRGB(1, 1, 1)
	dc.DrawString(fmt.Sprintf("avg lum %.3f  thresh bucket %d  brightness %.6g",
		t.AvgLum(), t.ThresholdBucket(), t.Brightness), float64(margin), 20)

	return dc.SavePNG(filename)
}
