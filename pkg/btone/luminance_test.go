package btone

import (
	"math"
	"testing"

	"github.com/3bl3gamer/buddhabrot/pkg/bbrot"
)

func TestLumMetric(t *testing.T) {
	p := bbrot.AccumPixel{R: 3, G: 9, B: 5}
	if got := LumMax.Of(p); got != 9 {
		t.Fatalf("LumMax.Of = %v, want 9", got)
	}
	if got := LumRec709.Of(p); math.Abs(got-(0.2126*3+0.7152*9+0.0722*5)) > 1e-12 {
		t.Fatalf("LumRec709.Of = %v", got)
	}
	// The Rec709 weights sum to one, so a gray pixel keeps its value.
	gray := bbrot.AccumPixel{R: 100, G: 100, B: 100}
	if got := LumRec709.Of(gray); math.Abs(got-100) > 1e-10 {
		t.Fatalf("LumRec709.Of(gray) = %v, want 100", got)
	}
	if LumMax.String() != "max" || LumRec709.String() != "rec709" {
		t.Fatal("metric names changed")
	}
}
