package btone

import (
	"image"
	"math"
	"testing"

	"github.com/3bl3gamer/buddhabrot/pkg/bbrot"
)

func TestBuildTableEntries(t *testing.T) {
	tm := NewTonemapper()
	tm.BuildTable(1)
	if tm.lut[0] != 0 || tm.lut[512] != 128 || tm.lut[1023] != 255 {
		t.Fatalf("linear table endpoints wrong: %d %d %d", tm.lut[0], tm.lut[512], tm.lut[1023])
	}
	tm.BuildTable(2)
	if tm.lut[512] != 64 {
		t.Fatalf("contrast 2 midpoint = %d, want 64", tm.lut[512])
	}
}

func TestBuildTableMemoization(t *testing.T) {
	tm := NewTonemapper()
	tm.BuildTable(1)
	tm.lut[5] = 77 // visible only if the rebuild is skipped
	tm.BuildTable(1)
	if tm.lut[5] != 77 {
		t.Fatal("table was rebuilt for an unchanged contrast")
	}
	tm.BuildTable(2)
	if tm.lut[5] == 77 {
		t.Fatal("table was not rebuilt for a new contrast")
	}
}

func TestMap(t *testing.T) {
	tm := NewTonemapper()
	tm.BuildTable(1)

	if got := tm.Map(0); got != 0 {
		t.Fatalf("Map(0) = %d, want 0", got)
	}

	// Monotone in the input for a fixed positive brightness.
	prev := uint8(0)
	for v := 0.0; v <= 2; v += 0.001 {
		got := tm.Map(v)
		if got < prev {
			t.Fatalf("Map(%v) = %d after %d", v, got, prev)
		}
		prev = got
	}

	// Everything past the table saturates instead of indexing out.
	if got := tm.Map(3); got != 255 {
		t.Fatalf("Map(3) = %d, want 255", got)
	}
	if got := tm.Map(1e300); got != 255 {
		t.Fatalf("Map(1e300) = %d, want 255", got)
	}
	tm.Brightness = math.Inf(1)
	if got := tm.Map(0); got != 255 {
		t.Fatalf("Map(0) with infinite brightness = %d, want 255", got)
	}
}

func TestConvertRows(t *testing.T) {
	acc := bbrot.NewAccumulator(3, 2)
	*acc.Px(0, 0) = bbrot.AccumPixel{0, 0, 0}
	*acc.Px(1, 0) = bbrot.AccumPixel{1, 0, 0}
	*acc.Px(2, 0) = bbrot.AccumPixel{0, 5, 0}
	*acc.Px(0, 1) = bbrot.AccumPixel{7, 7, 7}
	*acc.Px(1, 1) = bbrot.AccumPixel{0, 0, 2}
	*acc.Px(2, 1) = bbrot.AccumPixel{0, 1, 1}

	tm := NewTonemapper()
	tm.BuildTable(1)

	// Only the requested row gets written.
	out := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := range out.Pix {
		out.Pix[i] = 9
	}
	if err := tm.ConvertRows(acc, out, 1, 1); err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 3; x++ {
		o := out.PixOffset(x, 0)
		if out.Pix[o] != 9 || out.Pix[o+3] != 9 {
			t.Fatalf("row 0 column %d was touched", x)
		}
	}
	wantRow1 := [][4]uint8{{255, 255, 255, 255}, {0, 0, 255, 255}, {0, 255, 255, 255}}
	for x, want := range wantRow1 {
		o := out.PixOffset(x, 1)
		got := [4]uint8{out.Pix[o], out.Pix[o+1], out.Pix[o+2], out.Pix[o+3]}
		if got != want {
			t.Fatalf("pixel (%d,1) = %v, want %v", x, got, want)
		}
	}

	// The whole-image helper agrees with a full row range.
	a := image.NewRGBA(image.Rect(0, 0, 3, 2))
	b := image.NewRGBA(image.Rect(0, 0, 3, 2))
	if err := tm.Convert(acc, a); err != nil {
		t.Fatal(err)
	}
	if err := tm.ConvertRows(acc, b, 0, 2); err != nil {
		t.Fatal(err)
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("Convert and ConvertRows disagree at byte %d", i)
		}
	}
	if o := a.PixOffset(1, 0); a.Pix[o] != 255 || a.Pix[o+1] != 0 || a.Pix[o+3] != 255 {
		t.Fatalf("pixel (1,0) came out (%d,%d,%d,%d)", a.Pix[o], a.Pix[o+1], a.Pix[o+2], a.Pix[o+3])
	}
}

func TestConvertRowsRangeChecks(t *testing.T) {
	acc := bbrot.NewAccumulator(3, 2)
	tm := NewTonemapper()
	tm.BuildTable(1)

	if err := tm.Convert(acc, image.NewRGBA(image.Rect(0, 0, 2, 2))); err == nil {
		t.Fatal("mismatched image size accepted")
	}
	out := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for _, rng := range [][2]int{{-1, 1}, {0, -1}, {0, 3}, {2, 1}} {
		if err := tm.ConvertRows(acc, out, rng[0], rng[1]); err == nil {
			t.Fatalf("row range [%d,+%d) accepted", rng[0], rng[1])
		}
	}
	if err := tm.ConvertRows(acc, out, 2, 0); err != nil {
		t.Fatalf("empty row range at the end rejected: %v", err)
	}
}
