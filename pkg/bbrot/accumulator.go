package bbrot

import(
	"image"
	"image/color"

	"github.com/mdouchement/hdr/hdrcolor"
)

// Accumulator is the HDR energy grid the orbits deposit into: a
// row-major w x h grid of three unbounded counters per pixel. The
// values are color energy, not displayable levels - turning them into
// an image is the tone mapper's job.
//
// It implements image.Image and hdr.Image, so the raw buffer can go
// straight into the mdouchement/hdr codecs and tonemapping operators.
type Accumulator struct {
	W, H   int
	Pixels []AccumPixel
}

// AccumPixel is one grid cell. Plain uint64 addition; overflow over a
// pathologically long session is accepted, not defended.
type AccumPixel struct {
	R, G, B uint64
}

func NewAccumulator(w, h int) *Accumulator {
	return &Accumulator{W: w, H: h, Pixels: make([]AccumPixel, w*h)}
}

// Pixel access
func (a *Accumulator)Px(x, y int) *AccumPixel { return &(a.Pixels[y*a.W + x]) }

// Reset zeroes every channel. Nothing in the render path ever does
// this on its own - accumulating across calls is the whole point.
func (a *Accumulator)Reset() {
	for i := range a.Pixels {
		a.Pixels[i] = AccumPixel{}
	}
}

// Implement image.Image
func (a *Accumulator)ColorModel() color.Model { return hdrcolor.RGBModel }
func (a *Accumulator)Bounds() image.Rectangle { return image.Rect(0, 0, a.W, a.H) }
func (a *Accumulator)At(x, y int) color.Color { return a.HDRAt(x, y) }

// Implement hdr.Image
func (a *Accumulator)HDRAt(x, y int) hdrcolor.Color {
	p := a.Px(x, y)
	return hdrcolor.RGB{float64(p.R), float64(p.G), float64(p.B)}
}
func (a *Accumulator)Size() int { return a.W * a.H }
