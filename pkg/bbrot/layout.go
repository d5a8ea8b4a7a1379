package bbrot

// The flat memory map, for hosts that mirror the kernel into a single
// contiguous allocation (a wasm embedding does exactly this). The
// offsets are bookkeeping over the typed views the Go code actually
// uses - nothing here does pointer arithmetic.
//
//   [0, 64)                view matrix, 8 coefficients x 8 bytes
//   [64, 64+24wh)          HDR accumulator, w*h cells x 24 bytes
//   [64+24wh, 64+28wh)     displayable RGBA, w*h pixels x 4 bytes
//   [64+28wh, ...)         orbit scratch, iters points x 16 bytes

const (
	MatrixBytes     = 8 * 8
	AccumPixelBytes = 3 * 8
	OutPixelBytes   = 4
	OrbitPointBytes = 2 * 8
)

// Region is a half-open byte range within the flat layout.
type Region struct {
	Off, Len int
}

// Layout places the four kernel regions for one configuration.
type Layout struct {
	Matrix Region // written by the host between passes
	Accum  Region // HDR counters
	Out    Region // read back by the host after conversion
	Orbit  Region // per-sample scratch, host never touches it
}

func LayoutFor(w, h, iters int) Layout {
	var l Layout
	l.Matrix = Region{0, MatrixBytes}
	l.Accum = Region{l.Matrix.Off + l.Matrix.Len, w * h * AccumPixelBytes}
	l.Out = Region{l.Accum.Off + l.Accum.Len, w * h * OutPixelBytes}
	l.Orbit = Region{l.Out.Off + l.Out.Len, iters * OrbitPointBytes}
	return l
}

// Total is the allocation size covering every region.
func (l Layout)Total() int {
	return l.Orbit.Off + l.Orbit.Len
}

// RequiredBufferSize is how much contiguous memory a host must set
// aside before any other call.
func RequiredBufferSize(w, h, iters int) int {
	return LayoutFor(w, h, iters).Total()
}

// PixelBufferOffset locates the displayable RGBA region the host
// reads back after a convert pass.
func PixelBufferOffset(w, h int) int {
	return LayoutFor(w, h, 0).Out.Off
}

// ScratchBufferOffset locates the host-written scratch region at the
// head of the layout, holding the eight view matrix coefficients.
func ScratchBufferOffset() int {
	return 0
}
