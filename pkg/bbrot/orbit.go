package bbrot

// EscapeTest picks the bound check that ends an orbit early. Axis is
// the reference behavior; the radial test is a variant that shows up
// in some renders, so both are kept selectable.
type EscapeTest int

const (
	EscapeAxis   EscapeTest = iota // quit once a^2 or b^2 alone exceeds 4
	EscapeRadius                   // quit once a^2 + b^2 exceeds 4
)

func (e EscapeTest)String() string {
	if e == EscapeRadius {
		return "radius"
	}
	return "axis"
}

// OrbitPoint is one recorded iterate of the quadratic map.
type OrbitPoint struct {
	A, B float64
}

// Orbiter runs escape-time orbits into a reusable scratch array.
// Iterates are stored at index 'remaining budget', so the array holds
// the orbit in reverse-chronological order: Points[budget-1] is the
// first iterate, lower indexes are later ones. The scratch is
// overwritten every sample.
type Orbiter struct {
	Points []OrbitPoint
	Escape EscapeTest
}

// Run simulates one orbit of b <- 2ab+cy, a <- a^2-b^2+cx from the
// start point (cx, cy). Returns the unspent budget (0 means the orbit
// counts as bounded, anything else means it escaped) and the lowest
// scratch index written. An orbit whose very first iterate trips the
// escape test records nothing, and first comes back equal to budget.
//
// The caller guarantees len(o.Points) >= budget; Run itself stays
// check-free since it is the innermost loop of the whole renderer.
func (o *Orbiter)Run(cx, cy float64, budget int) (remaining, first int) {
	a, b := cx, cy
	radial := o.Escape == EscapeRadius
	iter := budget
	first = budget
	for iter > 0 {
		iter--
		aa := a * a
		bb := b * b
		if radial {
			if aa+bb > 4 {
				break
			}
		} else if aa > 4 || bb > 4 {
			break
		}
		b = 2*a*b + cy
		a = aa - bb + cx
		o.Points[iter] = OrbitPoint{a, b}
		first = iter
	}
	return iter, first
}
