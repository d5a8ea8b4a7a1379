package bmath

import "math"

// A seedable, reproducible PCG32 generator: XSH-RR output permutation
// over a 64-bit LCG, following the minimal C implementation at
// https://www.pcg-random.org/download.html. The permutation step is
// what gives acceptable statistical quality - raw LCG output is not
// good enough for stochastic sampling.

const (
	pcg32Mult                = 6364136223846793005
	pcg32DefaultState uint64 = 0x853c49e6748fea9b
	pcg32DefaultInc   uint64 = 0xda3e39cb94b95bdb
)

// Pcg32 is a single generator stream. Re-seeding with the same pair of
// values always reproduces the same sequence, which is what makes
// renders repeatable.
type Pcg32 struct {
	state uint64
	inc   uint64
}

// NewPcg32 returns a generator on the reference default stream.
func NewPcg32() *Pcg32 {
	return &Pcg32{state: pcg32DefaultState, inc: pcg32DefaultInc}
}

// Seed resets the stream as a pure function of (initState, initSeq) -
// there is no hidden entropy source anywhere.
func (p *Pcg32)Seed(initState, initSeq uint64) {
	p.state = 0
	p.inc = (initSeq << 1) | 1
	p.Next()
	p.state += initState
	p.Next()
}

// Next advances the LCG and returns the permuted 32-bit output.
func (p *Pcg32)Next() uint32 {
	old := p.state
	p.state = old*pcg32Mult + (p.inc | 1)
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Unit maps a draw onto [0, 1]. The divisor is MaxUint32, not 2^32, so
// the largest draw lands on exactly 1.
func (p *Pcg32)Unit() float64 {
	return float64(p.Next()) / math.MaxUint32
}
