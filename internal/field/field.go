// Package field provides the modular arithmetic primitives SWIFFT's
// NTT and FFT-sum phases are built from.
//
// The field is Z_P where P = 257, the SWIFFT prime. Coefficients are
// carried as signed 16-bit integers. Two reduction levels are exposed
// deliberately: QReduce brings a value into the half-open interval
// (-P/2, P/2] cheaply (a handful of conditional add/subtracts, no
// division) without requiring the result to be canonical, while ModP
// produces the fully canonical representative in [0, P) for output
// boundaries. Keeping values inside (-P/2, P/2] between NTT layers is
// what lets SafeMult's product stay inside an int16 lane.
package field

// P is the SWIFFT prime modulus.
const P = 257

// Add returns a+b without reducing. Callers are responsible for keeping
// the result inside a safe magnitude for subsequent operations.
func Add(a, b int16) int16 {
	return a + b
}

// Sub returns a-b without reducing.
func Sub(a, b int16) int16 {
	return a - b
}

// AddSub performs the in-place NTT butterfly (a,b) <- (a+b, a-b).
func AddSub(a, b *int16) {
	ta, tb := *a, *b
	*a = Add(ta, tb)
	*b = Sub(ta, tb)
}

// Neg returns -a.
func Neg(a int16) int16 {
	return -a
}

// SafeMult multiplies a and b under the caller's guarantee that both
// operands already lie within (-P/2, P/2], so the true product fits an
// int16 lane (at most (P/2)^2 < 2^15) without needing to widen.
func SafeMult(a, b int16) int16 {
	return int16(int32(a) * int32(b))
}

// QReduce partially reduces x into (-P/2, P/2]. Since P is odd, in
// integer terms that is [-128, 128]: each residue has exactly one
// representative there. It is not required to be idempotent beyond that
// range; it exists purely to keep magnitudes bounded between NTT layers
// without paying for a division.
func QReduce(x int16) int16 {
	for x > P/2 {
		x -= P
	}
	for x < -P/2 {
		x += P
	}
	return x
}

// ModP fully reduces x to the canonical representative in [0, P). Used
// only at output boundaries (fftsum's final store, hash algebra).
func ModP(x int16) int16 {
	r := int32(x) % P
	if r < 0 {
		r += P
	}
	return int16(r)
}

// Mul returns a*b reduced to canonical [0, P). Unlike SafeMult this
// makes no assumption about the input magnitudes: it widens to int32
// before reducing, which is what the hash-algebra Mul operation (4.E)
// requires since its operands are already-canonical, unbounded-relative
// -to-SafeMult hash coefficients.
func Mul(a, b int16) int16 {
	p := int32(a) * int32(b)
	r := p % P
	if r < 0 {
		r += P
	}
	return int16(r)
}
