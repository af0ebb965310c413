package swifft

import (
	"encoding/binary"

	"github.com/breadbored/LibSWIFFT/internal/field"
)

// Set copies x into h, coefficient-wise, canonicalising each element.
func (h *Hash) Set(x *Hash) {
	for i := range h {
		h[i] = field.ModP(x[i])
	}
}

// SetConst sets every coefficient of h to the canonical form of c.
func (h *Hash) SetConst(c int16) {
	v := field.ModP(c)
	for i := range h {
		h[i] = v
	}
}

// Add adds x into h, coefficient-wise, mod p. Add and Sub are the
// additively homomorphic operations SWIFFT's composability rests on.
func (h *Hash) Add(x *Hash) {
	for i := range h {
		h[i] = field.ModP(h[i] + x[i])
	}
}

// AddConst adds the canonical form of c to every coefficient of h.
func (h *Hash) AddConst(c int16) {
	v := field.ModP(c)
	for i := range h {
		h[i] = field.ModP(h[i] + v)
	}
}

// Sub subtracts x from h, coefficient-wise, mod p.
func (h *Hash) Sub(x *Hash) {
	for i := range h {
		h[i] = field.ModP(h[i] - x[i])
	}
}

// SubConst subtracts the canonical form of c from every coefficient of h.
func (h *Hash) SubConst(c int16) {
	v := field.ModP(c)
	for i := range h {
		h[i] = field.ModP(h[i] - v)
	}
}

// Mul multiplies h by x, coefficient-wise, mod p. Unlike the NTT's
// internal SafeMult this widens before reducing, since Hash values are
// already-canonical but not bounded to SafeMult's (-P/2,P/2] window.
func (h *Hash) Mul(x *Hash) {
	for i := range h {
		h[i] = field.Mul(h[i], x[i])
	}
}

// MulConst multiplies every coefficient of h by the canonical form of c.
func (h *Hash) MulConst(c int16) {
	v := field.ModP(c)
	for i := range h {
		h[i] = field.Mul(h[i], v)
	}
}

// Bytes encodes h as little-endian int16 coefficients, the 128-byte
// composable wire form spec.md §6 describes.
func (h *Hash) Bytes() [OutputBlockSize]byte {
	var out [OutputBlockSize]byte
	for i, c := range h {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(c))
	}
	return out
}
