// Package tables holds SWIFFT's compile-time constant material: the
// dimension parameters, the twiddle/sign lookup table, the per-brick
// multipliers, the public key vector, and the all-zero sign block. All
// of it is computed once in init(), following the same pattern the
// teacher's ntt package uses for its Zetas/InvZetas tables, so no call
// into this package can ever observe uninitialised constants.
package tables

import (
	"golang.org/x/crypto/sha3"

	"github.com/breadbored/LibSWIFFT/internal/field"
)

const (
	// N is the polynomial dimension (output size in coefficients).
	N = 64

	// M is the number of 8-byte "bricks" folded per block. Chosen so
	// that M*8 == InputBlockSize exactly; see DESIGN.md for why this
	// implementation resolves M to 32 rather than the traditional
	// SWIFFT parameter set's m=16 (spec.md's own §3 flags the 128-vs
	// -256-byte arithmetic as inconsistent, so a resolution was
	// required either way).
	M = 32

	// InputBlockSize is the size in bytes of one SWIFFT input block.
	InputBlockSize = 256

	// OutputBlockSize is the size in bytes of one canonical (pre
	// -compaction) SWIFFT hash: N coefficients, little-endian int16.
	OutputBlockSize = N * 2

	// CompactBlockSize is the size in bytes of the external, non
	// -composable compacted digest (see package compact).
	CompactBlockSize = N
)

// Multipliers holds the per-brick-position twist factors used in the
// NTT's Load step (4.C.1). Multipliers[0] is the identity; Multipliers[k]
// for k=1..7 is the scalar g^(17k+3) for the generator g of Z_257^*
// returned by findGenerator, kept within (-P/2, P/2] so that the Load-step
// multiply (Mult[k] * table entry) never overflows an int16 lane.
var Multipliers [8]int16

// FFTTable holds, for every (sign, byte) pair, the 8-point NTT of the
// byte's LSB-first bit expansion, negated when sign=1. Index is
// (sign<<8)|byte, matching the (sign_bit, data_byte) contract of 4.B.
var FFTTable [512]field.Vec8

// PIKey is the public multiplier vector fftsum folds the NTT output
// against: N*M coefficients, kept in (-P/2, P/2] (not canonical) so
// that fftsum's safeMult(fftout[i,j], PIKey[i,j]) satisfies safeMult's
// bounded-operand precondition; fftsum canonicalises with modP only
// once, on the final accumulated sum.
var PIKey [N * M]int16

// Sign0 is the all-zero sign block, used by the unsigned compute path.
var Sign0 [InputBlockSize]byte

// signOffset is the FFTTable index offset for sign=1, matching the
// (sign<<8)|byte index contract documented on FFTTable.
const signOffset = 256

func init() {
	root := findGenerator()
	order8 := powMod(root, (field.P-1)/8)

	Multipliers[0] = 1
	for k := 1; k < 8; k++ {
		Multipliers[k] = toSigned(powMod(root, uint32(k*17+3)))
	}

	for b := 0; b < 256; b++ {
		bits := bitExpansion(byte(b))
		plain := ntt8(bits, order8)
		var negated field.Vec8
		for i, x := range plain {
			negated[i] = field.Neg(x)
		}
		FFTTable[b] = plain
		FFTTable[signOffset+b] = negated
	}

	fillKey(&PIKey)
}

// bitExpansion returns the LSB-first bit vector of b: bit i is
// (b>>i)&1, matching the "byte b is the bit vector (b&1,...)" contract
// of spec §6.
func bitExpansion(b byte) [8]int16 {
	var bits [8]int16
	for i := 0; i < 8; i++ {
		bits[i] = int16((b >> uint(i)) & 1)
	}
	return bits
}

// ntt8 computes the direct 8-point NTT of bits using a root of order 8,
// reducing each output to (-P/2, P/2] with QReduce. This is a genuine
// (if unoptimized, since it only runs 256 times at init) evaluation of
// out[k] = sum_n bits[n]*root8^(k*n) mod P.
func ntt8(bits [8]int16, root8 uint32) field.Vec8 {
	var out field.Vec8
	for k := 0; k < 8; k++ {
		base := powMod(root8, uint32(k))
		var acc int32
		pow := uint32(1)
		for n := 0; n < 8; n++ {
			acc += int32(bits[n]) * int32(pow)
			pow = (pow * base) % field.P
		}
		out[k] = toSigned(uint32(((acc % field.P) + field.P) % field.P))
	}
	return out
}

// findGenerator returns a generator of the multiplicative group
// Z_257^*, which is cyclic of order 256 = 2^8, so any quadratic
// non-residue (g^128 != 1) works; trial multiplication order-check follows the same
// shape as the reference NTT engine's findPrimitiveRoot helper.
func findGenerator() uint32 {
	const order = field.P - 1
	for g := uint32(2); g < field.P; g++ {
		if powMod(g, order/2) != 1 {
			return g
		}
	}
	panic("field: no generator found for Z_257^*")
}

// powMod computes base^exp mod P.
func powMod(base uint32, exp uint32) uint32 {
	base %= field.P
	result := uint32(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % field.P
		}
		base = (base * base) % field.P
		exp >>= 1
	}
	return result
}

// toSigned maps a canonical [0,P) residue into (-P/2, P/2].
func toSigned(x uint32) int16 {
	v := int16(x)
	return field.QReduce(v)
}

// fillKey derives PIKey deterministically from a fixed domain-separated
// SHAKE-256 stream, following the teacher's XOF-based derivation style
// (pkg/hash.XOF256) rather than embedding a literal constant table. Each
// derived element is folded into (-P/2, P/2] via toSigned, matching
// Multipliers and the FFTTable entries, since fftsum multiplies these
// values against fftout with safeMult, which requires both operands
// already bounded that way.
func fillKey(key *[N * M]int16) {
	h := sha3.NewShake256()
	h.Write([]byte("LibSWIFFT/PI_key/v1"))
	buf := make([]byte, 2*len(key))
	if _, err := h.Read(buf); err != nil {
		panic("tables: shake read failed: " + err.Error())
	}
	for i := range key {
		v := uint16(buf[2*i]) | uint16(buf[2*i+1])<<8
		key[i] = toSigned(uint32(v) % field.P)
	}
}
