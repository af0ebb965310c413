// Package compact packs a swifft.Hash's 64 canonical coefficients into
// a 64-byte non-composable digest. The real LibSWIFFT bit-packing
// contract is out of scope here, so Compact is a clearly-labeled
// stand-in: it drops the low byte of each coefficient's canonical
// [0,257) value. Func is exported so callers needing wire
// compatibility with a different packing can substitute their own
// without touching package swifft.
package compact

import "github.com/breadbored/LibSWIFFT/swifft"

// Func packs a Hash into its compact, non-composable wire form.
type Func func(h *swifft.Hash) [64]byte

// Compact is the default Func: the high byte of each of the 64
// canonical coefficients, in coefficient order. It is lossy (the low
// byte, and with it composability, is discarded) and not intended to
// match any external LibSWIFFT packing; it exists so the concern has a
// concrete, swappable home.
func Compact(h *swifft.Hash) [64]byte {
	var out [64]byte
	for i, c := range h {
		out[i] = byte(uint16(c) >> 8)
	}
	return out
}
