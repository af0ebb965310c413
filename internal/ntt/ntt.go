// Package ntt implements SWIFFT's NTT / "FFT phase" (component C): the
// brick-wise butterfly network that turns one 256-byte input block (and
// its matching sign block) into N*M coefficients, using the twiddle and
// sign table precomputed in package tables.
package ntt

import (
	"github.com/breadbored/LibSWIFFT/internal/field"
	"github.com/breadbored/LibSWIFFT/internal/tables"
)

// FFT computes the FFT phase for a single block, writing N*M
// coefficients to out in brick-major, then octet, then lane-minor order:
// out[brick*64 + octet*8 + lane] (out[brick*64 : brick*64+64] holds one
// 64-coefficient brick).
// This is the interleave fftsum.FFTSum must (and does) also assume.
func FFT(input, sign *[tables.InputBlockSize]byte, out *[tables.N * tables.M]int16) {
	for brick := 0; brick < tables.M; brick++ {
		off := brick * 8
		var v [8]field.Vec8
		for k := 0; k < 8; k++ {
			t := input[off+k]
			s := sign[off+k]
			idx := int(s)<<8 | int(t)
			entry := tables.FFTTable[idx]
			if k == 0 {
				v[0] = entry
			} else {
				// entry is already within (-P/2, P/2] (FFTTable is
				// built from qReduce'd ntt8 output), and Multipliers[k]
				// is within the same bound, so SafeMult's product fits
				// an int16 lane; qReduce it immediately afterwards so
				// v[k] re-enters layer-1's AddSub already bounded to
				// (-P/2, P/2], not to SafeMult's full product range.
				var scaled field.Vec8
				for i, x := range entry {
					scaled[i] = field.QReduce(field.SafeMult(x, tables.Multipliers[k]))
				}
				v[k] = scaled
			}
		}

		field.AddSubVec(&v[0], &v[1])
		field.AddSubVec(&v[2], &v[3])
		field.AddSubVec(&v[4], &v[5])
		field.AddSubVec(&v[6], &v[7])

		v[2] = field.QReduceVec(v[2])
		v[3] = field.QReduceVec(field.Shift(v[3], 4))
		v[6] = field.QReduceVec(v[6])
		v[7] = field.QReduceVec(field.Shift(v[7], 4))

		field.AddSubVec(&v[0], &v[2])
		field.AddSubVec(&v[1], &v[3])
		field.AddSubVec(&v[4], &v[6])
		field.AddSubVec(&v[5], &v[7])

		v[4] = field.QReduceVec(v[4])
		v[5] = field.QReduceVec(field.Shift(v[5], 2))
		v[6] = field.QReduceVec(field.Shift(v[6], 4))
		v[7] = field.QReduceVec(field.Shift(v[7], 6))

		field.AddSubVec(&v[0], &v[4])
		field.AddSubVec(&v[1], &v[5])
		field.AddSubVec(&v[2], &v[6])
		field.AddSubVec(&v[3], &v[7])

		for k := range v {
			v[k] = field.QReduceVec(v[k])
		}

		base := brick * 64
		for k := 0; k < 8; k++ {
			for lane := 0; lane < 8; lane++ {
				out[base+k*8+lane] = v[k][lane]
			}
		}
	}
}

// FFTMultiple runs FFT over nblocks independent blocks stored
// contiguously. It performs no parallelism itself; the batch package
// wraps it with the parallel/serial threshold split.
func FFTMultiple(nblocks int, inputs, signs []byte, out []int16) {
	for i := 0; i < nblocks; i++ {
		var in, sg [tables.InputBlockSize]byte
		copy(in[:], inputs[i*tables.InputBlockSize:(i+1)*tables.InputBlockSize])
		copy(sg[:], signs[i*tables.InputBlockSize:(i+1)*tables.InputBlockSize])
		var brickOut [tables.N * tables.M]int16
		FFT(&in, &sg, &brickOut)
		copy(out[i*tables.N*tables.M:(i+1)*tables.N*tables.M], brickOut[:])
	}
}
