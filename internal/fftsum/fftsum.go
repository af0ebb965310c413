// Package fftsum implements SWIFFT's FFT-sum phase (component D): the
// modular multiply-accumulate that folds N*M NTT coefficients against a
// same-shaped key vector into N canonical output coefficients.
package fftsum

import (
	"github.com/breadbored/LibSWIFFT/internal/field"
	"github.com/breadbored/LibSWIFFT/internal/tables"
)

// FFTSum computes out[j] = ModP(sum_i QReduce(SafeMult(fftout[i,j], key[i,j])))
// for j in [0,N), using the brick-major, lane-minor interleave FFT
// writes. fftout and key must each have length N*M.
func FFTSum(key, fftout []int16, out *[tables.N]int16) {
	var acc [tables.N]int16
	for i := 0; i < tables.M; i++ {
		base := i * tables.N
		for j := 0; j < tables.N; j++ {
			acc[j] = field.Add(acc[j], field.QReduce(field.SafeMult(fftout[base+j], key[base+j])))
		}
	}
	for j := range acc {
		out[j] = field.ModP(acc[j])
	}
}

// FFTSumMultiple runs FFTSum over nblocks independent blocks of fftout,
// all folded against the same key, writing N canonical coefficients per
// block contiguously to out.
func FFTSumMultiple(nblocks int, key, fftout []int16, out []int16) {
	for i := 0; i < nblocks; i++ {
		var res [tables.N]int16
		FFTSum(key, fftout[i*tables.N*tables.M:(i+1)*tables.N*tables.M], &res)
		copy(out[i*tables.N:(i+1)*tables.N], res[:])
	}
}
