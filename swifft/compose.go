package swifft

import (
	"github.com/breadbored/LibSWIFFT/internal/fftsum"
	"github.com/breadbored/LibSWIFFT/internal/ntt"
)

// FFT exposes the NTT phase directly for callers composing their own
// pipeline instead of going through Compute/ComputeSigned. input and
// sign are one 256-byte block each; out receives N*M coefficients in
// the brick-major, lane-minor interleave FFTSum expects.
func FFT(input, sign *[InputBlockSize]byte, out *[N * BricksPerBlock]int16) {
	ntt.FFT(input, sign, out)
}

// FFTMultiple is the FFT phase over nblocks independent blocks stored
// contiguously in inputs/signs, writing nblocks*N*M coefficients to out.
func FFTMultiple(nblocks int, inputs, signs []byte, out []int16) {
	ntt.FFTMultiple(nblocks, inputs, signs, out)
}

// FFTSum exposes the FFT-sum phase directly: it folds key and fftout
// (each N*M coefficients, in FFT's interleave) down to N canonical
// output coefficients.
func FFTSum(key, fftout []int16, out *[N]int16) {
	fftsum.FFTSum(key, fftout, out)
}

// FFTSumMultiple is the FFT-sum phase over nblocks independent blocks.
func FFTSumMultiple(nblocks int, key, fftout []int16, out []int16) {
	fftsum.FFTSumMultiple(nblocks, key, fftout, out)
}
