// Package swifft computes the SWIFFT compression function: a
// provably one-way, additively homomorphic hash over Z_257[x]/(x^64+1).
// Compute and ComputeSigned handle a single 256-byte block; the
// ComputeMultiple family fans out over many independent blocks using
// package batch's static-schedule driver above its threshold.
package swifft

import (
	"github.com/breadbored/LibSWIFFT/internal/batch"
	"github.com/breadbored/LibSWIFFT/internal/fftsum"
	"github.com/breadbored/LibSWIFFT/internal/ntt"
	"github.com/breadbored/LibSWIFFT/internal/tables"
	"github.com/breadbored/LibSWIFFT/metrics"
)

const (
	// InputBlockSize is the size in bytes of one input (or sign) block.
	InputBlockSize = tables.InputBlockSize
	// OutputBlockSize is the size in bytes of one canonical hash.
	OutputBlockSize = tables.OutputBlockSize
	// N is the number of coefficients in a Hash.
	N = tables.N
	// BricksPerBlock is the number of 8-byte bricks folded per input
	// block (m in spec.md's fft/fftsum contracts): FFT writes N*
	// BricksPerBlock coefficients per block, and FFTSum folds them back
	// down to N.
	BricksPerBlock = tables.M
)

// Hash is a SWIFFT output: N coefficients, canonical in [0, 257) once
// produced by Compute/ComputeSigned or by Set/SetConst.
type Hash [N]int16

// SetParallelThreshold changes the block count above which
// ComputeMultiple/ComputeMultipleSigned switch from a serial loop to a
// parallel fan-out. Default is batch.DefaultThreshold (8).
func SetParallelThreshold(n int) { batch.SetThreshold(n) }

// ParallelThreshold returns the current parallelization threshold.
func ParallelThreshold() int { return batch.Threshold() }

// Compute returns the unsigned SWIFFT hash of input, equivalent to
// ComputeSigned(input, sign0).
func Compute(input *[InputBlockSize]byte) *Hash {
	return computeWith(input, &tables.Sign0)
}

// ComputeSigned returns the SWIFFT hash of input under the given sign
// block.
func ComputeSigned(input, sign *[InputBlockSize]byte) *Hash {
	return computeWith(input, sign)
}

func computeWith(input, sign *[InputBlockSize]byte) *Hash {
	var fftout [tables.N * tables.M]int16
	ntt.FFT(input, sign, &fftout)
	var out Hash
	var raw [tables.N]int16
	fftsum.FFTSum(tables.PIKey[:], fftout[:], &raw)
	out = Hash(raw)
	metrics.BlocksHashed.Add(1)
	return &out
}

// ComputeMultiple returns the unsigned SWIFFT hash of every block in
// inputs, using the all-zero sign block for each.
func ComputeMultiple(inputs [][InputBlockSize]byte) []Hash {
	signs := make([][InputBlockSize]byte, len(inputs))
	return computeMultiple(inputs, signs)
}

// ComputeMultipleSigned returns the SWIFFT hash of every block in
// inputs under the matching entry of signs.
func ComputeMultipleSigned(inputs, signs [][InputBlockSize]byte) []Hash {
	return computeMultiple(inputs, signs)
}

func computeMultiple(inputs, signs [][InputBlockSize]byte) []Hash {
	n := len(inputs)
	out := make([]Hash, n)
	if n == 0 {
		return out
	}

	flatIn := make([]byte, n*InputBlockSize)
	flatSign := make([]byte, n*InputBlockSize)
	for i := range inputs {
		copy(flatIn[i*InputBlockSize:], inputs[i][:])
		copy(flatSign[i*InputBlockSize:], signs[i][:])
	}
	fftout := make([]int16, n*tables.N*tables.M)
	raw := make([]int16, n*tables.N)

	timer := metrics.StartBatch(n > batch.Threshold())
	defer timer.ObserveDuration()

	batch.Run(n, func(start, end int) {
		count := end - start
		ntt.FFTMultiple(
			count,
			flatIn[start*InputBlockSize:end*InputBlockSize],
			flatSign[start*InputBlockSize:end*InputBlockSize],
			fftout[start*tables.N*tables.M:end*tables.N*tables.M],
		)
		fftsum.FFTSumMultiple(
			count,
			tables.PIKey[:],
			fftout[start*tables.N*tables.M:end*tables.N*tables.M],
			raw[start*tables.N:end*tables.N],
		)
	})

	for i := 0; i < n; i++ {
		copy(out[i][:], raw[i*tables.N:(i+1)*tables.N])
	}
	metrics.BlocksHashed.Add(float64(n))
	return out
}
