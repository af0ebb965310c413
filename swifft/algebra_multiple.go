package swifft

import "github.com/breadbored/LibSWIFFT/internal/batch"

// SetMultiple applies Set(out[i], operand[i]) for every i, in parallel
// above the configured threshold.
func SetMultiple(out, operand []Hash) {
	batch.Run(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i].Set(&operand[i])
		}
	})
}

// AddMultiple applies Add(out[i], operand[i]) for every i.
func AddMultiple(out, operand []Hash) {
	batch.Run(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i].Add(&operand[i])
		}
	})
}

// SubMultiple applies Sub(out[i], operand[i]) for every i.
func SubMultiple(out, operand []Hash) {
	batch.Run(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i].Sub(&operand[i])
		}
	})
}

// MulMultiple applies Mul(out[i], operand[i]) for every i.
func MulMultiple(out, operand []Hash) {
	batch.Run(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i].Mul(&operand[i])
		}
	})
}

// SetConstMultiple applies SetConst(out[i], operand[i]) for every i.
func SetConstMultiple(out []Hash, operand []int16) {
	batch.Run(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i].SetConst(operand[i])
		}
	})
}

// AddConstMultiple applies AddConst(out[i], operand[i]) for every i.
func AddConstMultiple(out []Hash, operand []int16) {
	batch.Run(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i].AddConst(operand[i])
		}
	})
}

// SubConstMultiple applies SubConst(out[i], operand[i]) for every i.
func SubConstMultiple(out []Hash, operand []int16) {
	batch.Run(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i].SubConst(operand[i])
		}
	})
}

// MulConstMultiple applies MulConst(out[i], operand[i]) for every i.
func MulConstMultiple(out []Hash, operand []int16) {
	batch.Run(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i].MulConst(operand[i])
		}
	})
}
