package ntt

import (
	"math/rand"
	"testing"

	"github.com/breadbored/LibSWIFFT/internal/field"
	"github.com/breadbored/LibSWIFFT/internal/tables"
)

func TestFFTZeroInputIsZero(t *testing.T) {
	var input, sign [tables.InputBlockSize]byte
	var out [tables.N * tables.M]int16
	FFT(&input, &sign, &out)
	for i, v := range out {
		if v != 0 {
			t.Fatalf("out[%d] = %d, want 0 for all-zero input", i, v)
		}
	}
}

func TestFFTDeterministic(t *testing.T) {
	var input, sign [tables.InputBlockSize]byte
	for i := range input {
		input[i] = byte(i)
	}
	var out1, out2 [tables.N * tables.M]int16
	FFT(&input, &sign, &out1)
	FFT(&input, &sign, &out2)
	if out1 != out2 {
		t.Fatal("FFT is not deterministic for identical input")
	}
}

func TestFFTSignedDiffersFromUnsignedForNonzeroInput(t *testing.T) {
	var input, sign0, sign1 [tables.InputBlockSize]byte
	for i := range input {
		input[i] = byte(i)
		sign1[i] = 1
	}
	var outUnsigned, outSigned [tables.N * tables.M]int16
	FFT(&input, &sign0, &outUnsigned)
	FFT(&input, &sign1, &outSigned)
	if outUnsigned == outSigned {
		t.Fatal("signed and unsigned FFT outputs should differ for nonzero ramp input")
	}
}

// wideBrick reimplements one brick of the butterfly network with int64
// lanes, which cannot silently wrap for any value this network
// produces. It mirrors FFT's exact sequence of AddSub/QReduce/Shift
// calls, but on widened lanes, so comparing its result against FFT's
// int16 result over many random inputs is a direct check that the
// int16 path never overflows: any lane-width bug would make the two
// diverge, since QReduce/AddSub/Shift are themselves exact, deterministic
// functions of their input and only int16 wraparound could disagree with
// the int64 arithmetic below.
func wideBrick(entries [8]field.Vec8) [8][8]int64 {
	var v [8][8]int64
	for k := 0; k < 8; k++ {
		for i := 0; i < 8; i++ {
			if k == 0 {
				v[k][i] = int64(entries[k][i])
			} else {
				v[k][i] = qReduceWide(int64(entries[k][i]) * int64(tables.Multipliers[k]))
			}
		}
	}

	addSubWide(&v[0], &v[1])
	addSubWide(&v[2], &v[3])
	addSubWide(&v[4], &v[5])
	addSubWide(&v[6], &v[7])

	v[2] = qReduceWideVec(v[2])
	v[3] = qReduceWideVec(shiftWide(v[3], 4))
	v[6] = qReduceWideVec(v[6])
	v[7] = qReduceWideVec(shiftWide(v[7], 4))

	addSubWide(&v[0], &v[2])
	addSubWide(&v[1], &v[3])
	addSubWide(&v[4], &v[6])
	addSubWide(&v[5], &v[7])

	v[4] = qReduceWideVec(v[4])
	v[5] = qReduceWideVec(shiftWide(v[5], 2))
	v[6] = qReduceWideVec(shiftWide(v[6], 4))
	v[7] = qReduceWideVec(shiftWide(v[7], 6))

	addSubWide(&v[0], &v[4])
	addSubWide(&v[1], &v[5])
	addSubWide(&v[2], &v[6])
	addSubWide(&v[3], &v[7])

	for k := range v {
		v[k] = qReduceWideVec(v[k])
	}
	return v
}

func qReduceWide(x int64) int64 {
	for x > field.P/2 {
		x -= field.P
	}
	for x < -field.P/2 {
		x += field.P
	}
	return x
}

func qReduceWideVec(v [8]int64) [8]int64 {
	var r [8]int64
	for i, x := range v {
		r[i] = qReduceWide(x)
	}
	return r
}

func addSubWide(a, b *[8]int64) {
	for i := range a {
		ta, tb := a[i], b[i]
		a[i] = ta + tb
		b[i] = ta - tb
	}
}

func shiftWide(v [8]int64, k int) [8]int64 {
	var r [8]int64
	for i := 0; i < 8; i++ {
		j := i - k
		if j >= 0 {
			r[i] = v[j]
		} else {
			r[i] = -v[j+8]
		}
	}
	return r
}

func TestFFTMatchesWideArithmeticOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		var input, sign [tables.InputBlockSize]byte
		rng.Read(input[:])
		rng.Read(sign[:])
		for i := range sign {
			sign[i] &= 1
		}

		var out [tables.N * tables.M]int16
		FFT(&input, &sign, &out)

		for brick := 0; brick < tables.M; brick++ {
			off := brick * 8
			var entries [8]field.Vec8
			for k := 0; k < 8; k++ {
				idx := int(sign[off+k])<<8 | int(input[off+k])
				entries[k] = tables.FFTTable[idx]
			}
			want := wideBrick(entries)
			base := brick * 64
			for k := 0; k < 8; k++ {
				for lane := 0; lane < 8; lane++ {
					got := out[base+k*8+lane]
					if int64(got) != want[k][lane] {
						t.Fatalf("trial %d brick %d k=%d lane=%d: int16 FFT=%d, wide oracle=%d (int16 path likely overflowed)",
							trial, brick, k, lane, got, want[k][lane])
					}
				}
			}
		}
	}
}

func TestFFTMultipleMatchesSequential(t *testing.T) {
	const nblocks = 5
	inputs := make([]byte, nblocks*tables.InputBlockSize)
	signs := make([]byte, nblocks*tables.InputBlockSize)
	for i := range inputs {
		inputs[i] = byte(i * 7)
	}
	got := make([]int16, nblocks*tables.N*tables.M)
	FFTMultiple(nblocks, inputs, signs, got)

	for b := 0; b < nblocks; b++ {
		var in, sg [tables.InputBlockSize]byte
		copy(in[:], inputs[b*tables.InputBlockSize:(b+1)*tables.InputBlockSize])
		copy(sg[:], signs[b*tables.InputBlockSize:(b+1)*tables.InputBlockSize])
		var want [tables.N * tables.M]int16
		FFT(&in, &sg, &want)
		gotBlock := got[b*tables.N*tables.M : (b+1)*tables.N*tables.M]
		for i, w := range want {
			if gotBlock[i] != w {
				t.Fatalf("block %d coeff %d: got %d want %d", b, i, gotBlock[i], w)
			}
		}
	}
}
