package field

// Vec8 is the 8-lane register the NTT brick operates on: one "octet"
// sub-spectrum in the radix-8x8 decomposition of the 64-point NTT. A
// scalar backend keeps exactly one such register per brick position;
// a SIMD backend would pack several side by side (the O factor in the
// original LibSWIFFT source) without changing this type's contract.
type Vec8 [8]int16

// AddSubVec performs the lane-wise butterfly (a,b) <- (a+b, a-b).
func AddSubVec(a, b *Vec8) {
	for i := range a {
		AddSub(&a[i], &b[i])
	}
}

// QReduceVec applies QReduce to every lane.
func QReduceVec(v Vec8) Vec8 {
	var r Vec8
	for i, x := range v {
		r[i] = QReduce(x)
	}
	return r
}

// ModPVec applies ModP to every lane.
func ModPVec(v Vec8) Vec8 {
	var r Vec8
	for i, x := range v {
		r[i] = ModP(x)
	}
	return r
}

// Shift realizes multiplication of v by the k-th primitive 2N-th root
// of unity as a negacyclic rotation: lane i takes v[i-k] for i>=k, and
// -v[i-k+8] for i<k. k is always one of {2,4,6} per the NTT's layer
// schedule. This is the specific realization this implementation
// chooses for the "cyclic shift with negation of wrapped elements"
// the algorithm calls for (see DESIGN.md on the shift open question).
func Shift(v Vec8, k int) Vec8 {
	var r Vec8
	for i := 0; i < 8; i++ {
		j := i - k
		if j >= 0 {
			r[i] = v[j]
		} else {
			r[i] = Neg(v[j+8])
		}
	}
	return r
}
