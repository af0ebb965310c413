package field

import "testing"

func TestModPCanonical(t *testing.T) {
	tests := []struct{ in, want int16 }{
		{0, 0},
		{1, 1},
		{256, 256},
		{257, 0},
		{258, 1},
		{-1, 256},
		{-257, 0},
		{-258, 256},
	}
	for _, tc := range tests {
		if got := ModP(tc.in); got != tc.want {
			t.Errorf("ModP(%d) = %d, want %d", tc.in, got, tc.want)
		}
		if got := ModP(tc.in); got < 0 || got >= P {
			t.Errorf("ModP(%d) = %d out of canonical range", tc.in, got)
		}
	}
}

func TestQReduceRange(t *testing.T) {
	for x := int16(-1000); x < 1000; x += 7 {
		r := QReduce(x)
		if r < -P/2 || r > P/2 {
			t.Fatalf("QReduce(%d) = %d out of [-128, 128]", x, r)
		}
		if ModP(r) != ModP(x) {
			t.Fatalf("QReduce(%d) = %d changed residue: ModP(r)=%d ModP(x)=%d", x, r, ModP(r), ModP(x))
		}
	}
}

func TestSafeMultNoOverflow(t *testing.T) {
	for a := int16(-P / 2); a <= P/2; a++ {
		for b := int16(-P / 2); b <= P/2; b += 5 {
			got := SafeMult(a, b)
			want := int32(a) * int32(b)
			if int32(got) != want {
				t.Fatalf("SafeMult(%d,%d) = %d, want %d (overflowed int16)", a, b, got, want)
			}
		}
	}
}

func TestAddSub(t *testing.T) {
	a, b := int16(10), int16(3)
	AddSub(&a, &b)
	if a != 13 || b != 7 {
		t.Fatalf("AddSub(10,3) = (%d,%d), want (13,7)", a, b)
	}
}

func TestMulIsCanonical(t *testing.T) {
	for a := int16(0); a < P; a += 3 {
		for b := int16(0); b < P; b += 5 {
			got := Mul(a, b)
			if got < 0 || got >= P {
				t.Fatalf("Mul(%d,%d) = %d out of canonical range", a, b, got)
			}
			want := int16((int32(a) * int32(b)) % P)
			if want < 0 {
				want += P
			}
			if got != want {
				t.Fatalf("Mul(%d,%d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestShiftRoundTrip(t *testing.T) {
	// Shift by k then by 8-k should return to the original vector, up
	// to the sign flips of a negacyclic rotation composing to -identity
	// at a full wrap: Shift(Shift(v,k),8-k) == Neg(v) elementwise.
	v := Vec8{1, 2, 3, 4, 5, 6, 7, 8}
	for _, k := range []int{2, 4, 6} {
		got := Shift(Shift(v, k), 8-k)
		for i := range v {
			if got[i] != Neg(v[i]) {
				t.Fatalf("Shift(Shift(v,%d),%d)[%d] = %d, want %d", k, 8-k, i, got[i], Neg(v[i]))
			}
		}
	}
}

func TestShiftZero(t *testing.T) {
	var z Vec8
	for _, k := range []int{2, 4, 6} {
		got := Shift(z, k)
		if got != (Vec8{}) {
			t.Fatalf("Shift(0,%d) = %v, want zero vector", k, got)
		}
	}
}
