package tables

import (
	"testing"

	"github.com/breadbored/LibSWIFFT/internal/field"
)

func TestZeroByteTableEntryIsZero(t *testing.T) {
	if FFTTable[0] != (field.Vec8{}) {
		t.Fatalf("FFTTable[0] (unsigned, byte=0) = %v, want zero vector", FFTTable[0])
	}
	if FFTTable[256] != (field.Vec8{}) {
		t.Fatalf("FFTTable[256] (signed, byte=0) = %v, want zero vector", FFTTable[256])
	}
}

func TestSignFlipsTable(t *testing.T) {
	for b := 1; b < 256; b++ {
		plain := FFTTable[b]
		signed := FFTTable[256+b]
		for i := range plain {
			if signed[i] != -plain[i] {
				t.Fatalf("byte %d lane %d: signed=%d want %d", b, i, signed[i], -plain[i])
			}
		}
	}
}

func TestMultipliersIdentity(t *testing.T) {
	if Multipliers[0] != 1 {
		t.Fatalf("Multipliers[0] = %d, want 1", Multipliers[0])
	}
}

func TestPIKeyWithinSafeMultBound(t *testing.T) {
	for i, v := range PIKey {
		if v < -field.P/2 || v > field.P/2 {
			t.Fatalf("PIKey[%d] = %d outside [-128, 128]", i, v)
		}
	}
}

func TestPIKeyDeterministic(t *testing.T) {
	var again [N * M]int16
	fillKey(&again)
	if again != PIKey {
		t.Fatal("fillKey is not deterministic across calls")
	}
}

func TestSign0IsZero(t *testing.T) {
	for i, b := range Sign0 {
		if b != 0 {
			t.Fatalf("Sign0[%d] = %d, want 0", i, b)
		}
	}
}
