package rs

import "testing"

func TestCheckMatrixShapes(t *testing.T) {
	hp := GenerateHp()
	if hp.Rows != 4 || hp.N != 32 {
		t.Fatalf("Hp shape = %dx%d, want 4x32", hp.Rows, hp.N)
	}
	hq := GenerateHq()
	if hq.Rows != 6 || hq.N != 32 {
		t.Fatalf("Hq shape = %dx%d, want 6x32", hq.Rows, hq.N)
	}
	hi := GenerateHi()
	if hi.Rows != 2 || hi.N != 46 {
		t.Fatalf("Hi shape = %dx%d, want 2x46", hi.Rows, hi.N)
	}
}

func TestCheckMatrixTopRowIsAllOnes(t *testing.T) {
	// Row 0 is alpha^0 for every column, i.e. all ones, independent of N.
	for _, h := range []CheckMatrix{GenerateHp(), GenerateHq(), GenerateHi()} {
		for c := 0; c < h.N; c++ {
			if h.H[0][c] != 1 {
				t.Fatalf("H[0][%d] = %d, want 1", c, h.H[0][c])
			}
		}
	}
}

func TestSyndromeZeroForZeroCodeword(t *testing.T) {
	h := GenerateHp()
	v := make([]byte, h.N)
	s := Syndrome(v, h)
	for i, b := range s {
		if b != 0 {
			t.Fatalf("Syndrome(zero)[%d] = %d, want 0", i, b)
		}
	}
}
