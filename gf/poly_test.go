package gf

import "testing"

func TestPolyAddSelfInverse(t *testing.T) {
	p := []byte{1, 2, 3, 4}
	q := []byte{5, 6}
	sum := PolyAdd(p, q)
	back := PolyAdd(sum, q)
	for i, b := range p {
		if back[i] != b {
			t.Fatalf("PolyAdd(PolyAdd(p,q),q)[%d] = %d, want %d", i, back[i], b)
		}
	}
}

func TestPolyMulDegree(t *testing.T) {
	p := []byte{1, 2, 3}
	q := []byte{1, 1}
	got := PolyMul(p, q)
	if len(got) != len(p)+len(q)-1 {
		t.Fatalf("PolyMul length = %d, want %d", len(got), len(p)+len(q)-1)
	}
}

func TestPolyEvalConstant(t *testing.T) {
	p := []byte{7}
	for x := 0; x < 256; x++ {
		if got := PolyEval(p, byte(x)); got != 7 {
			t.Fatalf("PolyEval(%v, %d) = %d, want 7", p, x, got)
		}
	}
}

func TestPolyIsZero(t *testing.T) {
	if !PolyIsZero(nil) {
		t.Fatalf("PolyIsZero(nil) = false, want true")
	}
	if !PolyIsZero([]byte{0, 0, 0}) {
		t.Fatalf("PolyIsZero(all zero) = false, want true")
	}
	if PolyIsZero([]byte{0, 1, 0}) {
		t.Fatalf("PolyIsZero([0,1,0]) = true, want false")
	}
}

func TestPolySlicePrefixShorterThanN(t *testing.T) {
	p := []byte{1, 2}
	got := PolySlicePrefix(p, 5)
	if len(got) != 2 {
		t.Fatalf("PolySlicePrefix(%v, 5) length = %d, want 2", p, len(got))
	}
}

func TestPolyDivModByLinearExactRoot(t *testing.T) {
	// (x + 3)(x + 5) = x^2 + (3^5)x + (3*5), built via PolyMul so the
	// divisor root is known exactly.
	factorA := []byte{3, 1}
	factorB := []byte{5, 1}
	product := PolyMul(factorA, factorB)

	quotient, remainder, isZero := PolyDivModByLinear(product, 3)
	if !isZero {
		t.Fatalf("PolyDivModByLinear(%v, 3) remainder = %d, want 0", product, remainder)
	}
	want := factorB
	for i, b := range want {
		if quotient[i] != b {
			t.Fatalf("quotient[%d] = %d, want %d", i, quotient[i], b)
		}
	}
}

func TestPolyDivModByLinearNonRoot(t *testing.T) {
	p := []byte{1, 0, 1} // x^2 + 1
	_, remainder, isZero := PolyDivModByLinear(p, 9)
	if isZero {
		t.Fatalf("PolyDivModByLinear(%v, 9) unexpectedly exact", p)
	}
	want := PolyEval(p, 9)
	if remainder != want {
		t.Fatalf("remainder = %d, want PolyEval = %d", remainder, want)
	}
}
