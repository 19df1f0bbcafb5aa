package gf

import "testing"

func TestMulIdentities(t *testing.T) {
	for a := 0; a < 256; a++ {
		if got := Mul(byte(a), 0); got != 0 {
			t.Fatalf("Mul(%d, 0) = %d, want 0", a, got)
		}
		if got := Mul(byte(a), 1); got != byte(a) {
			t.Fatalf("Mul(%d, 1) = %d, want %d", a, got, a)
		}
	}
}

func TestMulCommutative(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for b := 0; b < 256; b += 23 {
			if Mul(byte(a), byte(b)) != Mul(byte(b), byte(a)) {
				t.Fatalf("Mul(%d,%d) != Mul(%d,%d)", a, b, b, a)
			}
		}
	}
}

func TestInvRoundTrip(t *testing.T) {
	for a := 1; a < 256; a++ {
		inv := Inv(byte(a))
		if got := Mul(byte(a), inv); got != 1 {
			t.Fatalf("Mul(%d, Inv(%d)=%d) = %d, want 1", a, a, inv, got)
		}
	}
}

func TestInversesTableMatchesInv(t *testing.T) {
	for i := 1; i < 256; i++ {
		if Inverses[i] != Inv(byte(i)) {
			t.Fatalf("Inverses[%d] = %d, want %d", i, Inverses[i], Inv(byte(i)))
		}
	}
	if Inverses[0] != 0 {
		t.Fatalf("Inverses[0] = %d, want 0", Inverses[0])
	}
}

func TestAlphaPowersCoverNonzeroField(t *testing.T) {
	seen := make(map[byte]bool)
	for i := 0; i < 255; i++ {
		seen[AlphaPowers[i]] = true
	}
	if len(seen) != 255 {
		t.Fatalf("alpha powers cover %d distinct nonzero values, want 255", len(seen))
	}
	if AlphaPowers[255] != AlphaPowers[0] {
		t.Fatalf("alpha powers should repeat with period 255: AlphaPowers[255]=%d AlphaPowers[0]=%d", AlphaPowers[255], AlphaPowers[0])
	}
}

func TestLogAlphaIsInverseOfAlphaPowers(t *testing.T) {
	for i := 0; i < 255; i++ {
		x := AlphaPowers[i]
		if int(LogAlpha[x]) != i {
			t.Fatalf("LogAlpha[AlphaPowers[%d]=%d] = %d, want %d", i, x, LogAlpha[x], i)
		}
	}
}

func TestSplatZero(t *testing.T) {
	got := Splat(0)
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("Splat(0) = %v, want [0]", got)
	}
}

func TestSplatMatchesBinary(t *testing.T) {
	cases := map[int][]int{
		1:   {1},
		2:   {1, 0},
		5:   {1, 0, 1},
		254: {1, 1, 1, 1, 1, 1, 1, 0},
	}
	for x, want := range cases {
		got := Splat(x)
		if len(got) != len(want) {
			t.Fatalf("Splat(%d) = %v, want %v", x, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Splat(%d) = %v, want %v", x, got, want)
			}
		}
	}
}

func TestPowZeroExponentIsOne(t *testing.T) {
	for a := 0; a < 256; a++ {
		if Pow(byte(a), 0) != 1 {
			t.Fatalf("Pow(%d, 0) = %d, want 1", a, Pow(byte(a), 0))
		}
	}
}

func TestPowZeroBaseIsZero(t *testing.T) {
	for e := 1; e < 10; e++ {
		if Pow(0, e) != 0 {
			t.Fatalf("Pow(0, %d) = %d, want 0", e, Pow(0, e))
		}
	}
}

func TestInvAlphaPowerMatchesDirectComputation(t *testing.T) {
	for i := 0; i < 46; i++ {
		want := Inv(Pow(Primitive, i))
		got := InvAlphaPower(i)
		if got != want {
			t.Fatalf("InvAlphaPower(%d) = %d, want %d", i, got, want)
		}
	}
}
