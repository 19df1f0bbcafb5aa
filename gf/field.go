// The MIT License (MIT)
//
// Copyright (c) 2024 ddsrecover contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package gf implements GF(2^8) arithmetic for the DAT/DDS Reed-Solomon
// code: polynomials of degree <= 7 over GF(2), reduced modulo
// G(x) = x^8 + x^4 + x^3 + x^2 + 1 (0x11D), with primitive element alpha
// = 0x02.
package gf

const (
	// ModPoly is the field's reduction polynomial, x^8+x^4+x^3+x^2+1.
	ModPoly = 0x11D
	// modPolyTop is the bit that signals a pending reduction.
	modPolyTop = 0x100
	// Primitive is alpha, the code's primitive element.
	Primitive byte = 0x02
)

// Add returns a+b in GF(2^8), which is bitwise XOR.
func Add(a, b byte) byte {
	return a ^ b
}

// Mul multiplies two field elements, reducing modulo ModPoly.
func Mul(a, b byte) byte {
	var acc uint16
	for i := 0; i < 8; i++ {
		acc <<= 1
		if acc&modPolyTop != 0 {
			acc ^= ModPoly
		}
		if a&0x80 != 0 {
			acc ^= uint16(b)
		}
		a <<= 1
	}
	return byte(acc)
}

// Pow raises a to the integer power e, reducing modulo ModPoly. Pow(a, 0)
// is 1 for any a, including 0; Pow(0, e) for e > 0 is 0 — both fall out of
// the square-and-multiply loop below without a special case, since the
// leading bit of any e > 0 is always 1.
func Pow(a byte, e int) byte {
	var acc byte = 1
	for _, bit := range Splat(e) {
		acc = Mul(acc, acc)
		if bit == 1 {
			acc = Mul(acc, a)
		}
	}
	return acc
}

// Inv returns the multiplicative inverse of a. Inv(0) is defined to
// return 0; callers must not rely on that in a division where it matters.
func Inv(a byte) byte {
	return Pow(a, 254)
}

// Splat returns the binary expansion of x, most-significant-bit first.
// It always returns at least one bit: Splat(0) == []int{0}.
func Splat(x int) []int {
	var bits []int
	for {
		bits = append([]int{x & 1}, bits...)
		x >>= 1
		if x == 0 {
			break
		}
	}
	return bits
}

// AlphaPowers holds alpha^i for i in [0, 256).
var AlphaPowers [256]byte

// LogAlpha holds, for a nonzero field element x, the i in [0,255) such
// that AlphaPowers[i] == x. LogAlpha[0] is defined but meaningless, per
// the field's contract.
var LogAlpha [256]byte

// Inverses holds Inv(i) for i in [1, 256); Inverses[0] is 0.
var Inverses [256]byte

func init() {
	for i := 0; i < 256; i++ {
		AlphaPowers[i] = Pow(Primitive, i)
	}
	for i, x := range AlphaPowers {
		LogAlpha[x] = byte(i % 255)
	}
	for i := 1; i < 256; i++ {
		Inverses[i] = Inv(byte(i))
	}
}

// InvAlphaPower returns Inv(Pow(Primitive, i)) via the precomputed alpha
// power table, i.e. alpha^(-i mod 255).
func InvAlphaPower(i int) byte {
	idx := ((255-i)%255 + 255) % 255
	return AlphaPowers[idx]
}
