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

package gf

// Polynomials over GF(2^8) are represented as []byte with coefficient[0]
// the units (x^0) term, matching the DAT convention used throughout this
// package.

// PolyAdd returns p+q, coefficient-wise XOR. The result's length is
// max(len(p), len(q)); this is also polynomial subtraction, since GF(2^8)
// has characteristic 2.
func PolyAdd(p, q []byte) []byte {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make([]byte, n)
	copy(out, p)
	for i, b := range q {
		out[i] ^= b
	}
	return out
}

// PolyScalarMul returns p scaled by s, element-wise, preserving len(p).
func PolyScalarMul(p []byte, s byte) []byte {
	out := make([]byte, len(p))
	for i, b := range p {
		out[i] = Mul(b, s)
	}
	return out
}

// PolyMul returns the product of p and q as a full convolution.
func PolyMul(p, q []byte) []byte {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	out := make([]byte, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			out[i+j] ^= Mul(a, b)
		}
	}
	return out
}

// PolyEval evaluates p at x using Horner's method.
func PolyEval(p []byte, x byte) byte {
	var acc byte
	for i := len(p) - 1; i >= 0; i-- {
		acc = Add(Mul(acc, x), p[i])
	}
	return acc
}

// PolyIsZero reports whether p is empty or every coefficient is 0.
func PolyIsZero(p []byte) bool {
	for _, b := range p {
		if b != 0 {
			return false
		}
	}
	return true
}

// PolySlicePrefix returns the first n coefficients of p, or all of p if
// len(p) < n — a safe prefix slice matching Python's a[0:n] semantics
// used throughout the Sarwate-Yan driver.
func PolySlicePrefix(p []byte, n int) []byte {
	if n > len(p) {
		n = len(p)
	}
	out := make([]byte, n)
	copy(out, p[:n])
	return out
}

// PolyPrependZero returns [0]+p.
func PolyPrependZero(p []byte) []byte {
	out := make([]byte, len(p)+1)
	copy(out[1:], p)
	return out
}

// PolyDivModByLinear divides dividend by (x+y) via synthetic division. It
// returns the quotient, the remainder (dividend evaluated at y), and
// whether that remainder is zero.
func PolyDivModByLinear(dividend []byte, y byte) (quotient []byte, remainder byte, isZero bool) {
	if len(dividend) == 0 {
		return nil, 0, true
	}
	q := make([]byte, len(dividend)-1)
	carry := byte(0)
	for i := len(dividend) - 1; i >= 1; i-- {
		q[i-1] = Add(dividend[i], carry)
		carry = Mul(q[i-1], y)
	}
	rem := Add(dividend[0], carry)
	return q, rem, rem == 0
}
