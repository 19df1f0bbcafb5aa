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

package rs

import "github.com/jfcooper/ddsrecover/gf"

// SarwateYan solves the key equation for an errors-and-erasures decode,
// combining erasure preconditioning (via chi, the erasure locator
// polynomial) with the extended-Euclidean search for the error-locator
// polynomial sigma and error-evaluator polynomial omega. It is the single
// hardware-oriented iterative driver described for the C1/C2/C3 codes;
// Berlekamp-Massey is deliberately not used here.
//
// twoT is derived from len(syndrome). The bool return is false, i.e. the
// codeword is uncorrectable, if l is not negative at the end of the loop
// or if chi holds more coefficients than the twoT iterations consumed.
func SarwateYan(syndrome, chi []byte) (sigma, omega []byte, ok bool) {
	twoT := len(syndrome)

	u := make([]byte, twoT+1)
	u[twoT] = 1
	v := append([]byte{}, syndrome...)
	x := []byte{1}
	w := []byte{0}
	l := -1

	e := append([]byte{}, chi...)

	for i := 0; i < twoT; i++ {
		first := len(e) > 0

		var g, z byte
		if first {
			g = e[0]
			z = 1
		} else {
			g = u[twoT]
			z = v[twoT-1]
		}

		swap := !first && v[twoT-1] != 0 && l < 0
		switch {
		case swap:
			l = -(l + 1)
		case !first:
			l = l - 1
		}

		if first {
			e = e[1:]
		}

		var vAdjust, xAdjust []byte
		if first {
			vAdjust = gf.PolyScalarMul(v, z)
			xAdjust = gf.PolyScalarMul(x, z)
		} else {
			vAdjust = gf.PolyScalarMul(u, z)
			xAdjust = gf.PolyScalarMul(w, z)
		}

		powV := gf.PolyPrependZero(gf.PolySlicePrefix(v, twoT))
		powX := gf.PolyPrependZero(gf.PolySlicePrefix(x, twoT))

		newV := gf.PolyAdd(gf.PolyScalarMul(powV, g), vAdjust)
		newX := gf.PolyAdd(gf.PolyScalarMul(powX, g), xAdjust)

		if swap {
			u = powV
			w = powX
		}
		v = newV
		x = newX
	}

	sigma = gf.PolySlicePrefix(x, twoT+1)
	omega = gf.PolySlicePrefix(v, twoT)
	ok = l < 0 && len(e) == 0
	return sigma, omega, ok
}
