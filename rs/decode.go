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

// Unknown is the sentinel value for a codeword symbol that decoding could
// not recover: "a byte that is not a byte."
const Unknown = 256

// Decode runs the full errors-and-erasures pipeline against check matrix
// h: syndrome check, erasure-locator construction, Sarwate-Yan, Chien
// search, Forney correction, and a post-correction syndrome re-check.
//
// erasures holds the indices (0-based, matching h's column order) of
// symbols known a priori to be unreliable. On success, ok is true and the
// returned slice holds h.N corrected symbol values in [0,255]. On
// failure, ok is false and every entry of the returned slice is Unknown.
func Decode(v []byte, erasures []int, h CheckMatrix) ([]int, bool) {
	syndrome := Syndrome(v, h)
	if gf.PolyIsZero(syndrome) {
		return toInts(v), true
	}

	chi := make([]byte, len(erasures))
	for idx, c := range erasures {
		chi[idx] = gf.Pow(gf.Primitive, h.N-1-c)
	}

	sigma, omega, ok := SarwateYan(syndrome, chi)
	if !ok {
		return allUnknown(h.N), false
	}

	roots := ChienSearch(sigma, h.N)
	if len(roots) == 0 {
		return allUnknown(h.N), false
	}

	corrected := append([]byte{}, v...)
	residual := append([]byte{}, syndrome...)
	for _, i := range roots {
		magnitude := Forney(sigma, omega, i)
		loc := h.N - 1 - i
		corrected[loc] = gf.Add(corrected[loc], magnitude)
		for r := 0; r < h.Rows; r++ {
			residual[r] = gf.Add(residual[r], gf.Mul(h.H[r][loc], magnitude))
		}
	}

	if !gf.PolyIsZero(residual) {
		return allUnknown(h.N), false
	}

	return toInts(corrected), true
}

func toInts(v []byte) []int {
	out := make([]int, len(v))
	for i, b := range v {
		out[i] = int(b)
	}
	return out
}

func allUnknown(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = Unknown
	}
	return out
}
