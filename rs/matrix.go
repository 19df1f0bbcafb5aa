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

// Package rs implements the DAT/DDS Reed-Solomon errors-and-erasures
// decoder: syndrome computation, the Sarwate-Yan extended-Euclidean key
// equation solver, Chien search, and Forney's formula, parameterised over
// the check matrices of the three DAT/DDS codes (C1/Hp, C2/Hq, C3/Hi).
package rs

import "github.com/jfcooper/ddsrecover/gf"

// CheckMatrix is a parity-check matrix over GF(2^8): Rows syndromes,
// each a linear combination of N codeword symbols.
type CheckMatrix struct {
	Rows int
	N    int
	H    [][]byte
}

// GenerateHp builds the 4x32 "P" check matrix (the C1 code), using the
// 4-row (b0=0) DAT convention: row r, column c is alpha^(r*(n-1-c)).
func GenerateHp() CheckMatrix {
	return generateCheckMatrix(4, 32)
}

// GenerateHq builds the 6x32 "Q" check matrix (the C2 code).
func GenerateHq() CheckMatrix {
	return generateCheckMatrix(6, 32)
}

// GenerateHi builds the 2x46 "I" check matrix (the C3/DDS code).
func GenerateHi() CheckMatrix {
	return generateCheckMatrix(2, 46)
}

func generateCheckMatrix(rows, n int) CheckMatrix {
	h := make([][]byte, rows)
	for r := 0; r < rows; r++ {
		row := make([]byte, n)
		for c := 0; c < n; c++ {
			row[c] = gf.Pow(gf.Primitive, r*(n-1-c))
		}
		h[r] = row
	}
	return CheckMatrix{Rows: rows, N: n, H: h}
}

// Syndrome computes the check matrix's syndrome vector for codeword v:
// syndrome[r] = sum_c v[c] * H[r][c].
func Syndrome(v []byte, h CheckMatrix) []byte {
	s := make([]byte, h.Rows)
	for r := 0; r < h.Rows; r++ {
		var acc byte
		for c := 0; c < h.N; c++ {
			acc = gf.Add(acc, gf.Mul(v[c], h.H[r][c]))
		}
		s[r] = acc
	}
	return s
}
