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

// Forney computes the error magnitude at root i (i.e. location
// inv(alpha^i)) via Forney's formula, using the DAT b0=0 convention: the
// formal derivative of sigma reduces to its odd-indexed terms only.
func Forney(sigma, omega []byte, i int) byte {
	invBeta := gf.InvAlphaPower(i)

	numerator := gf.PolyEval(omega, invBeta)

	var denomSum byte
	y := byte(1)
	for j := 1; j < len(sigma); j++ {
		if j&1 == 1 {
			denomSum = gf.Add(denomSum, gf.Mul(sigma[j], y))
		}
		y = gf.Mul(y, invBeta)
	}
	denominator := gf.Mul(denomSum, invBeta)

	return gf.Mul(numerator, gf.Inv(denominator))
}
