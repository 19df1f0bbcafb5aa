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

// Package blockpair implements the DAT C1 code: de-interleaving a 64-byte
// block pair into the two 32-symbol Reed-Solomon codewords the format
// actually protects, correcting each independently against Hp, and
// re-interleaving the result.
package blockpair

import "github.com/jfcooper/ddsrecover/rs"

// VpsForBlockPair de-interleaves a 64-byte block pair into its two C1
// codewords: v1 carries the even-position bytes of each 32-byte block,
// v2 the odd-position bytes.
func VpsForBlockPair(pair [64]byte) (v1, v2 [32]byte) {
	var a, b [32]byte
	copy(a[:], pair[:32])
	copy(b[:], pair[32:64])
	return deinterleave(a, b)
}

func deinterleave(a, b [32]byte) (v1, v2 [32]byte) {
	for i := 0; i < 16; i++ {
		v1[i] = a[i*2]
		v1[i+16] = b[i*2]
		v2[i] = a[i*2+1]
		v2[i+16] = b[i*2+1]
	}
	return v1, v2
}

// BlockPairFromVps re-interleaves two C1 codewords into a 64-byte block
// pair, the inverse of VpsForBlockPair.
func BlockPairFromVps(v1, v2 [32]byte) [64]byte {
	var a, b [32]byte
	for i := 0; i < 16; i++ {
		a[i*2] = v1[i]
		b[i*2] = v1[i+16]
		a[i*2+1] = v2[i]
		b[i*2+1] = v2[i+16]
	}
	var out [64]byte
	copy(out[:32], a[:])
	copy(out[32:], b[:])
	return out
}

// CorrectBlockPair de-interleaves pair, decodes each resulting codeword
// independently against hp (the C1/Hp check matrix), and re-interleaves
// the result. erasures are 0-based indices into the original 64-byte
// pair; they are split by parity into each codeword's own erasure list.
// A codeword that fails to decode contributes rs.Unknown at every one of
// its 32 positions in the final output.
func CorrectBlockPair(pair [64]byte, erasures []int, hp rs.CheckMatrix) [64]int {
	v1b, v2b := VpsForBlockPair(pair)

	var evenErasures, oddErasures []int
	for _, x := range erasures {
		if x%2 == 0 {
			evenErasures = append(evenErasures, x/2)
		} else {
			oddErasures = append(oddErasures, x/2)
		}
	}

	dec1, ok1 := rs.Decode(v1b[:], evenErasures, hp)
	dec2, ok2 := rs.Decode(v2b[:], oddErasures, hp)

	var v1, v2 [32]int
	if ok1 {
		copy(v1[:], dec1)
	} else {
		fillUnknown(v1[:])
	}
	if ok2 {
		copy(v2[:], dec2)
	} else {
		fillUnknown(v2[:])
	}

	return reinterleaveInts(v1, v2)
}

func fillUnknown(v []int) {
	for i := range v {
		v[i] = rs.Unknown
	}
}

func reinterleaveInts(v1, v2 [32]int) [64]int {
	var a, b [32]int
	for i := 0; i < 16; i++ {
		a[i*2] = v1[i]
		b[i*2] = v1[i+16]
		a[i*2+1] = v2[i]
		b[i*2+1] = v2[i+16]
	}
	var out [64]int
	copy(out[:32], a[:])
	copy(out[32:], b[:])
	return out
}
