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

// Package whiten implements the DAT data-whitening LFSR: a 15-bit
// Fibonacci generator with taps at bits 0 and 1. It exists as a
// standalone contract — nothing in this module's recovery pipeline calls
// it, since whitening is undone by the drive's own read channel before
// any of these bytes reach the host.
package whiten

// TableSize is the number of distinct 9-bit LFSR states the crank-by-8
// composition table covers.
const TableSize = 512

// Crank advances a 15-bit LFSR state by one bit. The feedback tap is the
// XOR of bits 0 and 1, fed back into bit 14 after the one-bit right
// shift.
func Crank(v uint16) uint16 {
	feedback := (v & 1) ^ ((v >> 1) & 1)
	v >>= 1
	if feedback != 0 {
		v |= 0x4000
	}
	return v
}

// CrankByEight advances the LFSR state by eight bits, one byte's worth of
// whitening.
func CrankByEight(v uint16) uint16 {
	for i := 0; i < 8; i++ {
		v = Crank(v)
	}
	return v
}

// GenerateTable builds the 512-entry crank-by-8 lookup table: for an LFSR
// whose low 9 bits are v, table[v] gives the top byte of the state after
// eight cranks, so that the full 8-crank update can be written as
// next = (table[v&0x1FF] << 7) | (v >> 8).
func GenerateTable() [TableSize]byte {
	var t [TableSize]byte
	for v := 0; v < TableSize; v++ {
		next := CrankByEight(uint16(v))
		t[v] = byte((next >> 7) & 0xFF)
	}
	return t
}
