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

// Package ddserr holds the sentinel errors shared across the recovery
// pipeline. RS decode failures are recovered locally via a sentinel
// symbol value (rs.Unknown); everything here is fatal to the group or
// entity being processed.
package ddserr

import "github.com/pkg/errors"

var (
	// ErrInvalidHeader reports a structurally malformed group trailer,
	// BAT entry, or entity header.
	ErrInvalidHeader = errors.New("ddserr: invalid header")

	// ErrUncorrectable reports a codeword that Reed-Solomon decoding
	// could not correct at a layer that has no sentinel fallback of its
	// own (reserved for callers that choose to treat rs.Unknown symbols
	// as fatal rather than passing them through).
	ErrUncorrectable = errors.New("ddserr: uncorrectable codeword")

	// ErrDCLZProtocol reports a DCLZ bitstream that violates the
	// decompressor's protocol: an illegal control codeword, a dictionary
	// reference to an entry that doesn't exist, or a codeword size
	// increment past the 12-bit ceiling.
	ErrDCLZProtocol = errors.New("ddserr: dclz protocol violation")

	// ErrSizeMismatch reports a decompressed entity whose size doesn't
	// match UnprocessedRecordLength * ProcessedRecordCount.
	ErrSizeMismatch = errors.New("ddserr: decompressed size mismatch")

	// ErrInputExhausted reports that no more groups are available from
	// the input source.
	ErrInputExhausted = errors.New("ddserr: input exhausted")
)
