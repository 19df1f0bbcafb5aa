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

// Package group parses a DDS Basic Group: a fixed 126632-byte buffer
// carrying a 32-byte trailer and a Block Access Table (BAT) that grows
// upward from the trailer toward lower addresses.
package group

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/jfcooper/ddsrecover/ddserr"
)

const (
	// Size is the fixed length of a Basic Group buffer.
	Size = 126632
	// TrailerSize is the length of the fixed trailer at the end of the
	// group buffer.
	TrailerSize = 32
	// TrailerOffset is the byte offset of the trailer within the group.
	TrailerOffset = Size - TrailerSize
)

// Options controls how strictly Parse enforces the validity bitmap.
type Options struct {
	// RelaxValidity, when true, only requires the trailer and BAT region
	// to be strictly valid; the payload region may contain invalid
	// bytes. When false, the entire group must be strictly valid.
	RelaxValidity bool
}

// BATEntry is one 4-byte Block Access Table entry.
type BATEntry struct {
	// Item is the entry's type byte, masked with 0xF7 to drop the parity
	// bit some drives set.
	Item byte
	// Count is the entry's 24-bit big-endian count/size field.
	Count uint32
}

// BasicGroup is a parsed Basic Group: its trailer fields and BAT,
// together with the full underlying buffer for payload access.
type BasicGroup struct {
	Data []byte

	GroupNumber                   uint16
	BlockAccessTableCount         uint16
	RecordCount                   uint32
	Separator1Count               uint32
	Separator2Count               uint16
	GroupRecordCount              uint16
	PreviousRecordGroupNumber     uint16
	GroupSeparator1Count          uint16
	PreviousSeparator1GroupNumber uint16
	GroupSeparator2Count          uint16
	PreviousSeparator2GroupNumber uint16

	BAT []BATEntry
}

func allValid(v []byte) bool {
	for _, b := range v {
		if b == 0 {
			return false
		}
	}
	return true
}

// Parse unpacks a 126632-byte Basic Group buffer and its Block Access
// Table. validity is a parallel byte-per-byte validity bitmap (nonzero
// meaning valid); pass nil to treat every byte as valid.
//
// The trailer and every parsed BAT entry must always be strictly valid,
// regardless of opts.RelaxValidity — only the payload region's validity
// requirement is relaxed by that flag.
func Parse(data []byte, validity []byte, opts Options) (*BasicGroup, error) {
	if len(data) != Size {
		return nil, errors.Wrapf(ddserr.ErrInvalidHeader, "group: expected %d bytes, got %d", Size, len(data))
	}
	if validity != nil {
		if len(validity) != Size {
			return nil, errors.Wrapf(ddserr.ErrInvalidHeader, "group: validity bitmap length %d does not match group size", len(validity))
		}
		if !opts.RelaxValidity && !allValid(validity) {
			return nil, errors.Wrap(ddserr.ErrInvalidHeader, "group: not strictly valid")
		}
		if !allValid(validity[TrailerOffset:Size]) {
			return nil, errors.Wrap(ddserr.ErrInvalidHeader, "group: trailer is not strictly valid")
		}
	}

	trailer := data[TrailerOffset:Size]

	g := &BasicGroup{Data: data}
	g.GroupNumber = binary.BigEndian.Uint16(trailer[0:2])
	g.BlockAccessTableCount = binary.BigEndian.Uint16(trailer[2:4])
	g.RecordCount = binary.BigEndian.Uint32(trailer[4:8])
	g.Separator1Count = binary.BigEndian.Uint32(trailer[8:12])
	g.Separator2Count = binary.BigEndian.Uint16(trailer[14:16])
	g.GroupRecordCount = binary.BigEndian.Uint16(trailer[16:18])
	g.PreviousRecordGroupNumber = binary.BigEndian.Uint16(trailer[18:20])
	g.GroupSeparator1Count = binary.BigEndian.Uint16(trailer[20:22])
	g.PreviousSeparator1GroupNumber = binary.BigEndian.Uint16(trailer[22:24])
	g.GroupSeparator2Count = binary.BigEndian.Uint16(trailer[24:26])
	g.PreviousSeparator2GroupNumber = binary.BigEndian.Uint16(trailer[26:28])

	g.BAT = make([]BATEntry, 0, g.BlockAccessTableCount)
	for i := 0; i < int(g.BlockAccessTableCount); i++ {
		pos := Size - TrailerSize - (i+1)*4
		if pos < 0 {
			return nil, errors.Wrapf(ddserr.ErrInvalidHeader, "group: BAT entry %d overruns the payload region", i)
		}
		entry := data[pos : pos+4]
		if validity != nil && !allValid(validity[pos:pos+4]) {
			return nil, errors.Wrapf(ddserr.ErrInvalidHeader, "group: BAT entry %d is not strictly valid", i)
		}
		g.BAT = append(g.BAT, BATEntry{
			Item:  entry[0] & 0xF7,
			Count: uint32(entry[1])<<16 | uint32(entry[2])<<8 | uint32(entry[3]),
		})
	}

	return g, nil
}

// Payload returns the record/entity byte region of the group, i.e.
// everything before the trailer.
func (g *BasicGroup) Payload() []byte {
	return g.Data[0:TrailerOffset]
}
