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

// Package stream walks a sequence of Basic Groups' Block Access Tables,
// routing record bytes to a sink and reassembling DCLZ-compressed
// entities, gated by which logical file is currently being extracted.
package stream

import (
	"encoding/binary"
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/jfcooper/ddsrecover/ddserr"
	"github.com/jfcooper/ddsrecover/dclz"
	"github.com/jfcooper/ddsrecover/group"
)

// BAT item type bytes, per the format's Block Access Table contract.
const (
	itemFileMark        = 0x07
	itemRecordA         = 0x40
	itemRecordB         = 0x42
	itemRecordAscii1    = 0x60
	itemRecordAscii2    = 0x63
	itemSkip            = 0x80
	itemEntityWhole     = 0x73
	itemEntityFirst     = 0x52
	itemEntityMiddle    = 0x50
	itemEntityLast      = 0x70
	itemEntityTotalSize = 0x11
)

// Options controls the reassembler's validity strictness, output
// formatting, and diagnostic verbosity.
type Options struct {
	// RelaxValidity is threaded through to each group.Parse call made by
	// the group source; the reassembler itself doesn't parse groups.
	RelaxValidity bool
	// ASCIINewlines appends a newline after every extracted record,
	// for text-mode extraction.
	ASCIINewlines bool
	// Verbosity selects how much diagnostic detail is logged: 0 is
	// silent, 1 logs per-group progress, 2 also logs per-entry detail.
	Verbosity int
	// Strict causes an unrecognized BAT item type to be a hard error
	// rather than a logged-and-skipped oddity.
	Strict bool
}

// Reassembler walks Basic Groups in ascending group-number order,
// emitting the bytes belonging to one logical file (fileNo) to Sink.
type Reassembler struct {
	Sink io.Writer

	opts   Options
	fileNo int
	gFile  int

	entityBuf []byte

	logger *log.Logger
}

// NewReassembler returns a Reassembler that extracts logical file fileNo
// to sink.
func NewReassembler(sink io.Writer, fileNo int, opts Options, logger *log.Logger) *Reassembler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Reassembler{Sink: sink, opts: opts, fileNo: fileNo, logger: logger}
}

// ProcessGroup walks one Basic Group's BAT in order, dispatching each
// entry by its item type.
func (r *Reassembler) ProcessGroup(g *group.BasicGroup) error {
	r.gFile = int(g.Separator1Count) - int(g.GroupSeparator1Count)

	if r.opts.Verbosity >= 1 {
		r.logger.Printf("group %d: file %d, %d BAT entries", g.GroupNumber, r.gFile, len(g.BAT))
	}

	data := g.Payload()
	pos := 0

	for idx, entry := range g.BAT {
		switch entry.Item {
		case itemFileMark:
			if entry.Count == 0 {
				r.gFile++
				if r.opts.Verbosity >= 2 {
					r.logger.Printf("  [%d] file mark, now file %d", idx, r.gFile)
				}
			}

		case itemRecordA, itemRecordB, itemRecordAscii1, itemRecordAscii2:
			size := int(entry.Count)
			if err := requireWithinPayload(pos, size, len(data)); err != nil {
				return err
			}
			if r.gFile == r.fileNo {
				if r.opts.Verbosity >= 2 {
					r.logger.Printf("  [%d] record, %d bytes at offset %d", idx, size, pos)
				}
				if _, err := r.Sink.Write(data[pos : pos+size]); err != nil {
					return errors.WithStack(err)
				}
				if r.opts.ASCIINewlines {
					if _, err := r.Sink.Write([]byte("\n")); err != nil {
						return errors.WithStack(err)
					}
				}
			}
			pos += size

		case itemSkip:
			size := int(entry.Count)
			if r.opts.Verbosity >= 2 {
				r.logger.Printf("  [%d] skip, %d bytes", idx, size)
			}
			pos += size

		case itemEntityWhole:
			size := int(entry.Count)
			if err := requireWithinPayload(pos, size, len(data)); err != nil {
				return err
			}
			if r.gFile == r.fileNo {
				if err := r.dumpEntity(data[pos : pos+size]); err != nil {
					return err
				}
			}
			pos += size

		case itemEntityFirst:
			size := int(entry.Count)
			if err := requireWithinPayload(pos, size, len(data)); err != nil {
				return err
			}
			if len(r.entityBuf) != 0 {
				return errors.Wrap(ddserr.ErrInvalidHeader, "stream: entity-first entry with a buffer already in progress")
			}
			r.entityBuf = append([]byte{}, data[pos:pos+size]...)
			pos += size

		case itemEntityMiddle:
			size := int(entry.Count)
			if err := requireWithinPayload(pos, size, len(data)); err != nil {
				return err
			}
			if len(r.entityBuf) == 0 {
				return errors.Wrap(ddserr.ErrInvalidHeader, "stream: entity-middle entry with no buffer in progress")
			}
			r.entityBuf = append(r.entityBuf, data[pos:pos+size]...)
			pos += size

		case itemEntityLast:
			size := int(entry.Count)
			if err := requireWithinPayload(pos, size, len(data)); err != nil {
				return err
			}
			if len(r.entityBuf) == 0 {
				return errors.Wrap(ddserr.ErrInvalidHeader, "stream: entity-last entry with no buffer in progress")
			}
			r.entityBuf = append(r.entityBuf, data[pos:pos+size]...)
			pos += size
			complete := r.entityBuf
			r.entityBuf = nil
			if r.gFile == r.fileNo {
				if err := r.dumpEntity(complete); err != nil {
					return err
				}
			}

		case itemEntityTotalSize:
			if r.opts.Verbosity >= 2 {
				r.logger.Printf("  [%d] entity total size %d", idx, entry.Count)
			}

		default:
			if r.opts.Verbosity >= 2 {
				r.logger.Printf("  [%d] unknown BAT item type %#02x, count %d", idx, entry.Item, entry.Count)
			}
			if r.opts.Strict {
				return errors.Wrapf(ddserr.ErrInvalidHeader, "stream: unknown BAT item type %#02x", entry.Item)
			}
		}
	}

	return nil
}

func requireWithinPayload(pos, size, payloadLen int) error {
	if pos+size > payloadLen || size < 0 {
		return errors.Wrapf(ddserr.ErrInvalidHeader, "stream: BAT entry at offset %d size %d overruns payload of length %d", pos, size, payloadLen)
	}
	return nil
}

// dumpEntity parses an entity header and feeds its DCLZ-compressed
// payload through the decompressor into Sink, checking the resulting
// size against the header's declared record geometry.
func (r *Reassembler) dumpEntity(data []byte) error {
	const entityHeaderSize = 8
	if len(data) < entityHeaderSize {
		return errors.Wrap(ddserr.ErrInvalidHeader, "stream: entity shorter than its header")
	}

	headerSize := data[0]
	reserved := data[1]
	accessPointID := data[2]
	unprocessedRecordLength := uint32(data[3])<<16 | uint32(data[4])<<8 | uint32(data[5])
	processedRecordCount := binary.BigEndian.Uint16(data[6:8])

	if headerSize != entityHeaderSize || reserved != 0 || accessPointID != 0x20 {
		return errors.Wrapf(ddserr.ErrInvalidHeader,
			"stream: entity header mismatch (size=%d reserved=%d accessPoint=%#02x)",
			headerSize, reserved, accessPointID)
	}

	if r.opts.Verbosity >= 2 {
		r.logger.Printf("  entity: record size %d, count %d", unprocessedRecordLength, processedRecordCount)
	}

	dec := dclz.NewDecoder(data[entityHeaderSize:], dclz.Options{Verbosity: r.opts.Verbosity, Logger: r.logger})
	written, err := dec.Expand(r.Sink)
	if err != nil {
		return err
	}

	expected := int64(unprocessedRecordLength) * int64(processedRecordCount)
	if written != expected {
		return errors.Wrapf(ddserr.ErrSizeMismatch, "stream: entity decompressed to %d bytes, expected %d", written, expected)
	}

	return nil
}
