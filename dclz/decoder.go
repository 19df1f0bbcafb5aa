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

// Package dclz implements the ECMA-198 DCLZ decompressor: a
// variable-codeword-width LZW variant with control codewords for
// dictionary freeze/reset, codeword-size increments, and end-of-record
// byte alignment.
package dclz

import (
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/jfcooper/ddsrecover/ddserr"
)

const (
	minCodeWordSize = 9
	maxCodeWordSize = 12

	// dictStart is the first dynamic dictionary entry number; entries
	// below it are reserved (0-7 control codewords, 8-263 literal
	// bytes).
	dictStart = 264
	// dictEnd is one past the last usable dictionary entry; reaching it
	// freezes the dictionary.
	dictEnd = 4096
	// maxEntryBytes is the longest string a dictionary entry may hold.
	maxEntryBytes = 128
)

// Options controls diagnostic output during decoding.
type Options struct {
	// Verbosity >= 3 logs every decoded codeword (control, literal, or
	// dictionary reference) to Logger.
	Verbosity int
	// Logger receives per-codeword trace output when Verbosity >= 3. A
	// nil Logger is fine even at Verbosity >= 3: tracing is skipped.
	Logger *log.Logger
}

// Decoder holds one DCLZ decompression stream's state: the bit
// reservoir, the dynamic dictionary, and the control-codeword state
// machine (frozen/reset/pad-pending/end-of-record-pending).
type Decoder struct {
	data []byte
	pos  int

	cwSize uint
	mask   uint32

	dictionary map[int][]byte
	nextEntry  int
	frozen     bool

	lastString []byte

	accum uint32
	bits  uint

	padPending       bool
	endRecordPending bool

	written int64

	opts Options
}

// NewDecoder returns a Decoder reading codewords from data.
func NewDecoder(data []byte, opts Options) *Decoder {
	d := &Decoder{data: data, opts: opts}
	d.resetDictionary()
	return d
}

func (d *Decoder) resetDictionary() {
	d.lastString = nil
	d.nextEntry = dictStart
	d.frozen = false
	d.dictionary = make(map[int][]byte)
	d.setCodeWordSize(minCodeWordSize)
}

func (d *Decoder) setCodeWordSize(n uint) {
	d.cwSize = n
	d.mask = (uint32(1) << n) - 1
}

func (d *Decoder) flush() {
	d.accum = 0
	d.bits = 0
}

func (d *Decoder) addToDictionary(item []byte) {
	if d.frozen || len(item) > maxEntryBytes {
		return
	}
	d.dictionary[d.nextEntry] = item
	d.nextEntry++
	if d.nextEntry == dictEnd {
		d.frozen = true
	}
}

func (d *Decoder) incrementCodeWordSize() error {
	if d.cwSize >= maxCodeWordSize {
		return errors.Wrap(ddserr.ErrDCLZProtocol, "dclz: code word size already at maximum")
	}
	d.setCodeWordSize(d.cwSize + 1)
	return nil
}

// emit writes item to sink, updates the dictionary with lastString+item's
// first byte (the standard LZW update rule), and tracks lastString for
// the next KwKwK case.
func (d *Decoder) emit(item []byte, sink io.Writer) error {
	if _, err := sink.Write(item); err != nil {
		return errors.WithStack(err)
	}
	d.written += int64(len(item))

	if len(d.lastString) > 0 {
		extended := make([]byte, len(d.lastString)+1)
		copy(extended, d.lastString)
		extended[len(d.lastString)] = item[0]
		d.addToDictionary(extended)
	}

	if d.endRecordPending {
		d.endRecordPending = false
		d.lastString = nil
	} else {
		d.lastString = item
	}
	return nil
}

// nextCodeWord refills the bit reservoir to cwSize bits and extracts the
// next codeword, LSB-first within each byte. It returns false when the
// input is exhausted before a full codeword could be read.
func (d *Decoder) nextCodeWord() (int, bool) {
	for d.bits < d.cwSize {
		if d.pos == len(d.data) {
			return 0, false
		}
		d.accum |= uint32(d.data[d.pos]) << d.bits
		d.pos++
		d.bits += 8
	}

	cw := int(d.accum & d.mask)

	if d.padPending {
		d.flush()
		d.padPending = false
	} else {
		d.accum >>= d.cwSize
		d.bits -= d.cwSize
	}

	return cw, true
}

// Expand decodes the stream to sink, returning the total number of bytes
// written.
func (d *Decoder) Expand(sink io.Writer) (int64, error) {
	for {
		cw, ok := d.nextCodeWord()
		if !ok {
			return d.written, nil
		}

		if d.opts.Verbosity >= 3 && d.opts.Logger != nil {
			d.opts.Logger.Printf("dclz: codeword %d (size %d)", cw, d.cwSize)
		}

		switch {
		case cw == 0:
			d.frozen = true
		case cw == 1:
			d.resetDictionary()
			d.flush()
		case cw == 2:
			if err := d.incrementCodeWordSize(); err != nil {
				return d.written, err
			}
		case cw == 3:
			d.flush()
			d.padPending = true
			d.endRecordPending = true
		case cw >= 4 && cw <= 7:
			return d.written, errors.Wrapf(ddserr.ErrDCLZProtocol, "dclz: illegal codeword %d", cw)
		case cw >= 8 && cw <= 263:
			if err := d.emit([]byte{byte(cw - 8)}, sink); err != nil {
				return d.written, err
			}
		default: // 264..4095
			item, err := d.dictionaryLookup(cw)
			if err != nil {
				return d.written, err
			}
			if err := d.emit(item, sink); err != nil {
				return d.written, err
			}
		}
	}
}

func (d *Decoder) dictionaryLookup(cw int) ([]byte, error) {
	if cw == d.nextEntry {
		if len(d.lastString) == 0 {
			return nil, errors.Wrap(ddserr.ErrDCLZProtocol, "dclz: KwKwK reference with no preceding string")
		}
		item := make([]byte, len(d.lastString)+1)
		copy(item, d.lastString)
		item[len(d.lastString)] = d.lastString[0]
		return item, nil
	}
	item, ok := d.dictionary[cw]
	if !ok {
		return nil, errors.Wrapf(ddserr.ErrDCLZProtocol, "dclz: reference to undefined dictionary entry %d", cw)
	}
	return item, nil
}
