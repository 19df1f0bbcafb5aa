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

// Package groupio loads Basic Groups from a directory of
// g<NNNNNN>.bin/.val file pairs, the on-disk convention a prior
// block-level recovery pass leaves behind.
package groupio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/jfcooper/ddsrecover/ddserr"
	"github.com/jfcooper/ddsrecover/group"
)

// GroupFileName returns the raw group data filename for groupNumber.
func GroupFileName(groupNumber int) string {
	return fmt.Sprintf("g%06d.bin", groupNumber)
}

// GroupValidFileName returns the companion validity bitmap filename for
// groupNumber.
func GroupValidFileName(groupNumber int) string {
	return fmt.Sprintf("g%06d.val", groupNumber)
}

// Source loads successive Basic Groups from a directory.
type Source struct {
	Dir  string
	Opts group.Options
}

// Load reads and parses the group and validity files for groupNumber. A
// missing .bin file is reported as ddserr.ErrInputExhausted, the
// driver's signal that there are no more groups to process. A missing
// .val file is treated as "every byte valid."
func (s Source) Load(groupNumber int) (*group.BasicGroup, error) {
	binPath := filepath.Join(s.Dir, GroupFileName(groupNumber))
	data, err := os.ReadFile(binPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ddserr.ErrInputExhausted, "groupio: group %d not found", groupNumber)
		}
		return nil, errors.Wrapf(err, "groupio: reading %s", binPath)
	}

	valPath := filepath.Join(s.Dir, GroupValidFileName(groupNumber))
	validity, err := os.ReadFile(valPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "groupio: reading %s", valPath)
		}
		validity = nil
	}

	return group.Parse(data, validity, s.Opts)
}
