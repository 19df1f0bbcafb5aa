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

// Command dds extracts one logical file from a directory of recovered
// DDS/DAT Basic Group dumps (g<NNNNNN>.bin/.val pairs), starting at a
// given group number.
package main

import (
	stderrors "errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/jfcooper/ddsrecover/ddserr"
	"github.com/jfcooper/ddsrecover/group"
	"github.com/jfcooper/ddsrecover/groupio"
	"github.com/jfcooper/ddsrecover/stream"
)

// VERSION is set by the release process; SELFBUILD marks a local build.
var VERSION = "SELFBUILD"

func main() {
	app := cli.NewApp()
	app.Name = "dds"
	app.Usage = "extract a file from a directory of recovered DDS Basic Groups"
	app.UsageText = "dds [-q] [-v] [-a] <start-group> <file-no> <outfile>"
	app.Version = VERSION
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "q",
			Usage: "relax validity requirements: only the trailer and BAT need be strictly valid",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "verbose output during extraction (repeat for more detail: -v -v -v)",
		},
		cli.BoolFlag{
			Name:  "a",
			Usage: "ASCII extract: append a newline after every record",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 3 {
		cli.ShowAppHelp(c)
		return cli.NewExitError("dds: start-group, file-no, and outfile are required", 1)
	}

	startGroup, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("dds: invalid start-group %q", c.Args().Get(0)), 1)
	}
	fileNo, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("dds: invalid file-no %q", c.Args().Get(1)), 1)
	}
	outPath := c.Args().Get(2)

	// urfave/cli v1's BoolFlag only reports presence, not repetition;
	// count "-v" occurrences directly to support the repeatable
	// verbosity flag.
	verbosity := 0
	for _, a := range os.Args {
		if a == "-v" {
			verbosity++
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "dds: creating %s", outPath)
	}
	defer out.Close()

	opts := stream.Options{
		RelaxValidity: c.Bool("q"),
		ASCIINewlines: c.Bool("a"),
		Verbosity:     verbosity,
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	reassembler := stream.NewReassembler(out, fileNo, opts, logger)

	src := groupio.Source{
		Dir:  ".",
		Opts: group.Options{RelaxValidity: opts.RelaxValidity},
	}

	for groupNumber := startGroup; ; groupNumber++ {
		g, err := src.Load(groupNumber)
		if err != nil {
			if stderrors.Is(err, ddserr.ErrInputExhausted) {
				break
			}
			color.Red("dds: group %d: %v", groupNumber, err)
			return cli.NewExitError("dds: aborting on unrecoverable group error", 1)
		}

		if err := reassembler.ProcessGroup(g); err != nil {
			color.Red("dds: group %d: %v", groupNumber, err)
			return cli.NewExitError("dds: aborting on unrecoverable stream error", 1)
		}
	}

	return nil
}
