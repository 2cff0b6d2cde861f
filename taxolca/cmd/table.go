// Copyright © 2018-2020 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/taxolca"
	"github.com/shenwei356/xopen"
)

// readCountTable reads a "taxid\tcount" table for the clade-count
// subcommand, transparently handling gzip via xopen (the same role it
// plays for dump files inside the Dump Loader, here exercised on the CLI's
// own plain/gzipped input tables). Repeated taxids accumulate.
func readCountTable(file string) map[int64]int64 {
	r, err := xopen.Open(file)
	checkError(errors.Wrapf(err, "opening count table %s", file))
	defer r.Close()

	counts := make(map[int64]int64)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) < 2 {
			checkError(fmt.Errorf("%s:%d: malformed count row %q", file, lineNo, line))
		}
		id, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
		checkError(errors.Wrapf(err, "%s:%d: bad taxid", file, lineNo))
		n, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		checkError(errors.Wrapf(err, "%s:%d: bad count", file, lineNo))
		counts[id] += n
	}
	checkError(scanner.Err())
	return counts
}

// readHitTable reads a "taxid\tevidence" table for the classify subcommand.
func readHitTable(file string) []taxolca.Hit {
	r, err := xopen.Open(file)
	checkError(errors.Wrapf(err, "opening hit table %s", file))
	defer r.Close()

	var hits []taxolca.Hit
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) < 2 {
			checkError(fmt.Errorf("%s:%d: malformed hit row %q", file, lineNo, line))
		}
		id, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
		checkError(errors.Wrapf(err, "%s:%d: bad taxid", file, lineNo))
		evidence, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		checkError(errors.Wrapf(err, "%s:%d: bad evidence value", file, lineNo))
		hits = append(hits, taxolca.Hit{ExternalID: id, Evidence: evidence})
	}
	checkError(scanner.Err())
	return hits
}
