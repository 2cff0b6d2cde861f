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

package taxolca

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/breader"
	"github.com/shenwei356/util/pathutil"
)

// fieldSep is the unusual three-byte NCBI taxdump field separator.
const fieldSep = "\t|\t"

// eorMarker is the trailing end-of-record marker some dumps append to the
// last field of a row; it's tolerated as additional whitespace.
const eorMarker = "\t|"

// splitDumpRow splits a taxdump line on the TAB|TAB separator and strips a
// trailing TAB| end-of-record marker from the last field, if present.
func splitDumpRow(line string) []string {
	fields := strings.Split(line, fieldSep)
	last := len(fields) - 1
	fields[last] = strings.TrimSuffix(fields[last], eorMarker)
	fields[last] = strings.TrimRight(fields[last], " \t")
	return fields
}

// DumpPaths names the three NCBI-taxdump-style input files.
type DumpPaths struct {
	Nodes  string
	Names  string
	Merged string
}

// DiscoverDumpFiles implements spec.md §6's file discovery rule: look for
// "<prefix>_nodes.dmp" etc.; if any is missing, fall back to the bare
// "nodes.dmp" etc. in the working directory; otherwise fail.
func DiscoverDumpFiles(prefix string) (DumpPaths, error) {
	prefixed := DumpPaths{
		Nodes:  prefix + "_nodes.dmp",
		Names:  prefix + "_names.dmp",
		Merged: prefix + "_merged.dmp",
	}
	if fileSetExists(prefixed) {
		return prefixed, nil
	}
	bare := DumpPaths{Nodes: "nodes.dmp", Names: "names.dmp", Merged: "merged.dmp"}
	if fileSetExists(bare) {
		return bare, nil
	}
	return DumpPaths{}, errors.Wrapf(errIOMissing, "prefix %q", prefix)
}

var errIOMissing = errors.New("taxolca: no nodes/names/merged dump files found")

func fileSetExists(p DumpPaths) bool {
	for _, f := range []string{p.Nodes, p.Names, p.Merged} {
		ok, err := pathutil.Exists(f)
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// collectOrdered drains a breader.Reader's channel and returns the parsed
// rows in file order. breader fans line-parsing out across goroutines, so
// chunks race the channel and can arrive with chunk.ID out of sequence;
// rows within a chunk stay in file order, so buffering by chunk.ID until
// the next expected one appears is enough to restore it.
func collectOrdered(reader *breader.BufferedReader, path, what string) ([]interface{}, error) {
	pending := make(map[int]breader.Chunk)
	next := 0
	var rows []interface{}
	for chunk := range reader.Ch {
		if chunk.Err != nil {
			return nil, errors.Wrapf(chunk.Err, "reading %s dump %s", what, path)
		}
		pending[chunk.ID] = chunk
		for {
			c, ok := pending[next]
			if !ok {
				break
			}
			rows = append(rows, c.Data...)
			delete(pending, next)
			next++
		}
	}
	return rows, nil
}

// nodesRow is the raw tuple parsed from one line of the nodes dump.
type nodesRow struct {
	ExternalID       int64
	ParentExternalID int64
	Rank             string
}

// namesRow is the raw tuple parsed from one retained line of the names dump.
type namesRow struct {
	ExternalID int64
	Name       string
}

// mergedRow is the raw tuple parsed from one line of the merged dump.
type mergedRow struct {
	Old int64
	New int64
}

// loadNodes parses the nodes dump into the Store, one TaxonRecord per line.
func loadNodes(path string, store *Store) error {
	parseFunc := func(line string) (interface{}, bool, error) {
		fields := splitDumpRow(line)
		if len(fields) < 3 {
			return nil, false, ErrMalformedRow
		}
		id, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
		if err != nil {
			return nil, false, errors.Wrapf(err, "nodes: bad external_id %q", fields[0])
		}
		parent, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return nil, false, errors.Wrapf(err, "nodes: bad parent_external_id %q", fields[1])
		}
		return nodesRow{ExternalID: id, ParentExternalID: parent, Rank: strings.TrimSpace(fields[2])}, true, nil
	}

	reader, err := breader.NewBufferedReader(path, 8, 100, parseFunc)
	if err != nil {
		return errors.Wrapf(err, "opening nodes dump %s", path)
	}

	rows, err := collectOrdered(reader, path, "nodes")
	if err != nil {
		return err
	}
	// Store.addNode appends in call order, and spec.md §4.7/§5 tie children-
	// list order and determinism to nodes-dump file order, so rows must be
	// replayed in file order here.
	for _, data := range rows {
		row := data.(nodesRow)
		if err := store.addNode(row.ExternalID, row.ParentExternalID, row.Rank); err != nil {
			return errors.Wrapf(err, "nodes dump %s: taxid %d", path, row.ExternalID)
		}
	}
	return nil
}

// scientificNameClass is the substring a names.dmp row's class column must
// contain for the row to be retained.
const scientificNameClass = "scientific name"

// loadNames parses the names dump, retaining only rows whose class field
// contains "scientific name"; first occurrence per id wins.
func loadNames(path string, store *Store) error {
	parseFunc := func(line string) (interface{}, bool, error) {
		fields := splitDumpRow(line)
		if len(fields) < 4 {
			return nil, false, ErrMalformedRow
		}
		if !strings.Contains(fields[3], scientificNameClass) {
			return nil, false, nil
		}
		id, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
		if err != nil {
			return nil, false, errors.Wrapf(err, "names: bad external_id %q", fields[0])
		}
		return namesRow{ExternalID: id, Name: strings.TrimSpace(fields[1])}, true, nil
	}

	reader, err := breader.NewBufferedReader(path, 8, 100, parseFunc)
	if err != nil {
		return errors.Wrapf(err, "opening names dump %s", path)
	}

	rows, err := collectOrdered(reader, path, "names")
	if err != nil {
		return err
	}
	// setName is first-writer-wins, so replaying in file order is required
	// for "first occurrence wins" to mean what it says.
	for _, data := range rows {
		row := data.(namesRow)
		if !store.exists(row.ExternalID) {
			return errors.Wrapf(ErrTaxonNotFound, "names dump %s: taxid %d", path, row.ExternalID)
		}
		store.setName(row.ExternalID, row.Name)
	}
	return nil
}

// loadMerged parses the merged dump, installing old -> new aliases.
func loadMerged(path string, store *Store) error {
	parseFunc := func(line string) (interface{}, bool, error) {
		fields := splitDumpRow(line)
		if len(fields) < 2 {
			return nil, false, ErrMalformedRow
		}
		oldID, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
		if err != nil {
			return nil, false, errors.Wrapf(err, "merged: bad old_external_id %q", fields[0])
		}
		newID, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return nil, false, errors.Wrapf(err, "merged: bad new_external_id %q", fields[1])
		}
		return mergedRow{Old: oldID, New: newID}, true, nil
	}

	reader, err := breader.NewBufferedReader(path, 8, 100, parseFunc)
	if err != nil {
		return errors.Wrapf(err, "opening merged dump %s", path)
	}

	rows, err := collectOrdered(reader, path, "merged")
	if err != nil {
		return err
	}
	for _, data := range rows {
		row := data.(mergedRow)
		store.addAlias(row.Old, row.New) // no-op if old already present or new unknown
	}
	return nil
}
