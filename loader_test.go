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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitDumpRow(t *testing.T) {
	got := splitDumpRow("9606\t|\t9605\t|\tspecies\t|")
	want := []string{"9606", "9605", "species"}
	if len(got) != len(want) {
		t.Fatalf("expected %d fields, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("field %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitDumpRowNoTrailingMarker(t *testing.T) {
	got := splitDumpRow("9606\t|\t9605\t|\tspecies")
	if got[2] != "species" {
		t.Fatalf("expected %q, got %q", "species", got[2])
	}
}

func TestDiscoverDumpFilesPrefixed(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "mydb")
	for _, suffix := range []string{"_nodes.dmp", "_names.dmp", "_merged.dmp"} {
		if err := os.WriteFile(prefix+suffix, []byte(""), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	paths, err := DiscoverDumpFiles(prefix)
	if err != nil {
		t.Fatalf("DiscoverDumpFiles: %v", err)
	}
	if paths.Nodes != prefix+"_nodes.dmp" {
		t.Fatalf("unexpected nodes path: %s", paths.Nodes)
	}
}

func TestDiscoverDumpFilesMissingFails(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	os.Chdir(dir)

	if _, err := DiscoverDumpFiles(filepath.Join(dir, "nope")); err == nil {
		t.Fatal("expected an error when no dump files exist")
	}
}

func TestLoadNodesMalformedRow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nodes.dmp")
	os.WriteFile(path, []byte("1\t|\t1\n"), 0o644) // missing rank column
	s := newStore(0)
	if err := loadNodes(path, s); err == nil {
		t.Fatal("expected an error for a row with too few fields")
	}
}

func TestLoadNamesUnknownTaxidFails(t *testing.T) {
	dir := t.TempDir()
	nodesPath := filepath.Join(dir, "nodes.dmp")
	namesPath := filepath.Join(dir, "names.dmp")
	os.WriteFile(nodesPath, []byte("1\t|\t1\t|\tno rank\t|\n"), 0o644)
	os.WriteFile(namesPath, []byte("42\t|\tGhost\t|\t\t|\tscientific name\t|\n"), 0o644)

	s := newStore(0)
	if err := loadNodes(nodesPath, s); err != nil {
		t.Fatal(err)
	}
	if err := loadNames(namesPath, s); err == nil {
		t.Fatal("expected an error for a names row referencing an unknown taxid")
	}
}

// TestLoadNodesPreservesFileOrderAcrossChunks writes a nodes dump long
// enough to span multiple breader chunks (chunk size 100, 8 goroutines)
// and checks that Store insertion order still matches file order, i.e.
// that loadNodes reassembles the chunked channel output before replaying
// it into the Store.
func TestLoadNodesPreservesFileOrderAcrossChunks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nodes.dmp")

	const n = 260 // > 2 * breader chunk size of 100
	var b strings.Builder
	b.WriteString("1\t|\t1\t|\tno rank\t|\n")
	for id := 2; id <= n; id++ {
		fmt.Fprintf(&b, "%d\t|\t%d\t|\tno rank\t|\n", id, id-1)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	s := newStore(0)
	if err := loadNodes(path, s); err != nil {
		t.Fatalf("loadNodes: %v", err)
	}
	if s.size() != n {
		t.Fatalf("expected %d records, got %d", n, s.size())
	}
	for i := 0; i < n; i++ {
		want := int64(i + 1)
		if got := s.byIndex(int32(i)).ExternalID; got != want {
			t.Fatalf("record %d: expected external id %d (file order), got %d", i, want, got)
		}
	}
}

func TestLoadNamesTooFewFieldsFails(t *testing.T) {
	dir := t.TempDir()
	nodesPath := filepath.Join(dir, "nodes.dmp")
	namesPath := filepath.Join(dir, "names.dmp")
	os.WriteFile(nodesPath, []byte("1\t|\t1\t|\tno rank\t|\n"), 0o644)
	os.WriteFile(namesPath, []byte("1\t|\tNoClass\t|\n"), 0o644) // only 2 columns, no class field

	s := newStore(0)
	if err := loadNodes(nodesPath, s); err != nil {
		t.Fatal(err)
	}
	if err := loadNames(namesPath, s); err == nil {
		t.Fatal("expected an error for a names row missing the class column")
	}
}

func TestLoadNamesFirstScientificNameWins(t *testing.T) {
	dir := t.TempDir()
	nodesPath := filepath.Join(dir, "nodes.dmp")
	namesPath := filepath.Join(dir, "names.dmp")
	os.WriteFile(nodesPath, []byte("1\t|\t1\t|\tno rank\t|\n"), 0o644)
	os.WriteFile(namesPath, []byte(
		"1\t|\tFirst Name\t|\t\t|\tscientific name\t|\n"+
			"1\t|\tSecond Name\t|\t\t|\tscientific name\t|\n"), 0o644)

	s := newStore(0)
	if err := loadNodes(nodesPath, s); err != nil {
		t.Fatal(err)
	}
	if err := loadNames(namesPath, s); err != nil {
		t.Fatal(err)
	}
	idx, _ := s.internalOf(1)
	if got := s.byIndex(idx).Name; got != "First Name" {
		t.Fatalf("expected first scientific name to win, got %q", got)
	}
}
