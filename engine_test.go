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
	"os"
	"path/filepath"
	"testing"
)

// the tree from spec.md §8's concrete scenarios:
// root=1; 2,3 children of 1; 4,5 children of 2; 6 child of 3.
const sampleNodesDmp = "1\t|\t1\t|\tno rank\t|\n" +
	"2\t|\t1\t|\tsuperkingdom\n" +
	"3\t|\t1\t|\tsuperkingdom\t|\n" +
	"4\t|\t2\t|\tgenus\n" +
	"5\t|\t2\t|\tgenus\t|\n" +
	"6\t|\t3\t|\tgenus\n"

const sampleNamesDmp = "1\t|\troot\t|\t\t|\tscientific name\t|\n" +
	"2\t|\tAlpha\t|\t\t|\tscientific name\n" +
	"2\t|\tAlphaSyn\t|\t\t|\tsynonym\t|\n" +
	"3\t|\tBeta\t|\t\t|\tscientific name\t|\n" +
	"4\t|\tGamma\t|\t\t|\tscientific name\n" +
	"5\t|\tDelta\t|\t\t|\tscientific name\t|\n" +
	"6\t|\tEpsilon\t|\t\t|\tscientific name\n"

const sampleMergedDmp = "10\t|\t4\t|\n"

func writeSampleDumps(t *testing.T) DumpPaths {
	t.Helper()
	dir := t.TempDir()
	paths := DumpPaths{
		Nodes:  filepath.Join(dir, "nodes.dmp"),
		Names:  filepath.Join(dir, "names.dmp"),
		Merged: filepath.Join(dir, "merged.dmp"),
	}
	if err := os.WriteFile(paths.Nodes, []byte(sampleNodesDmp), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths.Names, []byte(sampleNamesDmp), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths.Merged, []byte(sampleMergedDmp), 0o644); err != nil {
		t.Fatal(err)
	}
	return paths
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Infof(format string, args ...interface{}) {}
func (l *recordingLogger) Warningf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, format)
}
func (l *recordingLogger) Errorf(format string, args ...interface{}) {}

func newSampleTaxonomy(t *testing.T) (*Taxonomy, *recordingLogger) {
	t.Helper()
	paths := writeSampleDumps(t)
	logger := &recordingLogger{}
	tax, err := New(paths, &Config{Logger: logger})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tax, logger
}

func TestNewReachesIndexed(t *testing.T) {
	tax, _ := newSampleTaxonomy(t)
	if tax.State() != Indexed {
		t.Fatalf("expected Indexed, got %v", tax.State())
	}
	if tax.Size() != 6 {
		t.Fatalf("expected 6 taxa, got %d", tax.Size())
	}
	if tax.RootExternalID() != 1 {
		t.Fatalf("expected root id 1, got %d", tax.RootExternalID())
	}
}

func TestNewDanglingParentFails(t *testing.T) {
	dir := t.TempDir()
	paths := DumpPaths{
		Nodes:  filepath.Join(dir, "nodes.dmp"),
		Names:  filepath.Join(dir, "names.dmp"),
		Merged: filepath.Join(dir, "merged.dmp"),
	}
	os.WriteFile(paths.Nodes, []byte("1\t|\t1\t|\tno rank\t|\n2\t|\t999\t|\tgenus\t|\n"), 0o644)
	os.WriteFile(paths.Names, []byte(""), 0o644)
	os.WriteFile(paths.Merged, []byte(""), 0o644)

	if _, err := New(paths, nil); err == nil {
		t.Fatal("expected error for dangling parent reference")
	}
}

func TestRecordOf(t *testing.T) {
	tax, logger := newSampleTaxonomy(t)

	rec, ok := tax.RecordOf(4, false)
	if !ok || rec.Name != "Gamma" {
		t.Fatalf("expected Gamma for taxid 4, got %+v ok=%v", rec, ok)
	}

	if _, ok := tax.RecordOf(999, false); ok {
		t.Fatal("expected taxid 999 to be absent")
	}
	if len(logger.warnings) == 0 {
		t.Fatal("expected a warning to be logged for the lenient miss")
	}
}

func TestMergedAlias(t *testing.T) {
	tax, _ := newSampleTaxonomy(t)
	old, ok1 := tax.RecordOf(10, false)
	new_, ok2 := tax.RecordOf(4, false)
	if !ok1 || !ok2 {
		t.Fatal("expected both merged id and target to resolve")
	}
	if old != new_ {
		t.Fatalf("expected record_of(10) == record_of(4), got %+v vs %+v", old, new_)
	}
}
