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

import "testing"

// spec.md §8 concrete scenarios 1-4.
func TestLCAConcreteScenarios(t *testing.T) {
	tax, _ := newSampleTaxonomy(t)

	if got := tax.LCA(4, 5); got != 2 {
		t.Fatalf("LCA(4,5): got %d, want 2", got)
	}
	if got := tax.LCA(4, 6); got != 1 {
		t.Fatalf("LCA(4,6): got %d, want 1", got)
	}
	if !tax.IsAncestor(1, 5) {
		t.Fatal("expected is_ancestor(1,5) == true")
	}
	if tax.IsAncestor(2, 6) {
		t.Fatal("expected is_ancestor(2,6) == false")
	}
}

func TestLCAOfSet(t *testing.T) {
	tax, logger := newSampleTaxonomy(t)

	rec, ok := tax.LCAOfSet([]int64{4, 5, 6})
	if !ok || rec.ExternalID != 1 {
		t.Fatalf("LCA([4,5,6]): got %+v ok=%v, want taxid 1", rec, ok)
	}

	rec, ok = tax.LCAOfSet([]int64{4, 5, 99})
	if !ok || rec.ExternalID != 2 {
		t.Fatalf("LCA([4,5,99]): got %+v ok=%v, want taxid 2", rec, ok)
	}
	if len(logger.warnings) == 0 {
		t.Fatal("expected a warning for the unknown taxid 99")
	}
}

func TestLCAOfSetAllUnknown(t *testing.T) {
	tax, _ := newSampleTaxonomy(t)
	if _, ok := tax.LCAOfSet([]int64{97, 98, 99}); ok {
		t.Fatal("expected no result when every id in the set is unknown")
	}
}

func TestLCAUniversalProperties(t *testing.T) {
	tax, _ := newSampleTaxonomy(t)
	ids := []int64{1, 2, 3, 4, 5, 6}

	for _, a := range ids {
		if tax.LCA(a, a) != a {
			t.Fatalf("reflexivity: LCA(%d,%d) != %d", a, a, a)
		}
		if !tax.IsAncestor(a, a) {
			t.Fatalf("reflexivity: is_ancestor(%d,%d) should be true", a, a)
		}
		if tax.LCA(a, 1) != 1 {
			t.Fatalf("root absorbs: LCA(%d,1) != 1", a)
		}
	}

	for _, a := range ids {
		for _, b := range ids {
			if tax.LCA(a, b) != tax.LCA(b, a) {
				t.Fatalf("commutativity failed for (%d,%d)", a, b)
			}
			l := tax.LCA(a, b)
			if l == a {
				if !tax.IsAncestor(a, b) {
					t.Fatalf("ancestor consistency failed for (%d,%d)", a, b)
				}
			}
		}
	}

	for _, a := range ids {
		for _, b := range ids {
			for _, c := range ids {
				left := tax.LCA(tax.LCA(a, b), c)
				right := tax.LCA(a, tax.LCA(b, c))
				if left != right {
					t.Fatalf("associativity failed for (%d,%d,%d): %d != %d", a, b, c, left, right)
				}
			}
		}
	}
}

func TestLCAUnknownDegeneracy(t *testing.T) {
	tax, _ := newSampleTaxonomy(t)
	if got := tax.LCA(999, 5); got != 5 {
		t.Fatalf("expected degenerate LCA(absent,5) == 5, got %d", got)
	}
	if got := tax.LCA(5, 999); got != 5 {
		t.Fatalf("expected degenerate LCA(5,absent) == 5, got %d", got)
	}
	if got := tax.LCA(997, 998); got != 0 {
		t.Fatalf("expected LCA of two absents to be 0, got %d", got)
	}
}
