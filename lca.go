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

// lcaInternal is the O(1)-after-preprocessing LCA of two internal indices,
// per spec.md §4.5. The 0-sentinel check of the original spec corresponds
// to the absent marker here.
func (t *Taxonomy) lcaInternal(a, b int32) int32 {
	if int(a) == int(absent) || int(b) == int(absent) {
		return absent
	}
	if a == b {
		return a
	}
	i := t.tour.first[a]
	j := t.tour.first[b]
	if i > j {
		i, j = j, i
	}
	pos := t.rmq.query(i, j)
	return t.tour.visit[pos]
}

// LCA returns the lowest common ancestor of two external ids. If one id is
// absent from the Store, the other is returned (degenerate LCA per
// spec.md §4.5); if both are absent, 0 is returned.
func (t *Taxonomy) LCA(a, b int64) int64 {
	ai, aok := t.store.internalOf(a)
	bi, bok := t.store.internalOf(b)
	if !aok && !bok {
		return 0
	}
	if !aok {
		return b
	}
	if !bok {
		return a
	}
	res := t.lcaInternal(ai, bi)
	if int(res) == int(absent) {
		return 0
	}
	return t.store.byIndex(res).ExternalID
}

// LCAOfSet folds LCA left-to-right over a set of external ids, skipping and
// warning about any id absent from the Store. Returns the record of the
// result, or (nil, false) if no id in the set was known.
func (t *Taxonomy) LCAOfSet(ids []int64) (*TaxonRecord, bool) {
	var acc int32 = absent
	have := false
	for _, id := range ids {
		idx, ok := t.store.internalOf(id)
		if !ok {
			t.logger.Warningf("taxolca: unknown taxid %d, skipped", id)
			continue
		}
		if !have {
			acc = idx
			have = true
			continue
		}
		acc = t.lcaInternal(acc, idx)
	}
	if !have {
		return nil, false
	}
	return t.store.byIndex(acc), true
}

// IsAncestor reports whether candidate is an ancestor of (or equal to) child.
func (t *Taxonomy) IsAncestor(candidateAncestor, child int64) bool {
	if candidateAncestor == child {
		return true
	}
	ai, aok := t.store.internalOf(candidateAncestor)
	ci, cok := t.store.internalOf(child)
	if !aok || !cok {
		return false
	}
	return t.lcaInternal(ci, ai) == ai
}

// ancestorPath walks parent links from idx to root inclusive and returns
// the indices in walk order, i.e. self-to-root. §9's "cycles"
// note applies: the walk terminates on parentIdx == idx (root's self-loop),
// never on parentIdx == 0.
func (t *Taxonomy) ancestorPath(idx int32) []int32 {
	path := make([]int32, 0, 32)
	cur := idx
	for {
		path = append(path, cur)
		r := t.store.byIndex(cur)
		if r.parentIdx == cur {
			break
		}
		cur = r.parentIdx
	}
	return path
}
