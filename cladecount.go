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

// CladeCount is one entry of a clade-count aggregation result: the direct
// evidence at this taxon, the sum over its whole subtree, and its children
// (in Taxon Store insertion order).
type CladeCount struct {
	SelfCount  int64
	CladeCount int64
	Children   []int64
}

// CladeCounts folds a map of external_id -> evidence count into per-clade
// subtree sums, per spec.md §4.7. Unknown ids contribute only to their own
// entry, since their lineage can't be walked.
func (t *Taxonomy) CladeCounts(counts map[int64]int64) map[int64]*CladeCount {
	out := make(map[int64]*CladeCount, len(counts))
	ensure := func(id int64) *CladeCount {
		c, ok := out[id]
		if !ok {
			c = &CladeCount{}
			out[id] = c
		}
		return c
	}

	for id, c := range counts {
		ensure(id).SelfCount += c

		idx, ok := t.store.internalOf(id)
		if !ok {
			ensure(id).CladeCount += c
			t.logger.Warningf("taxolca: unknown taxid %d in clade counts, lineage unreachable", id)
			continue
		}
		for _, aidx := range t.ancestorPath(idx) {
			a := t.store.byIndex(aidx)
			ensure(a.ExternalID).CladeCount += c
		}
	}

	for i := 0; i < t.store.size(); i++ {
		r := t.store.byIndex(int32(i))
		if r.parentIdx == r.InternalIndex {
			continue // root has no parent edge
		}
		if _, ok := out[r.ExternalID]; !ok {
			continue
		}
		parent := t.store.byIndex(r.parentIdx)
		if entry, ok := out[parent.ExternalID]; ok {
			entry.Children = append(entry.Children, r.ExternalID)
		}
	}

	return out
}
