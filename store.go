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

// noRank is the no-rank vocabulary. Both spellings appear in real NCBI
// dumps depending on vintage.
const (
	noRank1 = "no rank"
	noRank2 = "no_rank"
)

func isNoRank(rank string) bool {
	return rank == "" || rank == noRank1 || rank == noRank2
}

// absent is the sentinel internal index for "no such taxon".
const absent int32 = -1

// TaxonRecord is one node of the taxonomy tree.
type TaxonRecord struct {
	InternalIndex    int32
	ExternalID       int64
	ParentExternalID int64
	Rank             string
	Name             string

	parentIdx int32 // resolved once the tree is indexed; absent until then
}

// Store owns the dense sequence of TaxonRecord and the external id ->
// internal index table. It absorbs merged ids as aliases.
//
// Records are kept in insertion order: addNode must be called in the same
// order the corresponding rows appear in the nodes dump, which is the
// loader's responsibility (it replays breader's chunked output back into
// file order before calling addNode). Callers that need Store-insertion-
// order iteration (Clade Counter's children lists) rely on this.
type Store struct {
	records []TaxonRecord
	index   []int32 // external id -> internal index, sized maxExternalID+1
	root    int32
}

// newStore allocates a Store sized for external ids up to maxExternalID.
func newStore(maxExternalID int64) *Store {
	idx := make([]int32, maxExternalID+1)
	for i := range idx {
		idx[i] = absent
	}
	return &Store{index: idx, root: absent}
}

func (s *Store) grow(maxExternalID int64) {
	if int64(len(s.index)) > maxExternalID {
		return
	}
	grown := make([]int32, maxExternalID+1)
	copy(grown, s.index)
	for i := len(s.index); i < len(grown); i++ {
		grown[i] = absent
	}
	s.index = grown
}

// addNode appends a new TaxonRecord and registers it in the index table.
// Returns ErrMalformedRow if id <= 0. A re-declared external id is a silent
// no-op only if it repeats the same parent and rank; a conflicting
// re-declaration is a fatal ErrDuplicateTaxon (spec.md §7).
func (s *Store) addNode(externalID, parentExternalID int64, rank string) error {
	if externalID <= 0 {
		return ErrMalformedRow
	}
	s.grow(externalID)
	if existing := s.index[externalID]; int(existing) != int(absent) {
		rec := &s.records[existing]
		if rec.ParentExternalID != parentExternalID || rec.Rank != rank {
			return ErrDuplicateTaxon
		}
		return nil
	}
	idx := int32(len(s.records))
	s.records = append(s.records, TaxonRecord{
		InternalIndex:    idx,
		ExternalID:       externalID,
		ParentExternalID: parentExternalID,
		Rank:             rank,
		parentIdx:        absent,
	})
	s.index[externalID] = idx
	if externalID == parentExternalID {
		s.root = idx
	}
	return nil
}

// addAlias installs old -> internal index of new as a merged-id alias, iff
// old is absent and new is present. Returns false if the precondition isn't met.
func (s *Store) addAlias(oldExternalID, newExternalID int64) bool {
	if oldExternalID <= 0 {
		return false
	}
	s.grow(oldExternalID)
	if int(s.index[oldExternalID]) != int(absent) {
		return false
	}
	if newExternalID < 0 || newExternalID >= int64(len(s.index)) {
		return false
	}
	target := s.index[newExternalID]
	if int(target) == int(absent) {
		return false
	}
	s.index[oldExternalID] = target
	return true
}

// setName installs a scientific name for externalID, first-writer-wins.
func (s *Store) setName(externalID int64, name string) bool {
	idx, ok := s.internalOf(externalID)
	if !ok {
		return false
	}
	if s.records[idx].Name != "" {
		return false
	}
	s.records[idx].Name = name
	return true
}

// internalOf maps an external id to its dense internal index. O(1).
func (s *Store) internalOf(externalID int64) (int32, bool) {
	if externalID < 0 || externalID >= int64(len(s.index)) {
		return absent, false
	}
	idx := s.index[externalID]
	return idx, int(idx) != int(absent)
}

// exists reports whether externalID resolves to a live record.
func (s *Store) exists(externalID int64) bool {
	_, ok := s.internalOf(externalID)
	return ok
}

// byIndex returns the record at a dense internal index.
func (s *Store) byIndex(idx int32) *TaxonRecord {
	return &s.records[idx]
}

// size is the number of distinct taxa held (N in spec.md's notation).
func (s *Store) size() int { return len(s.records) }

// resolveParents fills in parentIdx for every record now that all nodes
// are loaded. Returns ErrInconsistentTopology on the first dangling parent.
func (s *Store) resolveParents() error {
	for i := range s.records {
		r := &s.records[i]
		if r.ExternalID == r.ParentExternalID {
			r.parentIdx = r.InternalIndex
			continue
		}
		pidx, ok := s.internalOf(r.ParentExternalID)
		if !ok {
			return ErrInconsistentTopology
		}
		r.parentIdx = pidx
	}
	if int(s.root) == int(absent) {
		return ErrNoRoot
	}
	return nil
}
