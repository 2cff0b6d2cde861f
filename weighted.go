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
	"math"

	"github.com/pkg/errors"
)

// VoteMode selects how a hit's evidence value is turned into a vote weight.
type VoteMode int

// Vote modes, per spec.md §4.8.
const (
	VoteUniform VoteMode = iota
	VoteMinusLogEvalue
	VoteRawScore
)

// ParseVoteMode maps a config/CLI string to a VoteMode.
func ParseVoteMode(s string) (VoteMode, error) {
	switch s {
	case "uniform":
		return VoteUniform, nil
	case "minus_log_evalue":
		return VoteMinusLogEvalue, nil
	case "raw_score":
		return VoteRawScore, nil
	default:
		return 0, errors.Wrapf(ErrUnknownVoteMode, "%s", s)
	}
}

// MaxTaxWeight is the ceiling weight substituted for non-positive e-values
// under VoteMinusLogEvalue ("MAX_TAX_WEIGHT" in spec.md §4.8).
const MaxTaxWeight = 1e6

func weightFor(mode VoteMode, evidence float64) float64 {
	switch mode {
	case VoteRawScore:
		return evidence
	case VoteMinusLogEvalue:
		if evidence == math.MaxFloat64 {
			return evidence
		}
		if evidence > 0 {
			return -math.Log(evidence)
		}
		return MaxTaxWeight
	default: // VoteUniform
		return 1
	}
}

// Hit is one piece of evidence assigning weight to a taxon.
type Hit struct {
	ExternalID int64
	Evidence   float64
}

// WeightedMajorityResult reports the outcome of a weighted-majority LCA
// query, per spec.md §4.8.
type WeightedMajorityResult struct {
	Selected        int64 // 0 ("unassigned") if no candidate qualified
	AssignedWeight  float64
	UnassignedCount int
	AgreeingHits    int
	SelectedPercent float64 // selected's coverage, as a percentage 0-100
}

// candidateState is the per-taxon working state of the aggregation; a
// fresh map is allocated per call, so concurrent callers never share it.
type candidateState struct {
	weight      float64
	isCandidate bool
	lastChild   int64
}

// WeightedMajorityLCA runs the weighted-majority LCA algorithm of
// spec.md §4.8 over hits, using the given vote mode and majority cutoff.
// Unknown (non-zero, unresolvable) taxids are a fatal error, unlike the
// LCA Engine's lenient skip-and-warn policy — spec.md §4.8 calls this out
// explicitly.
func (t *Taxonomy) WeightedMajorityLCA(hits []Hit, mode VoteMode, cutoff float64) (*WeightedMajorityResult, error) {
	cand := make(map[int64]*candidateState, len(hits)*2)
	ensure := func(id int64) *candidateState {
		c, ok := cand[id]
		if !ok {
			c = &candidateState{}
			cand[id] = c
		}
		return c
	}

	var total float64
	var unassigned int

	for _, h := range hits {
		if h.ExternalID == 0 {
			unassigned++
			continue
		}
		idx, ok := t.store.internalOf(h.ExternalID)
		if !ok {
			return nil, errors.Wrapf(ErrTaxonNotFound, "weighted-majority LCA: taxid %d", h.ExternalID)
		}

		w := weightFor(mode, h.Evidence)
		total += w
		ensure(h.ExternalID).isCandidate = true

		prevChild := h.ExternalID
		cur := idx
		for {
			r := t.store.byIndex(cur)
			if r.parentIdx == cur {
				break // cur is root and has already been processed (or cur==candidate itself is root)
			}
			cur = r.parentIdx
			ar := t.store.byIndex(cur)
			a := ensure(ar.ExternalID)
			a.weight += w
			if a.lastChild != 0 && a.lastChild != prevChild {
				a.isCandidate = true
			}
			a.lastChild = prevChild
			prevChild = ar.ExternalID
		}
	}

	result := &WeightedMajorityResult{
		AssignedWeight:  total,
		UnassignedCount: unassigned,
	}

	selected, coverage, found := t.selectWeightedCandidate(cand, total, cutoff)
	if !found {
		result.Selected = 0
		return result, nil
	}
	result.Selected = selected
	result.SelectedPercent = coverage * 100

	agreeing := 0
	for _, h := range hits {
		if h.ExternalID == 0 {
			continue
		}
		if h.ExternalID == selected || t.IsAncestor(selected, h.ExternalID) {
			agreeing++
		}
	}
	result.AgreeingHits = agreeing

	return result, nil
}

// selectWeightedCandidate picks the cutoff-qualifying candidate with the
// lowest canonical rank index found on its lineage, tie-broken by larger
// coverage. "Found" rank index beats "not found" (root, or a candidate
// with no canonically ranked ancestor above it) unconditionally.
func (t *Taxonomy) selectWeightedCandidate(cand map[int64]*candidateState, total float64, cutoff float64) (int64, float64, bool) {
	if total <= 0 {
		return 0, 0, false
	}

	const notFound = int(^uint(0) >> 1) // max int, sentinel for "no ranked ancestor found"

	var bestID int64
	bestRank := notFound
	var bestCoverage float64
	found := false

	for id, c := range cand {
		if !c.isCandidate {
			continue
		}
		coverage := c.weight / total
		if coverage < cutoff {
			continue
		}

		idx, ok := t.store.internalOf(id)
		if !ok {
			continue
		}
		rank := notFound
		if r, ok := t.firstRankedAncestorIndex(idx); ok {
			rank = r
		}

		if !found || rank < bestRank || (rank == bestRank && coverage > bestCoverage) {
			found = true
			bestID = id
			bestRank = rank
			bestCoverage = coverage
		}
	}

	return bestID, bestCoverage, found
}

// firstRankedAncestorIndex walks up from idx's parent (never idx itself)
// and returns the canonical rank index of the first ranked ancestor found,
// stopping at the first match rather than scanning the whole lineage for
// a true minimum. This mirrors the Open Question in spec.md §9/§4.8: the
// original rank-minimum walk short-circuits this way, so the candidate's
// own rank never factors into its score. Preserved deliberately.
func (t *Taxonomy) firstRankedAncestorIndex(idx int32) (int, bool) {
	cur := idx
	for {
		r := t.store.byIndex(cur)
		if r.parentIdx == cur {
			// cur is root: no ancestor exists above it. If the walk came
			// up from below, root's rank was already checked in the loop.
			return 0, false
		}
		cur = r.parentIdx
		rec := t.store.byIndex(cur)
		if i, ok := t.ranks.rankIndex(rec.Rank); ok {
			return i, true
		}
	}
}
