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
)

// RankScheme is the small sequence-type-parameterized configuration
// container spec.md §4.6 asks for: a fixed ordered vocabulary of canonical
// ranks plus a short single-character code per rank.
type RankScheme struct {
	order []string
	index map[string]int
	code  map[string]byte
}

// NewRankScheme builds a scheme from an ordered rank list (most general
// first) and a rank -> one-letter-code map. Ranks without an entry in
// codes fall back to '-' in lineage_string's short-name rendering.
func NewRankScheme(order []string, codes map[string]byte) *RankScheme {
	idx := make(map[string]int, len(order))
	for i, r := range order {
		idx[r] = i
	}
	code := make(map[string]byte, len(codes))
	for r, c := range codes {
		code[r] = c
	}
	return &RankScheme{order: order, index: idx, code: code}
}

// DefaultRankScheme is the nine-rank NCBI-flavored scheme spec.md §4.6
// gives as an example.
func DefaultRankScheme() *RankScheme {
	order := []string{
		"superkingdom", "kingdom", "phylum", "class",
		"order", "family", "genus", "species", "subspecies",
	}
	codes := map[string]byte{
		"superkingdom": 'd',
		"kingdom":      'k',
		"phylum":       'p',
		"class":        'c',
		"order":        'o',
		"family":       'f',
		"genus":        'g',
		"species":      's',
		"subspecies":   't',
	}
	return NewRankScheme(order, codes)
}

func (rs *RankScheme) rankIndex(rank string) (int, bool) {
	i, ok := rs.index[rank]
	return i, ok
}

func (rs *RankScheme) shortCode(rank string) byte {
	if c, ok := rs.code[rank]; ok {
		return c
	}
	return '-'
}

// AllRanks walks node's lineage up to root, returning rank -> name for every
// canonical (non-"no rank") rank encountered, first-writer-wins (the walk
// starts at node itself, so the nearest ancestor at a given rank wins).
// Root is always present in the result even if its own rank is "no rank".
func (t *Taxonomy) AllRanks(node *TaxonRecord) map[string]string {
	result := make(map[string]string, len(t.ranks.order))
	for _, idx := range t.ancestorPath(node.InternalIndex) {
		r := t.store.byIndex(idx)
		if isNoRank(r.Rank) && idx != t.store.root {
			continue
		}
		if _, seen := result[r.Rank]; !seen {
			result[r.Rank] = r.Name
		}
	}
	return result
}

// AtRanks projects node onto a requested list of canonical ranks, per
// spec.md §4.6: a present rank yields its name; an absent rank that is more
// specific than node's own rank yields "uc_"+node.Name (the LCA/node lies
// above the requested level); anything else yields "unknown".
func (t *Taxonomy) AtRanks(node *TaxonRecord, requested []string) ([]string, error) {
	all := t.AllRanks(node)
	nodeIdx, nodeRankKnown := t.ranks.rankIndex(node.Rank)

	out := make([]string, 0, len(requested))
	for _, rank := range requested {
		if _, ok := t.ranks.rankIndex(rank); !ok {
			return nil, errors.Wrapf(ErrUnknownRank, "%s", rank)
		}
		if name, ok := all[rank]; ok {
			out = append(out, name)
			continue
		}
		reqIdx, _ := t.ranks.rankIndex(rank)
		if nodeRankKnown && reqIdx > nodeIdx { // larger index = more specific
			out = append(out, "uc_"+node.Name)
			continue
		}
		out = append(out, "unknown")
	}
	return out, nil
}

// LineageString walks node to root and renders root-to-node order, joined
// by ";". With asNames, each token is shortRankCode_Name; otherwise each
// token is the taxon's external id.
func (t *Taxonomy) LineageString(node *TaxonRecord, asNames bool) string {
	path := t.ancestorPath(node.InternalIndex)

	tokens := make([]string, len(path))
	// path is self-to-root; emit root-to-self.
	for i, idx := range path {
		r := t.store.byIndex(idx)
		var tok string
		if asNames {
			tok = string(t.ranks.shortCode(r.Rank)) + "_" + r.Name
		} else {
			tok = strconv.FormatInt(r.ExternalID, 10)
		}
		tokens[len(path)-1-i] = tok
	}
	return strings.Join(tokens, ";")
}
