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

// Package taxolca is an in-memory NCBI-taxdump-flavored taxonomy engine:
// Euler tour + sparse-table RMQ for O(1) pairwise LCA, weighted-majority
// LCA over evidence paths, lineage/rank projection, clade-count
// aggregation, and transparent merged-id remapping.
//
// The engine is built once from three dump files and is read-only and
// goroutine-safe thereafter; it never mutates after reaching the Indexed
// state (see the State method and the lifecycle type).
package taxolca

import "github.com/pkg/errors"

// lifecycle is the construction state machine of spec.md §4's "State
// machines" section: Uninitialized -> NodesLoaded -> MergedApplied ->
// NamesResolved -> Indexed. Public query operations require Indexed.
type lifecycle int

const (
	Uninitialized lifecycle = iota
	NodesLoaded
	MergedApplied
	NamesResolved
	Indexed
)

func (l lifecycle) String() string {
	switch l {
	case Uninitialized:
		return "Uninitialized"
	case NodesLoaded:
		return "NodesLoaded"
	case MergedApplied:
		return "MergedApplied"
	case NamesResolved:
		return "NamesResolved"
	case Indexed:
		return "Indexed"
	default:
		return "unknown"
	}
}

// Taxonomy is the indexed, read-only taxonomy engine. Construct with New;
// every exported query method requires the Indexed state.
type Taxonomy struct {
	store  *Store
	tour   *eulerTour
	rmq    *rmqIndex
	ranks  *RankScheme
	logger Logger
	state  lifecycle
}

// Config carries the engine's two injected collaborators: the RankScheme
// (spec.md §4.6's "small configuration value") and the Logger (spec.md
// §6's "logger" external collaborator). Both are optional; zero-value
// Config yields DefaultRankScheme() and a Logger that discards everything.
type Config struct {
	Ranks  *RankScheme
	Logger Logger
}

// New loads the three taxdump-style files named by paths and builds the
// indexed engine. Construction-time errors (IoError, FormatError,
// InconsistentTopology) are returned, not panicked — the CLI's checkError
// is the process-terminator collaborator spec.md §6/§7 calls for.
func New(paths DumpPaths, cfg *Config) (*Taxonomy, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	ranks := cfg.Ranks
	if ranks == nil {
		ranks = DefaultRankScheme()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	t := &Taxonomy{
		store:  newStore(0),
		ranks:  ranks,
		logger: logger,
		state:  Uninitialized,
	}

	if err := loadNodes(paths.Nodes, t.store); err != nil {
		return nil, errors.Wrap(err, "loading nodes dump")
	}
	t.state = NodesLoaded

	if err := loadMerged(paths.Merged, t.store); err != nil {
		return nil, errors.Wrap(err, "loading merged dump")
	}
	t.state = MergedApplied

	if err := loadNames(paths.Names, t.store); err != nil {
		return nil, errors.Wrap(err, "loading names dump")
	}
	t.state = NamesResolved

	if err := t.store.resolveParents(); err != nil {
		return nil, errors.Wrap(err, "resolving taxonomy topology")
	}

	t.tour = buildEulerTour(t.store)
	t.rmq = buildRMQ(t.tour.depth)
	t.state = Indexed

	logger.Infof("taxolca: indexed %d taxa", t.store.size())

	return t, nil
}

// State reports the engine's lifecycle state.
func (t *Taxonomy) State() lifecycle { return t.state }

// Size returns the number of distinct taxa held (N, per spec.md §3).
func (t *Taxonomy) Size() int { return t.store.size() }

// RootExternalID returns the external id of the tree's root.
func (t *Taxonomy) RootExternalID() int64 {
	return t.store.byIndex(t.store.root).ExternalID
}

// Exists reports whether externalID resolves to a live taxon (following
// merged-id aliases transparently).
func (t *Taxonomy) Exists(externalID int64) bool {
	return t.store.exists(externalID)
}

// RecordOf resolves externalID to its TaxonRecord. In strict mode a miss
// is logged at Error level; in lenient mode it is logged at Warning level
// (or not at all, at the Logger implementation's discretion). Either way
// a miss returns (nil, false) — the engine never panics on a query-time
// unknown id, per spec.md §7.
func (t *Taxonomy) RecordOf(externalID int64, strict bool) (*TaxonRecord, bool) {
	idx, ok := t.store.internalOf(externalID)
	if !ok {
		if strict {
			t.logger.Errorf("taxolca: taxid %d not found (strict)", externalID)
		} else {
			t.logger.Warningf("taxolca: taxid %d not found", externalID)
		}
		return nil, false
	}
	return t.store.byIndex(idx), true
}
