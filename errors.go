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

import "errors"

// ErrTaxonNotFound means a query-time external id has no record in the Store.
var ErrTaxonNotFound = errors.New("taxolca: taxon not found")

// ErrInconsistentTopology means a nodes row's parent could not be resolved
// against anything already loaded into the Store.
var ErrInconsistentTopology = errors.New("taxolca: parent reference unresolved")

// ErrDuplicateTaxon means an external id was declared twice in the nodes
// dump with a conflicting parent or rank.
var ErrDuplicateTaxon = errors.New("taxolca: duplicate external id with conflicting data")

// ErrMalformedRow means a dump row had fewer fields than required, or a
// nodes row carried a non-positive external id.
var ErrMalformedRow = errors.New("taxolca: malformed row")

// ErrNoRoot means no record with parent_external_id == external_id was found.
var ErrNoRoot = errors.New("taxolca: no root node found")

// ErrUnknownRank means a requested rank is not in the configured RankScheme.
var ErrUnknownRank = errors.New("taxolca: unknown rank")

// ErrUnknownVoteMode means an unrecognized weighted-majority vote mode was requested.
var ErrUnknownVoteMode = errors.New("taxolca: unknown vote mode")

// ErrNotIndexed means a query API was called before the engine reached the
// Indexed lifecycle state.
var ErrNotIndexed = errors.New("taxolca: engine is not indexed yet")
