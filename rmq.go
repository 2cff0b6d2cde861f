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

// rmqIndex is a sparse-table Range Minimum Query index over a depth
// sequence, per spec.md §4.4. M[i][j] holds the position of the minimum
// depth in the window [i, i+2^j).
type rmqIndex struct {
	depth []int32
	table [][]int32
	logs  []int32 // logs[i] = floor(log2(i)), precomputed for O(1) query
}

// buildRMQ builds the sparse table in O(n log n) time and space.
func buildRMQ(depth []int32) *rmqIndex {
	n := len(depth)
	r := &rmqIndex{depth: depth}

	r.logs = make([]int32, n+1)
	for i := 2; i <= n; i++ {
		r.logs[i] = r.logs[i/2] + 1
	}

	maxJ := 1
	if n > 1 {
		maxJ = int(r.logs[n]) + 1
	}
	r.table = make([][]int32, maxJ)
	r.table[0] = make([]int32, n)
	for i := 0; i < n; i++ {
		r.table[0][i] = int32(i)
	}

	for j := 1; j < maxJ; j++ {
		half := 1 << uint(j-1)
		width := 1 << uint(j)
		row := make([]int32, n-width+1)
		prev := r.table[j-1]
		for i := 0; i+width <= n; i++ {
			left := prev[i]
			right := prev[i+half]
			if depth[right] < depth[left] {
				row[i] = right
			} else {
				row[i] = left
			}
		}
		r.table[j] = row
	}
	return r
}

// query returns the tour position of the minimum depth in [l, r] inclusive.
// l must be <= r. Ties break toward the smaller position, matching the
// strict "<" comparison used throughout construction and query.
func (r *rmqIndex) query(l, rr int32) int32 {
	if l == rr {
		return l
	}
	length := rr - l + 1
	k := r.logs[length]
	row := r.table[k]
	left := row[l]
	right := row[rr-(1<<uint(k))+1]
	if r.depth[right] < r.depth[left] {
		return right
	}
	return left
}
