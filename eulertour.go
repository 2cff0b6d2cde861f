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

// eulerTour holds the three parallel arrays of spec.md §3/§4.3.
type eulerTour struct {
	visit []int32 // internal index visited at step i, length 2N
	depth []int32 // depth of visit[i], length 2N
	first []int32 // first occurrence of v in visit, length N
}

// buildEulerTour runs an explicit-stack DFS from root (§9: recursion would
// not survive deep real-world taxonomies) and produces the tour.
func buildEulerTour(store *Store) *eulerTour {
	n := store.size()
	children := childrenByParent(store)

	tour := &eulerTour{
		visit: make([]int32, 0, 2*n),
		depth: make([]int32, 0, 2*n),
		first: make([]int32, n),
	}
	for i := range tour.first {
		tour.first[i] = -1
	}

	type frame struct {
		node     int32
		depth    int32
		childPos int
	}

	stack := make([]frame, 0, 64)
	stack = append(stack, frame{node: store.root, depth: 0})
	tour.visit = append(tour.visit, store.root)
	tour.depth = append(tour.depth, 0)
	tour.first[store.root] = 0

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := children[top.node]
		if top.childPos < len(kids) {
			child := kids[top.childPos]
			top.childPos++
			childDepth := top.depth + 1

			tour.visit = append(tour.visit, child)
			tour.depth = append(tour.depth, childDepth)
			if tour.first[child] == -1 {
				tour.first[child] = int32(len(tour.visit) - 1)
			}

			stack = append(stack, frame{node: child, depth: childDepth})
			continue
		}

		// leaving this node: append the return entry, using root-self for
		// the root per spec.md §4.3's edge case.
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			// returning from root: self-parent entry, preserving length 2N.
			tour.visit = append(tour.visit, store.root)
			tour.depth = append(tour.depth, 0)
			break
		}
		parent := stack[len(stack)-1]
		tour.visit = append(tour.visit, parent.node)
		tour.depth = append(tour.depth, parent.depth)
	}

	return tour
}

// childrenByParent groups internal indices by parent, preserving Store
// insertion order within each group (spec.md §4.7's ordering guarantee
// applies to this same grouping, which in turn depends on the nodes loader
// calling addNode in nodes-dump file order).
func childrenByParent(store *Store) [][]int32 {
	n := store.size()
	children := make([][]int32, n)
	for i := 0; i < n; i++ {
		r := store.byIndex(int32(i))
		if r.parentIdx == r.InternalIndex {
			continue // root's self-loop isn't a child edge
		}
		children[r.parentIdx] = append(children[r.parentIdx], r.InternalIndex)
	}
	return children
}
