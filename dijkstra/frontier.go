// SPDX-License-Identifier: MIT

package dijkstra

import "container/heap"

// frontier is the set of unfinalized vertices keyed by tentative distance.
// Both implementations extract the minimum key and, among equal keys,
// the lowest vertex index.
type frontier interface {
	Len() int
	push(v int, d int64)
	decrease(v int, d int64)
	popMin() (v int, d int64)
}

func newFrontier(s Strategy, n int) frontier {
	if s == FrontierLinear {
		return newLinearFrontier(n)
	}

	return newHeapFrontier(n)
}

// linearFrontier keeps priorities in a flat slice and scans it on popMin.
type linearFrontier struct {
	prio  []int64
	in    []bool
	count int
}

func newLinearFrontier(n int) *linearFrontier {
	return &linearFrontier{
		prio: make([]int64, n),
		in:   make([]bool, n),
	}
}

func (f *linearFrontier) Len() int { return f.count }

func (f *linearFrontier) push(v int, d int64) {
	if !f.in[v] {
		f.in[v] = true
		f.count++
	}
	f.prio[v] = d
}

func (f *linearFrontier) decrease(v int, d int64) {
	if f.in[v] && d < f.prio[v] {
		f.prio[v] = d
	}
}

// popMin must not be called on an empty frontier.
func (f *linearFrontier) popMin() (int, int64) {
	best := -1
	for v := range f.prio {
		if !f.in[v] {
			continue
		}
		// strict < keeps the lowest index among ties
		if best < 0 || f.prio[v] < f.prio[best] {
			best = v
		}
	}
	f.in[best] = false
	f.count--

	return best, f.prio[best]
}

// heapFrontier is an indexed binary min-heap. pos[v] tracks v's slot so a
// decrease-key is a single heap.Fix rather than a lazy duplicate push.
type heapFrontier struct {
	verts []int   // heap-ordered vertices
	pos   []int   // pos[v] = index of v in verts, -1 when absent
	prio  []int64 // prio[v] = current key of v
}

func newHeapFrontier(n int) *heapFrontier {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}

	return &heapFrontier{
		verts: make([]int, 0, n),
		pos:   pos,
		prio:  make([]int64, n),
	}
}

// Len returns the number of vertices in the heap.
func (h *heapFrontier) Len() int { return len(h.verts) }

// Less orders by key, then by vertex index.
func (h *heapFrontier) Less(i, j int) bool {
	a, b := h.verts[i], h.verts[j]
	if h.prio[a] != h.prio[b] {
		return h.prio[a] < h.prio[b]
	}

	return a < b
}

// Swap swaps two slots and keeps pos in sync.
func (h *heapFrontier) Swap(i, j int) {
	h.verts[i], h.verts[j] = h.verts[j], h.verts[i]
	h.pos[h.verts[i]] = i
	h.pos[h.verts[j]] = j
}

// Push is called by heap.Push; x must be an int vertex.
func (h *heapFrontier) Push(x any) {
	v := x.(int)
	h.pos[v] = len(h.verts)
	h.verts = append(h.verts, v)
}

// Pop is called by heap.Pop; returns the vertex moved to the end.
func (h *heapFrontier) Pop() any {
	last := len(h.verts) - 1
	v := h.verts[last]
	h.verts = h.verts[:last]
	h.pos[v] = -1

	return v
}

func (h *heapFrontier) push(v int, d int64) {
	h.prio[v] = d
	if h.pos[v] >= 0 {
		heap.Fix(h, h.pos[v])
		return
	}
	heap.Push(h, v)
}

func (h *heapFrontier) decrease(v int, d int64) {
	if h.pos[v] < 0 || d >= h.prio[v] {
		return
	}
	h.prio[v] = d
	heap.Fix(h, h.pos[v])
}

func (h *heapFrontier) popMin() (int, int64) {
	v := heap.Pop(h).(int)

	return v, h.prio[v]
}
