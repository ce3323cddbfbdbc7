package gt

import "container/heap"

// nodeDegree pairs a candidate node with the out-degree it had when pushed.
type nodeDegree struct {
	node   int
	degree int
}

// degreePQ implements heap.Interface as a max-heap of nodeDegree, ordered by
// degree descending, so Pop always returns the currently-highest-out-degree
// candidate.
type degreePQ []nodeDegree

// Len returns the number of candidates in the priority queue.
func (pq degreePQ) Len() int { return len(pq) }

// Less reports whether i should pop before j: higher degree first, ties
// broken by ascending node index for determinism.
func (pq degreePQ) Less(i, j int) bool {
	if pq[i].degree != pq[j].degree {
		return pq[i].degree > pq[j].degree
	}

	return pq[i].node < pq[j].node
}

// Swap exchanges two elements. Complexity: O(1).
func (pq degreePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new nodeDegree. Called by heap.Push. Complexity: O(log N).
func (pq *degreePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeDegree)) }

// Pop removes and returns the highest-degree candidate. Called by heap.Pop.
// Complexity: O(log N).
func (pq *degreePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// orderByOutDegree returns candidates sorted by descending out-degree as
// captured at call time. Elimination does not re-consult the heap as
// degrees change mid-pass — the ordering is a pre-pass heuristic, not a
// live priority schedule, matching how the source's discarded Prim variant
// used its heap as a one-shot expansion frontier rather than a
// continuously re-balanced structure.
func orderByOutDegree(candidates []int, degreeOf func(int) int) []int {
	pq := make(degreePQ, 0, len(candidates))
	for _, n := range candidates {
		pq = append(pq, nodeDegree{node: n, degree: degreeOf(n)})
	}
	heap.Init(&pq)

	out := make([]int, 0, len(candidates))
	for pq.Len() > 0 {
		out = append(out, heap.Pop(&pq).(nodeDegree).node)
	}

	return out
}
