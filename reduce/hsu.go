package reduce

import (
	"github.com/nkonev/digraph-reduce/graph"
)

// DagReduce computes the transitive reduction of g in place using Harry
// Hsu's Boolean-matrix method: build an adjacency bitmatrix, turn it into a
// reachability closure, strip every edge that is a transitive shortcut, then
// remove from g whatever the matrix says no longer belongs.
//
// g must be directed. If checkForCycles is true and g contains a cycle,
// DagReduce fails with NotAcyclic and leaves g untouched; the caller is
// expected to pass false only when it has already established acyclicity
// (the cyclic reducer does so on its acyclic fast path and for the
// condensation, which is acyclic by construction).
func DagReduce[K comparable, V any, E any](g graph.Digraph[K, V, E], checkForCycles bool) error {
	traits := g.Traits()
	if !traits.IsDirected {
		return wrap(InvalidInput, "DagReduce requires a directed graph", nil)
	}

	if checkForCycles {
		cyclic, err := graph.HasCycle[K, V, E](g)
		if err != nil {
			return wrap(InternalInvariant, "cycle check failed", err)
		}
		if cyclic {
			return wrap(NotAcyclic, "DagReduce requires an acyclic graph", nil)
		}
	}

	idx, err := buildTopologicalIndex[K, V, E](g)
	if err != nil {
		return wrap(InternalInvariant, "failed to index vertices", err)
	}
	n := idx.n()
	if n == 0 {
		return nil
	}

	adjacencyMap, err := graph.AdjacencyMap[K, V, E](g)
	if err != nil {
		return wrap(InternalInvariant, "failed to read adjacency", err)
	}

	m := newBitmatrix(n)
	for src, targets := range adjacencyMap {
		si, ok := idx.pos(src)
		if !ok {
			continue
		}
		for tgt := range targets {
			ti, ok := idx.pos(tgt)
			if !ok {
				continue
			}
			m.set(si, ti)
		}
	}

	closure(m, n)
	reduceRedundant(m, n)

	// Phase 3: remove every original edge whose bit the reduction cleared.
	for src, targets := range adjacencyMap {
		si, _ := idx.pos(src)
		for tgt := range targets {
			ti, _ := idx.pos(tgt)
			if !m.get(si, ti) {
				if err := g.RemoveEdge(src, tgt); err != nil {
					return wrap(InternalInvariant, "failed to remove redundant edge", err)
				}
			}
		}
	}

	return nil
}

// buildTopologicalIndex assigns bitmatrix positions in topological order
// rather than arbitrary container-enumeration order. Phase 1 of Hsu's method
// addresses rows without caring about this, but a topological ordering keeps
// the bitmatrix's upper triangle the interesting one. Where several
// topological orders exist, which one is used depends on map iteration and
// can differ between runs on the same graph.
func buildTopologicalIndex[K comparable, V any, E any](g graph.Digraph[K, V, E]) (*vertexIndex[K], error) {
	predecessorMap, err := graph.PredecessorMap[K, V, E](g)
	if err != nil {
		return nil, err
	}

	idx := &vertexIndex[K]{
		byHash: make([]K, 0, len(predecessorMap)),
		byKey:  make(map[K]int, len(predecessorMap)),
	}
	for v := range graph.TopologicalSort[K, E](predecessorMap) {
		idx.byKey[v] = len(idx.byHash)
		idx.byHash = append(idx.byHash, v)
	}
	return idx, nil
}

// closure turns the adjacency bitmatrix m into a reachability closure: for
// each i, whenever j reaches i (M[j][i] set), row i's reachability is also
// reachable from j, so row i is OR'd into row j.
func closure(m *bitmatrix, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if m.get(j, i) {
				m.orRowInto(j, i)
			}
		}
	}
}

// reduceRedundant strips transitive shortcuts from the closure matrix in
// place: whenever i reaches j and j reaches k, the direct i->k bit is no
// longer needed and is cleared.
func reduceRedundant(m *bitmatrix, n int) {
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if !m.get(i, j) {
				continue
			}
			for _, k := range m.bitsInRow(j) {
				m.clear(i, k)
			}
		}
	}
}
