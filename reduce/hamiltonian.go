package reduce

import (
	"fmt"

	"github.com/nkonev/digraph-reduce/graph"
)

// HamiltonianCycle searches g for a cyclic sequence that visits every vertex
// exactly once using only existing edges. It returns the tour as a sequence
// of vertex hashes v0...v(n-1), implicitly closed by an edge back to v0, or
// found=false if no such cycle exists.
//
// g must be directed, unweighted, disallow self-loops, disallow multi-edges,
// and have at least 3 vertices; violating any of those fails with
// InvalidInput. If g is not strongly connected the search is skipped
// entirely and HamiltonianCycle returns found=false, since a Hamiltonian
// cycle would itself prove strong connectivity.
func HamiltonianCycle[K comparable, V any, E any](g graph.ReadDigraph[K, V, E]) (tour []K, found bool, err error) {
	traits := g.Traits()
	switch {
	case !traits.IsDirected:
		return nil, false, wrap(InvalidInput, "HamiltonianCycle requires a directed graph", nil)
	case traits.IsWeighted:
		return nil, false, wrap(InvalidInput, "HamiltonianCycle requires an unweighted graph", nil)
	case traits.AllowsSelfLoops:
		return nil, false, wrap(InvalidInput, "HamiltonianCycle requires a graph that forbids self-loops", nil)
	case traits.AllowsMultiEdges:
		return nil, false, wrap(InvalidInput, "HamiltonianCycle requires a graph that forbids multi-edges", nil)
	}

	order, err := g.Order()
	if err != nil {
		return nil, false, wrap(InternalInvariant, "failed to read graph order", err)
	}
	if order < 3 {
		return nil, false, wrap(InvalidInput, fmt.Sprintf("HamiltonianCycle requires at least 3 vertices, got %d", order), nil)
	}

	components, err := graph.StronglyConnectedComponents[K, V, E](g)
	if err != nil {
		return nil, false, wrap(InternalInvariant, "failed to compute strong connectivity", err)
	}
	if len(components) != 1 {
		return nil, false, nil
	}

	idx, err := buildVertexIndex[K, V, E](g)
	if err != nil {
		return nil, false, wrap(InternalInvariant, "failed to index vertices", err)
	}
	n := idx.n()

	adjacencyMap, err := graph.AdjacencyMap[K, V, E](g)
	if err != nil {
		return nil, false, wrap(InternalInvariant, "failed to read adjacency", err)
	}
	adj := newBitmatrix(n)
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
			adj.set(si, ti)
		}
	}

	positions := make([]int, n)
	for i := range positions {
		positions[i] = -1
	}
	positions[0] = 0
	used := make([]bool, n)
	used[0] = true

	if !nextVertex(adj, positions, used, 1, n) {
		return nil, false, nil
	}

	hashes := make([]K, n)
	for i, p := range positions {
		hashes[i] = idx.hash(p)
	}
	return hashes, true, nil
}

// nextVertex fills tour[depth] by trying candidate positions in ascending
// order, exactly reproducing the three distinct termination shapes of the
// search: a dead end (no candidate works, so false is returned here and the
// caller backtracks), a completed cycle (the tour is full and the closing
// edge exists, so true is returned all the way up), and an interior step
// found (a candidate extends the tour, recursion confirms the rest, true is
// returned). These are kept as three separate returns rather than collapsed
// into one because reproducing that shape is the only way later depths can
// tell a provisional step from an accepted one.
func nextVertex(adj *bitmatrix, tour []int, used []bool, depth, n int) bool {
	last := tour[depth-1]
	for c := 0; c < n; c++ {
		if used[c] || !adj.get(last, c) {
			continue
		}

		if depth == n-1 {
			if adj.get(c, tour[0]) {
				tour[depth] = c
				return true
			}
			continue
		}

		tour[depth] = c
		used[c] = true
		if nextVertex(adj, tour, used, depth+1, n) {
			return true
		}
		used[c] = false
		tour[depth] = -1
	}
	return false
}
