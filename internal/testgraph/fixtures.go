// Package testgraph provides small in-memory digraph builders used by this
// repository's tests: edge-list construction, a deterministic shuffle for
// property-based vertex-relabeling checks, and a generator for the "chain of
// k strongly connected components" scenario used to exercise the cyclic
// reducer at scale.
package testgraph

import (
	"github.com/nkonev/digraph-reduce/graph"
)

// FromEdges builds a directed, unweighted graph over string vertices from an
// edge list, creating any vertex mentioned only as an edge endpoint.
func FromEdges(edges [][2]string) (*graph.MemoryGraph[string, string, struct{}], error) {
	g := graph.NewMemoryGraph[string, string, struct{}](graph.StringHash, graph.Directed())
	seen := make(map[string]bool)
	ensure := func(v string) error {
		if seen[v] {
			return nil
		}
		seen[v] = true
		return g.AddVertex(v)
	}
	for _, e := range edges {
		if err := ensure(e[0]); err != nil {
			return nil, err
		}
		if err := ensure(e[1]); err != nil {
			return nil, err
		}
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Shuffle returns a permutation of vs using a fixed linear-congruential
// sequence seeded by seed, so tests asserting vertex-relabeling equivariance
// get a reproducible but non-identity reordering without reaching for
// math/rand (whose output isn't guaranteed stable across Go versions).
func Shuffle(vs []string, seed uint64) []string {
	out := make([]string, len(vs))
	copy(out, vs)
	state := seed | 1
	for i := len(out) - 1; i > 0; i-- {
		state = state*6364136223846793005 + 1442695040888963407
		j := int(state>>33) % (i + 1)
		if j < 0 {
			j = -j
		}
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SCCChain builds k strongly connected components, each a complete digraph
// on k vertices (every ordered pair has an edge), wired together by one
// forward edge per component boundary connecting corresponding vertices:
// component i's vertex j has an edge to component i+1's vertex j.
//
// This is the "chain of k SCCs of size k" scenario: starting edge count is
// k*(k-1)*k + (k-1)*k (a complete digraph on k vertices has k*(k-1) directed
// edges, not k*(k-1)/2), reduced to exactly k*k + (k-1) edges by a correct
// cyclic reduction.
func SCCChain(k int) (*graph.MemoryGraph[string, string, struct{}], error) {
	g := graph.NewMemoryGraph[string, string, struct{}](graph.StringHash, graph.Directed())

	vertex := func(component, index int) string {
		return componentVertexName(component, index)
	}

	for c := 0; c < k; c++ {
		for i := 0; i < k; i++ {
			if err := g.AddVertex(vertex(c, i)); err != nil {
				return nil, err
			}
		}
	}

	for c := 0; c < k; c++ {
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				if i == j {
					continue
				}
				if err := g.AddEdge(vertex(c, i), vertex(c, j)); err != nil {
					return nil, err
				}
			}
		}
	}

	for c := 0; c < k-1; c++ {
		for i := 0; i < k; i++ {
			if err := g.AddEdge(vertex(c, i), vertex(c+1, i)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func componentVertexName(component, index int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	return string(rune('A'+component%26)) + "-" + string(letters[index%len(letters)])
}
