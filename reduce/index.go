package reduce

import (
	"github.com/nkonev/digraph-reduce/graph"
)

// vertexIndex is a stable, once-built hash-map mapping from vertex hash to
// dense bitmatrix position, built by enumerating a graph's vertices exactly
// once per call. Looking a vertex up by position is O(1), replacing the
// O(V) indexOf-over-a-list approach.
type vertexIndex[K comparable] struct {
	byHash []K
	byKey  map[K]int
}

func buildVertexIndex[K comparable, V any, E any](g graph.ReadDigraph[K, V, E]) (*vertexIndex[K], error) {
	order, err := g.Order()
	if err != nil {
		return nil, err
	}
	idx := &vertexIndex[K]{
		byHash: make([]K, 0, order),
		byKey:  make(map[K]int, order),
	}
	for v, err := range g.Vertices() {
		if err != nil {
			return nil, err
		}
		k := g.Hash(v.Value)
		idx.byKey[k] = len(idx.byHash)
		idx.byHash = append(idx.byHash, k)
	}
	return idx, nil
}

func (idx *vertexIndex[K]) n() int { return len(idx.byHash) }

func (idx *vertexIndex[K]) pos(k K) (int, bool) {
	p, ok := idx.byKey[k]
	return p, ok
}

func (idx *vertexIndex[K]) hash(pos int) K {
	return idx.byHash[pos]
}
