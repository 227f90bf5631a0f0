package graph

// GraphRelations is implemented by graphs that can provide efficient
// adjacency/predecessor views. [MemoryGraph] and [SCC] both implement it
// directly; AdjacencyMap/PredecessorMap fall back to iterating Edges() for
// any other implementation.
type GraphRelations[K comparable, E any] interface {
	AdjacencyMap() (map[K]map[K]Edge[K, E], error)
	PredecessorMap() (map[K]map[K]Edge[K, E], error)
}

// AdjacencyMap computes an adjacency map with all vertices in the graph.
// There is an entry for each vertex, mapping to the edges outgoing from it
// keyed by target hash.
func AdjacencyMap[K comparable, V any, E any](g GraphRead[K, V, E]) (map[K]map[K]Edge[K, E], error) {
	if rel, ok := g.(interface {
		AdjacencyMap() (map[K]map[K]Edge[K, E], error)
	}); ok {
		return rel.AdjacencyMap()
	}
	adj := make(map[K]map[K]Edge[K, E])
	for v, err := range g.Vertices() {
		if err != nil {
			return nil, err
		}
		adj[g.Hash(v.Value)] = make(map[K]Edge[K, E])
	}
	for e, err := range g.Edges() {
		if err != nil {
			return nil, err
		}
		if _, ok := adj[e.Source]; !ok {
			adj[e.Source] = make(map[K]Edge[K, E])
		}
		adj[e.Source][e.Target] = e
	}
	return adj, nil
}

// PredecessorMap computes a predecessor map with all vertices in the graph.
// It is the mirror image of AdjacencyMap: each vertex maps to the edges
// incoming to it, keyed by source hash.
func PredecessorMap[K comparable, V any, E any](g GraphRead[K, V, E]) (map[K]map[K]Edge[K, E], error) {
	if rel, ok := g.(interface {
		PredecessorMap() (map[K]map[K]Edge[K, E], error)
	}); ok {
		return rel.PredecessorMap()
	}
	pred := make(map[K]map[K]Edge[K, E])
	for v, err := range g.Vertices() {
		if err != nil {
			return nil, err
		}
		pred[g.Hash(v.Value)] = make(map[K]Edge[K, E])
	}
	for e, err := range g.Edges() {
		if err != nil {
			return nil, err
		}
		if _, ok := pred[e.Target]; !ok {
			pred[e.Target] = make(map[K]Edge[K, E])
		}
		pred[e.Target][e.Source] = e
	}
	return pred, nil
}
