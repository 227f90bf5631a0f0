package graph

// TopologicalSort runs a topological sort on a given directed acyclic graph
// and returns the vertex hashes in topological order: an edge from vertex A
// to vertex B always puts A before B. If there are multiple valid orderings,
// an arbitrary one is returned — nothing in this repository needs a
// deterministic tie-break, so none is computed.
//
// TopologicalSort works non-recursively via Kahn's algorithm and is
// destructive to predecessorMap.
func TopologicalSort[K comparable, E any](predecessorMap map[K]map[K]Edge[K, E]) func(yield func(K) bool) {
	queue := make([]K, 0, len(predecessorMap))
	for vertex, predecessors := range predecessorMap {
		if len(predecessors) == 0 {
			queue = append(queue, vertex)
			delete(predecessorMap, vertex)
		}
	}

	return func(yield func(K) bool) {
		var frontier []K
		for len(queue) > 0 {
			currentVertex, rest := queue[0], queue[1:]
			queue = rest

			if !yield(currentVertex) {
				return
			}

			frontier = frontier[:0]
			for vertex, predecessors := range predecessorMap {
				delete(predecessors, currentVertex)
				if len(predecessors) != 0 {
					continue
				}
				frontier = append(frontier, vertex)
				delete(predecessorMap, vertex)
			}
			queue = append(queue, frontier...)
		}
	}
}
