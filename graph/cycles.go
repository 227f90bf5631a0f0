package graph

// HasCycle reports whether g contains at least one directed cycle. It runs a
// plain depth-first search tracking the recursion stack, the same technique
// the teacher uses in its own cycle-creation check before adding an edge,
// generalized here to a whole-graph pass.
func HasCycle[K comparable, V any, E any](g ReadDigraph[K, V, E]) (bool, error) {
	adjacencyMap, err := AdjacencyMap(g)
	if err != nil {
		return false, err
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[K]int, len(adjacencyMap))

	var visit func(K) bool
	visit = func(v K) bool {
		state[v] = visiting
		for target := range adjacencyMap[v] {
			switch state[target] {
			case visiting:
				return true
			case unvisited:
				if visit(target) {
					return true
				}
			}
		}
		state[v] = done
		return false
	}

	for v := range adjacencyMap {
		if state[v] == unvisited {
			if visit(v) {
				return true, nil
			}
		}
	}
	return false, nil
}
