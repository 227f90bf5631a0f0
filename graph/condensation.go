package graph

import "errors"

// SCC is a handle onto one strongly connected component of a parent digraph.
// It is never constructed directly by callers; [BuildCondensation] produces
// one per component and uses each SCC's own pointer identity as both the key
// and the value type of the condensation graph it returns, per the "nested
// subgraphs as vertices" design: an SCC is a graph in its own right, viewed
// through the parent rather than copied out of it.
type SCC[K comparable, V any, E any] struct {
	parent  ReadDigraph[K, V, E]
	members map[K]struct{}
	order   []K
}

// Members returns the vertex hashes belonging to this component, in the
// stable order they were discovered in.
func (s *SCC[K, V, E]) Members() []K {
	return s.order
}

func (s *SCC[K, V, E]) has(k K) bool {
	_, ok := s.members[k]
	return ok
}

func (s *SCC[K, V, E]) Hash(v V) K {
	return s.parent.Hash(v)
}

func (s *SCC[K, V, E]) Traits() Traits {
	return s.parent.Traits()
}

func (s *SCC[K, V, E]) Vertex(hash K) (Vertex[V], error) {
	if !s.has(hash) {
		return Vertex[V]{}, &VertexNotFoundError[K]{Key: hash}
	}
	return s.parent.Vertex(hash)
}

func (s *SCC[K, V, E]) Vertices() VertexIter[V] {
	return func(yield func(Vertex[V], error) bool) {
		for _, k := range s.order {
			v, err := s.parent.Vertex(k)
			if !yield(v, err) {
				return
			}
		}
	}
}

func (s *SCC[K, V, E]) Edge(sourceHash, targetHash K) (Edge[K, E], error) {
	if !s.has(sourceHash) || !s.has(targetHash) {
		return Edge[K, E]{}, &EdgeNotFoundError[K]{Source: sourceHash, Target: targetHash}
	}
	return s.parent.Edge(sourceHash, targetHash)
}

func (s *SCC[K, V, E]) Edges() EdgeIter[K, E] {
	return func(yield func(Edge[K, E], error) bool) {
		for e, err := range s.parent.Edges() {
			if err != nil {
				if !yield(e, err) {
					return
				}
				continue
			}
			if !s.has(e.Source) || !s.has(e.Target) {
				continue
			}
			if !yield(e, nil) {
				return
			}
		}
	}
}

func (s *SCC[K, V, E]) Order() (int, error) {
	return len(s.order), nil
}

func (s *SCC[K, V, E]) Size() (int, error) {
	n := 0
	for e, err := range s.Edges() {
		if err != nil {
			return 0, err
		}
		_ = e
		n++
	}
	return n, nil
}

func (s *SCC[K, V, E]) AdjacencyMap() (map[K]map[K]Edge[K, E], error) {
	adj := make(map[K]map[K]Edge[K, E], len(s.order))
	for _, k := range s.order {
		adj[k] = make(map[K]Edge[K, E])
	}
	for e, err := range s.Edges() {
		if err != nil {
			return nil, err
		}
		adj[e.Source][e.Target] = e
	}
	return adj, nil
}

func (s *SCC[K, V, E]) PredecessorMap() (map[K]map[K]Edge[K, E], error) {
	pred := make(map[K]map[K]Edge[K, E], len(s.order))
	for _, k := range s.order {
		pred[k] = make(map[K]Edge[K, E])
	}
	for e, err := range s.Edges() {
		if err != nil {
			return nil, err
		}
		pred[e.Target][e.Source] = e
	}
	return pred, nil
}

var _ ReadDigraph[string, string, string] = (*SCC[string, string, string])(nil)

// BuildCondensation computes the strongly connected components of g and
// assembles them into a condensation: a digraph whose vertices are the SCCs
// themselves (as *SCC handles, using pointer identity as their own hash) and
// whose edges record that some vertex of one component reaches some vertex
// of another. The condensation is acyclic by construction.
//
// The second return value maps every vertex hash in g to the SCC handle that
// contains it, which callers need in order to classify an edge of g as
// intra-component or inter-component.
func BuildCondensation[K comparable, V any, E any](g ReadDigraph[K, V, E]) (*MemoryGraph[*SCC[K, V, E], *SCC[K, V, E], E], map[K]*SCC[K, V, E], error) {
	components, err := StronglyConnectedComponents[K, V, E](g)
	if err != nil {
		return nil, nil, err
	}

	identity := func(s *SCC[K, V, E]) *SCC[K, V, E] { return s }
	condensation := NewMemoryGraph[*SCC[K, V, E], *SCC[K, V, E], E](identity, Directed())

	owner := make(map[K]*SCC[K, V, E])
	for _, comp := range components {
		members := make(map[K]struct{}, len(comp))
		for _, k := range comp {
			members[k] = struct{}{}
		}
		s := &SCC[K, V, E]{parent: g, members: members, order: comp}
		if err := condensation.AddVertex(s); err != nil {
			return nil, nil, err
		}
		for _, k := range comp {
			owner[k] = s
		}
	}

	for e, err := range g.Edges() {
		if err != nil {
			return nil, nil, err
		}
		src, tgt := owner[e.Source], owner[e.Target]
		if src == tgt {
			continue
		}
		if err := condensation.AddEdge(src, tgt); err != nil {
			if !errors.Is(err, ErrEdgeAlreadyExists) {
				return nil, nil, err
			}
		}
	}

	return condensation, owner, nil
}
