package graph

import (
	"sync"
)

// MemoryGraph is a straightforward in-memory adjacency-map graph. It is the
// concrete container used by this repository's tests and fixtures; the
// reduce package takes its input only through the Digraph/ReadDigraph
// interfaces it happens to satisfy, and meets MemoryGraph itself only as the
// condensation that BuildCondensation returns.
type MemoryGraph[K comparable, V any, E any] struct {
	traits Traits
	hash   Hash[K, V]

	mu        sync.RWMutex
	vertices  map[K]*Vertex[V]
	outEdges  map[K]map[K][]*Edge[K, E] // source -> target -> parallel edges
	byID      map[EdgeID]*Edge[K, E]
	edgeCount int
	nextID    EdgeID
}

var (
	_ Graph[string, string, string] = (*MemoryGraph[string, string, string])(nil)
)

// NewMemoryGraph constructs an empty graph with the given hashing function
// and traits. Traits are set with the same functional-option idiom as
// [Directed], [Weighted], [SelfLoops] and [MultiEdges].
func NewMemoryGraph[K comparable, V any, E any](hash Hash[K, V], options ...func(*Traits)) *MemoryGraph[K, V, E] {
	g := &MemoryGraph[K, V, E]{
		hash:     hash,
		vertices: make(map[K]*Vertex[V]),
		outEdges: make(map[K]map[K][]*Edge[K, E]),
		byID:     make(map[EdgeID]*Edge[K, E]),
	}
	for _, option := range options {
		option(&g.traits)
	}
	return g
}

func (s *MemoryGraph[K, V, E]) Traits() Traits {
	return s.traits
}

func (s *MemoryGraph[K, V, E]) Hash(v V) K {
	return s.hash(v)
}

func (s *MemoryGraph[K, V, E]) Vertex(hash K) (Vertex[V], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vertices[hash]
	if !ok {
		return Vertex[V]{}, &VertexNotFoundError[K]{Key: hash}
	}
	return *v, nil
}

func (s *MemoryGraph[K, V, E]) Vertices() VertexIter[V] {
	return func(yield func(Vertex[V], error) bool) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		for _, v := range s.vertices {
			if !yield(*v, nil) {
				return
			}
		}
	}
}

// edge assumes the caller is holding a read lock. It returns the first
// parallel edge between source and target, which is the only one there can
// be unless AllowsMultiEdges is set.
func (s *MemoryGraph[K, V, E]) edge(source, target K) *Edge[K, E] {
	if targets, ok := s.outEdges[source]; ok {
		if es := targets[target]; len(es) > 0 {
			return es[0]
		}
	}
	return nil
}

func (s *MemoryGraph[K, V, E]) Edge(sourceHash, targetHash K) (Edge[K, E], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e := s.edge(sourceHash, targetHash)
	if e == nil {
		return Edge[K, E]{}, &EdgeNotFoundError[K]{Source: sourceHash, Target: targetHash}
	}
	return *e, nil
}

func (s *MemoryGraph[K, V, E]) Edges() EdgeIter[K, E] {
	return func(yield func(Edge[K, E], error) bool) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		for _, targets := range s.outEdges {
			for _, parallel := range targets {
				for _, e := range parallel {
					if !yield(*e, nil) {
						return
					}
				}
			}
		}
	}
}

func (s *MemoryGraph[K, V, E]) Order() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vertices), nil
}

func (s *MemoryGraph[K, V, E]) Size() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.edgeCount, nil
}

func (s *MemoryGraph[K, V, E]) AddVertex(value V, options ...func(*VertexProperties)) error {
	k := s.hash(value)
	v := &Vertex[V]{Value: value}
	for _, option := range options {
		option(&v.Properties)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.vertices[k]; ok {
		return &VertexAlreadyExistsError[K, V]{Key: k, ExistingVertex: *existing}
	}
	s.vertices[k] = v
	return nil
}

func (s *MemoryGraph[K, V, E]) RemoveVertex(hash K) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vertices[hash]; !ok {
		return &VertexNotFoundError[K]{Key: hash}
	}
	count := len(s.outEdges[hash])
	for _, targets := range s.outEdges {
		count += len(targets[hash])
	}
	if count > 0 {
		return &VertexHasEdgesError[K]{Key: hash, Count: count}
	}
	delete(s.vertices, hash)
	delete(s.outEdges, hash)
	return nil
}

func (s *MemoryGraph[K, V, E]) addEdgeLocked(id EdgeID, sourceHash, targetHash K, options []func(*EdgeProperties[E])) error {
	if _, ok := s.vertices[sourceHash]; !ok {
		return &VertexNotFoundError[K]{Key: sourceHash}
	}
	if _, ok := s.vertices[targetHash]; !ok {
		return &VertexNotFoundError[K]{Key: targetHash}
	}
	if sourceHash == targetHash && !s.traits.AllowsSelfLoops {
		return &EdgeAlreadyExistsError[K, E]{ExistingEdge: Edge[K, E]{Source: sourceHash, Target: targetHash}}
	}
	if e := s.edge(sourceHash, targetHash); e != nil && !s.traits.AllowsMultiEdges {
		return &EdgeAlreadyExistsError[K, E]{ExistingEdge: *e}
	}
	if _, ok := s.byID[id]; ok {
		return &EdgeAlreadyExistsError[K, E]{ExistingEdge: *s.byID[id]}
	}

	edge := &Edge[K, E]{Source: sourceHash, Target: targetHash}
	edge.Properties.ID = id
	for _, option := range options {
		option(&edge.Properties)
	}

	if _, ok := s.outEdges[sourceHash]; !ok {
		s.outEdges[sourceHash] = make(map[K][]*Edge[K, E])
	}
	s.outEdges[sourceHash][targetHash] = append(s.outEdges[sourceHash][targetHash], edge)
	s.byID[id] = edge
	s.edgeCount++
	return nil
}

func (s *MemoryGraph[K, V, E]) AddEdge(sourceHash, targetHash K, options ...func(*EdgeProperties[E])) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.addEdgeLocked(s.nextID, sourceHash, targetHash, options)
}

func (s *MemoryGraph[K, V, E]) AddEdgeWithID(id EdgeID, sourceHash, targetHash K, options ...func(*EdgeProperties[E])) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id > s.nextID {
		s.nextID = id
	}
	return s.addEdgeLocked(id, sourceHash, targetHash, options)
}

func (s *MemoryGraph[K, V, E]) removeFromOutEdges(e *Edge[K, E]) {
	parallel := s.outEdges[e.Source][e.Target]
	for i, candidate := range parallel {
		if candidate == e {
			s.outEdges[e.Source][e.Target] = append(parallel[:i], parallel[i+1:]...)
			break
		}
	}
	if len(s.outEdges[e.Source][e.Target]) == 0 {
		delete(s.outEdges[e.Source], e.Target)
	}
}

func (s *MemoryGraph[K, V, E]) RemoveEdge(source, target K) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.edge(source, target)
	if e == nil {
		return &EdgeNotFoundError[K]{Source: source, Target: target}
	}
	s.removeFromOutEdges(e)
	delete(s.byID, e.Properties.ID)
	s.edgeCount--
	return nil
}

func (s *MemoryGraph[K, V, E]) RemoveEdgeByID(id EdgeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return &EdgeNotFoundError[K]{}
	}
	s.removeFromOutEdges(e)
	delete(s.byID, id)
	s.edgeCount--
	return nil
}

func (s *MemoryGraph[K, V, E]) AdjacencyMap() (map[K]map[K]Edge[K, E], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	adj := make(map[K]map[K]Edge[K, E], len(s.vertices))
	for k := range s.vertices {
		adj[k] = make(map[K]Edge[K, E], len(s.outEdges[k]))
	}
	for src, targets := range s.outEdges {
		for tgt, parallel := range targets {
			for _, e := range parallel {
				adj[src][tgt] = *e
			}
		}
	}
	return adj, nil
}

func (s *MemoryGraph[K, V, E]) PredecessorMap() (map[K]map[K]Edge[K, E], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pred := make(map[K]map[K]Edge[K, E], len(s.vertices))
	for k := range s.vertices {
		pred[k] = make(map[K]Edge[K, E])
	}
	for src, targets := range s.outEdges {
		for tgt, parallel := range targets {
			for _, e := range parallel {
				pred[tgt][src] = *e
			}
		}
	}
	return pred, nil
}
