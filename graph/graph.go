package graph

// Graph represents a generic graph data structure consisting of vertices of
// type V identified by a hash of type K. It composes the read, write and
// relational capabilities that the reduce package's algorithms are written
// against; concrete containers (such as [MemoryGraph]) implement all of it.
type (
	Graph[K comparable, V any, E any] interface {
		GraphRead[K, V, E]
		GraphWrite[K, V, E]
		GraphRelations[K, E]
	}

	// ReadDigraph is the read-only subset of Graph that algorithms which
	// never mutate their input (HamiltonianCycle, StronglyConnectedComponents,
	// HasCycle) are written against.
	ReadDigraph[K comparable, V any, E any] interface {
		GraphRead[K, V, E]
		GraphRelations[K, E]
	}

	// Digraph is the full read/write contract the reduce package's mutating
	// entry points (DagReduce, CyclicReducer.Reduce) require.
	Digraph[K comparable, V any, E any] interface {
		ReadDigraph[K, V, E]
		GraphWrite[K, V, E]
	}

	VertexIter[V any]             func(yield func(Vertex[V], error) bool)
	EdgeIter[K comparable, E any] func(yield func(Edge[K, E], error) bool)

	GraphRead[K comparable, V any, E any] interface {
		Hash(V) K
		Traits() Traits

		// Vertex returns the vertex with the given hash or a *VertexNotFoundError
		// if it doesn't exist.
		Vertex(hash K) (Vertex[V], error)

		// Vertices returns an iterator over all vertices in the graph.
		Vertices() VertexIter[V]

		// Edge returns the edge joining two given vertices or a *EdgeNotFoundError
		// if the edge doesn't exist.
		Edge(sourceHash, targetHash K) (Edge[K, E], error)

		// Edges returns an iterator over all edges in the graph.
		Edges() EdgeIter[K, E]

		// Order returns the number of vertices in the graph.
		Order() (int, error)

		// Size returns the number of edges in the graph.
		Size() (int, error)
	}

	GraphWrite[K comparable, V any, E any] interface {
		// AddVertex creates a new vertex in the graph. If the vertex already
		// exists, *VertexAlreadyExistsError is returned.
		AddVertex(value V, options ...func(*VertexProperties)) error

		// RemoveVertex removes the vertex with the given hash value from the
		// graph. The vertex must be disconnected; otherwise *VertexHasEdgesError
		// is returned.
		RemoveVertex(hash K) error

		// AddEdge creates an edge between the source and the target vertex.
		// If either vertex cannot be found, *VertexNotFoundError is returned.
		// If the edge already exists, *EdgeAlreadyExistsError is returned.
		AddEdge(sourceHash, targetHash K, options ...func(*EdgeProperties[E])) error

		// AddEdgeWithID behaves like AddEdge but assigns the edge a caller-chosen
		// identity instead of one generated by the container, so a removed edge
		// can be added back with the exact same identity. The reduce package
		// does not call it: exact-subset reduction only removes edges.
		AddEdgeWithID(id EdgeID, sourceHash, targetHash K, options ...func(*EdgeProperties[E])) error

		// RemoveEdge removes the edge between the given source and target
		// vertices. If the edge cannot be found, *EdgeNotFoundError is returned.
		RemoveEdge(source, target K) error

		// RemoveEdgeByID removes the edge with the given identity, wherever its
		// endpoints currently are. If no such edge exists, *EdgeNotFoundError is
		// returned.
		RemoveEdgeByID(id EdgeID) error
	}

	// Vertex is a value stored in a graph together with its properties.
	Vertex[V any] struct {
		Value      V
		Properties VertexProperties
	}

	// Edge represents an edge that joins a source vertex to a target vertex.
	Edge[K comparable, E any] struct {
		Source     K
		Target     K
		Properties EdgeProperties[E]
	}

	// EdgeID is an opaque handle that distinguishes one edge from another
	// independent of its current endpoints, so host applications can attach
	// auxiliary state to an edge and have it survive a reduction unchanged.
	EdgeID uint64

	// EdgeProperties is the metadata bundle attached to every edge.
	EdgeProperties[E any] struct {
		ID         EdgeID
		Attributes map[string]string
		Weight     float64
		Data       E
	}

	// Hash is a hashing function that takes a vertex of type V and returns a
	// hash value of type K.
	Hash[K comparable, V any] func(V) K
)

// VertexProperties is the metadata bundle attached to every vertex.
type VertexProperties struct {
	Attributes map[string]string
	Weight     float64
}
