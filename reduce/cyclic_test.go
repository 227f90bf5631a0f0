package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkonev/digraph-reduce/graph"
	"github.com/nkonev/digraph-reduce/internal/testgraph"
)

func TestCyclicReduce_EmptyGraph(t *testing.T) {
	g, err := testgraph.FromEdges(nil)
	require.NoError(t, err)

	require.NoError(t, CyclicReduce[string, string, struct{}](g, ExactSubset))

	order, err := g.Order()
	require.NoError(t, err)
	assert.Equal(t, 0, order)
}

func TestCyclicReduce_TwoVerticesOneEdge(t *testing.T) {
	g, err := testgraph.FromEdges([][2]string{{"A", "B"}})
	require.NoError(t, err)

	require.NoError(t, CyclicReduce[string, string, struct{}](g, ExactSubset))

	size, err := g.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}

func TestCyclicReduce_FourCycleNoRedundancy(t *testing.T) {
	g, err := testgraph.FromEdges([][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"},
	})
	require.NoError(t, err)

	require.NoError(t, CyclicReduce[string, string, struct{}](g, ExactSubset))

	size, err := g.Size()
	require.NoError(t, err)
	assert.Equal(t, 4, size)
}

func TestCyclicReduce_FourCycleWithChords(t *testing.T) {
	g, err := testgraph.FromEdges([][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}, {"D", "B"},
	})
	require.NoError(t, err)

	require.NoError(t, CyclicReduce[string, string, struct{}](g, ExactSubset))

	size, err := g.Size()
	require.NoError(t, err)
	assert.Equal(t, 4, size)

	adj, err := g.AdjacencyMap()
	require.NoError(t, err)
	for v, targets := range adj {
		assert.Lenf(t, targets, 1, "vertex %s should have exactly one surviving outgoing edge", v)
	}
}

func TestCyclicReduce_SmallDAGUnchanged(t *testing.T) {
	g, err := testgraph.FromEdges([][2]string{{"A", "B"}, {"B", "C"}, {"B", "D"}})
	require.NoError(t, err)

	require.NoError(t, CyclicReduce[string, string, struct{}](g, ExactSubset))

	size, err := g.Size()
	require.NoError(t, err)
	assert.Equal(t, 3, size)
}

func TestCyclicReduce_ChainOfSCCs(t *testing.T) {
	const k = 4
	g, err := testgraph.SCCChain(k)
	require.NoError(t, err)

	sizeBefore, err := g.Size()
	require.NoError(t, err)
	assert.Equal(t, k*(k-1)*k+(k-1)*k, sizeBefore)

	require.NoError(t, CyclicReduce[string, string, struct{}](g, ExactSubset))

	sizeAfter, err := g.Size()
	require.NoError(t, err)
	assert.Equal(t, k*k+(k-1), sizeAfter)
}

func TestCyclicReduce_SyntheticModeProducesCoveringCycle(t *testing.T) {
	g, err := testgraph.FromEdges([][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}, {"D", "B"},
	})
	require.NoError(t, err)

	require.NoError(t, CyclicReduce[string, string, struct{}](g, SyntheticAllowed))

	size, err := g.Size()
	require.NoError(t, err)
	assert.Equal(t, 4, size)

	order, err := g.Order()
	require.NoError(t, err)
	assert.Equal(t, 4, order)
}

func TestCyclicReduce_Idempotent(t *testing.T) {
	g, err := testgraph.SCCChain(3)
	require.NoError(t, err)

	require.NoError(t, CyclicReduce[string, string, struct{}](g, ExactSubset))
	firstSize, err := g.Size()
	require.NoError(t, err)

	require.NoError(t, CyclicReduce[string, string, struct{}](g, ExactSubset))
	secondSize, err := g.Size()
	require.NoError(t, err)

	assert.Equal(t, firstSize, secondSize)
}

// TestCyclicReduce_ExactSubsetPreservesEdgeIdentity is the end-to-end check
// for exact-subset soundness (every surviving edge identity was present
// before reduction, untouched): each edge is tagged via graph.EdgeData with
// a payload naming its own endpoints, then after CyclicReduce runs in
// ExactSubset mode every surviving edge must still carry its original ID and
// that same payload — proof the edge was kept, not removed and recreated.
func TestCyclicReduce_ExactSubsetPreservesEdgeIdentity(t *testing.T) {
	edges := [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}, {"D", "B"},
	}

	g := graph.NewMemoryGraph[string, string, string](graph.StringHash, graph.Directed())
	for _, v := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(v))
	}

	before := make(map[graph.EdgeID]string)
	for _, e := range edges {
		payload := e[0] + "->" + e[1]
		require.NoError(t, g.AddEdge(e[0], e[1], graph.EdgeData(payload)))
		ge, err := g.Edge(e[0], e[1])
		require.NoError(t, err)
		before[ge.Properties.ID] = payload
	}

	require.NoError(t, CyclicReduce[string, string, string](g, ExactSubset))

	count := 0
	for e, err := range g.Edges() {
		require.NoError(t, err)
		count++
		payload, ok := before[e.Properties.ID]
		require.Truef(t, ok, "surviving edge ID %d was not one of the original edge IDs", e.Properties.ID)
		assert.Equal(t, payload, e.Properties.Data, "surviving edge must keep its original payload, not a recreated one")
	}
	assert.Equal(t, 4, count)
}

func TestCyclicReduce_RejectsWeightedGraph(t *testing.T) {
	g := graph.NewMemoryGraph[string, string, struct{}](graph.StringHash, graph.Directed(), graph.Weighted())
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "B"))

	err := CyclicReduce[string, string, struct{}](g, ExactSubset)
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, InvalidInput, rerr.Kind)
}

// TestCyclicReduce_InvariantUnderVertexRelabeling builds the same
// four-cycle-with-chords scenario twice, once with vertices added in their
// natural order and once in a shuffled insertion order, and checks that
// reduction yields the same edge count and the same one-outgoing-edge-per-
// vertex shape either way — the result must not depend on insertion or
// iteration order.
func TestCyclicReduce_InvariantUnderVertexRelabeling(t *testing.T) {
	edges := [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}, {"D", "B"},
	}

	natural, err := testgraph.FromEdges(edges)
	require.NoError(t, err)
	require.NoError(t, CyclicReduce[string, string, struct{}](natural, ExactSubset))
	naturalSize, err := natural.Size()
	require.NoError(t, err)

	vertices := []string{"A", "B", "C", "D"}
	shuffled := testgraph.Shuffle(vertices, 0x9e3779b97f4a7c15)

	g := graph.NewMemoryGraph[string, string, struct{}](graph.StringHash, graph.Directed())
	for _, v := range shuffled {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, CyclicReduce[string, string, struct{}](g, ExactSubset))

	shuffledSize, err := g.Size()
	require.NoError(t, err)
	assert.Equal(t, naturalSize, shuffledSize)

	adj, err := g.AdjacencyMap()
	require.NoError(t, err)
	for v, targets := range adj {
		assert.Lenf(t, targets, 1, "vertex %s should have exactly one surviving outgoing edge", v)
	}
}
