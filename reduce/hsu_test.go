package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkonev/digraph-reduce/internal/testgraph"
)

func TestDagReduce_SmallDAG(t *testing.T) {
	g, err := testgraph.FromEdges([][2]string{{"A", "B"}, {"B", "C"}, {"B", "D"}})
	require.NoError(t, err)

	require.NoError(t, DagReduce[string, string, struct{}](g, true))

	size, err := g.Size()
	require.NoError(t, err)
	assert.Equal(t, 3, size)
}

func TestDagReduce_DAGWithShortcuts(t *testing.T) {
	g, err := testgraph.FromEdges([][2]string{
		{"A", "B"}, {"B", "C"}, {"B", "D"}, {"C", "E"}, {"D", "F"},
		{"B", "E"}, {"B", "F"}, {"A", "E"}, {"A", "F"},
	})
	require.NoError(t, err)

	require.NoError(t, DagReduce[string, string, struct{}](g, true))

	var got [][2]string
	for e, err := range g.Edges() {
		require.NoError(t, err)
		got = append(got, [2]string{e.Source, e.Target})
	}
	assert.ElementsMatch(t, [][2]string{
		{"A", "B"}, {"B", "C"}, {"B", "D"}, {"C", "E"}, {"D", "F"},
	}, got)
}

func TestDagReduce_RejectsCycles(t *testing.T) {
	g, err := testgraph.FromEdges([][2]string{{"A", "B"}, {"B", "A"}})
	require.NoError(t, err)

	err = DagReduce[string, string, struct{}](g, true)
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, NotAcyclic, rerr.Kind)
}

func TestDagReduce_EmptyGraph(t *testing.T) {
	g, err := testgraph.FromEdges(nil)
	require.NoError(t, err)

	require.NoError(t, DagReduce[string, string, struct{}](g, true))

	order, err := g.Order()
	require.NoError(t, err)
	assert.Equal(t, 0, order)
}
