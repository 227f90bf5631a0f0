package graph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDigraph(t *testing.T, edges [][2]string) *MemoryGraph[string, string, struct{}] {
	t.Helper()
	g := NewMemoryGraph[string, string, struct{}](StringHash, Directed())
	seen := make(map[string]bool)
	for _, e := range edges {
		for _, v := range e {
			if !seen[v] {
				seen[v] = true
				require.NoError(t, g.AddVertex(v))
			}
		}
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func sortedComponents(components [][]string) [][]string {
	out := make([][]string, len(components))
	for i, c := range components {
		cp := append([]string(nil), c...)
		sort.Strings(cp)
		out[i] = cp
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i][0] < out[j][0]
	})
	return out
}

func TestStronglyConnectedComponents(t *testing.T) {
	g := buildDigraph(t, [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"}, // one SCC: A,B,C
		{"C", "D"},                         // bridge to a singleton
	})

	components, err := StronglyConnectedComponents[string, string, struct{}](g)
	require.NoError(t, err)

	got := sortedComponents(components)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D"}}, got)
}

func TestStronglyConnectedComponents_AllSingletons(t *testing.T) {
	g := buildDigraph(t, [][2]string{{"A", "B"}, {"B", "C"}})

	components, err := StronglyConnectedComponents[string, string, struct{}](g)
	require.NoError(t, err)
	assert.Len(t, components, 3)
}

func TestHasCycle(t *testing.T) {
	acyclic := buildDigraph(t, [][2]string{{"A", "B"}, {"B", "C"}})
	cyclic, err := HasCycle[string, string, struct{}](acyclic)
	require.NoError(t, err)
	assert.False(t, cyclic)

	withCycle := buildDigraph(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})
	cyclic, err = HasCycle[string, string, struct{}](withCycle)
	require.NoError(t, err)
	assert.True(t, cyclic)
}
