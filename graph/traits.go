package graph

// Traits reports the shape of a graph: whether it is directed, whether its
// edges carry meaningful weight, and whether it tolerates self-loops or
// parallel (multi-)edges between the same pair of vertices. The reduce
// package's entry points validate against these flags before doing any
// work, per their documented preconditions.
type Traits struct {
	IsDirected       bool
	IsWeighted       bool
	AllowsSelfLoops  bool
	AllowsMultiEdges bool
}

// Directed is a functional option that marks a graph as directed.
func Directed() func(*Traits) {
	return func(t *Traits) {
		t.IsDirected = true
	}
}

// Weighted is a functional option that marks a graph's edges as weighted.
func Weighted() func(*Traits) {
	return func(t *Traits) {
		t.IsWeighted = true
	}
}

// SelfLoops is a functional option that permits edges from a vertex to
// itself.
func SelfLoops() func(*Traits) {
	return func(t *Traits) {
		t.AllowsSelfLoops = true
	}
}

// MultiEdges is a functional option that permits more than one edge between
// the same ordered pair of vertices.
func MultiEdges() func(*Traits) {
	return func(t *Traits) {
		t.AllowsMultiEdges = true
	}
}
