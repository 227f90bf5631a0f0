// Package graph provides the generic directed-graph container that the
// reduce package treats as an external collaborator: vertex and edge
// storage, type traits (directed/weighted/self-loops/multi-edges), strong-
// connectivity analysis, condensation construction, and a simple cycle
// test. None of this package knows about transitive reduction or
// Hamiltonian cycles; it only exposes the capabilities those algorithms
// are written against.
package graph
