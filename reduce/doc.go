// Package reduce implements transitive reduction of directed graphs that may
// contain cycles. It is built leaves-first out of four pieces: a Boolean-
// matrix reducer for acyclic graphs (Harry Hsu's method), a backtracking
// Hamiltonian-cycle search used inside strongly connected components, a mode
// policy toggling between edge-identity-preserving and synthetic-edge
// pruning, and an orchestrator that condenses a cyclic graph, reduces the
// condensation, prunes each component, and projects the result back onto the
// input.
//
// The package treats the graph it is handed as an external collaborator: it
// reads and mutates that graph only through the interfaces exported by the
// sibling graph package, and never constructs its own vertex or edge storage
// (the condensation it reduces is built by graph.BuildCondensation).
package reduce
