package reduce

import (
	"github.com/hashicorp/go-multierror"

	"github.com/nkonev/digraph-reduce/graph"
)

// CyclicReducer is the orchestrator: it condenses a possibly-cyclic digraph
// into its strongly connected components, reduces the condensation with the
// DAG reducer, prunes every component down to a single cycle (either the
// Hamiltonian tour found within it or a synthetic one), and projects the
// surviving edges back onto the input. A zero-value CyclicReducer runs in
// ExactSubset mode.
type CyclicReducer[K comparable, V any, E any] struct {
	mode Mode
}

// NewCyclicReducer constructs a reducer in the default ExactSubset mode.
func NewCyclicReducer[K comparable, V any, E any]() *CyclicReducer[K, V, E] {
	return &CyclicReducer[K, V, E]{mode: ExactSubset}
}

// Mode reports the reducer's current pruning mode.
func (r *CyclicReducer[K, V, E]) Mode() Mode {
	return r.mode
}

// SetMode is the mutator the orchestrator exposes for choosing between
// exact-subset and synthetic-allowed pruning before Reduce is called.
func (r *CyclicReducer[K, V, E]) SetMode(m Mode) {
	r.mode = m
}

// AllowSynthetic switches the reducer to SyntheticAllowed mode.
func (r *CyclicReducer[K, V, E]) AllowSynthetic() {
	r.mode = SyntheticAllowed
}

// ExactSubset switches the reducer to ExactSubset mode (the default).
func (r *CyclicReducer[K, V, E]) ExactSubset() {
	r.mode = ExactSubset
}

// Validate checks g's shape against every precondition Reduce requires,
// aggregating every violation found (rather than stopping at the first)
// with multierror, the same way a caller validating a whole batch of
// constraints would want to see all of them at once. Any violation is
// reported as one *Error of kind InvalidInput whose cause is the aggregate.
func (r *CyclicReducer[K, V, E]) Validate(g graph.Digraph[K, V, E]) error {
	var result *multierror.Error
	traits := g.Traits()

	if !traits.IsDirected {
		result = multierror.Append(result, newError(InvalidInput, "graph must be directed", nil))
	}
	if traits.IsWeighted {
		result = multierror.Append(result, newError(InvalidInput, "graph must be unweighted", nil))
	}
	if traits.AllowsSelfLoops {
		result = multierror.Append(result, newError(InvalidInput, "graph must forbid self-loops", nil))
	}
	if traits.AllowsMultiEdges {
		result = multierror.Append(result, newError(InvalidInput, "graph must forbid multi-edges", nil))
	}

	if err := result.ErrorOrNil(); err != nil {
		return wrap(InvalidInput, "graph failed validation", err)
	}
	return nil
}

// Reduce performs the full cyclic transitive reduction described by the
// orchestrator's state machine: Idle -> Validated -> (Acyclic fast path) |
// (Condensed -> Inter-reduced -> Intra-reduced -> Projected), each arrow
// only taken once the previous step has succeeded.
//
// Reduce takes no lock on g for the duration of the call: the caller must
// hold g exclusively until Reduce returns.
func (r *CyclicReducer[K, V, E]) Reduce(g graph.Digraph[K, V, E]) error {
	if err := r.Validate(g); err != nil {
		return err
	}

	cyclic, err := graph.HasCycle[K, V, E](g)
	if err != nil {
		return wrap(InternalInvariant, "cycle check failed", err)
	}
	if !cyclic {
		// Acyclic fast path: cycle-checking is already proven unnecessary.
		return DagReduce[K, V, E](g, false)
	}

	condensation, owner, err := graph.BuildCondensation[K, V, E](g)
	if err != nil {
		return wrap(InternalInvariant, "failed to build condensation", err)
	}

	if err := DagReduce[*graph.SCC[K, V, E], *graph.SCC[K, V, E], E](condensation, false); err != nil {
		return wrap(InternalInvariant, "failed to reduce condensation", err)
	}

	if err := r.reduceComponents(g, condensation); err != nil {
		return err
	}

	return r.project(g, condensation, owner)
}

// reduceComponents prunes each SCC with more than 2 edges down to a single
// simple cycle covering all of its vertices, mutating g directly (an SCC is
// a view onto g, not a copy, so edits to g are what the view reflects).
func (r *CyclicReducer[K, V, E]) reduceComponents(g graph.Digraph[K, V, E], condensation *graph.MemoryGraph[*graph.SCC[K, V, E], *graph.SCC[K, V, E], E]) error {
	for scc, err := range condensation.Vertices() {
		if err != nil {
			return wrap(InternalInvariant, "failed to enumerate condensation vertices", err)
		}
		s := scc.Value

		size, err := s.Size()
		if err != nil {
			return wrap(InternalInvariant, "failed to size component", err)
		}
		if size < 3 {
			continue
		}

		if r.mode == SyntheticAllowed {
			if err := r.rewriteSynthetic(g, s); err != nil {
				return err
			}
			continue
		}
		if err := r.pruneExact(g, s); err != nil {
			return err
		}
	}
	return nil
}

// rewriteSynthetic deletes every edge of s and adds a fresh cycle through
// its vertices in the component's own stable enumeration order.
func (r *CyclicReducer[K, V, E]) rewriteSynthetic(g graph.Digraph[K, V, E], s *graph.SCC[K, V, E]) error {
	var existing []graph.Edge[K, E]
	for e, err := range s.Edges() {
		if err != nil {
			return wrap(InternalInvariant, "failed to enumerate component edges", err)
		}
		existing = append(existing, e)
	}
	for _, e := range existing {
		if err := g.RemoveEdgeByID(e.Properties.ID); err != nil {
			return wrap(InternalInvariant, "failed to remove edge during synthetic rewrite", err)
		}
	}

	members := s.Members()
	for i, k := range members {
		next := members[(i+1)%len(members)]
		if err := g.AddEdge(k, next); err != nil {
			return wrap(InternalInvariant, "failed to add synthetic cycle edge", err)
		}
	}
	return nil
}

// pruneExact runs the Hamiltonian searcher on s and removes every edge that
// is not one of the tour's m edges tour[i] -> tour[(i+1) mod m] (an edge
// running backwards along the tour is removed too), leaving exactly the
// tour's edges with their original identity intact.
func (r *CyclicReducer[K, V, E]) pruneExact(g graph.Digraph[K, V, E], s *graph.SCC[K, V, E]) error {
	tour, found, err := HamiltonianCycle[K, V, E](s)
	if err != nil {
		return wrap(InternalInvariant, "Hamiltonian search failed inside a component", err)
	}
	if !found {
		return wrap(InternalInvariant, "no Hamiltonian cycle found in a strongly connected component", nil)
	}

	m := len(tour)
	keep := make(map[[2]K]struct{}, m)
	for i, v := range tour {
		next := tour[(i+1)%m]
		keep[[2]K{v, next}] = struct{}{}
	}

	var toRemove []graph.Edge[K, E]
	for e, err := range s.Edges() {
		if err != nil {
			return wrap(InternalInvariant, "failed to enumerate component edges", err)
		}
		if _, ok := keep[[2]K{e.Source, e.Target}]; ok {
			continue
		}
		toRemove = append(toRemove, e)
	}
	for _, e := range toRemove {
		if err := g.RemoveEdgeByID(e.Properties.ID); err != nil {
			return wrap(InternalInvariant, "failed to remove non-tour edge", err)
		}
	}
	return nil
}

// project reconciles g's remaining inter-SCC edges against the reduced
// condensation: for every SCC pair that still has an edge in condensation,
// exactly one witness edge in g is kept and the rest are removed; for pairs
// the DAG reducer eliminated, every edge between them is removed. Intra-SCC
// edges were already finalized by reduceComponents and are left untouched.
func (r *CyclicReducer[K, V, E]) project(g graph.Digraph[K, V, E], condensation *graph.MemoryGraph[*graph.SCC[K, V, E], *graph.SCC[K, V, E], E], owner map[K]*graph.SCC[K, V, E]) error {
	survivingPairs := make(map[[2]*graph.SCC[K, V, E]]struct{})
	for e, err := range condensation.Edges() {
		if err != nil {
			return wrap(InternalInvariant, "failed to enumerate condensation edges", err)
		}
		survivingPairs[[2]*graph.SCC[K, V, E]{e.Source, e.Target}] = struct{}{}
	}

	type interEdge struct {
		pair [2]*graph.SCC[K, V, E]
		edge graph.Edge[K, E]
	}
	var interEdges []interEdge
	for e, err := range g.Edges() {
		if err != nil {
			return wrap(InternalInvariant, "failed to enumerate input edges", err)
		}
		src, tgt := owner[e.Source], owner[e.Target]
		if src == tgt {
			continue
		}
		interEdges = append(interEdges, interEdge{pair: [2]*graph.SCC[K, V, E]{src, tgt}, edge: e})
	}

	witnessChosen := make(map[[2]*graph.SCC[K, V, E]]bool)
	for _, ie := range interEdges {
		if _, surviving := survivingPairs[ie.pair]; !surviving {
			if err := g.RemoveEdgeByID(ie.edge.Properties.ID); err != nil {
				return wrap(InternalInvariant, "failed to remove eliminated inter-component edge", err)
			}
			continue
		}
		if witnessChosen[ie.pair] {
			// A witness was already kept for this SCC pair; this one is redundant.
			if err := g.RemoveEdgeByID(ie.edge.Properties.ID); err != nil {
				return wrap(InternalInvariant, "failed to remove redundant inter-component edge", err)
			}
			continue
		}
		witnessChosen[ie.pair] = true
	}

	return nil
}

// CyclicReduce is the free-function entry point matching the spec's
// CyclicReduce(G, mode) signature, for callers that don't need to hold onto
// a reducer between calls.
func CyclicReduce[K comparable, V any, E any](g graph.Digraph[K, V, E], mode Mode) error {
	r := NewCyclicReducer[K, V, E]()
	r.SetMode(mode)
	return r.Reduce(g)
}
