package dpll

import (
	"fmt"

	"github.com/cnflab/satcore/clause"
	"github.com/cnflab/satcore/engine"
	"github.com/cnflab/satcore/trace"
)

// propStatus is the outcome of a fixpoint unit-propagation pass.
type propStatus int

const (
	propAllTrue propStatus = iota
	propConflict
	propIndet
)

// Naive is the recursive DPLL engine of spec.md §4.5: unindexed, fixpoint
// unit propagation, then split on the first unassigned variable. Grounded
// on the textbook recursive shape of
// other_examples/CptPie-DPLL-solver__dpll-solver.go, rewritten around
// clause.Assignment and trace.Sink.
type Naive struct{}

// Solve runs the naive DPLL engine to completion.
func (Naive) Solve(problem clause.Set, sink *trace.Recorder) engine.Output {
	nbVars := problem.ComputeMaxVar()
	a := clause.NewAssignment(nbVars)
	var stats trace.Stats
	ok := naiveSearch(problem.Clauses, &a, 0, sink, &stats)
	sink.Stats(stats)
	if !ok {
		return engine.Output{Verdict: engine.Unsat{}, Trace: sink.Render()}
	}
	return engine.Output{Verdict: engine.Model{Values: a.Snapshot()}, Trace: sink.Render()}
}

func naiveSearch(clauses []*clause.Clause, a *clause.Assignment, depth int, sink *trace.Recorder, stats *trace.Stats) bool {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	mark := a.Mark()
	switch naivePropagate(clauses, a, stats) {
	case propConflict:
		sink.Enter(depth, "unit propagation conflict")
		return false
	case propAllTrue:
		sink.Enter(depth, "all clauses satisfied")
		return true
	}
	v := a.FirstUnassigned()
	sink.Enter(depth, fmt.Sprintf("split on var %d", v+1))
	for _, val := range [2]bool{true, false} {
		l := v.SignedLit(!val)
		a.Assign(l)
		if naiveSearch(clauses, a, depth+1, sink, stats) {
			return true
		}
		a.Undo(mark)
	}
	return false
}

// naivePropagate iterates the unit rule to a fixpoint, scanning every
// clause on every pass (no occurrence indexing), per spec.md §4.5. On
// conflict it restores every variable it assigned before returning.
func naivePropagate(clauses []*clause.Clause, a *clause.Assignment, stats *trace.Stats) propStatus {
	mark := a.Mark()
	for {
		var units []clause.Lit
		conflict := false
		other := false
		for _, c := range clauses {
			cl := classify(c, a)
			switch cl.kind {
			case conflictKind:
				conflict = true
			case unitKind:
				units = append(units, cl.lit)
			case otherKind:
				other = true
			}
			if conflict {
				break
			}
		}
		if conflict {
			a.Undo(mark)
			return propConflict
		}
		if len(units) == 0 {
			if other {
				return propIndet
			}
			return propAllTrue
		}
		stats.Propagations++
		for _, l := range units {
			switch a.LitValue(l) {
			case clause.True:
				continue
			case clause.False:
				conflict = true
			default:
				a.Assign(l)
				stats.UnitsDerived++
			}
			if conflict {
				break
			}
		}
		if conflict {
			a.Undo(mark)
			return propConflict
		}
	}
}
