// Package truthtable implements the recursive partial-assignment
// enumerator of spec.md §4.2, grounded on the recursive-assignment shape of
// other_examples/DolphyWind-SAT-Solver__operation.go and restructured
// around clause.Assignment and trace.Sink.
package truthtable

import (
	"fmt"

	"github.com/cnflab/satcore/clause"
	"github.com/cnflab/satcore/engine"
	"github.com/cnflab/satcore/trace"
)

// Engine is the truth-table search procedure. LeavesOnly selects between
// the two modes of spec.md §4.2: when true, the clause set is evaluated
// only once every variable is bound; when false, every partial assignment
// is evaluated and a branch stops early as soon as it is decided.
type Engine struct {
	LeavesOnly bool
}

// Solve runs the truth-table search over problem, using v variables (the
// caller-declared or computed maximum).
func (e Engine) Solve(problem clause.Set, v int, sink *trace.Recorder) engine.Output {
	nbVars := v
	if want := problem.ComputeMaxVar(); want > nbVars {
		nbVars = want
	}
	a := clause.NewAssignment(nbVars)
	var stats trace.Stats
	found := search(problem.Clauses, &a, 0, nbVars, e.LeavesOnly, sink, &stats)
	sink.Stats(stats)
	if !found {
		return engine.Output{Verdict: engine.Unsat{}, Trace: sink.Render()}
	}
	return engine.Output{Verdict: engine.Model{Values: a.Snapshot()}, Trace: sink.Render()}
}

// search tries variable `next` (0-based position, i.e. Var(next)) as True
// then False, returning true and leaving a populated with a satisfying
// model if one is found in this subtree.
func search(clauses []*clause.Clause, a *clause.Assignment, next, nbVars int, leavesOnly bool, sink *trace.Recorder, stats *trace.Stats) bool {
	if next > stats.MaxDepth {
		stats.MaxDepth = next
	}
	if next == nbVars {
		stats.Leaves++
		result := evaluate(clauses, a, stats)
		sink.Enter(next, fmt.Sprintf("leaf evaluation: %v", result))
		return result == clause.True
	}
	if !leavesOnly {
		switch evaluate(clauses, a, stats) {
		case clause.True:
			sink.Enter(next, "partial assignment already satisfies the clause set")
			return true
		case clause.False:
			sink.Enter(next, "partial assignment already falsifies the clause set")
			return false
		}
	}
	v := clause.Var(next)
	mark := a.Mark()
	for _, val := range [2]bool{true, false} {
		l := v.SignedLit(!val)
		sink.Enter(next, fmt.Sprintf("try %d", l.Int()))
		a.Assign(l)
		if search(clauses, a, next+1, nbVars, leavesOnly, sink, stats) {
			return true
		}
		a.Undo(mark)
	}
	return false
}

// evaluate returns True if every clause is satisfied, False if any clause
// is falsified, and Unassigned otherwise — the three-valued partial
// evaluation of spec.md §4.2.
func evaluate(clauses []*clause.Clause, a *clause.Assignment, stats *trace.Stats) clause.Value {
	stats.Evaluations++
	allSat := true
	for _, c := range clauses {
		satisfied := false
		falsified := true
		for i := 0; i < c.Len(); i++ {
			switch a.LitValue(c.Get(i)) {
			case clause.True:
				satisfied = true
				falsified = false
			case clause.Unassigned:
				falsified = false
			}
		}
		if falsified {
			return clause.False
		}
		if !satisfied {
			allSat = false
		}
	}
	if allSat {
		return clause.True
	}
	return clause.Unassigned
}
