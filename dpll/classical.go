package dpll

import (
	"fmt"

	"github.com/cnflab/satcore/clause"
	"github.com/cnflab/satcore/engine"
	"github.com/cnflab/satcore/trace"
)

// Classical is the DPLL engine of spec.md §4.6: full occurrence buckets
// (every literal occurrence indexed, not just watches), pure-literal
// elimination checked on every split, and weighted variable selection with
// a length-dependent bonus. Grounded on EricR-saturday/solver/var_order.go
// (weighted variable selection) and
// EricR-saturday/solver/clause_propagation.go (occurrence buckets), both
// rewritten for this spec's chronological-backtracking, non-CDCL contract.
type Classical struct{}

type occIndex [][]*clause.Clause

func buildOccIndex(clauses []*clause.Clause, nbVars int) occIndex {
	idx := make(occIndex, nbVars*2)
	for _, c := range clauses {
		for i := 0; i < c.Len(); i++ {
			l := c.Get(i)
			idx[l] = append(idx[l], c)
		}
	}
	return idx
}

// lengthBonus is the classical engine's own length-dependent scoring
// bonus: shorter not-yet-satisfied clauses contribute more to a variable's
// weight, per spec.md §4.6.
func lengthBonus(length int) float64 {
	if length <= 0 {
		return 0
	}
	return 1.0 / float64(length)
}

type classicalState struct {
	clauses []*clause.Clause
	occ     occIndex
	nbVars  int
	sink    *trace.Recorder
	stats   *trace.Stats
}

// Solve runs the classical DPLL engine to completion.
func (Classical) Solve(problem clause.Set, sink *trace.Recorder) engine.Output {
	nbVars := problem.ComputeMaxVar()
	st := &classicalState{
		clauses: problem.Clauses,
		occ:     buildOccIndex(problem.Clauses, nbVars),
		nbVars:  nbVars,
		sink:    sink,
		stats:   &trace.Stats{},
	}
	a := clause.NewAssignment(nbVars)
	ok := st.search(&a, 0)
	sink.Stats(*st.stats)
	if !ok {
		return engine.Output{Verdict: engine.Unsat{}, Trace: sink.Render()}
	}
	return engine.Output{Verdict: engine.Model{Values: a.Snapshot()}, Trace: sink.Render()}
}

// propagate applies startLit and then walks only the occurrence bucket of
// each newly derived literal's negation, assigning derived units as soon
// as they are found so later bucket scans in the same call already see
// them (spec.md §4.6). It restores its own work on conflict.
func (st *classicalState) propagate(a *clause.Assignment, startLit clause.Lit) (conflict bool) {
	mark := a.Mark()
	queue := []clause.Lit{startLit}
	a.Assign(startLit)
	st.stats.Propagations++
	for qi := 0; qi < len(queue); qi++ {
		lit := queue[qi]
		for _, c := range st.occ[lit.Negation()] {
			cl := classify(c, a)
			switch cl.kind {
			case conflictKind:
				a.Undo(mark)
				return true
			case unitKind:
				if a.LitValue(cl.lit) == clause.Unassigned {
					a.Assign(cl.lit)
					st.stats.UnitsDerived++
					queue = append(queue, cl.lit)
				}
			}
		}
	}
	return false
}

// scanUnsatisfied computes, over every not-yet-satisfied clause, each
// unassigned variable's positive/negative occurrence counts and its
// weighted score.
func (st *classicalState) scanUnsatisfied(a *clause.Assignment) (posCount, negCount []int, scores []float64, allSat bool) {
	posCount = make([]int, st.nbVars)
	negCount = make([]int, st.nbVars)
	scores = make([]float64, st.nbVars)
	allSat = true
	for _, c := range st.clauses {
		if classify(c, a).kind == satisfiedKind {
			continue
		}
		allSat = false
		bonus := lengthBonus(c.Len())
		for i := 0; i < c.Len(); i++ {
			l := c.Get(i)
			if a.LitValue(l) != clause.Unassigned {
				continue
			}
			v := int(l.Var())
			scores[v] += bonus
			if l.IsPositive() {
				posCount[v]++
			} else {
				negCount[v]++
			}
		}
	}
	return
}

func findPureLiteral(posCount, negCount []int, a *clause.Assignment) (clause.Lit, bool) {
	for v := 0; v < len(posCount); v++ {
		if a.VarValue(clause.Var(v)) != clause.Unassigned {
			continue
		}
		if posCount[v] > 0 && negCount[v] == 0 {
			return clause.Var(v).SignedLit(false), true
		}
		if negCount[v] > 0 && posCount[v] == 0 {
			return clause.Var(v).SignedLit(true), true
		}
	}
	return 0, false
}

// chooseWeighted picks the unassigned variable with the maximum score,
// breaking ties by the smallest variable index (the iteration order
// already guarantees that: a later equal score never replaces the first).
func chooseWeighted(scores []float64, a *clause.Assignment) (clause.Var, bool) {
	best := -1
	bestScore := -1.0
	for v, s := range scores {
		if a.VarValue(clause.Var(v)) != clause.Unassigned {
			continue
		}
		if s > bestScore {
			best, bestScore = v, s
		}
	}
	if best == -1 {
		return 0, false
	}
	return clause.Var(best), true
}

func (st *classicalState) search(a *clause.Assignment, depth int) bool {
	if depth > st.stats.MaxDepth {
		st.stats.MaxDepth = depth
	}
	mark := a.Mark()
	posCount, negCount, scores, allSat := st.scanUnsatisfied(a)
	if allSat {
		st.sink.Enter(depth, "all clauses satisfied")
		return true
	}
	if lit, ok := findPureLiteral(posCount, negCount, a); ok {
		st.stats.PureDerived++
		st.sink.Enter(depth, fmt.Sprintf("pure literal %d", lit.Int()))
		if st.propagate(a, lit) {
			return false
		}
		if st.search(a, depth+1) {
			return true
		}
		a.Undo(mark)
		return false
	}
	v, ok := chooseWeighted(scores, a)
	if !ok {
		return true
	}
	st.sink.Enter(depth, fmt.Sprintf("split on var %d (weighted)", v+1))
	for _, val := range [2]bool{true, false} {
		l := v.SignedLit(!val)
		if st.propagate(a, l) {
			continue
		}
		if st.search(a, depth+1) {
			return true
		}
		a.Undo(mark)
	}
	return false
}
