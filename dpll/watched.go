package dpll

import (
	"fmt"
	"math"
	"sort"

	"github.com/cnflab/satcore/clause"
	"github.com/cnflab/satcore/engine"
	"github.com/cnflab/satcore/trace"
)

// Watched is the two-watched-literal DPLL engine of spec.md §4.7:
// preprocessing (unit/tautology/duplicate removal, pure-literal deletion,
// activity seeding), a pos/neg clause.Bucket watch index, activity-ordered
// decisions via clause.Queue, and a VSIDS-like conflict bump. Grounded on
// solver/watcher.go (watcherList, simplifyClause, bucket swap-remove) and
// solver/queue.go (the minisat-derived binary heap), both stripped of
// clause learning and non-chronological backtracking.
type Watched struct{}

type watchedState struct {
	nbVars   int
	buckets  clause.Buckets
	activity clause.Activity
	queue    clause.Queue
	sink     *trace.Recorder
	stats    *trace.Stats
}

// Solve runs the watched-literal engine to completion.
func (Watched) Solve(problem clause.Set, sink *trace.Recorder) engine.Output {
	nbVars := problem.ComputeMaxVar()
	a := clause.NewAssignment(nbVars)
	activity := clause.NewActivity(nbVars)
	stats := &trace.Stats{}

	watches, verdict, ok := preprocessWatched(problem.Clauses, &a, activity, stats)
	if !ok {
		sink.Stats(*stats)
		return engine.Output{Verdict: verdict, Trace: sink.Render()}
	}

	buckets := clause.NewBuckets(nbVars)
	for _, wc := range watches {
		buckets[wc.WatchedLit0()].Add(wc)
		buckets[wc.WatchedLit1()].Add(wc)
	}
	st := &watchedState{
		nbVars:   nbVars,
		buckets:  buckets,
		activity: activity,
		queue:    clause.NewQueue(activity),
		sink:     sink,
		stats:    stats,
	}

	ok2 := st.search(&a, 0)
	sink.Stats(*st.stats)
	if !ok2 {
		return engine.Output{Verdict: engine.Unsat{}, Trace: sink.Render()}
	}
	return engine.Output{Verdict: engine.Model{Values: a.Snapshot()}, Trace: sink.Render()}
}

func tautologyLits(c *clause.Clause) bool {
	pos := make(map[clause.Var]bool, c.Len())
	neg := make(map[clause.Var]bool, c.Len())
	for i := 0; i < c.Len(); i++ {
		l := c.Get(i)
		if l.IsPositive() {
			pos[l.Var()] = true
		} else {
			neg[l.Var()] = true
		}
	}
	for v := range pos {
		if neg[v] {
			return true
		}
	}
	return false
}

// preprocessWatched implements spec.md §4.7's preprocessing pass: collect
// units and apply them directly to a, cut falsified and duplicate literals
// and drop tautologies/satisfied clauses to a fixpoint, delete pure literals (also
// to a fixpoint, since removing a satisfied clause can expose a new pure
// variable), then sort survivors by length and seed activity before
// returning them ready to be watched on their first two literals.
func preprocessWatched(clauses []*clause.Clause, a *clause.Assignment, activity clause.Activity, stats *trace.Stats) ([]*clause.WatchedClause, engine.Verdict, bool) {
	units := clause.NewUnitIndex(a.Len())
	pending := make([]*clause.Clause, 0, len(clauses))
	for _, c := range clauses {
		if c.IsEmpty() {
			return nil, engine.Unsat{}, false
		}
		if tautologyLits(c) {
			continue
		}
		if c.IsUnit() {
			if !units.Add(c.First()) {
				return nil, engine.Unsat{}, false
			}
			a.Assign(c.First())
			continue
		}
		pending = append(pending, c)
	}

	for changed := true; changed; {
		changed = false
		var next []*clause.Clause
		for _, c := range pending {
			out := make([]clause.Lit, 0, c.Len())
			satisfied := false
			for i := 0; i < c.Len(); i++ {
				l := c.Get(i)
				switch units.Status(l) {
				case clause.True:
					satisfied = true
				case clause.False:
					// dropped: falsified by a known unit
				default:
					dup := false
					for _, o := range out {
						if o == l {
							dup = true
							break
						}
					}
					if !dup {
						out = append(out, l)
					}
				}
			}
			if satisfied {
				changed = true
				continue
			}
			if len(out) == 0 {
				return nil, engine.Unsat{}, false
			}
			if len(out) == 1 {
				if !units.Add(out[0]) {
					return nil, engine.Unsat{}, false
				}
				a.Assign(out[0])
				changed = true
				continue
			}
			if len(out) != c.Len() {
				changed = true
			}
			next = append(next, clause.New(out))
		}
		pending = next
	}

	for {
		posSeen := make([]bool, a.Len())
		negSeen := make([]bool, a.Len())
		for _, c := range pending {
			for i := 0; i < c.Len(); i++ {
				l := c.Get(i)
				if l.IsPositive() {
					posSeen[l.Var()] = true
				} else {
					negSeen[l.Var()] = true
				}
			}
		}
		removedAny := false
		for v := 0; v < a.Len(); v++ {
			if a.VarValue(clause.Var(v)) != clause.Unassigned {
				continue
			}
			if posSeen[v] && !negSeen[v] {
				a.Assign(clause.Var(v).SignedLit(false))
				stats.PureDerived++
				removedAny = true
			} else if negSeen[v] && !posSeen[v] {
				a.Assign(clause.Var(v).SignedLit(true))
				stats.PureDerived++
				removedAny = true
			}
		}
		if !removedAny {
			break
		}
		var next []*clause.Clause
		for _, c := range pending {
			satisfied := false
			for i := 0; i < c.Len(); i++ {
				if a.LitValue(c.Get(i)) == clause.True {
					satisfied = true
					break
				}
			}
			if !satisfied {
				next = append(next, c)
			}
		}
		pending = next
	}

	sort.Slice(pending, func(i, j int) bool { return pending[i].Len() < pending[j].Len() })

	watches := make([]*clause.WatchedClause, 0, len(pending))
	for _, c := range pending {
		activity.SeedFromClause(c.Lits)
		watches = append(watches, clause.NewWatched(c.Lits))
	}
	return watches, nil, true
}

// propagate assigns startLit and walks the watch scheme outward: whenever
// an assignment falsifies a clause's watched literal, it either retargets
// the watch to a non-false literal, leaves it alone (the other watch is
// already true), derives a new unit (the other watch, assigned immediately
// and enqueued), or reports a conflict. propCount is the number of units
// derived in this wave, used to size the activity bump on conflict.
func (st *watchedState) propagate(a *clause.Assignment, startLit clause.Lit) (conflict bool, propCount int, conflictClause *clause.WatchedClause) {
	a.Assign(startLit)
	queue := []clause.Lit{startLit}
	for qi := 0; qi < len(queue); qi++ {
		falseLit := queue[qi].Negation()
		watchers := append([]*clause.WatchedClause(nil), st.buckets[falseLit].Clauses()...)
		for _, wc := range watchers {
			if wc.WatchedLit0() != falseLit && wc.WatchedLit1() != falseLit {
				continue // already retargeted by an earlier step in this wave
			}
			myIdx := 0
			if wc.WatchedLit1() == falseLit {
				myIdx = 1
			}
			otherIdx := wc.Watch1
			if myIdx == 1 {
				otherIdx = wc.Watch0
			}
			otherLit := wc.Lits[otherIdx]
			if a.LitValue(otherLit) == clause.True {
				continue
			}
			newIdx := -1
			for i := 0; i < wc.Len(); i++ {
				if i == wc.Watch0 || i == wc.Watch1 {
					continue
				}
				if a.LitValue(wc.Lits[i]) != clause.False {
					newIdx = i
					break
				}
			}
			if newIdx >= 0 {
				st.buckets[falseLit].Remove(wc)
				if myIdx == 0 {
					wc.Watch0 = newIdx
				} else {
					wc.Watch1 = newIdx
				}
				st.buckets[wc.Lits[newIdx]].Add(wc)
				continue
			}
			switch a.LitValue(otherLit) {
			case clause.False:
				return true, propCount, wc
			default:
				a.Assign(otherLit)
				propCount++
				st.stats.UnitsDerived++
				st.stats.Propagations++
				queue = append(queue, otherLit)
			}
		}
	}
	return false, propCount, nil
}

// pickVar removes and returns the highest-activity unassigned variable.
// Popped variables bound to an assignment are simply discarded; undoTo
// reinserts them once they become unassigned again.
func (st *watchedState) pickVar(a *clause.Assignment) (clause.Var, bool) {
	for !st.queue.Empty() {
		v := st.queue.RemoveMax()
		if a.VarValue(clause.Var(v)) == clause.Unassigned {
			return clause.Var(v), true
		}
	}
	return 0, false
}

func (st *watchedState) undoTo(a *clause.Assignment, mark int) {
	undone := append([]clause.Var(nil), a.Trail[mark:]...)
	a.Undo(mark)
	for _, v := range undone {
		if !st.queue.Contains(int(v)) {
			st.queue.Insert(int(v))
		}
	}
}

func (st *watchedState) search(a *clause.Assignment, depth int) bool {
	if depth > st.stats.MaxDepth {
		st.stats.MaxDepth = depth
	}
	v, ok := st.pickVar(a)
	if !ok {
		st.sink.Enter(depth, "all variables assigned")
		return true
	}
	mark := a.Mark()
	st.sink.Enter(depth, fmt.Sprintf("split on var %d (activity)", v+1))
	for _, val := range [2]bool{true, false} {
		l := v.SignedLit(!val)
		conflict, propCount, conflictClause := st.propagate(a, l)
		if conflict {
			// spec.md §4.7's exact conflict bump: 2*propCount^1.5, counting
			// the decision literal itself so a zero-propagation conflict
			// still bumps, applied to every variable in the conflicting clause.
			delta := 2 * math.Pow(float64(propCount+1), 1.5)
			for i := 0; i < conflictClause.Len(); i++ {
				st.activity.Bump(conflictClause.Lits[i].Var(), delta)
			}
			st.undoTo(a, mark)
			continue
		}
		if st.search(a, depth+1) {
			return true
		}
		st.undoTo(a, mark)
	}
	return false
}
