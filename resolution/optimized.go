package resolution

import (
	"fmt"

	"github.com/cnflab/satcore/clause"
	"github.com/cnflab/satcore/engine"
	"github.com/cnflab/satcore/merge"
	"github.com/cnflab/satcore/trace"
)

const maxBucket = 99

// Optimized is the given-clause engine of spec.md §4.4: a preprocessing
// pass, a unit index, first-literal ordered resolution, length-bucketed
// selection and partial backward subsumption via a processed-clause index
// keyed by first literal. Grounded on solver/problem.go's simplify loop
// (unit bookkeeping, swap-with-last compaction) and solver/watcher.go's
// bucket-maintenance idiom, adapted from watched literals to the
// processed-clause index this spec describes.
type Optimized struct{}

type processedEntry struct {
	c     *clause.Clause
	alive bool
}

type state struct {
	nbVars  int
	units   clause.UnitIndex
	usable  [maxBucket + 1][]*clause.Clause
	proc    []*processedEntry
	byFirst [][]*processedEntry // index: literal -> processed entries whose first lit equals it
	horn    bool
	stats   trace.Stats
	sink    *trace.Recorder
}

func bucketIndex(length int) int {
	if length > maxBucket {
		return maxBucket
	}
	return length
}

// Solve runs the optimized resolution engine to completion.
func (Optimized) Solve(problem clause.Set, sink *trace.Recorder) engine.Output {
	nbVars := problem.ComputeMaxVar()
	st := &state{
		nbVars:  nbVars,
		units:   clause.NewUnitIndex(nbVars),
		byFirst: make([][]*processedEntry, nbVars*2),
		sink:    sink,
	}

	if verdict, ok := st.preprocess(problem.Clauses); !ok {
		st.sink.Stats(st.stats)
		return engine.Output{Verdict: verdict, Trace: st.sink.Render()}
	}

	return st.run()
}

// preprocess implements spec.md §4.4's three-pass preprocessing: collect
// units, then sort/shrink/bucket survivors, then detect the horn flag.
func (st *state) preprocess(clauses []*clause.Clause) (engine.Verdict, bool) {
	var nonUnits []*clause.Clause
	for _, c := range clauses {
		if c.IsEmpty() {
			return engine.Unsat{}, false
		}
		if c.IsUnit() {
			if !st.units.Add(c.First()) {
				return engine.Unsat{}, false
			}
			continue
		}
		nonUnits = append(nonUnits, c)
	}

	st.horn = true
	for _, c := range nonUnits {
		if tautology(c) {
			continue
		}
		c.SortByLit()
		res := st.preprocessClause(c)
		switch res.Tag {
		case merge.Unsat:
			return engine.Unsat{}, false
		case merge.Subsumed, merge.Tautology:
			continue
		default:
			survivor := clause.New(res.Lits)
			if survivor.IsUnit() {
				if !st.units.Add(survivor.First()) {
					return engine.Unsat{}, false
				}
				continue
			}
			if countPositive(survivor) > 1 {
				st.horn = false
			}
			st.usable[bucketIndex(survivor.Len())] = append(st.usable[bucketIndex(survivor.Len())], survivor)
		}
	}
	return nil, true
}

func countPositive(c *clause.Clause) int {
	n := 0
	for i := 0; i < c.Len(); i++ {
		if c.Get(i).IsPositive() {
			n++
		}
	}
	return n
}

// tautology reports whether c contains some variable in both polarities.
func tautology(c *clause.Clause) bool {
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

// preprocessClause re-implements preprocess_clause from spec.md §4.4: drop
// duplicates and literals cut off by known units, declare Subsumed if a
// unit already satisfies the clause (unless the clause itself is a unit,
// kept so it can still feed the unit-cut path elsewhere), declare Unsat if
// every literal is cut, then check the processed index for an ordered
// subset.
func (st *state) preprocessClause(c *clause.Clause) merge.Result {
	out := make([]clause.Lit, 0, c.Len())
	var lastVar clause.Var = -1
	var lastLit clause.Lit = -1
	satisfiedByUnit := false
	for i := 0; i < c.Len(); i++ {
		l := c.Get(i)
		if l == lastLit {
			continue // duplicate, clause is sorted
		}
		if l.Var() == lastVar {
			// both polarities present: tautology
			return merge.Result{Tag: merge.Tautology}
		}
		switch st.units.Status(l) {
		case clause.True:
			satisfiedByUnit = true
		case clause.False:
			// dropped: falsified by a known unit
		default:
			out = append(out, l)
		}
		lastVar, lastLit = l.Var(), l
	}
	if satisfiedByUnit && c.Len() > 1 {
		return merge.Result{Tag: merge.Subsumed}
	}
	if len(out) == 0 {
		return merge.Result{Tag: merge.Unsat}
	}
	if st.subsumedByProcessed(out) {
		return merge.Result{Tag: merge.Subsumed}
	}
	return merge.Result{Tag: merge.ClauseTag, Lits: out}
}

func (st *state) subsumedByProcessed(lits []clause.Lit) bool {
	candidate := clause.New(lits)
	for _, l := range lits {
		for _, e := range st.byFirst[l] {
			if !e.alive || e.c == candidate {
				continue
			}
			if merge.SubsumesSorted(e.c, candidate) {
				return true
			}
		}
	}
	return false
}

func (st *state) addProcessed(c *clause.Clause) *processedEntry {
	e := &processedEntry{c: c, alive: true}
	st.proc = append(st.proc, e)
	first := c.First()
	st.byFirst[first] = append(st.byFirst[first], e)
	return e
}

// run executes the given-clause main loop: repeatedly pick the front of
// the shortest nonempty usable bucket, re-preprocess it, resolve it with
// every processed clause whose first literal is its negation (horn clauses
// skip resolution steps between two non-unit parents), and feed resolvents
// back into usable.
func (st *state) run() engine.Output {
	for {
		idx, ok := st.pickBucket()
		if !ok {
			st.sink.Stats(st.stats)
			return engine.Output{Verdict: engine.Partial{Units: st.units.Units()}, Trace: st.sink.Render()}
		}
		given := st.usable[idx][0]
		st.usable[idx] = st.usable[idx][1:]

		res := st.preprocessClause(sortedLits(given))
		switch res.Tag {
		case merge.Unsat:
			st.sink.Stats(st.stats)
			return engine.Output{Verdict: engine.Unsat{}, Trace: st.sink.Render()}
		case merge.Subsumed, merge.Tautology:
			continue
		}
		given = clause.New(res.Lits)
		if given.IsUnit() {
			if !st.units.Add(given.First()) {
				st.sink.Stats(st.stats)
				return engine.Output{Verdict: engine.Unsat{}, Trace: st.sink.Render()}
			}
			continue
		}
		st.stats.Selected++
		st.sink.Enter(0, fmt.Sprintf("select %s", given.CNF()))

		pivot := given.First()
		candidates := st.byFirst[pivot.Negation()]
		for _, cand := range candidates {
			if !cand.alive {
				continue
			}
			if st.horn && given.Len() > 1 && cand.c.Len() > 1 {
				continue // horn restriction: unit resolution is refutation-complete
			}
			res := merge.Merge(given, cand.c, 0, 0, st.units)
			switch res.Tag {
			case merge.Unsat:
				st.sink.Stats(st.stats)
				return engine.Output{Verdict: engine.Unsat{}, Trace: st.sink.Render()}
			case merge.Tautology:
				continue
			default:
				st.stats.Generated++
				resolvent := clause.New(res.Lits)
				if resolvent.IsUnit() {
					if !st.units.Add(resolvent.First()) {
						st.sink.Stats(st.stats)
						return engine.Output{Verdict: engine.Unsat{}, Trace: st.sink.Render()}
					}
					continue
				}
				resolvent.SortByLit()
				if merge.SubsumesSorted(resolvent, cand.c) {
					cand.alive = false // partial backward subsumption: resolvent generalizes cand
				}
				st.stats.Kept++
				st.usable[bucketIndex(resolvent.Len())] = append(st.usable[bucketIndex(resolvent.Len())], resolvent)
			}
		}
		st.addProcessed(given)
	}
}

func sortedLits(c *clause.Clause) *clause.Clause {
	c.SortByLit()
	return c
}

func (st *state) pickBucket() (int, bool) {
	for k := 1; k <= maxBucket; k++ {
		if len(st.usable[k]) > 0 {
			return k, true
		}
	}
	return 0, false
}
