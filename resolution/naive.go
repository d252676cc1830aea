// Package resolution implements the given-clause resolution engines of
// spec.md §4.3-§4.4: a naive engine with forward subsumption only, and an
// optimized engine with preprocessing, ordered resolution, length-bucketed
// selection and partial backward subsumption.
package resolution

import (
	"fmt"

	"github.com/cnflab/satcore/clause"
	"github.com/cnflab/satcore/engine"
	"github.com/cnflab/satcore/merge"
	"github.com/cnflab/satcore/trace"
)

// Naive is the given-clause loop of spec.md §4.3: usable is consumed
// FIFO, every selected clause is checked for forward subsumption against
// processed, then resolved against every processed clause (every literal
// tried as pivot against every matching opposite literal), and finally
// appended to processed itself.
type Naive struct{}

// Solve runs naive resolution to completion.
func (Naive) Solve(problem clause.Set, sink *trace.Recorder) engine.Output {
	nbVars := problem.ComputeMaxVar()
	units := clause.NewUnitIndex(nbVars)

	usable := make([]*clause.Clause, 0, len(problem.Clauses))
	for _, c := range problem.Clauses {
		if c.IsEmpty() {
			sink.Stats(trace.Stats{})
			return engine.Output{Verdict: engine.Unsat{}, Trace: sink.Render()}
		}
		if c.IsUnit() {
			if !units.Add(c.First()) {
				sink.Stats(trace.Stats{})
				return engine.Output{Verdict: engine.Unsat{}, Trace: sink.Render()}
			}
		}
		usable = append(usable, c)
	}

	var processed []*clause.Clause
	var stats trace.Stats

	for len(usable) > 0 {
		given := usable[0]
		usable = usable[1:]

		subsumed := false
		for _, p := range processed {
			if merge.Subsumes(p, given) {
				subsumed = true
				break
			}
		}
		if subsumed {
			continue
		}
		stats.Selected++
		sink.Enter(0, fmt.Sprintf("select %s", given.CNF()))

		for _, p := range processed {
			for i1 := 0; i1 < given.Len(); i1++ {
				for i2 := 0; i2 < p.Len(); i2++ {
					if given.Get(i1) != p.Get(i2).Negation() {
						continue
					}
					res := merge.Merge(given, p, i1, i2, units)
					switch res.Tag {
					case merge.Unsat:
						sink.Enter(0, "derived the empty clause")
						sink.Stats(stats)
						return engine.Output{Verdict: engine.Unsat{}, Trace: sink.Render()}
					case merge.Tautology, merge.Subsumed:
						continue
					default:
						stats.Generated++
						resolvent := clause.New(res.Lits)
						if resolvent.IsUnit() {
							if !units.Add(resolvent.First()) {
								sink.Stats(stats)
								return engine.Output{Verdict: engine.Unsat{}, Trace: sink.Render()}
							}
						}
						stats.Kept++
						usable = append(usable, resolvent)
					}
				}
			}
		}
		processed = append(processed, given)
	}

	sink.Stats(stats)
	// spec.md §9 Open Question: resolution does not construct a witness on
	// the fly; the caller must not fabricate one.
	return engine.Output{Verdict: engine.True{}, Trace: sink.Render()}
}
