// Package dpll implements the three DPLL variants of spec.md §4.5-§4.7:
// a naive engine with unindexed fixpoint unit propagation, a classical
// engine with occurrence buckets and pure-literal elimination, and a
// watched-literal engine with two-watched-literal propagation and
// VSIDS-like activity. All three share the chronological-backtracking
// contract of spec.md §8 property 11: a frame that returns false leaves
// the assignment exactly as it found it.
package dpll

import "github.com/cnflab/satcore/clause"

// clauseKind classifies a clause against the current assignment, per
// spec.md §4.5's unit-propagation contract.
type clauseKind int

const (
	satisfiedKind clauseKind = iota
	conflictKind
	unitKind
	otherKind
)

type classification struct {
	kind clauseKind
	lit  clause.Lit // valid only when kind == unitKind
}

// classify scans every literal of c under a, returning satisfied as soon as
// a true literal is found, conflict if every literal is false, unit if
// exactly one literal is unassigned and the rest are false, and other
// otherwise.
func classify(c *clause.Clause, a *clause.Assignment) classification {
	nbUnassigned := 0
	var unassignedLit clause.Lit
	for i := 0; i < c.Len(); i++ {
		l := c.Get(i)
		switch a.LitValue(l) {
		case clause.True:
			return classification{kind: satisfiedKind}
		case clause.Unassigned:
			nbUnassigned++
			unassignedLit = l
		}
	}
	switch nbUnassigned {
	case 0:
		return classification{kind: conflictKind}
	case 1:
		return classification{kind: unitKind, lit: unassignedLit}
	default:
		return classification{kind: otherKind}
	}
}
