package merge

import "github.com/cnflab/satcore/clause"

// Tag is the explicit sum type spec.md §9 asks for in place of the
// original's overloaded false/true/array returns.
type Tag int

const (
	// ClauseTag means Result.Lits holds a genuine resolvent.
	ClauseTag Tag = iota
	// Tautology means the resolvent contains some variable in both
	// polarities, or is already true under known units.
	Tautology
	// Subsumed means the resolvent is subsumed by an already-processed
	// clause and need not be kept.
	Subsumed
	// Unsat means the resolvent is the empty clause.
	Unsat
)

// Result is the outcome of Merge or of preprocessing a clause.
type Result struct {
	Tag  Tag
	Lits []Lit
}

// Lit is a re-export convenience so callers of this package rarely need to
// import clause just to spell out the type in a Result literal.
type Lit = clause.Lit

// Merge computes the resolvent of c1 and c2 over the complementary pair
// c1[i1] == -c2[i2], following spec.md §4.1 exactly:
//  1. union of (c1 minus position i1) and (c2 minus position i2);
//  2. tautology if some variable appears with both polarities;
//  3. tautology if a known unit already satisfies the remainder;
//  4. drop literals a known unit falsifies;
//  5. deduplicate;
//  6. empty union means Unsat.
// The inputs are never mutated; the returned Lits, if any, are a fresh
// slice.
func Merge(c1, c2 *clause.Clause, i1, i2 int, units clause.UnitIndex) Result {
	if c1.Get(i1) != c2.Get(i2).Negation() {
		panic("merge.Merge: pivot literals are not complementary")
	}
	buf := make([]clause.Lit, 0, c1.Len()+c2.Len()-2)
	buf = appendExcept(buf, c1, i1)
	buf = appendExcept(buf, c2, i2)

	seen := make(map[clause.Var]clause.Value, len(buf))
	out := make([]clause.Lit, 0, len(buf))
	for _, l := range buf {
		want := clause.FromBool(l.IsPositive())
		if prev, ok := seen[l.Var()]; ok {
			if prev != want {
				return Result{Tag: Tautology}
			}
			continue // duplicate
		}
		seen[l.Var()] = want
		out = append(out, l)
	}

	if units.SubsumesRemaining(out) {
		return Result{Tag: Tautology}
	}

	kept := out[:0]
	for _, l := range out {
		if units.CutsLiteral(l) {
			continue
		}
		kept = append(kept, l)
	}

	if len(kept) == 0 {
		return Result{Tag: Unsat}
	}
	return Result{Tag: ClauseTag, Lits: kept}
}

func appendExcept(dst []clause.Lit, c *clause.Clause, skip int) []clause.Lit {
	for i := 0; i < c.Len(); i++ {
		if i == skip {
			continue
		}
		dst = append(dst, c.Get(i))
	}
	return dst
}
