package clause

// UnitIndex tracks which literals are currently known unit (true) facts,
// used by merge.Merge to cut falsified literals and detect unit-subsumed
// resolvents (spec.md §4.1).
type UnitIndex struct {
	known []Value // indexed by Var; True/False means a unit fixed it, Unassigned means no unit yet
}

// NewUnitIndex returns an empty UnitIndex over nbVars variables.
func NewUnitIndex(nbVars int) UnitIndex {
	return UnitIndex{known: make([]Value, nbVars)}
}

// Add records l as a known unit literal. Returns false if l contradicts an
// already-known unit (the caller should treat that as UNSAT).
func (u UnitIndex) Add(l Lit) bool {
	want := FromBool(l.IsPositive())
	if cur := u.known[l.Var()]; cur != Unassigned {
		return cur == want
	}
	u.known[l.Var()] = want
	return true
}

// Status returns the Value a unit fact assigns to l, or Unassigned if no
// unit is known for l's variable.
func (u UnitIndex) Status(l Lit) Value {
	val := u.known[l.Var()]
	if val == Unassigned {
		return Unassigned
	}
	if l.IsPositive() {
		return val
	}
	return val.Not()
}

// CutsLiteral reports whether a known unit falsifies l.
func (u UnitIndex) CutsLiteral(l Lit) bool {
	return u.Status(l) == False
}

// Units returns every literal currently fixed by a known unit, as the
// positive or negative literal matching that unit's polarity.
func (u UnitIndex) Units() []Lit {
	var out []Lit
	for v, val := range u.known {
		if val == Unassigned {
			continue
		}
		out = append(out, Var(v).SignedLit(val == False))
	}
	return out
}

// SubsumesRemaining reports whether some literal in lits is made true by a
// known unit — i.e. whether the known units alone already satisfy the
// clause, which makes it (and any clause it resolves into) a tautology
// with respect to the current unit facts.
func (u UnitIndex) SubsumesRemaining(lits []Lit) bool {
	for _, l := range lits {
		if u.Status(l) == True {
			return true
		}
	}
	return false
}
