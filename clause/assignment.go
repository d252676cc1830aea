package clause

// Assignment is a dense mapping from Var to Value (varvals in spec.md §3).
// Reading a literal L under an Assignment yields True iff the stored value
// for |L| equals the polarity of L, False iff it is the opposite polarity,
// and Unassigned iff the variable has no binding yet.
type Assignment struct {
	vals  []Value
	Trail []Var // variables assigned, in assignment order
}

// NewAssignment returns an Assignment over nbVars variables, all Unassigned.
func NewAssignment(nbVars int) Assignment {
	return Assignment{vals: make([]Value, nbVars), Trail: make([]Var, 0, nbVars)}
}

// Len returns the number of variables tracked by a.
func (a *Assignment) Len() int { return len(a.vals) }

// VarValue returns the current value bound to v.
func (a *Assignment) VarValue(v Var) Value { return a.vals[v] }

// LitValue returns True, False or Unassigned for l under the current
// bindings, per spec.md §3's reading rule.
func (a *Assignment) LitValue(l Lit) Value {
	val := a.vals[l.Var()]
	if val == Unassigned {
		return Unassigned
	}
	if l.IsPositive() {
		return val
	}
	return val.Not()
}

// Assign binds l's variable so that l becomes True, and records the
// assignment on the trail for later undo.
func (a *Assignment) Assign(l Lit) {
	a.vals[l.Var()] = FromBool(l.IsPositive())
	a.Trail = append(a.Trail, l.Var())
}

// Unassign clears v's binding without touching the trail; callers undoing
// a frame should prefer Undo, which also truncates the trail.
func (a *Assignment) Unassign(v Var) {
	a.vals[v] = Unassigned
}

// Mark returns the current trail length, to be passed to Undo later.
func (a *Assignment) Mark() int { return len(a.Trail) }

// Undo restores every variable assigned since mark to Unassigned and
// truncates the trail back to mark. This is the chronological backtracking
// primitive every recursive engine in this module uses to restore state
// when a frame fails (spec.md §8 property 11).
func (a *Assignment) Undo(mark int) {
	for i := len(a.Trail) - 1; i >= mark; i-- {
		a.vals[a.Trail[i]] = Unassigned
	}
	a.Trail = a.Trail[:mark]
}

// Total reports whether every variable has a binding.
func (a *Assignment) Total() bool {
	for _, v := range a.vals {
		if v == Unassigned {
			return false
		}
	}
	return true
}

// FirstUnassigned returns the first unbound variable in 0..n-1, or -1 if
// all variables are bound.
func (a *Assignment) FirstUnassigned() Var {
	for v, val := range a.vals {
		if val == Unassigned {
			return Var(v)
		}
	}
	return -1
}

// Snapshot returns a copy of the current bindings, suitable for building a
// model to hand back to the caller once a frame succeeds.
func (a *Assignment) Snapshot() []Value {
	out := make([]Value, len(a.vals))
	copy(out, a.vals)
	return out
}
