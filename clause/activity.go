package clause

// Activity is a nonnegative real-valued weight per variable (varactivities
// in spec.md §3), used by the watched-literal engine's VSIDS-like decision
// heuristic. It is seeded at preprocessing time from occurrence counts with
// clause-length bonuses, and bumped on every conflict.
type Activity []float64

// NewActivity returns an Activity table of zeroes for nbVars variables.
func NewActivity(nbVars int) Activity {
	return make(Activity, nbVars)
}

// lengthBonus returns the preprocessing-time bonus assigned to a clause of
// the given length: shorter clauses contribute a larger bonus, per
// spec.md §3's activity-table invariant.
func lengthBonus(length int) float64 {
	if length <= 0 {
		return 0
	}
	return 1.0 / float64(length)
}

// SeedFromClause adds the length-sensitive occurrence bonus for every
// literal of c to the activity table, called once per clause during
// preprocessing.
func (a Activity) SeedFromClause(lits []Lit) {
	bonus := lengthBonus(len(lits))
	for _, l := range lits {
		a[l.Var()] += bonus
	}
}

// Bump increases v's activity by delta, rescaling the whole table if the
// value would overflow — the only normalization point this implementation
// performs (spec.md §9 Open Question: activity normalization), matching the
// teacher's varBumpActivity overflow-rescale.
func (a Activity) Bump(v Var, delta float64) {
	a[v] += delta
	if a[v] > 1e100 {
		for i := range a {
			a[i] *= 1e-100
		}
	}
}
