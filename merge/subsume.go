// Package merge implements the subsumption and resolvent-construction
// primitives shared by both resolution engines (spec.md §4.1), grounded on
// the commented-out Subsumes/SelfSubsumes/Generate/Simplify helpers in the
// teacher's solver/preprocess.go.
package merge

import "github.com/cnflab/satcore/clause"

// Subsumes reports whether c1 subsumes c2, i.e. every literal of c1 occurs
// in c2. No precondition on ordering; O(|c1|·|c2|).
func Subsumes(c1, c2 *clause.Clause) bool {
	if c1.Len() > c2.Len() {
		return false
	}
	for i := 0; i < c1.Len(); i++ {
		l := c1.Get(i)
		found := false
		for j := 0; j < c2.Len(); j++ {
			if c2.Get(j) == l {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SubsumesSorted reports the same relation as Subsumes, but assumes both
// clauses are sorted under clause.Less and exploits that for a linear-time
// scan with an advancing pointer into c2.
func SubsumesSorted(c1, c2 *clause.Clause) bool {
	if c1.Len() > c2.Len() {
		return false
	}
	j := 0
	for i := 0; i < c1.Len(); i++ {
		l := c1.Get(i)
		for j < c2.Len() && c2.Get(j) != l {
			if !clause.Less(c2.Get(j), l) {
				// c2[j] > l and clauses are sorted: l can never appear now.
				return false
			}
			j++
		}
		if j == c2.Len() {
			return false
		}
		j++
	}
	return true
}
