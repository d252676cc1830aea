package clause

import (
	"fmt"
	"sort"
	"strings"
)

// A Clause is an ordered sequence of literals, interpreted as their
// disjunction. Clauses returned by Merge or read from input are treated as
// immutable by the naive engines; the optimized engines rewrite them in
// place during preprocessing (see Shrink/Set).
type Clause struct {
	Lits []Lit
}

// New returns a clause over the given literals. The slice is kept, not
// copied; callers that mutate it afterwards own that decision.
func New(lits []Lit) *Clause {
	return &Clause{Lits: lits}
}

// Len returns the number of literals in c.
func (c *Clause) Len() int { return len(c.Lits) }

// Get returns the ith literal of c.
func (c *Clause) Get(i int) Lit { return c.Lits[i] }

// Set overwrites the ith literal of c.
func (c *Clause) Set(i int, l Lit) { c.Lits[i] = l }

// First returns the first literal of c.
func (c *Clause) First() Lit { return c.Lits[0] }

// Second returns the second literal of c. c must have at least 2 literals.
func (c *Clause) Second() Lit { return c.Lits[1] }

// IsUnit reports whether c has exactly one literal.
func (c *Clause) IsUnit() bool { return len(c.Lits) == 1 }

// IsEmpty reports whether c is the empty clause (⊥).
func (c *Clause) IsEmpty() bool { return len(c.Lits) == 0 }

// Swap exchanges the ith and jth literals of c.
func (c *Clause) Swap(i, j int) { c.Lits[i], c.Lits[j] = c.Lits[j], c.Lits[i] }

// Shrink truncates c to its first newLen literals.
func (c *Clause) Shrink(newLen int) { c.Lits = c.Lits[:newLen] }

// SortByLit sorts c's literals under the total order used by the
// optimized resolution and watched-literal engines.
func (c *Clause) SortByLit() {
	sort.Slice(c.Lits, func(i, j int) bool { return Less(c.Lits[i], c.Lits[j]) })
}

// Clone returns a deep copy of c.
func (c *Clause) Clone() *Clause {
	lits := make([]Lit, len(c.Lits))
	copy(lits, c.Lits)
	return &Clause{Lits: lits}
}

// CNF renders c as a DIMACS clause line.
func (c *Clause) CNF() string {
	var b strings.Builder
	for _, l := range c.Lits {
		fmt.Fprintf(&b, "%d ", l.Int())
	}
	b.WriteString("0")
	return b.String()
}

// String renders c using variable names when available, else numeric
// literals, matching the naming contract in spec.md §6.
func (c *Clause) String(names Names) string {
	parts := make([]string, len(c.Lits))
	for i, l := range c.Lits {
		parts[i] = names.Render(l)
	}
	if len(parts) == 0 {
		return "⊥"
	}
	return strings.Join(parts, " ∨ ")
}

// Names holds human-readable tokens for variables 1..V. Index 0 is
// reserved, per spec.md §6. A nil or too-short Names falls back to the
// numeric encoding of the literal.
type Names []string

// Render returns the human-readable form of l, or its numeric form if no
// name is available.
func (n Names) Render(l Lit) string {
	v := int(l.Var()) + 1
	neg := !l.IsPositive()
	if v < len(n) && n[v] != "" {
		if neg {
			return "¬" + n[v]
		}
		return n[v]
	}
	return fmt.Sprintf("%d", l.Int())
}

// Set is a finite collection of clauses, interpreted as their conjunction.
// Input ordering is not semantically significant but may influence search.
type Set struct {
	Clauses []*Clause
	// MaxVar is the declared number of variables, or 0 if the caller wants
	// it computed from the clauses on first use. Every engine in this
	// module recomputes the true maximum from the clause contents rather
	// than trusting this hint (spec.md §7's "clamp" policy), so an
	// undercounted hint can only waste a resize, never corrupt state.
	MaxVar int
	Names  Names
}

// ComputeMaxVar returns the largest variable index (1-based) occurring in
// s, or s.MaxVar if that is already at least as large.
func (s *Set) ComputeMaxVar() int {
	max := s.MaxVar
	for _, c := range s.Clauses {
		for _, l := range c.Lits {
			if v := int(l.Var()) + 1; v > max {
				max = v
			}
		}
	}
	return max
}
