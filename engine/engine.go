// Package engine defines the shared input/output contract every decision
// procedure in satcore implements (spec.md §6): a clause set plus options
// in, a verdict plus trace out.
package engine

import (
	"github.com/cnflab/satcore/clause"
	"github.com/cnflab/satcore/trace"
)

// Verdict is the outcome of running an engine. A nil Verdict is never
// returned; Unsat{} is the falsy marker spec.md §6 describes, and the
// other three constructors cover the three SAT-return shapes the CLI-facing
// collaborator must accept.
type Verdict interface {
	Sat() bool
	isVerdict()
}

// Unsat means no assignment satisfies the clause set.
type Unsat struct{}

// Sat implements Verdict.
func (Unsat) Sat() bool  { return false }
func (Unsat) isVerdict() {}

// Model is a total satisfying assignment, one Value per variable.
type Model struct {
	Values []clause.Value
}

// Sat implements Verdict.
func (Model) Sat() bool  { return true }
func (Model) isVerdict() {}

// Partial is a partial assignment over derived units only (what the
// resolution engines can reconstruct without a full search), per spec.md §8
// property 5: every literal here must be unit-propagable from the input.
type Partial struct {
	Units []clause.Lit
}

// Sat implements Verdict.
func (Partial) Sat() bool  { return true }
func (Partial) isVerdict() {}

// True is a bare truth marker used when SAT was established but no witness
// is reconstructible — spec.md §9's documented Open Question, returned by
// resolution.Naive whenever its usable set empties, whether or not it
// derived any unit. Implementations must never fabricate a model in this case.
type True struct{}

// Sat implements Verdict.
func (True) Sat() bool  { return true }
func (True) isVerdict() {}

// Input is what every engine consumes: a clause set, an optional maximum
// variable hint, optional variable names, and a trace mode.
type Input struct {
	Problem clause.Set
	Trace   trace.Mode
}

// Output pairs a verdict with the rendered trace.
type Output struct {
	Verdict Verdict
	Trace   string
}

// ModelString renders a Model using names, one "name" or "¬name" token per
// variable in order, skipping nothing (total assignment).
func ModelString(m Model, names clause.Names) []string {
	out := make([]string, len(m.Values))
	for i, v := range m.Values {
		l := clause.Var(i).SignedLit(v == clause.False)
		out[i] = names.Render(l)
	}
	return out
}
