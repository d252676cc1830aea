package resolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnflab/satcore/clause"
	"github.com/cnflab/satcore/engine"
	"github.com/cnflab/satcore/trace"
)

func lits(ints ...int) []clause.Lit {
	out := make([]clause.Lit, len(ints))
	for i, v := range ints {
		out[i] = clause.IntToLit(v)
	}
	return out
}

func unsatProblem() clause.Set {
	return clause.Set{Clauses: []*clause.Clause{
		clause.New(lits(1, 2)),
		clause.New(lits(-1, 2)),
		clause.New(lits(1, -2)),
		clause.New(lits(-1, -2)),
	}}
}

func satProblem() clause.Set {
	return clause.Set{Clauses: []*clause.Clause{
		clause.New(lits(1, 2)),
		clause.New(lits(-1, 2)),
		clause.New(lits(1, -2)),
	}}
}

func trivialUnitConflict() clause.Set {
	return clause.Set{Clauses: []*clause.Clause{
		clause.New(lits(1)),
		clause.New(lits(-1)),
	}}
}

func TestNaiveUnsat(t *testing.T) {
	out := Naive{}.Solve(unsatProblem(), trace.NewRecorder(trace.Plain))
	assert.IsType(t, engine.Unsat{}, out.Verdict)
}

func TestNaiveUnitConflict(t *testing.T) {
	out := Naive{}.Solve(trivialUnitConflict(), trace.NewRecorder(trace.Plain))
	assert.IsType(t, engine.Unsat{}, out.Verdict)
}

func TestNaiveSatReturnsTrueWithoutWitness(t *testing.T) {
	out := Naive{}.Solve(satProblem(), trace.NewRecorder(trace.Plain))
	// spec.md §9 Open Question: naive resolution never fabricates a model.
	assert.IsType(t, engine.True{}, out.Verdict)
	assert.True(t, out.Verdict.Sat())
}

func TestOptimizedUnsat(t *testing.T) {
	out := Optimized{}.Solve(unsatProblem(), trace.NewRecorder(trace.Plain))
	assert.IsType(t, engine.Unsat{}, out.Verdict)
}

func TestOptimizedUnitConflict(t *testing.T) {
	out := Optimized{}.Solve(trivialUnitConflict(), trace.NewRecorder(trace.Plain))
	assert.IsType(t, engine.Unsat{}, out.Verdict)
}

func TestOptimizedAgreesWithNaiveOnUnsat(t *testing.T) {
	problems := []clause.Set{unsatProblem(), trivialUnitConflict()}
	for _, p := range problems {
		naive := Naive{}.Solve(p, trace.NewRecorder(trace.Plain))
		optimized := Optimized{}.Solve(p, trace.NewRecorder(trace.Plain))
		assert.Equal(t, naive.Verdict.Sat(), optimized.Verdict.Sat())
	}
}

func TestTautologyDetection(t *testing.T) {
	assert.True(t, tautology(clause.New(lits(1, 2, -1))))
	assert.False(t, tautology(clause.New(lits(1, 2, 3))))
}

func TestOptimizedSatReturnsPartialUnits(t *testing.T) {
	out := Optimized{}.Solve(satProblem(), trace.NewRecorder(trace.Plain))
	partial, ok := out.Verdict.(engine.Partial)
	require.True(t, ok, "expected engine.Partial, got %T", out.Verdict)
	assert.True(t, out.Verdict.Sat())
	assert.Contains(t, partial.Units, clause.IntToLit(1))
	assert.NotContains(t, partial.Units, clause.IntToLit(-1))
}

// widerSatProblem gives the given-clause loop enough clauses sharing
// first literals across buckets of different lengths to drive several
// resolution steps before exhaustion.
func widerSatProblem() clause.Set {
	return clause.Set{Clauses: []*clause.Clause{
		clause.New(lits(1, 2, 3)),
		clause.New(lits(-1, 2)),
		clause.New(lits(-2, 3)),
		clause.New(lits(1, -3)),
	}}
}

func TestOptimizedAgreesWithNaiveOnSat(t *testing.T) {
	naive := Naive{}.Solve(widerSatProblem(), trace.NewRecorder(trace.Plain))
	optimized := Optimized{}.Solve(widerSatProblem(), trace.NewRecorder(trace.Plain))
	assert.Equal(t, naive.Verdict.Sat(), optimized.Verdict.Sat())
}
