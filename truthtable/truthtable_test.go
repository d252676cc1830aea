package truthtable

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

func satProblem() clause.Set {
	return clause.Set{Clauses: []*clause.Clause{
		clause.New(lits(1, 2)),
		clause.New(lits(-1, 2)),
		clause.New(lits(1, -2)),
	}}
}

func unsatProblem() clause.Set {
	return clause.Set{Clauses: []*clause.Clause{
		clause.New(lits(1, 2)),
		clause.New(lits(-1, 2)),
		clause.New(lits(1, -2)),
		clause.New(lits(-1, -2)),
	}}
}

func TestEngineSat(t *testing.T) {
	for _, leavesOnly := range []bool{true, false} {
		e := Engine{LeavesOnly: leavesOnly}
		out := e.Solve(satProblem(), 2, trace.NewRecorder(trace.Plain))
		require.True(t, out.Verdict.Sat())
		model, ok := out.Verdict.(engine.Model)
		require.True(t, ok)
		assert.Len(t, model.Values, 2)
	}
}

func TestEngineUnsat(t *testing.T) {
	for _, leavesOnly := range []bool{true, false} {
		e := Engine{LeavesOnly: leavesOnly}
		out := e.Solve(unsatProblem(), 2, trace.NewRecorder(trace.Plain))
		assert.False(t, out.Verdict.Sat())
		assert.IsType(t, engine.Unsat{}, out.Verdict)
	}
}

func TestEvaluateThreeValued(t *testing.T) {
	clauses := []*clause.Clause{clause.New(lits(1, 2))}
	a := clause.NewAssignment(2)
	stats := &trace.Stats{}
	assert.Equal(t, clause.Unassigned, evaluate(clauses, &a, stats))
	a.Assign(clause.IntToLit(1))
	assert.Equal(t, clause.True, evaluate(clauses, &a, stats))
	a.Undo(0)
	a.Assign(clause.IntToLit(-1))
	a.Assign(clause.IntToLit(-2))
	assert.Equal(t, clause.False, evaluate(clauses, &a, stats))
}
