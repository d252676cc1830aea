package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnflab/satcore/clause"
)

func lits(ints ...int) []clause.Lit {
	out := make([]clause.Lit, len(ints))
	for i, v := range ints {
		out[i] = clause.IntToLit(v)
	}
	return out
}

func TestSubsumes(t *testing.T) {
	c1 := clause.New(lits(1, 2))
	c2 := clause.New(lits(1, 2, 3))
	assert.True(t, Subsumes(c1, c2))
	assert.False(t, Subsumes(c2, c1))
}

func TestSubsumesSortedMatchesUnordered(t *testing.T) {
	c1 := clause.New(lits(1, 3))
	c2 := clause.New(lits(1, 2, 3, 4))
	assert.Equal(t, Subsumes(c1, c2), SubsumesSorted(c1, c2))
}

func TestMergeSimpleResolvent(t *testing.T) {
	units := clause.NewUnitIndex(4)
	c1 := clause.New(lits(1, 2))
	c2 := clause.New(lits(-1, 3))
	res := Merge(c1, c2, 0, 0, units)
	require.Equal(t, ClauseTag, res.Tag)
	assert.ElementsMatch(t, lits(2, 3), res.Lits)
}

func TestMergeTautology(t *testing.T) {
	units := clause.NewUnitIndex(4)
	c1 := clause.New(lits(1, 2))
	c2 := clause.New(lits(-1, -2))
	res := Merge(c1, c2, 0, 0, units)
	assert.Equal(t, Tautology, res.Tag)
}

func TestMergeEmptyClauseIsUnsat(t *testing.T) {
	units := clause.NewUnitIndex(4)
	c1 := clause.New(lits(1))
	c2 := clause.New(lits(-1))
	res := Merge(c1, c2, 0, 0, units)
	assert.Equal(t, Unsat, res.Tag)
}

func TestMergeCutsFalsifiedLiterals(t *testing.T) {
	units := clause.NewUnitIndex(4)
	require.True(t, units.Add(clause.IntToLit(-3)))
	c1 := clause.New(lits(1, 2))
	c2 := clause.New(lits(-1, 3))
	res := Merge(c1, c2, 0, 0, units)
	require.Equal(t, ClauseTag, res.Tag)
	assert.ElementsMatch(t, lits(2), res.Lits)
}

func TestMergePanicsOnNonComplementaryPivot(t *testing.T) {
	units := clause.NewUnitIndex(4)
	c1 := clause.New(lits(1, 2))
	c2 := clause.New(lits(1, 3))
	assert.Panics(t, func() { Merge(c1, c2, 0, 0, units) })
}
