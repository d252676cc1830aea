package clause

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lits(ints ...int) []Lit {
	out := make([]Lit, len(ints))
	for i, v := range ints {
		out[i] = IntToLit(v)
	}
	return out
}

func TestLitEncoding(t *testing.T) {
	tests := []struct {
		cnf  int
		want Lit
	}{
		{1, 0},
		{-1, 1},
		{3, 4},
		{-3, 5},
	}
	for _, tt := range tests {
		got := IntToLit(tt.cnf)
		assert.Equalf(t, tt.want, got, "IntToLit(%d)", tt.cnf)
		assert.Equal(t, tt.cnf, got.Int(), "round trip")
	}
}

func TestLitNegation(t *testing.T) {
	l := IntToLit(5)
	assert.True(t, l.IsPositive())
	assert.False(t, l.Negation().IsPositive())
	assert.Equal(t, l, l.Negation().Negation())
}

func TestClauseBasics(t *testing.T) {
	c := New(lits(1, -2, 3))
	require.Equal(t, 3, c.Len())
	assert.False(t, c.IsUnit())
	assert.False(t, c.IsEmpty())
	assert.Equal(t, "1 -2 3 0", c.CNF())
}

func TestClauseSortByLit(t *testing.T) {
	c := New(lits(3, -1, 2))
	c.SortByLit()
	for i := 1; i < c.Len(); i++ {
		assert.True(t, c.Get(i-1) <= c.Get(i))
	}
}

func TestSetComputeMaxVar(t *testing.T) {
	s := Set{Clauses: []*Clause{New(lits(1, -5)), New(lits(2))}}
	assert.Equal(t, 5, s.ComputeMaxVar())

	// a caller hint that undercounts is never trusted over the clauses.
	s.MaxVar = 1
	assert.Equal(t, 5, s.ComputeMaxVar())
}

func TestNamesRender(t *testing.T) {
	names := Names{"", "p", "q"}
	assert.Equal(t, "p", names.Render(IntToLit(1)))
	assert.Equal(t, "¬q", names.Render(IntToLit(-2)))
	assert.Equal(t, "3", names.Render(IntToLit(3)))
}
