package clause

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchedClauseBasics(t *testing.T) {
	wc := NewWatched(lits(1, -2, 3))
	assert.Equal(t, IntToLit(1), wc.WatchedLit0())
	assert.Equal(t, IntToLit(-2), wc.WatchedLit1())
	assert.Equal(t, 1, Other(0))
	assert.Equal(t, 0, Other(1))
}

func TestBucketAddRemove(t *testing.T) {
	var b Bucket
	c1 := NewWatched(lits(1, 2))
	c2 := NewWatched(lits(1, 3))
	b.Add(c1)
	b.Add(c2)
	require.Equal(t, 2, b.Len())

	b.Remove(c1)
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, c2, b.Clauses()[0])
}

func TestBucketRemoveMissingPanics(t *testing.T) {
	var b Bucket
	b.Add(NewWatched(lits(1, 2)))
	assert.Panics(t, func() { b.Remove(NewWatched(lits(3, 4))) })
}

func TestActivityBumpRescalesOnOverflow(t *testing.T) {
	a := NewActivity(2)
	a[0] = 1e100
	a.Bump(0, 1e100)
	assert.Less(t, a[0], 1e100)
}

func TestUnitIndexContradiction(t *testing.T) {
	u := NewUnitIndex(2)
	assert.True(t, u.Add(IntToLit(1)))
	assert.True(t, u.Add(IntToLit(1)))
	assert.False(t, u.Add(IntToLit(-1)))
	assert.True(t, u.CutsLiteral(IntToLit(-1)))
}
