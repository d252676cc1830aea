package clause

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignmentMarkUndo(t *testing.T) {
	a := NewAssignment(3)
	mark := a.Mark()
	a.Assign(IntToLit(1))
	a.Assign(IntToLit(-2))
	assert.Equal(t, True, a.VarValue(0))
	assert.Equal(t, False, a.VarValue(1))
	assert.False(t, a.Total())

	a.Undo(mark)
	assert.Equal(t, Unassigned, a.VarValue(0))
	assert.Equal(t, Unassigned, a.VarValue(1))
	assert.Equal(t, 0, a.Mark())
}

func TestAssignmentLitValue(t *testing.T) {
	a := NewAssignment(1)
	a.Assign(IntToLit(-1))
	assert.Equal(t, False, a.LitValue(IntToLit(1)))
	assert.Equal(t, True, a.LitValue(IntToLit(-1)))
}

func TestAssignmentFirstUnassigned(t *testing.T) {
	a := NewAssignment(2)
	assert.Equal(t, Var(0), a.FirstUnassigned())
	a.Assign(IntToLit(1))
	assert.Equal(t, Var(1), a.FirstUnassigned())
	a.Assign(IntToLit(2))
	assert.Equal(t, Var(-1), a.FirstUnassigned())
}

func TestAssignmentNestedUndo(t *testing.T) {
	a := NewAssignment(3)
	outer := a.Mark()
	a.Assign(IntToLit(1))
	inner := a.Mark()
	a.Assign(IntToLit(2))
	a.Assign(IntToLit(3))
	a.Undo(inner)
	assert.Equal(t, True, a.VarValue(0))
	assert.Equal(t, Unassigned, a.VarValue(1))
	assert.Equal(t, Unassigned, a.VarValue(2))
	a.Undo(outer)
	assert.Equal(t, Unassigned, a.VarValue(0))
}
