package clause

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueOrdersByActivity(t *testing.T) {
	activity := Activity{0.5, 2.0, 1.0}
	q := NewQueue(activity)
	require.Equal(t, 3, q.Len())

	assert.Equal(t, 1, q.RemoveMax())
	assert.Equal(t, 2, q.RemoveMax())
	assert.Equal(t, 0, q.RemoveMax())
	assert.True(t, q.Empty())
}

func TestQueueDecreaseReordersOnBump(t *testing.T) {
	activity := Activity{1.0, 1.0, 1.0}
	q := NewQueue(activity)
	activity[2] = 10.0
	q.Decrease(2)
	assert.Equal(t, 2, q.RemoveMax())
}

func TestQueueInsertAfterRemoval(t *testing.T) {
	activity := Activity{1.0, 2.0}
	q := NewQueue(activity)
	q.RemoveMax()
	q.RemoveMax()
	assert.True(t, q.Empty())
	assert.False(t, q.Contains(0))

	q.Insert(0)
	assert.True(t, q.Contains(0))
	assert.Equal(t, 0, q.RemoveMax())
}
