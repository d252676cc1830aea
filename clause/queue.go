/******************************************************************************************[Heap.h]
Copyright (c) 2003-2006, Niklas Een, Niklas Sorensson
Copyright (c) 2007-2010, Niklas Sorensson

Permission is hereby granted, free of charge, to any person obtaining a copy of this software and
associated documentation files (the "Software"), to deal in the Software without restriction,
including without limitation the rights to use, copy, modify, merge, publish, distribute,
sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all copies or
substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT
NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT
OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
**************************************************************************************************/

package clause

// Queue is a decrease-key binary heap over Var, ordered by decreasing
// Activity, used by dpll.Watched to pick the next decision variable. This
// is the same percolate-up/percolate-down shape as minisat's mtl/Heap.h.

// Queue is a max-heap of variables ordered by their activity.
type Queue struct {
	activity Activity // shared with the owner; never copied
	content  []int
	indices  []int // position of each var in content, -1 if absent
}

// NewQueue returns a Queue over every variable with an entry in activity,
// initially containing all of them.
func NewQueue(activity Activity) Queue {
	q := Queue{activity: activity}
	for i := range activity {
		q.Insert(i)
	}
	return q
}

func (q *Queue) lt(i, j int) bool { return q.activity[i] > q.activity[j] }

func left(i int) int   { return i*2 + 1 }
func right(i int) int  { return (i + 1) * 2 }
func parent(i int) int { return (i - 1) >> 1 }

func (q *Queue) percolateUp(i int) {
	x := q.content[i]
	p := parent(i)
	for i != 0 && q.lt(x, q.content[p]) {
		q.content[i] = q.content[p]
		q.indices[q.content[p]] = i
		i = p
		p = parent(p)
	}
	q.content[i] = x
	q.indices[x] = i
}

func (q *Queue) percolateDown(i int) {
	x := q.content[i]
	for left(i) < len(q.content) {
		child := left(i)
		if right(i) < len(q.content) && q.lt(q.content[right(i)], q.content[left(i)]) {
			child = right(i)
		}
		if !q.lt(q.content[child], x) {
			break
		}
		q.content[i] = q.content[child]
		q.indices[q.content[i]] = i
		i = child
	}
	q.content[i] = x
	q.indices[x] = i
}

// Len returns the number of variables currently queued.
func (q *Queue) Len() int { return len(q.content) }

// Empty reports whether the queue has no variable left.
func (q *Queue) Empty() bool { return len(q.content) == 0 }

// Contains reports whether variable n is currently in the queue.
func (q *Queue) Contains(n int) bool {
	return n < len(q.indices) && q.indices[n] >= 0
}

// Decrease notifies the queue that n's activity increased (the heap order
// is by decreasing activity, so a larger activity "decreases" n's rank).
func (q *Queue) Decrease(n int) {
	if q.Contains(n) {
		q.percolateUp(q.indices[n])
	}
}

// Insert adds variable n to the queue.
func (q *Queue) Insert(n int) {
	for i := len(q.indices); i <= n; i++ {
		q.indices = append(q.indices, -1)
	}
	q.indices[n] = len(q.content)
	q.content = append(q.content, n)
	q.percolateUp(q.indices[n])
}

// RemoveMax removes and returns the variable with the highest activity.
func (q *Queue) RemoveMax() int {
	x := q.content[0]
	last := len(q.content) - 1
	q.content[0] = q.content[last]
	q.indices[q.content[0]] = 0
	q.indices[x] = -1
	q.content = q.content[:last]
	if len(q.content) > 1 {
		q.percolateDown(0)
	}
	return x
}

// Build rebuilds the heap from scratch over the variables in ns.
func (q *Queue) Build(ns []int) {
	for _, v := range q.content {
		q.indices[v] = -1
	}
	q.content = q.content[:0]
	for i, v := range ns {
		for j := len(q.indices); j <= v; j++ {
			q.indices = append(q.indices, -1)
		}
		q.indices[v] = i
		q.content = append(q.content, v)
	}
	for i := len(q.content)/2 - 1; i >= 0; i-- {
		q.percolateDown(i)
	}
}
