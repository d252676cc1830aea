package clause

// A WatchedClause is a clause with two distinguished watched literals,
// kept in an explicit header rather than packed into the first two body
// slots (spec.md §9 REDESIGN FLAG "Clause meta-slots"). Invariant: both
// Watch0 and Watch1 are valid indices into Lits, and whenever propagation
// cannot keep a watched literal non-false, the watch is moved to another
// non-false literal or the clause becomes unit/conflicting.
type WatchedClause struct {
	Watch0, Watch1 int
	Lits           []Lit
}

// NewWatched returns a WatchedClause watching its first two literals. lits
// must have at least 2 elements; unit clauses are never watched (they are
// applied directly to the assignment during preprocessing).
func NewWatched(lits []Lit) *WatchedClause {
	return &WatchedClause{Watch0: 0, Watch1: 1, Lits: lits}
}

// Len returns the number of literals in c.
func (c *WatchedClause) Len() int { return len(c.Lits) }

// WatchedLit0 returns the literal currently in the Watch0 slot.
func (c *WatchedClause) WatchedLit0() Lit { return c.Lits[c.Watch0] }

// WatchedLit1 returns the literal currently in the Watch1 slot.
func (c *WatchedClause) WatchedLit1() Lit { return c.Lits[c.Watch1] }

// Other returns the watched slot (0 or 1) that is not idx.
func Other(idx int) int {
	if idx == 0 {
		return 1
	}
	return 0
}

// Bucket is a growable index of watched clauses, one per literal, with
// O(1) swap-remove (spec.md §9 REDESIGN FLAG "Bucket compaction" — a plain
// slice instead of the "used-length + holes" packing).
type Bucket struct {
	clauses []*WatchedClause
}

// Add appends c to the bucket.
func (b *Bucket) Add(c *WatchedClause) {
	b.clauses = append(b.clauses, c)
}

// Remove deletes the first occurrence of c from the bucket via
// swap-with-last. c must be present.
func (b *Bucket) Remove(c *WatchedClause) {
	for i, cc := range b.clauses {
		if cc == c {
			last := len(b.clauses) - 1
			b.clauses[i] = b.clauses[last]
			b.clauses = b.clauses[:last]
			return
		}
	}
	panic("clause.Bucket.Remove: clause not present in bucket")
}

// Len returns the number of clauses currently in the bucket.
func (b *Bucket) Len() int { return len(b.clauses) }

// Clauses returns the live clauses in the bucket. Callers must not mutate
// bucket membership (Add/Remove) while iterating the returned slice; the
// watched-literal engine iterates over a copy of the slice for this reason.
func (b *Bucket) Clauses() []*WatchedClause { return b.clauses }

// Buckets is one Bucket per literal, the pos/neg index of spec.md §3.
type Buckets []Bucket

// NewBuckets returns Buckets sized for nbVars variables (2*nbVars literals).
func NewBuckets(nbVars int) Buckets {
	return make(Buckets, nbVars*2)
}
