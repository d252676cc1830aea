// Package clause provides the literal/variable encoding, clause and
// assignment types, and the bucket/activity indices shared by every
// decision procedure in satcore.
package clause

// Var is a dense Boolean variable index. Var start at 0 ; thus the CNF
// variable 1 is encoded as the Var 0.
type Var int32

// Lit is a signed literal, encoded as a dense non-negative integer. Lit
// start at 0 and are positive ; the sign is the last bit. Thus the CNF
// literal -3 is encoded as 2*(3-1)+1 = 5.
type Lit int32

// IntToLit converts a CNF literal (nonzero, signed) to a Lit.
func IntToLit(i int) Lit {
	if i < 0 {
		return Lit(2*(-i-1) + 1)
	}
	return Lit(2 * (i - 1))
}

// IntToVar converts a CNF variable (1-based) to a Var.
func IntToVar(i int) Var {
	return Var(i - 1)
}

// Lit returns the positive literal associated with v.
func (v Var) Lit() Lit {
	return Lit(v * 2)
}

// SignedLit returns the literal associated with v, negated if neg is true.
func (v Var) SignedLit(neg bool) Lit {
	if neg {
		return Lit(v*2) + 1
	}
	return Lit(v * 2)
}

// Var returns the variable underlying l.
func (l Lit) Var() Var {
	return Var(l / 2)
}

// Int returns the equivalent signed CNF literal.
func (l Lit) Int() int {
	sign := l&1 == 1
	res := int(l/2 + 1)
	if sign {
		return -res
	}
	return res
}

// IsPositive reports whether l has positive polarity.
func (l Lit) IsPositive() bool {
	return l%2 == 0
}

// Negation returns -l.
func (l Lit) Negation() Lit {
	return l ^ 1
}

// Less gives the total order on literals used by every routine in this
// module that assumes sorted clauses (merge.SubsumesSorted, the optimized
// resolution engine, watched-clause preprocessing).
func Less(a, b Lit) bool {
	return a < b
}

// Value is a tri-valued truth value: Unassigned, True or False. This is
// the Go-native analogue of EricR-saturday's tribool.Tribool, chosen over
// the teacher's signed-decision-level int because none of the engines this
// spec describes need decision levels, only a trail to undo.
type Value int8

const (
	// Unassigned means the variable has no current binding.
	Unassigned Value = 0
	// True means the variable is currently bound to true.
	True Value = 1
	// False means the variable is currently bound to false.
	False Value = -1
)

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unassigned"
	}
}

// Not negates a Value; Unassigned stays Unassigned.
func (v Value) Not() Value {
	return -v
}

// FromBool converts a plain bool to a Value.
func FromBool(b bool) Value {
	if b {
		return True
	}
	return False
}
