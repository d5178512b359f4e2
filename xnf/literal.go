// Package xnf implements the core CNF-to-XNF transform: direct-encoding
// and AIG-gate XOR extraction, Gaussian-style XOR-only variable
// elimination, variable compaction, and XNF emission. The package never
// performs file or process I/O; callers build a *Store, run Transform,
// and hand the result to an io.Writer via Emit.
package xnf

import "fmt"

// Literal is a non-zero signed integer in [-vars, -1] ∪ [1, vars]. The
// unsigned value is the variable index; the sign is the phase. This
// mirrors the DIMACS wire representation directly, the way
// github.com/go-air/gini's z.Lit and the ginipre/gophersat family of
// packages represent literals as packed integers rather than as a
// {name, phase} struct.
type Literal int

// Var returns the variable index of the literal (always positive).
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Positive reports whether the literal has positive phase.
func (l Literal) Positive() bool {
	return l > 0
}

// Negate returns the logical complement of the literal.
func (l Literal) Negate() Literal {
	return -l
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int(l))
}

// Kind distinguishes an ordinary clause from an XOR (parity) constraint.
type Kind uint8

const (
	KindClause Kind = iota
	KindXOR
)

// Constraint is a tagged record: a disjunction of literals (kind =
// KindClause) or a parity equation over positive literals (kind =
// KindXOR, with Parity giving the right-hand side mod 2). Constraints
// are never moved once allocated; removal is tombstoning via Garbage.
//
// Invariant: no variable appears twice in Literals (neither as itself
// nor negated). For KindXOR, every literal in Literals is positive —
// sign carries no information for an XOR once Parity absorbs it.
type Constraint struct {
	Kind     Kind
	Parity   bool
	Garbage  bool
	Literals []Literal
}

// IsXOR reports whether c is a parity constraint.
func (c *Constraint) IsXOR() bool {
	return c.Kind == KindXOR
}

func newClause(lits []Literal) *Constraint {
	return &Constraint{Kind: KindClause, Literals: lits}
}

func newXOR(parity bool, lits []Literal) *Constraint {
	return &Constraint{Kind: KindXOR, Parity: parity, Literals: lits}
}
