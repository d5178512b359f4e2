package xnf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Two XORs sharing a variable set with opposite parities are
// contradictory: their symmetric difference is empty but the parities
// disagree, so elimination must derive 0 = 1.
func TestEliminateDerivesInconsistency(t *testing.T) {
	s := NewStore(2, nil)
	s.addXOR(true, []Literal{1, 2}, false)
	s.addXOR(false, []Literal{1, 2}, false)

	s.Eliminate()

	require.True(t, s.Inconsistent)
}

// A variable occurring in exactly one XOR and no clauses is free: its
// sole occurrence is consumed in one pass, and the then-unreferenced
// second variable of that XOR is left for a no-op elimination attempt
// (its occurrence list is already empty by the time its turn comes).
func TestEliminateSingleXORConsumesBothVariables(t *testing.T) {
	s := NewStore(2, nil)
	x := s.addXOR(true, []Literal{1, 2}, false)

	s.Eliminate()

	require.False(t, s.Inconsistent)
	require.Equal(t, 1, s.Eliminated)
	require.Equal(t, 1, s.Substituted)
	require.Equal(t, 0, s.Trivial)
	require.True(t, x.Garbage)
}

// Eliminating a pivot against a sibling XOR that reduces to the same
// variable set and matching parity produces a trivial (tautological)
// row rather than a new XOR.
func TestEliminateProducesTrivialRow(t *testing.T) {
	s := NewStore(3, nil)
	s.addXOR(false, []Literal{1, 2}, false)
	s.addXOR(false, []Literal{1, 2}, false)

	s.Eliminate()

	require.False(t, s.Inconsistent)
	require.Equal(t, 1, s.Trivial)
}
