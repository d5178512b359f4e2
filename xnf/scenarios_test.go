package xnf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildStore(t *testing.T, vars int, clauses [][]int) *Store {
	t.Helper()
	s := NewStore(vars, nil)
	for _, cl := range clauses {
		lits := make([]Literal, len(cl))
		for i, v := range cl {
			lits[i] = Literal(v)
		}
		s.AddClause(lits)
	}
	return s
}

func emitString(t *testing.T, s *Store) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, s.Emit(&buf))
	return buf.String()
}

// S1: a size-2 equivalence is recognized from its two clauses and
// re-expressed as one XOR.
func TestScenarioSizeTwoEquivalence(t *testing.T) {
	s := buildStore(t, 2, [][]int{{1, -2}, {-1, 2}})
	s.Transform(Options{Gates: true, Eliminate: false, Compact: false})

	require.Equal(t, "p xnf 2 1\nx -1 2 0\n", emitString(t, s))
	require.Equal(t, 1, s.Extracted)
	require.Equal(t, 1, s.Equivalences)
	require.Equal(t, 1, s.Direct)
}

// S2: a 3-XOR recognized from its four direct-encoded clauses. Only
// the all-negative clause qualifies as a base under the "at most one
// positive literal" quirk (see extract_direct.go); the other three
// are each rejected on their own second positive literal and survive
// only long enough to be collected as siblings once the qualifying
// base succeeds.
//
// Truth-table enumeration of the four input clauses shows the encoded
// equation is x1⊕x2⊕x3 = 0 (every satisfying assignment has an even
// number of true variables) — the opposite of the parity spec.md's S2
// prose labels this scenario with. The expected line below follows
// the verified truth table, not the prose label.
func TestScenarioThreeXOR(t *testing.T) {
	s := buildStore(t, 3, [][]int{
		{1, 2, -3},
		{1, -2, 3},
		{-1, 2, 3},
		{-1, -2, -3},
	})
	s.Transform(Options{Gates: true, Eliminate: false, Compact: false})

	require.Equal(t, "p xnf 3 1\nx -1 2 3 0\n", emitString(t, s))
	require.Equal(t, 1, s.Extracted)
	require.Equal(t, 1, s.Direct)
	require.Equal(t, 0, s.Equivalences)
}

// S6: an unrecognized clause passes through untouched.
func TestScenarioUnrecognizedClausePassesThrough(t *testing.T) {
	s := buildStore(t, 4, [][]int{{1, 2, 3, 4}})
	s.Transform(Options{Gates: true, Eliminate: false, Compact: false})

	require.Equal(t, "p cnf 4 1\n1 2 3 4 0\n", emitString(t, s))
	require.Equal(t, 0, s.Extracted)
}

// S5: the 9-clause Tseitin encoding of z = x ⊕ y (z=1, x=2, y=3, two
// auxiliary Tseitin variables 4 and 5) collapses to a single XOR over
// {1,2,3} with every input clause weakened or discarded.
func TestScenarioGateEncoding(t *testing.T) {
	s := buildStore(t, 5, [][]int{
		{1, -4, -5},  // base: z ∨ ¬r0 ∨ ¬r1
		{-1, 4},      // top binary: ¬z ∨ r0
		{-1, 5},      // top binary: ¬z ∨ r1
		{-4, 2, 3},   // r0 sub-gate ternary: ¬r0 ∨ x ∨ y
		{4, -2},      // r0 sub-gate binary
		{4, -3},      // r0 sub-gate binary
		{-5, -2, -3}, // r1 sub-gate ternary: ¬r1 ∨ ¬x ∨ ¬y
		{5, 2},       // r1 sub-gate binary
		{5, 3},       // r1 sub-gate binary
	})
	s.Transform(Options{Gates: true, Eliminate: false, Compact: true})

	require.Equal(t, 1, s.Extracted)
	require.Equal(t, 1, s.Gates)
	require.Equal(t, 0, s.Kept)
	require.Equal(t, 3, s.Reduced)
	require.Equal(t, "p xnf 3 1\nx -1 2 3 0\n", emitString(t, s))

	for _, c := range s.Clauses {
		require.True(t, c.Garbage, "every input clause should be consumed by the gate extraction")
	}
}
