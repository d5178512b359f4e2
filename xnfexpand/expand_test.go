package xnfexpand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandSizeTwo(t *testing.T) {
	clauses, next := Expand(XOR{Vars: []int{1, 2}, Parity: false}, 3, Linear)
	require.Equal(t, 3, next)
	require.ElementsMatch(t, [][]int{{-1, 2}, {1, -2}}, clauses)
}

func TestExpandIntroducesAuxiliaryVariablesForLongXOR(t *testing.T) {
	clauses, next := Expand(XOR{Vars: []int{1, 2, 3, 4, 5, 6}, Parity: true}, 7, Linear)

	require.Equal(t, 8, next, "a 6-variable XOR needs one auxiliary beyond the 4-chunk")
	require.Len(t, clauses, 16+4) // one 5-ary chunk (2^4=16) plus a 3-ary close (2^2=4)

	for _, c := range clauses {
		require.LessOrEqual(t, len(c), 5)
	}
}

func TestExpandPoolVsLinearProduceSameVariableBudget(t *testing.T) {
	vars := []int{1, 2, 3, 4, 5, 6, 7, 8}
	_, nextLinear := Expand(XOR{Vars: vars, Parity: false}, 9, Linear)
	_, nextPool := Expand(XOR{Vars: vars, Parity: false}, 9, Pool)
	require.Equal(t, nextLinear, nextPool)
}
