package xnf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompactRenumbersSurvivingVariables(t *testing.T) {
	var ext bytes.Buffer
	s := NewStore(4, &ext)
	s.AddClause([]Literal{1, 3})
	s.Transform(Options{Gates: true, Eliminate: false, Compact: true})

	require.Equal(t, 2, s.Reduced)
	require.Equal(t, "x -3 2 0\n", ext.String())
	require.Equal(t, "p cnf 2 1\n1 2 0\n", emitString(t, s))
}

func TestNonCompactKeepsIdentityMapping(t *testing.T) {
	s := NewStore(4, nil)
	s.AddClause([]Literal{1, 3})
	s.Transform(Options{Gates: true, Eliminate: false, Compact: false})

	require.Equal(t, 4, s.Reduced)
	require.Equal(t, "p cnf 4 1\n1 3 0\n", emitString(t, s))
}
