package dimacs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBasicFormula(t *testing.T) {
	s, err := Parse(strings.NewReader("p cnf 3 2\n1 2 0\n-1 -2 3 0\n"), nil)
	require.NoError(t, err)
	require.Equal(t, 3, s.Vars)
	require.Len(t, s.Clauses, 2)
	require.Equal(t, 2, s.Kept)
}

func TestParseSkipsLeadingComments(t *testing.T) {
	s, err := Parse(strings.NewReader("c a comment\nc another\np cnf 1 1\n1 0\n"), nil)
	require.NoError(t, err)
	require.Equal(t, 1, s.Vars)
	require.Len(t, s.Clauses, 1)
}

func TestParseRejectsBadHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("p xnf 1 1\n1 0\n"), nil)
	require.Error(t, err)
}

func TestParseRejectsLiteralOutOfRange(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 2 1\n3 0\n"), nil)
	require.Error(t, err)
}

func TestParseRejectsMissingTerminator(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 2 1\n1 2"), nil)
	require.Error(t, err)
}

func TestParseRejectsClauseCountMismatch(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 2 2\n1 2 0\n"), nil)
	require.Error(t, err)
}

func TestParseRejectsTooManyClauses(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 2 1\n1 0\n2 0\n"), nil)
	require.Error(t, err)
}
