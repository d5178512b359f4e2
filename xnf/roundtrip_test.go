package xnf

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/cnfxnf/xnfexpand"
)

// satisfiable brute-forces satisfiability of a small CNF over
// variables 1..vars. Fine for the handful of variables these tests use.
func satisfiable(vars int, clauses [][]int) bool {
	for assignment := 0; assignment < 1<<uint(vars); assignment++ {
		ok := true
		for _, clause := range clauses {
			clauseOK := false
			for _, lit := range clause {
				v := lit
				if v < 0 {
					v = -v
				}
				bit := assignment&(1<<uint(v-1)) != 0
				if (lit > 0) == bit {
					clauseOK = true
					break
				}
			}
			if !clauseOK {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// Transforming a formula and then expanding every surviving XOR back
// to CNF (spec §8 invariant 7) must preserve satisfiability.
func TestRoundTripPreservesSatisfiability(t *testing.T) {
	cases := []struct {
		name    string
		vars    int
		clauses [][]int
	}{
		{"size-2 equivalence", 2, [][]int{{1, -2}, {-1, 2}}},
		{"3-xor", 3, [][]int{{1, 2, -3}, {1, -2, 3}, {-1, 2, 3}, {-1, -2, -3}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			original := satisfiable(tc.vars, tc.clauses)

			s := buildStore(t, tc.vars, tc.clauses)
			s.Transform(Options{Gates: true, Eliminate: false, Compact: false})
			require.False(t, s.Inconsistent)

			expanded := make([][]int, 0)
			nextVar := s.Vars + 1
			for _, c := range s.Clauses {
				if c.Garbage {
					continue
				}
				lits := make([]int, len(c.Literals))
				for i, l := range c.Literals {
					lits[i] = int(l)
				}
				expanded = append(expanded, lits)
			}
			for _, x := range s.XORs {
				if x.Garbage {
					continue
				}
				vars := make([]int, len(x.Literals))
				for i, l := range x.Literals {
					vars[i] = int(l)
				}
				var cls [][]int
				cls, nextVar = xnfexpand.Expand(xnfexpand.XOR{Vars: vars, Parity: x.Parity}, nextVar, xnfexpand.Linear)
				expanded = append(expanded, cls...)
			}

			reexpandedVars := nextVar - 1
			require.Equal(t, original, satisfiable(reexpandedVars, expanded))
		})
	}
}
