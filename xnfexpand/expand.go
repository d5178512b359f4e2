// Package xnfexpand lowers XNF's XOR constraints back into plain CNF
// clauses, the reverse direction of package xnf's direct-encoding
// extractor. It is a supplemented feature, not part of the core
// transformer: spec.md places "auxiliary post-processors that expand
// XOR constraints back into plain CNF" out of the transformer's scope,
// but nothing forbids shipping one as a separate package, and it is
// exactly the tool invariant 7 in spec §8 needs for a round-trip test.
//
// Grounded on original_source/cnf2xnf/xnf2cnf3.c and xnf2cnf5.c's
// printXOR: chunk the XOR's literals 4 at a time, tie each chunk to a
// fresh auxiliary variable with a direct-encoded 5-ary sub-XOR, and
// recurse on the remaining literals plus that auxiliary until at most
// 4 literals remain, which close the chain against the XOR's true
// parity. Rather than porting the five hardcoded sign tables the C
// source uses for chunk sizes 1..5, each chunk is generated from the
// same sigma-enumeration used by xnf/extract_direct.go's recognizer,
// run in the generating direction; see DESIGN.md.
package xnfexpand

// Strategy selects how the previous chunk's auxiliary variable is
// folded into the next chunk's literal list.
type Strategy int

const (
	// Linear places the carried auxiliary first, the way xnf2cnf5.c's
	// LINEAR mode does (`array[0] = var`), the original's default.
	Linear Strategy = iota
	// Pool appends the carried auxiliary last, reusing the oldest
	// freed array slots the way xnf2cnf5.c's POOL mode does.
	Pool
)

// XOR is the subset of an xnf.Constraint that Expand needs: a set of
// positive variable indices and a parity bit. Decoupled from package
// xnf so xnfexpand carries no dependency on the core transform.
type XOR struct {
	Vars   []int
	Parity bool
}

// Expand lowers one XOR into clauses equivalent to its parity
// equation, introducing fresh auxiliary variables starting at nextVar
// as needed, and returns those clauses plus the next unused variable
// index. Panics if x has no variables, mirroring the reference tool's
// refusal to encode an XOR over an empty variable set as anything but
// the degenerate empty-clause case the core already special-cases via
// Store.Inconsistent.
func Expand(x XOR, nextVar int, strategy Strategy) ([][]int, int) {
	if len(x.Vars) == 0 {
		panic("xnfexpand: XOR with no variables")
	}

	vars := append([]int(nil), x.Vars...)
	var clauses [][]int

	for len(vars) > 4 {
		chunk := vars[:4]
		aux := nextVar
		nextVar++
		clauses = append(clauses, directClauses(append(append([]int(nil), chunk...), aux), false)...)

		rest := vars[4:]
		switch strategy {
		case Pool:
			vars = append(append([]int(nil), rest...), aux)
		default:
			vars = append([]int{aux}, rest...)
		}
	}

	clauses = append(clauses, directClauses(vars, x.Parity)...)
	return clauses, nextVar
}

// directClauses generates the 2^(k-1) clauses over vars (treated as
// positive variable indices) whose conjunction is equivalent to
// "sum(vars) ≡ parity (mod 2)". A clause with negation-pattern sigma
// (bit i set means variable i is negated in that clause) excludes
// exactly the assignment x = sigma, so the family must range over
// every sigma whose popcount has the opposite parity of the desired
// satisfying class.
func directClauses(vars []int, parity bool) [][]int {
	k := len(vars)
	var clauses [][]int
	for sigma := 0; sigma < 1<<uint(k); sigma++ {
		odd := popcount(sigma)%2 == 1
		if odd == parity {
			// parity=true wants even sigma, parity=false wants odd.
			continue
		}
		clause := make([]int, k)
		for i, v := range vars {
			if sigma&(1<<uint(i)) != 0 {
				clause[i] = -v
			} else {
				clause[i] = v
			}
		}
		clauses = append(clauses, clause)
	}
	return clauses
}

func popcount(x int) int {
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}
