package xnf

// extract_direct.go implements spec §4.2: recognizing a parity
// constraint of size k expressed as the 2^(k-1) clauses obtained by
// taking every sign assignment of the complementary parity, and
// replacing that group with one XOR constraint.
//
// Ported line-for-line from original_source/cnf2xnf/cnf2xnf.c's
// extract_direct_encoding_from_base_clause, including its one quirk
// (spec §9 "Open question"): the per-literal scan rejects a candidate
// base clause as soon as it sees a *second* positive literal, which in
// effect restricts acceptable base clauses to those with at most one
// positive literal. This is preserved rather than fixed — see
// DESIGN.md and the regression test in extract_direct_test.go.

func popcountUint(x uint) int {
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}

func parityOfWord(signs uint) bool {
	return popcountUint(signs)&1 == 1
}

// extractDirect runs direct-encoding XOR extraction over every clause
// present at the start of the pass, in insertion order. New clauses
// are never added during this pass, so iterating the original slice
// is safe even though entries are tombstoned as we go.
func (s *Store) extractDirect() {
	for _, c := range s.Clauses {
		s.extractDirectFromBase(c)
	}
}

func (s *Store) extractDirectFromBase(c *Constraint) {
	if c.Garbage {
		return
	}
	size := len(c.Literals)
	if size < 2 || size > 29 {
		return
	}

	required := 1 << (size - 2)
	failed := false
	positive := 0
	vars := make([]int, 0, size)

	for _, lit := range c.Literals {
		if positive > 0 && lit.Positive() {
			// The quirk: a second positive literal always fails the
			// match, regardless of where it falls in the clause.
			failed = true
		} else {
			idx := lit.Var()
			switch {
			case s.mark[idx] != 0:
				failed = true
			case len(s.occOf(lit)) < required:
				failed = true
			case len(s.occOf(lit.Negate())) < required:
				failed = true
			default:
				vars = append(vars, idx)
				s.mark[idx] = 1
				if lit.Positive() {
					positive++
				}
			}
		}
		if failed {
			break
		}
	}

	var collected []*Constraint
	if !failed {
		wantParity := positive != 0
		signs := uint(positive)
		for {
			bit := uint(1)
			minLit := Literal(0)
			minOccs := int(^uint(0) >> 1)
			for _, idx := range vars {
				sign := 1
				if signs&bit == 0 {
					sign = -1
				}
				lit := Literal(sign * idx)
				n := len(s.occOf(lit))
				if n < minOccs {
					minLit = lit
					minOccs = n
				}
				s.mark[idx] = int8(sign)
				bit <<= 1
			}

			found := false
			for _, d := range s.occOf(minLit) {
				if len(d.Literals) != size {
					continue
				}
				found = true
				for _, lit := range d.Literals {
					idx := lit.Var()
					tmp := s.mark[idx]
					if tmp == 0 || (tmp > 0) != lit.Positive() {
						found = false
						break
					}
				}
				if found {
					collected = append(collected, d)
					break
				}
			}
			if !found {
				failed = true
				break
			}

			for {
				signs++
				if parityOfWord(signs) == wantParity {
					break
				}
			}
			if signs >= uint(1)<<uint(size) {
				break
			}
		}
	}

	if !failed {
		// original_source/cnf2xnf/cnf2xnf.c: `!positive ^ (size & 1)`,
		// with `positive` there used as a boolean (nonzero count). The
		// quirk above caps our positive count at 0 or 1, so the two
		// forms agree: size+positive even iff (positive==0)==sizeEven.
		parity := (size+positive)%2 == 0
		lits := make([]Literal, len(vars))
		for i, idx := range vars {
			lits[i] = Literal(idx)
		}
		s.addXOR(parity, lits, false)
		s.Extracted++
		if size == 2 {
			s.Equivalences++
		}
		s.Direct++
		for _, d := range collected {
			if !d.Garbage {
				s.markGarbage(d)
			}
		}
	}

	for _, idx := range vars {
		s.mark[idx] = 0
	}
}
