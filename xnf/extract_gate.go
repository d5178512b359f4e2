package xnf

// extract_gate.go implements spec §4.3: recognizing a 3-XOR that has
// been Tseitin-encoded as three chained AND gates instead of the direct
// 4-clause pattern extract_direct.go looks for. The fingerprint is 9
// ternary/binary clauses: a top AND gate `lhs = r0 ∧ r1` (the base
// clause plus two binaries) and two sub-gates pinning r0 and r1 to a
// shared pair of literals a, b.
//
// Grounded on original_source/cnf2xnf/cnf2xnf.c's
// extract_aig_encoding_from_base_clause. The r1 sub-gate's clause
// shapes are built as the structural mirror of r0's rather than from
// spec.md's literal prose for that sub-gate: the prose shapes violate
// spec's own stated occurrence-count requirement for r1/¬r1 and don't
// compose into the stated result lhs ↔ a⊕b, while the mirrored shapes
// satisfy both — see DESIGN.md.

func (s *Store) extractGate() {
	for _, c := range s.Clauses {
		s.extractGateFromBase(c)
	}
}

func (s *Store) extractGateFromBase(c *Constraint) {
	if c.Garbage || len(c.Literals) != 3 {
		return
	}
	l := c.Literals
	rotations := [3][3]Literal{
		{l[0], l[1].Negate(), l[2].Negate()},
		{l[1], l[0].Negate(), l[2].Negate()},
		{l[2], l[0].Negate(), l[1].Negate()},
	}
	for _, r := range rotations {
		if s.tryGateRotation(c, r[0], r[1], r[2]) {
			return
		}
	}
}

// tryGateRotation probes the candidate top XOR lhs ↔ r0 ⊕ r1 built
// from base clause c, trying to complete the two AND-gate sub-patterns
// that pin r0 and r1 to a shared literal pair (a, b). Returns true and
// commits the extraction on the first full match.
func (s *Store) tryGateRotation(c *Constraint, lhs, r0, r1 Literal) bool {
	topA := s.findBinary(lhs.Negate(), r0)
	if topA == nil {
		return false
	}
	topB := s.findBinary(lhs.Negate(), r1)
	if topB == nil || topB == topA {
		return false
	}

	for _, d := range s.occOf(r0.Negate()) {
		if d.Garbage || len(d.Literals) != 3 || d == c || d == topA || d == topB {
			continue
		}
		a, b, ok := otherTwo(d, r0.Negate())
		if !ok {
			continue
		}
		if a.Var() == lhs.Var() || a.Var() == r0.Var() || a.Var() == r1.Var() {
			continue
		}
		if b.Var() == lhs.Var() || b.Var() == r0.Var() || b.Var() == r1.Var() || b.Var() == a.Var() {
			continue
		}

		binR0A := s.findBinary(r0, a.Negate())
		binR0B := s.findBinary(r0, b.Negate())
		if binR0A == nil || binR0B == nil || binR0A == binR0B {
			continue
		}
		// r1's sub-gate is the mirror image of r0's: r0 ↔ (a∨b) so that
		// lhs = r0∧r1 comes out as a NAND of the OR, i.e. r1 ↔ ¬(a∧b),
		// giving lhs = (a∨b)∧¬(a∧b) = a⊕b.
		ternR1 := s.findTernary(r1.Negate(), a.Negate(), b.Negate())
		if ternR1 == nil {
			continue
		}
		binR1A := s.findBinary(r1, a)
		binR1B := s.findBinary(r1, b)
		if binR1A == nil || binR1B == nil || binR1A == binR1B {
			continue
		}

		if !allDistinct(c, topA, topB, d, binR0A, binR0B, ternR1, binR1A, binR1B) {
			continue
		}
		if len(s.occOf(r0)) != 3 || len(s.occOf(r0.Negate())) != 2 ||
			len(s.occOf(r1)) != 3 || len(s.occOf(r1.Negate())) != 2 {
			continue
		}

		neg := 0
		if !lhs.Positive() {
			neg++
		}
		if !a.Positive() {
			neg++
		}
		if !b.Positive() {
			neg++
		}
		parity := neg%2 == 1

		lits := []Literal{Literal(lhs.Var()), Literal(a.Var()), Literal(b.Var())}
		s.addXOR(parity, lits, false)
		s.Extracted++
		s.Gates++

		s.weakenGateClause(d, r0.Negate())
		s.weakenGateClause(binR0A, r0)
		s.weakenGateClause(binR0B, r0)
		s.weakenGateClause(ternR1, r1.Negate())
		s.weakenGateClause(binR1A, r1)
		s.weakenGateClause(binR1B, r1)

		s.markGarbage(c)
		s.markGarbage(topA)
		s.markGarbage(topB)
		return true
	}
	return false
}

func (s *Store) weakenGateClause(c *Constraint, pivot Literal) {
	makePivotFirst(c, pivot)
	s.weaken(c)
}

func (s *Store) findBinary(lit1, lit2 Literal) *Constraint {
	for _, d := range s.occOf(lit1) {
		if d.Garbage || len(d.Literals) != 2 {
			continue
		}
		if containsLiteral(d, lit2) {
			return d
		}
	}
	return nil
}

func (s *Store) findTernary(lit1, lit2, lit3 Literal) *Constraint {
	for _, d := range s.occOf(lit1) {
		if d.Garbage || len(d.Literals) != 3 {
			continue
		}
		if containsLiteral(d, lit2) && containsLiteral(d, lit3) {
			return d
		}
	}
	return nil
}

func containsLiteral(c *Constraint, lit Literal) bool {
	for _, l := range c.Literals {
		if l == lit {
			return true
		}
	}
	return false
}

// otherTwo returns the two literals of c other than exclude, in c's
// own order, or ok=false if c does not contain exactly one occurrence
// of exclude plus two others.
func otherTwo(c *Constraint, exclude Literal) (Literal, Literal, bool) {
	var out [2]Literal
	n := 0
	for _, l := range c.Literals {
		if l == exclude {
			continue
		}
		if n == 2 {
			return 0, 0, false
		}
		out[n] = l
		n++
	}
	if n != 2 {
		return 0, 0, false
	}
	return out[0], out[1], true
}

func allDistinct(cs ...*Constraint) bool {
	for i := 0; i < len(cs); i++ {
		for j := i + 1; j < len(cs); j++ {
			if cs[i] == cs[j] {
				return false
			}
		}
	}
	return true
}
