package xnf

import "sort"

// eliminate.go implements spec §4.4: Gaussian-style elimination of
// variables that occur only inside XOR constraints. Grounded on
// original_source/cnf2xnf/cnf2xnf.c's eliminate()/eliminate_variable()/
// substitute().

// Eliminate runs the elimination pass. It is a no-op if the store is
// already Inconsistent (e.g. a prior call derived 0 = 1).
func (s *Store) Eliminate() {
	if s.Inconsistent {
		return
	}

	for i := range s.occ {
		s.occ[i] = nil
	}
	for i := range s.clausal {
		s.clausal[i] = false
	}

	for _, c := range s.Clauses {
		if c.Garbage {
			continue
		}
		for _, lit := range c.Literals {
			s.clausal[lit.Var()] = true
		}
	}

	for _, x := range s.XORs {
		if x.Garbage {
			continue
		}
		for _, lit := range x.Literals {
			s.connectByVar(x, lit.Var())
		}
	}

	schedule := make([]int, 0, s.Vars)
	for v := 1; v <= s.Vars; v++ {
		if !s.clausal[v] && len(s.occOf(Literal(v))) > 0 {
			schedule = append(schedule, v)
		}
	}
	// Descending occurrence count so the smallest counts sit at the end
	// of the slice; the driver pops from the end to process the
	// fewest-occurrence pivot first (spec §4.4 "Schedule order").
	sort.SliceStable(schedule, func(i, j int) bool {
		oi := len(s.occOf(Literal(schedule[i])))
		oj := len(s.occOf(Literal(schedule[j])))
		if oi != oj {
			return oi > oj
		}
		return schedule[i] < schedule[j]
	})

	for len(schedule) > 0 {
		v := schedule[len(schedule)-1]
		schedule = schedule[:len(schedule)-1]
		s.eliminateVariable(v)
		if s.Inconsistent {
			return
		}
	}
}

func (s *Store) eliminateVariable(v int) {
	lit := Literal(v)
	occs := append([]*Constraint(nil), s.occOf(lit)...)
	if len(occs) == 0 {
		return
	}

	pivotIdx := 0
	for i := 1; i < len(occs); i++ {
		if len(occs[i].Literals) < len(occs[pivotIdx].Literals) {
			pivotIdx = i
		}
	}
	pivot := occs[pivotIdx]

	for i, d := range occs {
		if i == pivotIdx {
			continue
		}
		merged, parity := s.symmetricDifference(pivot, d)
		if len(merged) == 0 {
			if parity {
				s.Inconsistent = true
				return
			}
			s.Trivial++
		} else {
			s.addXOR(parity, merged, true)
		}

		s.disconnect(d, lit)
		makePivotFirst(d, lit)
		s.weaken(d)
	}

	s.disconnect(pivot, lit)
	makePivotFirst(pivot, lit)
	s.weaken(pivot)
	s.Substituted++
	s.Eliminated++

	s.occ[s.occIndex(lit)] = nil
}

// symmetricDifference computes the variable-set symmetric difference
// of two XORs' literal lists (all positive, by invariant) and the
// resulting parity. Reuses the mark array as an ad hoc set, per spec
// §9's "mark-array discipline" note: every variable it touches is
// restored to zero before returning.
func (s *Store) symmetricDifference(p, d *Constraint) ([]Literal, bool) {
	touched := make([]int, 0, len(p.Literals)+len(d.Literals))
	for _, lit := range p.Literals {
		idx := lit.Var()
		s.mark[idx] = 1
		touched = append(touched, idx)
	}
	for _, lit := range d.Literals {
		idx := lit.Var()
		if s.mark[idx] == 0 {
			touched = append(touched, idx)
		}
		s.mark[idx] ^= 1
	}

	var merged []Literal
	for _, idx := range touched {
		if s.mark[idx] == 1 {
			merged = append(merged, Literal(idx))
		}
	}
	for _, idx := range touched {
		s.mark[idx] = 0
	}

	return merged, p.Parity != d.Parity
}
