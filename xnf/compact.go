package xnf

// compact.go implements spec §4.5: dense re-indexing of surviving
// variables (compact mode) or the identity mapping (non-compact mode).
// Grounded on original_source/cnf2xnf/cnf2xnf.c's compact().

// Compact builds s.VarMap and s.Reduced. When compact is false the
// mapping is the identity and Reduced = Vars; when true, only
// variables that still occur in a non-garbage clause or XOR are kept,
// renumbered 1..Reduced in ascending order of old index, and every
// renumbered variable gets an `x -old new 0` extension-stack record.
func (s *Store) Compact(compact bool) {
	s.VarMap = make([]int, 2*s.Vars+1)

	if !compact {
		for v := 1; v <= s.Vars; v++ {
			s.VarMap[s.occIndex(Literal(v))] = v
			s.VarMap[s.occIndex(Literal(-v))] = -v
		}
		s.Reduced = s.Vars
		return
	}

	present := make([]bool, s.Vars+1)
	for _, c := range s.Clauses {
		if c.Garbage {
			continue
		}
		for _, lit := range c.Literals {
			present[lit.Var()] = true
		}
	}
	for _, x := range s.XORs {
		if x.Garbage {
			continue
		}
		for _, lit := range x.Literals {
			present[lit.Var()] = true
		}
	}

	next := 0
	for v := 1; v <= s.Vars; v++ {
		if !present[v] {
			continue
		}
		next++
		s.VarMap[s.occIndex(Literal(v))] = next
		s.VarMap[s.occIndex(Literal(-v))] = -next
		if next != v {
			writeRenameRecord(s.Extension, v, next)
		}
	}
	s.Reduced = next
}

// mapLiteral applies s.VarMap to lit, preserving its sign.
func (s *Store) mapLiteral(lit Literal) Literal {
	return Literal(s.VarMap[s.occIndex(lit)])
}
