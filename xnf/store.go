package xnf

import "io"

// Store is the constraint store plus per-literal occurrence index
// described in spec §3/§4.1. It owns every Constraint ever allocated;
// constraints are tombstoned (Garbage = true) rather than freed or
// moved, so that scans in progress during extraction/elimination never
// see a dangling reference.
type Store struct {
	// Vars is the number of original variables, V, as declared by the
	// input header.
	Vars int

	// Clauses holds every constraint of kind KindClause, in the order
	// they were added (insertion order governs extraction determinism
	// per spec §4.2/§4.3).
	Clauses []*Constraint

	// XORs holds every constraint of kind KindXOR, populated only by
	// extraction (§4.2, §4.3) and elimination (§4.4).
	XORs []*Constraint

	// occ maps a literal to the unordered collection of constraints
	// that currently contain it (Occ-Sound, spec §3). Indexed via
	// occIndex(lit); occ[occIndex(0)] is unused.
	occ [][]*Constraint

	// mark is scratch space indexed by variable (1..Vars). Every
	// routine that writes to it must restore zeros before returning
	// (spec §3 "Mark array" invariant).
	mark []int8

	// clausal[v] is true iff v occurs in some non-garbage clause.
	// Populated once at the start of Eliminate.
	clausal []bool

	// Kept is the running number of non-garbage original clauses.
	Kept int

	// Extension is the sink for weakened-constraint journal records
	// (spec §6). A nil Extension discards records silently, matching
	// the original tool's behavior when no extension path is given.
	Extension io.Writer

	// Inconsistent is set when Gaussian elimination derives 0 = 1.
	// Per spec §7 this is not an error value.
	Inconsistent bool

	// Counters mirror the reference tool's globals exactly (spec §4.6
	// uses them directly in the header/count formula).
	Extracted    int
	Equivalences int
	Direct       int
	Gates        int
	Eliminated   int
	Substituted  int
	Trivial      int

	// Reduced is populated by Compact: the number of surviving
	// (renumbered) variables.
	Reduced int

	// VarMap maps an old literal to its renumbered literal after
	// Compact; VarMap[occIndex(lit)] follows VarMap[occIndex(-lit)] ==
	// -VarMap[occIndex(lit)].
	VarMap []int
}

// NewStore allocates a Store for a formula over the given number of
// variables. extension may be nil to discard weakened-constraint
// records.
func NewStore(vars int, extension io.Writer) *Store {
	return &Store{
		Vars:      vars,
		occ:       make([][]*Constraint, 2*vars+1),
		mark:      make([]int8, vars+1),
		clausal:   make([]bool, vars+1),
		Extension: extension,
	}
}

// occIndex maps a literal in [-Vars, Vars] \ {0} to a slice index in
// [0, 2*Vars].
func (s *Store) occIndex(lit Literal) int {
	return int(lit) + s.Vars
}

func (s *Store) occOf(lit Literal) []*Constraint {
	return s.occ[s.occIndex(lit)]
}

// AddClause allocates a new clause, connects it to the occurrence
// index, and appends it to Clauses. This is the constructor used while
// parsing the input formula.
func (s *Store) AddClause(lits []Literal) *Constraint {
	c := newClause(lits)
	s.connect(c)
	s.Clauses = append(s.Clauses, c)
	s.Kept++
	return c
}

// addXOR allocates a new XOR constraint and appends it to XORs. Unlike
// AddClause, it does not connect the constraint to the occurrence
// index by default: direct/gate extraction produce XORs that replace
// garbage clauses and are only indexed later, during Eliminate's own
// occurrence rebuild (spec §4.4 "Preparation"). Elimination's
// substitute step passes connect=true because its new XOR must be
// immediately visible to later iterations of the same pass.
func (s *Store) addXOR(parity bool, lits []Literal, connect bool) *Constraint {
	x := newXOR(parity, lits)
	s.XORs = append(s.XORs, x)
	if connect {
		s.connect(x)
	}
	return x
}

// connect pushes c onto occ[lit] for every literal of c, preserving
// Occ-Sound.
func (s *Store) connect(c *Constraint) {
	for _, lit := range c.Literals {
		i := s.occIndex(lit)
		s.occ[i] = append(s.occ[i], c)
	}
}

// connectByVar pushes c onto the occurrence index keyed by unsigned
// variable index rather than literal. Used only by Eliminate, whose
// XOR-only occurrence index is unsigned (spec "Unsigned-variable XOR
// occurrences" design note) since XOR literals are always positive.
func (s *Store) connectByVar(c *Constraint, v int) {
	i := s.occIndex(Literal(v))
	s.occ[i] = append(s.occ[i], c)
}

// disconnect removes c from occ[lit] for every literal of c except the
// literal `except` (0 to remove from every list). Removal is by value
// and linear in the length of the occurrence list, which spec §4.1
// explicitly accepts as fine given per-literal lists are small.
func (s *Store) disconnect(c *Constraint, except Literal) {
	for _, lit := range c.Literals {
		if lit == except {
			continue
		}
		s.removeFromOcc(lit, c)
	}
}

func (s *Store) removeFromOcc(lit Literal, c *Constraint) {
	i := s.occIndex(lit)
	list := s.occ[i]
	for j, d := range list {
		if d == c {
			list[j] = list[len(list)-1]
			s.occ[i] = list[:len(list)-1]
			return
		}
	}
}

// markGarbage tombstones c. For clauses, Kept is decremented; XORs do
// not participate in Kept (spec §3 Lifecycle).
func (s *Store) markGarbage(c *Constraint) {
	c.Garbage = true
	if c.IsXOR() {
		return
	}
	s.Kept--
}

// makePivotFirst moves pivot to the front of c's literal list in
// place by swapping it with the literal currently at the front; the
// other literals keep their positions. This is what lets the extension-stack reader treat "first
// literal" as the contract for which variable a weakened constraint
// defines (spec §4.1, §9).
func makePivotFirst(c *Constraint, pivot Literal) {
	lits := c.Literals
	for i, l := range lits {
		if l == pivot {
			if i != 0 {
				lits[i] = lits[0]
				lits[0] = pivot
			}
			return
		}
	}
}

// weaken tombstones c and, if an Extension sink is configured, appends
// a journal record. The caller must have already arranged for the
// pivot literal to be first in c.Literals (see makePivotFirst) —
// weaken only serializes, it does not choose the pivot.
func (s *Store) weaken(c *Constraint) {
	s.markGarbage(c)
	writeJournalRecord(s.Extension, c)
}
