package xnf

import (
	"bufio"
	"fmt"
	"io"
)

// emit.go implements spec §4.6: the output header and body format.
// Grounded on original_source/cnf2xnf/cnf2xnf.c's header()/write().
// Compact must have already been run so s.VarMap/s.Reduced are
// populated; callers that skip compaction should call Compact(false)
// first to get the identity mapping.

// Emit writes the transformed formula to w. Emit does not buffer: it
// issues a separate Write for the header, for each literal, and for
// each line's "x " prefix and "0" terminator. EmitBuffered wraps w in a
// bufio.Writer.
func (s *Store) Emit(w io.Writer) error {
	if s.Inconsistent {
		_, err := io.WriteString(w, "p cnf 0 1\n0\n")
		return err
	}

	dialect := "cnf"
	if s.Extracted > 0 {
		dialect = "xnf"
	}
	m := s.Kept + s.Extracted - s.Substituted - s.Trivial
	if _, err := fmt.Fprintf(w, "p %s %d %d\n", dialect, s.Reduced, m); err != nil {
		return err
	}

	for _, c := range s.Clauses {
		if c.Garbage {
			continue
		}
		if err := s.emitClause(w, c); err != nil {
			return err
		}
	}
	for _, x := range s.XORs {
		if x.Garbage {
			continue
		}
		if err := s.emitXOR(w, x); err != nil {
			return err
		}
	}
	return nil
}

// EmitBuffered wraps w in a bufio.Writer and flushes after Emit
// completes. This is the entry point dimacs/writer.go uses for files.
func (s *Store) EmitBuffered(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := s.Emit(bw); err != nil {
		return err
	}
	return bw.Flush()
}

func (s *Store) emitClause(w io.Writer, c *Constraint) error {
	for _, lit := range c.Literals {
		if _, err := fmt.Fprintf(w, "%d ", int(s.mapLiteral(lit))); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "0\n")
	return err
}

// emitXOR writes an `x`-prefixed line. A parity-0 XOR carries its
// parity as a leading `-` on the first (mapped, still-positive-valued)
// literal; every other literal is emitted positive (spec §4.6, §6).
func (s *Store) emitXOR(w io.Writer, x *Constraint) error {
	if _, err := io.WriteString(w, "x "); err != nil {
		return err
	}
	for i, lit := range x.Literals {
		v := int(s.mapLiteral(lit))
		if i == 0 && !x.Parity {
			v = -v
		}
		if _, err := fmt.Fprintf(w, "%d ", v); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "0\n")
	return err
}
