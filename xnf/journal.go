package xnf

import (
	"fmt"
	"io"
)

// writeJournalRecord appends one extension-stack line for a weakened
// constraint (spec §6). Writer errors are intentionally swallowed: the
// extension stack is an optional side channel and a write failure there
// must not abort a transform that has already committed to tombstoning
// c — the original tool has the same one-way behavior (it calls fprintf
// without checking its return value for this file).
func writeJournalRecord(w io.Writer, c *Constraint) {
	if w == nil {
		return
	}
	var buf []byte
	if c.IsXOR() {
		buf = append(buf, 'x', ' ')
		if !c.Parity {
			buf = append(buf, '-')
		}
	} else {
		buf = append(buf, 'o', ' ')
	}
	for _, lit := range c.Literals {
		buf = fmt.Appendf(buf, "%d ", int(lit))
	}
	buf = append(buf, '0', '\n')
	_, _ = w.Write(buf)
}

// writeRenameRecord appends an `x -old new 0` record equating an
// original variable index with its compacted replacement (spec §4.5,
// §6 "Compaction additionally writes...").
func writeRenameRecord(w io.Writer, oldVar, newVar int) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "x -%d %d 0\n", oldVar, newVar)
}
