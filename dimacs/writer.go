package dimacs

import (
	"io"

	"github.com/xDarkicex/cnfxnf/xnf"
)

// Write emits s's transformed formula to w, buffering internally via
// xnf.Store.EmitBuffered. Compression, if any, is the caller's
// responsibility via OpenOutput — Write itself only knows how to
// format, not how to pipe.
func Write(w io.Writer, s *xnf.Store) error {
	return s.EmitBuffered(w)
}
