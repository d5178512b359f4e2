// Package dimacs implements the transformer's external I/O: reading
// DIMACS CNF text into a *xnf.Store, writing the transformed formula
// back out, and transparent (de)compression by piping through
// gzip/bzip2/xz. Spec §6 places all of this outside the core's scope
// ("straightforward I/O and glue"); it is grounded on
// original_source/cnf2xnf/cnf2xnf.c's parse()/write()/read_pipe()/
// write_pipe().
package dimacs

import (
	"bufio"
	"io"
	"math"

	"github.com/xDarkicex/cnfxnf/core"
	"github.com/xDarkicex/cnfxnf/xnf"
)

// Parse reads DIMACS CNF text from r and builds a *xnf.Store over it.
// extension is passed straight through to xnf.NewStore as the journal
// sink. Leading comment lines (starting with 'c') are skipped before
// the header; comments after the header are not supported, matching
// the reference parser.
func Parse(r io.Reader, extension io.Writer) (*xnf.Store, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	if err := skipComments(br); err != nil {
		return nil, err
	}

	vars, count, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	store := xnf.NewStore(vars, extension)

	var lits []xnf.Literal
	parsed := 0
	for {
		lit, ok, err := nextInt(br)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if lit == math.MinInt32 || abs(lit) > vars {
			return nil, core.NewParseError("literal", 0, "invalid literal '%d'", lit)
		}
		if parsed == count {
			return nil, core.NewParseError("body", 0, "too many clauses")
		}
		if lit != 0 {
			lits = append(lits, xnf.Literal(lit))
			continue
		}
		store.AddClause(lits)
		lits = nil
		parsed++
	}

	if len(lits) != 0 {
		return nil, core.NewParseError("body", 0, "zero missing")
	}
	if parsed != count {
		return nil, core.NewParseError("body", 0, "clause missing")
	}

	return store, nil
}

func skipComments(br *bufio.Reader) error {
	for {
		b, err := br.Peek(1)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return core.NewParseError("header", 0, "%v", err)
		}
		if b[0] != 'c' {
			return nil
		}
		if _, err := br.ReadString('\n'); err != nil {
			if err == io.EOF {
				return nil
			}
			return core.NewParseError("header", 0, "unexpected end-of-file")
		}
	}
}

func readHeader(br *bufio.Reader) (vars, count int, err error) {
	if err := skipSpace(br); err != nil {
		return 0, 0, err
	}
	tok, err := readToken(br)
	if err != nil || tok != "p" {
		return 0, 0, core.NewParseError("header", 0, "invalid header")
	}
	tok, err = readToken(br)
	if err != nil || tok != "cnf" {
		return 0, 0, core.NewParseError("header", 0, "invalid header")
	}
	vars, ok1, err := nextInt(br)
	if err != nil || !ok1 {
		return 0, 0, core.NewParseError("header", 0, "invalid header")
	}
	count, ok2, err := nextInt(br)
	if err != nil || !ok2 {
		return 0, 0, core.NewParseError("header", 0, "invalid header")
	}
	if vars < 0 || vars == math.MaxInt32 || count < 0 {
		return 0, 0, core.NewParseError("header", 0, "invalid header")
	}
	return vars, count, nil
}

func skipSpace(br *bufio.Reader) error {
	for {
		b, err := br.Peek(1)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if !isSpace(b[0]) {
			return nil
		}
		_, _ = br.ReadByte()
	}
}

func readToken(br *bufio.Reader) (string, error) {
	if err := skipSpace(br); err != nil {
		return "", err
	}
	var buf []byte
	for {
		b, err := br.Peek(1)
		if err != nil {
			break
		}
		if isSpace(b[0]) {
			break
		}
		buf = append(buf, b[0])
		_, _ = br.ReadByte()
	}
	return string(buf), nil
}

// nextInt reads the next whitespace-delimited signed integer token.
// ok is false only at clean EOF (no more tokens).
func nextInt(br *bufio.Reader) (value int, ok bool, err error) {
	if err := skipSpace(br); err != nil {
		return 0, false, err
	}
	if _, err := br.Peek(1); err != nil {
		return 0, false, nil
	}

	neg := false
	b, _ := br.Peek(1)
	if b[0] == '-' {
		neg = true
		_, _ = br.ReadByte()
	} else if b[0] == '+' {
		_, _ = br.ReadByte()
	}

	digits := 0
	for {
		b, err := br.Peek(1)
		if err != nil || b[0] < '0' || b[0] > '9' {
			break
		}
		value = value*10 + int(b[0]-'0')
		digits++
		_, _ = br.ReadByte()
	}
	if digits == 0 {
		return 0, false, core.NewParseError("body", 0, "expected integer")
	}
	if neg {
		value = -value
	}
	return value, true, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
