package xnf

// transform.go wires the pipeline together: extraction runs direct
// before gate (spec §9 "why two extractors run" — the direct check
// would miss Tseitin-encoded XORs, and running it first means it
// mops up every plain encoding before the gate search has to look),
// elimination and compaction are both optional per the CLI's
// --no-eliminate/--no-compact flags. Parsing happens upstream (in the
// dimacs package); by the time Transform is called s already holds
// every input clause.

// Options controls which optional passes Transform runs.
type Options struct {
	Gates     bool
	Eliminate bool
	Compact   bool
}

// DefaultOptions enables every pass.
func DefaultOptions() Options {
	return Options{Gates: true, Eliminate: true, Compact: true}
}

// Transform runs the full pipeline over s: direct extraction, optional
// gate extraction, optional Gaussian elimination, then compaction
// (always run, in compact or non-compact mode per opts.Compact). The
// store is ready for Emit when Transform returns.
func (s *Store) Transform(opts Options) {
	s.extractDirect()
	if opts.Gates {
		s.extractGate()
	}
	if opts.Eliminate && s.Extracted > 0 {
		s.Eliminate()
	}
	s.Compact(opts.Compact)
}
