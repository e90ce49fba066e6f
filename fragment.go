package picocog

// fragment is one committed unit of render-ready content: a literal line
// recorded at a fixed indentation level, or a nested writer whose output is
// spliced in at its reserved position. The unexported marker method keeps
// the set closed, so rendering can match both cases exhaustively.
type fragment interface {
	isFragment()
}

// line is a committed literal line. Its indentation level is the level the
// owning writer had when the line flushed, not the level at render time.
type line struct {
	text   string
	indent int
}

func (line) isFragment() {}

func (*Writer) isFragment() {}
