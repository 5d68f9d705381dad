package runeprop

import "unicode/utf8"

// Graphemes iterates over the extended grapheme clusters of a string. Each
// cluster is exposed as a substring of the original text; no copies are made.
// The iterator is consumed once; create a new one to iterate again.
//
// Independent iterators may run concurrently, but a single Graphemes value
// must not be shared between goroutines without synchronization.
type Graphemes struct {
	str     string
	pos     int // byte offset of the first unconsumed code point
	cluster string
}

// NewGraphemes returns an iterator over the extended grapheme clusters of the
// given string.
func NewGraphemes(str string) *Graphemes {
	return &Graphemes{str: str}
}

// Next advances to the next grapheme cluster. It returns false when the text
// is exhausted.
func (g *Graphemes) Next() bool {
	if g.pos >= len(g.str) {
		g.cluster = ""
		return false
	}
	start := g.pos
	var machine clusterMachine
	for g.pos < len(g.str) {
		r, length := utf8.DecodeRuneInString(g.str[g.pos:])
		switch machine.next(r) {
		case noBoundary:
			g.pos += length
		case boundaryBefore:
			g.cluster = g.str[start:g.pos]
			return true
		case boundaryAfter:
			g.pos += length
			g.cluster = g.str[start:g.pos]
			return true
		}
	}
	// Input ended mid-cluster; everything consumed so far is the cluster.
	g.cluster = g.str[start:]
	return true
}

// Str returns the current grapheme cluster as a substring of the original
// text. It is only valid after a call to Next that returned true.
func (g *Graphemes) Str() string {
	return g.cluster
}

// A RuneCursor is a minimal peekable stream of code points. Peek reports the
// next code point without consuming it, with ok false at the end of the
// stream; Advance consumes exactly one code point.
//
// The cursor is owned by the caller, which may consume from it between
// NextCluster calls. Interleaving is only safe at cluster boundaries.
type RuneCursor interface {
	Peek() (r rune, ok bool)
	Advance()
}

// NextCluster reads one extended grapheme cluster from the cursor and returns
// it as an owned string. It returns ok false if the cursor is exhausted.
//
// A fresh machine is used per call, so NextCluster produces the same cluster
// boundaries as a Graphemes iterator over the same text.
func NextCluster(c RuneCursor) (cluster string, ok bool) {
	if _, ok := c.Peek(); !ok {
		return "", false
	}
	var machine clusterMachine
	var b []byte
	for {
		r, ok := c.Peek()
		if !ok {
			return string(b), true
		}
		switch machine.next(r) {
		case noBoundary:
			b = utf8.AppendRune(b, r)
			c.Advance()
		case boundaryBefore:
			return string(b), true
		case boundaryAfter:
			b = utf8.AppendRune(b, r)
			c.Advance()
			return string(b), true
		}
	}
}

// A StringCursor is a RuneCursor over a string.
type StringCursor struct {
	str string
	pos int
}

// NewStringCursor returns a cursor positioned at the start of the string.
func NewStringCursor(str string) *StringCursor {
	return &StringCursor{str: str}
}

// Peek returns the code point at the cursor without consuming it.
func (c *StringCursor) Peek() (rune, bool) {
	if c.pos >= len(c.str) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.str[c.pos:])
	return r, true
}

// Advance consumes one code point.
func (c *StringCursor) Advance() {
	if c.pos < len(c.str) {
		_, length := utf8.DecodeRuneInString(c.str[c.pos:])
		c.pos += length
	}
}
