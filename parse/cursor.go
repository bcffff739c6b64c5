package parse

// Cursor walks an argument vector. The dispatch loop and command
// callbacks share one cursor, so Shift and Unshift keep the exact
// contract callbacks rely on: shifting at the end-of-vector slot reports
// absence without moving, and unshifting steps the cursor back so the
// loop re-examines that token.
type Cursor struct {
	vec []string
	pos int
}

// NewCursor creates a cursor over vec, positioned at slot 0.
func NewCursor(vec []string) *Cursor {
	return &Cursor{vec: vec}
}

// Reset points the cursor at pos within a new vector.
func (c *Cursor) Reset(vec []string, pos int) {
	c.vec = vec
	c.pos = pos
}

// Args returns the vector the cursor walks.
func (c *Cursor) Args() []string {
	return c.vec
}

// Pos returns the current position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the vector length.
func (c *Cursor) Len() int {
	return len(c.vec)
}

// InBounds reports whether the cursor sits on a real slot.
func (c *Cursor) InBounds() bool {
	return c.pos >= 0 && c.pos < len(c.vec)
}

// Current returns the token under the cursor, or "" past the end.
func (c *Cursor) Current() string {
	if !c.InBounds() {
		return ""
	}
	return c.vec[c.pos]
}

// Advance steps past the current token. When a callback has already
// parked the cursor on the end-of-vector slot, Advance stays put so the
// caller's bounds check sees the end.
func (c *Cursor) Advance() {
	if c.pos < len(c.vec) {
		c.pos++
	}
}

// Take consumes the slot after the current one as an option argument and
// returns it. The second result is false when the vector is exhausted;
// the cursor still moves, matching the dispatch loop's advancement rule.
func (c *Cursor) Take() (string, bool) {
	c.pos++
	if c.pos >= len(c.vec) {
		return "", false
	}
	return c.vec[c.pos], true
}

// Shift returns the token after the current one, advancing the cursor.
// At the end of the vector it reports absence without moving further, so
// repeated calls keep returning absence.
func (c *Cursor) Shift() (string, bool) {
	if c.pos >= len(c.vec) {
		return "", false
	}
	c.pos++
	if c.pos >= len(c.vec) {
		return "", false
	}
	return c.vec[c.pos], true
}

// Unshift steps the cursor back one slot and returns that token. At slot
// 0 it reports absence and stays put.
func (c *Cursor) Unshift() (string, bool) {
	if c.pos <= 0 {
		return "", false
	}
	c.pos--
	return c.vec[c.pos], true
}
