package productfeed

// Cursor tracks the next page to request and whether more pages may exist.
// The page only moves forward and exhaustion is one-way.
type Cursor struct {
	next      int
	exhausted bool
}

// NewCursor returns a cursor positioned at the first page
func NewCursor() Cursor {
	return Cursor{next: 1}
}

// Next returns the page number to request next
func (c *Cursor) Next() int {
	return c.next
}

// HasMore reports whether more pages may exist
func (c *Cursor) HasMore() bool {
	return !c.exhausted
}

// Advance moves to the following page
func (c *Cursor) Advance() {
	c.next++
}

// Exhaust marks the listing as complete
func (c *Cursor) Exhaust() {
	c.exhausted = true
}
