package events

// Channel is an append-only event buffer read through per-consumer cursors.
// Every reader sees each event written after it registered exactly once, in
// write order. Compact drops the prefix all readers have consumed.
type Channel[T any] struct {
	buf     []T
	base    uint64 // absolute position of buf[0]
	readers []*ReaderID
}

// ReaderID is a consumer's read position.
type ReaderID struct {
	pos uint64
}

func NewChannel[T any]() *Channel[T] {
	return &Channel[T]{buf: make([]T, 0, 64)}
}

// Register returns a reader positioned at the current end of the channel.
func (c *Channel[T]) Register() *ReaderID {
	r := &ReaderID{pos: c.end()}
	c.readers = append(c.readers, r)
	return r
}

func (c *Channel[T]) Write(ev T) {
	c.buf = append(c.buf, ev)
}

// Read returns the events the reader has not seen yet and advances it.
// The returned slice is only valid until the next Write or Compact.
func (c *Channel[T]) Read(r *ReaderID) []T {
	end := c.end()
	if r.pos >= end {
		return nil
	}
	out := c.buf[r.pos-c.base:]
	r.pos = end
	return out
}

// Pending reports how many events r has not read.
func (c *Channel[T]) Pending(r *ReaderID) int {
	return int(c.end() - r.pos)
}

// Compact discards events every registered reader has already consumed.
func (c *Channel[T]) Compact() {
	low := c.end()
	for _, r := range c.readers {
		if r.pos < low {
			low = r.pos
		}
	}
	drop := int(low - c.base)
	if drop == 0 {
		return
	}
	n := copy(c.buf, c.buf[drop:])
	var zero T
	for i := n; i < len(c.buf); i++ {
		c.buf[i] = zero
	}
	c.buf = c.buf[:n]
	c.base = low
}

func (c *Channel[T]) Len() int {
	return len(c.buf)
}

func (c *Channel[T]) end() uint64 {
	return c.base + uint64(len(c.buf))
}
