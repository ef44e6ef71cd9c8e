package neobuffer

import "github.com/zokrezyl/neo-buffer/internal/check"

// IOBuffer is a growable byte region split into a read area and a
// write area. Writers obtain capacity with Prepare and publish it with
// Commit, which moves the bytes into the read area; readers view the
// read area with Next and discard with Consume. IOBuffer implements
// both Sink and Source, so it can sit between a driven transform and a
// pull-based consumer.
type IOBuffer struct {
	data    []byte // read area is data[readPos:readEnd]; the rest is write area
	readPos int
	readEnd int
}

// Prepare grants n writable bytes past the read area, growing the
// backing storage as needed. A second Prepare before Commit regrants
// the write area.
func (b *IOBuffer) Prepare(n int) MutableBuffer {
	need := b.readEnd + n
	if cap(b.data) < need {
		grown := cap(b.data) * 2
		if grown < need {
			grown = need
		}
		next := make([]byte, need, grown)
		copy(next, b.data[:b.readEnd])
		b.data = next
	} else {
		b.data = b.data[:need]
	}
	return MutableBuffer{b.data[b.readEnd:need]}
}

// Commit moves n bytes of previously granted capacity into the read
// area.
func (b *IOBuffer) Commit(n int) {
	check.Assert(b.readEnd+n <= len(b.data),
		"IOBuffer.Commit(n): n exceeds the granted capacity")
	b.readEnd += n
}

// Next returns a view of up to n bytes of the read area without
// consuming them.
func (b *IOBuffer) Next(n int) Buffer {
	avail := b.readEnd - b.readPos
	if n > avail {
		n = avail
	}
	return Buffer{b.data[b.readPos : b.readPos+n]}
}

// Data returns the read area as a sequence, clamped to n bytes.
func (b *IOBuffer) Data(n int) Buffers {
	area := b.Next(n)
	if area.Empty() {
		return nil
	}
	return Buffers{area}
}

// Consume discards n bytes from the front of the read area.
func (b *IOBuffer) Consume(n int) {
	check.Assert(n <= b.readEnd-b.readPos,
		"IOBuffer.Consume(n): n exceeds the read area")
	b.readPos += n
	if b.readPos == b.readEnd && b.readEnd == len(b.data) {
		b.readPos = 0
		b.readEnd = 0
		b.data = b.data[:0]
	}
}

// Empty reports whether the read area is empty.
func (b *IOBuffer) Empty() bool { return b.readPos == b.readEnd }

// Size returns the number of readable bytes.
func (b *IOBuffer) Size() int { return b.readEnd - b.readPos }
