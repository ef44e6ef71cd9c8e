package neobuffer

import "github.com/zokrezyl/neo-buffer/internal/check"

// A Sink is a destination that can be asked for writable capacity and
// told how much of that capacity was actually used. Prepare may grant
// less than asked; an empty grant means the sink has no more room.
// Commit must not exceed the capacity granted by the last Prepare.
type Sink interface {
	Prepare(n int) MutableBuffer
	Commit(n int)
}

// DynamicSink is a growable append-backed Sink. The zero value is
// ready to use. Bytes returns the committed region.
type DynamicSink struct {
	buf       []byte
	committed int
}

// Prepare grows the backing storage as needed and grants n writable
// bytes past the committed region.
func (s *DynamicSink) Prepare(n int) MutableBuffer {
	need := s.committed + n
	if cap(s.buf) < need {
		grown := cap(s.buf) * 2
		if grown < need {
			grown = need
		}
		next := make([]byte, need, grown)
		copy(next, s.buf[:s.committed])
		s.buf = next
	} else {
		s.buf = s.buf[:need]
	}
	return MutableBuffer{s.buf[s.committed:need]}
}

// Commit marks n bytes of previously granted capacity as written.
func (s *DynamicSink) Commit(n int) {
	check.Assert(s.committed+n <= len(s.buf),
		"DynamicSink.Commit(n): n exceeds the granted capacity")
	s.committed += n
}

// Size returns the number of committed bytes.
func (s *DynamicSink) Size() int { return s.committed }

// Bytes returns the committed region. The slice aliases the sink's
// storage and is invalidated by the next Prepare.
func (s *DynamicSink) Bytes() []byte { return s.buf[:s.committed] }

// FixedSink adapts a fixed MutableSequence into a Sink. Prepare grants
// the remainder of the current chunk and Commit advances across chunk
// boundaries; once every chunk is consumed, Prepare grants nothing.
type FixedSink struct {
	it  MutIter
	off int
}

// NewFixedSink returns a Sink writing into dst front to back.
func NewFixedSink(dst MutableSequence) *FixedSink {
	return &FixedSink{it: dst.MutChunks()}
}

// Prepare grants the unwritten remainder of the current chunk,
// regardless of n.
func (s *FixedSink) Prepare(n int) MutableBuffer {
	s.skipConsumed()
	if s.it.AtEnd() {
		return MutableBuffer{}
	}
	return s.it.Buffer().Drop(s.off)
}

// Commit advances the write position by n bytes.
func (s *FixedSink) Commit(n int) {
	for n > 0 {
		s.skipConsumed()
		check.Assert(!s.it.AtEnd(), "FixedSink.Commit(n): n exceeds the granted capacity")
		room := s.it.Buffer().Size() - s.off
		if n < room {
			s.off += n
			return
		}
		n -= room
		s.it.Advance()
		s.off = 0
	}
}

func (s *FixedSink) skipConsumed() {
	for !s.it.AtEnd() && s.off == s.it.Buffer().Size() {
		s.it.Advance()
		s.off = 0
	}
}
