package neobuffer

import "github.com/zokrezyl/neo-buffer/internal/check"

// A Source is a pull-based provider of bytes. Data returns views of up
// to n available bytes (possibly fewer, possibly across several
// chunks) without consuming them; Consume advances past bytes
// previously returned by Data. Consuming more than is currently
// available is a programmer error.
type Source interface {
	Data(n int) Buffers
	Consume(n int)
}

// emptier is the optional probe a Source may implement; generic code
// treats a Source without it as never known-empty.
type emptier interface {
	Empty() bool
}

// KnownEmpty reports whether s is known to be out of data. A Source
// that does not implement Empty is assumed non-empty.
func KnownEmpty(s Source) bool {
	if e, ok := s.(emptier); ok {
		return e.Empty()
	}
	return false
}

// BufferSource adapts a ConstSequence into a Source: Data re-chunks
// the unconsumed remainder and Consume advances across chunk
// boundaries.
type BufferSource struct {
	chunks []Buffer
	off    int // within chunks[0]
}

// NewBufferSource returns a Source reading seq front to back.
func NewBufferSource(seq ConstSequence) *BufferSource {
	var chunks []Buffer
	for it := seq.Chunks(); !it.AtEnd(); it.Advance() {
		if b := it.Buffer(); !b.Empty() {
			chunks = append(chunks, b)
		}
	}
	return &BufferSource{chunks: chunks}
}

// Available returns the number of unconsumed bytes.
func (s *BufferSource) Available() int {
	total := -s.off
	for _, c := range s.chunks {
		total += c.Size()
	}
	return total
}

// Empty reports whether every byte has been consumed.
func (s *BufferSource) Empty() bool { return len(s.chunks) == 0 }

// Data returns views over up to n unconsumed bytes, in order.
func (s *BufferSource) Data(n int) Buffers {
	var out Buffers
	off := s.off
	for _, c := range s.chunks {
		if n <= 0 {
			break
		}
		rest := c.Drop(off)
		off = 0
		if rest.Size() > n {
			rest = rest.First(n)
		}
		out = append(out, rest)
		n -= rest.Size()
	}
	return out
}

// Consume advances past n bytes previously returned by Data.
func (s *BufferSource) Consume(n int) {
	check.Assert(n <= s.Available(), "BufferSource.Consume(n): n exceeds the available bytes")
	for n > 0 {
		rest := s.chunks[0].Size() - s.off
		if n < rest {
			s.off += n
			return
		}
		n -= rest
		s.chunks = s.chunks[1:]
		s.off = 0
	}
}
