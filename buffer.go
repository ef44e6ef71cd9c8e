// Package neobuffer provides non-owning views over contiguous byte
// regions, sequences of such views, and allocation-free algorithms that
// copy or transform bytes across them. Views never own the memory they
// describe; the referenced storage must outlive every view derived from
// it.
package neobuffer

import (
	"unsafe"

	"github.com/zokrezyl/neo-buffer/internal/check"
)

// Buffer is a read-only view over a contiguous byte region. It is a
// trivially copyable value; copying a Buffer never copies the bytes.
type Buffer struct {
	b []byte
}

// MutableBuffer is a writable view over a contiguous byte region. A
// MutableBuffer is usable anywhere a Buffer is expected via Const; the
// reverse widening does not exist.
type MutableBuffer struct {
	b []byte
}

// Size returns the number of bytes in the view.
func (b Buffer) Size() int { return len(b.b) }

// Empty reports whether the view has size zero.
func (b Buffer) Empty() bool { return len(b.b) == 0 }

// Byte returns the i-th byte. i must be less than Size.
func (b Buffer) Byte(i int) byte {
	check.Assert(i < len(b.b), "Buffer.Byte(i): i is past-the-end")
	return b.b[i]
}

// Bytes exposes the viewed region. The returned slice aliases the
// underlying storage and must not be modified.
func (b Buffer) Bytes() []byte { return b.b }

// First returns a view of the first n bytes. n must not exceed Size.
func (b Buffer) First(n int) Buffer {
	check.Assert(n <= len(b.b), "Buffer.First(n): n is greater than Size")
	return Buffer{b.b[:n]}
}

// Last returns a view of the last n bytes. n must not exceed Size.
func (b Buffer) Last(n int) Buffer {
	check.Assert(n <= len(b.b), "Buffer.Last(n): n is greater than Size")
	return Buffer{b.b[len(b.b)-n:]}
}

// Split partitions the view at n, returning (First(n), Last(Size-n)).
func (b Buffer) Split(n int) (Buffer, Buffer) {
	check.Assert(n <= len(b.b), "Buffer.Split(n): n is greater than Size")
	return Buffer{b.b[:n]}, Buffer{b.b[n:]}
}

// RemovePrefix drops the first n bytes from the view in place.
func (b *Buffer) RemovePrefix(n int) {
	check.Assert(n <= len(b.b), "Buffer.RemovePrefix(n): n is greater than Size")
	b.b = b.b[n:]
}

// RemoveSuffix drops the last n bytes from the view in place.
func (b *Buffer) RemoveSuffix(n int) {
	check.Assert(n <= len(b.b), "Buffer.RemoveSuffix(n): n is greater than Size")
	b.b = b.b[:len(b.b)-n]
}

// Drop is the value form of RemovePrefix: it returns a view with the
// first n bytes removed.
func (b Buffer) Drop(n int) Buffer {
	check.Assert(n <= len(b.b), "Buffer.Drop(n): n is greater than Size")
	return Buffer{b.b[n:]}
}

// String copies the viewed bytes into a string.
func (b Buffer) String() string { return string(b.b) }

// EqualsString reports whether the viewed bytes equal s.
func (b Buffer) EqualsString(s string) bool { return string(b.b) == s }

// Size returns the number of bytes in the view.
func (m MutableBuffer) Size() int { return len(m.b) }

// Empty reports whether the view has size zero.
func (m MutableBuffer) Empty() bool { return len(m.b) == 0 }

// Byte returns the i-th byte. i must be less than Size.
func (m MutableBuffer) Byte(i int) byte {
	check.Assert(i < len(m.b), "MutableBuffer.Byte(i): i is past-the-end")
	return m.b[i]
}

// SetByte stores v at index i. i must be less than Size.
func (m MutableBuffer) SetByte(i int, v byte) {
	check.Assert(i < len(m.b), "MutableBuffer.SetByte(i): i is past-the-end")
	m.b[i] = v
}

// Bytes exposes the viewed region for writing.
func (m MutableBuffer) Bytes() []byte { return m.b }

// Const widens the view to read-only.
func (m MutableBuffer) Const() Buffer { return Buffer{m.b} }

// First returns a view of the first n bytes. n must not exceed Size.
func (m MutableBuffer) First(n int) MutableBuffer {
	check.Assert(n <= len(m.b), "MutableBuffer.First(n): n is greater than Size")
	return MutableBuffer{m.b[:n]}
}

// Last returns a view of the last n bytes. n must not exceed Size.
func (m MutableBuffer) Last(n int) MutableBuffer {
	check.Assert(n <= len(m.b), "MutableBuffer.Last(n): n is greater than Size")
	return MutableBuffer{m.b[len(m.b)-n:]}
}

// Split partitions the view at n, returning (First(n), Last(Size-n)).
func (m MutableBuffer) Split(n int) (MutableBuffer, MutableBuffer) {
	check.Assert(n <= len(m.b), "MutableBuffer.Split(n): n is greater than Size")
	return MutableBuffer{m.b[:n]}, MutableBuffer{m.b[n:]}
}

// RemovePrefix drops the first n bytes from the view in place.
func (m *MutableBuffer) RemovePrefix(n int) {
	check.Assert(n <= len(m.b), "MutableBuffer.RemovePrefix(n): n is greater than Size")
	m.b = m.b[n:]
}

// RemoveSuffix drops the last n bytes from the view in place.
func (m *MutableBuffer) RemoveSuffix(n int) {
	check.Assert(n <= len(m.b), "MutableBuffer.RemoveSuffix(n): n is greater than Size")
	m.b = m.b[:len(m.b)-n]
}

// Drop is the value form of RemovePrefix.
func (m MutableBuffer) Drop(n int) MutableBuffer {
	check.Assert(n <= len(m.b), "MutableBuffer.Drop(n): n is greater than Size")
	return MutableBuffer{m.b[n:]}
}

// String copies the viewed bytes into a string.
func (m MutableBuffer) String() string { return string(m.b) }

// EqualsString reports whether the viewed bytes equal s.
func (m MutableBuffer) EqualsString(s string) bool { return string(m.b) == s }

// Scalar enumerates the fixed-width element types a byte view can be
// reinterpreted as.
type Scalar interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~float32 | ~float64
}

// ViewAs reinterprets the viewed bytes as Size/sizeof(T) elements of T
// without copying. A tail shorter than one element is silently dropped;
// callers wanting exact coverage must pass a view whose size is a
// multiple of the element size. The result aliases the view's storage
// and must not be modified.
func ViewAs[T Scalar](b Buffer) []T {
	var zero T
	n := b.Size() / int(unsafe.Sizeof(zero))
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b.b[0])), n)
}
