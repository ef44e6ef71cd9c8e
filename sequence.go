package neobuffer

import "github.com/zokrezyl/neo-buffer/internal/check"

// ConstSequence is any ordered, finite list of read-only views whose
// concatenation represents one logical byte region. A single Buffer is
// the degenerate one-element sequence; no container is built for it.
type ConstSequence interface {
	Chunks() Iter
}

// MutableSequence is the writable counterpart of ConstSequence. Every
// MutableSequence is also a ConstSequence.
type MutableSequence interface {
	ConstSequence
	MutChunks() MutIter
}

// Buffers is a multi-view read-only sequence.
type Buffers []Buffer

// MutableBuffers is a multi-view writable sequence.
type MutableBuffers []MutableBuffer

type iterKind uint8

const (
	iterOne iterKind = iota
	iterMany
	iterManyMut
)

// Iter is a forward cursor over a ConstSequence. The zero Iter is an
// exhausted cursor. Dereferencing or advancing an exhausted cursor is a
// programmer error.
type Iter struct {
	one     Buffer
	many    []Buffer
	manyMut []MutableBuffer
	kind    iterKind
	idx     int
}

// AtEnd reports whether the cursor is past the last view.
func (it *Iter) AtEnd() bool {
	switch it.kind {
	case iterOne:
		return it.idx > 0
	case iterManyMut:
		return it.idx >= len(it.manyMut)
	default:
		return it.idx >= len(it.many)
	}
}

// Buffer returns the view under the cursor.
func (it *Iter) Buffer() Buffer {
	check.Assert(!it.AtEnd(), "Iter.Buffer: dereferenced a past-the-end cursor")
	switch it.kind {
	case iterOne:
		return it.one
	case iterManyMut:
		return it.manyMut[it.idx].Const()
	default:
		return it.many[it.idx]
	}
}

// Advance moves the cursor to the next view.
func (it *Iter) Advance() {
	check.Assert(!it.AtEnd(), "Iter.Advance: advanced a past-the-end cursor")
	it.idx++
}

// MutIter is a forward cursor over a MutableSequence.
type MutIter struct {
	one  MutableBuffer
	many []MutableBuffer
	kind iterKind
	idx  int
}

// AtEnd reports whether the cursor is past the last view.
func (it *MutIter) AtEnd() bool {
	if it.kind == iterOne {
		return it.idx > 0
	}
	return it.idx >= len(it.many)
}

// Buffer returns the view under the cursor.
func (it *MutIter) Buffer() MutableBuffer {
	check.Assert(!it.AtEnd(), "MutIter.Buffer: dereferenced a past-the-end cursor")
	if it.kind == iterOne {
		return it.one
	}
	return it.many[it.idx]
}

// Advance moves the cursor to the next view.
func (it *MutIter) Advance() {
	check.Assert(!it.AtEnd(), "MutIter.Advance: advanced a past-the-end cursor")
	it.idx++
}

// Chunks returns a one-shot cursor yielding the buffer itself.
func (b Buffer) Chunks() Iter { return Iter{one: b, kind: iterOne} }

// Chunks returns a one-shot cursor yielding the buffer widened to
// read-only.
func (m MutableBuffer) Chunks() Iter { return Iter{one: m.Const(), kind: iterOne} }

// MutChunks returns a one-shot cursor yielding the buffer itself.
func (m MutableBuffer) MutChunks() MutIter { return MutIter{one: m, kind: iterOne} }

// Chunks returns a cursor over the views in order.
func (bs Buffers) Chunks() Iter { return Iter{many: bs, kind: iterMany} }

// Chunks returns a cursor over the views in order, each widened to
// read-only.
func (ms MutableBuffers) Chunks() Iter { return Iter{manyMut: ms, kind: iterManyMut} }

// MutChunks returns a cursor over the views in order.
func (ms MutableBuffers) MutChunks() MutIter { return MutIter{many: ms, kind: iterMany} }

// Size returns the total byte size of seq: the sum of per-view sizes.
// O(number of views).
func Size(seq ConstSequence) int {
	total := 0
	for it := seq.Chunks(); !it.AtEnd(); it.Advance() {
		total += it.Buffer().Size()
	}
	return total
}
