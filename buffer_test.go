package neobuffer

import (
	"encoding/binary"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferBasics(t *testing.T) {
	b := OfString("abcdef")
	require.Equal(t, 6, b.Size())
	require.False(t, b.Empty())
	require.Equal(t, byte('a'), b.Byte(0))
	require.Equal(t, byte('f'), b.Byte(5))
	require.Equal(t, "abcdef", b.String())
	require.True(t, b.EqualsString("abcdef"))
	require.False(t, b.EqualsString("abcdeg"))

	var zero Buffer
	require.True(t, zero.Empty())
	require.Equal(t, 0, zero.Size())
}

func TestBufferNeverCopies(t *testing.T) {
	backing := []byte("hello")
	m := Of(backing)
	v := m.Const()

	backing[0] = 'H'
	require.Equal(t, byte('H'), v.Byte(0), "view must alias, not copy")

	m.SetByte(4, 'O')
	require.Equal(t, byte('O'), backing[4])
	require.Equal(t, "HellO", v.String())
}

func TestFirstLastReconstruct(t *testing.T) {
	data := []byte("0123456789")
	b := Of(data).Const()
	for n := 0; n <= b.Size(); n++ {
		head := b.First(n)
		tail := b.Last(b.Size() - n)
		require.Equal(t, string(data), head.String()+tail.String())
	}
}

func TestSplit(t *testing.T) {
	condition := func(data []byte, cut uint) bool {
		b := Of(data).Const()
		n := int(cut) % (b.Size() + 1)
		left, right := b.Split(n)
		return left.Size()+right.Size() == b.Size() &&
			left.String()+right.String() == string(data)
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestPrefixSuffixTrim(t *testing.T) {
	b := OfString("0123456789")
	b.RemovePrefix(3)
	require.Equal(t, "3456789", b.String())
	b.RemoveSuffix(4)
	require.Equal(t, "345", b.String())

	require.Equal(t, "45", OfString("345").Drop(1).String())

	m := Of([]byte("0123456789"))
	m.RemovePrefix(2)
	m.RemoveSuffix(2)
	require.Equal(t, "234567", m.String())
	require.Equal(t, "4567", m.Drop(2).String())
}

func TestPreconditionViolationsPanic(t *testing.T) {
	b := OfString("abc")
	require.Panics(t, func() { b.First(4) })
	require.Panics(t, func() { b.Last(4) })
	require.Panics(t, func() { b.Split(4) })
	require.Panics(t, func() { b.Drop(4) })
	require.Panics(t, func() { b.Byte(3) })
	require.Panics(t, func() { b.RemovePrefix(4) })
	require.Panics(t, func() { b.RemoveSuffix(4) })

	m := Of(make([]byte, 3))
	require.Panics(t, func() { m.First(4) })
	require.Panics(t, func() { m.SetByte(3, 0) })
}

func TestViewAs(t *testing.T) {
	raw := []byte{1, 2, 3, 4, 5, 6, 7}
	b := Of(raw).Const()

	// 7 bytes hold exactly one uint32; the 3-byte tail is dropped.
	words := ViewAs[uint32](b)
	require.Len(t, words, 1)
	assert.Equal(t, binary.NativeEndian.Uint32(raw), words[0])

	require.Len(t, ViewAs[uint8](b), 7)
	require.Len(t, ViewAs[uint64](b), 0)
	require.Nil(t, ViewAs[uint16](OfString("")))
}
