package neobuffer

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type ownView struct {
	data []byte
}

func (o ownView) AsBuffer() Buffer { return Of(o.data).Const() }

type ownMutView struct {
	data []byte
}

func (o ownMutView) AsMutableBuffer() MutableBuffer { return Of(o.data) }

type adapted struct {
	payload string
}

func TestAsPrecedence(t *testing.T) {
	// 1. Type-local hook wins, even over a registered adapter.
	RegisterAdapter(func(ownView) Buffer { return OfString("adapter loses") })
	o := ownView{data: []byte("member")}
	require.Equal(t, "member", As(o).String())

	// 2. Registered adapter, when no hook exists.
	RegisterAdapter(func(a adapted) Buffer { return OfString(a.payload) })
	require.Equal(t, "registered", As(adapted{payload: "registered"}).String())

	// 3. Directly usable as a writable view.
	raw := []byte("slice")
	v := As(raw)
	raw[0] = 'S'
	require.Equal(t, "Slice", v.String(), "conversion must alias, not copy")

	om := ownMutView{data: []byte("mut")}
	require.Equal(t, "mut", As(om).String())
	require.Equal(t, "mb", As(Of([]byte("mb"))).String())

	// 4. Read-only fallback.
	require.Equal(t, "string", As("string").String())
	require.Equal(t, "buf", As(OfString("buf")).String())
}

func TestAsNotConvertiblePanics(t *testing.T) {
	require.Panics(t, func() { As(42) })
	require.Panics(t, func() { AsMutable("read-only") })
	require.Panics(t, func() { AsMutable(OfString("read-only")) })
}

func TestAsMutable(t *testing.T) {
	raw := []byte("abc")
	AsMutable(raw).SetByte(0, 'A')
	require.Equal(t, "Abc", string(raw))

	om := ownMutView{data: []byte("xyz")}
	AsMutable(om).SetByte(2, 'Z')
	require.Equal(t, "xyZ", string(om.data))
}

func TestAsNClamps(t *testing.T) {
	require.Equal(t, "hel", AsN("hello", 3).String())
	require.Equal(t, "hello", AsN("hello", 10).String())
	require.Equal(t, 0, AsN("hello", 0).Size())
}

func TestEscapeHatches(t *testing.T) {
	raw := []byte("direct")
	require.Equal(t, 6, Of(raw).Size())
	require.Equal(t, "direct", OfString("direct").String())
	require.Equal(t, 0, OfString("").Size())
}

func TestTrivialBuffer(t *testing.T) {
	type header struct {
		Magic   uint32
		Version uint16
		Flags   uint16
	}
	h := header{Magic: 0xF1A7BEEF, Version: 3, Flags: 0x8000}
	b := TrivialBuffer(&h)
	require.Equal(t, int(unsafe.Sizeof(h)), b.Size())

	words := ViewAs[uint32](b)
	require.Equal(t, h.Magic, words[0])

	var arr [4]int16
	require.Equal(t, 8, TrivialBuffer(&arr).Size())
}

func TestTrivialBufferRejectsIndirection(t *testing.T) {
	type unsafeToView struct {
		Name string
	}
	v := unsafeToView{Name: "nope"}
	require.Panics(t, func() { TrivialBuffer(&v) })

	p := new(int)
	require.Panics(t, func() { TrivialBuffer(&p) })
}
