package neobuffer

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/zokrezyl/neo-buffer/internal/check"
)

// Viewer is the type-local adaptation hook: a type that knows how to
// present itself as a read-only view.
type Viewer interface {
	AsBuffer() Buffer
}

// MutableViewer is the writable counterpart of Viewer.
type MutableViewer interface {
	AsMutableBuffer() MutableBuffer
}

var (
	adapterMu sync.RWMutex
	adapters  map[reflect.Type]func(any) Buffer
)

// RegisterAdapter installs an adaptation function for values of type T.
// Registered adapters rank below the Viewer hook and above the direct
// slice/string constructions in the As precedence.
func RegisterAdapter[T any](fn func(T) Buffer) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	adapterMu.Lock()
	if adapters == nil {
		adapters = make(map[reflect.Type]func(any) Buffer)
	}
	adapters[t] = func(v any) Buffer { return fn(v.(T)) }
	adapterMu.Unlock()
}

func registeredAdapter(v any) (func(any) Buffer, bool) {
	adapterMu.RLock()
	fn, ok := adapters[reflect.TypeOf(v)]
	adapterMu.RUnlock()
	return fn, ok
}

// As converts v into a read-only view using a fixed precedence, first
// match wins:
//
//  1. v implements Viewer;
//  2. an adapter registered for v's type via RegisterAdapter;
//  3. v is directly usable as a writable view ([]byte, MutableBuffer,
//     MutableViewer), widened to read-only;
//  4. v is directly usable as a read-only view (string, Buffer).
//
// A value matching none of the above is a programmer error, not a
// runtime condition. No allocation occurs and the result aliases v's
// storage.
func As(v any) Buffer {
	if vw, ok := v.(Viewer); ok {
		return vw.AsBuffer()
	}
	if fn, ok := registeredAdapter(v); ok {
		return fn(v)
	}
	switch t := v.(type) {
	case MutableViewer:
		return t.AsMutableBuffer().Const()
	case []byte:
		return Buffer{t}
	case MutableBuffer:
		return t.Const()
	case string:
		return OfString(t)
	case Buffer:
		return t
	}
	check.Assert(false, "As: value is not convertible to a buffer")
	return Buffer{}
}

// AsMutable converts v into a writable view. Only writable adaptations
// participate; a read-only value here is a programmer error.
func AsMutable(v any) MutableBuffer {
	switch t := v.(type) {
	case MutableViewer:
		return t.AsMutableBuffer()
	case []byte:
		return MutableBuffer{t}
	case MutableBuffer:
		return t
	}
	check.Assert(false, "AsMutable: value is not convertible to a writable buffer")
	return MutableBuffer{}
}

// AsN converts v as As does, then truncates the result to at most max
// bytes.
func AsN(v any, max int) Buffer {
	buf := As(v)
	if max < buf.Size() {
		return buf.First(max)
	}
	return buf
}

// Of constructs a writable view over p directly, bypassing adaptation.
func Of(p []byte) MutableBuffer { return MutableBuffer{p} }

// OfString constructs a read-only view over the bytes of s directly,
// bypassing adaptation.
func OfString(s string) Buffer {
	if len(s) == 0 {
		return Buffer{}
	}
	return Buffer{unsafe.Slice(unsafe.StringData(s), len(s))}
}

// trivialSafe caches the per-type "safe to view raw bytes" capability.
var trivialSafe sync.Map // reflect.Type -> bool

func isTrivial(t reflect.Type) bool {
	if ok, hit := trivialSafe.Load(t); hit {
		return ok.(bool)
	}
	safe := trivialScan(t)
	trivialSafe.Store(t, safe)
	return safe
}

func trivialScan(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Array:
		return trivialScan(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !trivialScan(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Pointers, slices, strings, maps and interfaces carry
		// indirection; viewing their raw representation is unsafe.
		return false
	}
}

// TrivialBuffer returns a read-only view over the raw in-memory
// representation of *v. T must be a fixed-layout value free of
// indirection (fixed-width scalars, arrays and structs thereof);
// anything else is a programmer error.
func TrivialBuffer[T any](v *T) Buffer {
	check.Assert(isTrivial(reflect.TypeOf(*v)),
		"TrivialBuffer: type is not safe to view as raw bytes")
	return Buffer{unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))}
}
