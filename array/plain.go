package array

import (
	"reflect"
	"unsafe"
)

// isPlain reports whether values of type t can be stored as raw bytes, that
// is whether t holds no pointer.
func isPlain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || isPlain(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isPlain(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}

// encode returns the memory representation of v.
func encode(v any) []byte {
	t := reflect.TypeOf(v)
	p := reflect.New(t)
	p.Elem().Set(reflect.ValueOf(v))
	return bytesOf(p.UnsafePointer(), t.Size())
}

// decode returns a value of type t whose memory representation is b.
func decode(t reflect.Type, b []byte) any {
	p := reflect.New(t)
	copy(bytesOf(p.UnsafePointer(), t.Size()), b)
	return p.Elem().Interface()
}

// bytesOf returns the n bytes starting at p.
func bytesOf(p unsafe.Pointer, n uintptr) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}
