package desikit

import (
	"reflect"
)

// Normalizer is implemented by types that need custom normalization after
// unmarshaling. UnmarshalAndValidate calls Normalize on the decoded value
// first, then depth-first on every slice element, pointer, map value, and
// nested struct that also implements it.
type Normalizer interface {
	Normalize()
}

// normalizeRecursive calls Normalize on a (top level first), then walks it.
func normalizeRecursive(a any) {
	if a == nil {
		return
	}
	callNormalize(a)
	rv := reflect.ValueOf(a)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}
	walkNormalize(rv)
}

func callNormalize(v any) {
	if n, ok := v.(Normalizer); ok {
		n.Normalize()
	}
}

// normalizeValue normalizes a single addressable value or pointer and
// recurses into it.
func normalizeValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.Struct:
		if v.CanAddr() {
			callNormalize(v.Addr().Interface())
		}
		walkNormalize(v)
	case reflect.Ptr:
		if v.IsNil() {
			return
		}
		callNormalize(v.Interface())
		walkNormalize(v.Elem())
	case reflect.Slice, reflect.Array, reflect.Map:
		walkNormalize(v)
	}
}

func walkNormalize(rv reflect.Value) { //nolint:revive // reflection walker is inherently complex
	switch rv.Kind() {
	case reflect.Struct:
		for i := range rv.NumField() {
			if !rv.Type().Field(i).IsExported() {
				continue
			}
			normalizeValue(rv.Field(i))
		}
	case reflect.Slice, reflect.Array:
		for j := range rv.Len() {
			normalizeValue(rv.Index(j))
		}
	case reflect.Map:
		for _, key := range rv.MapKeys() {
			val := rv.MapIndex(key)
			// Map values aren't addressable; copy, normalize, put back.
			if val.Kind() == reflect.Struct {
				cp := reflect.New(val.Type())
				cp.Elem().Set(val)
				callNormalize(cp.Interface())
				walkNormalize(cp.Elem())
				rv.SetMapIndex(key, cp.Elem())
			}
		}
	}
}
