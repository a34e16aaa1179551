package transform

import (
	"reflect"

	"github.com/Gobd/desikit"
)

// StructTrimSpace runs [desikit.TrimSpace] on all string fields in the struct
// recursively, including nested structs, pointer fields, slices, and map
// values.
func StructTrimSpace(v any) {
	stringFunc(v, desikit.TrimSpace)
}

// StructToLower runs [desikit.Lower] on all string fields in the struct recursively.
func StructToLower(v any) {
	stringFunc(v, desikit.Lower)
}

// StructStringFunc applies f to every string field in the struct recursively.
func StructStringFunc(v any, f func(string) string) {
	stringFunc(v, f)
}

// StructMulti runs all given functions on the struct pointer sequentially.
func StructMulti(v any, fns ...func(any)) {
	for _, f := range fns {
		f(v)
	}
}

func stringFunc(a any, f func(string) string) {
	v := reflect.ValueOf(a)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	for i := range v.NumField() {
		field := v.Field(i)
		if field.CanSet() {
			apply(field, f)
		}
	}
}

// apply rewrites the strings reachable from the settable value field.
func apply(field reflect.Value, f func(string) string) { //nolint:revive // reflection walker is inherently complex
	switch field.Kind() {
	case reflect.String:
		field.SetString(f(field.String()))
	case reflect.Struct:
		stringFunc(field.Addr().Interface(), f)
	case reflect.Ptr:
		if field.IsNil() {
			return
		}
		switch field.Elem().Kind() {
		case reflect.String:
			field.Elem().SetString(f(field.Elem().String()))
		case reflect.Struct:
			stringFunc(field.Interface(), f)
		}
	case reflect.Interface:
		// Skip interface fields: the concrete type is unknown at compile time.
	case reflect.Slice, reflect.Array:
		for j := range field.Len() {
			apply(field.Index(j), f)
		}
	case reflect.Map:
		for _, key := range field.MapKeys() {
			val := field.MapIndex(key)
			switch val.Kind() {
			case reflect.String:
				field.SetMapIndex(key, reflect.ValueOf(f(val.String())).Convert(val.Type()))
			case reflect.Struct:
				cp := reflect.New(val.Type()).Elem()
				cp.Set(val)
				stringFunc(cp.Addr().Interface(), f)
				field.SetMapIndex(key, cp)
			}
		}
	}
}
