package desikit

import (
	"reflect"
)

// Field creates a FieldRules binding a struct field pointer to its validation rules.
func Field[T any](fieldPtr *T, rules ...Rule) *FieldRules {
	return &FieldRules{
		fieldPtr: fieldPtr,
		rules:    rules,
	}
}

// findStructField returns the field of structVal whose address is fieldPtr.
// structVal must be addressable. The type is compared as well because the
// first field shares its address with the struct itself.
func findStructField(structVal reflect.Value, fieldPtr reflect.Value) *reflect.StructField {
	ptr := fieldPtr.Pointer()
	elemType := fieldPtr.Type().Elem()
	for i := range structVal.NumField() {
		fv := structVal.Field(i)
		if fv.UnsafeAddr() != ptr || fv.Type() != elemType {
			continue
		}
		sf := structVal.Type().Field(i)
		return &sf
	}
	return nil
}
