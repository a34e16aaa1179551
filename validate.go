package desikit

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate is the single entry point for all validation.
// If value implements Ruler, validates struct fields via Rules().
// If value implements ValueRuler, applies its rules to the value directly.
// Collection elements implementing Ruler are auto-validated and their
// errors keyed by index (slices) or key (maps).
func Validate(value any) error {
	return validateCore(value)
}

// ValidateStruct validates a struct with explicit field rules.
// Prefer Validate for types implementing Ruler.
func ValidateStruct(structPtr any, fields []*FieldRules) error {
	return validation.ValidateStruct(structPtr, convertFieldRules(fields...)...)
}

// UnmarshalAndValidate decodes JSON b into dst, then validates.
// If dst (or any element or nested struct of it) implements Normalizer,
// it is normalized before validation, top level first.
func UnmarshalAndValidate(b []byte, dst any) error {
	if err := json.Unmarshal(b, dst); err != nil {
		return err
	}
	normalizeRecursive(dst)
	return Validate(dst)
}

func validateCore(value any) error {
	if value == nil {
		return nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil
	}

	if r, ok := value.(Ruler); ok {
		return validation.ValidateStruct(value, convertFieldRules(r.Rules()...)...)
	}
	// Non-pointer struct value: check if *T implements Ruler.
	// This happens when ozzo passes a struct field value to the bridge rule.
	if rv.Kind() == reflect.Struct {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		pi := ptr.Interface()
		if r, ok := pi.(Ruler); ok {
			return validation.ValidateStruct(pi, convertFieldRules(r.Rules()...)...)
		}
	}

	if vr, ok := value.(ValueRuler); ok {
		return validateValueRules(value, vr.ValueRules())
	}

	rv = reflect.Indirect(rv)

	switch rv.Kind() {
	case reflect.Map:
		if shouldAutoValidate(rv.Type().Elem()) {
			return validateMap(rv)
		}
	case reflect.Slice, reflect.Array:
		if shouldAutoValidate(rv.Type().Elem()) {
			return validateSlice(rv)
		}
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return validateCore(rv.Elem().Interface())
	}

	return nil
}

// validateValueRules applies a set of rules to a single value, stopping at
// the first failure.
func validateValueRules(value any, rules []Rule) error {
	for _, rule := range rules {
		if err := rule.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

// shouldAutoValidate checks if elements of the given type can be auto-validated.
// Recurses into nested collections (e.g. map[string][]Ruler).
func shouldAutoValidate(elemType reflect.Type) bool {
	switch elemType.Kind() {
	case reflect.Struct:
		_, ok := reflect.New(elemType).Interface().(Ruler)
		return ok
	case reflect.Ptr:
		if elemType.Elem().Kind() == reflect.Struct {
			_, ok := reflect.New(elemType.Elem()).Interface().(Ruler)
			return ok
		}
	case reflect.Slice, reflect.Array, reflect.Map:
		return shouldAutoValidate(elemType.Elem())
	}
	return false
}

// validateElement validates a single collection element.
func validateElement(v reflect.Value) error {
	if (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) && v.IsNil() {
		return nil
	}

	// Get a pointer for pointer-receiver interfaces.
	var ptr reflect.Value
	switch {
	case v.Kind() == reflect.Ptr:
		ptr = v
	case v.CanAddr():
		ptr = v.Addr()
	case v.Kind() == reflect.Struct:
		ptr = reflect.New(v.Type())
		ptr.Elem().Set(v)
	}

	if ptr.IsValid() {
		if _, ok := ptr.Interface().(Ruler); ok {
			return validateCore(ptr.Interface())
		}
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return validateCore(v.Interface())
	}

	return nil
}

func validateSlice(rv reflect.Value) error {
	errs := validation.Errors{}
	for i := range rv.Len() {
		if err := validateElement(rv.Index(i)); err != nil {
			errs[strconv.Itoa(i)] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateMap(rv reflect.Value) error {
	errs := validation.Errors{}
	for _, key := range rv.MapKeys() {
		if err := validateElement(rv.MapIndex(key)); err != nil {
			errs[fmt.Sprintf("%v", key.Interface())] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// rulerBridge is an ozzo validation.Rule that bridges Ruler fields back into
// validateCore, so nested records and record slices are validated too.
type rulerBridge struct{}

func (rulerBridge) Validate(value any) error {
	if value == nil {
		return nil
	}
	return validateCore(value)
}

// convertFieldRules translates FieldRules into ozzo's FieldRules, appending a
// rulerBridge to each field.
func convertFieldRules(fields ...*FieldRules) []*validation.FieldRules {
	vFields := make([]*validation.FieldRules, len(fields))
	for i, fr := range fields {
		rules := make([]validation.Rule, len(fr.rules), len(fr.rules)+1)
		for j, r := range fr.rules {
			rules[j] = validation.Rule(r)
		}
		rules = append(rules, rulerBridge{})
		vFields[i] = validation.Field(fr.fieldPtr, rules...)
	}
	return vFields
}

// By wraps a RuleFunc into a Rule.
func By(f RuleFunc, desc string) Rule {
	return &inlineRule{validation.By(validation.RuleFunc(f)), desc}
}

type inlineRule struct {
	validation.Rule
	desc string
}

func (r *inlineRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

// appendDescription adds desc to the schema description, separated by a space.
func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}
