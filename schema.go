package desikit

import (
	"fmt"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// getRulesForType returns validation rules for t if *t implements Ruler.
func getRulesForType(t reflect.Type) (any, []*FieldRules) {
	inst := reflect.New(t)
	if r, ok := inst.Interface().(Ruler); ok {
		return inst.Interface(), r.Rules()
	}
	return nil, nil
}

// mapFieldsToTags resolves each FieldRules' fieldPtr to its schema property
// name using struct field address comparison.
func mapFieldsToTags(fields []*FieldRules, structVal reflect.Value) error {
	for i, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			return fmt.Errorf("rule target for field index %d must be a pointer, got %s", i, fv.Kind())
		}
		sf := findStructField(structVal, fv)
		if sf == nil {
			return fmt.Errorf("rule target for field index %d not found in struct %s", i, structVal.Type())
		}
		fields[i].tag = fieldKey(*sf)
	}
	return nil
}

// applyRulesToSchema calls Describe on each rule for matching schema properties.
func applyRulesToSchema(fields []*FieldRules, schema *openapi3.Schema) error {
	for k, propRef := range schema.Properties {
		for _, f := range fields {
			if f.tag != k {
				continue
			}
			for _, rule := range f.rules {
				if err := rule.Describe(k, schema, propRef); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// schemaDoc is a SchemaCustomizer that applies validation rules to OpenAPI schemas.
func schemaDoc(name string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
	vi, fields := getRulesForType(t)
	if vi == nil {
		return applyValueRulerSchema(t, name, schema)
	}
	if err := mapFieldsToTags(fields, reflect.Indirect(reflect.ValueOf(vi))); err != nil {
		return err
	}
	return applyRulesToSchema(fields, schema)
}

// applyValueRulerSchema applies the Describe methods of a ValueRuler's rules
// to its schema. Used for named scalar types (e.g. type Pincode string).
func applyValueRulerSchema(t reflect.Type, name string, schema *openapi3.Schema) error {
	if t.Kind() == reflect.Ptr {
		return nil
	}
	vr, ok := reflect.New(t).Elem().Interface().(ValueRuler)
	if !ok {
		return nil
	}
	ref := &openapi3.SchemaRef{Value: schema}
	for _, rule := range vr.ValueRules() {
		if err := rule.Describe(name, schema, ref); err != nil {
			return err
		}
	}
	return nil
}

// NewSchemaRefForValue generates an OpenAPI schema for the given value,
// applying validation rules from types that implement [Ruler] or
// [ValueRuler].
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(schemaDoc))
	return g.NewSchemaRefForValue(value, nil)
}
