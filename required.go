package desikit

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type requiredRule struct {
	validation.RequiredRule
}

// Required is a validation rule that checks if a value is not empty:
// non-empty strings and slices, non-zero numbers.
var Required = requiredRule{validation.Required}

// Describe lists name in the parent object's required properties. Scalars
// described through ValueRules have no parent, so nothing is recorded.
func (r requiredRule) Describe(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	if !schema.Type.Is(openapi3.TypeObject) {
		return nil
	}
	schema.Required = append(schema.Required, name)
	return nil
}
