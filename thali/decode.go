package thali

import (
	"github.com/Gobd/desikit"
	"github.com/getkin/kin-openapi/openapi3"
)

// DecodeMenu parses a JSON array of thalis, trims whitespace around names and
// items, and validates every record with the same rules as Describe. A
// validation failure is a ValidationErrors keyed by the record's index.
func DecodeMenu(b []byte) (Menu, error) {
	var m Menu
	if err := desikit.UnmarshalAndValidate(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Schema returns the OpenAPI 3 schema of a thali record, with its rules
// rendered: required fields, the blank-name rule, an example name and the
// isVeg default.
func Schema() (*openapi3.SchemaRef, error) {
	return desikit.NewSchemaRefForValue(Thali{})
}
