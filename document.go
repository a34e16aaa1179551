package desikit

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// RuleFunc is a function type that validates a value and returns an error if invalid.
	RuleFunc func(value any) error

	// Rule is the interface that all validation rules must implement.
	Rule interface {
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// Ruler is implemented by record types that declare rules for their fields.
	// Implement it on the pointer receiver so Field can take field addresses.
	Ruler interface {
		Rules() []*FieldRules
	}

	// FieldRules binds a struct field pointer to its validation rules.
	FieldRules struct {
		fieldPtr any
		tag      string
		rules    []Rule
	}

	// ValueRuler is implemented by non-struct types (e.g. type Pincode string)
	// that carry their own validation rules. The returned rules are applied
	// when the value is passed to Validate directly and during schema
	// generation wherever the type appears as a struct field.
	//
	//	type Pincode string
	//
	//	func (p Pincode) ValueRules() []Rule {
	//	    return []Rule{Required, Length(6, 6)}
	//	}
	ValueRuler interface {
		ValueRules() []Rule
	}
)
