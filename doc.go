// Package desikit is a small library of validated, pure transformations over
// loosely typed input: auto-rickshaw fares, postcards, and thali menus.
//
// Every public operation takes its arguments as any, narrows them to strong
// types at the boundary, and returns either a result or a documented
// sentinel. Nothing panics on bad input and nothing is retained between
// calls.
//
// The root package holds the shared layer. Record types declare their rules
// by implementing [Ruler]:
//
//	func (t *Thali) Rules() []*desikit.FieldRules {
//	    return []*desikit.FieldRules{
//	        desikit.Field(&t.Name, desikit.Required, desikit.NotBlank),
//	        desikit.Field(&t.Items, desikit.Required),
//	    }
//	}
//
// and are checked with a single call:
//
//	err := desikit.Validate(&thali)
//
// The same rules drive OpenAPI 3 schema generation ([NewSchemaRefForValue]).
// Number parsing, fixed-point formatting, whitespace and case helpers live
// here too so every sub-package agrees on them.
//
// Sub-packages:
//   - fare: meter arithmetic: parsing, rounding, surge, min/max, distance
//   - postcard: postcard templates, pincodes, field alignment, vowels
//   - thali: thali records: descriptions, menu stats, search, receipts
//   - transform: struct string transformation utilities
package desikit
