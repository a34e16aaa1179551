// Package transform provides struct transformation utilities for mutating
// string fields recursively within structs. They are used inside
// [desikit.Normalizer] implementations, such as the whitespace cleanup
// applied to decoded thali menus.
package transform
