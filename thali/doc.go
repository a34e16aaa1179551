// Package thali works with thali records and menus: one-line descriptions,
// menu statistics, search, and customer receipts.
//
// A record is a [Thali]; a menu is a [Menu]. Because callers often hold
// decoded JSON rather than typed values, every function also accepts a
// map[string]any record and []any or []map[string]any menus:
//
//	thali.Describe(map[string]any{
//	    "name":  "Rajasthani Thali",
//	    "items": []any{"dal", "churma"},
//	    "price": 250.0,
//	    "isVeg": true,
//	})
//	// "RAJASTHANI THALI (Veg) - Items: dal, churma - Rs.250.00"
//
// [Describe] validates its record strictly ([Check] explains a refusal).
// [GetStats], [Search] and [Receipt] only check that they were given a
// non-empty menu; a malformed record inside it flows into the result
// (a missing price turns the average into "NaN") instead of being dropped.
package thali
