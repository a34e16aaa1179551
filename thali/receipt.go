package thali

import (
	"fmt"
	"strings"

	"github.com/Gobd/desikit"
)

// Receipt prints a bill for customerName covering every thali in records:
//
//	THALI RECEIPT
//	---
//	Customer: GUDDU
//	- Rajasthani Thali x Rs.250
//	- Punjabi Thali x Rs.300
//	---
//	Total: Rs.550
//	Items: 2
//
// Prices are printed as plain numbers, not to two decimals. Records are not
// validated. Receipt returns "" when customerName is not a string or records
// is not a non-empty menu.
func Receipt(customerName, records any) string {
	name, ok := customerName.(string)
	if !ok {
		return ""
	}
	menu, ok := toMenu(records)
	if !ok || len(menu) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("THALI RECEIPT\n---\n")
	fmt.Fprintf(&b, "Customer: %s\n", desikit.Upper(name))
	var total float64
	for _, t := range menu {
		fmt.Fprintf(&b, "- %s x Rs.%s\n", t.Name, desikit.FormatNumber(t.Price))
		total += t.Price
	}
	b.WriteString("---\n")
	fmt.Fprintf(&b, "Total: Rs.%s\n", desikit.FormatNumber(total))
	fmt.Fprintf(&b, "Items: %d", len(menu))
	return b.String()
}
