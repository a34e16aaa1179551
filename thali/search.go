package thali

import (
	"strings"

	"github.com/Gobd/desikit"
)

// Search returns the thalis whose name, or any of whose items, contains
// query. Matching ignores case and surrounding whitespace in the query and
// the name; an empty query matches every thali. Menu order is kept. The
// result is empty, never nil, when nothing matches, when records is not a
// non-empty menu, or when query is not a string.
func Search(records, query any) Menu {
	found := Menu{}
	menu, ok := toMenu(records)
	if !ok || len(menu) == 0 {
		return found
	}
	q, ok := query.(string)
	if !ok {
		return found
	}
	q = desikit.Lower(desikit.TrimSpace(q))

	for _, t := range menu {
		if matches(t, q) {
			found = append(found, t)
		}
	}
	return found
}

func matches(t Thali, q string) bool {
	if strings.Contains(desikit.Lower(desikit.TrimSpace(t.Name)), q) {
		return true
	}
	for _, item := range t.Items {
		if strings.Contains(desikit.Lower(item), q) {
			return true
		}
	}
	return false
}
