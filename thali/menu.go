package thali

import (
	"fmt"
	"math"

	"github.com/Gobd/desikit"
)

// toMenu accepts Menu, []Thali, []*Thali, []map[string]any and []any.
// Records are converted leniently; see looseThali.
func toMenu(v any) (Menu, bool) {
	switch x := v.(type) {
	case Menu:
		return x, true
	case []Thali:
		return Menu(x), true
	case []*Thali:
		return looseMenu(x), true
	case []map[string]any:
		return looseMenu(x), true
	case []any:
		return looseMenu(x), true
	}
	return nil, false
}

func looseMenu[T any](records []T) Menu {
	m := make(Menu, len(records))
	for i := range records {
		m[i] = looseThali(records[i])
	}
	return m
}

// looseThali converts a record without validating it. Missing or mistyped
// fields become zero values, except the price, which becomes NaN so that it
// poisons any aggregate it takes part in. isVeg follows truthiness.
func looseThali(v any) Thali {
	switch x := v.(type) {
	case Thali:
		return x
	case *Thali:
		if x != nil {
			return *x
		}
	case map[string]any:
		t := Thali{Price: math.NaN(), IsVeg: desikit.Truthy(x["isVeg"])}
		t.Name, _ = x["name"].(string)
		t.Items = looseItems(x["items"])
		if p, ok := desikit.Number(x["price"]); ok {
			t.Price = p
		}
		return t
	}
	return Thali{Price: math.NaN()}
}

func looseItems(v any) []string {
	switch x := v.(type) {
	case []string:
		return x
	case []any:
		out := make([]string, len(x))
		for i := range x {
			if s, ok := x[i].(string); ok {
				out[i] = s
			} else {
				out[i] = fmt.Sprint(x[i])
			}
		}
		return out
	}
	return nil
}
