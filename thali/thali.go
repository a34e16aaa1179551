package thali

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Gobd/desikit"
	"github.com/Gobd/desikit/transform"
)

// Thali is one platter on the menu.
type Thali struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
	Price float64  `json:"price"`
	IsVeg bool     `json:"isVeg"`
}

// Menu is an ordered list of thalis. Names need not be unique.
type Menu []Thali

var notNaN = desikit.Custom(func(v any) error {
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return errors.New("must be a number")
	}
	return nil
}, "must be a number")

func (t *Thali) Rules() []*desikit.FieldRules {
	return []*desikit.FieldRules{
		desikit.Field(&t.Name, desikit.Required, desikit.NotBlank, desikit.Example("Rajasthani Thali")),
		desikit.Field(&t.Items, desikit.Required, desikit.Describe("at least one item")),
		desikit.Field(&t.Price, desikit.Required, notNaN, desikit.Describe("non-zero price in rupees")),
		desikit.Field(&t.IsVeg, desikit.Default(false)),
	}
}

// Normalize trims surrounding whitespace from the name and every item. It is
// applied by DecodeMenu.
func (t *Thali) Normalize() {
	transform.StructTrimSpace(t)
}

// Label is "Veg" or "Non-Veg".
func (t Thali) Label() string {
	if t.IsVeg {
		return "Veg"
	}
	return "Non-Veg"
}

// FromValue converts a record given as Thali, *Thali or map[string]any into
// a Thali. Map records must carry all four fields with the right types:
// "name" a string, "items" a []string or a []any of strings, "price" a
// number and "isVeg" a bool. Failures are reported as ValidationErrors keyed
// by field. The record's rules are not applied; see Check.
func FromValue(v any) (Thali, error) {
	switch x := v.(type) {
	case Thali:
		return x, nil
	case *Thali:
		if x == nil {
			return Thali{}, errors.New("must not be nil")
		}
		return *x, nil
	case map[string]any:
		return fromMap(x)
	}
	return Thali{}, fmt.Errorf("expected a thali record, got %T", v)
}

func fromMap(m map[string]any) (Thali, error) {
	var t Thali
	errs := desikit.ValidationErrors{}

	if name, ok := m["name"]; !ok {
		errs["name"] = errors.New("is required")
	} else if t.Name, ok = name.(string); !ok {
		errs["name"] = fmt.Errorf("expected string, got %T", name)
	}

	if items, ok := m["items"]; !ok {
		errs["items"] = errors.New("is required")
	} else if t.Items, ok = stringList(items); !ok {
		errs["items"] = fmt.Errorf("expected a list of strings, got %T", items)
	}

	if price, ok := m["price"]; !ok {
		errs["price"] = errors.New("is required")
	} else if t.Price, ok = desikit.Number(price); !ok {
		errs["price"] = fmt.Errorf("expected number, got %T", price)
	}

	if isVeg, ok := m["isVeg"]; !ok {
		errs["isVeg"] = errors.New("is required")
	} else if t.IsVeg, ok = isVeg.(bool); !ok {
		errs["isVeg"] = fmt.Errorf("expected bool, got %T", isVeg)
	}

	if len(errs) > 0 {
		return Thali{}, errs
	}
	return t, nil
}

func stringList(v any) ([]string, bool) {
	switch x := v.(type) {
	case []string:
		return x, true
	case []any:
		out := make([]string, len(x))
		for i := range x {
			s, ok := x[i].(string)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

// Check explains why Describe would refuse record. It returns nil for a
// record with a non-blank name, at least one item, and a non-zero, non-NaN
// price.
func Check(record any) error {
	t, err := FromValue(record)
	if err != nil {
		return err
	}
	return desikit.Validate(&t)
}

// Describe renders a one-line summary of record:
//
//	RAJASTHANI THALI (Veg) - Items: dal, churma - Rs.250.00
//
// The name is upper-cased, items are joined with ", " and the price always
// shows two decimals. Describe returns "" for any record Check rejects.
func Describe(record any) string {
	t, err := FromValue(record)
	if err != nil {
		return ""
	}
	if err := desikit.Validate(&t); err != nil {
		return ""
	}
	return fmt.Sprintf("%s (%s) - Items: %s - Rs.%s",
		desikit.Upper(t.Name), t.Label(), strings.Join(t.Items, ", "), desikit.FormatFixed(t.Price, 2))
}
