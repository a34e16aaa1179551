package desikit

import (
	"reflect"
	"strings"
)

// MissingRules returns the names of exported struct fields that have no
// corresponding rule in the Ruler's Rules().
//
// Automatically excluded:
//   - json:"-"
//   - validate:"-"  (field intentionally has no rules)
//
// Use in tests to catch forgotten fields:
//
//	assert.Empty(t, desikit.MissingRules(&thali.Thali{}))
func MissingRules(structPtr any, exclude ...string) []string {
	r, ok := structPtr.(Ruler)
	if !ok {
		return nil
	}

	structVal := reflect.Indirect(reflect.ValueOf(structPtr))
	covered := map[string]bool{}
	for _, fr := range r.Rules() {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			continue
		}
		sf := findStructField(structVal, fv)
		if sf == nil {
			continue
		}
		covered[fieldKey(*sf)] = true
	}

	// Accepts both Go field name and json tag name.
	excl := map[string]bool{}
	for _, e := range exclude {
		excl[e] = true
	}

	var missing []string
	t := structVal.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() || jsonName(sf) == "-" || sf.Tag.Get("validate") == "-" {
			continue
		}
		key := fieldKey(sf)
		if excl[key] || excl[sf.Name] {
			continue
		}
		if !covered[key] {
			missing = append(missing, key)
		}
	}
	return missing
}

func jsonName(sf reflect.StructField) string {
	return strings.Split(sf.Tag.Get("json"), ",")[0]
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
func fieldKey(sf reflect.StructField) string {
	if tag := jsonName(sf); tag != "" && tag != "-" {
		return tag
	}
	return sf.Name
}
