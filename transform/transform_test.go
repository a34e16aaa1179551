package transform_test

import (
	"strings"
	"testing"

	"github.com/Gobd/desikit/transform"
	"github.com/stretchr/testify/assert"
)

type address struct {
	City  string
	State *string
}

type order struct {
	Name     string
	Items    []string
	Tags     map[string]string
	Address  address
	Previous *address
	Notes    any
	secret   string
}

func newOrder() *order {
	state := "  UP "
	return &order{
		Name:     "  Rajasthani Thali\t",
		Items:    []string{" dal baati ", "churma "},
		Tags:     map[string]string{"spice": " Hot "},
		Address:  address{City: " Lucknow ", State: &state},
		Previous: &address{City: " Kanpur"},
		Notes:    "  untouched  ",
		secret:   "  hidden ",
	}
}

func TestStructTrimSpace(t *testing.T) {
	o := newOrder()
	transform.StructTrimSpace(o)

	assert.Equal(t, "Rajasthani Thali", o.Name)
	assert.Equal(t, []string{"dal baati", "churma"}, o.Items)
	assert.Equal(t, "Hot", o.Tags["spice"])
	assert.Equal(t, "Lucknow", o.Address.City)
	assert.Equal(t, "UP", *o.Address.State)
	assert.Equal(t, "Kanpur", o.Previous.City)
	assert.Equal(t, "  untouched  ", o.Notes)
	assert.Equal(t, "  hidden ", o.secret)
}

func TestStructToLower(t *testing.T) {
	o := &order{Name: "DAL Makhani", Items: []string{"NAAN"}}
	transform.StructToLower(o)
	assert.Equal(t, "dal makhani", o.Name)
	assert.Equal(t, []string{"naan"}, o.Items)
}

func TestStructMulti(t *testing.T) {
	o := &order{Name: "  Paneer Tikka "}
	transform.StructMulti(o, transform.StructTrimSpace, func(v any) {
		transform.StructStringFunc(v, strings.ToUpper)
	})
	assert.Equal(t, "PANEER TIKKA", o.Name)
}

func TestStructTrimSpace_NonStruct(t *testing.T) {
	s := " plain "
	transform.StructTrimSpace(&s)
	transform.StructTrimSpace(nil)
	transform.StructTrimSpace(order{Name: " value "})
	assert.Equal(t, " plain ", s)
}
