package desikit_test

import (
	"testing"

	v "github.com/Gobd/desikit"
	"github.com/stretchr/testify/assert"
)

type checkRecord struct {
	Name     string `json:"name"`
	Price    float64
	Internal string `json:"-"`
	Ignored  string `json:"ignored" validate:"-"`
	Stock    int    `json:"stock,omitempty"`
	Tags     []string
	private  string
}

func (c *checkRecord) Rules() []*v.FieldRules {
	return []*v.FieldRules{
		v.Field(&c.Name, v.Required),
	}
}

func TestMissingRules(t *testing.T) {
	tests := []struct {
		name    string
		exclude []string
		want    []string
	}{
		{name: "all missing reported", want: []string{"Price", "stock", "Tags"}},
		{name: "exclude by json name", exclude: []string{"stock"}, want: []string{"Price", "Tags"}},
		{name: "exclude by field name", exclude: []string{"Stock", "Price", "Tags"}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.MissingRules(&checkRecord{}, tt.exclude...))
		})
	}
}

func TestMissingRules_NotRuler(t *testing.T) {
	assert.Nil(t, v.MissingRules(&struct{ A string }{}))
	assert.Nil(t, v.MissingRules("thali"))
}
