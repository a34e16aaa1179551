package thali_test

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"github.com/Gobd/desikit/thali"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	s := thali.GetStats(menu)
	require.NotNil(t, s)
	assert.Equal(t, &thali.Stats{
		TotalThalis: 3,
		VegCount:    2,
		NonVegCount: 1,
		AvgPrice:    "250.00",
		Cheapest:    200,
		Costliest:   300,
		Names:       []string{"Rajasthani Thali", "Punjabi Thali", "Gujarati Thali"},
	}, s)

	assert.Equal(t, s.TotalThalis, s.VegCount+s.NonVegCount)
	avg, err := strconv.ParseFloat(s.AvgPrice, 64)
	require.NoError(t, err)
	assert.LessOrEqual(t, s.Cheapest, avg)
	assert.LessOrEqual(t, avg, s.Costliest)
}

func TestGetStats_Inputs(t *testing.T) {
	decoded := []any{
		map[string]any{"name": "Rajasthani Thali", "items": []any{"dal"}, "price": 250.0, "isVeg": true},
		map[string]any{"name": "Punjabi Thali", "items": []any{"naan"}, "price": 301.0, "isVeg": false},
	}
	s := thali.GetStats(decoded)
	require.NotNil(t, s)
	assert.Equal(t, "275.50", s.AvgPrice)
	assert.Equal(t, 1, s.VegCount)
	assert.Equal(t, []string{"Rajasthani Thali", "Punjabi Thali"}, s.Names)

	s = thali.GetStats([]*thali.Thali{&gujarati})
	require.NotNil(t, s)
	assert.Equal(t, "200.00", s.AvgPrice)
	assert.Equal(t, float64(200), s.Cheapest)
	assert.Equal(t, float64(200), s.Costliest)

	s = thali.GetStats([]map[string]any{{"name": "Chai", "price": 10, "isVeg": "yes"}})
	require.NotNil(t, s)
	assert.Equal(t, 1, s.VegCount)
}

func TestGetStats_Invalid(t *testing.T) {
	assert.Nil(t, thali.GetStats([]any{}))
	assert.Nil(t, thali.GetStats(thali.Menu{}))
	assert.Nil(t, thali.GetStats(nil))
	assert.Nil(t, thali.GetStats(rajasthani))
	assert.Nil(t, thali.GetStats("menu"))
}

func TestGetStats_MalformedRecordPropagates(t *testing.T) {
	s := thali.GetStats([]any{
		map[string]any{"name": "Rajasthani Thali", "items": []any{"dal"}, "price": 250.0, "isVeg": true},
		map[string]any{"name": "Mystery"},
	})
	require.NotNil(t, s)
	assert.Equal(t, 2, s.TotalThalis)
	assert.Equal(t, 1, s.NonVegCount)
	assert.Equal(t, "NaN", s.AvgPrice)
	assert.True(t, math.IsNaN(s.Cheapest))
	assert.True(t, math.IsNaN(s.Costliest))
	assert.Equal(t, []string{"Rajasthani Thali", "Mystery"}, s.Names)
}

func TestStats_JSON(t *testing.T) {
	b, err := json.Marshal(thali.GetStats(thali.Menu{rajasthani}))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"totalThalis": 1,
		"vegCount": 1,
		"nonVegCount": 0,
		"avgPrice": "250.00",
		"cheapest": 250,
		"costliest": 250,
		"names": ["Rajasthani Thali"]
	}`, string(b))
}
