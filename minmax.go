package desikit

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ThresholdRule checks a number against a lower or upper bound. Any Go
// integer or floating point kind is compared as a float64, as are numeric
// strings and json.Number values. Empty values pass; pair it with Required.
type ThresholdRule struct {
	rule      validation.ThresholdRule
	threshold float64
	min       bool
	exclusive bool
}

// Min returns a validation rule that checks if a value is greater than or equal to the specified minimum.
func Min(threshold float64) ThresholdRule {
	return ThresholdRule{
		rule:      validation.Min(threshold),
		threshold: threshold,
		min:       true,
	}
}

// Max returns a validation rule that checks if a value is less than or equal to the specified maximum.
func Max(threshold float64) ThresholdRule {
	return ThresholdRule{
		rule:      validation.Max(threshold),
		threshold: threshold,
	}
}

// Exclusive makes the bound strict: Min(0).Exclusive() rejects 0.
func (r ThresholdRule) Exclusive() ThresholdRule {
	r.rule = r.rule.Exclusive()
	r.exclusive = true
	return r
}

func (r ThresholdRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	f := r.threshold
	if r.min {
		ref.Value.Min = &f
		ref.Value.ExclusiveMin = r.exclusive
	} else {
		ref.Value.Max = &f
		ref.Value.ExclusiveMax = r.exclusive
	}
	return nil
}

// Validate checks if the given value is valid or not.
func (r ThresholdRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}

	// json.Number
	if v, ok := value.(fmt.Stringer); ok {
		value = v.String()
	}

	switch v := value.(type) {
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.New("must be a number")
		}
		value = f
	default:
		f, ok := Number(value)
		if !ok {
			return fmt.Errorf("expected number, got %T", value)
		}
		value = f
	}

	return r.rule.Validate(value)
}
