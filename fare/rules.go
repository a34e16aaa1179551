package fare

import (
	"errors"
	"math"

	"github.com/Gobd/desikit"
)

// MaxDecimalPlaces is the largest precision Round accepts.
const MaxDecimalPlaces = desikit.MaxFixedDigits

// DecimalPlaces is a rounding precision: a whole number from 0 to
// MaxDecimalPlaces.
type DecimalPlaces float64

var wholeNumber = desikit.By(func(v any) error {
	f, _ := desikit.Number(v)
	if math.Trunc(f) != f {
		return errors.New("must be a whole number")
	}
	return nil
}, "whole number")

func (DecimalPlaces) ValueRules() []desikit.Rule {
	return []desikit.Rule{
		desikit.Min(0),
		desikit.Max(MaxDecimalPlaces),
		wholeNumber,
	}
}

// Fare is an amount in rupees. Surge only applies to fares above zero.
type Fare float64

// Multiplier is a surge multiplier. It must be above zero.
type Multiplier float64

var positive = []desikit.Rule{
	desikit.Required,
	desikit.Min(0).Exclusive(),
}

func (Fare) ValueRules() []desikit.Rule { return positive }

func (Multiplier) ValueRules() []desikit.Rule { return positive }
