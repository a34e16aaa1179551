package postcard

import (
	"strings"

	"github.com/Gobd/desikit"
	"github.com/asaskevich/govalidator"
)

// Pincode is an Indian postal index number: exactly six ASCII digits, the
// first of which is not zero.
type Pincode string

var (
	pincodeDigits = desikit.NewStringRule(govalidator.IsNumeric, "must contain only digits")
	pincodeLead   = desikit.NewStringRule(func(s string) bool {
		return !strings.HasPrefix(s, "0")
	}, "must not start with 0")
)

func (p Pincode) ValueRules() []desikit.Rule {
	return []desikit.Rule{
		desikit.Required,
		pincodeLead,
		desikit.Length(6, 6),
		pincodeDigits,
	}
}

// IsValidPincode reports whether code is a string holding a valid [Pincode],
// e.g. "400001". "012345", "40001", "40000a" and the number 400001 are not.
func IsValidPincode(code any) bool {
	s, ok := code.(string)
	if !ok {
		return false
	}
	return desikit.Validate(Pincode(s)) == nil
}
