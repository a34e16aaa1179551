package postcard_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/Gobd/desikit"
	"github.com/Gobd/desikit/postcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	assert.Equal(t,
		"Priy Dadi ji,\n\nHum theek hain\n\nAapka/Aapki,\nGuddu",
		postcard.Write("Guddu", "Dadi ji", "Hum theek hain"))

	// Values are substituted as given.
	assert.Equal(t,
		"Priy  Dadi ji ,\n\nmsg\n\nAapka/Aapki,\n Guddu",
		postcard.Write(" Guddu", " Dadi ji ", "msg"))
}

func TestWrite_Invalid(t *testing.T) {
	tests := []struct {
		name                      string
		sender, receiver, message any
	}{
		{name: "empty sender", sender: "", receiver: "Dadi ji", message: "msg"},
		{name: "blank receiver", sender: "Guddu", receiver: "  \n", message: "msg"},
		{name: "blank message", sender: "Guddu", receiver: "Dadi ji", message: " \ufeff\u2028"},
		{name: "number sender", sender: 42, receiver: "Dadi ji", message: "msg"},
		{name: "nil message", sender: "Guddu", receiver: "Dadi ji", message: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "", postcard.Write(tt.sender, tt.receiver, tt.message))
			assert.Error(t, postcard.Check(tt.sender, tt.receiver, tt.message))
		})
	}
}

func TestCheck(t *testing.T) {
	require.NoError(t, postcard.Check("Guddu", "Dadi ji", "Hum theek hain"))

	err := postcard.Check(" ", 7, "ok")
	var errs desikit.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "receiver")
	assert.EqualError(t, errs["receiver"], "expected string, got int")

	err = postcard.Check(" ", "Dadi ji", "")
	require.ErrorAs(t, err, &errs)
	assert.EqualError(t, err, "message: cannot be blank; sender: must not be blank.")
}

func TestPostcard_Rules(t *testing.T) {
	assert.Empty(t, desikit.MissingRules(&postcard.Postcard{}))
}

func TestIsValidPincode(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{in: "400001", want: true},
		{in: "110011", want: true},
		{in: "012345", want: false},
		{in: "40001", want: false},
		{in: "4000011", want: false},
		{in: "40000a", want: false},
		{in: "4000 1", want: false},
		{in: "-40000", want: false},
		{in: "४००००१", want: false},
		{in: "", want: false},
		{in: 400001, want: false},
		{in: nil, want: false},
		{in: postcard.Pincode("400001"), want: false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, postcard.IsValidPincode(tt.in))
		})
	}
}

func TestPincode_Validate(t *testing.T) {
	assert.NoError(t, desikit.Validate(postcard.Pincode("226001")))
	assert.EqualError(t, desikit.Validate(postcard.Pincode("026001")), "must not start with 0")
	assert.EqualError(t, desikit.Validate(postcard.Pincode("2260")), "the length must be exactly 6")
	assert.EqualError(t, desikit.Validate(postcard.Pincode("22600x")), "must contain only digits")
	assert.EqualError(t, desikit.Validate(postcard.Pincode("")), "cannot be blank")
}

func TestFormatField(t *testing.T) {
	tests := []struct {
		name         string
		label, value any
		width        any
		want         string
	}{
		{name: "default width", label: "From", value: "Guddu", want: "From        : Guddu"},
		{name: "explicit width", label: "To", value: "Dadi ji", width: 8, want: "To      : Dadi ji"},
		{name: "zero width means default", label: "From", value: "Guddu", width: 0, want: "From        : Guddu"},
		{name: "false width means default", label: "From", value: "Guddu", width: false, want: "From        : Guddu"},
		{name: "NaN width means default", label: "From", value: "Guddu", width: math.NaN(), want: "From        : Guddu"},
		{name: "empty string width means default", label: "From", value: "Guddu", width: "", want: "From        : Guddu"},
		{name: "fractional width truncates", label: "To", value: "x", width: 4.9, want: "To  : x"},
		{name: "numeric string width", label: "To", value: "x", width: "5", want: "To   : x"},
		{name: "true width", label: "", value: "x", width: true, want: " : x"},
		{name: "word width", label: "To", value: "x", width: "wide", want: "To: x"},
		{name: "hex string width", label: "To", value: "x", width: "0x10", want: "To              : x"},
		{name: "padded string width", label: "To", value: "x", width: " 4\n", want: "To  : x"},
		{name: "exponent string width", label: "To", value: "x", width: "5e0", want: "To   : x"},
		{name: "string width with unit", label: "To", value: "x", width: "8px", want: "To: x"},
		{name: "lower-case inf string", label: "To", value: "x", width: "inf", want: "To: x"},
		{name: "Infinity string refused", label: "To", value: "x", width: "Infinity", want: ""},
		{name: "negative width", label: "To", value: "x", width: -3, want: "To: x"},
		{name: "label longer than width", label: "Address", value: "Lucknow", width: 3, want: "Address: Lucknow"},
		{name: "width counts runes", label: "पता", value: "Lucknow", width: 5, want: "पता  : Lucknow"},
		{name: "empty value", label: "PIN", value: "", width: 4, want: "PIN : "},
		{name: "width too large", label: "To", value: "x", width: postcard.MaxFieldWidth + 1, want: ""},
		{name: "infinite width", label: "To", value: "x", width: math.Inf(1), want: ""},
		{name: "label not string", label: 1, value: "x", want: ""},
		{name: "value not string", label: "To", value: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postcard.FormatField(tt.label, tt.value, tt.width))
		})
	}
}

func TestIsFromState(t *testing.T) {
	assert.True(t, postcard.IsFromState("Guddu, Lucknow, UP", "UP"))
	assert.False(t, postcard.IsFromState("Priya, Mumbai, MH", "UP"))
	assert.False(t, postcard.IsFromState("Guddu, Lucknow, up", "UP"))
	assert.False(t, postcard.IsFromState("Guddu, Lucknow, UP ", "UP"))
	assert.True(t, postcard.IsFromState("Guddu, Lucknow, UP", ""))
	assert.False(t, postcard.IsFromState(nil, "UP"))
	assert.False(t, postcard.IsFromState("Guddu, Lucknow, UP", 7))
}

func TestCountVowels(t *testing.T) {
	assert.Equal(t, 6, postcard.CountVowels("Namaste India"))
	assert.Equal(t, 3, postcard.CountVowels("Namaste"))
	assert.Equal(t, 10, postcard.CountVowels("aeiouAEIOU"))
	assert.Equal(t, 0, postcard.CountVowels("xyz"))
	assert.Equal(t, 0, postcard.CountVowels(""))
	assert.Equal(t, 1, postcard.CountVowels("नमस्ते a"))
	assert.Equal(t, 0, postcard.CountVowels(42))
	assert.Equal(t, 0, postcard.CountVowels(nil))
}
