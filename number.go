package desikit

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var floatType = reflect.TypeOf(float64(0))

// Number reports whether v holds a Go integer or floating point kind and
// returns it as a float64. Strings, bools, json.Number and nil are not
// numbers. NaN and infinities are.
func Number(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rv.Convert(floatType).Float(), true
	}
	return 0, false
}

// Truthy reports whether v counts as "set": nil, false, zero, NaN, the empty
// string and nil pointers, slices, maps and interfaces are falsy; everything
// else is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if f, ok := Number(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

const decimalLiteral = `[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`

var (
	floatPrefixRegexp = regexp.MustCompile(`^` + decimalLiteral)
	floatWholeRegexp  = regexp.MustCompile(`^` + decimalLiteral + `$`)
)

// ParseFloatPrefix parses the longest decimal number at the start of s after
// skipping leading whitespace. Trailing characters are ignored, so "152.50/-"
// yields 152.5. A value too large for float64 saturates to ±Inf. ok is false
// when no number prefix exists.
func ParseFloatPrefix(s string) (f float64, ok bool) {
	m := floatPrefixRegexp.FindString(trimLeftSpace(s))
	if m == "" {
		return math.NaN(), false
	}
	// The prefix is well formed, so ParseFloat can only fail on range and
	// then already returns ±Inf.
	f, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN(), false
	}
	return f, true
}

// ParseIntPrefix parses the leading integer of a string or number. Numbers
// are first rendered with [FormatNumber], so 5.7 yields 5 and 1e21 yields 1.
// Leading whitespace and a sign are accepted; a "0x" or "0X" prefix switches
// to base 16. ok is false for other types or when no digits are found.
func ParseIntPrefix(v any) (n float64, ok bool) {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	default:
		f, isNum := Number(v)
		if !isNum {
			return math.NaN(), false
		}
		s = FormatNumber(f)
	}

	s = trimLeftSpace(s)
	sign := 1.0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && digitValue(s[end]) < base {
		end++
	}
	if end == 0 {
		return math.NaN(), false
	}

	digits := s[:end]
	if base == 10 {
		// ParseFloat rounds long digit runs correctly and saturates to +Inf.
		n, _ = strconv.ParseFloat(digits, 64)
		return sign * n, true
	}
	return sign * accumulate(digits, base), true
}

// ParseNumber converts the whole of s to a number. Surrounding whitespace is
// ignored and a blank string is 0. s may be a signed decimal literal with
// optional fraction and exponent, "Infinity" with an optional sign, or an
// unsigned "0x", "0o" or "0b" integer. Anything else, including trailing
// characters, reports ok false and NaN.
func ParseNumber(s string) (f float64, ok bool) {
	s = TrimSpace(s)
	if s == "" {
		return 0, true
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			digits := s[2:]
			for i := range len(digits) {
				if digitValue(digits[i]) >= base {
					return math.NaN(), false
				}
			}
			return accumulate(digits, base), true
		}
	}
	if !floatWholeRegexp.MatchString(s) {
		return math.NaN(), false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN(), false
	}
	return f, true
}

// accumulate reads digits, already checked against base, as an integer.
func accumulate(digits string, base int) float64 {
	var n float64
	for i := range len(digits) {
		n = n*float64(base) + float64(digitValue(digits[i]))
	}
	return n
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 99
}

func trimLeftSpace(s string) string {
	return strings.TrimLeftFunc(s, isSpace)
}
