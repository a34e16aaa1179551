package desikit

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// MaxFixedDigits is the largest number of fraction digits FormatFixed
// produces; larger requests are clamped to it.
const MaxFixedDigits = 100

// fixedLimit is the magnitude from which FormatFixed gives up on fixed-point
// notation and falls back to FormatNumber.
const fixedLimit = 1e21

// FormatFixed formats x with exactly digits digits after the decimal point.
//
// Rounding is applied to the exact binary value of x, with ties rounded away
// from zero: 2.5 → "3", 0.125 → "0.13", but 1.005 → "1.00" because 1.005 is
// stored as 1.00499999999999989…. A negative x keeps its sign even when it
// rounds to zero ("-0.00"). NaN yields "NaN" and magnitudes of 1e21 and up
// use [FormatNumber]. digits is clamped to [0, MaxFixedDigits].
func FormatFixed(x float64, digits int) string {
	if math.IsNaN(x) {
		return "NaN"
	}
	digits = min(max(digits, 0), MaxFixedDigits)
	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}
	if x >= fixedLimit {
		return sign + FormatNumber(x)
	}

	// A float64 below 1e21 has at most 1074 significant fraction digits, so
	// this expansion is exact.
	exact := new(big.Float).SetFloat64(x).Text('f', 1100)
	intPart, frac, _ := strings.Cut(exact, ".")

	kept := []byte(intPart + frac[:digits])
	if frac[digits] >= '5' {
		kept = incrementDecimal(kept)
	}

	intLen := len(kept) - digits
	out := string(kept[:intLen])
	if digits > 0 {
		out += "." + string(kept[intLen:])
	}
	return sign + out
}

// incrementDecimal adds one to the decimal digit string d, growing it on
// carry out of the top digit.
func incrementDecimal(d []byte) []byte {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] < '9' {
			d[i]++
			return d
		}
		d[i] = '0'
	}
	return append([]byte{'1'}, d...)
}

// FormatNumber renders x in its shortest round-tripping decimal form:
// "250", "250.5", "0.30000000000000004". Magnitudes of 1e21 and up, and
// non-zero magnitudes below 1e-6, use exponent notation ("1e+21",
// "1.5e-7"). Negative zero prints as "0"; infinities as "Infinity" and
// "-Infinity"; NaN as "NaN".
func FormatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}

	abs := math.Abs(x)
	if abs >= fixedLimit || abs < 1e-6 {
		s := strconv.FormatFloat(x, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		expSign, expDigits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + expSign + expDigits
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
