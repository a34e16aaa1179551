package postcard

import (
	"math"

	"github.com/Gobd/desikit"
)

const (
	// DefaultFieldWidth is the label width FormatField pads to when no
	// width is given.
	DefaultFieldWidth = 12

	// MaxFieldWidth bounds the padding FormatField will produce.
	MaxFieldWidth = 1 << 20
)

// FormatField aligns a postcard field as "label: value", padding label on the
// right with spaces to width runes:
//
//	FormatField("From", "Guddu", nil)   // "From        : Guddu"
//	FormatField("To", "Dadi ji", 8)     // "To      : Dadi ji"
//
// A width that is not set (nil, false, 0, NaN or "") means
// DefaultFieldWidth. A numeric width is truncated toward zero, true counts
// as 1 and a numeric string is parsed whole (see [desikit.ParseNumber], so
// "0x10" is 16); anything else pads to nothing.
// label and value must be strings, and a width above MaxFieldWidth
// (including +Inf) is refused; both cases return "".
func FormatField(label, value, width any) string {
	l, ok := label.(string)
	if !ok {
		return ""
	}
	v, ok := value.(string)
	if !ok {
		return ""
	}
	w, ok := fieldWidth(width)
	if !ok {
		return ""
	}
	return desikit.PadEnd(l, w) + ": " + v
}

func fieldWidth(width any) (int, bool) {
	if !desikit.Truthy(width) {
		return DefaultFieldWidth, true
	}
	var f float64
	switch x := width.(type) {
	case bool:
		f = 1
	case string:
		parsed, ok := desikit.ParseNumber(x)
		if !ok {
			return 0, true
		}
		f = parsed
	default:
		n, isNum := desikit.Number(width)
		if !isNum {
			return 0, true
		}
		f = n
	}
	switch {
	case math.IsNaN(f), f < 0:
		return 0, true
	case f > MaxFieldWidth:
		return 0, false
	}
	return int(math.Trunc(f)), true
}
