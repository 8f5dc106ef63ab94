package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies what a Value holds.
type Kind uint8

const (
	// KindMissing marks an absent cell.
	KindMissing Kind = iota
	// KindNumber marks a numeric cell.
	KindNumber
	// KindText marks a textual cell.
	KindText
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Value is a single scalar cell. The zero Value is missing.
// Values are comparable and can be used as map keys.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Missing returns a missing Value.
func Missing() Value {
	return Value{}
}

// Number returns a numeric Value. NaN is stored as missing.
func Number(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	return Value{kind: KindNumber, num: f}
}

// Text returns a textual Value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// missingTokens are CSV cells read as missing values.
var missingTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
}

// ParseValue converts a raw cell to a Value: missing tokens become missing,
// anything strconv.ParseFloat accepts becomes a number, the rest is text.
func ParseValue(raw string) Value {
	s := strings.TrimSpace(raw)
	if _, ok := missingTokens[s]; ok {
		return Missing()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(f)
	}
	return Text(raw)
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the value is missing.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float returns the numeric content and whether the value is a number.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Str returns the textual content and whether the value is text.
func (v Value) Str() (string, bool) {
	return v.text, v.kind == KindText
}

// String formats the value. Missing values format as the empty string and
// numbers use the shortest representation that round-trips.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	default:
		return ""
	}
}

// AsText converts the value to text. Missing values stay missing.
func (v Value) AsText() Value {
	if v.kind == KindNumber {
		return Text(v.String())
	}
	return v
}

// Compare orders values: missing < number < text. Numbers compare
// numerically and text compares bytewise.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindNumber:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case KindText:
		return strings.Compare(a.text, b.text)
	default:
		return 0
	}
}
