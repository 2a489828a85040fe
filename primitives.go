package inlinekv

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind enumerates the value variants.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindDate:
		return "date"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Date is a calendar date without time of day or zone, built from a
// yyyy-MM-dd literal. The fields are taken verbatim; see Valid.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// String renders the date as yyyy-MM-dd.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight UTC of the date. Out-of-range fields are normalized
// the way time.Date does.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Valid reports whether the date exists in the proleptic Gregorian calendar.
func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	t := d.Time()
	return t.Year() == d.Year && t.Month() == d.Month && t.Day() == d.Day
}

// Value is a typed scalar. The zero Value is the empty string.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	date Date
}

func StringValue(s string) Value  { return Value{kind: KindString, str: s} }
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }
func BoolValue(b bool) Value      { return Value{kind: KindBool, b: b} }
func NullValue() Value            { return Value{kind: KindNull} }
func DateValue(d Date) Value      { return Value{kind: KindDate, date: d} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) AsDate() (Date, bool) { return v.date, v.kind == KindDate }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Interface returns the value as string, float64, bool, nil or Date.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindNull:
		return nil
	case KindDate:
		return v.date
	default:
		return v.str
	}
}

// String renders the value for debugging; strings are quoted.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNull:
		return "null"
	case KindDate:
		return v.date.String()
	default:
		return strconv.Quote(v.str)
	}
}

// Equal reports whether both values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindNull:
		return true
	case KindDate:
		return v.date == o.date
	default:
		return v.str == o.str
	}
}

// formatNumber renders a float64 using the shortest representation.
func formatNumber(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
