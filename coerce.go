package inlinekv

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	eng "github.com/reoring/inlinekv/internal/engine"
)

var (
	numberPattern = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)
	datePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// coercer is one rung of the typing ladder.
type coercer struct {
	match func(tok string) bool
	build func(tok string) (Value, bool)
}

// coercers are tried in order; the first that matches and builds wins.
var coercers = []coercer{
	{isDoubleQuoted, buildDoubleQuoted},
	{isSingleQuoted, buildSingleQuoted},
	{numberPattern.MatchString, buildNumber},
	{isBool, buildBool},
	{datePattern.MatchString, buildDate},
	{isNull, buildNull},
}

// Coerce classifies a raw token (no surrounding whitespace) into a typed Value.
// Tokens matching no specific rule are returned verbatim as strings, so `""`
// and `''` stay two-character strings.
func Coerce(tok string) Value {
	for _, c := range coercers {
		if !c.match(tok) {
			continue
		}
		if v, ok := c.build(tok); ok {
			return v
		}
	}
	return StringValue(tok)
}

// ParseDate parses a strict yyyy-MM-dd literal. Month and day are taken as
// written; no calendar validation happens here.
func ParseDate(s string) (Date, bool) {
	if !datePattern.MatchString(s) {
		return Date{}, false
	}
	y, _ := strconv.Atoi(s[0:4])
	m, _ := strconv.Atoi(s[5:7])
	d, _ := strconv.Atoi(s[8:10])
	return Date{Year: y, Month: time.Month(m), Day: d}, true
}

func isDoubleQuoted(tok string) bool {
	return len(tok) > 2 && tok[0] == '"' && tok[len(tok)-1] == '"'
}

func isSingleQuoted(tok string) bool {
	return len(tok) > 2 && tok[0] == '\'' && tok[len(tok)-1] == '\''
}

func isBool(tok string) bool {
	return asciiEqualFold(tok, "true") || asciiEqualFold(tok, "false")
}

// asciiEqualFold is strings.EqualFold restricted to ASCII letters, so that
// Unicode folds such as U+017F (ſ) do not match "s".
func asciiEqualFold(s, lower string) bool {
	if len(s) != len(lower) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != lower[i] {
			return false
		}
	}
	return true
}

func isNull(tok string) bool { return tok == "null" }

func buildDoubleQuoted(tok string) (Value, bool) {
	return StringValue(eng.UnquoteDouble(tok[1 : len(tok)-1])), true
}

func buildSingleQuoted(tok string) (Value, bool) {
	return StringValue(eng.UnquoteSingle(tok[1 : len(tok)-1])), true
}

func buildBool(tok string) (Value, bool) { return BoolValue(asciiEqualFold(tok, "true")), true }

func buildDate(tok string) (Value, bool) {
	d, ok := ParseDate(tok)
	return DateValue(d), ok
}

func buildNull(string) (Value, bool) { return NullValue(), true }

func buildNumber(tok string) (Value, bool) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Value{}, false
	}
	// ErrRange still yields ±Inf.
	return NumberValue(f), true
}
