package inlinekv_test

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	inlinekv "github.com/reoring/inlinekv"
	"github.com/reoring/inlinekv/i18n"
)

func mustGet(t *testing.T, m inlinekv.Map, key string) inlinekv.Value {
	t.Helper()
	v, ok := m.Get(key)
	if !ok {
		t.Fatalf("key %q missing in %v", key, m.Keys())
	}
	return v
}

func TestParse_Examples(t *testing.T) {
	cases := []struct {
		in   string
		want inlinekv.Map
	}{
		{`name: 'a''b'`, inlinekv.MapOf("name", "a'b")},
		{`name: "a\nb"`, inlinekv.MapOf("name", "a\nb")},
		{`name: 'a\nb'`, inlinekv.MapOf("name", `a\nb`)},
		{`x: -123`, inlinekv.MapOf("x", -123.0)},
		{`x: 123.5`, inlinekv.MapOf("x", 123.5)},
		{`x: true`, inlinekv.MapOf("x", true)},
		{`x: FALSE`, inlinekv.MapOf("x", false)},
		{`x: null`, inlinekv.MapOf("x", nil)},
		{`x: NULL`, inlinekv.MapOf("x", "NULL")},
		{`x: 2021-06-01`, inlinekv.MapOf("x", inlinekv.Date{Year: 2021, Month: time.June, Day: 1})},
		{`x: 2021-6-1`, inlinekv.MapOf("x", "2021-6-1")},
		{
			"name: foo, number: 123, checked: true, creationTime: 2021-06-01",
			inlinekv.MapOf("name", "foo", "number", 123, "checked", true, "creationTime", inlinekv.Date{Year: 2021, Month: time.June, Day: 1}),
		},
		{`a: 'x, y', b: "p:q"`, inlinekv.MapOf("a", "x, y", "b", "p:q")},
		{`n: 0, 'my key': 1, "k:2": two`, inlinekv.MapOf("n", 0, "my key", 1, "k:2", "two")},
		{"  a :   foo bar  ,b:1  ", inlinekv.MapOf("a", "foo bar", "b", 1)},
		{`note: it's fine`, inlinekv.MapOf("note", "it's fine")},
		{`url: http://example.com:8080/x`, inlinekv.MapOf("url", "http://example.com:8080/x")},
		{`x: "a\"b"`, inlinekv.MapOf("x", `a\"b`)},
		{`x: "a\\nb"`, inlinekv.MapOf("x", `a\nb`)},
		{`x: "tab\there"`, inlinekv.MapOf("x", "tab\there")},
		{`x: ""`, inlinekv.MapOf("x", `""`)},
		{`x: ''`, inlinekv.MapOf("x", `''`)},
		{`x:`, inlinekv.MapOf("x", "")},
		{`x: +5, y: 007, z: 1., w: .5, v: 1e3`, inlinekv.MapOf("x", 5, "y", 7, "z", "1.", "w", ".5", "v", "1e3")},
	}
	for _, tc := range cases {
		got, iss := inlinekv.ParseWithIssues(tc.in)
		if len(iss) != 0 {
			t.Fatalf("%q: unexpected issues: %v", tc.in, iss)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("%q: got %v want %v", tc.in, got.ToMap(), tc.want.ToMap())
		}
	}
}

func TestParse_BareValue(t *testing.T) {
	cases := []struct {
		in   string
		want inlinekv.Value
	}{
		{"hello world", inlinekv.StringValue("hello world")},
		{"  42  ", inlinekv.NumberValue(42)},
		{"true", inlinekv.BoolValue(true)},
		{"2021-06-01", inlinekv.DateValue(inlinekv.Date{Year: 2021, Month: time.June, Day: 1})},
		{"null", inlinekv.NullValue()},
		{`'a: b'`, inlinekv.StringValue("a: b")},
		{`"a: b, c: d"`, inlinekv.StringValue("a: b, c: d")},
		{`'a', b: c`, inlinekv.StringValue(`'a', b: c`)},
		{`""`, inlinekv.StringValue(`""`)},
		{"a, b", inlinekv.StringValue("a, b")},
	}
	for _, tc := range cases {
		m := inlinekv.Parse(tc.in)
		if m.Len() != 1 {
			t.Fatalf("%q: expected one entry, got %v", tc.in, m.Keys())
		}
		if got := mustGet(t, m, inlinekv.DefaultKey); !got.Equal(tc.want) {
			t.Fatalf("%q: got %v want %v", tc.in, got, tc.want)
		}
		if got := inlinekv.Coerce(strings.TrimSpace(tc.in)); !got.Equal(tc.want) {
			t.Fatalf("%q: bare value must equal Coerce, got %v", tc.in, got)
		}
	}
}

func TestParse_Empty(t *testing.T) {
	empty := ""
	for name, m := range map[string]inlinekv.Map{
		"nil":        inlinekv.ParseOptional(nil),
		"empty ptr":  inlinekv.ParseOptional(&empty),
		"empty":      inlinekv.Parse(""),
		"whitespace": inlinekv.Parse(" \t "),
	} {
		if m.Len() != 0 {
			t.Fatalf("%s: expected empty map, got %v", name, m.Keys())
		}
	}
}

func TestParse_OrderAndDuplicates(t *testing.T) {
	m := inlinekv.Parse("b: 1, a: 2, c: 3")
	if got := strings.Join(m.Keys(), ","); got != "b,a,c" {
		t.Fatalf("order: got %s", got)
	}

	m = inlinekv.Parse("a: 1, b: 2, a: 3")
	if m.Len() != 2 {
		t.Fatalf("expected 2 keys, got %v", m.Keys())
	}
	if got := strings.Join(m.Keys(), ","); got != "a,b" {
		t.Fatalf("duplicate must keep first position, got %s", got)
	}
	if n, _ := mustGet(t, m, "a").AsNumber(); n != 3 {
		t.Fatalf("later duplicate must win, got %v", n)
	}
}

func TestParse_MalformedDegradesToEmpty(t *testing.T) {
	cases := map[string]string{
		`a: 'x`:          inlinekv.CodeUnterminatedQuote,
		`a: "x\"`:        inlinekv.CodeUnterminatedQuote,
		`a: 1,`:          inlinekv.CodeEmptyEntry,
		`a: 1,, b: 2`:    inlinekv.CodeEmptyEntry,
		`a: 1, b`:        inlinekv.CodeMissingColon,
		`: 1`:            inlinekv.CodeEmptyKey,
		`a: 1, '': 2`:    inlinekv.CodeEmptyKey,
		`a: 'x' y`:       inlinekv.CodeUnexpectedChar,
		`a: 1, 'k' v: 2`: inlinekv.CodeUnexpectedChar,
	}
	for in, code := range cases {
		if m := inlinekv.Parse(in); m.Len() != 0 {
			t.Fatalf("%q: expected empty map, got %v", in, m.Keys())
		}
		m, iss := inlinekv.ParseWithIssues(in)
		if m.Len() != 0 {
			t.Fatalf("%q: ParseWithIssues must return the same empty map", in)
		}
		if !iss.HasCode(code) {
			t.Fatalf("%q: expected %s, got %v", in, code, iss)
		}
	}
}

func TestParse_NumberOverflow(t *testing.T) {
	m := inlinekv.Parse("x: 1" + strings.Repeat("0", 400))
	n, ok := mustGet(t, m, "x").AsNumber()
	if !ok || !math.IsInf(n, 1) {
		t.Fatalf("expected +Inf number, got %v", mustGet(t, m, "x"))
	}
}

func TestParse_DuplicatePolicies(t *testing.T) {
	in := "a: 1, a: 2"

	m, iss := inlinekv.ParseWithIssues(in, inlinekv.ParseOpt{Strictness: inlinekv.Strictness{OnDuplicateKey: inlinekv.Warn}})
	if n, _ := mustGet(t, m, "a").AsNumber(); n != 2 {
		t.Fatalf("warn keeps overwrite semantics, got %v", n)
	}
	if len(iss) != 1 || iss[0].Code != inlinekv.CodeDuplicateKey || iss[0].Path != "/a" || iss[0].Offset != 6 {
		t.Fatalf("expected duplicate_key at /a offset 6, got %+v", iss)
	}

	m, iss = inlinekv.ParseWithIssues(in, inlinekv.ParseOpt{Strictness: inlinekv.Strictness{OnDuplicateKey: inlinekv.Error}})
	if m.Len() != 0 {
		t.Fatalf("error policy must degrade to empty map")
	}
	if !iss.HasCode(inlinekv.CodeDuplicateKey) {
		t.Fatalf("expected duplicate_key, got %v", iss)
	}

	if _, iss = inlinekv.ParseWithIssues(in); len(iss) != 0 {
		t.Fatalf("ignore policy must be silent, got %v", iss)
	}
}

func TestParse_MaxBytes(t *testing.T) {
	opt := inlinekv.ParseOpt{MaxBytes: 5}
	m, iss := inlinekv.ParseWithIssues("name: foo", opt)
	if m.Len() != 0 || !iss.HasCode(inlinekv.CodeTooLong) {
		t.Fatalf("expected too_long and empty map, got %v %v", m.Keys(), iss)
	}
	if m := inlinekv.Parse("a: 1", opt); m.Len() != 1 {
		t.Fatalf("short input must pass, got %v", m.Keys())
	}
}

func TestParseWithIssues_Translator(t *testing.T) {
	_, en := inlinekv.ParseWithIssues("a: 1, b")
	_, ja := inlinekv.ParseWithIssues("a: 1, b", inlinekv.ParseOpt{Translator: i18n.New("ja")})
	if len(en) != 1 || len(ja) != 1 {
		t.Fatalf("expected one issue each, got %v / %v", en, ja)
	}
	if en[0].Message == ja[0].Message {
		t.Fatalf("expected localized message, got %q", ja[0].Message)
	}
	if en[0].Offset != 6 || en[0].Hint == "" {
		t.Fatalf("unexpected issue: %+v", en[0])
	}
}

type stubSplitter struct {
	pairs []inlinekv.Pair
	err   error
	panic bool
}

func (s stubSplitter) Split(string) ([]inlinekv.Pair, error) {
	if s.panic {
		panic("boom")
	}
	return s.pairs, s.err
}
func (stubSplitter) Name() string { return "stub" }

func TestParse_CustomSplitter(t *testing.T) {
	opt := inlinekv.ParseOpt{Splitter: stubSplitter{pairs: []inlinekv.Pair{{Key: "k", Raw: "'v'"}, {Key: "n", Raw: "1"}}}}
	m := inlinekv.Parse("ignored: x", opt)
	if !m.Equal(inlinekv.MapOf("k", "v", "n", 1)) {
		t.Fatalf("unexpected map: %v", m.ToMap())
	}

	cause := errors.New("nope")
	m, iss := inlinekv.ParseWithIssues("a: b", inlinekv.ParseOpt{Splitter: stubSplitter{err: cause}})
	if m.Len() != 0 || len(iss) != 1 || iss[0].Code != inlinekv.CodeParseError || !errors.Is(iss[0].Cause, cause) {
		t.Fatalf("plain errors map to parse_error, got %+v", iss)
	}

	m, iss = inlinekv.ParseWithIssues("a: b", inlinekv.ParseOpt{Splitter: stubSplitter{panic: true}})
	if m.Len() != 0 || !iss.HasCode(inlinekv.CodeParseError) {
		t.Fatalf("panicking splitter must degrade, got %v %v", m.Keys(), iss)
	}

	_, iss = inlinekv.ParseWithIssues("a: b", inlinekv.ParseOpt{Splitter: stubSplitter{panic: true}, Translator: i18n.New("ja")})
	if len(iss) != 1 || !strings.HasPrefix(iss[0].Message, "解析エラー") || !strings.Contains(iss[0].Hint, "boom") {
		t.Fatalf("splitter issues must be localized, got %+v", iss)
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := inlinekv.Issues{
		{Path: "/", Code: inlinekv.CodeMissingColon, Offset: 3},
		{Path: "/b", Code: inlinekv.CodeDuplicateKey, Offset: -1},
		{Path: "/", Code: inlinekv.CodeEmptyKey, Offset: 0},
		{Path: "/", Code: inlinekv.CodeEmptyEntry, Offset: 9},
	}
	s := iss.Error()
	if !strings.Contains(s, "missing_colon at / (offset 3)") || !strings.Contains(s, "total 4") {
		t.Fatalf("unexpected summary: %q", s)
	}
	var err error = iss
	got, ok := inlinekv.AsIssues(err)
	if !ok || len(got) != 4 {
		t.Fatalf("AsIssues failed: %v", got)
	}
}
