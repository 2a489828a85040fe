package codec

import (
	"context"
	"math"
	"strconv"
	"strings"

	inlinekv "github.com/reoring/inlinekv"
)

// Line returns a Codec between inline key-value text and inlinekv.Map.
// Decode fails with the parse Issues where inlinekv.Parse would silently
// return an empty Map. Encode renders `key: value, ...` (or a bare value for a
// lone default key) such that Decode restores the same Map.
func Line(opts ...inlinekv.ParseOpt) inlinekv.Codec[string, inlinekv.Map] {
	return lineCodec{opts: opts}
}

type lineCodec struct{ opts []inlinekv.ParseOpt }

func (c lineCodec) Decode(ctx context.Context, a string) (inlinekv.Map, error) {
	m, iss := inlinekv.ParseWithIssues(a, c.opts...)
	if m.Len() == 0 && len(iss) > 0 {
		return m, iss
	}
	return m, nil
}

func (c lineCodec) Encode(ctx context.Context, b inlinekv.Map) (string, error) {
	if b.Len() == 1 {
		if v, ok := b.Get(inlinekv.DefaultKey); ok {
			return formatToken(inlinekv.DefaultKey, v)
		}
	}
	var sb strings.Builder
	var err error
	b.Range(func(k string, v inlinekv.Value) bool {
		var key, tok string
		if key, err = formatKey(k); err != nil {
			return false
		}
		if sb.Len() == 0 && key != k {
			// a leading quote would turn the line into a bare value
			err = inlinekv.Issues{inlinekv.IssueAt(k, inlinekv.CodeUnsupportedValue, "first key cannot be quoted", -1)}
			return false
		}
		if tok, err = formatToken(k, v); err != nil {
			return false
		}
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(tok)
		return true
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

func formatKey(k string) (string, error) {
	if k == "" {
		return "", inlinekv.Issues{{Path: "/", Code: inlinekv.CodeEmptyKey, Message: "empty key cannot be encoded", Offset: -1}}
	}
	if plainSafe(k) {
		return k, nil
	}
	return singleQuote(k), nil
}

func formatToken(key string, v inlinekv.Value) (string, error) {
	switch v.Kind() {
	case inlinekv.KindNumber:
		f, _ := v.AsNumber()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return "", inlinekv.Issues{inlinekv.IssueAt(key, inlinekv.CodeOverflow, "number cannot be written back", -1)}
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case inlinekv.KindBool, inlinekv.KindNull:
		return v.String(), nil
	case inlinekv.KindDate:
		d, _ := v.AsDate()
		return DateText().Encode(context.Background(), d)
	default:
		s, _ := v.AsString()
		if s == "" {
			return "", inlinekv.Issues{inlinekv.IssueAt(key, inlinekv.CodeUnsupportedValue, "empty string has no inline form", -1)}
		}
		if plainSafe(s) {
			if got, ok := inlinekv.Coerce(s).AsString(); ok && got == s {
				return s, nil
			}
		}
		return singleQuote(s), nil
	}
}

// plainSafe reports whether s survives as an unquoted token.
func plainSafe(s string) bool {
	if s == "" || s != strings.TrimSpace(s) {
		return false
	}
	if s[0] == '\'' || s[0] == '"' {
		return false
	}
	return !strings.ContainsAny(s, ",:\n")
}

func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
