// Package yamlflow provides an inlinekv.Splitter that delegates the key-value
// list grammar to gopkg.in/yaml.v3 by reading the line as a YAML flow mapping
// (`{` + line + `}`). Raw value tokens are cut back out of the line by node
// column so that inlinekv.Coerce types them exactly like the built-in scanner.
//
// The YAML grammar is stricter in a few places (a plain value cannot contain
// ": ", a flow indicator such as '}' or start with an indicator such as '@';
// tags like `!!str x` are not accepted) and such lines degrade to an empty Map.
package yamlflow

import (
	"strings"

	inlinekv "github.com/reoring/inlinekv"
	"gopkg.in/yaml.v3"
)

// Splitter returns the yaml.v3 backed splitter.
func Splitter() inlinekv.Splitter { return splitter{} }

type splitter struct{}

func (splitter) Name() string { return "yaml" }

func (splitter) Split(text string) ([]inlinekv.Pair, error) {
	if strings.HasSuffix(strings.TrimSpace(text), ",") {
		return nil, fail(inlinekv.CodeEmptyEntry, "trailing comma", int64(len(text)))
	}
	wrapped := "{" + text + "}"
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(wrapped), &doc); err != nil {
		return nil, inlinekv.Issues{{Path: "/", Code: inlinekv.CodeParseError, Message: "invalid flow mapping", Hint: err.Error(), Cause: err, Offset: -1}}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fail(inlinekv.CodeParseError, "expected a single document", -1)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fail(inlinekv.CodeParseError, "expected a flow mapping", -1)
	}

	runes := []rune(wrapped)
	closing := len(runes) - 1 // the '}' we appended
	n := len(root.Content) / 2
	pairs := make([]inlinekv.Pair, 0, n)
	for i := 0; i < n; i++ {
		k, v := root.Content[2*i], root.Content[2*i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fail(inlinekv.CodeUnsupportedValue, "key is not a scalar", -1)
		}
		if v.Kind != yaml.ScalarNode {
			return nil, issueAt(k.Value, inlinekv.CodeUnsupportedValue, "nested values are not supported", byteOffset(runes, k.Column-1))
		}
		if k.Line != 1 || v.Line != 1 {
			return nil, fail(inlinekv.CodeParseError, "line breaks are not supported", -1)
		}
		ks, vs := k.Column-1, v.Column-1
		end := closing
		if i+1 < n {
			end = root.Content[2*i+2].Column - 1
		}
		if ks < 1 || vs < ks || end < vs || end > closing {
			return nil, fail(inlinekv.CodeParseError, "unexpected node position", -1)
		}
		if !strings.ContainsRune(string(runes[ks:vs]), ':') {
			return nil, issueAt(k.Value, inlinekv.CodeMissingColon, "missing ':' in entry", byteOffset(runes, ks))
		}
		raw := strings.TrimSpace(string(runes[vs:end]))
		raw = strings.TrimSpace(strings.TrimSuffix(raw, ","))
		raw, ok := rawToken(v, raw)
		if !ok {
			return nil, issueAt(k.Value, inlinekv.CodeParseError, "unexpected content after value", byteOffset(runes, vs))
		}
		pairs = append(pairs, inlinekv.Pair{Key: k.Value, Raw: raw, Offset: byteOffset(runes, ks)})
	}
	return pairs, nil
}

// rawToken checks the sliced text against the node yaml.v3 produced. An empty
// value is reported at the colon, so its slice may still hold it. Anything
// beyond the node's own token, such as a stray '}', fails the check.
func rawToken(v *yaml.Node, raw string) (string, bool) {
	switch {
	case v.Tag == "!!null" && v.Value == "":
		rest := strings.TrimSpace(strings.TrimPrefix(raw, ":"))
		return "", rest == ""
	case v.Style&yaml.DoubleQuotedStyle != 0:
		return raw, quotedLen(raw, '"') == len(raw)
	case v.Style&yaml.SingleQuotedStyle != 0:
		return raw, quotedLen(raw, '\'') == len(raw)
	default:
		return raw, raw == v.Value
	}
}

// quotedLen returns the length of the quoted token at the start of raw, or -1.
func quotedLen(raw string, q byte) int {
	if raw == "" || raw[0] != q {
		return -1
	}
	for i := 1; i < len(raw); i++ {
		switch c := raw[i]; {
		case q == '"' && c == '\\':
			i++
		case c == q && q == '\'' && i+1 < len(raw) && raw[i+1] == '\'':
			i++
		case c == q:
			return i + 1
		}
	}
	return -1
}

// byteOffset maps a rune index of the wrapped line to a byte offset of the
// original line.
func byteOffset(runes []rune, idx int) int64 {
	if idx < 1 {
		return 0
	}
	return int64(len(string(runes[1:idx])))
}

func fail(code, msg string, offset int64) error {
	return inlinekv.Issues{{Path: "/", Code: code, Message: msg, Offset: offset}}
}

func issueAt(key, code, msg string, offset int64) error {
	return inlinekv.Issues{inlinekv.IssueAt(key, code, msg, offset)}
}
