package inlinekv

import (
	"bytes"
	"math"
	"strconv"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MarshalJSON renders the value as a JSON scalar. Dates become "yyyy-MM-dd"
// strings. Infinite numbers cannot be represented and yield an overflow issue.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		if math.IsInf(v.num, 0) || math.IsNaN(v.num) {
			return nil, Issues{{Path: "/", Code: CodeOverflow, Message: "number not representable in JSON", Offset: -1}}
		}
		return []byte(formatNumber(v.num)), nil
	case KindBool:
		return []byte(strconv.FormatBool(v.b)), nil
	case KindNull:
		return []byte("null"), nil
	case KindDate:
		return j.Marshal(v.date.String())
	default:
		return j.Marshal(v.str)
	}
}

// MarshalJSON renders the map as a JSON object preserving key order.
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := j.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := m.values[k].MarshalJSON()
		if err != nil {
			if iss, ok := AsIssues(err); ok {
				for n := range iss {
					iss[n].Path = KeyPointer(k)
				}
				return nil, iss
			}
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the value as a tagged YAML scalar. Strings that would
// resolve to another type are quoted by the encoder.
func (v Value) MarshalYAML() (any, error) { return v.yamlNode(), nil }

func (v Value) yamlNode() *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	switch v.kind {
	case KindNumber:
		switch {
		case math.IsInf(v.num, 1):
			n.Tag, n.Value = "!!float", ".inf"
		case math.IsInf(v.num, -1):
			n.Tag, n.Value = "!!float", "-.inf"
		case v.num == math.Trunc(v.num) && math.Abs(v.num) < 1<<53:
			n.Tag, n.Value = "!!int", strconv.FormatInt(int64(v.num), 10)
		default:
			n.Tag, n.Value = "!!float", formatNumber(v.num)
		}
	case KindBool:
		n.Tag, n.Value = "!!bool", strconv.FormatBool(v.b)
	case KindNull:
		n.Tag, n.Value = "!!null", "null"
	case KindDate:
		n.Tag, n.Value = "!!timestamp", v.date.String()
	default:
		n.Tag, n.Value = "!!str", v.str
	}
	return n
}

// MarshalYAML renders the map as a YAML mapping preserving key order.
func (m Map) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			m.values[k].yamlNode(),
		)
	}
	return n, nil
}
