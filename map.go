package inlinekv

import "fmt"

// Map is an ordered mapping from key to Value. Keys keep the position of their
// first appearance; setting an existing key replaces its value in place.
// The zero Map is empty and ready to read.
type Map struct {
	keys   []string
	values map[string]Value
}

func (m *Map) set(key string, v Value) {
	if m.values == nil {
		m.values = make(map[string]Value)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Len returns the number of keys.
func (m Map) Len() int { return len(m.keys) }

// Keys returns the keys in source order.
func (m Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the value stored under key.
func (m Map) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Range calls fn for each entry in source order until fn returns false.
func (m Map) Range(fn func(key string, v Value) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// ToMap converts to a plain map using Value.Interface.
func (m Map) ToMap() map[string]any {
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k] = m.values[k].Interface()
	}
	return out
}

// MapOf builds a Map from alternating key/value arguments. It is mainly meant
// for tests and examples. Keys must be strings; values may be Value, string,
// float64, int, bool, Date or nil. Anything else, or an odd argument count,
// panics.
func MapOf(kv ...any) Map {
	if len(kv)%2 != 0 {
		panic("inlinekv.MapOf: odd number of arguments")
	}
	var m Map
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("inlinekv.MapOf: key %d is %T, not string", i/2, kv[i]))
		}
		switch v := kv[i+1].(type) {
		case Value:
			m.set(k, v)
		case string:
			m.set(k, StringValue(v))
		case float64:
			m.set(k, NumberValue(v))
		case int:
			m.set(k, NumberValue(float64(v)))
		case bool:
			m.set(k, BoolValue(v))
		case Date:
			m.set(k, DateValue(v))
		case nil:
			m.set(k, NullValue())
		default:
			panic(fmt.Sprintf("inlinekv.MapOf: unsupported value type %T for key %q", v, k))
		}
	}
	return m
}

// Equal reports whether both maps hold the same keys in the same order with
// equal values.
func (m Map) Equal(o Map) bool {
	if len(m.keys) != len(o.keys) {
		return false
	}
	for i, k := range m.keys {
		if o.keys[i] != k || !m.values[k].Equal(o.values[k]) {
			return false
		}
	}
	return true
}
