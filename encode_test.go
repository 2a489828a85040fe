package inlinekv_test

import (
	"strings"
	"testing"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	inlinekv "github.com/reoring/inlinekv"
)

func TestMap_MarshalJSON(t *testing.T) {
	m := inlinekv.Parse(`name: foo, n: 123, f: -1.5, ok: true, d: 2021-06-01, z: null, s: "a\nb"`)
	b, err := j.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"foo","n":123,"f":-1.5,"ok":true,"d":"2021-06-01","z":null,"s":"a\nb"}`
	if string(b) != want {
		t.Fatalf("got %s want %s", b, want)
	}

	b, err = j.Marshal(inlinekv.Map{})
	if err != nil || string(b) != "{}" {
		t.Fatalf("empty map: %s %v", b, err)
	}
}

func TestMap_MarshalJSON_Infinity(t *testing.T) {
	m := inlinekv.Parse("big: 1" + strings.Repeat("0", 400))
	_, err := m.MarshalJSON()
	iss, ok := inlinekv.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != inlinekv.CodeOverflow || iss[0].Path != "/big" {
		t.Fatalf("expected overflow at /big, got %v", err)
	}
}

func TestMap_MarshalYAML_RoundTrip(t *testing.T) {
	m := inlinekv.Parse(`name: foo, n: 123, f: 0.5, ok: true, s: 'true', num: '42', z: null`)
	out, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back map[string]any
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if back["name"] != "foo" || back["n"] != 123 || back["f"] != 0.5 || back["ok"] != true || back["z"] != nil {
		t.Fatalf("unexpected round trip: %#v\n%s", back, out)
	}
	if back["s"] != "true" || back["num"] != "42" {
		t.Fatalf("strings that look like scalars must stay strings: %#v\n%s", back, out)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal node: %v", err)
	}
	mapping := doc.Content[0]
	var keys []string
	for i := 0; i < len(mapping.Content); i += 2 {
		keys = append(keys, mapping.Content[i].Value)
	}
	if strings.Join(keys, ",") != strings.Join(m.Keys(), ",") {
		t.Fatalf("key order lost: %v", keys)
	}
}
