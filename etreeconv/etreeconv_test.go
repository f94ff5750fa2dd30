package etreeconv_test

import (
	"reflect"
	"testing"

	"github.com/beevik/etree"

	"github.com/luckyluke/soaplib/etreeconv"
)

func TestMapToElement_RoundTrip(t *testing.T) {
	in := map[string]any{
		"name": "doe",
		"address": map[string]any{
			"city": "berlin",
		},
		"tags":  []any{"a", "b", "c"},
		"empty": nil,
	}

	root := etree.NewElement("record")
	etreeconv.MapToElement(root, in)
	got := etreeconv.ElementToMap(root)

	want := map[string]any{
		"name":    "doe",
		"address": map[string]any{"city": "berlin"},
		"tags":    []any{"a", "b", "c"},
		"empty":   "",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestMapToElement_DeterministicOrder(t *testing.T) {
	in := map[string]any{"c": "3", "a": "1", "b": "2"}
	root := etree.NewElement("record")
	etreeconv.MapToElement(root, in)

	var tags []string
	for _, c := range root.ChildElements() {
		tags = append(tags, c.Tag)
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(tags, want) {
		t.Fatalf("keys must be emitted sorted, got %v", tags)
	}
}

func TestElementToMap_RepeatedSiblingsCollapse(t *testing.T) {
	root := etree.NewElement("record")
	for _, v := range []string{"x", "y"} {
		root.CreateElement("tag").SetText(v)
	}
	got := etreeconv.ElementToMap(root)
	list, ok := got["tag"].([]any)
	if !ok || len(list) != 2 || list[0] != "x" || list[1] != "y" {
		t.Fatalf("repeated siblings must collapse in order: %v", got)
	}
}

func TestJSONBridge(t *testing.T) {
	m, err := etreeconv.JSONToMap([]byte(`{"name":"doe","nested":{"k":"v"}}`))
	if err != nil {
		t.Fatalf("JSONToMap: %v", err)
	}
	if m["name"] != "doe" {
		t.Fatalf("decoded map: %v", m)
	}

	out, err := etreeconv.MapToJSON(m)
	if err != nil {
		t.Fatalf("MapToJSON: %v", err)
	}
	back, err := etreeconv.JSONToMap(out)
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if !reflect.DeepEqual(m, back) {
		t.Fatalf("JSON round trip mismatch: %v != %v", m, back)
	}

	if _, err := etreeconv.JSONToMap([]byte(`{broken`)); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
