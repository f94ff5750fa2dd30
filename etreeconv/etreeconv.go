// Package etreeconv converts between nested map[string]any structures and
// equivalent element trees, plus a JSON bridge for callers that hold raw
// JSON instead of maps.
package etreeconv

import (
	"fmt"
	"sort"

	"github.com/beevik/etree"
	json "github.com/goccy/go-json"
)

// MapToElement appends one child element per map entry under parent. Nested
// maps recurse; slices expand into repeated sibling elements; everything
// else becomes element text. Keys are visited in sorted order so the output
// is deterministic.
func MapToElement(parent *etree.Element, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		appendValue(parent, k, m[k])
	}
}

func appendValue(parent *etree.Element, key string, v any) {
	switch x := v.(type) {
	case map[string]any:
		child := parent.CreateElement(key)
		MapToElement(child, x)
	case []any:
		for _, item := range x {
			appendValue(parent, key, item)
		}
	case nil:
		parent.CreateElement(key)
	case string:
		parent.CreateElement(key).SetText(x)
	default:
		parent.CreateElement(key).SetText(fmt.Sprintf("%v", x))
	}
}

// ElementToMap is the inverse of MapToElement: children with children
// recurse into nested maps, leaves become their text, and repeated sibling
// names collapse into a []any preserving document order.
func ElementToMap(el *etree.Element) map[string]any {
	m := make(map[string]any)
	for _, c := range el.ChildElements() {
		var v any
		if len(c.ChildElements()) > 0 {
			v = ElementToMap(c)
		} else {
			v = c.Text()
		}
		if prev, ok := m[c.Tag]; ok {
			if list, ok := prev.([]any); ok {
				m[c.Tag] = append(list, v)
			} else {
				m[c.Tag] = []any{prev, v}
			}
		} else {
			m[c.Tag] = v
		}
	}
	return m
}

// JSONToMap decodes a JSON object into the nested map form MapToElement
// accepts.
func JSONToMap(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// MapToJSON renders the nested map form back into JSON.
func MapToJSON(m map[string]any) ([]byte, error) {
	return json.Marshal(m)
}
