package dsl

import (
	"github.com/beevik/etree"

	soaplib "github.com/luckyluke/soaplib"
	"github.com/luckyluke/soaplib/etreeconv"
)

// Any returns the opaque-element descriptor: values are pre-built element
// trees or raw XML text, carried as the single child of the wire element.
func Any(opts ...Option) *AnyType {
	t := &AnyType{Base: primitiveBase("Any", "anyType", "xs:anyType")}
	if len(opts) == 0 {
		return t
	}
	return t.Customize(opts...)
}

type AnyType struct {
	soaplib.Base
}

func (t *AnyType) Customize(opts ...Option) *AnyType {
	return &AnyType{Base: customize(t.Base, opts)}
}

func (t *AnyType) ToWire(v any, tns, name string) (*etree.Element, error) {
	return soaplib.NillableValue(t.encode)(v, tns, name)
}

func (t *AnyType) FromWire(el *etree.Element) (any, error) {
	return soaplib.NillableElement(t.decode)(el)
}

func (t *AnyType) encode(v any, tns, name string) (*etree.Element, error) {
	var child *etree.Element
	switch x := v.(type) {
	case *etree.Element:
		child = x
	case string:
		c, err := parseXML(x, name)
		if err != nil {
			return nil, err
		}
		child = c
	case []byte:
		c, err := parseXML(string(x), name)
		if err != nil {
			return nil, err
		}
		child = c
	default:
		return nil, invalidType(v, name)
	}
	el := soaplib.NewValueElement(tns, name)
	el.AddChild(child)
	return el, nil
}

func (t *AnyType) decode(el *etree.Element) (any, error) {
	children := el.ChildElements()
	if len(children) == 0 {
		return nil, nil
	}
	return children[0], nil
}

func parseXML(s, field string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil || doc.Root() == nil {
		return nil, parseError("xml", s, field)
	}
	return doc.Root(), nil
}

// AnyDict returns the mapping-valued variant of Any: nested map[string]any
// values round-trip through an equivalent nested element structure. Raw JSON
// bytes are accepted on the encode side as a convenience.
func AnyDict(opts ...Option) *AnyDictType {
	t := &AnyDictType{Base: primitiveBase("AnyDict", "anyType", "xs:anyType")}
	if len(opts) == 0 {
		return t
	}
	return t.Customize(opts...)
}

type AnyDictType struct {
	soaplib.Base
}

func (t *AnyDictType) Customize(opts ...Option) *AnyDictType {
	return &AnyDictType{Base: customize(t.Base, opts)}
}

func (t *AnyDictType) ToWire(v any, tns, name string) (*etree.Element, error) {
	return soaplib.NillableValue(t.encode)(v, tns, name)
}

func (t *AnyDictType) FromWire(el *etree.Element) (any, error) {
	return soaplib.NillableElement(t.decode)(el)
}

func (t *AnyDictType) encode(v any, tns, name string) (*etree.Element, error) {
	var m map[string]any
	switch x := v.(type) {
	case map[string]any:
		m = x
	case []byte:
		mm, err := etreeconv.JSONToMap(x)
		if err != nil {
			return nil, parseError("json", string(x), name)
		}
		m = mm
	default:
		return nil, invalidType(v, name)
	}
	el := soaplib.NewValueElement(tns, name)
	etreeconv.MapToElement(el, m)
	return el, nil
}

func (t *AnyDictType) decode(el *etree.Element) (any, error) {
	if len(el.ChildElements()) == 0 {
		return nil, nil
	}
	return etreeconv.ElementToMap(el), nil
}
