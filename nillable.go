package soaplib

import "github.com/beevik/etree"

// EncodeFunc converts a value into its wire element.
type EncodeFunc func(v any, tns, name string) (*etree.Element, error)

// DecodeFunc converts a wire element back into a value.
type DecodeFunc func(el *etree.Element) (any, error)

// NillableValue wraps an encoder so a nil input short-circuits into the Null
// descriptor's output instead of reaching the wrapped encoder. Every
// descriptor composes this around its own encode.
func NillableValue(fn EncodeFunc) EncodeFunc {
	return func(v any, tns, name string) (*etree.Element, error) {
		if v == nil {
			return Null.ToWire(v, tns, name)
		}
		return fn(v, tns, name)
	}
}

// NillableElement wraps a decoder so an element carrying the nil marker
// yields nil without invoking the wrapped decoder.
func NillableElement(fn DecodeFunc) DecodeFunc {
	return func(el *etree.Element) (any, error) {
		if el.SelectAttrValue("xsi:nil", "") != "" {
			return nil, nil
		}
		return fn(el)
	}
}

// Null is the descriptor behind explicit nulls: an element carrying
// xsi:nil="true" and nothing else.
var Null Descriptor = &nullType{
	Base: NewBase(BaseSpec{Ident: "Null", Scope: LibScope}),
}

type nullType struct {
	Base
}

func (n *nullType) ToWire(_ any, tns, name string) (*etree.Element, error) {
	el := NewValueElement(tns, name)
	el.CreateAttr("xsi:nil", "true")
	return el, nil
}

func (n *nullType) FromWire(_ *etree.Element) (any, error) {
	return nil, nil
}
