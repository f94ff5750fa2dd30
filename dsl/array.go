package dsl

import (
	"reflect"
	"strconv"

	"github.com/beevik/etree"

	soaplib "github.com/luckyluke/soaplib"
)

// Array returns a descriptor for an ordered sequence of elem values. The
// array's type name derives from the inner type ("integerArray"); its child
// occurrence bounds are independent of the array's own occurrence record.
func Array(elem soaplib.Descriptor, opts ...Option) *ArrayType {
	a := &ArrayType{
		Base:     soaplib.NewBase(soaplib.BaseSpec{Ident: "Array", Scope: soaplib.LibScope}),
		elem:     elem,
		childMin: 0,
		childMax: soaplib.Unbounded,
	}
	if len(opts) > 0 {
		a = a.Customize(opts...)
	}
	a = a.Customize(TypeName(elem.TypeName() + "Array"))
	return a
}

// ArrayType wraps exactly one inner descriptor and marshals Go slices and
// arrays through it, preserving order.
type ArrayType struct {
	soaplib.Base
	elem     soaplib.Descriptor
	childMin int
	childMax soaplib.Occurs
}

// Element returns the inner descriptor.
func (a *ArrayType) Element() soaplib.Descriptor { return a.elem }

func (a *ArrayType) Customize(opts ...Option) *ArrayType {
	return &ArrayType{
		Base:     customize(a.Base, opts),
		elem:     a.elem,
		childMin: a.childMin,
		childMax: a.childMax,
	}
}

// ChildOccurs returns a copy with the repeated element's occurrence bounds.
func (a *ArrayType) ChildOccurs(min int, max soaplib.Occurs) *ArrayType {
	c := a.Customize()
	c.childMin, c.childMax = min, max
	return c
}

// ResolveNamespace cascades in two passes: resolve the element type first,
// adopt its namespace for the array (falling back to defaultNS when the
// element lives in the built-in schema namespace), then re-resolve the
// element against the array's own namespace so both end up consistent even
// when the element was still unresolved at construction time.
func (a *ArrayType) ResolveNamespace(defaultNS string) {
	a.elem.ResolveNamespace(defaultNS)
	if ns := a.elem.Namespace(); ns != soaplib.NSXSD {
		a.AdoptNamespace(ns, defaultNS)
	} else {
		a.AdoptNamespace(defaultNS, defaultNS)
	}
	a.elem.ResolveNamespace(a.Namespace())
}

func (a *ArrayType) ToWire(v any, tns, name string) (*etree.Element, error) {
	return soaplib.NillableValue(a.encode)(v, tns, name)
}

func (a *ArrayType) FromWire(el *etree.Element) (any, error) {
	return soaplib.NillableElement(a.decode)(el)
}

func (a *ArrayType) encode(v any, tns, name string) (*etree.Element, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		// so that the variable name shows up in the error
		return nil, invalidType(v, name)
	}

	el := soaplib.NewValueElement(tns, name)
	el.CreateAttr("type", a.TypeNameNS())
	for i := 0; i < rv.Len(); i++ {
		child, err := a.elem.ToWire(rv.Index(i).Interface(), tns, a.elem.TypeName())
		if err != nil {
			return nil, err
		}
		el.AddChild(child)
	}
	return el, nil
}

func (a *ArrayType) decode(el *etree.Element) (any, error) {
	children := el.ChildElements()
	out := make([]any, 0, len(children))
	for _, c := range children {
		v, err := a.elem.FromWire(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// AddToSchema emits, once per identity, the element type's fragments, the
// array's complexType/sequence declaration with the child occurrence bounds,
// and the duplicate top-level element declaration SOAP arrays need when
// referenced standalone.
func (a *ArrayType) AddToSchema(reg soaplib.SchemaRegistry) {
	if reg.Has(a.TypeNameNS()) {
		return
	}
	a.elem.AddToSchema(reg)

	ct := etree.NewElement("xs:complexType")
	ct.CreateAttr("name", a.TypeName())
	seq := ct.CreateElement("xs:sequence")
	e := seq.CreateElement("xs:element")
	e.CreateAttr("name", a.elem.TypeName())
	e.CreateAttr("type", a.elem.TypeNameNS())
	e.CreateAttr("minOccurs", strconv.Itoa(a.childMin))
	e.CreateAttr("maxOccurs", a.childMax.String())
	reg.AddComplexType(a.TypeNameNS(), ct)

	top := etree.NewElement("xs:element")
	top.CreateAttr("name", a.TypeName())
	top.CreateAttr("type", a.TypeNameNS())
	reg.AddElement(a.TypeNameNS(), top)
}
