package soaplib

import (
	"strings"

	"github.com/beevik/etree"
)

// BaseSpec names the identity fields a concrete descriptor is constructed
// with. Attrs always start from DefaultAttrs; constraints are applied through
// Customize so the restriction bookkeeping runs in one place.
type BaseSpec struct {
	// Ident is the descriptor's own identifier ("String", "Integer", ...);
	// the type name derives from it unless TypeName is set.
	Ident    string
	TypeName string
	// Namespace is the initial namespace; built-in primitives start in NSXSD.
	Namespace string
	// RestrictionBase is the qualified name of the XSD type a customized
	// variant restricts ("xs:string"), "" when none applies.
	RestrictionBase string
	// Scope identifies the declaring scope; LibScope for library built-ins.
	Scope string
}

// Base carries descriptor identity and the constraint record. Concrete
// descriptors embed it and add the wire operations.
type Base struct {
	ns       string
	typeName string
	ident    string
	baseType string
	scope    string
	attrs    Attrs
}

// NewBase builds the shared descriptor state with default attributes.
func NewBase(spec BaseSpec) Base {
	return Base{
		ns:       spec.Namespace,
		typeName: spec.TypeName,
		ident:    spec.Ident,
		baseType: spec.RestrictionBase,
		scope:    spec.Scope,
		attrs:    DefaultAttrs(),
	}
}

// TypeName returns the explicit name if set, else the identifier lower-cased.
func (b *Base) TypeName() string {
	if b.typeName != "" {
		return b.typeName
	}
	return strings.ToLower(b.ident)
}

// Namespace returns the resolved namespace, "" before resolution.
func (b *Base) Namespace() string { return b.ns }

// RestrictionBase returns the qualified restriction base, "" when none.
func (b *Base) RestrictionBase() string { return b.baseType }

// Attrs returns a copy of the constraint record.
func (b *Base) Attrs() Attrs { return b.attrs.clone() }

// IsDefault reports whether the record equals the base defaults.
func (b *Base) IsDefault() bool { return b.attrs.Equal(DefaultAttrs()) }

// TypeNameNS returns "<prefix>:<name>" once a namespace is set, else "".
func (b *Base) TypeNameNS() string {
	if b.ns == "" {
		return ""
	}
	return NamespacePrefix(b.ns) + ":" + b.TypeName()
}

// ResolveNamespace assigns the namespace. A customized descriptor still
// sitting in a reserved namespace is re-homed first so it never silently
// aliases a built-in type; an unset namespace falls back to the declaring
// scope, or to defaultNS when the scope is the library's own or unnamed.
// Idempotent once a non-reserved namespace is set.
func (b *Base) ResolveNamespace(defaultNS string) {
	if isReservedNS(b.ns) && !b.IsDefault() {
		b.ns = ""
	}
	if b.ns == "" {
		b.AdoptNamespace(b.scope, defaultNS)
	}
}

// AdoptNamespace assigns ns when the namespace is still unset, substituting
// defaultNS when ns denotes the library's own scope or an unnamed scope.
func (b *Base) AdoptNamespace(ns, defaultNS string) {
	if b.ns != "" {
		return
	}
	b.ns = ns
	if b.ns == "" || b.ns == "main" || strings.HasPrefix(b.ns, LibScope) {
		b.ns = defaultNS
	}
}

// Customize returns a copy of the receiver with the new constraint record.
// The receiver is never touched. When the copy is non-default, its
// restriction base is rebound: to the parent's qualified name when the parent
// namespace was known, else the parent's own restriction base is inherited;
// a reserved namespace is cleared so resolution re-homes the custom type.
func (b Base) Customize(attrs Attrs, typeName string) Base {
	c := b
	c.attrs = attrs.clone()
	if typeName != "" {
		c.typeName = typeName
	}
	if c.IsDefault() {
		return c
	}
	if b.ns != "" {
		c.baseType = b.TypeNameNS()
	}
	if isReservedNS(c.ns) {
		c.ns = ""
	}
	return c
}

// AddToSchema emits the simpleType/restriction fragment for a customized
// descriptor: nothing for default descriptors (they alias the built-in XSD
// type), nothing when the identity is already registered. Descriptors with
// extra facets or complex shapes override this.
func (b *Base) AddToSchema(reg SchemaRegistry) {
	if reg.Has(b.TypeNameNS()) || b.IsDefault() {
		return
	}
	b.RestrictionFragment(reg)
}

// RestrictionFragment registers the simpleType scaffold under the
// descriptor's identity and returns the restriction element so callers can
// append further facets. Enumeration values are emitted here.
func (b *Base) RestrictionFragment(reg SchemaRegistry) *etree.Element {
	st := etree.NewElement("xs:simpleType")
	st.CreateAttr("name", b.TypeName())
	reg.AddSimpleType(b.TypeNameNS(), st)

	r := st.CreateElement("xs:restriction")
	r.CreateAttr("base", b.baseType)
	for _, v := range b.attrs.Values {
		e := r.CreateElement("xs:enumeration")
		e.CreateAttr("value", v)
	}
	return r
}

// NewValueElement creates the namespace-qualified wire element for a value
// named name under tns.
func NewValueElement(tns, name string) *etree.Element {
	el := etree.NewElement(name)
	if tns != "" {
		el.Space = NamespacePrefix(tns)
	}
	return el
}

// TextElement builds the standard text-valued wire element: qualified name,
// xsi:type identity attribute, text content.
func TextElement(d Descriptor, text, tns, name string) *etree.Element {
	el := NewValueElement(tns, name)
	if tn := d.TypeNameNS(); tn != "" {
		el.CreateAttr("xsi:type", tn)
	}
	el.SetText(text)
	return el
}
