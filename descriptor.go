package soaplib

import "github.com/beevik/etree"

// Descriptor is the contract every wire type implements: identity, namespace
// resolution, both wire directions, and schema emission. Descriptors are
// immutable once customized; customization always yields a new value.
type Descriptor interface {
	// TypeName returns the explicit type name when one was set, otherwise the
	// descriptor's own identifier lower-cased.
	TypeName() string

	// Namespace returns the resolved namespace, or "" before resolution.
	Namespace() string

	// TypeNameNS returns "<prefix>:<name>" once the namespace is resolved,
	// "" before that. ResolveNamespace must run first.
	TypeNameNS() string

	// ResolveNamespace assigns the descriptor's namespace. Idempotent; safe
	// to call again with a different default once a namespace is set.
	// Composite descriptors cascade into their element descriptors.
	ResolveNamespace(defaultNS string)

	// RestrictionBase returns the qualified name of the type this descriptor
	// restricts ("xs:string" and friends), or "" for descriptors that never
	// emit a restriction fragment.
	RestrictionBase() string

	// Attrs returns a copy of the constraint record.
	Attrs() Attrs

	// IsDefault reports whether the constraint record equals the base
	// defaults, in which case no schema fragment is emitted.
	IsDefault() bool

	// ToWire converts a value into a namespace-qualified element named name
	// under tns. A nil value produces the xsi:nil marker element.
	ToWire(v any, tns, name string) (*etree.Element, error)

	// FromWire converts an element back into a value. An element carrying
	// the xsi:nil marker yields nil.
	FromWire(el *etree.Element) (any, error)

	// AddToSchema emits the descriptor's schema fragments into reg. No-op
	// for default descriptors; idempotent via the registry membership check.
	AddToSchema(reg SchemaRegistry)
}

// SchemaRegistry deduplicates emitted schema fragments by type identity
// (the namespace-qualified type name). It is consumed, not owned: the
// xsdschema package ships an in-memory implementation.
type SchemaRegistry interface {
	Has(typeNameNS string) bool
	AddSimpleType(typeNameNS string, frag *etree.Element)
	AddComplexType(typeNameNS string, frag *etree.Element)
	AddElement(typeNameNS string, frag *etree.Element)
}
