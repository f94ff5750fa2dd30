// Package xsdschema collects the schema fragments descriptors emit and
// assembles them into an xs:schema document.
package xsdschema

import (
	"github.com/beevik/etree"

	soaplib "github.com/luckyluke/soaplib"
)

// Entries is the in-memory SchemaRegistry: three identity-keyed fragment
// stores (simple types, complex types, top-level elements) with insertion
// order preserved for document assembly.
type Entries struct {
	simpleTypes  map[string]*etree.Element
	complexTypes map[string]*etree.Element
	topElements  map[string]*etree.Element

	simpleOrder  []string
	complexOrder []string
	elementOrder []string
}

var _ soaplib.SchemaRegistry = (*Entries)(nil)

// NewEntries returns an empty registry.
func NewEntries() *Entries {
	return &Entries{
		simpleTypes:  make(map[string]*etree.Element),
		complexTypes: make(map[string]*etree.Element),
		topElements:  make(map[string]*etree.Element),
	}
}

// Has reports whether any fragment was recorded under the identity. This is
// what makes AddToSchema idempotent when composition visits a shared type
// more than once.
func (e *Entries) Has(typeNameNS string) bool {
	if _, ok := e.simpleTypes[typeNameNS]; ok {
		return true
	}
	if _, ok := e.complexTypes[typeNameNS]; ok {
		return true
	}
	_, ok := e.topElements[typeNameNS]
	return ok
}

// AddSimpleType records a simpleType fragment under the identity. Repeated
// inserts for the same identity keep the first fragment.
func (e *Entries) AddSimpleType(typeNameNS string, frag *etree.Element) {
	if _, ok := e.simpleTypes[typeNameNS]; ok {
		return
	}
	e.simpleTypes[typeNameNS] = frag
	e.simpleOrder = append(e.simpleOrder, typeNameNS)
}

// AddComplexType records a complexType fragment under the identity.
func (e *Entries) AddComplexType(typeNameNS string, frag *etree.Element) {
	if _, ok := e.complexTypes[typeNameNS]; ok {
		return
	}
	e.complexTypes[typeNameNS] = frag
	e.complexOrder = append(e.complexOrder, typeNameNS)
}

// AddElement records a top-level element declaration under the identity.
func (e *Entries) AddElement(typeNameNS string, frag *etree.Element) {
	if _, ok := e.topElements[typeNameNS]; ok {
		return
	}
	e.topElements[typeNameNS] = frag
	e.elementOrder = append(e.elementOrder, typeNameNS)
}

// SimpleType returns the simpleType fragment recorded under the identity,
// or nil.
func (e *Entries) SimpleType(typeNameNS string) *etree.Element { return e.simpleTypes[typeNameNS] }

// ComplexType returns the complexType fragment recorded under the identity,
// or nil.
func (e *Entries) ComplexType(typeNameNS string) *etree.Element { return e.complexTypes[typeNameNS] }

// Element returns the top-level element declaration recorded under the
// identity, or nil.
func (e *Entries) Element(typeNameNS string) *etree.Element { return e.topElements[typeNameNS] }

// Len returns the total number of recorded fragments.
func (e *Entries) Len() int {
	return len(e.simpleTypes) + len(e.complexTypes) + len(e.topElements)
}

// Document assembles the collected fragments into an xs:schema document for
// tns: namespace declarations from the process-wide prefix table, then the
// simple types, complex types, and top-level elements in insertion order.
func (e *Entries) Document(tns string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("xs:schema")
	root.CreateAttr("targetNamespace", tns)
	root.CreateAttr("elementFormDefault", "qualified")
	for ns, prefix := range soaplib.Namespaces() {
		root.CreateAttr("xmlns:"+prefix, ns)
	}

	for _, id := range e.simpleOrder {
		root.AddChild(e.simpleTypes[id])
	}
	for _, id := range e.complexOrder {
		root.AddChild(e.complexTypes[id])
	}
	for _, id := range e.elementOrder {
		root.AddChild(e.topElements[id])
	}
	return doc
}
