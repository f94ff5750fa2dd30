// Package soaplib provides:
//
// - Type-descriptor-driven marshalling between typed values and XML elements
// - XSD fragment generation kept in lockstep with the conversion semantics
// - A copy-on-customize mechanism so a base type can be specialized (bounded
//   strings, non-nillable integers) without mutating the original descriptor
// - A stable error model via Issues (field path, code, message)
//
// Design policy:
// - Keep only public contracts in the root package (Descriptor, Attrs,
//   SchemaRegistry, the nillable combinators); concrete descriptors live
//   under dsl/, date/time text codecs under codec/, schema assembly under
//   xsdschema/, tree↔map conversion under etreeconv/, and the CLI under
//   cmd/soaplib.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	ssn := dsl.String(dsl.MaxLen(11), dsl.Pattern("[0-9-]+"))
//	ssn.ResolveNamespace("urn:example:people")
//
//	el, err := ssn.ToWire("123-45-6789", "urn:example:people", "ssn")
//	v, err := ssn.FromWire(el)
//
//	reg := xsdschema.NewEntries()
//	ssn.AddToSchema(reg)
package soaplib
