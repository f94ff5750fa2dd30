// Package dsl provides the concrete type descriptors for soaplib.
//
// Overview
//   - Primitives: String()/Integer()/Decimal()/Double()/Float()/Boolean()/
//     Date()/DateTime() return default descriptors ready to convert values
//     to and from wire elements.
//   - Customization: constructors and Customize take Options (MinLen/MaxLen/
//     Pattern/Values/Nillable/MinOccurs/MaxOccurs/TypeName) and always return
//     a new descriptor; the original stays usable and unchanged.
//   - Arrays: Array(elem) wraps one inner descriptor, preserves element
//     order in both directions, and emits the complexType plus the top-level
//     element declaration SOAP arrays need.
//   - Opaque content: Any() carries raw element trees, AnyDict() round-trips
//     nested map[string]any via etreeconv.
//   - Mandatory: ready-made required, non-nillable String/Integer variants.
//
// Entry points
//   - String(opts...), Integer(opts...), ...: build (and customize) a
//     primitive descriptor.
//   - Array(elem, opts...): build an array descriptor; ChildOccurs sets the
//     repeated element's bounds.
//   - d.Customize(opts...): derive a specialized copy of any descriptor.
//
// Design guidelines
//   - A customized descriptor never shares mutable state with its parent.
//   - Schema fragments are emitted only for non-default descriptors, once
//     per identity, through the SchemaRegistry membership check.
//   - Error reporting uses soaplib.Issues with the field name in Path.
//
// Example (quickstart)
//
//	ssn := dsl.String(dsl.MaxLen(11), dsl.Pattern("[0-9-]+"))
//	ssn.ResolveNamespace("urn:example:people")
//
//	el, _ := ssn.ToWire("123-45-6789", "urn:example:people", "ssn")
//	v, _ := ssn.FromWire(el) // "123-45-6789"
//
//	reg := xsdschema.NewEntries()
//	ssn.AddToSchema(reg)
package dsl
