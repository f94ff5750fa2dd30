package dsl

// Mandatory bundles ready-made non-nillable, required variants of the common
// primitives.
var Mandatory = struct {
	String  *TextType
	Integer *IntegerType
}{
	String:  String(MinLen(1), MinOccurs(1), Nillable(false)),
	Integer: Integer(MinOccurs(1), Nillable(false)),
}
