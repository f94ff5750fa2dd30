package soaplib

import "strconv"

// Occurs is an occurrence or length bound that may be unbounded.
type Occurs int

// Unbounded marks a bound with no upper limit.
const Unbounded Occurs = -1

// String renders the bound the way XSD spells it.
func (o Occurs) String() string {
	if o == Unbounded {
		return "unbounded"
	}
	return strconv.Itoa(int(o))
}

// Attrs is the constraint record attached to every descriptor. Records are
// value types; customization clones them and never mutates the source.
type Attrs struct {
	// Nillable permits an explicit null on the wire.
	Nillable bool
	// MinOccurs and MaxOccurs bound the element's own repetition.
	MinOccurs int
	MaxOccurs Occurs
	// MinLen and MaxLen bound the text length of restricted simple types.
	MinLen int
	MaxLen Occurs
	// Pattern is a regular-expression facet, "" when unset.
	Pattern string
	// Values enumerates the permitted literals, nil when unrestricted.
	Values []string
}

// DefaultAttrs returns the record every descriptor starts from: nillable,
// optional, no length or value restrictions.
func DefaultAttrs() Attrs {
	return Attrs{
		Nillable:  true,
		MinOccurs: 0,
		MaxOccurs: 1,
		MinLen:    0,
		MaxLen:    Unbounded,
	}
}

// Equal reports whether two records carry the same constraints. Values
// compare as a set; their order is presentation only.
func (a Attrs) Equal(b Attrs) bool {
	if a.Nillable != b.Nillable ||
		a.MinOccurs != b.MinOccurs || a.MaxOccurs != b.MaxOccurs ||
		a.MinLen != b.MinLen || a.MaxLen != b.MaxLen ||
		a.Pattern != b.Pattern {
		return false
	}
	if len(a.Values) != len(b.Values) {
		return false
	}
	if a.Values == nil {
		return true
	}
	set := make(map[string]struct{}, len(a.Values))
	for _, v := range a.Values {
		set[v] = struct{}{}
	}
	for _, v := range b.Values {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

// clone returns a deep copy; the Values slice is never shared.
func (a Attrs) clone() Attrs {
	c := a
	if a.Values != nil {
		c.Values = append([]string(nil), a.Values...)
	}
	return c
}
