package dsl

import soaplib "github.com/luckyluke/soaplib"

// Option overrides one constraint on a descriptor under construction or
// customization. Options never touch the descriptor they came from; they are
// applied to a fresh copy of its attribute record.
type Option func(*settings)

type settings struct {
	attrs    soaplib.Attrs
	typeName string
}

// Nillable controls whether the wire form may carry an explicit null.
func Nillable(v bool) Option { return func(s *settings) { s.attrs.Nillable = v } }

// MinOccurs sets the minimum repetition count for the element.
func MinOccurs(n int) Option { return func(s *settings) { s.attrs.MinOccurs = n } }

// MaxOccurs sets the maximum repetition count for the element.
func MaxOccurs(n soaplib.Occurs) Option { return func(s *settings) { s.attrs.MaxOccurs = n } }

// MinLen sets the minimum text length restriction.
func MinLen(n int) Option { return func(s *settings) { s.attrs.MinLen = n } }

// MaxLen sets the maximum text length restriction.
func MaxLen(n soaplib.Occurs) Option { return func(s *settings) { s.attrs.MaxLen = n } }

// Pattern sets the regular-expression facet emitted for the type.
func Pattern(p string) Option { return func(s *settings) { s.attrs.Pattern = p } }

// Values restricts the type to an enumerated value set.
func Values(vs ...string) Option {
	return func(s *settings) { s.attrs.Values = append([]string(nil), vs...) }
}

// TypeName names the customized type explicitly instead of deriving the name
// from the descriptor identifier.
func TypeName(name string) Option { return func(s *settings) { s.typeName = name } }

// customize runs the shared copy-with-overrides path: clone the record,
// apply the options, and let Base rebind the restriction base and namespace.
func customize(b soaplib.Base, opts []Option) soaplib.Base {
	s := settings{attrs: b.Attrs()}
	for _, o := range opts {
		o(&s)
	}
	return b.Customize(s.attrs, s.typeName)
}

func primitiveBase(ident, typeName, restrictionBase string) soaplib.Base {
	return soaplib.NewBase(soaplib.BaseSpec{
		Ident:           ident,
		TypeName:        typeName,
		Namespace:       soaplib.NSXSD,
		RestrictionBase: restrictionBase,
		Scope:           soaplib.LibScope,
	})
}
