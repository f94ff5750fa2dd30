package dsl

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	soaplib "github.com/luckyluke/soaplib"
	"github.com/luckyluke/soaplib/i18n"
)

// String returns the text descriptor, customized by the given options.
//
//	ssn := dsl.String(dsl.MaxLen(11), dsl.Pattern("[0-9-]+"))
func String(opts ...Option) *TextType {
	t := &TextType{Base: primitiveBase("String", "", "xs:string")}
	if len(opts) == 0 {
		return t
	}
	return t.Customize(opts...)
}

// TextType marshals textual values with optional length/pattern restrictions.
type TextType struct {
	soaplib.Base
	lenient bool
}

// Customize returns a copy with the overrides applied; the receiver stays
// untouched.
func (t *TextType) Customize(opts ...Option) *TextType {
	return &TextType{Base: customize(t.Base, opts), lenient: t.lenient}
}

// Lenient returns a copy that passes through element text that is not valid
// UTF-8 instead of failing. Strict rejection is the default.
func (t *TextType) Lenient() *TextType {
	c := t.Customize()
	c.lenient = true
	return c
}

func (t *TextType) ToWire(v any, tns, name string) (*etree.Element, error) {
	return soaplib.NillableValue(t.encode)(v, tns, name)
}

func (t *TextType) FromWire(el *etree.Element) (any, error) {
	return soaplib.NillableElement(t.decode)(el)
}

func (t *TextType) encode(v any, tns, name string) (*etree.Element, error) {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case []byte:
		s = string(x)
	default:
		return nil, invalidType(v, name)
	}
	return soaplib.TextElement(t, s, tns, name), nil
}

func (t *TextType) decode(el *etree.Element) (any, error) {
	s := el.Text()
	if t.lenient || utf8.ValidString(s) {
		return s, nil
	}
	return nil, soaplib.Issues{{
		Path:    el.Tag,
		Code:    soaplib.CodeInvalidEncoding,
		Message: i18n.T(soaplib.CodeInvalidEncoding, nil),
	}}
}

// AddToSchema emits the restriction with length facets: a single length facet
// when the bounds coincide, otherwise minLength/maxLength independently, and
// a pattern facet when one is set.
func (t *TextType) AddToSchema(reg soaplib.SchemaRegistry) {
	if reg.Has(t.TypeNameNS()) || t.IsDefault() {
		return
	}
	r := t.RestrictionFragment(reg)

	a, def := t.Attrs(), soaplib.DefaultAttrs()
	if soaplib.Occurs(a.MinLen) == a.MaxLen {
		f := r.CreateElement("xs:length")
		f.CreateAttr("value", strconv.Itoa(a.MinLen))
	} else {
		if a.MinLen != def.MinLen {
			f := r.CreateElement("xs:minLength")
			f.CreateAttr("value", strconv.Itoa(a.MinLen))
		}
		if a.MaxLen != def.MaxLen {
			f := r.CreateElement("xs:maxLength")
			f.CreateAttr("value", a.MaxLen.String())
		}
	}
	if a.Pattern != def.Pattern {
		f := r.CreateElement("xs:pattern")
		f.CreateAttr("value", a.Pattern)
	}
}

// Integer returns the arbitrary-precision integer descriptor.
func Integer(opts ...Option) *IntegerType {
	t := &IntegerType{Base: primitiveBase("Integer", "", "xs:integer")}
	if len(opts) == 0 {
		return t
	}
	return t.Customize(opts...)
}

// IntegerType marshals integers; decoding falls back to math/big when the
// wire text exceeds 64 bits.
type IntegerType struct {
	soaplib.Base
}

func (t *IntegerType) Customize(opts ...Option) *IntegerType {
	return &IntegerType{Base: customize(t.Base, opts)}
}

func (t *IntegerType) ToWire(v any, tns, name string) (*etree.Element, error) {
	return soaplib.NillableValue(t.encode)(v, tns, name)
}

func (t *IntegerType) FromWire(el *etree.Element) (any, error) {
	return soaplib.NillableElement(t.decode)(el)
}

func (t *IntegerType) encode(v any, tns, name string) (*etree.Element, error) {
	s, ok := integerText(v)
	if !ok {
		return nil, invalidType(v, name)
	}
	return soaplib.TextElement(t, s, tns, name), nil
}

func (t *IntegerType) decode(el *etree.Element) (any, error) {
	s := strings.TrimSpace(el.Text())
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	if n, ok := new(big.Int).SetString(s, 10); ok {
		return n, nil
	}
	return nil, parseError("integer", s, el.Tag)
}

func integerText(v any) (string, bool) {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case *big.Int:
		return x.String(), true
	}
	return "", false
}

// Decimal returns the arbitrary-precision decimal descriptor.
func Decimal(opts ...Option) *DecimalType {
	t := &DecimalType{Base: primitiveBase("Decimal", "", "xs:decimal")}
	if len(opts) == 0 {
		return t
	}
	return t.Customize(opts...)
}

// DecimalType marshals decimal.Decimal values; encoding falls back to the
// plain text rendering for other inputs.
type DecimalType struct {
	soaplib.Base
}

func (t *DecimalType) Customize(opts ...Option) *DecimalType {
	return &DecimalType{Base: customize(t.Base, opts)}
}

func (t *DecimalType) ToWire(v any, tns, name string) (*etree.Element, error) {
	return soaplib.NillableValue(t.encode)(v, tns, name)
}

func (t *DecimalType) FromWire(el *etree.Element) (any, error) {
	return soaplib.NillableElement(t.decode)(el)
}

func (t *DecimalType) encode(v any, tns, name string) (*etree.Element, error) {
	var s string
	switch x := v.(type) {
	case decimal.Decimal:
		s = x.String()
	case string:
		s = x
	default:
		s = fmt.Sprintf("%v", x)
	}
	return soaplib.TextElement(t, s, tns, name), nil
}

func (t *DecimalType) decode(el *etree.Element) (any, error) {
	s := strings.TrimSpace(el.Text())
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, parseError("decimal", s, el.Tag)
	}
	return d, nil
}

// Double returns the IEEE-754 double descriptor.
func Double(opts ...Option) *DoubleType {
	t := &DoubleType{Base: primitiveBase("Double", "", "xs:double")}
	if len(opts) == 0 {
		return t
	}
	return t.Customize(opts...)
}

// Float returns the float descriptor. It is wire-identical to Double and
// differs only in type identity.
func Float(opts ...Option) *DoubleType {
	t := &DoubleType{Base: primitiveBase("Float", "", "xs:float")}
	if len(opts) == 0 {
		return t
	}
	return t.Customize(opts...)
}

// DoubleType marshals floating-point values using the shortest round-trip
// rendering.
type DoubleType struct {
	soaplib.Base
}

func (t *DoubleType) Customize(opts ...Option) *DoubleType {
	return &DoubleType{Base: customize(t.Base, opts)}
}

func (t *DoubleType) ToWire(v any, tns, name string) (*etree.Element, error) {
	return soaplib.NillableValue(t.encode)(v, tns, name)
}

func (t *DoubleType) FromWire(el *etree.Element) (any, error) {
	return soaplib.NillableElement(t.decode)(el)
}

func (t *DoubleType) encode(v any, tns, name string) (*etree.Element, error) {
	var s string
	switch x := v.(type) {
	case float64:
		s = strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(x), 'g', -1, 32)
	default:
		return nil, invalidType(v, name)
	}
	return soaplib.TextElement(t, s, tns, name), nil
}

func (t *DoubleType) decode(el *etree.Element) (any, error) {
	s := strings.TrimSpace(el.Text())
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, parseError("double", s, el.Tag)
	}
	return f, nil
}

// Boolean returns the boolean descriptor.
func Boolean(opts ...Option) *BooleanType {
	t := &BooleanType{Base: primitiveBase("Boolean", "", "xs:boolean")}
	if len(opts) == 0 {
		return t
	}
	return t.Customize(opts...)
}

// BooleanType marshals bools as the lower-case literals. Decoding is lenient
// on purpose: any text with a leading t/T reads as true, everything else as
// false, so the round-trip guarantee covers only the canonical literals.
type BooleanType struct {
	soaplib.Base
}

func (t *BooleanType) Customize(opts ...Option) *BooleanType {
	return &BooleanType{Base: customize(t.Base, opts)}
}

func (t *BooleanType) ToWire(v any, tns, name string) (*etree.Element, error) {
	return soaplib.NillableValue(t.encode)(v, tns, name)
}

func (t *BooleanType) FromWire(el *etree.Element) (any, error) {
	return soaplib.NillableElement(t.decode)(el)
}

func (t *BooleanType) encode(v any, tns, name string) (*etree.Element, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, invalidType(v, name)
	}
	return soaplib.TextElement(t, strconv.FormatBool(b), tns, name), nil
}

func (t *BooleanType) decode(el *etree.Element) (any, error) {
	s := el.Text()
	return len(s) > 0 && (s[0] == 't' || s[0] == 'T'), nil
}

// ---- shared issue helpers ----

func invalidType(v any, field string) error {
	return soaplib.Issues{{
		Path: field,
		Code: soaplib.CodeInvalidType,
		Message: i18n.T(soaplib.CodeInvalidType, map[string]string{
			"value": fmt.Sprintf("%v", v),
			"field": field,
		}),
		Params: map[string]any{"value": v, "field": field},
	}}
}

func parseError(kind, text, field string) error {
	return soaplib.Issues{{
		Path:    field,
		Code:    soaplib.CodeParseError,
		Message: kind + " " + i18n.T(soaplib.CodeParseError, map[string]string{"value": text}),
		Params:  map[string]any{"value": text},
	}}
}
