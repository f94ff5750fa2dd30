package dsl

import (
	"time"

	"github.com/beevik/etree"

	soaplib "github.com/luckyluke/soaplib"
	"github.com/luckyluke/soaplib/codec"
)

// Date returns the calendar-date descriptor (YYYY-MM-DD, strict).
func Date(opts ...Option) *DateType {
	t := &DateType{Base: primitiveBase("Date", "", "xs:date")}
	if len(opts) == 0 {
		return t
	}
	return t.Customize(opts...)
}

type DateType struct {
	soaplib.Base
}

func (t *DateType) Customize(opts ...Option) *DateType {
	return &DateType{Base: customize(t.Base, opts)}
}

func (t *DateType) ToWire(v any, tns, name string) (*etree.Element, error) {
	return soaplib.NillableValue(t.encode)(v, tns, name)
}

func (t *DateType) FromWire(el *etree.Element) (any, error) {
	return soaplib.NillableElement(t.decode)(el)
}

func (t *DateType) encode(v any, tns, name string) (*etree.Element, error) {
	d, ok := v.(time.Time)
	if !ok {
		return nil, invalidType(v, name)
	}
	return soaplib.TextElement(t, codec.FormatDate(d), tns, name), nil
}

func (t *DateType) decode(el *etree.Element) (any, error) {
	d, err := codec.ParseDate(el.Text())
	if err != nil {
		return nil, err
	}
	return d, nil
}

// DateTime returns the ISO-8601 datetime descriptor. Decoding precedence is
// UTC, explicit offset, then naive local time; see the codec package.
func DateTime(opts ...Option) *DateTimeType {
	t := &DateTimeType{Base: primitiveBase("DateTime", "dateTime", "xs:dateTime")}
	if len(opts) == 0 {
		return t
	}
	return t.Customize(opts...)
}

type DateTimeType struct {
	soaplib.Base
}

func (t *DateTimeType) Customize(opts ...Option) *DateTimeType {
	return &DateTimeType{Base: customize(t.Base, opts)}
}

func (t *DateTimeType) ToWire(v any, tns, name string) (*etree.Element, error) {
	return soaplib.NillableValue(t.encode)(v, tns, name)
}

func (t *DateTimeType) FromWire(el *etree.Element) (any, error) {
	return soaplib.NillableElement(t.decode)(el)
}

func (t *DateTimeType) encode(v any, tns, name string) (*etree.Element, error) {
	d, ok := v.(time.Time)
	if !ok {
		return nil, invalidType(v, name)
	}
	return soaplib.TextElement(t, codec.FormatDateTime(d), tns, name), nil
}

func (t *DateTimeType) decode(el *etree.Element) (any, error) {
	d, err := codec.ParseDateTime(el.Text())
	if err != nil {
		return nil, err
	}
	return d, nil
}
