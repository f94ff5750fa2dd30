package soaplib_test

import (
	"testing"

	"github.com/beevik/etree"

	soaplib "github.com/luckyluke/soaplib"
)

func TestNillableValue_InterceptsNil(t *testing.T) {
	called := false
	enc := soaplib.NillableValue(func(v any, tns, name string) (*etree.Element, error) {
		called = true
		return soaplib.NewValueElement(tns, name), nil
	})

	el, err := enc(nil, "urn:soaplib-test:nil", "retval")
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if called {
		t.Fatalf("wrapped encoder must not run for nil input")
	}
	if got := el.SelectAttrValue("xsi:nil", ""); got != "true" {
		t.Fatalf("expected xsi:nil=true, got %q", got)
	}
	if el.Text() != "" || len(el.ChildElements()) != 0 {
		t.Fatalf("nil element must carry no content")
	}
}

func TestNillableValue_PassesThrough(t *testing.T) {
	enc := soaplib.NillableValue(func(v any, tns, name string) (*etree.Element, error) {
		el := soaplib.NewValueElement(tns, name)
		el.SetText(v.(string))
		return el, nil
	})
	el, err := enc("x", "urn:soaplib-test:nil", "retval")
	if err != nil || el.Text() != "x" {
		t.Fatalf("expected passthrough, got el=%v err=%v", el, err)
	}
}

func TestNillableElement_MarkerShortCircuits(t *testing.T) {
	dec := soaplib.NillableElement(func(el *etree.Element) (any, error) {
		t.Fatalf("wrapped decoder must not run for nil marker")
		return nil, nil
	})

	el := etree.NewElement("retval")
	el.CreateAttr("xsi:nil", "true")
	v, err := dec(el)
	if err != nil || v != nil {
		t.Fatalf("expected nil, got v=%v err=%v", v, err)
	}
}

func TestNillableElement_PassesThrough(t *testing.T) {
	dec := soaplib.NillableElement(func(el *etree.Element) (any, error) {
		return el.Text(), nil
	})
	el := etree.NewElement("retval")
	el.SetText("hello")
	v, err := dec(el)
	if err != nil || v != "hello" {
		t.Fatalf("expected hello, got v=%v err=%v", v, err)
	}
}
