package dsl_test

import (
	"testing"
	"time"

	soaplib "github.com/luckyluke/soaplib"
	"github.com/luckyluke/soaplib/dsl"
)

func TestDate_RoundTrip(t *testing.T) {
	d := dsl.Date()
	in := time.Date(2021, 3, 14, 0, 0, 0, 0, time.UTC)

	el, err := d.ToWire(in, testTNS, "born")
	if err != nil {
		t.Fatalf("ToWire: %v", err)
	}
	if el.Text() != "2021-03-14" {
		t.Fatalf("wire text: %q", el.Text())
	}
	got, err := d.FromWire(el)
	if err != nil {
		t.Fatalf("FromWire: %v", err)
	}
	out := got.(time.Time)
	if out.Year() != 2021 || out.Month() != time.March || out.Day() != 14 {
		t.Fatalf("round trip lost the date: %v", out)
	}
}

func TestDate_MalformedTextPropagates(t *testing.T) {
	_, err := dsl.Date().FromWire(textElement("born", "03/14/2021"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	iss, ok := soaplib.AsIssues(err)
	if !ok || iss[0].Code != soaplib.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestDateTime_RoundTrip(t *testing.T) {
	d := dsl.DateTime()
	in := time.Date(2021, 3, 14, 15, 9, 26, 535000*1000, time.UTC)

	el, err := d.ToWire(in, testTNS, "at")
	if err != nil {
		t.Fatalf("ToWire: %v", err)
	}
	got, err := d.FromWire(el)
	if err != nil {
		t.Fatalf("FromWire: %v", err)
	}
	if !got.(time.Time).Equal(in) {
		t.Fatalf("round trip drifted: %v != %v", got, in)
	}
}

func TestDateTime_TypeIdentity(t *testing.T) {
	if dsl.DateTime().TypeName() != "dateTime" {
		t.Fatalf("got %q", dsl.DateTime().TypeName())
	}
	if dsl.DateTime().RestrictionBase() != "xs:dateTime" {
		t.Fatalf("got %q", dsl.DateTime().RestrictionBase())
	}
}

func TestDateTime_RejectsNonTime(t *testing.T) {
	_, err := dsl.DateTime().ToWire("2021-03-14T15:09:26", testTNS, "at")
	if err == nil {
		t.Fatal("expected invalid_type for a string input")
	}
	iss, ok := soaplib.AsIssues(err)
	if !ok || iss[0].Code != soaplib.CodeInvalidType {
		t.Fatalf("expected invalid_type, got %v", err)
	}
}
